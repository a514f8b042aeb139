package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/fileutil"
	"github.com/idelchi/goxor/internal/keystream"
)

// Processor handles the obfuscation and revealing of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// key is shared read-only by every file of the run
	key keystream.Key

	// out receives the per-file report
	out io.Writer

	buffers *bufferPool
}

// New creates a Processor for the given configuration and derived key.
func New(cfg *config.Config, key keystream.Key, out io.Writer) (*Processor, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key is empty", keystream.ErrInvalidKeyFormat)
	}

	if cfg.ChunkSize < 1 {
		return nil, fmt.Errorf("%w: %d", keystream.ErrInvalidChunkSize, cfg.ChunkSize)
	}

	return &Processor{
		cfg:     cfg,
		key:     key,
		out:     out,
		buffers: newBufferPool(cfg.ChunkSize),
	}, nil
}

// OutputPath returns where the output for the input file is written.
func (p *Processor) OutputPath(file string) string {
	return filepath.Join(p.cfg.Output, OutputName(filepath.Base(file), p.cfg.Direction, p.cfg.Suffix))
}

// ProcessFiles processes files one after another, reporting each result as it completes.
// Failing files are reported and skipped; if any failed, ErrPartialFailure is returned
// once every file has been attempted. Cancelling ctx stops the batch between files.
func (p *Processor) ProcessFiles(ctx context.Context, files []string) (Summary, error) {
	var summary Summary

	results := make(chan Result)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(results)

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("processing stopped before %q: %w", file, err)
			}

			outPath := p.OutputPath(file)

			size, err := p.processFile(file, outPath)

			select {
			case results <- Result{Input: file, Output: outPath, Size: size, Error: err}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	group.Go(func() error {
		for result := range results {
			p.report(result, &summary)
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return summary, err
	}

	if summary.Errored > 0 {
		return summary, fmt.Errorf("%w: %d of %d failed", ErrPartialFailure, summary.Errored, len(files))
	}

	return summary, nil
}

func (p *Processor) report(result Result, summary *Summary) {
	if result.Error != nil {
		summary.Errored++

		log.Error().Err(result.Error).Str("file", result.Input).Msg("skipping file")

		return
	}

	summary.Processed++
	summary.Size += result.Size

	if !p.cfg.Quiet {
		fmt.Fprintf(p.out, "Processed %q -> %q\n", result.Input, result.Output)
	}

	if p.cfg.Delete {
		if sameFile(result.Input, result.Output) {
			log.Warn().Str("file", result.Input).Msg("output replaced the input in place, keeping it")

			return
		}

		if err := os.Remove(result.Input); err != nil {
			log.Error().Err(err).Str("file", result.Input).Msg("deleting input")
		} else if !p.cfg.Quiet {
			fmt.Fprintf(p.out, "Deleted %q\n", result.Input)
		}
	}
}

// sameFile reports whether both paths name the same file, as when revealing a name without
// the suffix into its own input directory.
func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}

	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)

	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}

// processFile transforms one file into a staged output and commits it to outPath.
// Both handles are closed on every path and the staged output is removed on failure.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	inFile, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}
	defer inFile.Close()

	staging, err := fileutil.NewStaging(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	defer staging.Discard(&err)

	log.Debug().Str("input", filename).Str("staging", staging.File.Name()).Msg("transforming")

	buf := p.buffers.get()
	defer p.buffers.put(buf)

	stream := keystream.NewStream(p.key, p.cfg.Direction)

	n, err := stream.Copy(staging.File, inFile, *buf)
	if err != nil {
		if errors.Is(err, keystream.ErrWrite) {
			return 0, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return 0, err
	}

	if _, err := staging.Commit(p.cfg.PreserveTimestamps); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return n, nil
}
