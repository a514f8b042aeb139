package keystream

import (
	"errors"
	"fmt"
	"io"
)

// DefaultChunkSize is the read size used when none is configured.
const DefaultChunkSize = 4 * 1024 * 1024

// Stream applies a key to consecutive bytes of one file.
// Its only state is the absolute offset of the next byte.
type Stream struct {
	key       Key
	direction Direction
	offset    int64
}

// NewStream returns a stream positioned at offset 0.
// The key must be non-empty, as returned by DeriveKey.
func NewStream(key Key, direction Direction) *Stream {
	return &Stream{
		key:       key,
		direction: direction,
	}
}

// Offset returns the absolute offset of the next byte to be transformed.
func (s *Stream) Offset() int64 {
	return s.offset
}

// Apply transforms src into dst and advances the offset by len(src).
// dst must be at least as long as src; dst and src may be the same slice.
func (s *Stream) Apply(dst, src []byte) {
	keyLen := int64(len(s.key))
	idx := int(s.offset % keyLen)

	for i, b := range src {
		dst[i] = s.direction.apply(b, s.key[idx])

		idx++
		if idx == len(s.key) {
			idx = 0
		}
	}

	s.offset += int64(len(src))
}

// Copy reads r in chunks of at most len(buf) bytes, transforms each chunk in place
// and writes it to w before reading the next one. It returns the number of bytes processed.
func (s *Stream) Copy(w io.Writer, r io.Reader, buf []byte) (int64, error) {
	if len(buf) == 0 {
		return 0, fmt.Errorf("%w: buffer is empty", ErrInvalidChunkSize)
	}

	var total int64

	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			s.Apply(buf[:n], buf[:n])

			written, err := w.Write(buf[:n])

			total += int64(written)

			if err != nil {
				return total, fmt.Errorf("%w: %w", ErrWrite, err)
			}

			if written != n {
				return total, fmt.Errorf("%w: %w", ErrWrite, io.ErrShortWrite)
			}
		}

		if errors.Is(readErr, io.EOF) {
			return total, nil
		}

		if readErr != nil {
			return total, fmt.Errorf("%w: %w", ErrRead, readErr)
		}
	}
}

// Transform streams r through a fresh keystream into w using chunks of chunkSize bytes.
func Transform(r io.Reader, w io.Writer, key Key, direction Direction, chunkSize int) (int64, error) {
	if chunkSize < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}

	if len(key) == 0 {
		return 0, fmt.Errorf("%w: key is empty", ErrInvalidKeyFormat)
	}

	return NewStream(key, direction).Copy(w, r, make([]byte, chunkSize))
}
