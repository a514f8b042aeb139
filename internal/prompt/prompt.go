// Package prompt reads answers from an interactive user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when the input ends before an answer was given.
var ErrNoInput = errors.New("no input")

// Line writes label to w and reads one line from r, without the trailing newline.
func Line(r io.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)

	// Byte-wise reads so nothing past the newline is consumed from r.
	reader := bufio.NewReaderSize(oneByteReader{r}, 16) //nolint:mnd

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}

	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrNoInput
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Secret writes label to w and reads one line from r.
// When r is a terminal the answer is not echoed.
func Secret(r io.Reader, w io.Writer, label string) (string, error) {
	file, ok := r.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return Line(r, w, label)
	}

	fmt.Fprint(w, label)

	secret, err := term.ReadPassword(int(file.Fd()))

	fmt.Fprintln(w)

	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}

	return string(secret), nil
}

type oneByteReader struct{ r io.Reader }

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}

	return o.r.Read(p)
}
