package prompt_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/idelchi/goxor/internal/prompt"
)

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix newline", "enc\n", "enc"},
		{"windows newline", "dec\r\n", "dec"},
		{"no newline", "12345", "12345"},
		{"empty line", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder

			got, err := prompt.Line(strings.NewReader(tt.input), &out, "enc/dec: ")
			if err != nil {
				t.Fatalf("Line(%q) error: %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("Line(%q) = %q, want %q", tt.input, got, tt.want)
			}

			if out.String() != "enc/dec: " {
				t.Errorf("label = %q, want %q", out.String(), "enc/dec: ")
			}
		})
	}
}

func TestLineLeavesRemainingInput(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("enc\n1000\n")

	first, err := prompt.Line(in, io.Discard, "")
	if err != nil {
		t.Fatalf("first Line error: %v", err)
	}

	second, err := prompt.Secret(in, io.Discard, "")
	if err != nil {
		t.Fatalf("Secret error: %v", err)
	}

	if first != "enc" || second != "1000" {
		t.Errorf("answers = (%q, %q), want (%q, %q)", first, second, "enc", "1000")
	}
}

func TestLineNoInput(t *testing.T) {
	t.Parallel()

	if _, err := prompt.Line(strings.NewReader(""), io.Discard, "key: "); !errors.Is(err, prompt.ErrNoInput) {
		t.Errorf("Line on empty input error = %v, want %v", err, prompt.ErrNoInput)
	}
}
