package processor

import (
	"strings"

	"github.com/idelchi/goxor/internal/keystream"
)

// OutputName maps an input file name to its output file name.
// Obfuscating appends suffix. Revealing strips a trailing suffix if the name is
// longer than the suffix, and otherwise keeps the name unchanged.
func OutputName(name string, direction keystream.Direction, suffix string) string {
	if direction == keystream.Forward {
		return name + suffix
	}

	if len(name) > len(suffix) && strings.HasSuffix(name, suffix) {
		return strings.TrimSuffix(name, suffix)
	}

	return name
}
