package keystream

import (
	"fmt"
	"strings"
)

// Direction selects whether the keystream is added to or subtracted from the data.
type Direction int

const (
	// Forward adds the keystream (obfuscate).
	Forward Direction = iota
	// Inverse subtracts the keystream (reveal).
	Inverse
)

// ParseDirection maps a selector such as "obfuscate", "enc", "reveal" or "dec" to a Direction.
func ParseDirection(selector string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "forward", "obfuscate", "enc", "encrypt":
		return Forward, nil
	case "inverse", "reveal", "dec", "decrypt":
		return Inverse, nil
	default:
		return Forward, fmt.Errorf("%w: %q (use enc or dec)", ErrInvalidDirection, selector)
	}
}

// String returns the command name associated with the direction.
func (d Direction) String() string {
	if d == Inverse {
		return "reveal"
	}

	return "obfuscate"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// apply combines one data byte with one key byte.
func (d Direction) apply(data, key byte) byte {
	if d == Inverse {
		return data - key
	}

	return data + key
}
