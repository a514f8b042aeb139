package keystream

import (
	"fmt"
	"slices"
	"strings"
)

// Key is the base-256 representation of a decimal key, most significant byte first.
// It is never empty and must not be modified once derived.
type Key []byte

// DeriveKey converts a string of decimal digits of any length into its base-256 byte sequence.
// The value zero yields a single zero byte; leading zeros in the input contribute nothing.
func DeriveKey(decimal string) (Key, error) {
	if decimal == "" {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKeyFormat)
	}

	if idx := strings.IndexFunc(decimal, func(r rune) bool { return r < '0' || r > '9' }); idx >= 0 {
		return nil, fmt.Errorf("%w: non-digit character at position %d", ErrInvalidKeyFormat, idx)
	}

	var key Key

	for decimal != "0" {
		var remainder byte

		decimal, remainder = divmod256(decimal)
		key = append(key, remainder)
	}

	if len(key) == 0 {
		key = Key{0}
	}

	slices.Reverse(key)

	return key, nil
}

// divmod256 divides a decimal digit string by 256 using long division.
// The quotient carries no leading zeros, except "0" for a zero quotient.
func divmod256(decimal string) (string, byte) {
	var (
		quotient  strings.Builder
		remainder int
	)

	quotient.Grow(len(decimal))

	for i := range len(decimal) {
		value := remainder*10 + int(decimal[i]-'0')
		digit := value / 256
		remainder = value % 256

		if quotient.Len() > 0 || digit > 0 {
			quotient.WriteByte(byte('0' + digit))
		}
	}

	if quotient.Len() == 0 {
		return "0", byte(remainder)
	}

	return quotient.String(), byte(remainder)
}

// Len returns the number of bytes in the key.
func (k Key) Len() int {
	return len(k)
}
