// Package keystream derives a repeating key from an arbitrary-length decimal number
// and applies it to byte streams with modular addition (obfuscate) or subtraction (reveal).
//
// The key byte for any input byte depends only on that byte's absolute offset in the stream,
// so output is identical no matter how the input is chunked.
//
// The transform is not encryption in any cryptographic sense.
package keystream
