// Package processor runs files through the keystream one at a time.
// Output is staged next to its final name and committed only when complete,
// so a failed file leaves nothing behind. A failure in one file is reported
// and does not stop the others.
package processor
