package keystream_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/idelchi/goxor/internal/keystream"
)

func mustKey(t testing.TB, decimal string) keystream.Key {
	t.Helper()

	key, err := keystream.DeriveKey(decimal)
	if err != nil {
		t.Fatalf("DeriveKey(%q) error: %v", decimal, err)
	}

	return key
}

func transform(t testing.TB, data []byte, key keystream.Key, dir keystream.Direction, chunkSize int) []byte {
	t.Helper()

	var out bytes.Buffer

	n, err := keystream.Transform(bytes.NewReader(data), &out, key, dir, chunkSize)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}

	if n != int64(len(data)) {
		t.Fatalf("Transform processed %d bytes, want %d", n, len(data))
	}

	return out.Bytes()
}

func pattern(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i*31 + 7)
	}

	return data
}

func TestTransformKnownVectors(t *testing.T) {
	t.Parallel()

	key := mustKey(t, "1000")

	if !bytes.Equal(key, []byte{3, 232}) {
		t.Fatalf("DeriveKey(%q) = %v, want [3 232]", "1000", []byte(key))
	}

	obfuscated := transform(t, []byte{0, 0, 0, 0}, key, keystream.Forward, 4)
	if want := []byte{3, 232, 3, 232}; !bytes.Equal(obfuscated, want) {
		t.Errorf("forward = %v, want %v", obfuscated, want)
	}

	revealed := transform(t, []byte{3, 232, 3, 232}, key, keystream.Inverse, 4)
	if want := []byte{0, 0, 0, 0}; !bytes.Equal(revealed, want) {
		t.Errorf("inverse = %v, want %v", revealed, want)
	}
}

func TestTransformWrapsModulo256(t *testing.T) {
	t.Parallel()

	key := keystream.Key{200}

	got := transform(t, []byte{100, 0, 255}, key, keystream.Forward, 1)
	if want := []byte{44, 200, 199}; !bytes.Equal(got, want) {
		t.Errorf("forward = %v, want %v", got, want)
	}

	got = transform(t, []byte{44, 200, 199}, key, keystream.Inverse, 1)
	if want := []byte{100, 0, 255}; !bytes.Equal(got, want) {
		t.Errorf("inverse = %v, want %v", got, want)
	}
}

func TestTransformIsAdditiveNotXOR(t *testing.T) {
	t.Parallel()

	key := keystream.Key{1}

	got := transform(t, []byte{1}, key, keystream.Forward, 1)
	if got[0] != 2 {
		t.Errorf("forward(1, 1) = %d, want 2", got[0])
	}
}

func TestInverseUndoesForwardForEveryBytePair(t *testing.T) {
	t.Parallel()

	for k := range 256 {
		data := make([]byte, 256)
		for x := range data {
			data[x] = byte(x)
		}

		key := keystream.Key{byte(k)}

		fwd := keystream.NewStream(key, keystream.Forward)
		inv := keystream.NewStream(key, keystream.Inverse)

		buf := make([]byte, len(data))
		fwd.Apply(buf, data)
		inv.Apply(buf, buf)

		if !bytes.Equal(buf, data) {
			t.Fatalf("inverse(forward(x, %d)) != x", k)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		data []byte
	}{
		{"empty", "123", nil},
		{"single byte key", "7", pattern(1000)},
		{"zero key", "0", pattern(64)},
		{"long key", "98765432109876543210987654321098765432109876543210", pattern(10_000)},
		{"text", "1000", []byte("Hello, World!")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key := mustKey(t, tt.key)

			obfuscated := transform(t, tt.data, key, keystream.Forward, 13)
			revealed := transform(t, obfuscated, key, keystream.Inverse, 17)

			if !bytes.Equal(revealed, tt.data) {
				t.Errorf("round trip mismatch for key %q", tt.key)
			}

			if len(obfuscated) != len(tt.data) {
				t.Errorf("obfuscated length = %d, want %d", len(obfuscated), len(tt.data))
			}
		})
	}
}

func TestTransformChunkSizeIndependence(t *testing.T) {
	t.Parallel()

	key := mustKey(t, "123456789012345678901234567890")
	data := pattern(100_003)

	for _, dir := range []keystream.Direction{keystream.Forward, keystream.Inverse} {
		reference := transform(t, data, key, dir, 1)

		for _, size := range []int{7, 4096, keystream.DefaultChunkSize} {
			if got := transform(t, data, key, dir, size); !bytes.Equal(got, reference) {
				t.Errorf("%v: chunk size %d differs from chunk size 1", dir, size)
			}
		}
	}
}

// TestTransformShortReads checks that readers returning fewer bytes than requested
// do not desynchronize the key cursor.
func TestTransformShortReads(t *testing.T) {
	t.Parallel()

	key := mustKey(t, "98765")
	data := pattern(5000)

	reference := transform(t, data, key, keystream.Forward, 5000)

	var out bytes.Buffer

	reader := iotest.HalfReader(iotest.DataErrReader(bytes.NewReader(data)))

	if _, err := keystream.Transform(reader, &out, key, keystream.Forward, 64); err != nil {
		t.Fatalf("Transform error: %v", err)
	}

	if !bytes.Equal(out.Bytes(), reference) {
		t.Error("output with short reads differs from single-chunk output")
	}
}

func TestKeyCursorContinuity(t *testing.T) {
	t.Parallel()

	key := mustKey(t, "4294967297") // [1 0 0 0 1]
	data := pattern(3*len(key) + 2)

	want := make([]byte, len(data))
	for i := range data {
		want[i] = data[i] + key[i%len(key)]
	}

	for _, size := range []int{1, 2, 3, len(key), len(key) + 1, len(data)} {
		if got := transform(t, data, key, keystream.Forward, size); !bytes.Equal(got, want) {
			t.Errorf("chunk size %d: got %v, want %v", size, got, want)
		}
	}
}

func TestStreamOffset(t *testing.T) {
	t.Parallel()

	key := mustKey(t, "1000")
	stream := keystream.NewStream(key, keystream.Forward)

	first := []byte{0, 0, 0}
	stream.Apply(first, first)

	if got := stream.Offset(); got != 3 {
		t.Fatalf("Offset() = %d, want 3", got)
	}

	second := []byte{0, 0}
	stream.Apply(second, second)

	if want := []byte{232, 3}; !bytes.Equal(second, want) {
		t.Errorf("second chunk = %v, want %v", second, want)
	}

	if fresh := keystream.NewStream(key, keystream.Forward); fresh.Offset() != 0 {
		t.Errorf("new stream Offset() = %d, want 0", fresh.Offset())
	}
}

func TestTransformInvalidChunkSize(t *testing.T) {
	t.Parallel()

	key := mustKey(t, "1")

	for _, size := range []int{0, -1} {
		_, err := keystream.Transform(bytes.NewReader(nil), io.Discard, key, keystream.Forward, size)
		if !errors.Is(err, keystream.ErrInvalidChunkSize) {
			t.Errorf("Transform(chunkSize=%d) error = %v, want %v", size, err, keystream.ErrInvalidChunkSize)
		}
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}

	n := min(len(p), w.after)
	w.after -= n

	return n, nil
}

func TestTransformIOErrors(t *testing.T) {
	t.Parallel()

	key := mustKey(t, "1")

	_, err := keystream.Transform(iotest.ErrReader(errors.New("boom")), io.Discard, key, keystream.Forward, 8)
	if !errors.Is(err, keystream.ErrRead) {
		t.Errorf("read failure error = %v, want %v", err, keystream.ErrRead)
	}

	n, err := keystream.Transform(bytes.NewReader(pattern(32)), &failingWriter{after: 8}, key, keystream.Forward, 8)
	if !errors.Is(err, keystream.ErrWrite) {
		t.Errorf("write failure error = %v, want %v", err, keystream.ErrWrite)
	}

	if n != 8 {
		t.Errorf("bytes written before failure = %d, want 8", n)
	}
}

func FuzzTransformRoundTrip(f *testing.F) {
	f.Add([]byte("Hello, World!"), "1000", 3)
	f.Add([]byte{}, "0", 1)
	f.Add([]byte{0, 1, 2, 3, 4, 5}, "18446744073709551616", 2)
	f.Add(make([]byte, 1024), "123456789", 100)

	f.Fuzz(func(t *testing.T, data []byte, decimal string, chunkSize int) {
		key, err := keystream.DeriveKey(decimal)
		if err != nil || chunkSize < 1 || chunkSize > 1<<16 {
			return
		}

		obfuscated := transform(t, data, key, keystream.Forward, chunkSize)
		single := transform(t, data, key, keystream.Forward, max(1, len(data)))

		if !bytes.Equal(obfuscated, single) {
			t.Fatalf("chunk size %d changed the output", chunkSize)
		}

		if revealed := transform(t, obfuscated, key, keystream.Inverse, chunkSize); !bytes.Equal(revealed, data) {
			t.Fatalf("round trip failed for key %q", decimal)
		}
	})
}
