package hex

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

// TestEncodeStdlib tests Encode against encoding/hex.
func TestEncodeStdlib(t *testing.T) {
	src := make([]byte, 1024)
	if _, err := rand.Read(src); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		want := hex.EncodeToString(src[:i])
		got := EncodeToString(src[:i])
		if want != got {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want, got))
		}
	}
}

// TestHexChar tests toHexChar and fromHexChar for every byte.
func TestHexChar(t *testing.T) {
	const digits = "0123456789abcdef"
	for i := 0; i < 16; i++ {
		if c := toHexChar(uint(i)); c != digits[i] {
			t.Fatalf("toHexChar(%d): expected %q, got %q", i, digits[i], c)
		}
	}
	for i := 0; i < 256; i++ {
		c := byte(i)
		want, err := hex.DecodeString(string([]byte{'0', c}))
		val, ok := fromHexChar(uint(c))
		if (err == nil) != (ok != 0) {
			t.Fatalf("%q: expected valid=%t", c, err == nil)
		}
		if ok != 0 && ok != ^uint(0) {
			t.Fatalf("%q: non-canonical mask %#x", c, ok)
		}
		if err == nil && byte(val) != want[0] {
			t.Fatalf("%q: expected %d, got %d", c, want[0], val)
		}
		if err != nil && val != 0 {
			t.Fatalf("%q: expected zero value, got %d", c, val)
		}
	}
}

func TestDecodeStdlib(t *testing.T) {
	for _, s := range []string{
		"",
		"00",
		"0123456789abcdef",
		"0123456789ABCDEF",
		"DeadBeef",
		"0",
		"abc",
		"zz",
		"0g",
		"g0",
		"00ff0",
		"00ff0z",
		"0011gg",
		"01\n2",
		"ffff:",
	} {
		want, wantErr := hex.DecodeString(s)
		got, err := DecodeString(s)
		if !errors.Is(err, wantErr) && err != wantErr {
			t.Fatalf("%q: expected error %v, got %v", s, wantErr, err)
		}
		if !bytes.Equal(want, got) {
			t.Fatalf("%q: mismatch: %s", s, cmp.Diff(want, got))
		}
	}
}

func TestRoundTrip(t *testing.T) {
	src := make([]byte, 513)
	if _, err := rand.Read(src); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeString(EncodeToString(src))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(src, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStream(t *testing.T) {
	src := make([]byte, 3*bufferSize+7)
	if _, err := rand.Read(src); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	n, err := enc.Write(src)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(src) {
		t.Fatalf("expected %d, got %d", len(src), n)
	}
	if want := hex.EncodeToString(src); buf.String() != want {
		t.Fatalf("encoder: mismatch: %s", cmp.Diff(want, buf.String()))
	}

	got, err := io.ReadAll(NewDecoder(&buf))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(src, got); diff != "" {
		t.Fatalf("decoder: mismatch (-want +got):\n%s", diff)
	}
}

// TestStreamErrors tests that the decoder reports the same errors
// and partial output as encoding/hex, however the input is split
// across reads.
func TestStreamErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{"", nil},
		{"0", io.ErrUnexpectedEOF},
		{"z", InvalidByteError('z')},
		{"0g", InvalidByteError('g')},
		{"000", io.ErrUnexpectedEOF},
		{"00z", InvalidByteError('z')},
		{"00F", io.ErrUnexpectedEOF},
		{"0011gg00", InvalidByteError('g')},
		{strings.Repeat("ab", bufferSize) + "x", InvalidByteError('x')},
		{strings.Repeat("ab", bufferSize) + "a", io.ErrUnexpectedEOF},
	} {
		want, _ := io.ReadAll(hex.NewDecoder(strings.NewReader(tc.in)))
		for _, r := range []struct {
			name string
			r    io.Reader
		}{
			{"whole", strings.NewReader(tc.in)},
			{"bytewise", iotest.OneByteReader(strings.NewReader(tc.in))},
			{"half", iotest.HalfReader(strings.NewReader(tc.in))},
		} {
			got, err := io.ReadAll(NewDecoder(r.r))
			if err != tc.want {
				t.Errorf("%q (%s): expected %v, got %v", tc.in, r.name, tc.want, err)
			}
			if !bytes.Equal(want, got) {
				t.Errorf("%q (%s): mismatch: %s", tc.in, r.name, cmp.Diff(want, got))
			}
		}
	}
}

// TestStreamSmallReads tests the decoder with an output buffer
// smaller than its internal buffer.
func TestStreamSmallReads(t *testing.T) {
	src := make([]byte, bufferSize+3)
	if _, err := rand.Read(src); err != nil {
		t.Fatal(err)
	}
	dec := NewDecoder(strings.NewReader(hex.EncodeToString(src)))
	var got []byte
	p := make([]byte, 5)
	for {
		n, err := dec.Read(p)
		got = append(got, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff(src, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// TestStreamDecoderReadError tests that a reader error other than
// io.EOF is returned after the buffered input is decoded.
func TestStreamDecoderReadError(t *testing.T) {
	r := io.MultiReader(strings.NewReader("abc"), iotest.ErrReader(iotest.ErrTimeout))
	got, err := io.ReadAll(NewDecoder(r))
	if err != iotest.ErrTimeout {
		t.Fatalf("expected %v, got %v", iotest.ErrTimeout, err)
	}
	if want := []byte{0xab}; !bytes.Equal(got, want) {
		t.Fatalf("mismatch: %s", cmp.Diff(want, got))
	}
}

// limitedWriter accepts at most n bytes per call without
// reporting an error.
type limitedWriter struct {
	buf bytes.Buffer
	n   int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		p = p[:w.n]
	}
	return w.buf.Write(p)
}

// TestStreamShortWrite tests that the encoder reports
// io.ErrShortWrite when the underlying writer accepts less than
// it was given.
func TestStreamShortWrite(t *testing.T) {
	w := &limitedWriter{n: 5}
	n, err := NewEncoder(w).Write([]byte{0x01, 0x23, 0x45, 0x67})
	if err != io.ErrShortWrite {
		t.Fatalf("expected %v, got %v", io.ErrShortWrite, err)
	}
	// Five characters is two whole bytes.
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	if got := w.buf.String(); got != "01234" {
		t.Fatalf("expected %q, got %q", "01234", got)
	}
}
