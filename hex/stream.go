package hex

import (
	"io"

	"github.com/ericlagergren/ctmask"
)

// NewEncoder returns an io.Writer that writes lowercase
// hexadecimal characters to w.
//
// Each call to Write runs in constant time for the length of its
// input.
func NewEncoder(w io.Writer) io.Writer {
	return &encoder{w: w}
}

type encoder struct {
	w   io.Writer
	err error
	buf [bufferSize]byte
}

func (e *encoder) Write(p []byte) (int, error) {
	var n int
	for n < len(p) && e.err == nil {
		src := p[n:]
		if len(src) > len(e.buf)/2 {
			src = src[:len(e.buf)/2]
		}
		m := Encode(e.buf[:], src)

		var w int
		w, e.err = e.w.Write(e.buf[:m])
		// Only whole bytes count as written.
		n += w / 2
		if w < m && e.err == nil {
			e.err = io.ErrShortWrite
		}
	}
	return n, e.err
}

// NewDecoder returns an io.Reader that decodes hexadecimal
// characters from r.
//
// NewDecoder expects that r contain only an even number of
// hexadecimal characters.
//
// The first call to Read that encounters a malformed character
// returns a non-nil error. Each call to Read runs in constant time
// for the length of the chunk it decodes, but the point at which
// an error is returned reveals which chunk held the bad
// character.
func NewDecoder(r io.Reader) io.Reader {
	return &decoder{r: r}
}

type decoder struct {
	r   io.Reader
	err error
	// buf[:n] is encoded input that has not been decoded yet.
	buf [bufferSize]byte
	n   int
}

var _ io.Reader = (*decoder)(nil)

func (d *decoder) Read(p []byte) (int, error) {
	for d.n < 2 && d.err == nil {
		var m int
		m, d.err = d.r.Read(d.buf[d.n:])
		d.n += m
	}
	if d.n < 2 {
		return 0, d.finish()
	}

	k := d.n / 2
	if len(p) < k {
		k = len(p)
	}
	n, err := Decode(p[:k], d.buf[:2*k])
	if err != nil {
		// The rest of the input is discarded.
		d.n, d.err = 0, err
		return n, err
	}
	d.n = copy(d.buf[:], d.buf[2*k:d.n])
	return n, nil
}

// finish returns the error to report once fewer than two encoded
// characters remain.
//
// A single character left over at io.EOF is reported as an
// InvalidByteError if it is not a hexadecimal digit and as
// io.ErrUnexpectedEOF otherwise, matching encoding/hex.
func (d *decoder) finish() error {
	if d.err != io.EOF || d.n == 0 {
		return d.err
	}
	c := d.buf[0]
	d.n = 0

	_, ok := fromHexChar(uint(c))
	if ctmask.ToBit(ok) == 0 {
		d.err = InvalidByteError(c)
	} else {
		d.err = io.ErrUnexpectedEOF
	}
	return d.err
}
