// https://github.com/jedisct1/libsodium/blob/d4ee08ab8a1c674203796161af6d013283b33d69/src/libsodium/sodium/codecs.c
// https://github.com/jedisct1/libsodium/blob/561e556dad078af581f338fe3de9ee6362d28b16/LICENSE
//
//  Copyright (c) 2013-2022 Frank Denis <j at pureftpd dot org>
//  Portions Copyright (c) 2022 Eric Lagergren
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted, provided that the above
// copyright notice and this permission notice appear in all copies.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
// WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
// ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
// WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
// ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
// OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.

package hex

import "github.com/ericlagergren/ctmask"

// Encode encodes src into EncodedLen(len(src)) bytes of dst.
// As a convenience, it returns the number of bytes written to
// dst, but this value is always EncodedLen(len(src)).
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) int {
	j := 0
	for _, v := range src {
		dst[j] = toHexChar(uint(v >> 4))
		dst[j+1] = toHexChar(uint(v & 0x0f))
		j += 2
	}
	return len(src) * 2
}

// toHexChar returns the lowercase hexadecimal digit for the
// nibble n.
//
// This is the constant-time equivalent of
//
//	if n < 10 {
//	    return '0' + n
//	}
//	return 'a' + n - 10
func toHexChar(n uint) byte {
	return byte(ctmask.SelectUint(ctmask.LtUint(n, 10), '0'+n, 'a'-10+n))
}

// fromHexChar returns the value of the hexadecimal digit c and
// a mask that is ctmask.TrueUint if c is a valid digit and
// ctmask.FalseUint otherwise. The value is zero if c is invalid.
func fromHexChar(c uint) (val, ok uint) {
	// Is c in '0' ... '9'?
	num := ctmask.GeUint(c, '0') & ctmask.LtUint(c, '9'+1)

	// Is c in 'a' ... 'f' or 'A' ... 'F'?
	//
	// The only difference between each uppercase and lowercase
	// ASCII pair ('a'-'A', 'e'-'E', etc.) is bit #5. Clearing
	// that bit folds the lowercase letters into uppercase. No
	// other byte folds into 'A' ... 'F'.
	u := c &^ 0x20
	alpha := ctmask.GeUint(u, 'A') & ctmask.LtUint(u, 'F'+1)

	// At most one of num and alpha is set.
	val = num&(c-'0') | alpha&(u-'A'+10)
	return val, num | alpha
}

// Decode decodes src into DecodedLen(len(src)) bytes, returning
// the actual number of bytes written to dst.
//
// Decode expects that src contains only hexadecimal characters
// and that src has even length. If the input is malformed,
// Decode returns the number of bytes decoded before the error.
//
// Decode runs in constant time for the length of src.
func Decode(dst, src []byte) (int, error) {
	// failed is ctmask.TrueUint once an invalid character has
	// been seen.
	var failed uint
	// badIdx is the number of bytes written to dst when the
	// first invalid character was found and badChar is that
	// character. Both only have meaning if failed is set.
	var badIdx, badChar uint
	// acc holds the high nibble of the current pair.
	var acc byte
	// i is the index into dst.
	var i int

	for j := 0; j < len(src); j++ {
		c := uint(src[j])
		val, ok := fromHexChar(c)

		// This is the constant-time equivalent of
		//
		//	if failed == 0 && ok == 0 {
		//	    badIdx = i
		//	    badChar = c
		//	}
		//	if ok == 0 {
		//	    failed = 1
		//	}
		//
		first := ^ok &^ failed
		badIdx = ctmask.SelectUint(first, uint(i), badIdx)
		badChar = ctmask.SelectUint(first, c, badChar)
		failed |= ^ok

		if j%2 == 0 {
			acc = byte(val) << 4
		} else {
			dst[i] = acc | byte(val)
			i++
		}
	}

	// encoding/hex reports an invalid character before an
	// invalid length, so we do that too.
	if ctmask.ToBit(failed) != 0 {
		return int(badIdx), InvalidByteError(byte(badChar))
	}
	if len(src)%2 == 1 {
		return i, ErrLength
	}
	return i, nil
}
