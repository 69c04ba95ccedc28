// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hex implements constant-time hexadecimal encoding and
// decoding.
//
// It is a drop-in replacement for the non-dump parts of
// encoding/hex. Encoding and decoding run in time that depends
// only on the length of the input, not on its contents.
package hex

import "encoding/hex"

// ErrLength reports an attempt to decode an odd-length input.
var ErrLength = hex.ErrLength

// InvalidByteError values describe errors resulting from an
// invalid byte in a hex string.
type InvalidByteError = hex.InvalidByteError

// bufferSize is the number of hexadecimal characters to buffer
// in encoder and decoder.
const bufferSize = 1024

// EncodedLen returns the length of an encoding of n source
// bytes. Specifically, it returns n * 2.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the length of a decoding of x source bytes.
// Specifically, it returns x / 2.
func DecodedLen(x int) int { return x / 2 }

// EncodeToString returns the hexadecimal encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// DecodeString returns the bytes represented by the hexadecimal
// string s.
//
// DecodeString expects that s contains only hexadecimal
// characters and that s has even length. If the input is
// malformed, DecodeString returns the bytes decoded before the
// error.
//
// DecodeString runs in constant time for the length of s.
func DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	// Decoding in place is safe: each pair of input bytes
	// produces one output byte behind it.
	n, err := Decode(src, src)
	return src[:n], err
}
