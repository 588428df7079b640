// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// Bits is a bit stream writer.  Bits are stored most significant bit
// first; the unused low bits of a trailing fractional byte are zero.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with capacity for n bytes.
func NewBits(n int) *Bits {
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the written bytes.  It panics on a fractional byte.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v, most significant first.
// nbit may not exceed 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Pad codewords filling unused data capacity.
var pad = [2]byte{0xec, 0x11}

// PadTo adds t terminator bits to b, pads the last byte with zeros,
// appends pad codewords up to n bytes and truncates b to exactly n
// bytes.
func (b *Bits) PadTo(t, n int) {
	b.Write(0, t)
	for i := 0; len(b.b) < n; i++ {
		b.b = append(b.b, pad[i&1])
	}
	b.b = b.b[:n]
	b.nbit = n * 8
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}

// Expand returns the n bit binary representation of v as a slice of
// 0 and 1 values, most significant bit first.  It panics if v does not
// fit in n bits.
func Expand(v uint32, n int) []byte {
	if n < 32 && v>>n != 0 {
		panic("qr: " + strconv.FormatUint(uint64(v), 10) +
			" does not fit in " + strconv.Itoa(n) + " bits")
	}
	bits := make([]byte, n)
	for i := range bits {
		bits[i] = byte(v >> (n - 1 - i) & 1)
	}
	return bits
}

// Pack packs a slice of bits, one per byte, into bytes, most
// significant bit first.  The last byte is padded with zeros.
func Pack(bits []byte) []byte {
	b := NewBits((len(bits) + 7) >> 3)
	for _, v := range bits {
		b.Write(uint32(v&1), 1)
	}
	return b.b
}

// Unpack returns the bits of b, one per byte, most significant bit
// first.  Unpack is the inverse of Pack.
func Unpack(b []byte) []byte {
	s := NewBitStream(b)
	bits := make([]byte, len(b)*8)
	for i := range bits {
		bits[i] = s.Next()
	}
	return bits
}
