// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// A Mode is a QR segment encoding.
type Mode int16

// Encoding modes.
const (
	Numeric      Mode = iota // numeric mode, not implemented
	Alphanumeric             // alphanumeric mode, ASCII-compatible text
	Byte                     // byte mode, UTF-8 text encoded as ISO 8859-1
	Kanji                    // kanji mode, not implemented
)

var modeNames = [...]string{
	Numeric:      "numeric",
	Alphanumeric: "alphanumeric",
	Byte:         "byte",
	Kanji:        "kanji",
}

func (mode Mode) String() string {
	if mode >= 0 && int(mode) < len(modeNames) {
		return modeNames[mode]
	}
	return strconv.Itoa(int(mode))
}

// modeEncoder implements a QR segment encoding.
//
// The text is passed through transform, validated with accepts and
// written as the indicator, the character count and the payload.  The
// encoder calls a non-nil encode2 as long as two source bytes are
// available, then encode1 for the rest.  If both are nil, each byte is
// encoded as 8 bits.
type modeEncoder struct {
	indicator uint32 // 4 bit mode indicator
	count     int    // character count field length

	accepts   func(byte) bool
	transform func(string) (string, bool)
	encode2   func([2]byte) (uint32, int)
	encode1   func(byte) (uint32, int)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// IsAlphanumeric reports whether c is in the alphanumeric character set.
func IsAlphanumeric(c byte) bool {
	return c >= ' ' && alphamask>>(c-' ')&1 != 0
}

// Numeric and Kanji have no encoder.
var modes = [...]*modeEncoder{
	Alphanumeric: {
		indicator: 2,
		count:     9,
		accepts:   IsAlphanumeric,
		transform: func(s string) (string, bool) {
			return strings.ToUpper(s), true
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]&0x3f])*45 +
				uint32(alpha[b[1]&0x3f]), 11
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b&0x3f]), 6
		},
	},
	Byte: {
		indicator: 4,
		count:     8,
		transform: func(s string) (string, bool) {
			t, err := charmap.ISO8859_1.NewEncoder().String(s)
			return t, err == nil
		},
	},
	Kanji: nil,
}

func getMode(mode Mode) *modeEncoder {
	if mode >= 0 && int(mode) < len(modes) {
		return modes[mode]
	}
	return nil
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents text not encodable in its mode.
type SegmentError Segment

func (e SegmentError) Error() string {
	return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
}

// ModeError represents a mode without an encoder.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: unsupported mode %s", Mode(e))
}

// transform returns the text of seg prepared for encoding.
func (seg Segment) transform() (string, *modeEncoder, error) {
	m := getMode(seg.Mode)
	if m == nil {
		return "", nil, ModeError(seg.Mode)
	}
	s, ok := seg.Text, true
	if m.transform != nil {
		s, ok = m.transform(s)
	}
	if !ok {
		return "", nil, SegmentError(seg)
	}
	if is := m.accepts; is != nil {
		for i := 0; i < len(s); i++ {
			if !is(s[i]) {
				return "", nil, SegmentError(seg)
			}
		}
	}
	return s, m, nil
}

// EncodedLength returns the encoded length of seg in bits, header
// included.
func (seg Segment) EncodedLength() (int, error) {
	s, m, err := seg.transform()
	if err != nil {
		return 0, err
	}
	return m.length(len(s)), nil
}

func (m *modeEncoder) length(n int) int {
	bits := n * 8
	if m.encode2 != nil {
		_, n2 := m.encode2([2]byte{})
		_, n1 := m.encode1(0)
		bits = n/2*n2 + n%2*n1
	}
	return 4 + m.count + bits
}

// Encode writes seg to b.  Text too long for the character count
// field yields a CapacityError with the given capacity.
func (seg Segment) Encode(b *Bits, capacity int) error {
	s, m, err := seg.transform()
	if err != nil {
		return err
	}
	if len(s) >= 1<<m.count {
		return &CapacityError{Bits: b.Bits() + m.length(len(s)),
			Capacity: capacity}
	}
	b.Write(m.indicator, 4)
	b.Write(uint32(len(s)), m.count)
	if m.encode2 == nil {
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
		return nil
	}
	for ; len(s) >= 2; s = s[2:] {
		b.Write(m.encode2([2]byte{s[0], s[1]}))
	}
	if s != "" {
		b.Write(m.encode1(s[0]))
	}
	return nil
}
