// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: the symbol
// specification, bit stream construction, Reed-Solomon coding,
// function pattern plotting and data placement.
package coding // import "github.com/unixdj/qrplot/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrplot/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrMode    = errors.New("qr: invalid mode")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side,
// a Micro QR code with version Mv 2v+9 pixels.
// Versions run in two sequences, from M1 to M4 and from 1 to 40:
// the larger the version, the more information the code can store.
type Version int

// Code versions.
const (
	// Micro QR versions
	M1 Version = MaxVersion + 1 + iota
	M2
	M3
	M4

	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string {
	if v >= M1 && v <= M4 {
		return []string{"M1", "M2", "M3", "M4"}[v-M1]
	}
	return strconv.Itoa(int(v))
}

// Micro reports whether v is a Micro QR version.
func (v Version) Micro() bool { return v >= M1 }

// Number returns the version number within its sequence: 1 to 40 for
// QR versions, 1 to 4 for Micro QR versions.
func (v Version) Number() int {
	if v.Micro() {
		return int(v-M1) + 1
	}
	return int(v)
}

// Size returns the number of modules on a side of a symbol of
// version v.
func (v Version) Size() int {
	base, inc := 21, 4
	if v.Micro() {
		base, inc = 11, 2
	}
	return base + inc*(v.Number()-1)
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// UnsupportedError reports a valid configuration the encoder has no
// tables for.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return "qr: unsupported " + string(e)
}

// CapacityError reports data that does not fit in the symbol.
type CapacityError struct {
	Bits     int // encoded length in bits
	Capacity int // available bits
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code",
		e.Bits, e.Capacity)
}
