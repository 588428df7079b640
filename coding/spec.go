// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A version describes metadata associated with a version.
type version struct {
	bytes   int             // total codewords
	align   []int           // alignment pattern centre coordinates
	pattern uint32          // version information word, 0 if none
	level   map[Level]level // absent levels are unsupported
}

type level struct {
	nblock int // number of blocks
	check  int // check codewords per block
}

// A Spec describes the structure of a symbol: its dimensions and the
// division of its codewords into error correction blocks.
//
// Blocks are stored short blocks first.  Each of the last LongBlocks
// blocks carries one more data codeword than DataCodewords.
type Spec struct {
	Version       Version
	Mode          Mode
	Level         Level
	Size          int // modules on a side
	Blocks        int // number of error correction blocks
	Codewords     int // codewords per short block
	DataCodewords int // data codewords per short block
	LongBlocks    int // blocks with an extra data codeword

	v *version
}

// NewSpec returns the Spec for the given configuration.  Versions run
// from 1 to 40, or from 1 to 4 if micro is set.
func NewSpec(micro bool, version int, mode Mode, level Level) (*Spec, error) {
	v := Version(version)
	switch {
	case v < MinVersion || v > MaxVersion || micro && v > 4:
		return nil, ErrVersion
	case mode < Numeric || mode > Kanji:
		return nil, ErrMode
	case level < L || level > H:
		return nil, ErrLevel
	}
	if micro {
		v += M1 - 1
	}
	vt, ok := vtab[v]
	if !ok {
		return nil, UnsupportedError("version " + v.String())
	}
	lev, ok := vt.level[level]
	if !ok {
		return nil, UnsupportedError(fmt.Sprintf("version %s level %s",
			v, level))
	}
	if _, ok := generators[lev.check]; !ok {
		return nil, UnsupportedError(fmt.Sprintf(
			"error correction length %d", lev.check))
	}
	cw := vt.bytes / lev.nblock
	return &Spec{
		Version:       v,
		Mode:          mode,
		Level:         level,
		Size:          v.Size(),
		Blocks:        lev.nblock,
		Codewords:     cw,
		DataCodewords: cw - lev.check,
		LongBlocks:    vt.bytes - cw*lev.nblock,
		v:             vt,
	}, nil
}

// Micro reports whether s describes a Micro QR symbol.
func (s *Spec) Micro() bool { return s.Version.Micro() }

// DataBytes returns the total number of data codewords.
func (s *Spec) DataBytes() int {
	return s.Blocks*s.DataCodewords + s.LongBlocks
}

// DataBits returns the data capacity in bits.
func (s *Spec) DataBits() int { return s.DataBytes() * 8 }

// ECCBytes returns the number of error correction codewords per block.
func (s *Spec) ECCBytes() int { return s.Codewords - s.DataCodewords }

// Bytes returns the total number of codewords.
func (s *Spec) Bytes() int { return s.v.bytes }

// Align returns the alignment pattern centre coordinates.
func (s *Spec) Align() []int { return s.v.align }

// VersionWord returns the 18-bit version information word, or 0 for
// versions below 7.
func (s *Spec) VersionWord() uint32 { return s.v.pattern }
