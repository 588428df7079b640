// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

Text is encoded in a single segment into a symbol of a fixed version,
error correction level and mode, with mask pattern 3.  The resulting
Code can be rendered as text, as an image.Image, or as PNG or PBM.
*/
package qr // import "github.com/unixdj/qrplot"

import (
	"errors"
	"image/color"

	"github.com/unixdj/qrplot/coding"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

// A Mode denotes a segment encoding mode.
type Mode = coding.Mode

const (
	Numeric      = coding.Numeric
	Alphanumeric = coding.Alphanumeric
	Byte         = coding.Byte
	Kanji        = coding.Kanji
)

// Config describes the symbol to encode.
type Config struct {
	Micro   bool  // Micro QR symbol
	Version int   // 1 to 40, or 1 to 4 for Micro QR
	Mode    Mode  // segment encoding mode
	Level   Level // error correction level
	Strict  bool  // fail instead of truncating excess data
}

// DefaultConfig is the configuration used by Encode.
var DefaultConfig = Config{Version: 2, Mode: Byte, Level: L}

// An Encoder encodes text using a fixed Config.
// It is safe for concurrent use.
type Encoder struct {
	s      *coding.Spec
	strict bool
}

// NewEncoder returns an Encoder for c.
func NewEncoder(c Config) (*Encoder, error) {
	s, err := coding.NewSpec(c.Micro, c.Version, c.Mode, c.Level)
	if err != nil {
		return nil, err
	}
	return &Encoder{s: s, strict: c.Strict}, nil
}

// Spec returns the symbol specification of e.
func (e *Encoder) Spec() *coding.Spec { return e.s }

// Encode returns the QR code for text.
func (e *Encoder) Encode(text string) (*Code, error) {
	enc := coding.NewEncoder(e.s)
	enc.Strict = e.strict
	g, err := enc.Encode(text)
	if err != nil {
		return nil, err
	}
	return newCode(g), nil
}

// Encode returns the QR code for text using DefaultConfig.
func Encode(text string) (*Code, error) {
	e, err := NewEncoder(DefaultConfig)
	if err != nil {
		return nil, err
	}
	return e.Encode(text)
}

// A Code is a square pixel grid.
// It implements image.Image and direct PNG encoding.
type Code struct {
	Bitmap  []byte          // 1 is black, 0 is white
	Size    int             // number of pixels on a side
	Stride  int             // number of bytes per row
	Scale   int             // number of image pixels per QR pixel
	Border  int             // quiet zone width in QR pixels
	Palette *[2]color.Color // background and foreground, or nil
	Reverse bool            // swap background and foreground
}

// newCode returns a Code with the modules of g, one bit per module,
// rows padded to whole bytes.
func newCode(g *coding.Grid) *Code {
	siz := g.Size()
	stride := (siz + 7) >> 3
	b := coding.NewBits(siz * stride)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			var v uint32
			if g.Dark(y, x) {
				v = 1
			}
			b.Write(v, 1)
		}
		b.Write(0, -siz&7)
	}
	return &Code{Bitmap: b.Bytes(), Size: siz, Stride: stride, Scale: 8}
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// maxSide is the largest image side in pixels.
const maxSide = 1 << 16

// check reports whether c can be rendered.
func (c *Code) check() error {
	switch {
	case c.Size <= 0 || c.Scale <= 0 || c.Border < 0 ||
		c.Stride < (c.Size+7)>>3 || len(c.Bitmap) < c.Size*c.Stride:
		return ErrArgs
	case (c.Size+2*c.Border)*c.Scale > maxSide:
		return ErrLargeImage
	}
	return nil
}
