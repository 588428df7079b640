// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
)

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// palette returns the background and foreground colours of c.
func (c *Code) palette() color.Palette {
	p := color.Palette{whiteColor, blackColor}
	if c.Palette != nil {
		p = color.Palette{c.Palette[0], c.Palette[1]}
	}
	if c.Reverse {
		p[0], p[1] = p[1], p[0]
	}
	return p
}

// Image returns an Image displaying the code, c.Scale pixels per
// module, surrounded by the quiet zone.  Index 1 in the palette of the
// image is the foreground.  Image returns nil if c is not valid.
func (c *Code) Image() image.Image {
	if c.check() != nil {
		return nil
	}
	scale := c.Scale
	side := (c.Size + 2*c.Border) * scale
	img := image.NewPaletted(image.Rect(0, 0, side, side), c.palette())
	off := c.Border * scale
	for y := 0; y < c.Size; y++ {
		row := img.Pix[(off+y*scale)*img.Stride:]
		for x := 0; x < c.Size; x++ {
			if !c.Black(x, y) {
				continue
			}
			p := row[off+x*scale:][:scale]
			for i := range p {
				p[i] = 1
			}
		}
		// replicate the first pixel row
		for i := 1; i < scale; i++ {
			copy(row[i*img.Stride:(i+1)*img.Stride], row[:img.Stride])
		}
	}
	return img
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil {
		return ErrArgs
	}
	if err := c.check(); err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, c.Image())
}

// PNG returns a PNG image displaying the code, or nil if c is not
// valid.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}
