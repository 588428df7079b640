// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"

	"github.com/unixdj/qrplot/coding"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if err := c.check(); err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	scale := c.Scale
	bord := c.Border
	length := scale * (c.Size + bord*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := coding.NewBits((length + 7) / 8)
	for y := -bord; y < c.Size+bord; y++ {
		row.Reset()
		for x := -bord; x < c.Size+bord; x++ {
			var v uint32
			if c.Black(x, y) != c.Reverse {
				v = ^v
			}
			for n := scale; n > 0; n -= 32 {
				row.Write(v, min(n, 32))
			}
		}
		row.Write(0, -length&7)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row.Bytes()); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}
