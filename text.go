// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// Text returns the code as text, row by row, with one rune per module
// and a newline after each row: on for black, off for white.  The
// quiet zone of c.Border modules is included.  c.Reverse swaps on and
// off.
func (c *Code) Text(on, off rune) string {
	if c.Reverse {
		on, off = off, on
	}
	var b strings.Builder
	pix := c.Size + 2*c.Border
	b.Grow((pix*max(len(string(on)), len(string(off))) + 1) * pix)
	for y := -c.Border; y < c.Size+c.Border; y++ {
		for x := -c.Border; x < c.Size+c.Border; x++ {
			if c.Black(x, y) {
				b.WriteRune(on)
			} else {
				b.WriteRune(off)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns the code as text using 'X' for black and ' ' for
// white.
func (c *Code) String() string { return c.Text('X', ' ') }
