// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Mask reports whether the data module at (row, col) is inverted.
type Mask func(row, col int) bool

// MaskID is the mask pattern reference of Mask3.
const MaskID = 3

// Mask3 is mask pattern 3.
var Mask3 Mask = func(row, col int) bool { return (row+col)%3 == 0 }

// A Walker generates the data module positions of a grid in placement
// order: in two-module wide columns from right to left, alternately
// upwards and downwards, right module before left, skipping the
// vertical timing strip and every module already written.
type Walker struct {
	g    *Grid
	row  int
	col  int  // right column of the current pair
	up   bool // direction
	left bool // next module is in the left column
	done bool
}

// NewWalker returns a Walker for g starting at the bottom right corner.
func NewWalker(g *Grid) *Walker {
	n := g.Size() - 1
	return &Walker{g: g, row: n, col: n, up: true, done: n < 1}
}

func (w *Walker) step() (row, col int, ok bool) {
	if w.done {
		return 0, 0, false
	}
	row, col = w.row, w.col
	if w.left {
		col--
	}
	w.left = !w.left
	if w.left {
		return row, col, true
	}
	if w.up {
		w.row--
	} else {
		w.row++
	}
	if w.row < 0 || w.row >= w.g.Size() {
		w.up = !w.up
		w.row = min(max(w.row, 0), w.g.Size()-1)
		w.col -= 2
		if w.col == 6 { // vertical timing strip
			w.col--
		}
		w.done = w.col < 1
	}
	return row, col, true
}

// Next returns the position of the next unset module.  ok is false
// when the grid is exhausted; a Walker cannot be restarted.
func (w *Walker) Next() (row, col int, ok bool) {
	for {
		if row, col, ok = w.step(); !ok || w.g.At(row, col) == Unset {
			return
		}
	}
}

// Place writes bits, one per byte, to the unset modules of g in
// placement order, 1 dark and 0 light, inverted where m is true.
// Modules left over after bits are exhausted receive 0.  Place returns
// the number of modules written.
func Place(g *Grid, bits []byte, m Mask) int {
	w := NewWalker(g)
	n := 0
	for row, col, ok := w.Next(); ok; row, col, ok = w.Next() {
		var b byte
		if n < len(bits) {
			b = bits[n] & 1
		}
		if m(row, col) {
			b ^= 1
		}
		g.Set(row, col, bit(b != 0))
		n++
	}
	return n
}
