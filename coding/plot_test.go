// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpec(t *testing.T, version int, level Level) *Spec {
	t.Helper()
	s, err := NewSpec(false, version, Byte, level)
	require.NoError(t, err)
	return s
}

// functionGrid returns a grid with function patterns and format
// information drawn.
func functionGrid(s *Spec) *Grid {
	g := NewGrid(s.Size)
	DrawFunctionPatterns(g, s)
	DrawFormat(g, Expand(uint32(FormatWord(s.Level, MaskID)), 15))
	return g
}

func TestStamp(t *testing.T) {
	p := Pattern{{Dark, Light}, {Light, Dark}}
	g := NewGrid(3)
	g.Stamp(-1, -1, p)
	assert.Equal(t, Dark, g.At(0, 0))
	assert.Equal(t, 8, g.Count(Unset))
	g.Stamp(2, 2, p)
	assert.Equal(t, Dark, g.At(2, 2))
	assert.Equal(t, 7, g.Count(Unset))
	g.Stamp(0, 1, p)
	assert.Equal(t, []Module{Dark, Dark, Light}, []Module{
		g.At(0, 0), g.At(0, 1), g.At(0, 2)})
	assert.Equal(t, Unset, g.At(-1, 5))
	assert.Panics(t, func() { g.Set(3, 0, Dark) })
}

func TestFinder(t *testing.T) {
	s := newSpec(t, 1, L)
	g := NewGrid(s.Size)
	DrawFunctionPatterns(g, s)
	for _, c := range [][2]int{{0, 0}, {0, 20}, {20, 0}} {
		row, col := c[0], c[1]
		assert.True(t, g.Dark(row, col), "corner %v", c)
	}
	assert.Equal(t, Light, g.At(1, 1))
	assert.Equal(t, Dark, g.At(3, 3))
	assert.Equal(t, Light, g.At(7, 7))
	assert.Equal(t, Light, g.At(7, 0))
	assert.Equal(t, Light, g.At(0, 13))
	assert.Equal(t, Light, g.At(13, 7))
	assert.Equal(t, Unset, g.At(20, 20))
	assert.Equal(t, Unset, g.At(8, 8))
}

func TestTiming(t *testing.T) {
	s := newSpec(t, 1, L)
	g := NewGrid(s.Size)
	DrawFunctionPatterns(g, s)
	for i := 8; i < 13; i++ {
		assert.Equal(t, i%2 == 0, g.Dark(6, i), "row 6 col %d", i)
		assert.Equal(t, i%2 == 0, g.Dark(i, 6), "col 6 row %d", i)
	}
}

func TestAlignment(t *testing.T) {
	s := newSpec(t, 7, L)
	g := NewGrid(s.Size)
	DrawFunctionPatterns(g, s)
	for _, c := range [][2]int{{22, 22}, {6, 22}, {22, 6}, {38, 38}, {22, 38}} {
		row, col := c[0], c[1]
		assert.Equal(t, Dark, g.At(row, col), "centre %v", c)
		assert.Equal(t, Light, g.At(row-1, col+1), "ring %v", c)
		assert.Equal(t, Dark, g.At(row+2, col-2), "edge %v", c)
	}
	// no pattern next to the bottom left finder
	assert.Equal(t, Unset, g.At(36, 8))
}

func TestVersionInformation(t *testing.T) {
	s := newSpec(t, 7, L)
	g := NewGrid(s.Size)
	DrawFunctionPatterns(g, s)
	w := VersionWord(7)
	for i := 0; i < 18; i++ {
		dark := w>>i&1 != 0
		assert.Equal(t, dark, g.Dark(i/3, s.Size-11+i%3), "bit %d", i)
		assert.Equal(t, dark, g.Dark(s.Size-11+i%3, i/3), "bit %d", i)
	}
	s = newSpec(t, 6, L)
	g = NewGrid(s.Size)
	DrawFunctionPatterns(g, s)
	assert.Equal(t, Unset, g.At(0, s.Size-11))
}

// formatCells lists the first copy of the format information, most
// significant bit first.
var formatCells = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

func readFormat(dark func(row, col int) bool, size int) (a, b uint16) {
	for k, c := range formatCells {
		a <<= 1
		if dark(c[0], c[1]) {
			a |= 1
		}
		b <<= 1
		row, col := size-1-k, 8
		if k >= 7 {
			row, col = 8, size-15+k
		}
		if dark(row, col) {
			b |= 1
		}
	}
	return a, b
}

func TestDrawFormat(t *testing.T) {
	for v := 1; v <= 9; v++ {
		s := newSpec(t, v, Q)
		g := functionGrid(s)
		a, b := readFormat(g.Dark, s.Size)
		assert.Equal(t, FormatWord(Q, MaskID), a, "version %d", v)
		assert.Equal(t, FormatWord(Q, MaskID), b, "version %d", v)
		assert.Equal(t, Dark, g.At(s.Size-8, 8))
	}
	assert.Panics(t, func() { DrawFormat(NewGrid(21), make([]byte, 14)) })
}

func TestDrawIdempotent(t *testing.T) {
	s := newSpec(t, 8, H)
	g1 := functionGrid(s)
	g2 := functionGrid(s)
	DrawFunctionPatterns(g2, s)
	DrawFormat(g2, Expand(uint32(FormatWord(s.Level, MaskID)), 15))
	assert.Equal(t, g1, g2)
}

var goLevels = [4]qrcode.RecoveryLevel{
	L: qrcode.Low,
	M: qrcode.Medium,
	Q: qrcode.High,
	H: qrcode.Highest,
}

// goBitmap returns the symbol produced by go-qrcode, indexed [row][col].
func goBitmap(t *testing.T, text string, v int, l Level) [][]bool {
	t.Helper()
	q, err := qrcode.NewWithForcedVersion(text, v, goLevels[l])
	require.NoError(t, err)
	q.DisableBorder = true
	return q.Bitmap()
}

func TestFunctionPatternsGoQRCode(t *testing.T) {
	for v := 1; v <= 9; v++ {
		s := newSpec(t, v, L)
		g := NewGrid(s.Size)
		DrawFunctionPatterns(g, s)
		g.Set(s.Size-8, 8, Dark)
		bm := goBitmap(t, "A", v, L)
		require.Len(t, bm, s.Size)
		for row := 0; row < s.Size; row++ {
			for col := 0; col < s.Size; col++ {
				if m := g.At(row, col); m != Unset {
					require.Equal(t, m == Dark, bm[row][col],
						"version %d (%d, %d)", v, row, col)
				}
			}
		}
	}
}
