// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

func bit(b bool) Module {
	if b {
		return Dark
	}
	return Light
}

// DrawFunctionPatterns draws the alignment patterns, the timing
// strips, the finder patterns and the version information of s on g.
// Format information is drawn separately by DrawFormat.
func DrawFunctionPatterns(g *Grid, s *Spec) {
	siz := g.Size()
	pos := s.Align()
	for _, row := range pos {
		for _, col := range pos {
			if row == 6 && (col == 6 || col > siz-8) ||
				col == 6 && row > siz-8 {
				continue // finder corners
			}
			g.Stamp(row-2, col-2, alignment)
		}
	}
	for i := 0; i < siz; i++ {
		g.Set(6, i, bit(i&1 == 0))
		g.Set(i, 6, bit(i&1 == 0))
	}
	g.Stamp(-1, -1, finder)
	g.Stamp(-1, siz-8, finder)
	g.Stamp(siz-8, -1, finder)
	if w := s.VersionWord(); w != 0 {
		for i := 0; i < 18; i++ {
			m := bit(w>>i&1 != 0)
			g.Set(i/3, siz-11+i%3, m)
			g.Set(siz-11+i%3, i/3, m)
		}
	}
}

// DrawFormat draws two copies of the 15 format information bits,
// most significant first, and the dark module on g.
func DrawFormat(g *Grid, bits []byte) {
	if len(bits) != 15 {
		panic("qr: format information must be 15 bits")
	}
	siz := g.Size()
	for k, b := range bits {
		m := bit(b != 0)
		// next to the top left finder
		switch {
		case k < 6:
			g.Set(8, k, m)
		case k < 8:
			g.Set(8, k+1, m)
		case k == 8:
			g.Set(7, 8, m)
		default:
			g.Set(14-k, 8, m)
		}
		// below the top right and right of the bottom left finder
		if k < 7 {
			g.Set(siz-1-k, 8, m)
		} else {
			g.Set(8, siz-15+k, m)
		}
	}
	g.Set(siz-8, 8, Dark)
}
