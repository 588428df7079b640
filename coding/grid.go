// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Module is the state of one cell of a symbol.
type Module byte

const (
	Unset Module = iota // not yet written
	Light
	Dark
)

func (m Module) String() string {
	switch m {
	case Unset:
		return "unset"
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "invalid"
}

// A Grid is a square array of modules addressed by row and column.
type Grid struct {
	size int
	m    []Module
}

// NewGrid returns a size×size Grid with every module unset.
func NewGrid(size int) *Grid {
	return &Grid{size: size, m: make([]Module, size*size)}
}

// Size returns the number of modules on a side of g.
func (g *Grid) Size() int { return g.size }

func (g *Grid) in(row, col int) bool {
	return uint(row) < uint(g.size) && uint(col) < uint(g.size)
}

// At returns the module at (row, col), or Unset outside the grid.
func (g *Grid) At(row, col int) Module {
	if !g.in(row, col) {
		return Unset
	}
	return g.m[row*g.size+col]
}

// Set sets the module at (row, col).  It panics outside the grid.
func (g *Grid) Set(row, col int, m Module) {
	if !g.in(row, col) {
		panic("qr: module out of range")
	}
	g.m[row*g.size+col] = m
}

// Dark reports whether the module at (row, col) is dark.
func (g *Grid) Dark(row, col int) bool { return g.At(row, col) == Dark }

// Count returns the number of modules in state m.
func (g *Grid) Count(m Module) int {
	n := 0
	for _, v := range g.m {
		if v == m {
			n++
		}
	}
	return n
}

// A Pattern is a rectangular block of modules, indexed [row][col].
type Pattern [][]Module

// Stamp copies p onto g with its top left corner at (row, col).
// Modules falling outside g are clipped.
func (g *Grid) Stamp(row, col int, p Pattern) {
	for i, r := range p {
		for j, m := range r {
			if g.in(row+i, col+j) {
				g.m[(row+i)*g.size+col+j] = m
			}
		}
	}
}

// square returns an n×n Pattern, n odd, with each module given by f
// of its distance in modules from the centre.
func square(n int, f func(d int) Module) Pattern {
	p := make(Pattern, n)
	c := n / 2
	for i := range p {
		p[i] = make([]Module, n)
		for j := range p[i] {
			p[i][j] = f(max(abs(i-c), abs(j-c)))
		}
	}
	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var (
	// Finder pattern with its light separator.
	finder = square(9, func(d int) Module {
		if d == 2 || d == 4 {
			return Light
		}
		return Dark
	})
	alignment = square(5, func(d int) Module {
		if d == 1 {
			return Light
		}
		return Dark
	})
)
