// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// Generator polynomials by error correction length, without the
// leading coefficient.
var generators = func() map[int][]byte {
	m := make(map[int][]byte)
	for _, n := range []int{
		2, 5, 6, 7, 8, 10, 13, 14, 15, 16, 17, 18, 20, 22, 24, 26, 28, 30,
	} {
		m[n] = Field.Gen(n)
	}
	return m
}()

// ECC returns the n Reed-Solomon check codewords for data.
func ECC(data []byte, n int) ([]byte, error) {
	g, ok := generators[n]
	if !ok {
		return nil, UnsupportedError("error correction length " +
			strconv.Itoa(n))
	}
	acc := make([]byte, len(data)+n)
	for p, c := range data {
		acc[p] ^= c
		f := acc[p]
		if f == 0 {
			continue
		}
		for q, v := range g {
			acc[p+1+q] ^= Field.Mul(f, v)
		}
	}
	return acc[len(data):], nil
}

// interleave interleaves nblock blocks from src to dst, which must be
// of equal length.  The last len(src)%nblock blocks are one byte
// longer than the others.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	extra := dst[db*nblock:]
	dst = dst[:db*nblock]
	normal := nblock - len(extra)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= normal {
			extra[i-normal] = src[0]
			src = src[1:]
		}
	}
}
