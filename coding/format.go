// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Level indicators in format information.
var levelBits = [4]uint32{L: 1, M: 0, Q: 3, H: 2}

// bch returns data followed by the remainder of its division by the
// generator poly of degree n.
func bch(data, poly uint32, n int) uint32 {
	rem := data
	for i := 0; i < n; i++ {
		rem = rem<<1 ^ rem>>(n-1)*poly
	}
	return data<<n | rem&(1<<n-1)
}

// FormatWord returns the 15-bit format information word for level l
// and mask pattern mask.
func FormatWord(l Level, mask int) uint16 {
	return uint16(bch(levelBits[l&3]<<3|uint32(mask&7), 0x537, 10) ^ 0x5412)
}

// VersionWord returns the 18-bit version information word for QR
// version v, or 0 for versions below 7 and Micro QR versions.
func VersionWord(v Version) uint32 {
	if v < 7 || v > MaxVersion {
		return 0
	}
	return bch(uint32(v), 0x1f25, 12)
}
