// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// Colour names accepted by -F and -B.
var rgb = map[string]rgba{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"green":       {0x00, 0xff, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"yellow":      {0xff, 0xff, 0x00, 0xff},
	"cyan":        {0x00, 0xff, 0xff, 0xff},
	"magenta":     {0xff, 0x00, 0xff, 0xff},
	"gray":        {0xbe, 0xbe, 0xbe, 0xff},
	"grey":        {0xbe, 0xbe, 0xbe, 0xff},
	"orange":      {0xff, 0xa5, 0x00, 0xff},
	"navy":        {0x00, 0x00, 0x80, 0xff},
	"darkgreen":   {0x00, 0x64, 0x00, 0xff},
	"maroon":      {0xb0, 0x30, 0x60, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}
