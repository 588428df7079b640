// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/unixdj/qrplot/coding"
)

const url = "HTTP://QR-CODE.CO.ZA/0123456789/0123456789/0123"

func hello(t *testing.T) *Code {
	t.Helper()
	e, err := NewEncoder(Config{Version: 1, Mode: Alphanumeric, Level: M})
	require.NoError(t, err)
	c, err := e.Encode("HELLO WORLD")
	require.NoError(t, err)
	return c
}

func TestEncode(t *testing.T) {
	c, err := Encode(url)
	require.NoError(t, err)
	assert.Equal(t, 25, c.Size)
	assert.Equal(t, 4, c.Stride)
	assert.Len(t, c.Bitmap, 100)
	assert.Equal(t, 8, c.Scale)
	for i := 3; i < len(c.Bitmap); i += 4 {
		assert.Zero(t, c.Bitmap[i]&0x7f, "row padding")
	}
}

func TestCodeMatchesGrid(t *testing.T) {
	s, err := coding.NewSpec(false, 7, Byte, Q)
	require.NoError(t, err)
	g, err := coding.NewEncoder(s).Encode(url)
	require.NoError(t, err)
	e, err := NewEncoder(Config{Version: 7, Mode: Byte, Level: Q})
	require.NoError(t, err)
	c, err := e.Encode(url)
	require.NoError(t, err)
	require.Equal(t, g.Size(), c.Size)
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			require.Equal(t, g.Dark(y, x), c.Black(x, y), "(%d, %d)", x, y)
		}
	}
	assert.False(t, c.Black(-1, 0))
	assert.False(t, c.Black(0, c.Size))
}

func TestConfigErrors(t *testing.T) {
	_, err := NewEncoder(Config{Mode: Byte})
	assert.ErrorIs(t, err, coding.ErrVersion)
	_, err = NewEncoder(Config{Version: 1, Mode: 9})
	assert.ErrorIs(t, err, coding.ErrMode)

	e, err := NewEncoder(Config{Micro: true, Version: 4, Mode: Byte})
	require.NoError(t, err)
	assert.Equal(t, 17, e.Spec().Size)
	_, err = e.Encode("hi")
	var ue coding.UnsupportedError
	assert.True(t, errors.As(err, &ue), "%v", err)

	e, err = NewEncoder(Config{Version: 1, Mode: Byte, Strict: true})
	require.NoError(t, err)
	_, err = e.Encode(url)
	var ce *coding.CapacityError
	assert.True(t, errors.As(err, &ce), "%v", err)
}

func TestText(t *testing.T) {
	c := hello(t)
	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 22)
	assert.Empty(t, lines[21])
	assert.Equal(t, "XXXXXXX XX  X XXXXXXX", lines[0])
	assert.Equal(t, "X     X X X   X     X", lines[1])

	c.Border = 1
	c.Reverse = true
	lines = strings.Split(c.Text('█', '.'), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, strings.Repeat("█", 23), lines[0])
	assert.Equal(t, "█.......█..██.█.......█", lines[1])
}

func TestImage(t *testing.T) {
	c := hello(t)
	c.Scale = 2
	c.Border = 1
	img := c.Image()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 46, 46), img.Bounds())
	black := color.GrayModel.Convert(blackColor)
	white := color.GrayModel.Convert(whiteColor)
	gray := func(x, y int) color.Color {
		return color.GrayModel.Convert(img.At(x, y))
	}
	assert.Equal(t, white, gray(0, 0))
	assert.Equal(t, white, gray(1, 1))
	assert.Equal(t, black, gray(2, 2))
	assert.Equal(t, black, gray(3, 3))
	assert.Equal(t, white, gray(4, 4)) // module (1, 1)
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			want := white
			if c.Black(x, y) {
				want = black
			}
			require.Equal(t, want, gray(2+x*2+1, 2+y*2+1), "(%d, %d)", x, y)
		}
	}

	red := color.RGBA{0xff, 0, 0, 0xff}
	c.Palette = &[2]color.Color{red, blackColor}
	c.Reverse = true
	img = c.Image()
	assert.Equal(t, color.RGBAModel.Convert(red), color.RGBAModel.Convert(img.At(2, 2)))

	c.Scale = 0
	assert.Nil(t, c.Image())
}

func TestEncodePNG(t *testing.T) {
	c := hello(t)
	c.Scale = 3
	c.Border = 2
	var b bytes.Buffer
	require.NoError(t, c.EncodePNG(&b))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 75, 75), img.Bounds())
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			g := color.GrayModel.Convert(img.At(6+x*3, 6+y*3)).(color.Gray)
			assert.Equal(t, c.Black(x, y), g.Y == 0, "(%d, %d)", x, y)
		}
	}
	assert.NotEmpty(t, c.PNG())
	assert.ErrorIs(t, c.EncodePNG(nil), ErrArgs)
}

func TestEncodePBM(t *testing.T) {
	c := hello(t)
	c.Scale = 1
	var b bytes.Buffer
	require.NoError(t, c.EncodePBM(&b))
	assert.Equal(t, "P4\n21 21\n", b.String()[:9])
	assert.Equal(t, c.Bitmap, b.Bytes()[9:])

	c.Scale = 2
	c.Border = 1
	c.Reverse = true
	b.Reset()
	require.NoError(t, c.EncodePBM(&b))
	hdr := "P4\n46 46\n"
	require.Equal(t, hdr, b.String()[:len(hdr)])
	data := b.Bytes()[len(hdr):]
	require.Len(t, data, 46*6)
	// reversed quiet zone is black, the top left module white
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xfc}, data[:6])
	assert.Equal(t, byte(0xc0), data[2*6])
	assert.Equal(t, data[2*6:3*6], data[3*6:4*6])
}

func TestCheck(t *testing.T) {
	var b bytes.Buffer
	assert.ErrorIs(t, (&Code{}).EncodePBM(&b), ErrArgs)
	c := hello(t)
	c.Border = -1
	assert.ErrorIs(t, c.EncodePBM(&b), ErrArgs)
	c.Border = 0
	c.Scale = maxSide
	assert.ErrorIs(t, c.EncodePBM(&b), ErrLargeImage)
	assert.ErrorIs(t, c.EncodePNG(&b), ErrLargeImage)
	assert.Nil(t, c.PNG())
}

func TestEncodeParallel(t *testing.T) {
	e, err := NewEncoder(Config{Version: 4, Mode: Byte, Level: H})
	require.NoError(t, err)
	texts := make([]string, 64)
	want := make([]string, len(texts))
	for i := range texts {
		texts[i] = fmt.Sprintf("symbol %d", i)
		c, err := e.Encode(texts[i])
		require.NoError(t, err)
		want[i] = c.String()
	}
	got := make([]string, len(texts))
	var g errgroup.Group
	g.SetLimit(8)
	for i, s := range texts {
		i, s := i, s
		g.Go(func() error {
			c, err := e.Encode(s)
			if err != nil {
				return err
			}
			got[i] = c.String()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, want, got)
}
