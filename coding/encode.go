// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Encoder encodes text into symbols described by a Spec.
type Encoder struct {
	// Strict makes data exceeding the symbol capacity an error.
	// Otherwise excess data is truncated.
	Strict bool

	s *Spec
	b *Bits
}

// NewEncoder returns an Encoder for s.
func NewEncoder(s *Spec) *Encoder {
	return &Encoder{s: s, b: NewBits(s.Bytes())}
}

// Spec returns the Spec of e.
func (e *Encoder) Spec() *Spec { return e.s }

func (e *Encoder) Reset() { e.b.Reset() }

// Write adds a segment containing text in the mode of the Spec to e.
func (e *Encoder) Write(text string) error {
	if e.s.Micro() {
		return UnsupportedError("micro symbol layout")
	}
	return Segment{text, e.s.Mode}.Encode(e.b, e.s.DataBits())
}

// data terminates and pads the written segments to the data capacity.
func (e *Encoder) data() ([]byte, error) {
	nb := e.s.DataBits()
	if e.Strict && e.b.Bits() > nb {
		return nil, &CapacityError{Bits: e.b.Bits(), Capacity: nb}
	}
	e.b.PadTo(4, e.s.DataBytes())
	return e.b.Bytes(), nil
}

func (e *Encoder) write(text []string) error {
	e.Reset()
	if e.s.Micro() {
		return UnsupportedError("micro symbol layout")
	}
	for _, t := range text {
		if err := e.Write(t); err != nil {
			return err
		}
	}
	return nil
}

// Data returns the data codewords for text, each string forming a
// segment: mode indicator, character count and payload, followed by
// the terminator and padding.
func (e *Encoder) Data(text ...string) ([]byte, error) {
	if err := e.write(text); err != nil {
		return nil, err
	}
	d, err := e.data()
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), d...), nil
}

// Codewords returns the data and error correction codewords for text
// with blocks interleaved in symbol order.
func (e *Encoder) Codewords(text ...string) ([]byte, error) {
	if err := e.write(text); err != nil {
		return nil, err
	}
	dat, err := e.data()
	if err != nil {
		return nil, err
	}
	s := e.s
	nd, nc := len(dat), s.ECCBytes()
	out := make([]byte, s.Bytes())
	check := make([]byte, 0, s.Blocks*nc)
	src := dat
	for i := 0; i < s.Blocks; i++ {
		db := s.DataCodewords
		if i >= s.Blocks-s.LongBlocks {
			db++
		}
		c, err := ECC(src[:db], nc)
		if err != nil {
			return nil, err
		}
		check = append(check, c...)
		src = src[db:]
	}
	interleave(out[:nd], dat, s.Blocks)
	interleave(out[nd:], check, s.Blocks)
	return out, nil
}

// Encode returns the symbol grid for text with mask pattern 3 applied.
func (e *Encoder) Encode(text ...string) (*Grid, error) {
	cw, err := e.Codewords(text...)
	if err != nil {
		return nil, err
	}
	g := NewGrid(e.s.Size)
	DrawFunctionPatterns(g, e.s)
	DrawFormat(g, Expand(uint32(FormatWord(e.s.Level, MaskID)), 15))
	Place(g, Unpack(cw), Mask3)
	return g, nil
}
