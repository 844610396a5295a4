package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a black Frame of the given size.
func NewFrame(numPixels int) *Frame {
	return &Frame{pixels: make([]colorful.Color, numPixels)}
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// At returns pixel i.
func (f *Frame) At(i int) colorful.Color {
	return f.pixels[i]
}

// Set writes pixel i.
func (f *Frame) Set(i int, c colorful.Color) {
	f.pixels[i] = c
}

// Fill paints every pixel with c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Blend merges two frames pixel-wise in HCL space; bias 0 keeps f, bias 1
// yields f2.
func (f *Frame) Blend(f2 *Frame, bias float64) *Frame {
	out := NewFrame(len(f.pixels))
	for i := range f.pixels {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], bias)
	}
	return out
}

// MarshalBinary converts a Frame into binary data: a little-endian uint16
// pixel count followed by RGB triples.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
