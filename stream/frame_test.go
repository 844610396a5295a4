package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(3)
	red, _ := colorful.Hex("#ff0000")
	green, _ := colorful.Hex("#00ff00")
	f.Set(0, red)
	f.Set(1, green)

	data, err := f.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 2+3*3)

	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(data))
	assert.Equal(t, []byte{0xff, 0, 0}, data[2:5])
	assert.Equal(t, []byte{0, 0xff, 0}, data[5:8])
	assert.Equal(t, []byte{0, 0, 0}, data[8:11])
}

func TestFrameFillAndBlend(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	blue, _ := colorful.Hex("#0000ff")

	f1 := NewFrame(4)
	f1.Fill(red)
	f2 := NewFrame(4)
	f2.Fill(blue)

	// Bias 0 keeps the first frame, bias 1 yields the second, up to the
	// HCL round trip.
	atZero := f1.Blend(f2, 0).At(0)
	assert.InDelta(t, red.R, atZero.R, 1e-6)
	assert.InDelta(t, red.B, atZero.B, 1e-6)
	atOne := f1.Blend(f2, 1).At(3)
	assert.InDelta(t, blue.R, atOne.R, 1e-6)
	assert.InDelta(t, blue.B, atOne.B, 1e-6)

	mid := f1.Blend(f2, 0.5)
	want := red.BlendHcl(blue, 0.5)
	for i := 0; i < mid.Len(); i++ {
		assert.InDelta(t, want.R, mid.At(i).R, 1e-9)
		assert.InDelta(t, want.B, mid.At(i).B, 1e-9)
	}
}
