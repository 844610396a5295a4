package util

import (
	"github.com/fogleman/ease"
)

// GenerateLut builds a symmetric eased falloff table: 0 at the edges rising
// to 1 in the middle.
func GenerateLut(length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}
