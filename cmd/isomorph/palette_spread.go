package main

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenAngle is the hue step between consecutive keys, (1+√5)×60° ≈ 194.16°
var goldenAngle = (1 + math.Sqrt(5)) * 60

const (
	spreadSaturation = 0.9
	spreadLightness  = 0.6
)

// SpreadPalette steps the hue by the golden angle so that consecutive keys
// land far apart on the colour wheel. A size of 0 means unbounded.
type SpreadPalette struct {
	size int
}

func NewSpreadPalette(size int) (*SpreadPalette, error) {
	return &SpreadPalette{size: size}, nil
}

func (p *SpreadPalette) Name() string { return "spread" }

func (p *SpreadPalette) Color(key ColorKey) Color {
	return rgbColor{SpreadColor(key.Reify(p.size))}
}

// SpreadColor returns the n-th colour of the unbounded spread sequence
func SpreadColor(n int) colorful.Color {
	hue := math.Mod(float64(n)*goldenAngle, 360)
	return colorful.Hsl(hue, spreadSaturation, spreadLightness)
}
