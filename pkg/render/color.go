// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// LerpRGBA blends two colors component-wise. t is clamped to [0, 1].
func LerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// TriangleWave maps t onto a 0 -> 1 -> 0 ramp with the given period.
func TriangleWave(t, period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(t, period) / period
	if phase < 0.5 {
		return phase * 2
	}
	return (1 - phase) * 2
}

// WithAlpha returns c with its alpha replaced. a is clamped to [0, 1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(a * 255)
	return c
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
