package uicolor

import "math"

// Luminance returns the WCAG relative luminance of c, the same value
// ContrastRatio (color.go) computes internally for each of its operands.
func (c Color) Luminance() float64 {
	r := linearize(c.c.R)
	g := linearize(c.c.G)
	b := linearize(c.c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts a single sRGB channel in [0,1] to linear light, per
// the WCAG 2.x definition of relative luminance.
func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}
