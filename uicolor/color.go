// Package uicolor provides the color type shared by theme and widget:
// a thin wrapper over go-colorful with blend/scale helpers plus WCAG
// contrast support that naive 8-bit channel lerp could never provide.
package uicolor

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color in [0,1] per channel, backed by colorful.Color
// so callers can use Lab-space distance and relative luminance instead
// of 8-bit channel arithmetic.
type Color struct {
	c colorful.Color
}

// Black is the zero value's logical color, used as Scale's floor.
var Black = Color{}

// RGB255 builds a Color from 8-bit channels.
func RGB255(r, g, b uint8) Color {
	return Color{c: colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}}
}

// Hex parses a "#rrggbb" string into a Color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("uicolor: parse %q: %w", s, err)
	}
	return Color{c: c}, nil
}

// RGB255 returns the 8-bit channel representation, clamped to [0,255].
func (c Color) RGB255() (r, g, b uint8) {
	return c.c.Clamped().RGB255()
}

// Blend performs alpha blending: result = src*alpha + c*(1-alpha),
// matching core/color.go's RGB.Blend.
func (c Color) Blend(src Color, alpha float64) Color {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	return Color{c: c.c.BlendRgb(src.c, alpha)}
}

// Max returns the per-channel maximum of c and src (non-destructive
// highlight), matching core/color.go's RGB.Max.
func (c Color) Max(src Color) Color {
	return Color{c: colorful.Color{
		R: maxF(c.c.R, src.c.R),
		G: maxF(c.c.G, src.c.G),
		B: maxF(c.c.B, src.c.B),
	}}
}

// Add performs an additive blend with clamping (light accumulation),
// matching core/color.go's RGB.Add.
func (c Color) Add(src Color) Color {
	return Color{c: colorful.Color{
		R: minF(c.c.R+src.c.R, 1),
		G: minF(c.c.G+src.c.G, 1),
		B: minF(c.c.B+src.c.B, 1),
	}}
}

// Scale multiplies each channel by factor, matching core/color.go's
// RGB.Scale.
func (c Color) Scale(factor float64) Color {
	if factor <= 0 {
		return Black
	}
	if factor >= 1 {
		return c
	}
	return Color{c: colorful.Color{
		R: c.c.R * factor,
		G: c.c.G * factor,
		B: c.c.B * factor,
	}}
}

// DistanceLab returns the perceptual (CIE76 Lab) distance to other.
// theme.Theme's accessibility check does not use it; it relies on
// ContrastRatio alone.
func (c Color) DistanceLab(other Color) float64 {
	return c.c.DistanceLab(other.c)
}

// relativeLuminance is the WCAG relative luminance of c, computed from
// linearized sRGB channels. go-colorful has no WCAG contrast support of
// its own, so this package computes it from the channels directly.
func (c Color) relativeLuminance() float64 {
	lin := func(ch float64) float64 {
		if ch <= 0.03928 {
			return ch / 12.92
		}
		return math.Pow((ch+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.c.R) + 0.7152*lin(c.c.G) + 0.0722*lin(c.c.B)
}

// ContrastRatio returns the WCAG contrast ratio between c and other, in
// [1, 21]; higher means more contrast.
func (c Color) ContrastRatio(other Color) float64 {
	l1, l2 := c.relativeLuminance(), other.relativeLuminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// MeetsWCAGAA reports whether c as text on a background of other clears
// the WCAG AA threshold: 4.5:1 for normal text, 3:1 for large text.
func (c Color) MeetsWCAGAA(other Color, largeText bool) bool {
	threshold := 4.5
	if largeText {
		threshold = 3.0
	}
	return c.ContrastRatio(other) >= threshold
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
