package uicolor

import "github.com/lucasb-eyer/go-colorful"

// Float3 returns c's channels as a plain [3]float64, the representation
// uicomponent.HasLabel.ColorOverride uses so that leaf package cannot
// import uicolor.
func (c Color) Float3() [3]float64 {
	return [3]float64{c.c.R, c.c.G, c.c.B}
}

// FromFloat3 builds a Color from a plain [3]float64 triple.
func FromFloat3(f [3]float64) Color {
	return Color{c: colorful.Color{R: f[0], G: f[1], B: f[2]}}
}
