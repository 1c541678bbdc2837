// Package render declares the external rendering, font, and input
// collaborators the UI layer consumes but never implements (the
// concrete backend — terminal, raylib, whatever the host embeds — is
// out of scope), plus a text-measurement default usable without one.
package render

// Rect is an axis-aligned world-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Color is an RGBA color in [0,1] per channel, matching uicolor.Color's
// underlying representation without importing it (render stays a leaf
// package consumers can satisfy with any backend).
type Color struct {
	R, G, B, A float64
}

// CornerMask selects which of a rounded rectangle's four corners to
// round, one bit per corner.
type CornerMask uint8

const (
	CornerTopLeft CornerMask = 1 << iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
	CornerAll = CornerTopLeft | CornerTopRight | CornerBottomRight | CornerBottomLeft
)

// Texture is an opaque handle to a loaded image/texture resource.
type Texture any

// Font is an opaque handle to a loaded font resource.
type Font any

// Renderer is the drawing surface the host embeds. Every UI widget
// eventually bottoms out in calls to these methods; the core never
// implements a concrete Renderer itself.
type Renderer interface {
	DrawRectangle(rect Rect, color Color)
	DrawRectangleRounded(rect Rect, roundness float64, segments int, color Color, corners CornerMask)
	DrawRectangleOutline(rect Rect, color Color, thickness float64)
	DrawTextEx(font Font, text string, x, y, size, spacing float64, color Color)
	DrawTexturePro(tex Texture, src, dst Rect, originX, originY, angle float64, tint Color)
}

// FontBackend measures and loads fonts. The layout solver's DimText
// pass depends only on MeasureText.
type FontBackend interface {
	MeasureText(font Font, text string, size, spacing float64) (w, h float64)
	LoadFont(name string) (Font, error)
}

// InputSource is polled once per frame by the interaction state
// machine.
type InputSource interface {
	MousePosition() (x, y float64)
	IsMouseButtonDown(button int) bool
	MouseWheelMove() (dx, dy float64)
	CharPressed() (r rune, ok bool)
}
