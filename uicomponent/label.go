package uicomponent

// TextAlign controls label placement within its owning node's box.
type TextAlign int

const (
	AlignTextLeft TextAlign = iota
	AlignTextCenter
	AlignTextRight
)

// HasLabel is attached to any node that renders text, including the
// DimText sizing fallback a Children-sized container uses when it has
// no children.
type HasLabel struct {
	Text     string
	Align    TextAlign
	Disabled bool

	// ColorOverride, when non-nil, replaces the theme-resolved text
	// color with an explicit one.
	ColorOverride *[3]float64

	// BackgroundHint is the surface color the label is drawn over.
	// theme.ValidateAccessibility does not read it; that check covers
	// only the theme's own color-role pairs.
	BackgroundHint *[3]float64
}
