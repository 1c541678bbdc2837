package render

import "github.com/mattn/go-runewidth"

// MonospaceMeasurer is a FontBackend usable without a host-supplied
// font system: it approximates text as monospaced cells via
// runewidth.StringWidth, the same cell-counting approach a hand-rolled
// rune-length approximation would take, now backed by a real library.
type MonospaceMeasurer struct {
	// CellWidth and CellHeight are the pixel dimensions of one
	// monospace cell at size 1.0; MeasureText scales both by size.
	CellWidth  float64
	CellHeight float64
}

// NewMonospaceMeasurer returns a MonospaceMeasurer with an 8x16 cell,
// a common terminal-grid baseline.
func NewMonospaceMeasurer() *MonospaceMeasurer {
	return &MonospaceMeasurer{CellWidth: 8, CellHeight: 16}
}

// MeasureText ignores font and spacing (a monospace grid has none) and
// returns cell-count width/height scaled by size.
func (m *MonospaceMeasurer) MeasureText(_ Font, text string, size, _ float64) (w, h float64) {
	cells := runewidth.StringWidth(text)
	scale := size / 16
	if scale <= 0 {
		scale = 1
	}
	return float64(cells) * m.CellWidth * scale, m.CellHeight * scale
}

// LoadFont is a no-op returning the font name itself as an opaque
// handle; MonospaceMeasurer never differentiates fonts.
func (m *MonospaceMeasurer) LoadFont(name string) (Font, error) {
	return name, nil
}
