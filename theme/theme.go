// Package theme holds the color roles and per-widget default config a
// Theme resolves, generalized from terminal/tui/theme.go's flat RGB
// field struct and terminal/tui/button.go's DefaultButtonStyle/
// DefaultButtonStyleFrom layered-default pattern into color roles
// widgets reference by name instead of one field per widget kind.
package theme

import (
	"fmt"

	"github.com/ashenforge/ecsui/imm"
	"github.com/ashenforge/ecsui/uicolor"
)

// RoundedCorners is a bitmask of which corners a widget rounds.
type RoundedCorners uint8

const (
	CornerTopLeft RoundedCorners = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornerNone RoundedCorners = 0
	CornerAll  RoundedCorners = CornerTopLeft | CornerTopRight | CornerBottomLeft | CornerBottomRight
)

// Theme holds the process-wide color roles and shared widget defaults,
// the generalization of DefaultTheme's one-field-per-component-kind
// RGB struct into roles any widget can reference.
type Theme struct {
	Font      uicolor.Color
	DarkFont  uicolor.Color
	FontMuted uicolor.Color

	Background uicolor.Color
	Surface    uicolor.Color

	Primary   uicolor.Color
	Secondary uicolor.Color
	Accent    uicolor.Color
	Error     uicolor.Color
	Focus     uicolor.Color

	RoundedCorners RoundedCorners
	Roundness      float64
	Segments       int

	ClickActivationMode imm.ClickActivation
}

// DefaultTheme mirrors DefaultTheme's dark-background palette, ported
// from 8-bit terminal.RGB literals to uicolor.Color roles.
func DefaultTheme() Theme {
	return Theme{
		Font:      uicolor.RGB255(200, 200, 200),
		DarkFont:  uicolor.RGB255(20, 20, 30),
		FontMuted: uicolor.RGB255(150, 150, 170),

		Background: uicolor.RGB255(20, 20, 30),
		Surface:    uicolor.RGB255(40, 40, 55),

		Primary:   uicolor.RGB255(60, 80, 120),
		Secondary: uicolor.RGB255(80, 80, 100),
		Accent:    uicolor.RGB255(100, 180, 255),
		Error:     uicolor.RGB255(255, 80, 80),
		Focus:     uicolor.RGB255(255, 255, 255),

		RoundedCorners: CornerAll,
		Roundness:      0.25,
		Segments:       8,

		ClickActivationMode: imm.ClickOnRelease,
	}
}

// AccessibilityWarning names a color-role pair whose contrast falls
// below the WCAG AA threshold.
type AccessibilityWarning struct {
	Foreground string
	Background string
	Ratio      float64
}

func (w AccessibilityWarning) String() string {
	return fmt.Sprintf("%s on %s: contrast %.2f below WCAG AA", w.Foreground, w.Background, w.Ratio)
}

// ValidateAccessibility checks every text-on-surface color pairing the
// theme defines and reports any that fail WCAG AA (4.5:1 for normal
// text). Warnings are advisory; nothing blocks on them.
func (t Theme) ValidateAccessibility() []AccessibilityWarning {
	pairs := []struct {
		fgName, bgName string
		fg, bg         uicolor.Color
	}{
		{"font", "background", t.Font, t.Background},
		{"font", "surface", t.Font, t.Surface},
		{"font", "primary", t.Font, t.Primary},
		{"darkfont", "accent", t.DarkFont, t.Accent},
		{"font_muted", "surface", t.FontMuted, t.Surface},
	}
	var warnings []AccessibilityWarning
	for _, p := range pairs {
		if !p.fg.MeetsWCAGAA(p.bg, false) {
			warnings = append(warnings, AccessibilityWarning{
				Foreground: p.fgName,
				Background: p.bgName,
				Ratio:      p.fg.ContrastRatio(p.bg),
			})
		}
	}
	return warnings
}
