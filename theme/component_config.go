package theme

import (
	"github.com/ashenforge/ecsui/uicolor"
	"github.com/ashenforge/ecsui/uicomponent"
)

// ComponentType discriminates which widget kind a ComponentConfig
// default applies to, the generalization of one DefaultXStyle function
// per widget file into a single keyed registry.
type ComponentType int

const (
	ComponentDiv ComponentType = iota
	ComponentButton
	ComponentButtonGroup
	ComponentCheckbox
	ComponentCheckboxGroup
	ComponentSlider
	ComponentDropdown
	ComponentToggleSwitch
	ComponentRadioGroup
	ComponentPagination
	ComponentNavigationBar
	ComponentTabContainer
	ComponentProgressBar
	ComponentCircularProgress
	ComponentSeparator
	ComponentDecorativeFrame
	ComponentScrollView
	ComponentTreeView
	ComponentSettingRow
	ComponentIconRow
	ComponentTextInput
	ComponentTextArea

	componentTypeCount
)

// UnsetFont is the sentinel meaning "no font override", matching
// style.go's IsZero check on a Style's zero-valued Fg.
const UnsetFont = ""

// SizeDefault is a two-axis Size pair a component default can declare
// when the library has an opinion about how big the widget should be.
type SizeDefault struct {
	X, Y uicomponent.Size
}

// ComponentConfig is the per-widget visual override set; every field
// is a pointer so an unset field can fall through to the next layer in
// the merge order, matching style.go's DefaultStyle zero-value
// convention but generalized to every field instead of just Fg/Bg.
type ComponentConfig struct {
	Font            string
	RoundedCorners  *RoundedCorners
	Roundness       *float64
	Size            *SizeDefault
	TextColor       *uicolor.Color
	MutedTextColor  *uicolor.Color
	BackgroundColor *uicolor.Color
	BorderColor     *uicolor.Color
	AccentColor     *uicolor.Color
}

// defaults is the process-wide ComponentType -> ComponentConfig map a
// host can override per-install; component authors register their own
// shape once via RegisterDefault.
var defaults = map[ComponentType]ComponentConfig{}

// RegisterDefault installs cfg as ct's component-level default,
// replacing any earlier registration.
func RegisterDefault(ct ComponentType, cfg ComponentConfig) {
	defaults[ct] = cfg
}

// DefaultFor returns ct's registered component default, or a zero
// ComponentConfig (everything falls through to the theme) if none was
// registered.
func DefaultFor(ct ComponentType) ComponentConfig {
	return defaults[ct]
}

// Resolve merges user (highest priority), ct's component default, and
// the theme-wide fallback (lowest priority) field by field: an unset
// field always falls to the next layer, never silently to a zero
// value.
func Resolve(user ComponentConfig, ct ComponentType, th Theme) ComponentConfig {
	compDefault := DefaultFor(ct)
	out := ComponentConfig{
		Font:            firstFont(user.Font, compDefault.Font, UnsetFont),
		RoundedCorners:  firstCorners(user.RoundedCorners, compDefault.RoundedCorners, &th.RoundedCorners),
		Roundness:       firstFloat(user.Roundness, compDefault.Roundness, &th.Roundness),
		Size:            firstSize(user.Size, compDefault.Size),
		TextColor:       firstColor(user.TextColor, compDefault.TextColor, &th.Font),
		MutedTextColor:  firstColor(user.MutedTextColor, compDefault.MutedTextColor, &th.FontMuted),
		BackgroundColor: firstColor(user.BackgroundColor, compDefault.BackgroundColor, &th.Surface),
		BorderColor:     firstColor(user.BorderColor, compDefault.BorderColor, &th.Secondary),
		AccentColor:     firstColor(user.AccentColor, compDefault.AccentColor, &th.Accent),
	}
	return out
}

func firstFont(vals ...string) string {
	for _, v := range vals {
		if v != UnsetFont {
			return v
		}
	}
	return UnsetFont
}

func firstCorners(vals ...*RoundedCorners) *RoundedCorners {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstFloat(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstSize(vals ...*SizeDefault) *SizeDefault {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstColor(vals ...*uicolor.Color) *uicolor.Color {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
