// Package config carries the runtime knobs for the ECS and UI layers:
// every value that would otherwise be a build-time macro is a field on
// Config instead, set once at process startup and handed to
// runtime.New. Only some fields are read anywhere; see Config.
package config

import (
	"fmt"
	"time"
)

// InputValidationMode names how mk/widget-identity and component-add
// misuse is reported. No package reads Config.InputValidationMode:
// those violations are always logged as warnings and never panic,
// whatever the mode.
type InputValidationMode int

const (
	// InputValidationNone names the no-validation mode.
	InputValidationNone InputValidationMode = iota
	// InputValidationLogOnly names the warn-and-continue mode (the
	// default), which is the behavior every mode gets.
	InputValidationLogOnly
	// InputValidationAssert names a panic-on-violation mode; nothing
	// acts on it.
	InputValidationAssert
)

func (m InputValidationMode) String() string {
	switch m {
	case InputValidationNone:
		return "none"
	case InputValidationLogOnly:
		return "log_only"
	case InputValidationAssert:
		return "assert"
	default:
		return fmt.Sprintf("InputValidationMode(%d)", int(m))
	}
}

// Config carries every runtime knob for the ECS and UI layers.
// runtime.New reads AssignHandlesOnCreate, GridSnapUnit and UIScale.
// No package reads MaxComponents, MaxEntityTags, UISingleCollection,
// InputValidationMode, EnforceMinFontSize, MinFontSize or
// FixedTickRate: entity bitsets grow as bits are set, runtime.New
// builds a single collection, font sizes are not clamped, and
// ecs.NewScheduler starts from ecs.DefaultFixedTickRate.
type Config struct {
	MaxComponents int
	MaxEntityTags int

	UISingleCollection    bool
	AssignHandlesOnCreate bool

	InputValidationMode InputValidationMode

	EnforceMinFontSize bool
	MinFontSize        float64

	FixedTickRate time.Duration

	GridSnapUnit float64
	UIScale      float64
}

// Default returns the Config every spec-described default resolves to.
func Default() Config {
	return Config{
		MaxComponents:         128,
		MaxEntityTags:         128,
		UISingleCollection:    false,
		AssignHandlesOnCreate: false,
		InputValidationMode:   InputValidationLogOnly,
		EnforceMinFontSize:    false,
		MinFontSize:           8,
		FixedTickRate:         time.Second / 120,
		GridSnapUnit:          4,
		UIScale:               1,
	}
}
