package config

import (
	"testing"
	"time"
)

func TestDefaultMatchesDocumentedDefaults(t *testing.T) {
	cfg := Default()

	if cfg.MaxComponents != 128 {
		t.Errorf("MaxComponents: expected 128, got %d", cfg.MaxComponents)
	}
	if cfg.MaxEntityTags != 128 {
		t.Errorf("MaxEntityTags: expected 128, got %d", cfg.MaxEntityTags)
	}
	if cfg.InputValidationMode != InputValidationLogOnly {
		t.Errorf("InputValidationMode: expected LogOnly, got %v", cfg.InputValidationMode)
	}
	if cfg.FixedTickRate != time.Second/120 {
		t.Errorf("FixedTickRate: expected 1/120s, got %v", cfg.FixedTickRate)
	}
	if cfg.GridSnapUnit != 4 {
		t.Errorf("GridSnapUnit: expected 4, got %v", cfg.GridSnapUnit)
	}
}

func TestInputValidationModeString(t *testing.T) {
	cases := map[InputValidationMode]string{
		InputValidationNone:    "none",
		InputValidationLogOnly: "log_only",
		InputValidationAssert:  "assert",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("mode %d: expected %q, got %q", mode, want, got)
		}
	}
}
