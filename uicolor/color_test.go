package uicolor

import "testing"

func TestRGB255RoundTrip(t *testing.T) {
	c := RGB255(10, 200, 30)
	r, g, b := c.RGB255()
	if r != 10 || g != 200 || b != 30 {
		t.Errorf("expected (10,200,30), got (%d,%d,%d)", r, g, b)
	}
}

func TestBlendBoundaryAlpha(t *testing.T) {
	dst := RGB255(0, 0, 0)
	src := RGB255(255, 255, 255)

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Blend(alpha=0): expected dst unchanged, got %+v", got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Blend(alpha=1): expected src, got %+v", got)
	}
}

func TestMaxPerChannel(t *testing.T) {
	a := RGB255(10, 200, 5)
	b := RGB255(50, 20, 100)
	got := a.Max(b)
	r, g, bl := got.RGB255()
	if r != 50 || g != 200 || bl != 100 {
		t.Errorf("Max: expected (50,200,100), got (%d,%d,%d)", r, g, bl)
	}
}

func TestAddClamps(t *testing.T) {
	a := RGB255(200, 200, 200)
	b := RGB255(200, 200, 200)
	got := a.Add(b)
	r, g, bl := got.RGB255()
	if r != 255 || g != 255 || bl != 255 {
		t.Errorf("Add: expected clamped (255,255,255), got (%d,%d,%d)", r, g, bl)
	}
}

func TestScaleBoundary(t *testing.T) {
	c := RGB255(100, 100, 100)
	if got := c.Scale(0); got != Black {
		t.Errorf("Scale(0): expected Black, got %+v", got)
	}
	if got := c.Scale(1); got != c {
		t.Errorf("Scale(1): expected unchanged, got %+v", got)
	}
}

func TestContrastRatioBlackOnWhite(t *testing.T) {
	black := RGB255(0, 0, 0)
	white := RGB255(255, 255, 255)
	ratio := black.ContrastRatio(white)
	if ratio < 20.9 || ratio > 21.1 {
		t.Errorf("black/white contrast: expected ~21, got %v", ratio)
	}
}

func TestMeetsWCAGAA(t *testing.T) {
	black := RGB255(0, 0, 0)
	white := RGB255(255, 255, 255)
	if !black.MeetsWCAGAA(white, false) {
		t.Errorf("expected black-on-white to meet AA normal-text threshold")
	}

	gray := RGB255(160, 160, 160)
	if gray.MeetsWCAGAA(white, false) {
		t.Errorf("expected light gray-on-white to fail AA normal-text threshold")
	}
}
