package widget

import (
	"fmt"

	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// ProgressLabelStyle selects what text ProgressBar overlays on the
// fill, mirroring progress.go's Gauge which always shows a percentage;
// this generalizes that one fixed format into a small enum plus a
// custom-text escape hatch.
type ProgressLabelStyle int

const (
	ProgressLabelNone ProgressLabelStyle = iota
	ProgressLabelPercent
	ProgressLabelFraction
	ProgressLabelCustom
)

// ProgressBar is a read-only fill between min and max with an optional
// overlay label, grounded on progress.go's Progress/Gauge fill-width
// math, generalized from character-cell fill counts to pixel widths.
func (c *Context) ProgressBar(parent ecs.EntityID, disambiguator uint64, value, min, max float64, labelStyle ProgressLabelStyle, customLabel string, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentProgressBar, cfg, 1)
	applySize(node, resolved, uicomponent.Pixels(160), uicomponent.Pixels(20))
	node.DebugName = "progress_bar"

	span := max - min
	var frac float64
	if span > 0 {
		frac = clamp01((value - min) / span)
	}

	box := rect(node)
	track := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	fill := colorOrRole(resolved.AccentColor, c.Theme.Accent)

	var label string
	switch labelStyle {
	case ProgressLabelPercent:
		label = fmt.Sprintf("%d%%", int(frac*100+0.5))
	case ProgressLabelFraction:
		label = fmt.Sprintf("%.0f/%.0f", value, max)
	case ProgressLabelCustom:
		label = customLabel
	}

	if c.Renderer != nil {
		c.drawPanel(box, track, resolved)
		if box.W > 0 {
			c.drawPanel(boxAt(box.X, box.Y, box.W*frac, box.H), fill, resolved)
		}
		if label != "" {
			c.drawLabel(box, label, c.Theme.Font, uicomponent.AlignTextCenter, 16)
		}
	}

	ecs.SetComponent(c.Collection, entity, uicomponent.HasLabel{Text: label, Align: uicomponent.AlignTextCenter})

	return Result{Entity: entity.ID, Value: frac}
}
