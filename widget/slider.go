package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/imm"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Slider is a draggable horizontal control over *value in [0, 1]: while
// active, the handle tracks (mouse.x - rect.x) / rect.width; while
// focused, the left/right arrow actions nudge by 1%. Grounded on
// progress.go's Progress bar-fill math, inverted from a read-only
// render into a drag target.
func (c *Context) Slider(parent ecs.EntityID, disambiguator uint64, value *float64, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentSlider, cfg, 1)
	applySize(node, resolved, uicomponent.Pixels(160), uicomponent.Pixels(20))
	node.DebugName = "slider"

	box := rect(node)
	in := c.Imm.Update(entity.ID, immRect(box), true, false, clickActivation(resolved, c.Theme))

	changed := false
	*value = clamp01(*value)

	if in.Active && box.W > 0 {
		t := clamp01((c.Imm.Mouse.X - box.X) / box.W)
		if t != *value {
			*value = t
			changed = true
		}
	}
	if in.Focused {
		if c.Imm.Actions.Has(imm.ActionWidgetLeft) {
			*value = clamp01(*value - 0.01)
			changed = true
		}
		if c.Imm.Actions.Has(imm.ActionWidgetRight) {
			*value = clamp01(*value + 0.01)
			changed = true
		}
	}

	track := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	fill := colorOrRole(resolved.AccentColor, c.Theme.Accent)

	if c.Renderer != nil {
		c.drawPanel(box, track, resolved)
		if box.W > 0 {
			handleW := box.H
			handleX := box.X + *value*(box.W-handleW)
			c.drawPanel(boxAt(handleX, box.Y, handleW, box.H), fill, resolved)
		}
	}

	return Result{Changed: changed, Entity: entity.ID, Value: *value}
}
