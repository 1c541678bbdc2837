package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/imm"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// checkGlyph mirrors checkbox.go's CheckState -> rune table.
func checkGlyph(value bool) string {
	if value {
		return "[x]"
	}
	return "[ ]"
}

// Checkbox toggles *value on click or, while focused, on
// ActionWidgetPress (Enter/space), grounded on terminal/tui/
// checkbox.go's bracket-glyph drawing generalized from a raw rune draw
// to a clickable, focusable widget.
func (c *Context) Checkbox(parent ecs.EntityID, disambiguator uint64, label string, value *bool, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentCheckbox, cfg, 1)

	node.FlexDirection = uicomponent.FlexRow
	applySize(node, resolved, uicomponent.Text(), uicomponent.Text())
	node.WithPadding(defaultPadding)
	node.DebugName = "checkbox:" + label

	text := checkGlyph(*value)
	if label != "" {
		text += " " + label
	}
	ecs.SetComponent(c.Collection, entity, uicomponent.HasLabel{Text: text, Align: uicomponent.AlignTextLeft})

	box := rect(node)
	in := c.Imm.Update(entity.ID, immRect(box), true, false, clickActivation(resolved, c.Theme))

	changed := false
	if in.Clicked {
		*value = !*value
		changed = true
	}
	if in.Focused && c.Imm.Actions.Has(imm.ActionWidgetPress) {
		*value = !*value
		changed = true
	}

	bg := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	fg := colorOrRole(resolved.TextColor, c.Theme.Font)
	if in.Hot {
		bg = bg.Blend(c.Theme.Accent, 0.15)
	}

	if c.Renderer != nil {
		c.drawPanel(box, bg, resolved)
		c.drawLabel(box, text, fg, uicomponent.AlignTextLeft, 16)
	}

	return Result{Changed: changed, Entity: entity.ID, Value: *value}
}
