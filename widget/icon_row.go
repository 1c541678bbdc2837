package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// IconRow is a clickable row pairing a short glyph with a label, the
// shape menu entries and tree_view leaves share: grounded on button.go
// for the click-activation edge and hot/active highlight, with the
// glyph prepended the way checkbox.go prepends its bracket glyph.
func (c *Context) IconRow(parent ecs.EntityID, disambiguator uint64, icon, label string, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentIconRow, cfg, 1)
	node.FlexDirection = uicomponent.FlexRow
	node.AlignItems = uicomponent.AlignCenter
	applySize(node, resolved, uicomponent.Expand(1), uicomponent.Text())
	node.WithPadding(defaultPadding)
	node.DebugName = "icon_row:" + label

	text := icon + " " + label
	ecs.SetComponent(c.Collection, entity, uicomponent.HasLabel{Text: text, Align: uicomponent.AlignTextLeft})

	box := rect(node)
	in := c.Imm.Update(entity.ID, immRect(box), true, false, clickActivation(resolved, c.Theme))

	bg := colorOrRole(resolved.BackgroundColor, c.Theme.Background)
	if in.Active && in.Hot {
		bg = colorOrRole(resolved.AccentColor, c.Theme.Primary)
	} else if in.Hot {
		bg = bg.Blend(colorOrRole(resolved.AccentColor, c.Theme.Focus), 0.15)
	} else if in.Focused {
		bg = bg.Blend(colorOrRole(resolved.AccentColor, c.Theme.Focus), 0.25)
	}
	fg := colorOrRole(resolved.TextColor, c.Theme.Font)

	if c.Renderer != nil {
		c.drawPanel(box, bg, resolved)
		c.drawLabel(box, text, fg, uicomponent.AlignTextLeft, 16)
	}

	return Result{Changed: in.Clicked, Entity: entity.ID, Value: in.Clicked}
}
