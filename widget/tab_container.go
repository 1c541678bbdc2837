package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// tabItem is one equal-width tab in a TabContainer's strip.
func (c *Context) tabItem(parent ecs.EntityID, disambiguator uint64, label string, active bool, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentTabContainer, cfg, 2)
	node.WithDesired(uicomponent.AxisX, uicomponent.Expand(1))
	node.WithDesired(uicomponent.AxisY, uicomponent.Text())
	node.WithPadding(defaultPadding)

	ecs.SetComponent(c.Collection, entity, uicomponent.HasLabel{Text: label, Align: uicomponent.AlignTextCenter})

	box := rect(node)
	in := c.Imm.Update(entity.ID, immRect(box), false, false, clickActivation(resolved, c.Theme))

	bg := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	fg := colorOrRole(resolved.TextColor, c.Theme.FontMuted)
	if active {
		bg = colorOrRole(resolved.AccentColor, c.Theme.Primary)
		fg = colorOrRole(resolved.TextColor, c.Theme.Font)
	} else if in.Hot {
		bg = bg.Blend(c.Theme.Accent, 0.1)
	}

	if c.Renderer != nil {
		c.drawPanel(box, bg, resolved)
		c.drawLabel(box, label, fg, uicomponent.AlignTextCenter, 16)
	}

	return Result{Changed: in.Clicked, Entity: entity.ID, Value: active}
}

// TabContainer renders a row of equal-width tabs, highlighting
// *active, and switches *active to whichever tab was clicked.
// Grounded on tabs.go's TabBar (equal-row layout, one style swap for
// the active index).
func (c *Context) TabContainer(parent ecs.EntityID, disambiguator uint64, labels []string, active *int, cfg theme.ComponentConfig) Result {
	groupNode, groupEntity, _ := c.resolve(parent, disambiguator, theme.ComponentTabContainer, cfg, 1)
	groupNode.FlexDirection = uicomponent.FlexRow
	groupNode.WithDesired(uicomponent.AxisX, uicomponent.Expand(1))
	groupNode.WithDesired(uicomponent.AxisY, uicomponent.Children())

	changed := false
	for i, label := range labels {
		res := c.tabItem(groupEntity.ID, uint64(i), label, *active == i, cfg)
		if res.Changed && *active != i {
			*active = i
			changed = true
		}
	}

	return Result{Changed: changed, Entity: groupEntity.ID, Value: *active}
}
