package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// Button draws a colored rectangle with a centered label and reports
// whether the configured click-activation edge fired this frame,
// grounded on terminal/tui/button.go's ButtonBar per-button loop body
// (focus-dependent fg/bg swap, label centering) collapsed from a row
// of N buttons into one button per call.
func (c *Context) Button(parent ecs.EntityID, disambiguator uint64, label string, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentButton, cfg, 1)

	applySize(node, resolved, uicomponent.Text(), uicomponent.Text())
	node.WithPadding(defaultPadding)
	node.DebugName = "button:" + label

	ecs.SetComponent(c.Collection, entity, uicomponent.HasLabel{Text: label, Align: uicomponent.AlignTextCenter})

	box := rect(node)
	in := c.Imm.Update(entity.ID, immRect(box), true, false, clickActivation(resolved, c.Theme))

	bg := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	if in.Active && in.Hot {
		bg = colorOrRole(resolved.AccentColor, c.Theme.Primary)
	} else if in.Focused {
		bg = bg.Blend(colorOrRole(resolved.AccentColor, c.Theme.Focus), 0.25)
	}
	fg := colorOrRole(resolved.TextColor, c.Theme.Font)

	if c.Renderer != nil {
		c.drawPanel(box, bg, resolved)
		c.drawLabel(box, label, fg, uicomponent.AlignTextCenter, 16)
	}

	return Result{Changed: in.Clicked, Entity: entity.ID, Value: in.Clicked}
}
