package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

func radioGlyph(selected bool) string {
	if selected {
		return "(•)"
	}
	return "( )"
}

// radioItem is one mutually-exclusive option: a ring-and-dot glyph
// plus label, clickable like Checkbox but reporting selection rather
// than toggling in place.
func (c *Context) radioItem(parent ecs.EntityID, disambiguator uint64, label string, selected bool, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentRadioGroup, cfg, 2)
	node.FlexDirection = uicomponent.FlexRow
	applySize(node, resolved, uicomponent.Text(), uicomponent.Text())
	node.WithPadding(defaultPadding)

	text := radioGlyph(selected) + " " + label
	ecs.SetComponent(c.Collection, entity, uicomponent.HasLabel{Text: text, Align: uicomponent.AlignTextLeft})

	box := rect(node)
	in := c.Imm.Update(entity.ID, immRect(box), true, false, clickActivation(resolved, c.Theme))

	bg := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	if in.Hot {
		bg = bg.Blend(c.Theme.Accent, 0.15)
	}
	fg := colorOrRole(resolved.TextColor, c.Theme.Font)
	if selected {
		fg = colorOrRole(resolved.AccentColor, c.Theme.Accent)
	}

	if c.Renderer != nil {
		c.drawPanel(box, bg, resolved)
		c.drawLabel(box, text, fg, uicomponent.AlignTextLeft, 16)
	}

	return Result{Changed: in.Clicked, Entity: entity.ID, Value: selected}
}

// RadioGroup renders one radioItem per label and moves *index to
// whichever one was clicked this frame, grounded on checkbox.go's
// bracket-glyph convention generalized to a ring-and-dot glyph plus
// mutual exclusion.
func (c *Context) RadioGroup(parent ecs.EntityID, disambiguator uint64, labels []string, index *int, cfg theme.ComponentConfig) Result {
	groupNode, groupEntity, _ := c.resolve(parent, disambiguator, theme.ComponentRadioGroup, cfg, 1)
	groupNode.FlexDirection = uicomponent.FlexColumn
	groupNode.WithDesired(uicomponent.AxisX, uicomponent.Children())
	groupNode.WithDesired(uicomponent.AxisY, uicomponent.Children())

	changed := false
	for i, label := range labels {
		res := c.radioItem(groupEntity.ID, uint64(i), label, *index == i, cfg)
		if res.Changed && *index != i {
			*index = i
			changed = true
		}
	}

	return Result{Changed: changed, Entity: groupEntity.ID, Value: *index}
}
