package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/imm"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// DropdownState holds whether the option list is expanded, a component
// rather than a local (the widget function re-runs every frame) the
// same way textfield_state.go keeps a field's cursor across frames.
type DropdownState struct {
	Expanded bool
}

// Dropdown shows the selected option plus an arrow collapsed, or an
// absolutely-positioned button_group of every option expanded.
// Grounded on button.go's click-activation edge for both the
// collapsed toggle and each expanded option, with the overlay using
// UIComponent.Absolute so it floats over flow siblings instead of
// pushing them aside.
func (c *Context) Dropdown(parent ecs.EntityID, disambiguator uint64, options []string, index *int, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentDropdown, cfg, 1)
	applySize(node, resolved, uicomponent.Pixels(160), uicomponent.Pixels(24))
	node.DebugName = "dropdown"

	state, _ := ecs.GetComponent[DropdownState](c.Collection, entity)

	box := rect(node)
	in := c.Imm.Update(entity.ID, immRect(box), true, false, clickActivation(resolved, c.Theme))
	if in.Clicked {
		state.Expanded = !state.Expanded
	}

	label := ""
	if *index >= 0 && *index < len(options) {
		label = options[*index]
	}
	arrow := "▾"
	if state.Expanded {
		arrow = "▴"
	}

	bg := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	fg := colorOrRole(resolved.TextColor, c.Theme.Font)
	if c.Renderer != nil {
		c.drawPanel(box, bg, resolved)
		c.drawLabel(box, label, fg, uicomponent.AlignTextLeft, 16)
		c.drawLabel(box, arrow, fg, uicomponent.AlignTextRight, 16)
	}

	changed := false
	if in.Focused {
		if c.Imm.Actions.Has(imm.ActionWidgetUp) && len(options) > 0 {
			*index = (*index - 1 + len(options)) % len(options)
			changed = true
		}
		if c.Imm.Actions.Has(imm.ActionWidgetDown) && len(options) > 0 {
			*index = (*index + 1) % len(options)
			changed = true
		}
	}

	if state.Expanded {
		overlayNode, overlayEntity, _ := c.resolve(entity.ID, 0, theme.ComponentDropdown, cfg, 1)
		overlayNode.Absolute = true
		overlayNode.AbsolutePos[uicomponent.AxisX] = 0
		overlayNode.AbsolutePos[uicomponent.AxisY] = box.H
		overlayNode.FlexDirection = uicomponent.FlexColumn
		overlayNode.WithDesired(uicomponent.AxisX, uicomponent.Pixels(box.W))
		overlayNode.WithDesired(uicomponent.AxisY, uicomponent.Children())

		for i, opt := range options {
			res := c.Button(overlayEntity.ID, uint64(i), opt, cfg)
			if res.Changed {
				*index = i
				state.Expanded = false
				changed = true
			}
		}
		c.Imm.EnqueueRenderCmd(overlayEntity.ID, 10)
	}

	ecs.SetComponent(c.Collection, entity, state)
	return Result{Changed: changed, Entity: entity.ID, Value: *index}
}

// CloseDropdownsOnClickOutside is the dedicated system a host runs
// once per frame: any expanded DropdownState whose own rect wasn't hot
// when the mouse pressed this frame collapses, since the dropdown
// itself can't tell a click on some unrelated widget from a
// click-outside without seeing every entity.
func CloseDropdownsOnClickOutside(collection *ecs.EntityCollection, tree *uicomponent.Tree, immCtx *imm.Context) {
	if !immCtx.Mouse.JustPressed {
		return
	}
	entities := ecs.WhereHasComponent[DropdownState](ecs.NewQuery(collection)).Gen()
	for _, e := range entities {
		state, _ := ecs.GetComponent[DropdownState](collection, e)
		if !state.Expanded {
			continue
		}
		node, ok := tree.Get(e.ID)
		if !ok {
			continue
		}
		x, y, w, h := node.Rect()
		inside := immCtx.Mouse.X >= x && immCtx.Mouse.X < x+w && immCtx.Mouse.Y >= y && immCtx.Mouse.Y < y+h
		if !inside && immCtx.HotID != e.ID {
			state.Expanded = false
			ecs.SetComponent(collection, e, state)
		}
	}
}
