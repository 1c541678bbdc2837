package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// ToggleState holds the knob's animated [0,1] slide progress, kept as
// a component on the widget's own entity so it survives across frames
// the way textfield_state.go's cursor position does.
type ToggleState struct {
	Progress float64
}

func boolToF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ToggleSwitch is a pill-style on/off control: a click flips *value,
// and the knob eases toward its target position by 20% of the
// remaining distance every frame, per the library's fixed easing
// constant.
func (c *Context) ToggleSwitch(parent ecs.EntityID, disambiguator uint64, value *bool, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentToggleSwitch, cfg, 1)
	applySize(node, resolved, uicomponent.Pixels(40), uicomponent.Pixels(20))
	node.DebugName = "toggle_switch"

	box := rect(node)
	in := c.Imm.Update(entity.ID, immRect(box), true, false, clickActivation(resolved, c.Theme))

	changed := false
	if in.Clicked {
		*value = !*value
		changed = true
	}

	state, ok := ecs.GetComponent[ToggleState](c.Collection, entity)
	if !ok {
		state = ToggleState{Progress: boolToF(*value)}
	}
	target := boolToF(*value)
	state.Progress += 0.2 * (target - state.Progress)
	ecs.SetComponent(c.Collection, entity, state)

	track := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	if state.Progress > 0.5 {
		track = colorOrRole(resolved.AccentColor, c.Theme.Accent)
	}

	if c.Renderer != nil {
		c.drawPanel(box, track, resolved)
		knobW := box.H
		knobX := box.X + state.Progress*(box.W-knobW)
		c.drawPanel(boxAt(knobX, box.Y, knobW, box.H), c.Theme.Font, resolved)
	}

	return Result{Changed: changed, Entity: entity.ID, Value: *value}
}
