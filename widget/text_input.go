package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/imm"
	"github.com/ashenforge/ecsui/textinput"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// TextInputHolder wraps a *textinput.State so it survives across
// frames by entity identity, the same pointer-to-persistent-state role
// textfield_state.go's TextFieldState plays for button.go's
// TUI sibling widgets.
type TextInputHolder struct {
	State *textinput.State
}

// TextInput is a single-line editable field: typed runes and the
// editing actions (backspace/delete/home/end/left/right) only apply
// while focused, grounded on textfield.go's render-and-handle-input
// loop body with Region.Cell glyph drawing replaced by one drawLabel
// call plus a drawn caret rectangle.
func (c *Context) TextInput(parent ecs.EntityID, disambiguator uint64, maxLength int, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentTextInput, cfg, 1)
	applySize(node, resolved, uicomponent.Expand(1), uicomponent.Pixels(28))
	node.WithPadding(defaultPadding)
	node.DebugName = "text_input"

	holder, ok := ecs.GetComponent[TextInputHolder](c.Collection, entity)
	if !ok || holder.State == nil {
		holder = TextInputHolder{State: textinput.New("", maxLength)}
	}
	st := holder.State

	box := rect(node)
	in := c.Imm.Update(entity.ID, immRect(box), true, false, clickActivation(resolved, c.Theme))

	changed := false
	if in.Focused {
		for _, r := range c.Imm.TextInput {
			if st.Insert(string(r)) {
				changed = true
				st.ResetBlink()
			}
		}
		actions := c.Imm.Actions
		if actions.Has(imm.ActionTextBackspace) {
			if st.DeleteBackward() {
				changed = true
				st.ResetBlink()
			}
		}
		if actions.Has(imm.ActionTextDelete) {
			if st.DeleteForward() {
				changed = true
				st.ResetBlink()
			}
		}
		if actions.Has(imm.ActionTextHome) {
			st.Home()
			st.ResetBlink()
		}
		if actions.Has(imm.ActionTextEnd) {
			st.End()
			st.ResetBlink()
		}
		if actions.Has(imm.ActionWidgetLeft) {
			st.MoveLeft()
			st.ResetBlink()
		}
		if actions.Has(imm.ActionWidgetRight) {
			st.MoveRight()
			st.ResetBlink()
		}
		st.AdjustBlink(c.Imm.DT)
	}

	bg := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	if in.Focused {
		bg = bg.Blend(colorOrRole(resolved.AccentColor, c.Theme.Focus), 0.15)
	}
	fg := colorOrRole(resolved.TextColor, c.Theme.Font)

	if c.Renderer != nil {
		c.drawPanel(box, bg, resolved)
		c.drawLabel(box, st.Value(), fg, uicomponent.AlignTextLeft, 16)
		if in.Focused && st.BlinkOn() {
			w, _ := c.Fonts.MeasureText(nil, st.Value()[:st.Cursor()], 16, 0)
			caret := boxAt(box.X+w, box.Y+4, 1, box.H-8)
			c.Renderer.DrawRectangle(caret, toRenderColor(fg))
		}
	}

	ecs.SetComponent(c.Collection, entity, holder)
	return Result{Changed: changed, Entity: entity.ID, Value: st.Value()}
}
