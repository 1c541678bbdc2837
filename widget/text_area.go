package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/imm"
	"github.com/ashenforge/ecsui/textarea"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// TextAreaHolder wraps a *textarea.State so multi-line edits persist
// across frames by entity identity, mirroring TextInputHolder.
type TextAreaHolder struct {
	State *textarea.State
}

const textAreaLineHeight = 20.0

// TextArea is a multi-line editable field drawn one visible row at a
// time, grounded on editor.go's render loop (one Region.Text call per
// visible line, offset by ScrollY) with the caret and per-row slicing
// driven by textarea.LineIndex instead of editor_state.go's []string
// line list.
func (c *Context) TextArea(parent ecs.EntityID, disambiguator uint64, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentTextArea, cfg, 1)
	applySize(node, resolved, uicomponent.Expand(1), uicomponent.Pixels(120))
	node.WithPadding(defaultPadding)
	node.DebugName = "text_area"

	holder, ok := ecs.GetComponent[TextAreaHolder](c.Collection, entity)
	if !ok || holder.State == nil {
		holder = TextAreaHolder{State: textarea.New("")}
	}
	st := holder.State

	box := rect(node)
	visibleRows := 1
	if textAreaLineHeight > 0 {
		visibleRows = int(box.H / textAreaLineHeight)
		if visibleRows < 1 {
			visibleRows = 1
		}
	}
	st.ViewportRows = visibleRows
	st.ViewportCols = 200

	in := c.Imm.Update(entity.ID, immRect(box), true, false, clickActivation(resolved, c.Theme))

	changed := false
	if in.Focused {
		for _, r := range c.Imm.TextInput {
			if r == '\n' || r == '\r' {
				st.InsertNewline()
			} else {
				st.Insert(string(r))
			}
			changed = true
		}
		actions := c.Imm.Actions
		if actions.Has(imm.ActionTextBackspace) {
			changed = st.DeleteBackward() || changed
		}
		if actions.Has(imm.ActionTextDelete) {
			changed = st.DeleteForward() || changed
		}
		if actions.Has(imm.ActionTextHome) {
			st.Home()
		}
		if actions.Has(imm.ActionTextEnd) {
			st.End()
		}
		if actions.Has(imm.ActionWidgetLeft) {
			st.MoveLeft()
		}
		if actions.Has(imm.ActionWidgetRight) {
			st.MoveRight()
		}
		if actions.Has(imm.ActionWidgetUp) {
			st.MoveUp()
		}
		if actions.Has(imm.ActionWidgetDown) {
			st.MoveDown()
		}
		st.EnsureCursorVisible()
	}

	bg := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	if in.Focused {
		bg = bg.Blend(colorOrRole(resolved.AccentColor, c.Theme.Focus), 0.1)
	}
	fg := colorOrRole(resolved.TextColor, c.Theme.Font)

	if c.Renderer != nil {
		c.drawPanel(box, bg, resolved)
		cursorRow, cursorCol := st.Position()
		for row := st.ScrollRow; row < st.ScrollRow+visibleRows && row < st.LineCount(); row++ {
			line := st.Line(row)
			rowBox := boxAt(box.X, box.Y+float64(row-st.ScrollRow)*textAreaLineHeight, box.W, textAreaLineHeight)
			c.drawLabel(rowBox, line, fg, uicomponent.AlignTextLeft, 16)
			if in.Focused && row == cursorRow {
				w, _ := c.Fonts.MeasureText(nil, line[:min(cursorCol, len(line))], 16, 0)
				caret := boxAt(rowBox.X+w, rowBox.Y+2, 1, textAreaLineHeight-4)
				c.Renderer.DrawRectangle(caret, toRenderColor(fg))
			}
		}
	}

	ecs.SetComponent(c.Collection, entity, holder)
	return Result{Changed: changed, Entity: entity.ID, Value: st.Value()}
}
