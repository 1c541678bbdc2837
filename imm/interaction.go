package imm

import "github.com/ashenforge/ecsui/ecs"

// ClickActivation picks which mouse edge a widget's click fires on.
type ClickActivation int

const (
	ClickOnRelease ClickActivation = iota
	ClickOnPress
)

// Rect is the axis-aligned box Update hit-tests the mouse against; it
// mirrors render.Rect's fields without importing render, since imm must
// not depend on the package that will eventually depend on it.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Interaction is what a widget reads back from Update: this frame's
// hot/active/click/focus state for one entity.
type Interaction struct {
	Hot         bool
	Active      bool
	Clicked     bool
	Dragging    bool
	Focused     bool
	JustFocused bool
}

// Update is the hot/active/click/focus state machine, called once per
// frame by every interactive widget with its own id and screen rect.
//
// hot: mouse inside rect and not gated.
// active: hot and the left button made an up-to-down transition; stays
// active (even once no longer hot) until the button goes back up.
// clicked: active, still hot, not dragged, and the configured edge
// (press or release) fired this frame.
// focus: a click anywhere on a focusable widget moves focus to it;
// focusable widgets also register into the tab order for EndFrame.
func (c *Context) Update(id ecs.EntityID, rect Rect, focusable, selectOnFocus bool, activation ClickActivation) Interaction {
	gated := c.gated(id)
	hot := !gated && rect.contains(c.Mouse.X, c.Mouse.Y)
	if hot {
		c.HotID = id
	}

	if hot && c.Mouse.JustPressed && c.ActiveID == FAKE {
		c.ActiveID = id
		c.LastProcessed = id
	}
	active := c.ActiveID == id
	dragging := active && c.Mouse.PressMoved

	clicked := false
	if active && hot && !dragging {
		switch activation {
		case ClickOnPress:
			clicked = c.Mouse.JustPressed
		case ClickOnRelease:
			clicked = c.Mouse.JustReleased
		}
	}

	justFocused := false
	if focusable {
		c.order = append(c.order, id)
		c.FocusedIDs[id] = true
		if clicked || (hot && c.Mouse.JustPressed) {
			if c.FocusID != id {
				justFocused = true
			}
			c.FocusID = id
			c.VisualFocusID = id
		}
	}
	focused := c.FocusID == id
	if focused && justFocused && selectOnFocus {
		c.selectEvents[id] = true
	}

	return Interaction{
		Hot:         hot,
		Active:      active,
		Clicked:     clicked,
		Dragging:    dragging,
		Focused:     focused,
		JustFocused: justFocused,
	}
}

// applyTabTraversal moves FocusID within the order built this frame.
// WidgetNext alone advances forward; WidgetNext with WidgetMod, or
// WidgetBack alone, moves backward. Traversal wraps at either end and
// is a no-op with fewer than two focusable ids.
func (c *Context) applyTabTraversal() {
	forward := c.Actions.Has(ActionWidgetNext) && !c.Actions.Has(ActionWidgetMod)
	backward := c.Actions.Has(ActionWidgetBack) || (c.Actions.Has(ActionWidgetNext) && c.Actions.Has(ActionWidgetMod))
	if !forward && !backward {
		return
	}
	if len(c.order) == 0 {
		return
	}
	if len(c.order) == 1 {
		c.FocusID = c.order[0]
		c.VisualFocusID = c.order[0]
		return
	}

	idx := indexOf(c.order, c.FocusID)
	if idx < 0 {
		if backward {
			idx = 0
		} else {
			idx = len(c.order) - 1
		}
	}
	if backward {
		idx = (idx - 1 + len(c.order)) % len(c.order)
	} else {
		idx = (idx + 1) % len(c.order)
	}
	c.FocusID = c.order[idx]
	c.VisualFocusID = c.order[idx]
}

func indexOf(ids []ecs.EntityID, id ecs.EntityID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
