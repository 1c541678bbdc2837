package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/render"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// ScrollState tracks which row window a scroll_view currently shows,
// a component rather than a local so it survives across frames the
// same way scroll_state.go's ScrollState outlives a single draw call.
type ScrollState struct {
	Offset    int
	Selection int
}

// clampScroll mirrors scroll.go's ClampScroll, generalized from a
// terminal's row count to any item-count/visible-count pair.
func clampScroll(offset, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if offset < 0 {
		return 0
	}
	if offset > maxScroll {
		return maxScroll
	}
	return offset
}

// ensureVisible mirrors scroll_state.go's EnsureVisible.
func ensureVisible(offset, pos, visible, total int) int {
	if pos < offset {
		offset = pos
	} else if pos >= offset+visible {
		offset = pos - visible + 1
	}
	return clampScroll(offset, visible, total)
}

// ScrollView lays out a fixed-height row per item inside a clipped
// viewport and draws a track-and-thumb scrollbar down the right edge,
// grounded on scroll.go/scroll_state.go for offset arithmetic and
// scrollbar.go for the thumb proportions; renderItem composes each
// visible row (IconRow, Button, a custom Div) the same way
// TabContainer composes tabItem per tab. The Renderer contract has no
// scissor primitive, so rows outside the visible window are simply not
// laid out or drawn rather than clipped.
func (c *Context) ScrollView(parent ecs.EntityID, disambiguator uint64, itemCount int, itemHeight float64, renderItem func(rowParent ecs.EntityID, index int) Result, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentScrollView, cfg, 1)
	applySize(node, resolved, uicomponent.Expand(1), uicomponent.Pixels(200))
	node.FlexDirection = uicomponent.FlexColumn
	node.DebugName = "scroll_view"

	state, _ := ecs.GetComponent[ScrollState](c.Collection, entity)

	box := rect(node)
	visible := 1
	if itemHeight > 0 {
		visible = int(box.H / itemHeight)
		if visible < 1 {
			visible = 1
		}
	}
	state.Offset = clampScroll(state.Offset, visible, itemCount)

	hotTest := c.Imm.Update(entity.ID, immRect(box), false, false, c.Theme.ClickActivationMode)
	if hotTest.Hot && c.Imm.Mouse.WheelDeltaY != 0 {
		state.Offset = clampScroll(state.Offset-int(c.Imm.Mouse.WheelDeltaY), visible, itemCount)
	}

	contentEntity := entity
	var lastResult Result
	end := state.Offset + visible
	if end > itemCount {
		end = itemCount
	}
	for i := state.Offset; i < end; i++ {
		if renderItem == nil {
			continue
		}
		res := renderItem(contentEntity.ID, i)
		if res.Changed {
			state.Selection = i
			state.Offset = ensureVisible(state.Offset, i, visible, itemCount)
			lastResult = res
		}
	}

	if c.Renderer != nil && itemCount > visible && box.W > 2 {
		trackW := 4.0
		track := boxAt(box.X+box.W-trackW, box.Y, trackW, box.H)
		trackColor := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
		c.Renderer.DrawRectangle(track, toRenderColor(trackColor))

		thumbH := box.H * float64(visible) / float64(itemCount)
		if thumbH < 8 {
			thumbH = 8
		}
		if thumbH > box.H {
			thumbH = box.H
		}
		maxScroll := itemCount - visible
		thumbY := box.Y
		if maxScroll > 0 {
			thumbY = box.Y + (box.H-thumbH)*float64(state.Offset)/float64(maxScroll)
		}
		thumb := boxAt(track.X, thumbY, trackW, thumbH)
		thumbColor := colorOrRole(resolved.AccentColor, c.Theme.Accent)
		c.Renderer.DrawRectangleRounded(thumb, 0.5, c.Theme.Segments, toRenderColor(thumbColor), render.CornerAll)
	}

	ecs.SetComponent(c.Collection, entity, state)
	return Result{Changed: lastResult.Changed, Entity: entity.ID, Value: state.Selection}
}
