package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/imm"
	"github.com/ashenforge/ecsui/render"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// TreeNode is one hierarchical entry a caller hands to TreeView; Key
// indexes TreeExpansion, Children is only walked when Expandable, the
// same split tree.go's TreeNode.Expandable/Expanded pair draws on.
type TreeNode struct {
	Key        string
	Label      string
	Expandable bool
	Children   []TreeNode
}

// TreeExpansion tracks which keys are expanded, adapted directly from
// tree-expansion.go's TreeExpansion with the same method set.
type TreeExpansion struct {
	state map[string]bool
}

// NewTreeExpansion returns an empty expansion set.
func NewTreeExpansion() *TreeExpansion {
	return &TreeExpansion{state: make(map[string]bool)}
}

func (e *TreeExpansion) IsExpanded(key string) bool { return e.state[key] }

func (e *TreeExpansion) Toggle(key string) bool {
	e.state[key] = !e.state[key]
	return e.state[key]
}

func (e *TreeExpansion) Expand(key string)   { e.state[key] = true }
func (e *TreeExpansion) Collapse(key string) { e.state[key] = false }

func (e *TreeExpansion) ExpandAll(keys []string) {
	for _, k := range keys {
		e.state[k] = true
	}
}

func (e *TreeExpansion) CollapseAll() {
	for k := range e.state {
		e.state[k] = false
	}
}

type flatRow struct {
	node  TreeNode
	depth int
}

// flattenVisible walks roots depth-first, descending into a node's
// children only when it is expanded, mirroring tree.go's contract that
// the rows handed to its draw routine are "pre-flattened (only
// visible/expanded nodes included)".
func flattenVisible(nodes []TreeNode, depth int, exp *TreeExpansion, out []flatRow) []flatRow {
	for _, n := range nodes {
		out = append(out, flatRow{node: n, depth: depth})
		if n.Expandable && exp.IsExpanded(n.Key) {
			out = flattenVisible(n.Children, depth+1, exp, out)
		}
	}
	return out
}

// TreeView renders an indented, scrollable list of expandable rows:
// the flattening step is grounded on tree-expansion.go/tree.go, the
// offset/cursor arithmetic reuses scroll_view.go's clampScroll and
// ensureVisible exactly as tree_state.go's TreeState reuses scroll.go.
func (c *Context) TreeView(parent ecs.EntityID, disambiguator uint64, roots []TreeNode, exp *TreeExpansion, rowHeight float64, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentTreeView, cfg, 1)
	applySize(node, resolved, uicomponent.Expand(1), uicomponent.Pixels(240))
	node.FlexDirection = uicomponent.FlexColumn
	node.DebugName = "tree_view"

	state, _ := ecs.GetComponent[ScrollState](c.Collection, entity)

	flat := flattenVisible(roots, 0, exp, nil)
	total := len(flat)

	box := rect(node)
	visible := 1
	if rowHeight > 0 {
		visible = int(box.H / rowHeight)
		if visible < 1 {
			visible = 1
		}
	}

	in := c.Imm.Update(entity.ID, immRect(box), true, false, c.Theme.ClickActivationMode)
	if in.Focused && total > 0 {
		if c.Imm.Actions.Has(imm.ActionWidgetUp) {
			state.Selection--
		}
		if c.Imm.Actions.Has(imm.ActionWidgetDown) {
			state.Selection++
		}
		if state.Selection < 0 {
			state.Selection = 0
		}
		if state.Selection >= total {
			state.Selection = total - 1
		}
		if c.Imm.Actions.Has(imm.ActionWidgetPress) {
			row := flat[state.Selection]
			if row.node.Expandable {
				exp.Toggle(row.node.Key)
			}
		}
	}
	state.Offset = ensureVisible(state.Offset, state.Selection, visible, total)
	state.Offset = clampScroll(state.Offset, visible, total)

	end := state.Offset + visible
	if end > total {
		end = total
	}

	fg := colorOrRole(resolved.TextColor, c.Theme.Font)
	selBg := colorOrRole(resolved.AccentColor, c.Theme.Focus)
	const indentWidth = 16.0

	for i := state.Offset; i < end; i++ {
		row := flat[i]
		rowEntity, created := imm.Resolve(c.Collection, imm.CallerSite(entity.ID, uint64(i), 1), c.Logger)
		_ = created

		icon := "•"
		if row.node.Expandable {
			if exp.IsExpanded(row.node.Key) {
				icon = "▾"
			} else {
				icon = "▸"
			}
		}

		rowBox := boxAt(box.X+float64(row.depth)*indentWidth, box.Y+float64(i-state.Offset)*rowHeight, box.W-float64(row.depth)*indentWidth, rowHeight)
		rowIn := c.Imm.Update(rowEntity.ID, immRect(rowBox), false, false, c.Theme.ClickActivationMode)
		if rowIn.Clicked {
			state.Selection = i
			if row.node.Expandable {
				exp.Toggle(row.node.Key)
			}
		}

		if c.Renderer != nil {
			if i == state.Selection {
				c.Renderer.DrawRectangle(rowBox, toRenderColor(selBg))
			}
			c.drawLabel(rowBox, icon+" "+row.node.Label, fg, uicomponent.AlignTextLeft, 16)
		}
	}

	if c.Renderer != nil && total > visible && box.W > 2 {
		trackW := 4.0
		track := boxAt(box.X+box.W-trackW, box.Y, trackW, box.H)
		c.Renderer.DrawRectangle(track, toRenderColor(colorOrRole(resolved.BackgroundColor, c.Theme.Surface)))
		thumbH := box.H * float64(visible) / float64(total)
		if thumbH < 8 {
			thumbH = 8
		}
		maxScroll := total - visible
		thumbY := box.Y
		if maxScroll > 0 {
			thumbY = box.Y + (box.H-thumbH)*float64(state.Offset)/float64(maxScroll)
		}
		thumb := boxAt(track.X, thumbY, trackW, thumbH)
		c.Renderer.DrawRectangleRounded(thumb, 0.5, c.Theme.Segments, toRenderColor(colorOrRole(resolved.AccentColor, c.Theme.Accent)), render.CornerAll)
	}

	ecs.SetComponent(c.Collection, entity, state)
	return Result{Changed: in.Clicked, Entity: entity.ID, Value: state.Selection}
}
