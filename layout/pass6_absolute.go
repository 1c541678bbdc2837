package layout

import "github.com/ashenforge/ecsui/uicomponent"

// pass6Absolute turns pass 5's parent-relative offsets into world-space
// coordinates: each node's absolute position is its parent's absolute
// content origin plus the relative offset pass 5 already stored in
// ComputedRel. Runs top-down so a parent's content origin is final
// before its children convert.
func (s *Solver) pass6Absolute(n *uicomponent.UIComponent, parentX, parentY float64) {
	absX := parentX + n.ComputedRel[uicomponent.AxisX]
	absY := parentY + n.ComputedRel[uicomponent.AxisY]
	n.ComputedRel[uicomponent.AxisX] = absX
	n.ComputedRel[uicomponent.AxisY] = absY
	n.IsVisible = !n.ShouldHide

	originX, originY := n.ContentOrigin()
	for _, child := range s.children(n) {
		s.pass6Absolute(child, originX, originY)
	}
}
