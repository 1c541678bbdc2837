package layout

import "github.com/ashenforge/ecsui/uicomponent"

// pass3ChildDependent runs post-order: children are sized first, then
// any node whose dim is Children sums (main axis) or maxes (cross
// axis) its children, falling back to measured label text if it has
// no children at all.
func (s *Solver) pass3ChildDependent(n *uicomponent.UIComponent) {
	children := s.children(n)
	for _, child := range children {
		s.pass3ChildDependent(child)
	}

	mainAxis := n.FlexDirection.MainAxis()
	crossAxis := n.FlexDirection.CrossAxis()

	for axis := uicomponent.AxisX; axis <= uicomponent.AxisY; axis++ {
		if n.Computed[axis] >= 0 {
			continue
		}
		if n.Desired(axis).Dim != uicomponent.DimChildren {
			continue
		}
		n.Computed[axis] = s.computeChildrenSize(n, children, axis, mainAxis, crossAxis)
	}
}

func (s *Solver) computeChildrenSize(n *uicomponent.UIComponent, children []*uicomponent.UIComponent, axis, mainAxis, crossAxis uicomponent.Axis) float64 {
	if len(children) == 0 {
		return s.measureText(n, axis) + sidesSum(n.ComputedPadd, axis)
	}

	var content float64
	if axis == mainAxis {
		for _, child := range children {
			content += childBoxSize(child, axis)
		}
	} else if axis == crossAxis {
		for _, child := range children {
			if v := childBoxSize(child, axis); v > content {
				content = v
			}
		}
	}
	return content + sidesSum(n.ComputedPadd, axis)
}

// childBoxSize returns a child's full box on axis including its own
// margin, treating an unresolved (-1) size as 0 so a still-unsolved
// Expand/Percent child doesn't poison the parent's Children sum.
func childBoxSize(child *uicomponent.UIComponent, axis uicomponent.Axis) float64 {
	size := child.Computed[axis]
	if size < 0 {
		size = 0
	}
	return size + sidesSum(child.ComputedMargin, axis)
}

func sidesSum(sides uicomponent.Sides, axis uicomponent.Axis) float64 {
	leading, trailing := sides.Axis(axis)
	return leading.Value + trailing.Value
}
