package layout

import "github.com/ashenforge/ecsui/uicomponent"

// pass2ParentDependent resolves Percent sizes (and Expand's temporary
// placeholder) using the parent's own computed[axis], now partially
// known from pass 1. parent is nil for the root, which has no percent
// base and is left to whatever pass 1 resolved (or -1, fixed up by
// pass 3/4 if it's a Children/Expand root).
func (s *Solver) pass2ParentDependent(n *uicomponent.UIComponent, parent *uicomponent.UIComponent) {
	for axis := uicomponent.AxisX; axis <= uicomponent.AxisY; axis++ {
		if n.Computed[axis] >= 0 {
			continue // already resolved in pass 1
		}
		desired := n.Desired(axis)
		switch desired.Dim {
		case uicomponent.DimPercent:
			if parent == nil {
				continue
			}
			if parent.Desired(axis).Dim == uicomponent.DimChildren {
				s.opts.Logger.Error("layout: percent child under a children-sized parent on the same axis",
					"node", n.DebugName, "parent", parent.DebugName, "axis", axis)
				continue // left at -1, per the logic-violation error taxonomy
			}
			n.Computed[axis] = desired.Value * parentContentBox(parent, axis)
		case uicomponent.DimExpand:
			n.Computed[axis] = 0 // placeholder; pass 4 distributes leftover space
		}
	}

	n.ComputedPadd = s.resolveSidesParent(n.Padding(), n.ComputedPadd, parent)
	n.ComputedMargin = s.resolveSidesParent(n.Margin(), n.ComputedMargin, parent)

	for _, child := range s.children(n) {
		s.pass2ParentDependent(child, n)
	}
}

// parentContentBox returns the parent's content-box size on axis: its
// full computed box minus its own padding and margin, the base Percent
// sizes are measured against.
func parentContentBox(parent *uicomponent.UIComponent, axis uicomponent.Axis) float64 {
	if parent.Computed[axis] < 0 {
		return 0
	}
	leadingPad, trailingPad := parent.ComputedPadd.Axis(axis)
	leadingMar, trailingMar := parent.ComputedMargin.Axis(axis)
	v := parent.Computed[axis] - leadingPad.Value - trailingPad.Value - leadingMar.Value - trailingMar.Value
	if v < 0 {
		return 0
	}
	return v
}

func (s *Solver) resolveSidesParent(desired, already uicomponent.Sides, parent *uicomponent.UIComponent) uicomponent.Sides {
	resolve := func(sz uicomponent.Size, current uicomponent.Size, axis uicomponent.Axis) uicomponent.Size {
		if sz.Dim != uicomponent.DimPercent || parent == nil {
			return current
		}
		base := parent.Computed[axis]
		if base < 0 {
			base = 0
		}
		return uicomponent.Size{Dim: uicomponent.DimPercent, Value: sz.Value * base}
	}
	return uicomponent.Sides{
		Top:    resolve(desired.Top, already.Top, uicomponent.AxisY),
		Right:  resolve(desired.Right, already.Right, uicomponent.AxisX),
		Bottom: resolve(desired.Bottom, already.Bottom, uicomponent.AxisY),
		Left:   resolve(desired.Left, already.Left, uicomponent.AxisX),
	}
}
