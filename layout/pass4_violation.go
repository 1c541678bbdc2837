package layout

import "github.com/ashenforge/ecsui/uicomponent"

// pass4ViolationSolve reconciles each container's children against its
// own content box on the main axis: short of space, rigid children
// keep their size and elastic ones give first; with space left over,
// Expand children claim it by weight, or elastic children split it
// evenly when nothing wants to expand. Runs top-down since a parent's
// content box must be final before its children's shares make sense.
func (s *Solver) pass4ViolationSolve(n *uicomponent.UIComponent) {
	children := s.children(n)
	if len(children) > 0 {
		s.solveMainAxis(n, children)
	}
	for _, child := range children {
		s.applyMinMax(child)
	}
	for _, child := range children {
		s.pass4ViolationSolve(child)
	}
}

func (s *Solver) solveMainAxis(n *uicomponent.UIComponent, children []*uicomponent.UIComponent) {
	axis := n.FlexDirection.MainAxis()
	contentBox := n.ContentSize(axis)

	var expand, elastic, rigid []*uicomponent.UIComponent
	var nonExpandSum, expandWeight float64

	for _, child := range children {
		if child.Computed[axis] < 0 {
			continue // left unresolved by a logic error in pass 2; never touched here
		}
		desired := child.Desired(axis)
		if desired.Dim == uicomponent.DimExpand {
			expand = append(expand, child)
			w := desired.Value
			if w <= 0 {
				w = 1
			}
			expandWeight += w
			continue
		}
		nonExpandSum += childBoxSize(child, axis)
		if desired.Strictness <= 0 {
			elastic = append(elastic, child)
		} else {
			rigid = append(rigid, child)
		}
	}

	slack := contentBox - nonExpandSum

	switch {
	case slack > 0:
		if len(expand) > 0 {
			s.growByWeight(expand, axis, slack, expandWeight)
		} else if len(elastic) > 0 {
			s.growEqually(elastic, axis, slack)
		}
	case slack < 0:
		deficit := -slack
		deficit = s.shrinkEqually(elastic, axis, deficit)
		if deficit > 1e-6 && len(rigid) > 0 {
			s.shrinkWeighted(n, rigid, axis, deficit)
		}
	}
}

func (s *Solver) growByWeight(nodes []*uicomponent.UIComponent, axis uicomponent.Axis, slack, totalWeight float64) {
	if totalWeight <= 0 {
		return
	}
	for _, child := range nodes {
		w := child.Desired(axis).Value
		if w <= 0 {
			w = 1
		}
		share := slack * (w / totalWeight)
		leadingMar, trailingMar := child.ComputedMargin.Axis(axis)
		box := share - leadingMar.Value - trailingMar.Value
		if box < 0 {
			box = 0
		}
		child.Computed[axis] = box
	}
}

func (s *Solver) growEqually(nodes []*uicomponent.UIComponent, axis uicomponent.Axis, slack float64) {
	if len(nodes) == 0 {
		return
	}
	share := slack / float64(len(nodes))
	for _, child := range nodes {
		child.Computed[axis] += share
	}
}

// shrinkEqually removes deficit from strictness==0 children equally,
// clamping each at 0 and rolling any remainder onto the children still
// above 0, returning whatever deficit could not be absorbed.
func (s *Solver) shrinkEqually(nodes []*uicomponent.UIComponent, axis uicomponent.Axis, deficit float64) float64 {
	remaining := make([]*uicomponent.UIComponent, len(nodes))
	copy(remaining, nodes)

	for deficit > 1e-6 && len(remaining) > 0 {
		share := deficit / float64(len(remaining))
		next := remaining[:0]
		absorbed := 0.0
		for _, child := range remaining {
			available := child.Computed[axis]
			take := share
			if take > available {
				take = available
			}
			child.Computed[axis] = available - take
			absorbed += take
			if child.Computed[axis] > 1e-6 {
				next = append(next, child)
			}
		}
		deficit -= absorbed
		if absorbed <= 1e-9 {
			break
		}
		remaining = next
	}
	return deficit
}

// shrinkWeighted iteratively shrinks non-rigid-but-strict children in
// proportion to 1-strictness, loosening each child's effective
// strictness by 0.05 per round so a stuck solve keeps making progress,
// up to maxViolationIterations before logging and giving up.
func (s *Solver) shrinkWeighted(n *uicomponent.UIComponent, nodes []*uicomponent.UIComponent, axis uicomponent.Axis, deficit float64) {
	effective := make([]float64, len(nodes))
	for i, child := range nodes {
		effective[i] = child.Desired(axis).Strictness
	}

	for iter := 0; iter < maxViolationIterations && deficit > 1e-6; iter++ {
		var totalWeight float64
		for _, st := range effective {
			totalWeight += 1 - st
		}
		if totalWeight <= 1e-9 {
			for i := range effective {
				effective[i] -= 0.05
				if effective[i] < 0 {
					effective[i] = 0
				}
			}
			continue
		}
		absorbed := 0.0
		for i, child := range nodes {
			w := (1 - effective[i]) / totalWeight
			take := deficit * w
			available := child.Computed[axis]
			if take > available {
				take = available
			}
			child.Computed[axis] = available - take
			absorbed += take
		}
		deficit -= absorbed
		for i := range effective {
			effective[i] -= 0.05
			if effective[i] < 0 {
				effective[i] = 0
			}
		}
	}

	if deficit > 1e-6 {
		s.opts.Logger.Debug("layout: main-axis overflow unresolved after max iterations",
			"node", n.DebugName, "deficit", deficit)
	}
}

// applyMinMax clamps a node's computed size on both axes to its
// min/max constraints, evaluated after its main-axis share is final.
func (s *Solver) applyMinMax(n *uicomponent.UIComponent) {
	for axis := uicomponent.AxisX; axis <= uicomponent.AxisY; axis++ {
		if n.Computed[axis] < 0 {
			continue // unresolved by a logic error upstream; leave the sentinel alone
		}
		if min, ok := n.MinSize(axis); ok && n.Computed[axis] < min.Value {
			n.Computed[axis] = min.Value
		}
		if max, ok := n.MaxSize(axis); ok && n.Computed[axis] > max.Value {
			n.Computed[axis] = max.Value
		}
	}
}
