package layout

import "github.com/ashenforge/ecsui/uicomponent"

// pass5Position lays out n's children along its flex direction and
// stores each child's position relative to n's own top-left corner
// (not yet an absolute, world-space coordinate; pass 6 accumulates
// ancestor offsets into that). x, y is n's own position relative to
// its parent, passed down by the caller.
func (s *Solver) pass5Position(n *uicomponent.UIComponent, x, y float64) {
	n.ComputedRel[uicomponent.AxisX] = x
	n.ComputedRel[uicomponent.AxisY] = y

	children := s.children(n)
	if len(children) == 0 {
		return
	}

	mainAxis := n.FlexDirection.MainAxis()
	crossAxis := n.FlexDirection.CrossAxis()

	// Children's positions are relative to n's content origin; pass 6
	// adds n's own margin and padding back in via ContentOrigin(), so
	// starting these cursors at 0 (not leadingMar+leadingPad) avoids
	// double-counting them.
	const originMain, originCross = 0, 0
	contentMain := n.ContentSize(mainAxis)

	flow, absolute := splitFlowAbsolute(children)
	lines := s.buildLines(flow, mainAxis, contentMain, n.FlexWrap)

	totalCrossUsed := 0.0
	crossCursor := originCross
	for _, line := range lines {
		lineCross := lineCrossSize(line, crossAxis)
		offsets := justifyOffsets(line, mainAxis, contentMain, n.JustifyContent)
		for i, child := range line {
			mainPos := s.snap(originMain + offsets[i])
			crossPos := s.snap(crossCursor + alignOffset(child, crossAxis, lineCross, n.AlignItems))
			localX, localY := fromMainCross(mainAxis, mainPos, crossPos)
			s.pass5Position(child, localX, localY)
		}
		crossCursor += lineCross
		totalCrossUsed += lineCross
	}

	if n.Desired(crossAxis).Dim == uicomponent.DimChildren && len(lines) > 1 {
		n.Computed[crossAxis] = totalCrossUsed + sidesSum(n.ComputedPadd, crossAxis) + sidesSum(n.ComputedMargin, crossAxis)
	}

	for _, child := range absolute {
		mainPos := originMain + child.AbsolutePos[mainAxis]
		crossPos := originCross + child.AbsolutePos[crossAxis]
		localX, localY := fromMainCross(mainAxis, mainPos, crossPos)
		s.pass5Position(child, localX, localY)
	}
}

func splitFlowAbsolute(children []*uicomponent.UIComponent) (flow, absolute []*uicomponent.UIComponent) {
	for _, c := range children {
		if c.Absolute {
			absolute = append(absolute, c)
		} else {
			flow = append(flow, c)
		}
	}
	return flow, absolute
}

// buildLines greedily packs flow children into wrap lines: a single
// line when wrapping is off, or as many lines as needed to keep each
// line's summed main-axis box within contentMain plus a grid-aware
// tolerance so a near-exact fit doesn't spuriously wrap.
func (s *Solver) buildLines(flow []*uicomponent.UIComponent, mainAxis uicomponent.Axis, contentMain float64, wrap uicomponent.FlexWrap) [][]*uicomponent.UIComponent {
	if wrap == uicomponent.NoWrap || len(flow) == 0 {
		if len(flow) == 0 {
			return nil
		}
		return [][]*uicomponent.UIComponent{flow}
	}

	var lines [][]*uicomponent.UIComponent
	var current []*uicomponent.UIComponent
	var used float64
	tolerance := s.gridSnapTolerance(len(flow))

	for _, child := range flow {
		size := childBoxSize(child, mainAxis)
		if len(current) > 0 && used+size > contentMain+tolerance {
			lines = append(lines, current)
			current = nil
			used = 0
		}
		current = append(current, child)
		used += size
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

func lineCrossSize(line []*uicomponent.UIComponent, crossAxis uicomponent.Axis) float64 {
	var max float64
	for _, child := range line {
		if v := childBoxSize(child, crossAxis); v > max {
			max = v
		}
	}
	return max
}

// justifyOffsets returns, for each child in line, its main-axis offset
// from the content box's leading edge.
func justifyOffsets(line []*uicomponent.UIComponent, mainAxis uicomponent.Axis, contentMain float64, justify uicomponent.Justify) []float64 {
	offsets := make([]float64, len(line))
	var used float64
	for _, child := range line {
		used += childBoxSize(child, mainAxis)
	}
	slack := contentMain - used
	if slack < 0 {
		slack = 0
	}

	var cursor, gap float64
	switch justify {
	case uicomponent.JustifyFlexEnd:
		cursor = slack
	case uicomponent.JustifyCenter:
		cursor = slack / 2
	case uicomponent.JustifySpaceBetween:
		if len(line) > 1 {
			gap = slack / float64(len(line)-1)
		} else {
			cursor = slack / 2
		}
	case uicomponent.JustifySpaceAround:
		if len(line) > 0 {
			gap = slack / float64(len(line))
			cursor = gap / 2
		}
	}

	for i, child := range line {
		leadingMar, _ := child.ComputedMargin.Axis(mainAxis)
		offsets[i] = cursor + leadingMar.Value
		cursor += childBoxSize(child, mainAxis) + gap
	}
	return offsets
}

// alignOffset resolves a child's cross-axis offset within its line,
// honoring a per-child self-align override before the container's
// align_items default.
func alignOffset(child *uicomponent.UIComponent, crossAxis uicomponent.Axis, lineCross float64, alignItems uicomponent.Align) float64 {
	align := child.SelfAlign
	if align == uicomponent.AlignAuto {
		align = alignItems
	}
	leadingMar, _ := child.ComputedMargin.Axis(crossAxis)
	childSize := childBoxSize(child, crossAxis)

	switch align {
	case uicomponent.AlignFlexEnd:
		return lineCross - childSize + leadingMar.Value
	case uicomponent.AlignCenter:
		return (lineCross-childSize)/2 + leadingMar.Value
	default: // FlexStart, Stretch, AlignAuto with no container default
		return leadingMar.Value
	}
}

func fromMainCross(mainAxis uicomponent.Axis, mainVal, crossVal float64) (x, y float64) {
	if mainAxis == uicomponent.AxisX {
		return mainVal, crossVal
	}
	return crossVal, mainVal
}
