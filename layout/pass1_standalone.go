package layout

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/uicomponent"
)

// pass1Standalone computes Computed[axis] for every node from desired
// sizes that depend on neither parent nor children: Pixels,
// ScreenPercent, and Text. Order does not matter since nothing here
// reads another node's computed value.
func (s *Solver) pass1Standalone(n *uicomponent.UIComponent) {
	for axis := uicomponent.AxisX; axis <= uicomponent.AxisY; axis++ {
		n.Computed[axis] = s.resolveStandalone(n, n.Desired(axis), axis)
	}
	n.ComputedPadd = s.resolveSidesStandalone(n.Padding())
	n.ComputedMargin = s.resolveSidesStandalone(n.Margin())

	for _, child := range s.children(n) {
		s.pass1Standalone(child)
	}
}

// resolveStandalone returns the computed pixel value for a Size that
// can be resolved without parent or child information, or -1 if dim
// needs a later pass (Percent, Expand, Children).
func (s *Solver) resolveStandalone(n *uicomponent.UIComponent, sz uicomponent.Size, axis uicomponent.Axis) float64 {
	switch sz.Dim {
	case uicomponent.DimPixels:
		if sz.Scale == uicomponent.ScaleAdaptive {
			return sz.Value * s.opts.UIScale
		}
		return sz.Value
	case uicomponent.DimScreenPercent:
		if axis == uicomponent.AxisX {
			return sz.Value * s.opts.Resolution.Width
		}
		return sz.Value * s.opts.Resolution.Height
	case uicomponent.DimText:
		return s.measureText(n, axis)
	default:
		return -1
	}
}

// measureText sizes a node from its HasLabel component, falling back
// to 0 if the node carries no label.
func (s *Solver) measureText(n *uicomponent.UIComponent, axis uicomponent.Axis) float64 {
	if n == nil {
		return 0
	}
	e, ok := s.collection.GetEntityForID(n.ID())
	if !ok {
		return 0
	}
	label, ok := ecs.GetComponent[uicomponent.HasLabel](s.collection, e)
	if !ok || s.opts.Measurer == nil {
		return 0
	}
	w, h := s.opts.Measurer.MeasureText(n.FontName, label.Text, n.FontSize, 0)
	if axis == uicomponent.AxisX {
		return w
	}
	return h
}

func (s *Solver) resolveSidesStandalone(sides uicomponent.Sides) uicomponent.Sides {
	resolve := func(sz uicomponent.Size, axis uicomponent.Axis) uicomponent.Size {
		v := s.resolveStandalone(nil, sz, axis)
		if v < 0 {
			v = 0
		}
		return uicomponent.Size{Dim: sz.Dim, Value: v}
	}
	return uicomponent.Sides{
		Top:    resolve(sides.Top, uicomponent.AxisY),
		Right:  resolve(sides.Right, uicomponent.AxisX),
		Bottom: resolve(sides.Bottom, uicomponent.AxisY),
		Left:   resolve(sides.Left, uicomponent.AxisX),
	}
}
