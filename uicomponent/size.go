// Package uicomponent defines the UI tree node (UIComponent) that the
// layout package's AutoLayout solver operates over: desired sizes,
// flex fields, and the computed-box fields AutoLayout fills in.
package uicomponent

// Axis selects which dimension a Size/computed value belongs to.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	axisCount
)

// Dim identifies how a Size's value should be interpreted.
type Dim int

const (
	DimNone Dim = iota
	DimPixels
	DimPercent
	DimScreenPercent
	DimText
	DimChildren
	DimExpand
)

// ScaleMode controls whether a Pixels size is scaled by Config.UIScale.
type ScaleMode int

const (
	ScaleAdaptive ScaleMode = iota
	ScaleFixed
)

// Size is a single desired dimension: what kind of value it is, the
// magnitude, and how willing it is to shrink under pressure.
type Size struct {
	Dim        Dim
	Value      float64
	Strictness float64 // 0 = fully elastic, 1 = rigid
	Scale      ScaleMode
}

// Pixels builds a rigid pixel-sized Size.
func Pixels(v float64) Size { return Size{Dim: DimPixels, Value: v, Strictness: 1, Scale: ScaleAdaptive} }

// PixelsElastic builds a pixel-sized Size with the given strictness.
func PixelsElastic(v, strictness float64) Size {
	return Size{Dim: DimPixels, Value: v, Strictness: strictness, Scale: ScaleAdaptive}
}

// Percent builds a Size relative to the parent's content box.
func Percent(v float64) Size { return Size{Dim: DimPercent, Value: v, Strictness: 1} }

// ScreenPercent builds a Size relative to the layout resolution.
func ScreenPercent(v float64) Size { return Size{Dim: DimScreenPercent, Value: v, Strictness: 1} }

// Text builds a Size that measures its node's label.
func Text() Size { return Size{Dim: DimText, Strictness: 1} }

// Children builds a Size derived from the sum/max of child sizes.
func Children() Size { return Size{Dim: DimChildren, Strictness: 1} }

// Expand builds a Size that claims leftover space proportional to
// weight among sibling Expand nodes.
func Expand(weight float64) Size { return Size{Dim: DimExpand, Value: weight, Strictness: 0} }

// Sides holds a 4-sided Size set (padding or margin).
type Sides struct {
	Top, Right, Bottom, Left Size
}

// Uniform builds a Sides with the same Size on all four edges.
func Uniform(s Size) Sides { return Sides{Top: s, Right: s, Bottom: s, Left: s} }

// Axis returns the leading+trailing Size pair on an axis: (top,bottom)
// for Y, (left,right) for X.
func (s Sides) Axis(axis Axis) (leading, trailing Size) {
	if axis == AxisX {
		return s.Left, s.Right
	}
	return s.Top, s.Bottom
}
