package uicomponent

import "github.com/ashenforge/ecsui/ecs"

// NoParent is the sentinel parent id for a root node.
const NoParent ecs.EntityID = 0

// UIComponent is the tree node AutoLayout operates over. It is attached
// as a component to any entity that participates in layout, grounded on
// engine/world.go's entity/component ownership shape generalized into a
// standalone tree node for the layout package's solver to operate
// over.
type UIComponent struct {
	id       ecs.EntityID
	parent   ecs.EntityID
	children []ecs.EntityID

	desired [axisCount]Size
	padding Sides
	margin  Sides

	minSize [axisCount]*Size
	maxSize [axisCount]*Size

	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent Justify
	AlignItems     Align
	SelfAlign      Align

	Absolute    bool
	AbsolutePos [axisCount]float64

	ShouldHide bool

	FontName string
	FontSize float64

	// Computed, reset each layout pass.
	Computed       [axisCount]float64
	ComputedRel    [axisCount]float64
	ComputedPadd   Sides
	ComputedMargin Sides
	IsVisible      bool
	WasRendered    bool

	// DebugName is surfaced in layout warnings.
	DebugName string
}

// New creates a UIComponent for the given entity with no parent and no
// children.
func New(id ecs.EntityID) *UIComponent {
	c := &UIComponent{id: id, parent: NoParent}
	c.ResetComputedValues()
	return c
}

// ID returns the owning entity id.
func (c *UIComponent) ID() ecs.EntityID { return c.id }

// Parent returns the parent entity id, or NoParent for a root.
func (c *UIComponent) Parent() ecs.EntityID { return c.parent }

// Children returns the ordered child id list. Callers must not mutate
// the returned slice.
func (c *UIComponent) Children() []ecs.EntityID { return c.children }

// AddChild appends id to the child list.
func (c *UIComponent) AddChild(id ecs.EntityID) *UIComponent {
	c.children = append(c.children, id)
	return c
}

// SetParent sets the parent id directly, without touching any tree's
// child list; callers normally want Tree.Reparent instead.
func (c *UIComponent) SetParent(id ecs.EntityID) *UIComponent {
	c.parent = id
	return c
}

// RemoveChild removes id from the child list if present.
func (c *UIComponent) RemoveChild(id ecs.EntityID) *UIComponent {
	for i, child := range c.children {
		if child == id {
			c.children = append(c.children[:i], c.children[i+1:]...)
			break
		}
	}
	return c
}

// ResetComputedValues sets every computed* field to its pre-layout
// sentinel (-1 for sizes, zeroed for the rest), per AutoLayout's reset
// pass.
func (c *UIComponent) ResetComputedValues() *UIComponent {
	c.Computed[AxisX] = -1
	c.Computed[AxisY] = -1
	c.ComputedRel[AxisX] = 0
	c.ComputedRel[AxisY] = 0
	c.ComputedPadd = Sides{}
	c.ComputedMargin = Sides{}
	c.IsVisible = false
	c.WasRendered = false
	return c
}

// WithDesired sets the desired Size on an axis.
func (c *UIComponent) WithDesired(axis Axis, s Size) *UIComponent {
	c.desired[axis] = s
	return c
}

// Desired returns the desired Size on an axis.
func (c *UIComponent) Desired(axis Axis) Size { return c.desired[axis] }

// WithPadding sets the 4-sided desired padding.
func (c *UIComponent) WithPadding(s Sides) *UIComponent {
	c.padding = s
	return c
}

// Padding returns the desired padding.
func (c *UIComponent) Padding() Sides { return c.padding }

// WithMargin sets the 4-sided desired margin.
func (c *UIComponent) WithMargin(s Sides) *UIComponent {
	c.margin = s
	return c
}

// Margin returns the desired margin.
func (c *UIComponent) Margin() Sides { return c.margin }

// WithMinSize sets a minimum-size constraint on an axis.
func (c *UIComponent) WithMinSize(axis Axis, s Size) *UIComponent {
	c.minSize[axis] = &s
	return c
}

// WithMaxSize sets a maximum-size constraint on an axis.
func (c *UIComponent) WithMaxSize(axis Axis, s Size) *UIComponent {
	c.maxSize[axis] = &s
	return c
}

// MinSize returns the minimum-size constraint on an axis, if any.
func (c *UIComponent) MinSize(axis Axis) (Size, bool) {
	if c.minSize[axis] == nil {
		return Size{}, false
	}
	return *c.minSize[axis], true
}

// MaxSize returns the maximum-size constraint on an axis, if any.
func (c *UIComponent) MaxSize(axis Axis) (Size, bool) {
	if c.maxSize[axis] == nil {
		return Size{}, false
	}
	return *c.maxSize[axis], true
}

// Rect returns the final world-space box for this node: origin at
// ComputedRel (already made absolute by AutoLayout's pass 6) and size
// from Computed.
func (c *UIComponent) Rect() (x, y, w, h float64) {
	return c.ComputedRel[AxisX], c.ComputedRel[AxisY], c.Computed[AxisX], c.Computed[AxisY]
}

// ContentOrigin returns the top-left of the content box (after padding
// and margin), used by children to compute their own ComputedRel.
func (c *UIComponent) ContentOrigin() (x, y float64) {
	return c.ComputedRel[AxisX] + c.ComputedMargin.Left.Value + c.ComputedPadd.Left.Value,
		c.ComputedRel[AxisY] + c.ComputedMargin.Top.Value + c.ComputedPadd.Top.Value
}

// ContentSize returns the usable content-box size on an axis: the full
// computed box minus padding and margin on that axis.
func (c *UIComponent) ContentSize(axis Axis) float64 {
	leadingPad, trailingPad := c.ComputedPadd.Axis(axis)
	leadingMar, trailingMar := c.ComputedMargin.Axis(axis)
	size := c.Computed[axis] - leadingPad.Value - trailingPad.Value - leadingMar.Value - trailingMar.Value
	if size < 0 {
		return 0
	}
	return size
}
