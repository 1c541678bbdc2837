package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// NodeBuilder is the chainable subset of *uicomponent.UIComponent a
// widget exposes to its caller for layout configuration, keeping the
// full UIComponent API (computed fields, tree plumbing) internal.
type NodeBuilder struct {
	node *uicomponent.UIComponent
}

func (b *NodeBuilder) Size(axis uicomponent.Axis, s uicomponent.Size) *NodeBuilder {
	b.node.WithDesired(axis, s)
	return b
}

func (b *NodeBuilder) Padding(s uicomponent.Sides) *NodeBuilder {
	b.node.WithPadding(s)
	return b
}

func (b *NodeBuilder) Margin(s uicomponent.Sides) *NodeBuilder {
	b.node.WithMargin(s)
	return b
}

func (b *NodeBuilder) Flex(dir uicomponent.FlexDirection, wrap uicomponent.FlexWrap) *NodeBuilder {
	b.node.FlexDirection = dir
	b.node.FlexWrap = wrap
	return b
}

func (b *NodeBuilder) Justify(j uicomponent.Justify) *NodeBuilder {
	b.node.JustifyContent = j
	return b
}

func (b *NodeBuilder) Align(a uicomponent.Align) *NodeBuilder {
	b.node.AlignItems = a
	return b
}

// Div is a layout-only container: it resolves a stable node under
// parent, applies the caller's desired sizes, and draws nothing of its
// own. Every other widget that groups children (button_group,
// tab_container, setting_row, ...) is built out of Div plus leaf
// widgets.
func (c *Context) Div(parent ecs.EntityID, disambiguator uint64, configure func(n *NodeBuilder)) Result {
	node, _, _ := c.resolve(parent, disambiguator, theme.ComponentDiv, theme.ComponentConfig{}, 1)
	if configure != nil {
		configure(&NodeBuilder{node})
	}
	return Result{Entity: node.ID()}
}
