package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
)

// DecorativeFrame is a Div with a drawn outline border around its
// content box, composed from Div plus a single DrawRectangleOutline
// call rather than its own layout primitive.
func (c *Context) DecorativeFrame(parent ecs.EntityID, disambiguator uint64, cfg theme.ComponentConfig, configure func(n *NodeBuilder)) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentDecorativeFrame, cfg, 1)
	if configure != nil {
		configure(&NodeBuilder{node})
	}
	node.WithPadding(defaultPadding)

	if c.Renderer != nil {
		border := colorOrRole(resolved.BorderColor, c.Theme.Secondary)
		c.Renderer.DrawRectangleOutline(rect(node), toRenderColor(border), 1)
	}

	return Result{Entity: entity.ID}
}
