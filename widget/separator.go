package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// Orientation picks which axis a Separator spans.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// Separator is a one-pixel-thick divider line spanning its container's
// cross axis, composed from the same panel draw every other widget
// uses rather than a dedicated line primitive.
func (c *Context) Separator(parent ecs.EntityID, disambiguator uint64, orientation Orientation, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentSeparator, cfg, 1)
	if orientation == OrientationHorizontal {
		node.WithDesired(uicomponent.AxisX, uicomponent.Expand(1))
		node.WithDesired(uicomponent.AxisY, uicomponent.Pixels(1))
	} else {
		node.WithDesired(uicomponent.AxisX, uicomponent.Pixels(1))
		node.WithDesired(uicomponent.AxisY, uicomponent.Expand(1))
	}
	node.DebugName = "separator"

	if c.Renderer != nil {
		line := colorOrRole(resolved.BorderColor, c.Theme.Secondary)
		c.Renderer.DrawRectangle(rect(node), toRenderColor(line))
	}

	return Result{Entity: entity.ID}
}
