package widget

import (
	"fmt"

	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/render"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// CircularProgress draws value as a ring, not a rectangle: a rounded
// square at roundness 1 approximates a disc (the Renderer contract has
// no arc primitive, only rectangles and rounded rectangles), blended
// toward the accent color by the filled fraction, with a smaller
// background-colored disc punched out of the center to leave a ring
// and the percentage centered inside it.
func (c *Context) CircularProgress(parent ecs.EntityID, disambiguator uint64, value, min, max float64, cfg theme.ComponentConfig) Result {
	node, entity, resolved := c.resolve(parent, disambiguator, theme.ComponentCircularProgress, cfg, 1)
	applySize(node, resolved, uicomponent.Pixels(48), uicomponent.Pixels(48))
	node.DebugName = "circular_progress"

	span := max - min
	var frac float64
	if span > 0 {
		frac = clamp01((value - min) / span)
	}

	box := rect(node)
	track := colorOrRole(resolved.BackgroundColor, c.Theme.Surface)
	accent := colorOrRole(resolved.AccentColor, c.Theme.Accent)
	ring := track.Blend(accent, frac)

	if c.Renderer != nil {
		c.Renderer.DrawRectangleRounded(box, 1, c.Theme.Segments, toRenderColor(ring), render.CornerAll)
		thickness := box.W * 0.18
		if thickness > 0 {
			inner := boxAt(box.X+thickness, box.Y+thickness, box.W-2*thickness, box.H-2*thickness)
			c.Renderer.DrawRectangleRounded(inner, 1, c.Theme.Segments, toRenderColor(c.Theme.Background), render.CornerAll)
		}
		label := fmt.Sprintf("%d%%", int(frac*100+0.5))
		c.drawLabel(box, label, c.Theme.Font, uicomponent.AlignTextCenter, 14)
	}

	return Result{Entity: entity.ID, Value: frac}
}
