package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// NavigationBar renders ‹ centered-label › and moves *index on
// whichever arrow fired, the single-option sibling of Pagination: it
// shows the current option's label rather than every option at once.
func (c *Context) NavigationBar(parent ecs.EntityID, disambiguator uint64, options []string, index *int, cfg theme.ComponentConfig) Result {
	groupNode, groupEntity, _ := c.resolve(parent, disambiguator, theme.ComponentNavigationBar, cfg, 1)
	groupNode.FlexDirection = uicomponent.FlexRow
	groupNode.JustifyContent = uicomponent.JustifySpaceBetween
	groupNode.AlignItems = uicomponent.AlignCenter
	groupNode.WithDesired(uicomponent.AxisX, uicomponent.Expand(1))
	groupNode.WithDesired(uicomponent.AxisY, uicomponent.Children())

	changed := false
	if c.Button(groupEntity.ID, 0, "‹", cfg).Changed && *index > 0 {
		*index--
		changed = true
	}
	label := ""
	if len(options) > 0 {
		if *index < 0 || *index >= len(options) {
			*index = 0
		}
		label = options[*index]
	}
	c.labelNode(groupEntity.ID, 1, label, c.Theme.Font, uicomponent.AlignTextCenter)
	if c.Button(groupEntity.ID, 2, "›", cfg).Changed && *index < len(options)-1 {
		*index++
		changed = true
	}

	return Result{Changed: changed, Entity: groupEntity.ID, Value: *index}
}
