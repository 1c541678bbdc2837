package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// Pagination renders ‹ prev, one button per option, next › and moves
// *index on whichever fired, grounded on tabs.go's TabBar loop
// generalized from a highlighted strip to individually clickable
// page buttons plus prev/next arrows.
func (c *Context) Pagination(parent ecs.EntityID, disambiguator uint64, options []string, index *int, cfg theme.ComponentConfig) Result {
	groupNode, groupEntity, _ := c.resolve(parent, disambiguator, theme.ComponentPagination, cfg, 1)
	groupNode.FlexDirection = uicomponent.FlexRow
	groupNode.WithDesired(uicomponent.AxisX, uicomponent.Children())
	groupNode.WithDesired(uicomponent.AxisY, uicomponent.Children())

	changed := false
	if c.Button(groupEntity.ID, 0, "‹", cfg).Changed && *index > 0 {
		*index--
		changed = true
	}
	for i, opt := range options {
		label := opt
		if i == *index {
			label = "[" + opt + "]"
		}
		if c.Button(groupEntity.ID, uint64(i+1), label, cfg).Changed {
			*index = i
			changed = true
		}
	}
	if c.Button(groupEntity.ID, uint64(len(options)+1), "›", cfg).Changed && *index < len(options)-1 {
		*index++
		changed = true
	}

	return Result{Changed: changed, Entity: groupEntity.ID, Value: *index}
}
