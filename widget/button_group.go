package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// ButtonGroup lays out one Button per label along dir and reports
// which index (if any) fired its click edge this frame, the
// generalization of ButtonBar's single row of Button literals into a
// widget callers invoke once with a label slice.
func (c *Context) ButtonGroup(parent ecs.EntityID, disambiguator uint64, labels []string, dir uicomponent.FlexDirection, cfg theme.ComponentConfig) Result {
	groupNode, groupEntity, _ := c.resolve(parent, disambiguator, theme.ComponentButtonGroup, cfg, 1)
	groupNode.FlexDirection = dir
	groupNode.WithDesired(uicomponent.AxisX, uicomponent.Children())
	groupNode.WithDesired(uicomponent.AxisY, uicomponent.Children())

	clickedIndex := -1
	for i, label := range labels {
		res := c.Button(groupEntity.ID, uint64(i), label, cfg)
		if res.Changed {
			clickedIndex = i
		}
	}

	return Result{Changed: clickedIndex >= 0, Entity: groupEntity.ID, Value: clickedIndex}
}
