package widget

import (
	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// SettingRow lays a label on the left and a single control widget on
// the right, composed from Div (the row container) plus labelNode: the
// shape of every settings-style form row, regardless of which control
// fills the right side.
func (c *Context) SettingRow(parent ecs.EntityID, disambiguator uint64, label string, control func(rowEntity ecs.EntityID) Result, cfg theme.ComponentConfig) Result {
	rowNode, rowEntity, _ := c.resolve(parent, disambiguator, theme.ComponentSettingRow, cfg, 1)
	rowNode.FlexDirection = uicomponent.FlexRow
	rowNode.JustifyContent = uicomponent.JustifySpaceBetween
	rowNode.AlignItems = uicomponent.AlignCenter
	rowNode.WithDesired(uicomponent.AxisX, uicomponent.Expand(1))
	rowNode.WithDesired(uicomponent.AxisY, uicomponent.Children())
	rowNode.WithPadding(defaultPadding)

	c.labelNode(rowEntity.ID, 0, label, c.Theme.Font, uicomponent.AlignTextLeft)

	var res Result
	if control != nil {
		res = control(rowEntity.ID)
	}

	return Result{Changed: res.Changed, Entity: rowEntity.ID, Value: res.Value}
}
