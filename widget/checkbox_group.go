package widget

import (
	"math/bits"

	"github.com/ashenforge/ecsui/ecs"
	"github.com/ashenforge/ecsui/theme"
	"github.com/ashenforge/ecsui/uicomponent"
)

// CheckboxGroup renders one Checkbox per label against a shared bit in
// *bitset and refuses any toggle that would push the set-bit count
// outside [min, max], the bitset generalization of a single Checkbox's
// unconditional toggle.
func (c *Context) CheckboxGroup(parent ecs.EntityID, disambiguator uint64, labels []string, bitset *uint64, min, max int, cfg theme.ComponentConfig) Result {
	groupNode, groupEntity, _ := c.resolve(parent, disambiguator, theme.ComponentCheckboxGroup, cfg, 1)
	groupNode.FlexDirection = uicomponent.FlexColumn
	groupNode.WithDesired(uicomponent.AxisX, uicomponent.Children())
	groupNode.WithDesired(uicomponent.AxisY, uicomponent.Children())

	anyChanged := false
	for i, label := range labels {
		bit := uint64(1) << uint(i)
		val := (*bitset & bit) != 0
		res := c.Checkbox(groupEntity.ID, uint64(i), label, &val, cfg)
		if !res.Changed {
			continue
		}
		prospective := bits.OnesCount64(*bitset)
		if val {
			prospective++
		} else {
			prospective--
		}
		if prospective < min || prospective > max {
			continue // would violate the bound; Checkbox's local flip is discarded
		}
		if val {
			*bitset |= bit
		} else {
			*bitset &^= bit
		}
		anyChanged = true
	}

	return Result{Changed: anyChanged, Entity: groupEntity.ID, Value: *bitset}
}
