package layout

import "github.com/ashenforge/ecsui/uicomponent"

// pass0Reset recursively clears every computed* field so a re-solve
// never reads stale values left over from a prior frame.
func (s *Solver) pass0Reset(n *uicomponent.UIComponent) {
	n.ResetComputedValues()
	for _, child := range s.children(n) {
		s.pass0Reset(child)
	}
}
