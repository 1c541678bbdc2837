// Package imm implements the immediate-mode interaction layer: the
// identity scheme that gives a widget call the same entity across
// frames, and the per-frame hot/focus/active state machine that turns
// a raw input snapshot into click/focus/drag events for widgets to
// read. Grounded in style on input/intent.go's grouped-iota enum
// blocks and input/state.go's small state-holder structs, generalized
// from that package's vi-motion parser into a pointer/keyboard widget
// interaction model.
package imm

// InputAction discriminates the semantic actions a host's input
// backend can report through ActionDone; the core never interprets
// raw keys, only these.
type InputAction int

const (
	ActionNone InputAction = iota
	ActionWidgetMod
	ActionWidgetNext
	ActionWidgetBack
	ActionWidgetPress
	ActionTextBackspace
	ActionTextDelete
	ActionTextHome
	ActionTextEnd
	ActionWidgetLeft
	ActionWidgetRight
	ActionWidgetUp
	ActionWidgetDown

	actionCount
)

// requiredActions lists every InputAction a host binding must supply;
// Validate returns the ones a binding misses, and no validation mode is
// consulted.
var requiredActions = []InputAction{
	ActionNone, ActionWidgetMod, ActionWidgetNext, ActionWidgetBack, ActionWidgetPress,
	ActionTextBackspace, ActionTextDelete, ActionTextHome, ActionTextEnd,
	ActionWidgetLeft, ActionWidgetRight, ActionWidgetUp, ActionWidgetDown,
}

// ActionSet is a small fixed-size bitset indexed by InputAction,
// filled once per frame from the host's ActionDone collector.
type ActionSet struct {
	bits uint32
}

// Set marks action as having fired this frame.
func (s *ActionSet) Set(a InputAction) {
	s.bits |= 1 << uint(a)
}

// Has reports whether action fired this frame.
func (s ActionSet) Has(a InputAction) bool {
	return s.bits&(1<<uint(a)) != 0
}

// Clear resets every action to not-fired, run at the start of a frame.
func (s *ActionSet) Clear() {
	s.bits = 0
}

// Binding supplies a host's mapping for every required action; Validate
// reports any InputAction a binding function never returns true for
// when probed across its domain is the host's responsibility, so here
// Validate only checks a supplied boolean table (action -> bound).
type Binding map[InputAction]bool

// Validate reports every required action a binding does not cover.
func Validate(b Binding) []InputAction {
	var missing []InputAction
	for _, a := range requiredActions {
		if !b[a] {
			missing = append(missing, a)
		}
	}
	return missing
}

// String names an InputAction for logging.
func (a InputAction) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionWidgetMod:
		return "WidgetMod"
	case ActionWidgetNext:
		return "WidgetNext"
	case ActionWidgetBack:
		return "WidgetBack"
	case ActionWidgetPress:
		return "WidgetPress"
	case ActionTextBackspace:
		return "TextBackspace"
	case ActionTextDelete:
		return "TextDelete"
	case ActionTextHome:
		return "TextHome"
	case ActionTextEnd:
		return "TextEnd"
	case ActionWidgetLeft:
		return "WidgetLeft"
	case ActionWidgetRight:
		return "WidgetRight"
	case ActionWidgetUp:
		return "WidgetUp"
	case ActionWidgetDown:
		return "WidgetDown"
	default:
		return "Unknown"
	}
}
