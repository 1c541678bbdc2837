package imm

import (
	"log/slog"
	"math"

	"github.com/ashenforge/ecsui/ecs"
)

// ROOT is the sentinel focus/hot/active id meaning "the implicit root
// container", distinct from FAKE which means "nothing at all".
const ROOT ecs.EntityID = 0

// FAKE is the sentinel meaning no entity: the starting value for
// hot/active each frame, and the fallback focus target with nothing
// focused yet.
const FAKE ecs.EntityID = ecs.EntityID(math.MaxUint64)

// MouseState is the per-frame pointer snapshot, plus the press-origin
// bookkeeping used to tell a click from a drag.
type MouseState struct {
	X, Y         float64
	LeftDown     bool
	JustPressed  bool
	JustReleased bool
	PressX       float64
	PressY       float64
	PressMoved   bool
	WheelDeltaY  float64
}

// RenderCmd is one queued draw: an entity and the layer it belongs to,
// drained by the renderer at the end of the frame.
type RenderCmd struct {
	ID    ecs.EntityID
	Layer int
}

// Gate reports whether id's input should be blocked this frame (a
// modal dialog blocking the background, for instance).
type Gate func(id ecs.EntityID) bool

// Context is the ImmContext singleton: hot/focus/active state, the
// input snapshot, and the render command queue. One Context is shared
// across every widget call in a frame.
type Context struct {
	HotID         ecs.EntityID
	PrevHotID     ecs.EntityID
	FocusID       ecs.EntityID
	VisualFocusID ecs.EntityID
	ActiveID      ecs.EntityID
	PrevActiveID  ecs.EntityID
	LastProcessed ecs.EntityID

	FocusedIDs map[ecs.EntityID]bool

	Mouse   MouseState
	Actions ActionSet

	// TextInput holds the runes a host's render.InputSource.CharPressed
	// collected this frame, in typed order; text_input/text_area widgets
	// consume it only while focused.
	TextInput []rune

	Gates []Gate

	DT float64

	RenderCmds []RenderCmd

	Logger *slog.Logger

	DragThreshold float64

	order        []ecs.EntityID
	selectEvents map[ecs.EntityID]bool
}

// NewContext builds a Context with every id at its sentinel and a
// default drag threshold of 4 pixels.
func NewContext(logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		HotID:         FAKE,
		PrevHotID:     FAKE,
		FocusID:       ROOT,
		VisualFocusID: ROOT,
		ActiveID:      FAKE,
		PrevActiveID:  FAKE,
		LastProcessed: FAKE,
		FocusedIDs:    make(map[ecs.EntityID]bool),
		selectEvents:  make(map[ecs.EntityID]bool),
		Logger:        logger,
		DragThreshold: 4,
	}
}

// BeginFrame copies the host's input snapshot in and clears per-frame
// hot, render commands, and select events. Active/focus persist across
// frames; only hot (recomputed by every widget's Update call this
// frame) and the transient collections reset.
func (c *Context) BeginFrame(dt float64, mouse MouseState, actions ActionSet, textInput []rune) {
	c.DT = dt
	c.PrevHotID = c.HotID
	c.HotID = FAKE
	c.PrevActiveID = c.ActiveID
	c.TextInput = textInput

	if mouse.LeftDown && !c.Mouse.LeftDown {
		mouse.JustPressed = true
		mouse.PressX, mouse.PressY = mouse.X, mouse.Y
		mouse.PressMoved = false
	} else {
		mouse.PressX, mouse.PressY = c.Mouse.PressX, c.Mouse.PressY
		mouse.PressMoved = c.Mouse.PressMoved
	}
	if !mouse.LeftDown && c.Mouse.LeftDown {
		mouse.JustReleased = true
	}
	if mouse.LeftDown {
		dx, dy := mouse.X-mouse.PressX, mouse.Y-mouse.PressY
		if dx*dx+dy*dy > c.DragThreshold*c.DragThreshold {
			mouse.PressMoved = true
		}
	}
	c.Mouse = mouse
	c.Actions = actions

	c.RenderCmds = c.RenderCmds[:0]
	for id := range c.selectEvents {
		delete(c.selectEvents, id)
	}
	c.order = c.order[:0]
}

// EndFrame resolves tab traversal from the focusable order built this
// frame and clears any active id the mouse released. Its effect is
// visible starting next frame, since the order a frame's widgets
// register in is not known until they have all run.
func (c *Context) EndFrame() {
	if c.Mouse.JustReleased {
		c.ActiveID = FAKE
	}
	c.applyTabTraversal()
}

// AddGate registers a predicate that can block hot/active testing for
// matching entities (a modal dialog, say).
func (c *Context) AddGate(g Gate) {
	c.Gates = append(c.Gates, g)
}

func (c *Context) gated(id ecs.EntityID) bool {
	for _, g := range c.Gates {
		if g(id) {
			return true
		}
	}
	return false
}

// EnqueueRenderCmd appends a draw command for the render pass to drain.
func (c *Context) EnqueueRenderCmd(id ecs.EntityID, layer int) {
	c.RenderCmds = append(c.RenderCmds, RenderCmd{ID: id, Layer: layer})
}

// SelectedThisFrame reports whether id gained focus this frame while
// marked SelectOnFocus (dropdowns use this to auto-open).
func (c *Context) SelectedThisFrame(id ecs.EntityID) bool {
	return c.selectEvents[id]
}
