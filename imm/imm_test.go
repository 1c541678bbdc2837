package imm

import (
	"testing"

	"github.com/ashenforge/ecsui/ecs"
)

func frame(c *Context, mouse MouseState, actions ActionSet) {
	c.BeginFrame(1.0/60.0, mouse, actions, nil)
}

func TestHotRequiresMouseInsideRectAndNoGate(t *testing.T) {
	c := NewContext(nil)
	rect := Rect{X: 0, Y: 0, W: 10, H: 10}

	frame(c, MouseState{X: 5, Y: 5}, ActionSet{})
	in := c.Update(1, rect, false, false, ClickOnRelease)
	if !in.Hot {
		t.Fatalf("expected hot when mouse is inside rect")
	}
	c.EndFrame()

	frame(c, MouseState{X: 50, Y: 50}, ActionSet{})
	out := c.Update(1, rect, false, false, ClickOnRelease)
	if out.Hot {
		t.Fatalf("expected not hot when mouse is outside rect")
	}
	c.EndFrame()
}

func TestHotBlockedByGate(t *testing.T) {
	c := NewContext(nil)
	rect := Rect{X: 0, Y: 0, W: 10, H: 10}
	c.AddGate(func(id ecs.EntityID) bool { return id == 1 })

	frame(c, MouseState{X: 5, Y: 5}, ActionSet{})
	in := c.Update(1, rect, false, false, ClickOnRelease)
	if in.Hot {
		t.Fatalf("expected gated entity to never be hot")
	}
	c.EndFrame()
}

func TestClickOnReleaseFiresOnMouseUpWhileStillHot(t *testing.T) {
	c := NewContext(nil)
	rect := Rect{X: 0, Y: 0, W: 10, H: 10}

	frame(c, MouseState{X: 5, Y: 5, LeftDown: true}, ActionSet{})
	press := c.Update(1, rect, false, false, ClickOnRelease)
	if !press.Active {
		t.Fatalf("expected press to activate the widget")
	}
	if press.Clicked {
		t.Fatalf("release-activation must not click on press")
	}
	c.EndFrame()

	frame(c, MouseState{X: 5, Y: 5, LeftDown: false}, ActionSet{})
	release := c.Update(1, rect, false, false, ClickOnRelease)
	if !release.Clicked {
		t.Fatalf("expected click on release while still hot")
	}
	c.EndFrame()
}

func TestDragSuppressesClick(t *testing.T) {
	c := NewContext(nil)
	rect := Rect{X: 0, Y: 0, W: 200, H: 200}

	frame(c, MouseState{X: 5, Y: 5, LeftDown: true}, ActionSet{})
	c.Update(1, rect, false, false, ClickOnRelease)
	c.EndFrame()

	frame(c, MouseState{X: 100, Y: 100, LeftDown: true}, ActionSet{})
	mid := c.Update(1, rect, false, false, ClickOnRelease)
	if !mid.Dragging {
		t.Fatalf("expected dragging once the press moved past the threshold")
	}
	c.EndFrame()

	frame(c, MouseState{X: 100, Y: 100, LeftDown: false}, ActionSet{})
	release := c.Update(1, rect, false, false, ClickOnRelease)
	if release.Clicked {
		t.Fatalf("a dragged release must not count as a click")
	}
	c.EndFrame()
}

func TestClickFocusesAFocusableWidget(t *testing.T) {
	c := NewContext(nil)
	rect := Rect{X: 0, Y: 0, W: 10, H: 10}

	frame(c, MouseState{X: 5, Y: 5, LeftDown: true}, ActionSet{})
	in := c.Update(1, rect, true, false, ClickOnPress)
	if !in.Clicked || !in.JustFocused || !in.Focused {
		t.Fatalf("expected press-activation click to focus immediately: %+v", in)
	}
	c.EndFrame()
}

func TestSelectOnFocusFiresOnlyOnFocusGain(t *testing.T) {
	c := NewContext(nil)
	rect := Rect{X: 0, Y: 0, W: 10, H: 10}

	frame(c, MouseState{X: 5, Y: 5, LeftDown: true}, ActionSet{})
	c.Update(1, rect, true, true, ClickOnPress)
	c.EndFrame()
	if !c.SelectedThisFrame(1) {
		t.Fatalf("expected a select event on the frame focus is gained")
	}

	frame(c, MouseState{X: 5, Y: 5, LeftDown: true}, ActionSet{})
	c.Update(1, rect, true, true, ClickOnPress)
	if c.SelectedThisFrame(1) {
		t.Fatalf("select must not re-fire while already focused")
	}
	c.EndFrame()
}

// TestTabTraversalCyclesForwardAndReverses exercises three buttons
// registering into the tab order in draw order: WidgetNext advances
// B1->B2->B3->B1, and WidgetNext+WidgetMod reverses.
func TestTabTraversalCyclesForwardAndReverses(t *testing.T) {
	c := NewContext(nil)
	b1, b2, b3 := ecs.EntityID(1), ecs.EntityID(2), ecs.EntityID(3)
	offscreen := Rect{X: -1000, Y: -1000, W: 1, H: 1}

	registerRow := func(actions ActionSet) {
		frame(c, MouseState{}, actions)
		c.Update(b1, offscreen, true, false, ClickOnRelease)
		c.Update(b2, offscreen, true, false, ClickOnRelease)
		c.Update(b3, offscreen, true, false, ClickOnRelease)
		c.EndFrame()
	}

	registerRow(ActionSet{})
	if c.FocusID != ROOT {
		t.Fatalf("expected no focus change before any tab action")
	}

	var next ActionSet
	next.Set(ActionWidgetNext)
	registerRow(next)
	if c.FocusID != b1 {
		t.Fatalf("expected first WidgetNext to focus b1, got %v", c.FocusID)
	}

	registerRow(next)
	if c.FocusID != b2 {
		t.Fatalf("expected second WidgetNext to focus b2, got %v", c.FocusID)
	}

	registerRow(next)
	if c.FocusID != b3 {
		t.Fatalf("expected third WidgetNext to focus b3, got %v", c.FocusID)
	}

	registerRow(next)
	if c.FocusID != b1 {
		t.Fatalf("expected WidgetNext to wrap from b3 back to b1, got %v", c.FocusID)
	}

	var reverse ActionSet
	reverse.Set(ActionWidgetNext)
	reverse.Set(ActionWidgetMod)
	registerRow(reverse)
	if c.FocusID != b3 {
		t.Fatalf("expected WidgetNext+WidgetMod to reverse from b1 to b3, got %v", c.FocusID)
	}

	var back ActionSet
	back.Set(ActionWidgetBack)
	registerRow(back)
	if c.FocusID != b2 {
		t.Fatalf("expected WidgetBack alone to move backward from b3 to b2, got %v", c.FocusID)
	}
}

func TestValidateReportsMissingBindings(t *testing.T) {
	b := Binding{ActionWidgetNext: true}
	missing := Validate(b)
	if len(missing) != len(requiredActions)-1 {
		t.Fatalf("expected all but one required action to be reported missing, got %d", len(missing))
	}
	for _, a := range missing {
		if a == ActionWidgetNext {
			t.Fatalf("ActionWidgetNext was bound and should not be reported missing")
		}
	}
}

func TestActionSetBasics(t *testing.T) {
	var s ActionSet
	if s.Has(ActionWidgetNext) {
		t.Fatalf("fresh ActionSet must have nothing set")
	}
	s.Set(ActionWidgetNext)
	if !s.Has(ActionWidgetNext) {
		t.Fatalf("expected ActionWidgetNext to be set")
	}
	s.Clear()
	if s.Has(ActionWidgetNext) {
		t.Fatalf("expected Clear to reset all bits")
	}
}

func TestResolveReusesSiteAcrossCalls(t *testing.T) {
	coll := ecs.NewEntityCollection(false)
	site := CallerSite(ROOT, 0, 0)

	e1, created1 := Resolve(coll, site, nil)
	coll.MergeEntityArrays()
	if !created1 {
		t.Fatalf("expected first Resolve at a new site to create an entity")
	}

	e2, created2 := Resolve(coll, site, nil)
	if created2 {
		t.Fatalf("expected second Resolve at the same site to reuse the entity")
	}
	if e1.ID != e2.ID {
		t.Fatalf("expected the same entity id across calls at one site, got %v and %v", e1.ID, e2.ID)
	}
}

func TestResolveDisambiguatorSeparatesLoopIterations(t *testing.T) {
	coll := ecs.NewEntityCollection(false)
	var ids []ecs.EntityID
	for i := 0; i < 3; i++ {
		site := CallerSite(ROOT, uint64(i), 0)
		e, _ := Resolve(coll, site, nil)
		ids = append(ids, e.ID)
	}
	coll.MergeEntityArrays()
	if ids[0] == ids[1] || ids[1] == ids[2] || ids[0] == ids[2] {
		t.Fatalf("expected distinct entities per disambiguator, got %v", ids)
	}
}
