package ecs

import "testing"

type testPosition struct{ X, Y float64 }
type testVelocity struct{ DX, DY float64 }

// TestComponentFiltering covers a combined has/missing filter: 10
// entities with Position, 5 of those also with Velocity.
func TestComponentFiltering(t *testing.T) {
	c := NewEntityCollection(false)

	for i := 0; i < 10; i++ {
		e := c.CreateEntity()
		AddComponent(c, e, testPosition{X: float64(i)})
		if i < 5 {
			AddComponent(c, e, testVelocity{DX: 1})
		}
	}
	c.MergeEntityArrays()

	withBoth := NewQuery(c)
	WhereHasComponent[testPosition](withBoth)
	WhereHasComponent[testVelocity](withBoth)
	if got := withBoth.GenCount(); got != 5 {
		t.Errorf("Position&Velocity: expected 5, got %d", got)
	}

	withoutVel := NewQuery(c)
	WhereHasComponent[testPosition](withoutVel)
	WhereMissingComponent[testVelocity](withoutVel)
	if got := withoutVel.GenCount(); got != 5 {
		t.Errorf("Position&!Velocity: expected 5, got %d", got)
	}
}

func TestMergeEntityArraysInvariant(t *testing.T) {
	c := NewEntityCollection(false)
	c.SuppressMergeWarnings(true)

	for i := 0; i < 3; i++ {
		c.CreateEntity()
	}
	if len(c.Entities()) != 0 {
		t.Fatalf("expected temp entities invisible before merge")
	}
	c.MergeEntityArrays()
	if len(c.temp) != 0 {
		t.Errorf("expected temp empty after merge, got %d", len(c.temp))
	}
	if len(c.Entities()) != 3 {
		t.Errorf("expected 3 live entities after merge, got %d", len(c.Entities()))
	}
}

// TestHandleInvalidation covers the stale-handle-after-cleanup and
// slot-reuse-bumps-generation invariants.
func TestHandleInvalidation(t *testing.T) {
	c := NewEntityCollection(false)
	e := c.CreateEntity()
	c.MergeEntityArrays()

	h := c.HandleFor(e)
	if _, ok := c.Resolve(h); !ok {
		t.Fatalf("expected handle to resolve before cleanup")
	}

	c.MarkIDForCleanup(e.ID)
	c.Cleanup()

	if _, ok := c.Resolve(h); ok {
		t.Errorf("expected stale handle to fail to resolve after cleanup")
	}

	e2 := c.CreateEntity()
	c.MergeEntityArrays()
	h2 := c.HandleFor(e2)
	if h2.Slot == h.Slot && h2.Generation == h.Generation {
		t.Errorf("expected reused slot to carry an incremented generation")
	}
}

func TestDuplicateComponentIsLogicErrorNotPanic(t *testing.T) {
	c := NewEntityCollection(false)
	e := c.CreateEntity()
	AddComponent(c, e, testPosition{X: 1})
	AddComponent(c, e, testPosition{X: 99}) // should warn + skip, not panic

	got, ok := GetComponent[testPosition](c, e)
	if !ok || got.X != 1 {
		t.Errorf("expected original value to survive duplicate add, got %+v", got)
	}
}

func TestSingletonLifecycle(t *testing.T) {
	c := NewEntityCollection(false)
	e := c.CreateEntity()
	AddComponent(c, e, testVelocity{DX: 5})
	RegisterSingleton[testVelocity](c, e)
	c.MergeEntityArrays()

	if !HasSingleton[testVelocity](c) {
		t.Fatalf("expected singleton registered")
	}
	got := GetSingleton[testVelocity](c)
	if got.ID != e.ID {
		t.Errorf("expected singleton entity %d, got %d", e.ID, got.ID)
	}

	c.MarkIDForCleanup(e.ID)
	c.Cleanup()
	if HasSingleton[testVelocity](c) {
		t.Errorf("expected singleton registration cleared when entity destroyed")
	}
}

func TestDeleteAllEntitiesKeepsPermanent(t *testing.T) {
	c := NewEntityCollection(false)
	perm := c.CreatePermanentEntity()
	temp := c.CreateEntity()
	c.MergeEntityArrays()

	c.DeleteAllEntities(true)

	if _, ok := c.GetEntityForID(perm.ID); !ok {
		t.Errorf("expected permanent entity to survive DeleteAllEntities(true)")
	}
	if _, ok := c.GetEntityForID(temp.ID); ok {
		t.Errorf("expected non-permanent entity to be removed")
	}
}
