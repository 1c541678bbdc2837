package ecs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

type moveSystem struct {
	BaseSystem
	ran int
}

func (s *moveSystem) Signature() Signature {
	b := NewSignature()
	With[testPosition](b)
	With[testVelocity](b)
	return b.Build()
}

func (s *moveSystem) ForEachWith(c *EntityCollection, e *Entity, dt float64) {
	pos := MustGetComponent[testPosition](c, e)
	vel := MustGetComponent[testVelocity](c, e)
	pos.X += vel.DX * dt
	pos.Y += vel.DY * dt
	SetComponent(c, e, pos)
	s.ran++
}

func TestSchedulerRunsMatchingEntities(t *testing.T) {
	c := NewEntityCollection(false)
	moving := c.CreateEntity()
	AddComponent(c, moving, testPosition{})
	AddComponent(c, moving, testVelocity{DX: 2, DY: 0})

	still := c.CreateEntity()
	AddComponent(c, still, testPosition{})
	c.MergeEntityArrays()

	sys := &moveSystem{BaseSystem: BaseSystem{SystemName: "move", SystemPhase: PhaseUpdate}}
	s := NewScheduler(c)
	s.AddSystem(sys)

	s.Run(1.0)

	if sys.ran != 1 {
		t.Errorf("expected system to iterate exactly 1 matching entity, ran %d times", sys.ran)
	}
	p := MustGetComponent[testPosition](c, moving)
	if p.X != 2 {
		t.Errorf("expected moving entity X=2, got %v", p.X)
	}
	stillPos := MustGetComponent[testPosition](c, still)
	if stillPos.X != 0 {
		t.Errorf("expected still entity unaffected, got X=%v", stillPos.X)
	}
}

func TestSchedulerPriorityOrder(t *testing.T) {
	c := NewEntityCollection(false)
	c.MergeEntityArrays()

	var order []string
	mk := func(name string, pri int) *CallbackSystem {
		return NewCallbackSystem(name, PhaseUpdate, pri, func(float64) {
			order = append(order, name)
		})
	}

	s := NewScheduler(c)
	s.AddSystem(mk("third", 30))
	s.AddSystem(mk("first", 10))
	s.AddSystem(mk("second", 20))

	s.Run(0.016)

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("expected %d callbacks, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], order[i])
		}
	}
}

func TestSchedulerFixedUpdateAccumulator(t *testing.T) {
	c := NewEntityCollection(false)
	c.MergeEntityArrays()

	ticks := 0
	sys := NewCallbackSystem("tick", PhaseFixedUpdate, 0, func(float64) { ticks++ })

	s := NewScheduler(c).WithFixedTickRate(DefaultFixedTickRate)
	s.AddSystem(sys)

	// One frame at exactly 3 fixed ticks' worth of time should drain
	// the accumulator exactly 3 times.
	frameDT := 3 * DefaultFixedTickRate.Seconds()
	s.Run(frameDT)

	if ticks != 3 {
		t.Errorf("expected 3 fixed ticks, got %d", ticks)
	}
}

func TestSchedulerUnknownPhasePanics(t *testing.T) {
	c := NewEntityCollection(false)
	s := NewScheduler(c)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic registering a system with an unknown phase")
		}
	}()
	s.AddSystem(&BaseSystem{SystemName: "bogus", SystemPhase: Phase(99)})
}

func TestEnforceSingletonWarnsOnMultiple(t *testing.T) {
	c := NewEntityCollection(false)
	a := c.CreateEntity()
	AddComponent(c, a, testVelocity{})
	b := c.CreateEntity()
	AddComponent(c, b, testVelocity{})
	RegisterSingleton[testVelocity](c, a)
	c.MergeEntityArrays()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	sys := NewEnforceSingleton[testVelocity]("enforce-velocity", PhaseUpdate, 0, c, logger)
	// Must not panic even though the invariant is violated; it only logs.
	sys.Once(0)
	if !strings.Contains(buf.String(), "multiple entities") {
		t.Errorf("expected a warning about multiple entities, got log %q", buf.String())
	}
}
