package ecs

import (
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// DefaultFixedTickRate is the default fixed simulation tick, 1/120s.
const DefaultFixedTickRate = time.Second / 120

// Scheduler runs systems in three phase-ordered lists (update, fixed
// update, render) and owns the fixed-step accumulator. Grounded on
// engine/world.go's AddSystem/Update (priority ordering, sequential
// execution) generalized to three phases instead of one. There is no
// clock: Run takes each frame's dt from its caller.
type Scheduler struct {
	logger *slog.Logger

	update      []System
	fixedUpdate []System
	render      []System

	fixedTickRate time.Duration
	accumulator   time.Duration

	collections []*EntityCollection
}

// NewScheduler creates a scheduler with the default fixed tick rate.
func NewScheduler(collections ...*EntityCollection) *Scheduler {
	return &Scheduler{
		logger:        slog.Default(),
		fixedTickRate: DefaultFixedTickRate,
		collections:   collections,
	}
}

// WithLogger overrides the scheduler's logger.
func (s *Scheduler) WithLogger(l *slog.Logger) *Scheduler {
	s.logger = l
	return s
}

// WithFixedTickRate overrides DefaultFixedTickRate.
func (s *Scheduler) WithFixedTickRate(d time.Duration) *Scheduler {
	s.fixedTickRate = d
	return s
}

// AddSystem registers a system into its declared phase, keeping
// registration order stable among equal priorities: ordering is the
// only concurrency contract systems get.
func (s *Scheduler) AddSystem(sys System) {
	switch sys.Phase() {
	case PhaseUpdate:
		s.update = append(s.update, sys)
		sortByPriority(s.update)
	case PhaseFixedUpdate:
		s.fixedUpdate = append(s.fixedUpdate, sys)
		sortByPriority(s.fixedUpdate)
	case PhaseRender:
		s.render = append(s.render, sys)
		sortByPriority(s.render)
	default:
		panic(fmt.Sprintf("ecs: system %q has unknown phase %d", sys.Name(), sys.Phase()))
	}
}

func sortByPriority(systems []System) {
	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].Priority() < systems[j].Priority()
	})
}

// Run advances the scheduler by dt seconds: drains the fixed-update
// accumulator at fixedTickRate, runs update systems once, runs render
// systems once, then merges and cleans up every owned collection.
func (s *Scheduler) Run(dt float64) {
	s.accumulator += time.Duration(dt * float64(time.Second))
	for s.accumulator >= s.fixedTickRate {
		s.runPhase(s.fixedUpdate, s.fixedTickRate.Seconds())
		s.accumulator -= s.fixedTickRate
	}

	s.runPhase(s.update, dt)
	s.runPhase(s.render, dt)

	for _, c := range s.collections {
		c.MergeEntityArrays()
		c.Cleanup()
	}
}

func (s *Scheduler) runPhase(systems []System, dt float64) {
	for _, sys := range systems {
		if !sys.ShouldRun(dt) {
			continue
		}
		sys.Once(dt)
		sys.OnIterationBegin(dt)

		if sys.ShouldIterate() {
			sig := sys.Signature()
			for _, c := range s.collections {
				for _, e := range c.Entities() {
					if sig.matches(e) {
						sys.ForEachWith(c, e, dt)
					}
				}
			}
		}

		sys.OnIterationEnd(dt)
		sys.After(dt)
	}
}

// NewEnforceSingleton builds a CallbackSystem verifying that exactly
// one entity in the collection owns component type T and that it
// matches the registered singleton. Call
// NewEnforceSingleton[MyComponent](...) and register the result.
func NewEnforceSingleton[T any](name string, phase Phase, priority int, c *EntityCollection, logger *slog.Logger) *CallbackSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return NewCallbackSystem(name, phase, priority, func(float64) {
		q := NewQuery(c)
		WhereHasComponent[T](q)
		count := q.GenCount()
		switch {
		case count == 0:
			logger.Warn("ecs: EnforceSingleton found no entity with component", "component", fmt.Sprintf("%T", *new(T)))
		case count > 1:
			logger.Warn("ecs: EnforceSingleton found multiple entities with component", "component", fmt.Sprintf("%T", *new(T)), "count", count)
		default:
			e, _ := q.GenFirst()
			reg, ok := c.singletons[componentTypeID[T]()]
			if !ok || reg != e.ID {
				logger.Warn("ecs: singleton registry out of sync with component store", "component", fmt.Sprintf("%T", *new(T)))
			}
		}
	})
}
