package ecs

// Phase identifies which of the scheduler's three ordered phases a
// system runs in.
type Phase int

const (
	PhaseUpdate Phase = iota
	PhaseFixedUpdate
	PhaseRender
)

// Signature declares the component and tag filters a system iterates
// over. It mirrors Query's AND/tag semantics but is reusable across
// frames (built once at registration, not re-specified per call).
type Signature struct {
	Has     []int
	Missing []int

	All  Bitset
	Any  Bitset
	None Bitset

	hasAny  bool // All/Any/None were ever populated
}

// SignatureBuilder constructs a Signature with the same ergonomics as
// Query, for use in a System's Signature() method.
type SignatureBuilder struct{ sig Signature }

// NewSignature starts building a system signature.
func NewSignature() *SignatureBuilder { return &SignatureBuilder{} }

// With requires component type T.
func With[T any](b *SignatureBuilder) *SignatureBuilder {
	b.sig.Has = append(b.sig.Has, componentTypeID[T]())
	return b
}

// Without excludes component type T.
func Without[T any](b *SignatureBuilder) *SignatureBuilder {
	b.sig.Missing = append(b.sig.Missing, componentTypeID[T]())
	return b
}

// WithAllTags requires every given tag.
func (b *SignatureBuilder) WithAllTags(tags ...Tag) *SignatureBuilder {
	b.sig.hasAny = true
	for _, t := range tags {
		b.sig.All.Set(int(t))
	}
	return b
}

// WithAnyTags requires at least one given tag.
func (b *SignatureBuilder) WithAnyTags(tags ...Tag) *SignatureBuilder {
	b.sig.hasAny = true
	for _, t := range tags {
		b.sig.Any.Set(int(t))
	}
	return b
}

// WithoutTags forbids every given tag.
func (b *SignatureBuilder) WithoutTags(tags ...Tag) *SignatureBuilder {
	b.sig.hasAny = true
	for _, t := range tags {
		b.sig.None.Set(int(t))
	}
	return b
}

// Build finalizes the signature.
func (b *SignatureBuilder) Build() Signature { return b.sig }

// HasTagRequirements reports whether the signature has any tag filter
// at all, checked at build time since Go has no template
// specialization to resolve it at compile time.
func (s Signature) HasTagRequirements() bool { return s.hasAny }

func (s Signature) matches(e *Entity) bool {
	for _, id := range s.Has {
		if !e.hasComponentBit(id) {
			return false
		}
	}
	for _, id := range s.Missing {
		if e.hasComponentBit(id) {
			return false
		}
	}
	if !s.All.IsZero() && !e.tagSet.ContainsAll(s.All) {
		return false
	}
	if !s.Any.IsZero() && !e.tagSet.ContainsAny(s.Any) {
		return false
	}
	if !s.None.IsZero() && e.tagSet.ContainsAny(s.None) {
		return false
	}
	return true
}

// System is the unit of logic the Scheduler runs each phase.
// Implementations embed BaseSystem to get no-op defaults for hooks they
// don't need, following engine/system_base.go's SystemBase embedding
// convention.
type System interface {
	Name() string
	Phase() Phase
	Priority() int // lower runs first within a phase

	ShouldRun(dt float64) bool
	Once(dt float64)
	OnIterationBegin(dt float64)

	// ShouldIterate lets a system opt out of entity iteration entirely;
	// CallbackSystem is the built-in example.
	ShouldIterate() bool
	Signature() Signature
	ForEachWith(c *EntityCollection, e *Entity, dt float64)

	OnIterationEnd(dt float64)
	After(dt float64)
}

// BaseSystem provides no-op defaults for every System hook. Embed it and
// override only what the concrete system needs, mirroring
// engine/system_base.go's SystemBase (there for dependency injection;
// here for hook defaults, since Go systems fetch their own component
// stores rather than having them injected).
type BaseSystem struct {
	SystemName     string
	SystemPhase    Phase
	SystemPriority int
}

func (b BaseSystem) Name() string       { return b.SystemName }
func (b BaseSystem) Phase() Phase       { return b.SystemPhase }
func (b BaseSystem) Priority() int      { return b.SystemPriority }
func (b BaseSystem) ShouldRun(float64) bool { return true }
func (b BaseSystem) Once(float64)            {}
func (b BaseSystem) OnIterationBegin(float64) {}
func (b BaseSystem) ShouldIterate() bool      { return true }
func (b BaseSystem) Signature() Signature     { return Signature{} }
func (b BaseSystem) ForEachWith(*EntityCollection, *Entity, float64) {}
func (b BaseSystem) OnIterationEnd(float64) {}
func (b BaseSystem) After(float64)          {}

// CallbackSystem wraps a plain once-per-phase function with no entity
// iteration at all.
type CallbackSystem struct {
	BaseSystem
	Fn func(dt float64)
}

// NewCallbackSystem builds a CallbackSystem.
func NewCallbackSystem(name string, phase Phase, priority int, fn func(dt float64)) *CallbackSystem {
	return &CallbackSystem{
		BaseSystem: BaseSystem{SystemName: name, SystemPhase: phase, SystemPriority: priority},
		Fn:         fn,
	}
}

func (c *CallbackSystem) ShouldIterate() bool { return false }
func (c *CallbackSystem) Once(dt float64) {
	if c.Fn != nil {
		c.Fn(dt)
	}
}
