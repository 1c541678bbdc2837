package ecs

import (
	"fmt"
	"log/slog"
)

// EntityCollection owns every entity in one partition of the game (the
// default collection, or a separate UI collection). It implements the
// two-phase temp/live storage, the handle table, and the singleton
// registry.
//
// Grounded on engine/world.go's World (CreateEntity/DestroyEntity/Clear/
// AddSystem ordering) and engine/world_generic.go's WorldGeneric
// (explicit per-type stores, allStores for uniform cleanup), merged
// with a two-phase temp/live requirement that neither teacher World
// variant implements on its own.
type EntityCollection struct {
	logger *slog.Logger

	nextID EntityID

	temp []*Entity
	live []*Entity

	idIndex map[EntityID]*Entity

	permanentIDs map[EntityID]bool

	stores map[int]queryableStore

	singletons map[int]EntityID

	handles     []handleSlot
	entityToSlot map[EntityID]uint32

	assignHandlesOnCreate bool

	mergedSinceCreate bool
	suppressMergeWarn bool
}

type handleSlot struct {
	generation uint32
	entity     EntityID // invalidEntityID when tombstoned
}

// Handle is a (slot, generation) pair that resolves to an entity and
// survives a merge, but is invalidated once the entity is destroyed.
type Handle struct {
	Slot       uint32
	Generation uint32
}

// NewEntityCollection creates an empty collection. assignHandlesOnCreate
// controls whether every CreateEntity call eagerly allocates a handle
// slot, as a runtime option rather than a build tag.
func NewEntityCollection(assignHandlesOnCreate bool) *EntityCollection {
	return &EntityCollection{
		logger:       slog.Default(),
		nextID:       1,
		idIndex:      make(map[EntityID]*Entity),
		permanentIDs: make(map[EntityID]bool),
		stores:       make(map[int]queryableStore),
		singletons:   make(map[int]EntityID),
		entityToSlot: make(map[EntityID]uint32),

		assignHandlesOnCreate: assignHandlesOnCreate,
	}
}

// WithLogger overrides the collection's logger (default slog.Default()).
func (c *EntityCollection) WithLogger(l *slog.Logger) *EntityCollection {
	c.logger = l
	return c
}

// CreateEntity allocates an entity with a fresh id and inserts it into
// the temp partition; it is invisible to queries until MergeEntityArrays
// runs.
func (c *EntityCollection) CreateEntity() *Entity {
	e := &Entity{ID: c.nextID}
	c.nextID++
	c.temp = append(c.temp, e)
	c.mergedSinceCreate = false
	if c.assignHandlesOnCreate {
		c.HandleFor(e)
	}
	return e
}

// CreatePermanentEntity is CreateEntity plus registration against
// delete-all protection.
func (c *EntityCollection) CreatePermanentEntity() *Entity {
	e := c.CreateEntity()
	e.permanent = true
	c.permanentIDs[e.ID] = true
	return e
}

// MergeEntityArrays moves every temp entity into live and updates
// idIndex. It must run once per frame between mutation and iteration.
func (c *EntityCollection) MergeEntityArrays() {
	for _, e := range c.temp {
		c.live = append(c.live, e)
		c.idIndex[e.ID] = e
	}
	c.temp = c.temp[:0]
	c.mergedSinceCreate = true
}

// GetEntityForID returns the live entity with the given id, or false if
// none exists. O(1) via idIndex.
func (c *EntityCollection) GetEntityForID(id EntityID) (*Entity, bool) {
	e, ok := c.idIndex[id]
	return e, ok
}

// Entities returns a read-only view of the live partition in the order
// systems iterate it. Callers must not mutate the returned slice.
func (c *EntityCollection) Entities() []*Entity {
	c.warnIfUnmerged()
	return c.live
}

// warnIfUnmerged logs if temp is non-empty when a query or iteration
// runs, so a forgotten MergeEntityArrays call fails loudly.
func (c *EntityCollection) warnIfUnmerged() {
	if c.suppressMergeWarn {
		return
	}
	if len(c.temp) > 0 {
		c.logger.Warn("ecs: query/iteration ran with unmerged temp entities",
			"temp_count", len(c.temp))
	}
}

// SuppressMergeWarnings disables the unmerged-temp warning for this
// collection; Query also has a per-query SuppressMergeWarning escape
// hatch for cases that don't want the whole collection silenced.
func (c *EntityCollection) SuppressMergeWarnings(suppress bool) {
	c.suppressMergeWarn = suppress
}

// MarkIDForCleanup flags the entity with the given id for deletion at
// the next Cleanup call. No-op if the id does not resolve.
func (c *EntityCollection) MarkIDForCleanup(id EntityID) {
	if e, ok := c.idIndex[id]; ok {
		e.cleanup = true
		return
	}
	for _, e := range c.temp {
		if e.ID == id {
			e.cleanup = true
			return
		}
	}
}

// Cleanup deletes every entity marked for cleanup, removes it from every
// component store, and tombstones (bumps the generation of) any handle
// slot that referenced it.
func (c *EntityCollection) Cleanup() {
	kept := c.live[:0]
	for _, e := range c.live {
		if !e.cleanup {
			kept = append(kept, e)
			continue
		}
		c.destroy(e)
	}
	c.live = kept
}

// DeleteAllEntities removes every live entity. If keepPermanent is true,
// entities created with CreatePermanentEntity survive.
func (c *EntityCollection) DeleteAllEntities(keepPermanent bool) {
	kept := c.live[:0]
	for _, e := range c.live {
		if keepPermanent && c.permanentIDs[e.ID] {
			kept = append(kept, e)
			continue
		}
		c.destroy(e)
	}
	c.live = kept
}

// DeleteAllEntitiesNoReallyIMeanAll removes every entity including
// permanent ones.
func (c *EntityCollection) DeleteAllEntitiesNoReallyIMeanAll() {
	c.DeleteAllEntities(false)
}

func (c *EntityCollection) destroy(e *Entity) {
	delete(c.idIndex, e.ID)
	for _, s := range c.stores {
		s.Remove(e.ID)
	}
	for typeID, singleton := range c.singletons {
		if singleton == e.ID {
			delete(c.singletons, typeID)
		}
	}
	if slot, ok := c.entityToSlot[e.ID]; ok {
		c.handles[slot].generation++
		c.handles[slot].entity = invalidEntityID
		delete(c.entityToSlot, e.ID)
	}
}

// HandleFor returns the existing handle for an entity. If none exists
// yet it takes over the first tombstoned slot (keeping that slot's
// already-bumped generation), and only when there is none allocates a
// new slot at generation 1.
func (c *EntityCollection) HandleFor(e *Entity) Handle {
	if slot, ok := c.entityToSlot[e.ID]; ok {
		return Handle{Slot: slot, Generation: c.handles[slot].generation}
	}
	// Reuse a tombstoned slot if one is available, bumping nothing
	// further (its generation was already bumped on tombstone).
	for i := range c.handles {
		if c.handles[i].entity == invalidEntityID {
			c.handles[i].entity = e.ID
			c.entityToSlot[e.ID] = uint32(i)
			return Handle{Slot: uint32(i), Generation: c.handles[i].generation}
		}
	}
	slot := uint32(len(c.handles))
	c.handles = append(c.handles, handleSlot{generation: 1, entity: e.ID})
	c.entityToSlot[e.ID] = slot
	return Handle{Slot: slot, Generation: 1}
}

// Resolve returns the entity a handle points to, or false if the handle
// is stale (the slot's generation has moved on) or tombstoned.
func (c *EntityCollection) Resolve(h Handle) (*Entity, bool) {
	if int(h.Slot) >= len(c.handles) {
		return nil, false
	}
	slot := c.handles[h.Slot]
	if slot.generation != h.Generation || slot.entity == invalidEntityID {
		return nil, false
	}
	return c.GetEntityForID(slot.entity)
}

// storeFor lazily creates and returns the Store[T] backing component
// type T, registering it in the type-erased registry for lifecycle ops.
func storeFor[T any](c *EntityCollection) *Store[T] {
	id := componentTypeID[T]()
	if existing, ok := c.stores[id]; ok {
		return existing.(*Store[T])
	}
	s := NewStore[T]()
	c.stores[id] = s
	return s
}

// AddComponent attaches a component of type T to an entity. Adding a
// component that already exists is a logic error: it is logged and the
// existing value is left untouched.
func AddComponent[T any](c *EntityCollection, e *Entity, val T) {
	id := componentTypeID[T]()
	s := storeFor[T](c)
	if e.hasComponentBit(id) {
		c.logger.Warn("ecs: duplicate AddComponent ignored",
			"entity", e.ID, "component", fmt.Sprintf("%T", val))
		return
	}
	s.Add(e.ID, val)
	e.componentSet.Set(id)
}

// SetComponent attaches or overwrites a component of type T without the
// duplicate warning; use when intentionally replacing a value.
func SetComponent[T any](c *EntityCollection, e *Entity, val T) {
	id := componentTypeID[T]()
	storeFor[T](c).Add(e.ID, val)
	e.componentSet.Set(id)
}

// GetComponent returns the component of type T on an entity.
func GetComponent[T any](c *EntityCollection, e *Entity) (T, bool) {
	return storeFor[T](c).Get(e.ID)
}

// MustGetComponent returns the component of type T, panicking if absent.
func MustGetComponent[T any](c *EntityCollection, e *Entity) T {
	return storeFor[T](c).MustGet(e.ID)
}

// HasComponent reports whether an entity owns a component of type T.
func HasComponent[T any](e *Entity) bool {
	return e.hasComponentBit(componentTypeID[T]())
}

// RemoveComponent detaches the component of type T from an entity.
func RemoveComponent[T any](c *EntityCollection, e *Entity) {
	id := componentTypeID[T]()
	storeFor[T](c).Remove(e.ID)
	e.componentSet.Clear(id)
}

// RegisterSingleton records that entity e holds the unique instance of
// component type T in this collection.
func RegisterSingleton[T any](c *EntityCollection, e *Entity) {
	c.singletons[componentTypeID[T]()] = e.ID
}

// HasSingleton reports whether a singleton of type T is registered.
func HasSingleton[T any](c *EntityCollection) bool {
	_, ok := c.singletons[componentTypeID[T]()]
	return ok
}

// GetSingleton returns the entity registered as holding the unique
// component of type T. Panics if none is registered: this is a
// precondition violation, not a recoverable miss.
func GetSingleton[T any](c *EntityCollection) *Entity {
	id, ok := c.singletons[componentTypeID[T]()]
	if !ok {
		panic(fmt.Sprintf("ecs: GetSingleton[%T] with no registered singleton", *new(T)))
	}
	e, _ := c.GetEntityForID(id)
	return e
}

// GetSingletonComponent returns the component value of type T from the
// registered singleton entity, or false if no singleton is registered.
func GetSingletonComponent[T any](c *EntityCollection) (T, bool) {
	var zero T
	eid, ok := c.singletons[componentTypeID[T]()]
	if !ok {
		return zero, false
	}
	e, ok := c.GetEntityForID(eid)
	if !ok {
		return zero, false
	}
	return GetComponent[T](c, e)
}
