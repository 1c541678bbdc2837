package uicomponent

import "github.com/ashenforge/ecsui/ecs"

// Tree is the id_map AutoLayout walks: a lookup from entity id to its
// UIComponent, kept alongside (not instead of) the owning
// ecs.EntityCollection so layout code can resolve parent/child
// pointers in O(1) without threading the collection through every
// helper.
type Tree struct {
	collection *ecs.EntityCollection
	nodes      map[ecs.EntityID]*UIComponent
}

// NewTree wraps a collection with an empty id_map.
func NewTree(c *ecs.EntityCollection) *Tree {
	return &Tree{collection: c, nodes: make(map[ecs.EntityID]*UIComponent)}
}

// Attach creates (or replaces) the UIComponent for id and records it in
// both the id_map and the entity's own component set.
func (t *Tree) Attach(e *ecs.Entity, comp *UIComponent) {
	t.nodes[e.ID] = comp
	ecs.SetComponent(t.collection, e, comp)
}

// Get returns the UIComponent for an entity id.
func (t *Tree) Get(id ecs.EntityID) (*UIComponent, bool) {
	c, ok := t.nodes[id]
	return c, ok
}

// Reparent detaches child from its current parent (if any) and appends
// it to newParent's child list, updating both sides of the
// relationship.
func (t *Tree) Reparent(child, newParent ecs.EntityID) {
	c, ok := t.nodes[child]
	if !ok {
		return
	}
	if old, ok := t.nodes[c.Parent()]; ok {
		old.RemoveChild(child)
	}
	c.SetParent(newParent)
	if p, ok := t.nodes[newParent]; ok {
		p.AddChild(child)
	}
}

// RemoveFromParent detaches id from its parent's child list without
// reparenting it anywhere else (remove_me_from_parent).
func (t *Tree) RemoveFromParent(id ecs.EntityID) {
	c, ok := t.nodes[id]
	if !ok {
		return
	}
	if p, ok := t.nodes[c.Parent()]; ok {
		p.RemoveChild(id)
	}
	c.SetParent(NoParent)
}

// Roots returns every node with no parent in the map, in map iteration
// order — callers that need determinism should track root order
// themselves (e.g. a single known root id, the common case).
func (t *Tree) Roots() []ecs.EntityID {
	var roots []ecs.EntityID
	for id, c := range t.nodes {
		if _, ok := t.nodes[c.Parent()]; !ok {
			roots = append(roots, id)
		}
	}
	return roots
}

// Delete removes id from the id_map (its ecs component removal, if
// any, is the caller's responsibility via the owning collection).
func (t *Tree) Delete(id ecs.EntityID) {
	delete(t.nodes, id)
}
