package ecs

import "sort"

// Query is a composable, builder-style filter over a collection's live
// entities. Grounded on engine/query.go's QueryBuilder, extended with
// tag filters, a lambda predicate, a comparator-based sort, and
// take/first. Execution scans the collection's live entities in order
// and tests each one's bits; the per-type Stores are not consulted.
type Query struct {
	collection *EntityCollection

	hasComponents []int // AND
	missing       []int // AND NOT

	requireAllTags Bitset
	requireAnyTags Bitset
	forbidTags     Bitset
	anyTagsSet     bool

	wantID    EntityID
	wantIDSet bool
	notID     EntityID
	notIDSet  bool

	predicate func(*Entity) bool
	less      func(a, b *Entity) bool

	limit      int
	limitSet   bool
	takeQuirk  bool
	suppress   bool

	executed bool
	results  []*Entity
}

// NewQuery begins a new query against a collection.
func NewQuery(c *EntityCollection) *Query {
	return &Query{collection: c}
}

// checkNotExecuted panics if the query was already Gen'd. A query is a
// one-shot builder: once executed its filter set is frozen.
func (q *Query) checkNotExecuted() {
	if q.executed {
		panic("ecs: query modified after execution")
	}
}

// WhereHasComponent requires the entity to own a component of type T.
func WhereHasComponent[T any](q *Query) *Query {
	q.checkNotExecuted()
	q.hasComponents = append(q.hasComponents, componentTypeID[T]())
	return q
}

// WhereMissingComponent requires the entity to NOT own a component of
// type T.
func WhereMissingComponent[T any](q *Query) *Query {
	q.checkNotExecuted()
	q.missing = append(q.missing, componentTypeID[T]())
	return q
}

// WhereHasTag requires a single tag to be set.
func (q *Query) WhereHasTag(t Tag) *Query {
	q.checkNotExecuted()
	q.requireAllTags.Set(int(t))
	return q
}

// WhereHasAllTags requires every tag in bits to be set.
func (q *Query) WhereHasAllTags(bits Bitset) *Query {
	q.checkNotExecuted()
	for i, w := range bits.words {
		q.requireAllTags.grow(i*64 + 63)
		q.requireAllTags.words[i] |= w
	}
	return q
}

// WhereHasAnyTags requires at least one tag in bits to be set.
func (q *Query) WhereHasAnyTags(bits Bitset) *Query {
	q.checkNotExecuted()
	q.anyTagsSet = true
	for i, w := range bits.words {
		q.requireAnyTags.grow(i*64 + 63)
		q.requireAnyTags.words[i] |= w
	}
	return q
}

// WhereForbidTags requires none of the tags in bits to be set.
func (q *Query) WhereForbidTags(bits Bitset) *Query {
	q.checkNotExecuted()
	for i, w := range bits.words {
		q.forbidTags.grow(i*64 + 63)
		q.forbidTags.words[i] |= w
	}
	return q
}

// WhereID restricts results to exactly one entity id.
func (q *Query) WhereID(id EntityID) *Query {
	q.checkNotExecuted()
	q.wantID, q.wantIDSet = id, true
	return q
}

// WhereNotID excludes a single entity id.
func (q *Query) WhereNotID(id EntityID) *Query {
	q.checkNotExecuted()
	q.notID, q.notIDSet = id, true
	return q
}

// WhereLambda adds an arbitrary predicate, evaluated after every other
// filter in the order filters were declared.
func (q *Query) WhereLambda(fn func(*Entity) bool) *Query {
	q.checkNotExecuted()
	prev := q.predicate
	if prev == nil {
		q.predicate = fn
		return q
	}
	q.predicate = func(e *Entity) bool { return prev(e) && fn(e) }
	return q
}

// OrderByLambda stable-sorts results by cmp before Take is applied.
func (q *Query) OrderByLambda(less func(a, b *Entity) bool) *Query {
	q.checkNotExecuted()
	q.less = less
	return q
}

// Take caps the result count at n. By default this returns at most n
// entities; Query.WithTakeQuirk reproduces the source's documented
// off-by-one (n+1) for callers porting behavior that depends on it
// (see DESIGN.md Open Question #1).
func (q *Query) Take(n int) *Query {
	q.checkNotExecuted()
	q.limit, q.limitSet = n, true
	return q
}

// WithTakeQuirk opts this query into the original n+1 Take behavior.
func (q *Query) WithTakeQuirk() *Query {
	q.checkNotExecuted()
	q.takeQuirk = true
	return q
}

// First is equivalent to Take(1).
func (q *Query) First() *Query {
	return q.Take(1)
}

// SuppressMergeWarning silences the unmerged-temp-entities warning for
// this query only.
func (q *Query) SuppressMergeWarning() *Query {
	q.checkNotExecuted()
	q.suppress = true
	return q
}

func (q *Query) matches(e *Entity) bool {
	for _, id := range q.hasComponents {
		if !e.hasComponentBit(id) {
			return false
		}
	}
	for _, id := range q.missing {
		if e.hasComponentBit(id) {
			return false
		}
	}
	if !q.requireAllTags.IsZero() && !e.tagSet.ContainsAll(q.requireAllTags) {
		return false
	}
	if q.anyTagsSet && !e.tagSet.ContainsAny(q.requireAnyTags) {
		return false
	}
	if !q.forbidTags.IsZero() && e.tagSet.ContainsAny(q.forbidTags) {
		return false
	}
	if q.wantIDSet && e.ID != q.wantID {
		return false
	}
	if q.notIDSet && e.ID == q.notID {
		return false
	}
	if q.predicate != nil && !q.predicate(e) {
		return false
	}
	return true
}

// execute evaluates the query once; repeated calls to Gen/GenIDs/etc.
// reuse the cached result.
func (q *Query) execute() {
	if q.executed {
		return
	}
	q.executed = true

	if !q.suppress {
		q.collection.warnIfUnmerged()
	}

	for _, e := range q.collection.live {
		if q.matches(e) {
			q.results = append(q.results, e)
		}
	}

	if q.less != nil {
		sort.SliceStable(q.results, func(i, j int) bool {
			return q.less(q.results[i], q.results[j])
		})
	}

	if q.limitSet {
		n := q.limit
		if q.takeQuirk {
			n++
		}
		if n < len(q.results) {
			q.results = q.results[:n]
		}
	}
}

// Gen returns the matching entities.
func (q *Query) Gen() []*Entity {
	q.execute()
	return q.results
}

// GenIDs returns the matching entity ids.
func (q *Query) GenIDs() []EntityID {
	q.execute()
	ids := make([]EntityID, len(q.results))
	for i, e := range q.results {
		ids[i] = e.ID
	}
	return ids
}

// GenCount returns len(Gen()).
func (q *Query) GenCount() int {
	q.execute()
	return len(q.results)
}

// GenFirst returns the first matching entity, or false if none matched.
func (q *Query) GenFirst() (*Entity, bool) {
	q.execute()
	if len(q.results) == 0 {
		return nil, false
	}
	return q.results[0], true
}

// HasValues reports whether the query matched at least one entity.
func (q *Query) HasValues() bool {
	q.execute()
	return len(q.results) > 0
}
