package ecs

// TagsAll builds a Bitset with every given tag set, for use with
// Query.WhereHasAllTags / System tag requirements.
func TagsAll(tags ...Tag) Bitset {
	b := NewBitset(64)
	for _, t := range tags {
		b.Set(int(t))
	}
	return b
}

// TagsAny builds a Bitset for Query.WhereHasAnyTags.
func TagsAny(tags ...Tag) Bitset {
	return TagsAll(tags...)
}

// TagsNone builds a Bitset for Query.WhereForbidTags.
func TagsNone(tags ...Tag) Bitset {
	return TagsAll(tags...)
}
