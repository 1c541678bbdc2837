package imm

import (
	"fmt"
	"hash/fnv"
	"log/slog"
	"runtime"

	"github.com/ashenforge/ecsui/ecs"
)

// registry is the process-wide UI_UUID -> entity_id map every Context
// shares, matching the single mk table a host embeds regardless of how
// many ImmContexts are alive. Single-threaded cooperative scheduling
// means no lock is needed here any more than it is in ecs.EntityCollection.
var registry = make(map[uint64]ecs.EntityID)

// Site is a call's identity ingredients: parent entity, an optional
// disambiguator for sibling calls from the same source location (a
// loop body, say), and the source location itself.
type Site struct {
	Parent        ecs.EntityID
	Disambiguator uint64
	File          string
	Line          int
	Func          string
}

// CallerSite captures the call site skip frames above its own caller;
// skip 0 names the function calling CallerSite.
func CallerSite(parent ecs.EntityID, disambiguator uint64, skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{Parent: parent, Disambiguator: disambiguator}
	}
	fn := runtime.FuncForPC(pc)
	name := ""
	if fn != nil {
		name = fn.Name()
	}
	return Site{Parent: parent, Disambiguator: disambiguator, File: file, Line: line, Func: name}
}

// hash combines a Site's fields into the UI_UUID key.
func (s Site) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s.File))
	fmt.Fprintf(h, "|%d|", s.Line)
	h.Write([]byte(s.Func))
	fmt.Fprintf(h, "|%d|%d", uint64(s.Parent), s.Disambiguator)
	return h.Sum64()
}

// Resolve returns the entity identified by site, creating one in
// collection if the site has never been seen or its previous entity no
// longer resolves. A hash collision where the stored entity has been
// destroyed is a recoverable error: it is logged with the source
// location and a new entity takes its place.
func Resolve(collection *ecs.EntityCollection, site Site, logger *slog.Logger) (*ecs.Entity, bool) {
	if logger == nil {
		logger = slog.Default()
	}
	key := site.hash()

	if id, ok := registry[key]; ok {
		if e, ok := collection.GetEntityForID(id); ok {
			return e, false
		}
		logger.Warn("imm: identity resolved to a deleted entity, creating a new one",
			"file", site.File, "line", site.Line, "func", site.Func,
			"hint", "supply a unique disambiguator if this call site repeats in a loop")
	}

	e := collection.CreateEntity()
	registry[key] = e.ID
	return e, true
}

// Forget drops id's identity mapping, used when a widget explicitly
// destroys its own entity outside the normal stale-resolve path.
func Forget(site Site) {
	delete(registry, site.hash())
}
