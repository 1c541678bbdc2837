// Package ecs implements the entity-component-system core: entity
// lifecycle across pending and live partitions, type-indexed components
// backed by bitsets, stable handles with generations, a filtered query
// builder, and a phase-ordered system scheduler.
//
// The scheduling model is single-threaded and cooperative: a collection
// is only ever mutated from the goroutine that calls Scheduler.Run, so
// none of the core types use locks.
package ecs
