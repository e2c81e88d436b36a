// Package shareable provides value containers that defer all
// synchronization cost until a value is actually shared.
//
// A container starts out unshared: a single owner, plain storage, no
// atomics and no locks. The first call to Dup promotes it, moving the
// value into a backing that the original handle and every later duplicate
// reference together; from then on all handles of the lineage read and
// write the same storage and may be used from any goroutine.
//
// Cell holds fixed-width scalars and keeps them in a single atomic machine
// word whenever the platform word is wide enough, falling back to a mutex
// otherwise. Object holds values of arbitrary type and publishes them as
// immutable snapshots behind a short-held mutex.
package shareable

// Version of the shareable module, set from source control for release builds.
var Version string = "unknown"
