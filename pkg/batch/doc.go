// Package batch sweeps a range of seeds looking for a layout matching a
// caller-supplied predicate, spreading the generation work across
// goroutines with golang.org/x/sync/errgroup (spec.md §4.9). Each
// generator.Generate call is independent — the package exists only to
// parallelize the sweep and stop the other workers as soon as one finds
// a match.
package batch
