// Package generator implements the seven-phase state machine that turns
// a seed and a CaveInfo into a Layout: placing the starting room,
// growing the map-unit graph, capping dead ends, scoring doors and
// units, placing key items, populating main objects, and finally
// placing cap teki. See spec.md §4.3 for the phase-by-phase contract
// each method below implements.
//
// Generate is the only entry point. It owns a single *prng.PRNG for the
// whole call and never yields control — there are no suspension points
// between Phases 1 and 7 (spec.md §5). Distinct calls are fully
// independent and may run concurrently on separate goroutines provided
// each passes its own seed and does not share mutable state (see
// pkg/batch for exactly that pattern).
package generator
