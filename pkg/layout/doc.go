// Package layout holds the output data model of cave generation: placed
// map units, doors, and spawn points, plus the 2D/3D point algebra the
// generator and waypoint graph build on.
//
// Cross-unit references (a door's paired partner, a door's parent unit)
// are plain integer indices into the Layout's flat slices, never
// pointers — spec.md §9's "Cyclic back-references" note. This also
// keeps a Layout safe to read from multiple goroutines once generation
// has finished (see pkg/batch). A Layout holds a sync.Once for its
// waypoint cache, so it is shared by pointer rather than copied.
package layout
