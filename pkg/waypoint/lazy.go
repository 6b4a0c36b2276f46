package waypoint

import "github.com/dshills/caveripper/pkg/layout"

// For builds (or returns the already-built) waypoint graph for l,
// computing it on first call and reusing the cached result thereafter
// for the lifetime of the Layout value.
func For(l *layout.Layout) *Graph {
	cached := l.WaypointCache(func() any { return Build(l) })
	return cached.(*Graph)
}
