// Package waypoint derives a connectivity graph over a generated
// Layout's spawn points and door seams: the carry-path network treasure
// haulers and query predicates (e.g. "distance to the ship") travel
// along. It is built lazily, once per Layout, and cached for the
// Layout's lifetime — see layout.Layout.WaypointCache.
package waypoint
