package generator

import (
	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/layout"
	"github.com/dshills/caveripper/pkg/prng"
)

// placeCapUnits implements spec.md §4.3 Phase 3: every door still open
// after Phase 2 gets a DeadEnd cap unit placed against it so the layout
// has no dangling doors left.
func (b *builder) placeCapUnits() {
	for _, ref := range b.openDoors() {
		b.capDoor(ref)
	}
}

// capDoor attaches a DeadEnd unit to the open door at ref, trying
// candidates in a shuffled order until one fits without overlapping.
// If none fit, the door is marked as a cap in place (spec.md's
// fallback: a door with no room behind it is still a valid, if
// featureless, dead end).
func (b *builder) capDoor(ref layout.DoorRef) {
	door := &b.units[ref.UnitIdx].Doors[ref.DoorIdx]
	if door.Paired.Valid() || door.MarkedAsCap {
		return
	}
	wantDir := caveinfo.Direction(door.DoorUnit.Direction).Opposite()

	order := prng.RandBacksN(b.rng, candidateIndices(len(b.ci.Units)), len(b.ci.Units))
	for _, unitIdx := range order {
		unit := &b.ci.Units[unitIdx]
		if unit.RoomType != caveinfo.DeadEnd {
			continue
		}
		for doorIdx := range unit.Doors {
			if caveinfo.Direction(unit.Doors[doorIdx].Direction) != wantDir {
				continue
			}
			x, z := placementOrigin(unit, doorIdx, door.X, door.Z)
			candidate := layout.NewPlacedMapUnit(unit, x, z)
			if b.overlapsAny(candidate) {
				continue
			}
			b.addUnit(candidate)
			return
		}
	}

	door.MarkedAsCap = true
}
