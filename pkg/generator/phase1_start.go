package generator

import (
	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/caverippererr"
	"github.com/dshills/caveripper/pkg/layout"
)

// placeStartRoom implements spec.md §4.3 Phase 1: choose the start room
// from CaveUnit entries of type Room whose declaration marks them as a
// starting room, and place it at grid (0,0) with its declared rotation.
func (b *builder) placeStartRoom() {
	var candidates []int
	for i, unit := range b.ci.Units {
		if unit.RoomType == caveinfo.Room && unit.IsStartingRoom {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		caverippererr.Abort("caveinfo.units", "no starting room declared")
	}

	idx := candidates[0]
	if len(candidates) > 1 {
		idx = candidates[b.rng.RandInt(uint32(len(candidates)))]
	}

	unit := &b.ci.Units[idx]
	placed := layout.NewPlacedMapUnit(unit, 0, 0)
	b.addUnit(placed)
}

// addUnit appends a newly placed unit to the builder's unit list,
// stamping each of its doors with the owning unit's index and pairing
// any doors that already line up with existing open doors (spec.md
// §4.3 Phase 2 step 4).
func (b *builder) addUnit(unit layout.PlacedMapUnit) int {
	idx := len(b.units)
	for i := range unit.Doors {
		unit.Doors[i].ParentIdx = idx
	}
	b.units = append(b.units, unit)
	if unit.Unit.RoomType == caveinfo.Room {
		b.numRoomsPlaced++
	}
	b.pairAligningOpenDoors(idx)
	return idx
}
