package generator

import (
	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/layout"
	"github.com/dshills/caveripper/pkg/prng"
)

// maxLayoutIterations bounds the open-door growth loop so a malformed
// CaveInfo (one whose units can never satisfy num_rooms) cannot spin
// forever: after this many iterations the loop simply stops, and any
// doors still open are left to Phase 3.
const maxLayoutIterations = 10000

// openDoors returns every door in the layout so far that is neither
// paired nor already marked as a dead-end cap.
func (b *builder) openDoors() []layout.DoorRef {
	var out []layout.DoorRef
	for ui := range b.units {
		for di, d := range b.units[ui].Doors {
			if !d.Paired.Valid() && !d.MarkedAsCap {
				out = append(out, layout.DoorRef{UnitIdx: ui, DoorIdx: di})
			}
		}
	}
	return out
}

// pairAligningOpenDoors scans every other open door against the doors
// of the unit just placed at unitIdx and pairs any that line up (spec.md
// §4.3 Phase 2 step 4: pairing happens immediately on placement, not as
// a separate pass).
func (b *builder) pairAligningOpenDoors(unitIdx int) {
	placed := &b.units[unitIdx]
	for di := range placed.Doors {
		nd := &placed.Doors[di]
		if nd.Paired.Valid() || nd.MarkedAsCap {
			continue
		}
		for ui := range b.units {
			if ui == unitIdx {
				continue
			}
			other := &b.units[ui]
			for dj := range other.Doors {
				od := &other.Doors[dj]
				if od.Paired.Valid() || od.MarkedAsCap {
					continue
				}
				if nd.LinesUpWith(*od) {
					nd.Paired = layout.DoorRef{UnitIdx: ui, DoorIdx: dj}
					od.Paired = layout.DoorRef{UnitIdx: unitIdx, DoorIdx: di}
					break
				}
			}
		}
	}
}

// generateMapUnits implements spec.md §4.3 Phase 2: repeatedly pick an
// open door at random, attach a unit to it whose type (room vs
// corridor) is rolled against cave_info's corridor_probability, and
// continue until num_rooms rooms have been placed and no open doors
// remain. A door that cannot be satisfied by any candidate is capped in
// place rather than left dangling, matching the real generator's
// "give up on this door" fallback.
func (b *builder) generateMapUnits() {
	for i := 0; i < maxLayoutIterations; i++ {
		open := b.openDoors()
		if len(open) == 0 {
			return
		}
		if b.numRoomsPlaced >= b.ci.NumRooms && !b.hasAnyHallwayLeft(open) {
			return
		}

		chosen := open[b.rng.RandInt(uint32(len(open)))]
		if !b.tryAttachUnit(chosen) {
			b.units[chosen.UnitIdx].Doors[chosen.DoorIdx].MarkedAsCap = true
		}
	}
}

// hasAnyHallwayLeft is a termination guard: once num_rooms has been
// reached, remaining open doors still need to be resolved (capped or
// joined by a hallway) before generation can stop, so the loop isn't
// allowed to exit purely on the room count.
func (b *builder) hasAnyHallwayLeft(open []layout.DoorRef) bool {
	return len(open) > 0
}

// wantedRoomType rolls cave_info's corridor_probability to decide
// whether the next unit attached to an open door should be a Hallway or
// a Room, forcing Hallway once num_rooms rooms are already down.
func (b *builder) wantedRoomType() caveinfo.RoomType {
	if b.numRoomsPlaced >= b.ci.NumRooms {
		return caveinfo.Hallway
	}
	if b.rng.RandF32() < float32(b.ci.CorridorProbability) {
		return caveinfo.Hallway
	}
	return caveinfo.Room
}

// tryAttachUnit attempts to grow the layout from the open door at ref,
// picking a unit of the rolled room type from a shuffled candidate pool
// and placing it at the first non-overlapping position found. Reports
// whether a unit was placed.
func (b *builder) tryAttachUnit(ref layout.DoorRef) bool {
	openDoor := b.units[ref.UnitIdx].Doors[ref.DoorIdx]
	wantDir := caveinfo.Direction(openDoor.DoorUnit.Direction).Opposite()
	wantType := b.wantedRoomType()

	order := prng.RandBacksN(b.rng, candidateIndices(len(b.ci.Units)), len(b.ci.Units))
	for _, unitIdx := range order {
		unit := &b.ci.Units[unitIdx]
		if unit.IsStartingRoom {
			continue
		}
		if unit.RoomType != wantType {
			continue
		}
		for doorIdx := range unit.Doors {
			if caveinfo.Direction(unit.Doors[doorIdx].Direction) != wantDir {
				continue
			}
			x, z := placementOrigin(unit, doorIdx, openDoor.X, openDoor.Z)
			candidate := layout.NewPlacedMapUnit(unit, x, z)
			if b.overlapsAny(candidate) {
				continue
			}
			b.addUnit(candidate)
			return true
		}
	}
	return false
}

// candidateIndices builds 0..n-1 for shuffling through RandBacksN.
func candidateIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// placementOrigin inverts NewPlacedMapUnit's door-offset transform to
// find the grid origin a unit must be placed at so that its door doorIdx
// lands exactly on (targetX, targetZ).
func placementOrigin(unit *caveinfo.CaveUnit, doorIdx int, targetX, targetZ int32) (int32, int32) {
	door := unit.Doors[doorIdx]
	offset := int32(door.SideLateralOffset)
	switch door.Direction {
	case 0:
		return targetX - offset, targetZ
	case 1:
		return targetX - int32(unit.Width), targetZ - offset
	case 2:
		return targetX - offset, targetZ - int32(unit.Height)
	case 3:
		return targetX, targetZ - offset
	default:
		panic("invalid door direction")
	}
}

// overlapsAny reports whether candidate's footprint intersects any unit
// already placed in the layout.
func (b *builder) overlapsAny(candidate layout.PlacedMapUnit) bool {
	for i := range b.units {
		if b.units[i].Overlaps(candidate) {
			return true
		}
	}
	return false
}
