package generator

import (
	"sort"

	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/layout"
)

// placeMainObjects implements spec.md §4.3 Phase 6: populate the floor
// spawn points with treasures and main-floor teki (minimum_amount
// guarantees first, at the best-scoring eligible spots, then any
// remaining capacity up to max_main_objects on weighted filler draws),
// attach seam teki to door seams (minimum_amount only), and hang gates
// on doors (weighted draws up to max_gates).
func (b *builder) placeMainObjects() {
	floor := b.eligibleFloorSpawnPoints()

	var guaranteed int
	b.placeGuaranteedItems(floor, &guaranteed)
	b.placeFillerMainObjects(floor, guaranteed)

	b.placeSeamTeki()
	b.placeGates()
}

// eligibleFloorSpawnPoints collects one slot per remaining placement a
// spawn point can still hold (its declared max_spawn minus whatever it
// already contains, defaulting to a single slot when max_spawn is
// unset), ordered by descending treasure score so minimum guarantees
// land on the best spots first. A spawn point with max_spawn > 1 can
// therefore appear more than once, receiving more than one object.
func (b *builder) eligibleFloorSpawnPoints() []spawnPointRef {
	var refs []spawnPointRef
	for ui := range b.units {
		for si := range b.units[ui].SpawnPoints {
			sp := &b.units[ui].SpawnPoints[si]
			if sp.SpawnPointUnit.Type != caveinfo.SpawnTekiOrItem {
				continue
			}
			capacity := sp.SpawnPointUnit.MaxSpawn
			if capacity <= 0 {
				capacity = 1
			}
			capacity -= len(sp.Contains)
			for i := 0; i < capacity; i++ {
				refs = append(refs, spawnPointRef{ui, si})
			}
		}
	}
	sort.SliceStable(refs, func(i, j int) bool {
		a := b.units[refs[i].unitIdx].SpawnPoints[refs[i].spawnIdx]
		c := b.units[refs[j].unitIdx].SpawnPoints[refs[j].spawnIdx]
		return a.TreasureScore > c.TreasureScore
	})
	return refs
}

// placeGuaranteedItems places each pool entry's minimum_amount at the
// best remaining spawn points, stopping at max_treasures/max_main_objects.
// The out parameter receives how many floor slots were consumed so
// placeFillerMainObjects can pick up where this leaves off; it also
// returns that count.
func (b *builder) placeGuaranteedItems(floor []spawnPointRef, consumed *int) int {
	cursor := 0
	place := func(obj layout.SpawnObject, count uint32) {
		for i := uint32(0); i < count && cursor < len(floor) && cursor < b.ci.MaxMainObjects; i++ {
			ref := floor[cursor]
			b.units[ref.unitIdx].SpawnPoints[ref.spawnIdx].Contains = append(
				b.units[ref.unitIdx].SpawnPoints[ref.spawnIdx].Contains, obj)
			cursor++
		}
	}

	treasures := 0
	for i := range b.ci.Items {
		count := b.ci.Items[i].MinAmount
		room := b.ci.MaxTreasures - treasures
		if room < 0 {
			room = 0
		}
		if int(count) > room {
			count = uint32(room)
		}
		start := cursor
		place(layout.NewItem(&b.ci.Items[i]), count)
		treasures += cursor - start
	}
	for i := range b.ci.Teki {
		if b.ci.Teki[i].Group != 0 {
			continue
		}
		place(layout.NewTeki(&b.ci.Teki[i], layout.Point3{}), b.ci.Teki[i].MinimumAmount)
	}

	*consumed = cursor
	return cursor
}

// placeFillerMainObjects spends the remaining floor-spawn-point capacity
// (up to max_main_objects) on weighted draws from the combined
// item/group-0-teki pool via prng.PRNG.RandIndexWeight.
func (b *builder) placeFillerMainObjects(floor []spawnPointRef, alreadyPlaced int) int {
	type entry struct {
		weight uint32
		build  func() layout.SpawnObject
	}
	var pool []entry
	for i := range b.ci.Items {
		info := &b.ci.Items[i]
		pool = append(pool, entry{info.FillerDistributionWeight, func() layout.SpawnObject { return layout.NewItem(info) }})
	}
	for i := range b.ci.Teki {
		if b.ci.Teki[i].Group != 0 {
			continue
		}
		info := &b.ci.Teki[i]
		pool = append(pool, entry{info.FillerDistributionWeight, func() layout.SpawnObject { return layout.NewTeki(info, layout.Point3{}) }})
	}
	if len(pool) == 0 {
		return alreadyPlaced
	}

	weights := make([]uint32, len(pool))
	for i, e := range pool {
		weights[i] = e.weight
	}

	cursor := alreadyPlaced
	for cursor < len(floor) && cursor < b.ci.MaxMainObjects {
		idx, ok := b.rng.RandIndexWeight(weights)
		if !ok {
			break
		}
		ref := floor[cursor]
		b.units[ref.unitIdx].SpawnPoints[ref.spawnIdx].Contains = append(
			b.units[ref.unitIdx].SpawnPoints[ref.spawnIdx].Contains, pool[idx].build())
		cursor++
	}
	return cursor
}

// placeSeamTeki attaches group-1 teki to door seams that have nothing
// attached yet, in descending-seam-score order, one per door, placing
// exactly each entry's minimum_amount (fewer if doors run out). It
// mirrors placeGuaranteedItems' shape but over doors instead of spawn
// points; no weighted filler draws are made for seam teki.
func (b *builder) placeSeamTeki() {
	var doors []layout.DoorRef
	for ui := range b.units {
		for di := range b.units[ui].Doors {
			d := &b.units[ui].Doors[di]
			if d.HasSeamSpawnpoint {
				continue
			}
			doors = append(doors, layout.DoorRef{UnitIdx: ui, DoorIdx: di})
		}
	}
	sort.SliceStable(doors, func(i, j int) bool {
		a := b.units[doors[i].UnitIdx].Doors[doors[i].DoorIdx]
		c := b.units[doors[j].UnitIdx].Doors[doors[j].DoorIdx]
		return a.SeamTekiScore > c.SeamTekiScore
	})

	cursor := 0
	assign := func(info *caveinfo.TekiInfo, count uint32) {
		for i := uint32(0); i < count && cursor < len(doors); i++ {
			ref := doors[cursor]
			d := &b.units[ref.UnitIdx].Doors[ref.DoorIdx]
			d.SeamSpawnpoint = layout.NewTeki(info, seamTekiOffset(d.DoorUnit.Direction))
			d.HasSeamSpawnpoint = true
			cursor++
		}
	}
	for i := range b.ci.Teki {
		if b.ci.Teki[i].Group != 1 {
			continue
		}
		assign(&b.ci.Teki[i], b.ci.Teki[i].MinimumAmount)
	}
}

// placeGates hangs gate objects on the unclaimed door seams left after
// seam teki placement, weighted by spawn_distribution_weight and capped
// at max_gates.
func (b *builder) placeGates() {
	if len(b.ci.Gates) == 0 || b.ci.MaxGates == 0 {
		return
	}
	weights := make([]uint32, len(b.ci.Gates))
	for i := range b.ci.Gates {
		weights[i] = b.ci.Gates[i].SpawnDistributionWeight
	}

	var doors []layout.DoorRef
	for ui := range b.units {
		for di := range b.units[ui].Doors {
			if b.units[ui].Doors[di].HasSeamSpawnpoint {
				continue
			}
			doors = append(doors, layout.DoorRef{UnitIdx: ui, DoorIdx: di})
		}
	}

	placed := 0
	for _, ref := range doors {
		if placed >= b.ci.MaxGates {
			break
		}
		idx, ok := b.rng.RandIndexWeight(weights)
		if !ok {
			break
		}
		d := &b.units[ref.UnitIdx].Doors[ref.DoorIdx]
		d.SeamSpawnpoint = layout.NewGate(&b.ci.Gates[idx], uint16(d.DoorUnit.Direction))
		d.HasSeamSpawnpoint = true
		placed++
	}
}

// seamTekiOffset nudges a seam teki off the door's exact threshold and
// into the unit the door faces away from, so it doesn't render stacked
// on top of the doorway itself (spec.md:115's "rotation/offset derive
// from the door's direction").
func seamTekiOffset(dir caveinfo.Direction) layout.Point3 {
	const step = 85.0
	switch dir {
	case 0: // North-facing door: step south into the unit.
		return layout.Point3{Z: step}
	case 1: // East-facing door: step west into the unit.
		return layout.Point3{X: -step}
	case 2: // South-facing door: step north into the unit.
		return layout.Point3{Z: -step}
	case 3: // West-facing door: step east into the unit.
		return layout.Point3{X: step}
	default:
		return layout.Point3{}
	}
}
