package generator

import (
	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/layout"
)

// spawnPointRef locates one PlacedSpawnPoint by its owning unit and
// index within that unit's SpawnPoints slice.
type spawnPointRef struct {
	unitIdx, spawnIdx int
}

// placeKeyItems implements spec.md §4.3 Phase 5: the Ship goes on the
// starting room's dedicated ship spawn point, and exactly one Hole (or,
// on the final floor, a Geyser) goes on the highest-scoring spawn point
// reserved for it. Ties break toward the lowest unit index, then the
// lowest spawn point index, matching Phase 2's placement order.
func (b *builder) placeKeyItems() {
	b.placeShip()
	b.placeHoleOrGeyser()
}

func (b *builder) placeShip() {
	for ui := range b.units {
		for si := range b.units[ui].SpawnPoints {
			sp := &b.units[ui].SpawnPoints[si]
			if sp.SpawnPointUnit.Type == caveinfo.SpawnShip {
				sp.Contains = append(sp.Contains, layout.NewShip())
				return
			}
		}
	}
	// No dedicated ship spawn point declared: fall back to the start
	// room's first spawn point so every layout still has exactly one
	// Ship, per spec.md's "exactly one Ship" invariant.
	if len(b.units) > 0 && len(b.units[0].SpawnPoints) > 0 {
		b.units[0].SpawnPoints[0].Contains = append(b.units[0].SpawnPoints[0].Contains, layout.NewShip())
	}
}

func (b *builder) placeHoleOrGeyser() {
	best := spawnPointRef{-1, -1}
	var bestScore uint32

	for ui := range b.units {
		for si := range b.units[ui].SpawnPoints {
			sp := &b.units[ui].SpawnPoints[si]
			if sp.SpawnPointUnit.Type != caveinfo.SpawnHoleOrGeyser {
				continue
			}
			if best.unitIdx == -1 || sp.HoleScore > bestScore {
				best = spawnPointRef{ui, si}
				bestScore = sp.HoleScore
			}
		}
	}
	if best.unitIdx == -1 {
		return
	}

	sp := &b.units[best.unitIdx].SpawnPoints[best.spawnIdx]
	if b.ci.IsFinalFloor {
		sp.Contains = append(sp.Contains, layout.NewGeyser(false))
	} else {
		sp.Contains = append(sp.Contains, layout.NewHole(false))
	}
}
