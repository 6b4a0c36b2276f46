package generator

import (
	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/layout"
)

// placeCapTeki implements spec.md §4.3 Phase 7: every DeadEnd cap unit
// rolls cave_info's cap_probability independently; on success, one
// weighted draw from the cap-teki pool is spawned at the cap's single
// spawn point.
func (b *builder) placeCapTeki() {
	if len(b.ci.Caps) == 0 {
		return
	}
	weights := make([]uint32, len(b.ci.Caps))
	for i := range b.ci.Caps {
		weights[i] = b.ci.Caps[i].FillerDistributionWeight
	}

	for ui := range b.units {
		unit := b.units[ui].Unit
		if unit.RoomType != caveinfo.DeadEnd {
			continue
		}
		if len(b.units[ui].SpawnPoints) == 0 {
			continue
		}
		if b.rng.RandF32() >= float32(b.ci.CapProbability) {
			continue
		}
		idx, ok := b.rng.RandIndexWeight(weights)
		if !ok {
			continue
		}
		sp := &b.units[ui].SpawnPoints[0]
		count := uint32(1)
		if b.ci.Caps[idx].MinimumAmount > 1 {
			count = b.ci.Caps[idx].MinimumAmount
		}
		sp.Contains = append(sp.Contains, layout.NewCapTeki(&b.ci.Caps[idx], count))
	}
}
