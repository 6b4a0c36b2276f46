package generator

import (
	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/caverippererr"
	"github.com/dshills/caveripper/pkg/layout"
	"github.com/dshills/caveripper/pkg/prng"
	"github.com/dshills/caveripper/pkg/sublevel"
)

// builder threads the PRNG and in-progress unit list through the seven
// generation phases. It is unexported: callers only ever see the
// finished *layout.Layout Generate returns.
type builder struct {
	rng *prng.PRNG
	ci  *caveinfo.CaveInfo

	units []layout.PlacedMapUnit

	numRoomsPlaced int
}

// Generate produces the exact layout the game would produce for seed
// given caveinfo, per spec.md §6's core entry point. ci must already
// satisfy caveinfo.CaveInfo.Validate; Generate panics (via
// caverippererr.Abort) on any contract violation it discovers during
// generation, since at that point CaveInfo's own validation has already
// run and anything further wrong is a logic bug, not a runtime
// condition (spec.md §7).
func Generate(seed prng.Seed, ci *caveinfo.CaveInfo) *layout.Layout {
	if err := ci.Validate(); err != nil {
		caverippererr.Abort("caveinfo", err.Error())
	}

	b := &builder{
		rng: prng.New(seed),
		ci:  ci,
	}

	b.placeStartRoom()
	b.generateMapUnits()
	b.placeCapUnits()
	b.computeScores()
	b.placeKeyItems()
	b.placeMainObjects()
	b.placeCapTeki()

	sl := sublevel.New(ci.CaveName, ci.FloorNum)

	return &layout.Layout{
		Sublevel:     sl.ShortName(),
		StartingSeed: uint32(seed),
		CaveName:     ci.CaveName,
		MapUnits:     b.units,
	}
}
