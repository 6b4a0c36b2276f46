package generator

import (
	"testing"

	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/layout"
	"github.com/dshills/caveripper/pkg/prng"
)

// fixtureCaveInfo builds a small but complete CaveInfo: a starting room
// with a ship spawn point and one door (east), a single-door hallway
// that can close the loop back to the start, and a dead-end cap for any
// door generation leaves open. It exercises every phase without
// depending on any real game data file.
func fixtureCaveInfo() *caveinfo.CaveInfo {
	startRoom := caveinfo.CaveUnit{
		UnitFolderName: "start_room",
		RoomType:       caveinfo.Room,
		Width:          2,
		Height:         2,
		Rotation:       0,
		IsStartingRoom: true,
		Doors: []caveinfo.DoorUnit{
			{Direction: 1, SideLateralOffset: 0},
		},
		SpawnPoints: []caveinfo.SpawnPoint{
			{Pos: [3]float32{0, 0, 0}, Type: caveinfo.SpawnShip, MaxSpawn: 1},
			{Pos: [3]float32{50, 0, 50}, Type: caveinfo.SpawnTekiOrItem, MaxSpawn: 1},
		},
	}

	// A single-door hallway: it only has the one door used to attach it
	// to the starting room, so the layout closes after one Phase 2 step
	// instead of chaining corridors out indefinitely.
	hallway := caveinfo.CaveUnit{
		UnitFolderName: "hall_straight",
		RoomType:       caveinfo.Hallway,
		Width:          1,
		Height:         1,
		Rotation:       0,
		Doors: []caveinfo.DoorUnit{
			{Direction: 3, SideLateralOffset: 0},
		},
		SpawnPoints: []caveinfo.SpawnPoint{
			{Pos: [3]float32{0, 0, 0}, Type: caveinfo.SpawnHoleOrGeyser, MaxSpawn: 1},
		},
	}

	cap := caveinfo.CaveUnit{
		UnitFolderName: "cap",
		RoomType:       caveinfo.DeadEnd,
		Width:          1,
		Height:         1,
		Rotation:       0,
		Doors: []caveinfo.DoorUnit{
			{Direction: 3, SideLateralOffset: 0},
		},
		SpawnPoints: []caveinfo.SpawnPoint{
			{Pos: [3]float32{0, 0, 0}, Type: caveinfo.SpawnTekiOrItem, MaxSpawn: 1},
		},
	}

	return &caveinfo.CaveInfo{
		FloorNum:            1,
		CaveName:            "SCx",
		MaxMainObjects:      4,
		MaxTreasures:        2,
		MaxGates:            0,
		NumRooms:            1,
		CorridorProbability: 0.3,
		CapProbability:      0.5,
		Items: []caveinfo.ItemInfo{
			{InternalName: "marble", MinAmount: 1, FillerDistributionWeight: 1},
		},
		Caps: []caveinfo.CapInfo{
			{InternalName: "bulborb_larva", MinimumAmount: 0, FillerDistributionWeight: 1},
		},
		Units: []caveinfo.CaveUnit{startRoom, hallway, cap},
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	ci := fixtureCaveInfo()
	a := generateForTest(t, 0x12345678, ci)
	b := generateForTest(t, 0x12345678, ci)

	if len(a.MapUnits) != len(b.MapUnits) {
		t.Fatalf("same seed produced different unit counts: %d vs %d", len(a.MapUnits), len(b.MapUnits))
	}
	for i := range a.MapUnits {
		if a.MapUnits[i].X != b.MapUnits[i].X || a.MapUnits[i].Z != b.MapUnits[i].Z {
			t.Fatalf("unit %d placed differently across runs: (%d,%d) vs (%d,%d)",
				i, a.MapUnits[i].X, a.MapUnits[i].Z, b.MapUnits[i].X, b.MapUnits[i].Z)
		}
	}
}

func TestGenerateHasNoOverlappingUnits(t *testing.T) {
	ci := fixtureCaveInfo()
	l := generateForTest(t, 0xCAFEF00D, ci)

	for i := 0; i < len(l.MapUnits); i++ {
		for j := i + 1; j < len(l.MapUnits); j++ {
			if l.MapUnits[i].Overlaps(l.MapUnits[j]) {
				t.Fatalf("units %d and %d overlap", i, j)
			}
		}
	}
}

func TestGenerateEveryDoorPairedOrCapped(t *testing.T) {
	ci := fixtureCaveInfo()
	l := generateForTest(t, 0x0BADC0DE, ci)

	for ui, unit := range l.MapUnits {
		for di, d := range unit.Doors {
			if !d.Paired.Valid() && !d.MarkedAsCap {
				t.Fatalf("unit %d door %d is neither paired nor capped", ui, di)
			}
		}
	}
}

func TestGeneratePairedDoorsAreMutual(t *testing.T) {
	ci := fixtureCaveInfo()
	l := generateForTest(t, 0x1, ci)

	for ui, unit := range l.MapUnits {
		for di, d := range unit.Doors {
			if !d.Paired.Valid() {
				continue
			}
			partner := l.MapUnits[d.Paired.UnitIdx].Doors[d.Paired.DoorIdx]
			if partner.Paired.UnitIdx != ui || partner.Paired.DoorIdx != di {
				t.Fatalf("door (%d,%d) pairs to (%d,%d) but that door doesn't pair back",
					ui, di, d.Paired.UnitIdx, d.Paired.DoorIdx)
			}
			if !d.LinesUpWith(partner) {
				t.Fatalf("paired doors (%d,%d) and (%d,%d) do not line up", ui, di, d.Paired.UnitIdx, d.Paired.DoorIdx)
			}
		}
	}
}

func TestGenerateExactlyOneShip(t *testing.T) {
	ci := fixtureCaveInfo()
	l := generateForTest(t, 0x2, ci)

	count := 0
	for _, placement := range l.GetSpawnObjects() {
		if placement.Object.Kind == layout.KindShip {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("GetSpawnObjects() contains %d ships, want exactly 1", count)
	}
}

func TestGenerateAtMostOneHoleOrGeyser(t *testing.T) {
	ci := fixtureCaveInfo()
	l := generateForTest(t, 0x3, ci)

	count := 0
	for _, placement := range l.GetSpawnObjects() {
		if placement.Object.Kind == layout.KindHole || placement.Object.Kind == layout.KindGeyser {
			count++
		}
	}
	if count > 1 {
		t.Fatalf("GetSpawnObjects() contains %d hole/geyser objects, want at most 1", count)
	}
}

func TestGenerateAbortsWithNoStartingRoom(t *testing.T) {
	ci := fixtureCaveInfo()
	ci.Units[0].IsStartingRoom = false

	defer func() {
		if recover() == nil {
			t.Fatal("Generate did not panic with no declared starting room")
		}
	}()
	generator := func() { Generate(prng.Seed(1), ci) }
	generator()
}

func generateForTest(t *testing.T, seed uint32, ci *caveinfo.CaveInfo) *layout.Layout {
	t.Helper()
	return Generate(prng.Seed(seed), ci)
}
