package waypoint

import (
	"math"
	"testing"

	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/layout"
)

func TestBuildComputesDistanceToShip(t *testing.T) {
	startUnit := &caveinfo.CaveUnit{UnitFolderName: "start", Width: 2, Height: 2}
	isolatedUnit := &caveinfo.CaveUnit{UnitFolderName: "isolated", Width: 2, Height: 2}

	start := layout.NewPlacedMapUnit(startUnit, 0, 0)
	start.SpawnPoints = []layout.PlacedSpawnPoint{
		{SpawnPointUnit: &caveinfo.SpawnPoint{}, Pos: layout.Point3{X: 0, Y: 0, Z: 0}, Contains: []layout.SpawnObject{layout.NewShip()}},
		{SpawnPointUnit: &caveinfo.SpawnPoint{}, Pos: layout.Point3{X: 100, Y: 0, Z: 0}},
	}

	isolated := layout.NewPlacedMapUnit(isolatedUnit, 10, 0)
	isolated.SpawnPoints = []layout.PlacedSpawnPoint{
		{SpawnPointUnit: &caveinfo.SpawnPoint{}, Pos: layout.Point3{X: 1700, Y: 0, Z: 0}},
	}

	l := &layout.Layout{MapUnits: []layout.PlacedMapUnit{start, isolated}}

	g := Build(l)
	if g.shipIdx < 0 {
		t.Fatal("Build() did not find the ship node")
	}
	if g.DistanceToShip(g.shipIdx) != 0 {
		t.Errorf("ship's own distance to itself = %v, want 0", g.DistanceToShip(g.shipIdx))
	}

	sameUnitNode := g.NodeIndexForSpawnPoint(0, 1)
	if sameUnitNode < 0 {
		t.Fatal("NodeIndexForSpawnPoint() did not find the starting room's second spawn point")
	}
	if dist := g.DistanceToShip(sameUnitNode); math.IsInf(float64(dist), 0) || dist != 100 {
		t.Errorf("DistanceToShip() for a same-unit spawn point = %v, want 100", dist)
	}

	isolatedNode := g.NodeIndexForSpawnPoint(1, 0)
	if isolatedNode < 0 {
		t.Fatal("NodeIndexForSpawnPoint() did not find the isolated unit's spawn point")
	}
	if !math.IsInf(float64(g.DistanceToShip(isolatedNode)), 1) {
		t.Errorf("DistanceToShip() for an unconnected unit = %v, want +Inf", g.DistanceToShip(isolatedNode))
	}
}

func TestForCachesGraph(t *testing.T) {
	l := &layout.Layout{}
	g1 := For(l)
	g2 := For(l)
	if g1 != g2 {
		t.Error("For() rebuilt the graph on a second call instead of reusing the cache")
	}
}
