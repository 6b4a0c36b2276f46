package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/layout"
)

func sampleLayout() *layout.Layout {
	unit := &caveinfo.CaveUnit{UnitFolderName: "start_room", Rotation: 0}
	placed := layout.PlacedMapUnit{
		Unit: unit,
		X:    0,
		Z:    0,
		SpawnPoints: []layout.PlacedSpawnPoint{
			{
				SpawnPointUnit: &caveinfo.SpawnPoint{},
				Pos:            layout.Point3{X: 10, Y: 0, Z: 20},
				Contains:       []layout.SpawnObject{layout.NewShip()},
			},
		},
	}
	return &layout.Layout{
		Sublevel:     "SCx1",
		StartingSeed: 0xDEADBEEF,
		CaveName:     "SCx",
		MapUnits:     []layout.PlacedMapUnit{placed},
	}
}

func TestSlugContainsSeedAndUnits(t *testing.T) {
	l := sampleLayout()
	slug := Slug(l)

	if !strings.HasPrefix(slug, "SCx;0xDEADBEEF;") {
		t.Errorf("Slug() = %q, want prefix \"SCx;0xDEADBEEF;\"", slug)
	}
	if !strings.Contains(slug, "start_room,x0z0r0;") {
		t.Errorf("Slug() = %q, missing placed unit entry", slug)
	}
	if !strings.Contains(slug, "ship,x10z20;") {
		t.Errorf("Slug() = %q, missing ship spawn object entry", slug)
	}
}

func TestJSONRoundTripsStructure(t *testing.T) {
	l := sampleLayout()
	data, err := JSON(l)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["name"] != "SCx1" {
		t.Errorf("decoded name = %v, want SCx1", decoded["name"])
	}
	if decoded["seed"] != float64(0xDEADBEEF) {
		t.Errorf("decoded seed = %v, want %d", decoded["seed"], uint32(0xDEADBEEF))
	}
	ship, _ := decoded["ship"].([]any)
	if len(ship) != 3 || ship[0] != float64(10) || ship[2] != float64(20) {
		t.Errorf("decoded ship = %v, want [10,0,20]", decoded["ship"])
	}
	if decoded["hole"] != nil {
		t.Errorf("decoded hole = %v, want null", decoded["hole"])
	}
	if _, ok := decoded["map_units"].([]any); !ok {
		t.Errorf("decoded map_units = %v, want array", decoded["map_units"])
	}
}
