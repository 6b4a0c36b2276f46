package export

import (
	"encoding/json"
	"os"

	"github.com/dshills/caveripper/pkg/layout"
)

// jsonLayout is the wire shape for a Layout, pinned to spec.md §6's
// documented JSON export: a flat [x,y,z] array (or null) for the three
// key-item spawns, map units carrying their own width/height/rotation
// (with "y" holding the grid Z, per the original's field naming), and
// teki/treasures/gates as separate flat arrays rather than a single
// tagged union.
type jsonLayout struct {
	Name      string        `json:"name"`
	Seed      uint32        `json:"seed"`
	Ship      *[3]float32   `json:"ship"`
	Hole      *[3]float32   `json:"hole"`
	Geyser    *[3]float32   `json:"geyser"`
	MapUnits  []jsonMapUnit `json:"map_units"`
	Teki      []jsonTeki    `json:"teki"`
	Treasures []jsonObject  `json:"treasures"`
	Gates     []jsonObject  `json:"gates"`
}

type jsonMapUnit struct {
	Name     string `json:"name"`
	Width    uint16 `json:"width"`
	Height   uint16 `json:"height"`
	X        int32  `json:"x"`
	Y        int32  `json:"y"`
	Rotation int    `json:"rotation"`
}

type jsonTeki struct {
	Name     string  `json:"name"`
	X        float32 `json:"x"`
	Z        float32 `json:"z"`
	Carrying *string `json:"carrying,omitempty"`
}

type jsonObject struct {
	Name string  `json:"name"`
	X    float32 `json:"x"`
	Z    float32 `json:"z"`
}

func point3Array(p layout.Point3) [3]float32 {
	return [3]float32{p.X, p.Y, p.Z}
}

func toJSONLayout(l *layout.Layout) jsonLayout {
	out := jsonLayout{
		Name: l.Sublevel,
		Seed: l.StartingSeed,
	}

	for _, unit := range l.MapUnits {
		out.MapUnits = append(out.MapUnits, jsonMapUnit{
			Name:     unit.Unit.UnitFolderName,
			Width:    unit.Unit.Width,
			Height:   unit.Unit.Height,
			X:        unit.X,
			Y:        unit.Z,
			Rotation: unit.Unit.Rotation,
		})
	}

	for _, placement := range l.GetSpawnObjects() {
		so := placement.Object
		switch so.Kind {
		case layout.KindShip:
			pos := point3Array(placement.Pos)
			out.Ship = &pos
		case layout.KindHole:
			pos := point3Array(placement.Pos)
			out.Hole = &pos
		case layout.KindGeyser:
			pos := point3Array(placement.Pos)
			out.Geyser = &pos
		case layout.KindTeki, layout.KindCapTeki:
			jt := jsonTeki{
				Name: so.Name(),
				X:    placement.Pos.X,
				Z:    placement.Pos.Z,
			}
			if carrying := so.CarryingName(); carrying != "" {
				jt.Carrying = &carrying
			}
			out.Teki = append(out.Teki, jt)
		case layout.KindItem:
			out.Treasures = append(out.Treasures, jsonObject{
				Name: so.Name(),
				X:    placement.Pos.X,
				Z:    placement.Pos.Z,
			})
		case layout.KindGate:
			out.Gates = append(out.Gates, jsonObject{
				Name: so.Name(),
				X:    placement.Pos.X,
				Z:    placement.Pos.Z,
			})
		}
	}

	return out
}

// JSON serializes l to indented JSON for human-readable output, per
// spec.md §6's documented Layout serialization shape.
func JSON(l *layout.Layout) ([]byte, error) {
	return json.MarshalIndent(toJSONLayout(l), "", "  ")
}

// JSONCompact serializes l to JSON without indentation, for storage or
// transmission.
func JSONCompact(l *layout.Layout) ([]byte, error) {
	return json.Marshal(toJSONLayout(l))
}

// SaveJSONToFile writes l's indented JSON form to path.
func SaveJSONToFile(l *layout.Layout, path string) error {
	data, err := JSON(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
