package layout

import (
	"sync"

	"github.com/dshills/caveripper/pkg/caveinfo"
)

// GridScale is the number of world units per grid cell (spec.md §3).
const GridScale = 170.0

// DoorRef is a cross-unit reference to a specific door, expressed as
// flat indices into Layout.MapUnits[UnitIdx].Doors[DoorIdx] rather than
// a pointer — see package doc.
type DoorRef struct {
	UnitIdx int
	DoorIdx int
}

// Valid reports whether r refers to an actual door, i.e. both indices
// are non-negative. The zero DoorRef is door 0 of unit 0 and is valid;
// "no door" is the noDoor sentinel (-1, -1).
func (r DoorRef) Valid() bool {
	return r.UnitIdx >= 0 && r.DoorIdx >= 0
}

// noDoor is the sentinel "no paired door yet" reference.
var noDoor = DoorRef{UnitIdx: -1, DoorIdx: -1}

// Layout is a fully generated sublevel layout: a seed and a CaveInfo in,
// a complete placement of map units, doors, and spawn point contents
// out. Layouts are created once by generator.Generate and are
// thereafter immutable except for the lazily-computed waypoint graph
// cache.
type Layout struct {
	Sublevel      string
	StartingSeed  uint32
	CaveName      string
	MapUnits      []PlacedMapUnit

	waypointOnce  sync.Once
	waypointCache any
}

// WaypointCache provides single-assignment, lazy-build memoization for
// the derived waypoint graph (spec.md §9: "single-assignment cell on
// the Layout; computed on first read"). The concrete *waypoint.Graph
// type cannot live in this package without an import cycle, so
// pkg/waypoint's For(l) function calls this with its own builder and
// type-asserts the result.
func (l *Layout) WaypointCache(build func() any) any {
	l.waypointOnce.Do(func() {
		l.waypointCache = build()
	})
	return l.waypointCache
}

// PlacedMapUnit is a CaveUnit placed at a grid position, with its doors
// and spawn points translated into layout-global coordinates.
type PlacedMapUnit struct {
	Unit *caveinfo.CaveUnit
	X, Z int32

	Doors       []PlacedDoor
	SpawnPoints []PlacedSpawnPoint

	TekiScore  uint32
	TotalScore uint32
}

// PlacedDoor is one door of a PlacedMapUnit, in global grid coordinates.
type PlacedDoor struct {
	X, Z int32

	DoorUnit *caveinfo.DoorUnit

	// ParentIdx is the index of the owning PlacedMapUnit within
	// Layout.MapUnits.
	ParentIdx int

	MarkedAsCap bool

	// Paired is the back-reference to this door's mutual partner, or
	// noDoor if the door is not yet paired (or is a cap with no
	// partner). See Valid().
	Paired DoorRef

	// DoorScore is nil (HasDoorScore==false) until Phase 4 computes it.
	DoorScore    uint32
	HasDoorScore bool

	SeamTekiScore uint32

	// SeamSpawnpoint is the object attached to this door's seam, if any
	// (spec.md §4.3 Phase 6: seam teki / gates).
	SeamSpawnpoint    SpawnObject
	HasSeamSpawnpoint bool
}

// Facing reports whether this door and other face opposite directions
// (spec.md's "differ by 2 mod 4" rule).
func (d PlacedDoor) Facing(other PlacedDoor) bool {
	diff := int(d.DoorUnit.Direction) - int(other.DoorUnit.Direction)
	if diff < 0 {
		diff = -diff
	}
	return diff == 2
}

// LinesUpWith reports whether d and other occupy the same global
// position and face opposite directions — the pairing condition used
// throughout Phase 2.
func (d PlacedDoor) LinesUpWith(other PlacedDoor) bool {
	return d.Facing(other) && d.X == other.X && d.Z == other.Z
}

// Center returns the door's 3D world-space center, per spec.md's "Door
// center on an even direction sits at (x*170+85, z*170); odd direction
// at (x*170, z*170+85)" coordinate rule.
func (d PlacedDoor) Center() Point3 {
	x := float32(d.X) * GridScale
	z := float32(d.Z) * GridScale
	if int(d.DoorUnit.Direction)%2 == 0 {
		x += 85.0
	} else {
		z += 85.0
	}
	return Point3{X: x, Y: 0, Z: z}
}

// PlacedSpawnPoint is a SpawnPoint translated into global world
// coordinates, with the objects ultimately placed there.
type PlacedSpawnPoint struct {
	SpawnPointUnit *caveinfo.SpawnPoint
	Pos            Point3
	Angle          float32

	HoleScore     uint32
	TreasureScore uint32

	Contains []SpawnObject
}

// NewPlacedMapUnit places unit at grid (x, z), translating its doors and
// spawn points into global coordinates per spec.md §4.3's coordinate
// rules. Door pairings are left unset (noDoor) for the caller (Phase 2)
// to fill in.
func NewPlacedMapUnit(unit *caveinfo.CaveUnit, x, z int32) PlacedMapUnit {
	doors := make([]PlacedDoor, len(unit.Doors))
	for i := range unit.Doors {
		door := &unit.Doors[i]
		var dx, dz int32
		switch door.Direction {
		case 0:
			dx, dz = x+int32(door.SideLateralOffset), z
		case 1:
			dx, dz = x+int32(unit.Width), z+int32(door.SideLateralOffset)
		case 2:
			dx, dz = x+int32(door.SideLateralOffset), z+int32(unit.Height)
		case 3:
			dx, dz = x, z+int32(door.SideLateralOffset)
		default:
			panic("invalid door direction")
		}
		doors[i] = PlacedDoor{
			X:            dx,
			Z:            dz,
			DoorUnit:     door,
			ParentIdx:    -1,
			Paired:       noDoor,
			DoorScore:    0,
			HasDoorScore: false,
		}
	}

	spawnPoints := make([]PlacedSpawnPoint, len(unit.SpawnPoints))
	baseX := (float32(x) + float32(unit.Width)/2.0) * GridScale
	baseZ := (float32(z) + float32(unit.Height)/2.0) * GridScale
	for i := range unit.SpawnPoints {
		sp := &unit.SpawnPoints[i]
		px, py, pz := sp.Pos[0], sp.Pos[1], sp.Pos[2]
		var actualX, actualZ float32
		switch unit.Rotation {
		case 0:
			actualX, actualZ = baseX+px, baseZ+pz
		case 1:
			actualX, actualZ = baseX-pz, baseZ+px
		case 2:
			actualX, actualZ = baseX-px, baseZ-pz
		case 3:
			actualX, actualZ = baseX+pz, baseZ-px
		default:
			panic("invalid room rotation")
		}
		angle := float32Mod(sp.AngleDegrees-float32(unit.Rotation)*90.0, 360.0)
		spawnPoints[i] = PlacedSpawnPoint{
			SpawnPointUnit: sp,
			Pos:            Point3{X: actualX, Y: py, Z: actualZ},
			Angle:          angle,
		}
	}

	return PlacedMapUnit{
		Unit:        unit,
		X:           x,
		Z:           z,
		Doors:       doors,
		SpawnPoints: spawnPoints,
	}
}

func float32Mod(a, b float32) float32 {
	m := a
	for m < 0 {
		m += b
	}
	for m >= b {
		m -= b
	}
	return m
}

// Overlaps reports whether two placed map units' footprints intersect,
// using the AABB test from spec.md §3.
func (u PlacedMapUnit) Overlaps(other PlacedMapUnit) bool {
	return BoxesOverlap(u.X, u.Z, u.Unit.Width, u.Unit.Height, other.X, other.Z, other.Unit.Width, other.Unit.Height)
}

// BoxesOverlap is the grid AABB overlap test spec.md §3/§4.3 specify.
func BoxesOverlap(x1, z1 int32, w1, h1 uint16, x2, z2 int32, w2, h2 uint16) bool {
	return !(x1+int32(w1) <= x2 || x2+int32(w2) <= x1 || z1+int32(h1) <= z2 || z2+int32(h2) <= z1)
}

// SpawnObjectPlacement pairs a SpawnObject with its resolved world
// position, matching Layout.GetSpawnObjects in the reference
// implementation.
type SpawnObjectPlacement struct {
	Object SpawnObject
	Pos    Point3
}

// GetSpawnObjects iterates every placed SpawnObject in the layout
// (room-spawnpoint contents plus door-seam contents) together with its
// resolved world position.
func (l *Layout) GetSpawnObjects() []SpawnObjectPlacement {
	var out []SpawnObjectPlacement
	for _, unit := range l.MapUnits {
		for _, sp := range unit.SpawnPoints {
			for _, so := range sp.Contains {
				pos := sp.Pos
				if so.Kind == KindTeki {
					pos = pos.Add(so.TekiOffset)
				}
				out = append(out, SpawnObjectPlacement{Object: so, Pos: pos})
			}
		}
		for _, door := range unit.Doors {
			if door.HasSeamSpawnpoint {
				pos := door.Center()
				if door.SeamSpawnpoint.Kind == KindTeki {
					pos = pos.Add(door.SeamSpawnpoint.TekiOffset)
				}
				out = append(out, SpawnObjectPlacement{Object: door.SeamSpawnpoint, Pos: pos})
			}
		}
	}
	return out
}
