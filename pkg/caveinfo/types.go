package caveinfo

// RoomType classifies a CaveUnit's role in map-unit layout.
type RoomType int

const (
	Room RoomType = iota
	Hallway
	DeadEnd
)

// Direction is a door-facing direction: 0=N, 1=E, 2=S, 3=W.
type Direction int

// Opposite returns the direction 180 degrees from d (spec.md's "differ
// by 2 mod 4" pairing rule).
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// CaveInfo is the complete, read-only parameter bundle for one
// sublevel. It is the sole input to the generator; see pkg/generator.
type CaveInfo struct {
	FloorNum int    `json:"floor_num"`
	CaveName string `json:"cave_name"`

	MaxMainObjects      int     `json:"max_main_objects"`
	MaxTreasures        int     `json:"max_treasures"`
	MaxGates            int     `json:"max_gates"`
	NumRooms            int     `json:"num_rooms"`
	CorridorProbability float64 `json:"corridor_probability"`
	CapProbability      float64 `json:"cap_probability"`

	IsFinalFloor bool `json:"is_final_floor"` // last sublevel: places a Geyser instead of a Hole

	Teki  []TekiInfo `json:"teki_info"`
	Items []ItemInfo `json:"item_info"`
	Gates []GateInfo `json:"gate_info"`
	Caps  []CapInfo  `json:"cap_info"`

	Units []CaveUnit `json:"cave_units"`
}

// TekiInfo describes one enemy/treasure-carrier entry in a sublevel's
// teki pool.
type TekiInfo struct {
	InternalName             string    `json:"internal_name"`
	MinimumAmount            uint32    `json:"minimum_amount"`
	FillerDistributionWeight uint32    `json:"filler_distribution_weight"`
	Group                    int       `json:"group"` // 0 = main floor teki, 1 = seam teki, ...
	SpawnMethod              string    `json:"spawn_method,omitempty"`
	Carrying                 *ItemInfo `json:"carrying,omitempty"` // treasure this teki carries, if any
}

// ItemInfo describes a treasure/item pool entry.
type ItemInfo struct {
	InternalName             string `json:"internal_name"`
	MinAmount                uint32 `json:"min_amount"`
	FillerDistributionWeight uint32 `json:"filler_distribution_weight"`
}

// GateInfo describes a gate pool entry.
type GateInfo struct {
	InternalName            string  `json:"internal_name"`
	Health                  float64 `json:"health"`
	SpawnDistributionWeight uint32  `json:"spawn_distribution_weight"`
}

// CapInfo describes a cap-teki pool entry (enemies restricted to
// DeadEnd/cap units).
type CapInfo struct {
	InternalName             string    `json:"internal_name"`
	MinimumAmount            uint32    `json:"minimum_amount"`
	FillerDistributionWeight uint32    `json:"filler_distribution_weight"`
	Group                    int       `json:"group"`
	SpawnMethod              string    `json:"spawn_method,omitempty"`
	Carrying                 *ItemInfo `json:"carrying,omitempty"`
}

// DoorLink is a precomputed shortest connection between two doors of the
// same CaveUnit, used by Phase 4 scoring.
type DoorLink struct {
	TargetDoorIdx int    `json:"target_door_idx"`
	Distance      uint32 `json:"distance"`
}

// DoorUnit is one connectable side of a CaveUnit.
type DoorUnit struct {
	Direction         Direction  `json:"direction"`
	SideLateralOffset int        `json:"side_lateral_offset"`
	DoorLinks         []DoorLink `json:"door_links,omitempty"`
}

// SpawnPoint is a scripted location within a CaveUnit at which objects
// may appear.
type SpawnPoint struct {
	Pos          [3]float32 `json:"pos"` // local (x, y, z)
	AngleDegrees float32    `json:"angle_degrees"`
	Type         int        `json:"type"`
	MinSpawn     int        `json:"min_spawn"`
	MaxSpawn     int        `json:"max_spawn"`
	Radius       float32    `json:"radius"`
}

// SpawnPoint.Type values, per spec.md §3's spawn point taxonomy.
const (
	SpawnTekiOrItem  = 0 // ordinary floor spawn: teki, items, gates
	SpawnShip        = 1 // the Pod (start room only)
	SpawnHoleOrGeyser = 2 // key-item spawn: Hole (or Geyser on the final floor)
)

// CaveUnit is one map-unit building block: a room, hallway, or dead-end
// cap, on the 170-unit grid. Rotated variants of the same base unit
// (rotation in {0,1,2,3}) are distinct CaveUnit values — spec.md's "four
// rotations of each base unit are expanded" invariant.
type CaveUnit struct {
	UnitFolderName string   `json:"unit_folder_name"`
	RoomType       RoomType `json:"room_type"`
	Width          uint16   `json:"width"`
	Height         uint16   `json:"height"`
	Rotation       int      `json:"rotation"`
	IsStartingRoom bool     `json:"is_starting_room"`

	Doors       []DoorUnit   `json:"doors"`
	SpawnPoints []SpawnPoint `json:"spawn_points"`
}
