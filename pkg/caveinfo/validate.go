package caveinfo

import "fmt"

// Validate checks the structural contracts the generator relies on
// before generation begins: at least one starting room, well-formed
// door directions and rotations, and non-negative counts. It does not
// check gameplay-level plausibility (e.g. whether the teki pools are
// "balanced") — only the invariants whose violation would otherwise
// cause the generator to abort mid-generation.
func (ci *CaveInfo) Validate() error {
	if ci.NumRooms < 0 {
		return fmt.Errorf("num_rooms: must be >= 0, got %d", ci.NumRooms)
	}
	if ci.MaxMainObjects < 0 {
		return fmt.Errorf("max_main_objects: must be >= 0, got %d", ci.MaxMainObjects)
	}
	if ci.MaxTreasures < 0 {
		return fmt.Errorf("max_treasures: must be >= 0, got %d", ci.MaxTreasures)
	}
	if ci.MaxGates < 0 {
		return fmt.Errorf("max_gates: must be >= 0, got %d", ci.MaxGates)
	}
	if ci.CorridorProbability < 0 || ci.CorridorProbability > 1 {
		return fmt.Errorf("corridor_probability: must be in [0,1], got %f", ci.CorridorProbability)
	}
	if ci.CapProbability < 0 || ci.CapProbability > 1 {
		return fmt.Errorf("cap_probability: must be in [0,1], got %f", ci.CapProbability)
	}

	hasStartingRoom := false
	for i, unit := range ci.Units {
		if err := unit.validate(); err != nil {
			return fmt.Errorf("units[%d] (%s): %w", i, unit.UnitFolderName, err)
		}
		if unit.IsStartingRoom && unit.RoomType == Room {
			hasStartingRoom = true
		}
	}
	if !hasStartingRoom {
		return fmt.Errorf("units: no starting room declared among %d unit(s)", len(ci.Units))
	}

	return nil
}

func (u *CaveUnit) validate() error {
	if u.Rotation < 0 || u.Rotation > 3 {
		return fmt.Errorf("rotation %d out of range [0,3]", u.Rotation)
	}
	for i, door := range u.Doors {
		if door.Direction < 0 || door.Direction > 3 {
			return fmt.Errorf("door[%d]: direction %d out of range [0,3]", i, door.Direction)
		}
		for j, link := range door.DoorLinks {
			if link.TargetDoorIdx < 0 || link.TargetDoorIdx >= len(u.Doors) {
				return fmt.Errorf("door[%d].links[%d]: target door index %d out of range", i, j, link.TargetDoorIdx)
			}
		}
	}
	return nil
}
