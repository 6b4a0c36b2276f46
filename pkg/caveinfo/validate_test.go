package caveinfo

import "testing"

func minimalValidCaveInfo() CaveInfo {
	return CaveInfo{
		FloorNum:            1,
		CaveName:            "SCx",
		MaxMainObjects:      4,
		MaxTreasures:        2,
		MaxGates:            1,
		NumRooms:            3,
		CorridorProbability: 0.4,
		CapProbability:      0.9,
		Units: []CaveUnit{
			{
				UnitFolderName: "start_room",
				RoomType:       Room,
				Width:          2,
				Height:         2,
				Rotation:       0,
				IsStartingRoom: true,
				Doors: []DoorUnit{
					{Direction: 1, SideLateralOffset: 0},
				},
			},
		},
	}
}

func TestValidateAcceptsMinimalCaveInfo(t *testing.T) {
	ci := minimalValidCaveInfo()
	if err := ci.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsNoStartingRoom(t *testing.T) {
	ci := minimalValidCaveInfo()
	ci.Units[0].IsStartingRoom = false
	if err := ci.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for missing starting room")
	}
}

func TestValidateRejectsBadProbability(t *testing.T) {
	ci := minimalValidCaveInfo()
	ci.CorridorProbability = 1.5
	if err := ci.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for out-of-range probability")
	}
}

func TestValidateRejectsBadDoorDirection(t *testing.T) {
	ci := minimalValidCaveInfo()
	ci.Units[0].Doors[0].Direction = 7
	if err := ci.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for invalid door direction")
	}
}

func TestValidateRejectsBadRotation(t *testing.T) {
	ci := minimalValidCaveInfo()
	ci.Units[0].Rotation = 9
	if err := ci.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for invalid rotation")
	}
}
