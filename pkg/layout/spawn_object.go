package layout

import "github.com/dshills/caveripper/pkg/caveinfo"

// SpawnObjectKind tags the concrete variant held by a SpawnObject.
type SpawnObjectKind int

const (
	KindTeki SpawnObjectKind = iota
	KindCapTeki
	KindItem
	KindGate
	KindHole
	KindGeyser
	KindShip
)

// SpawnObject is any object that can be placed at a spawn point or door
// seam. It is a tagged union over the seven concrete kinds spec.md §3
// names; only the fields belonging to Kind are meaningful (Teki and
// TekiOffset, CapTeki and NumSpawned, Item, Gate and GateRotation, or
// Plugged for Hole/Geyser; Ship has none).
type SpawnObject struct {
	Kind SpawnObjectKind

	Teki       *caveinfo.TekiInfo
	TekiOffset Point3 // offset from the owning spawn point, for Kind==KindTeki

	CapTeki     *caveinfo.CapInfo
	NumSpawned  uint32 // for Kind==KindCapTeki

	Item *caveinfo.ItemInfo

	Gate         *caveinfo.GateInfo
	GateRotation uint16

	Plugged bool // for Kind==KindHole or Kind==KindGeyser
}

// Name returns the internal name used for slug/JSON export.
func (so SpawnObject) Name() string {
	switch so.Kind {
	case KindTeki:
		return so.Teki.InternalName
	case KindCapTeki:
		return so.CapTeki.InternalName
	case KindItem:
		return so.Item.InternalName
	case KindGate:
		return "gate"
	case KindHole:
		return "hole"
	case KindGeyser:
		return "geyser"
	case KindShip:
		return "ship"
	default:
		return "unknown"
	}
}

// Weight returns the object's filler (or, for gates, spawn) distribution
// weight from its pool entry. Zero for kinds that are never
// filler-placed. The generator's draws read these weights from the pool
// entries directly rather than through this method.
func (so SpawnObject) Weight() uint32 {
	switch so.Kind {
	case KindTeki:
		return so.Teki.FillerDistributionWeight
	case KindCapTeki:
		return so.CapTeki.FillerDistributionWeight
	case KindItem:
		return so.Item.FillerDistributionWeight
	case KindGate:
		return so.Gate.SpawnDistributionWeight
	default:
		return 0
	}
}

// CarryingName returns the treasure name a teki/cap-teki carries, or ""
// if it carries nothing. Used by slug/JSON export's "carrying" field.
func (so SpawnObject) CarryingName() string {
	switch so.Kind {
	case KindTeki:
		if so.Teki.Carrying != nil {
			return so.Teki.Carrying.InternalName
		}
	case KindCapTeki:
		if so.CapTeki.Carrying != nil {
			return so.CapTeki.Carrying.InternalName
		}
	}
	return ""
}

// SpawnMethod returns the spawn-method code for teki/cap-teki, or "" for
// every other kind.
func (so SpawnObject) SpawnMethod() string {
	switch so.Kind {
	case KindTeki:
		return so.Teki.SpawnMethod
	case KindCapTeki:
		return so.CapTeki.SpawnMethod
	}
	return ""
}

// NewTeki builds a Kind==KindTeki SpawnObject.
func NewTeki(info *caveinfo.TekiInfo, offset Point3) SpawnObject {
	return SpawnObject{Kind: KindTeki, Teki: info, TekiOffset: offset}
}

// NewCapTeki builds a Kind==KindCapTeki SpawnObject.
func NewCapTeki(info *caveinfo.CapInfo, numSpawned uint32) SpawnObject {
	return SpawnObject{Kind: KindCapTeki, CapTeki: info, NumSpawned: numSpawned}
}

// NewItem builds a Kind==KindItem SpawnObject.
func NewItem(info *caveinfo.ItemInfo) SpawnObject {
	return SpawnObject{Kind: KindItem, Item: info}
}

// NewGate builds a Kind==KindGate SpawnObject.
func NewGate(info *caveinfo.GateInfo, rotation uint16) SpawnObject {
	return SpawnObject{Kind: KindGate, Gate: info, GateRotation: rotation}
}

// NewHole builds a Kind==KindHole SpawnObject.
func NewHole(plugged bool) SpawnObject {
	return SpawnObject{Kind: KindHole, Plugged: plugged}
}

// NewGeyser builds a Kind==KindGeyser SpawnObject.
func NewGeyser(plugged bool) SpawnObject {
	return SpawnObject{Kind: KindGeyser, Plugged: plugged}
}

// NewShip builds a Kind==KindShip SpawnObject.
func NewShip() SpawnObject {
	return SpawnObject{Kind: KindShip}
}
