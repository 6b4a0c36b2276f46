package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/caveripper/pkg/layout"
)

// Slug renders l as a single-line, comma-and-semicolon-delimited string:
// cave name, starting seed, the placed map units, then every spawn
// object sorted lexically. It exists purely for test comparison and
// quick seed-to-seed diffing, so readability takes a back seat to a
// stable, total ordering — see spec.md §4.7.
func Slug(l *layout.Layout) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s;", l.CaveName)
	fmt.Fprintf(&b, "0x%08X;", l.StartingSeed)

	b.WriteByte('[')
	for _, unit := range l.MapUnits {
		fmt.Fprintf(&b, "%s,x%dz%dr%d;", unit.Unit.UnitFolderName, unit.X, unit.Z, unit.Unit.Rotation)
	}
	b.WriteString("];")

	var objectSlugs []string
	for _, unit := range l.MapUnits {
		for _, sp := range unit.SpawnPoints {
			for _, so := range sp.Contains {
				pos := sp.Pos
				if so.Kind == layout.KindTeki {
					pos = pos.Add(so.TekiOffset)
				}
				objectSlugs = append(objectSlugs, spawnObjectSlug(so, pos))
			}
		}
		for _, door := range unit.Doors {
			if !door.HasSeamSpawnpoint {
				continue
			}
			pos := door.Center()
			if door.SeamSpawnpoint.Kind == layout.KindTeki {
				pos = pos.Add(door.SeamSpawnpoint.TekiOffset)
			}
			objectSlugs = append(objectSlugs, spawnObjectSlug(door.SeamSpawnpoint, pos))
		}
	}

	b.WriteByte('[')
	sort.Strings(objectSlugs)
	for _, s := range objectSlugs {
		b.WriteString(s)
	}
	b.WriteString("];")

	return b.String()
}

// spawnObjectSlug formats one placed object at its resolved world
// position, matching each SpawnObjectKind's field set.
func spawnObjectSlug(so layout.SpawnObject, pos layout.Point3) string {
	x, z := int32(pos.X), int32(pos.Z)
	switch so.Kind {
	case layout.KindTeki, layout.KindCapTeki:
		carrying := so.CarryingName()
		if carrying == "" {
			carrying = "none"
		}
		method := so.SpawnMethod()
		if method == "" {
			method = "0"
		}
		return fmt.Sprintf("%s,carrying:%s,spawn_method:%s,x%dz%d;", so.Name(), carrying, method, x, z)
	case layout.KindItem:
		return fmt.Sprintf("%s,x%dz%d;", so.Name(), x, z)
	case layout.KindGate:
		return fmt.Sprintf("GATE,hp%g,x%dz%d;", so.Gate.Health, x, z)
	default:
		return fmt.Sprintf("%s,x%dz%d;", so.Name(), x, z)
	}
}
