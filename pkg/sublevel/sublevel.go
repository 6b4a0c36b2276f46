// Package sublevel identifies a single floor of a cave: a cave
// short-name plus a floor number, the pair that uniquely names a
// sublevel (e.g. "SCx7", "SH6", "FC3").
package sublevel

import "fmt"

// Sublevel names one floor of a cave.
type Sublevel struct {
	CaveName string
	Floor    int
}

// ShortName renders the conventional "<cave><floor>" form, e.g. "SCx7"
// for the Shower Room's 7th floor, or "SH6" for the Subterranean
// Complex's 6th floor. Caves whose short name already prefixes the
// floor digit with a letter carry that letter as part of CaveName; this
// function only appends the numeric floor.
func (s Sublevel) ShortName() string {
	return fmt.Sprintf("%s%d", s.CaveName, s.Floor)
}

// New builds a Sublevel from a cave name and floor number.
func New(caveName string, floor int) Sublevel {
	return Sublevel{CaveName: caveName, Floor: floor}
}
