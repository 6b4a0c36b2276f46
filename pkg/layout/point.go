package layout

import "github.com/dshills/caveripper/pkg/pikmath"

// Point2 is a 2D float coordinate (x, z in the game's ground plane).
type Point2 struct {
	X, Z float32
}

// Point3 is a 3D float coordinate (x, y, z) — y is the vertical axis.
type Point3 struct {
	X, Y, Z float32
}

// Dist2 returns the game-faithful (frsqrte-based) 2D distance between
// two points, ignoring Y. Used by the waypoint graph's carry-path
// distances.
func (p Point3) Dist2(other Point3) float32 {
	dx := p.X - other.X
	dz := p.Z - other.Z
	return pikmath.Sqrt(dx*dx + dz*dz)
}

// Dist3 returns the game-faithful 3D distance between two points.
func (p Point3) Dist3(other Point3) float32 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return pikmath.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Add returns the component-wise sum of p and other.
func (p Point3) Add(other Point3) Point3 {
	return Point3{p.X + other.X, p.Y + other.Y, p.Z + other.Z}
}

// TwoD drops the Y component.
func (p Point3) TwoD() Point2 {
	return Point2{p.X, p.Z}
}
