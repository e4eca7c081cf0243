package selector

import "math"

// degenerateLineLength is the threshold below which the knee line is
// treated as a single point: every candidate then contributes distance 0
// (spec.md §4.7).
const degenerateLineLength = 1e-12

// Point is a coordinate pair in 2-objective space.
type Point struct{ X, Y float64 }

// Kneeness computes perpendicular distance to a reference line through two
// endpoint Points, exposed standalone so the geometry can be exercised
// without a full solution front.
type Kneeness struct{}

// Compute returns the perpendicular distance from p to the line through p0
// and p1: v = p1-p0, L = |v|; if L < degenerateLineLength return 0;
// u = v/L, w = p-p0; the perpendicular component is w minus its
// projection onto u, and its norm is returned (spec.md §4.7).
func (Kneeness) Compute(p0, p1, p Point) float64 {
	vx, vy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(vx, vy)
	if length < degenerateLineLength {
		return 0
	}

	ux, uy := vx/length, vy/length
	wx, wy := p.X-p0.X, p.Y-p0.Y
	proj := wx*ux + wy*uy
	perpX, perpY := wx-proj*ux, wy-proj*uy

	return math.Hypot(perpX, perpY)
}
