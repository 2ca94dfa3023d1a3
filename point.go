package pathedit

import (
	"math"
	"strconv"
)

// epsilon is the tolerance below which two coordinates are considered equal.
const epsilon = 1e-10

// Equal returns true if a and b are equal within epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2-D space.
type Point struct {
	X, Y float64
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

func (p Point) Add(a Point) Point {
	return Point{p.X + a.X, p.Y + a.Y}
}

func (p Point) Sub(a Point) Point {
	return Point{p.X - a.X, p.Y - a.Y}
}

func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Hypot returns the distance from the origin.
func (p Point) Hypot() float64 {
	return math.Hypot(p.X, p.Y)
}

// Norm returns the vector scaled to the given length, or the zero point if p
// is (nearly) zero itself.
func (p Point) Norm(length float64) Point {
	d := math.Hypot(p.X, p.Y)
	if Equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns the point at fraction t between p and q. t outside [0,1]
// extrapolates.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// Equals returns true if p and q are equal within epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) String() string {
	return "(" + ftos(p.X) + "," + ftos(p.Y) + ")"
}
