package pathedit

import (
	"fmt"
)

// CommandKind is the kind of a drawing command.
type CommandKind int

const (
	MoveToCmd CommandKind = iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	CloseCmd
)

func (kind CommandKind) String() string {
	switch kind {
	case MoveToCmd:
		return "MoveTo"
	case LineToCmd:
		return "LineTo"
	case QuadToCmd:
		return "QuadTo"
	case CubeToCmd:
		return "CubeTo"
	case CloseCmd:
		return "Close"
	}
	return fmt.Sprintf("CommandKind(%d)", int(kind))
}

// Command is a single immutable drawing command. Its control points run from
// the start point, which coincides with the previous command's end point, to
// the end point. A line carries two points, a quadratic Bézier three and a
// cubic Bézier four. A close usually carries two points and traces a straight
// segment back to the subpath's start; reversing or shifting a closed subpath
// may leave a curve in closing position, in which case the close carries three
// or four points and traces that curve.
type Command struct {
	kind       CommandKind
	pts        []Point
	split      bool
	collapsing bool

	// split partnership, set on the first half produced by a split
	orig    *Command // the command the split halves reassemble into
	partner *Command // the second half created by the same split
}

func newCommand(kind CommandKind, pts ...Point) Command {
	cmd := Command{kind: kind, pts: pts}
	cmd.collapsing = cmd.IsDegenerate()
	return cmd
}

func moveTo(p Point) Command {
	return newCommand(MoveToCmd, p, p)
}

// Kind returns the command's kind.
func (cmd Command) Kind() CommandKind {
	return cmd.kind
}

// Points returns the command's control points, from start to end. The slice
// is a read-only view and must not be modified.
func (cmd Command) Points() []Point {
	return cmd.pts
}

// Start returns the command's start point.
func (cmd Command) Start() Point {
	return cmd.pts[0]
}

// End returns the command's end point.
func (cmd Command) End() Point {
	return cmd.pts[len(cmd.pts)-1]
}

// Split returns true if the command was introduced by a split operation.
func (cmd Command) Split() bool {
	return cmd.split
}

// Collapsing returns true if the command has zero length.
func (cmd Command) Collapsing() bool {
	return cmd.collapsing
}

// IsDegenerate returns true if all control points coincide within epsilon.
func (cmd Command) IsDegenerate() bool {
	for _, p := range cmd.pts[1:] {
		if !p.Equals(cmd.pts[0]) {
			return false
		}
	}
	return true
}

// PointAt evaluates the command at parameter t in [0,1], where t=0 is the
// start point and t=1 the end point. A two-point close evaluates as a line to
// the subpath's start point, a move as its (single) position.
func (cmd Command) PointAt(t float64) Point {
	switch len(cmd.pts) {
	case 2:
		return cmd.pts[0].Interpolate(cmd.pts[1], t)
	case 3:
		p0, p1, p2 := cmd.pts[0], cmd.pts[1], cmd.pts[2]
		s := 1.0 - t
		return Point{
			s*s*p0.X + 2.0*s*t*p1.X + t*t*p2.X,
			s*s*p0.Y + 2.0*s*t*p1.Y + t*t*p2.Y,
		}
	default:
		p0, p1, p2, p3 := cmd.pts[0], cmd.pts[1], cmd.pts[2], cmd.pts[3]
		s := 1.0 - t
		return Point{
			s*s*s*p0.X + 3.0*s*s*t*p1.X + 3.0*s*t*t*p2.X + t*t*t*p3.X,
			s*s*s*p0.Y + 3.0*s*s*t*p1.Y + 3.0*s*t*t*p2.Y + t*t*t*p3.Y,
		}
	}
}

// lengthTolerance is the absolute tolerance to which Bézier arc lengths
// converge, independent of curve scale.
const lengthTolerance = 0.01

// Length returns the command's arc length. It is exact for lines and
// two-point closes, zero for moves, and numerically integrated by adaptive
// subdivision for curves.
func (cmd Command) Length() float64 {
	if cmd.kind == MoveToCmd {
		return 0.0
	}
	if len(cmd.pts) == 2 {
		return cmd.pts[1].Sub(cmd.pts[0]).Hypot()
	}
	return bezierLength(cmd.pts, lengthTolerance, 16)
}

// bezierLength approximates the arc length of a Bézier curve given by its
// control polygon. The chord length is a lower bound and the control polygon
// length an upper bound; subdivide until they agree to within tol.
func bezierLength(pts []Point, tol float64, depth int) float64 {
	chord := pts[len(pts)-1].Sub(pts[0]).Hypot()
	poly := 0.0
	for i := 1; i < len(pts); i++ {
		poly += pts[i].Sub(pts[i-1]).Hypot()
	}
	if poly-chord <= tol || depth == 0 {
		return (2.0*chord + poly) / 3.0
	}
	left, right := subdivideBezier(pts, 0.5)
	return bezierLength(left, tol/2.0, depth-1) + bezierLength(right, tol/2.0, depth-1)
}

// subdivideBezier splits a Bézier control polygon at t using de Casteljau.
func subdivideBezier(pts []Point, t float64) ([]Point, []Point) {
	if len(pts) == 3 {
		p0, p1, p2 := pts[0], pts[1], pts[2]
		q1 := p0.Interpolate(p1, t)
		r1 := p1.Interpolate(p2, t)
		mid := q1.Interpolate(r1, t)
		return []Point{p0, q1, mid}, []Point{mid, r1, p2}
	}
	p0, p1, p2, p3 := pts[0], pts[1], pts[2], pts[3]
	pm := p1.Interpolate(p2, t)
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)
	mid := q2.Interpolate(r1, t)
	return []Point{p0, q1, q2, mid}, []Point{mid, r1, r2, p3}
}

// SplitAt splits the command at parameter t into two commands whose
// concatenation traces the original exactly. Lines and two-point closes split
// into two lines, curves by de Casteljau subdivision into two curves of the
// same degree. The second half keeps a close in closing position. The first
// half is marked as introduced by a split and records the partnership needed
// by UnsplitCommand. Moves cannot be split, and t must lie strictly between 0
// and 1.
func (cmd Command) SplitAt(t float64) (Command, Command, error) {
	if cmd.kind == MoveToCmd {
		return Command{}, Command{}, fmt.Errorf("cannot split move: %w", ErrInvalidParameter)
	}
	if t <= 0.0 || 1.0 <= t {
		return Command{}, Command{}, fmt.Errorf("split parameter %v outside (0,1): %w", t, ErrInvalidParameter)
	}

	var first, second Command
	if len(cmd.pts) == 2 {
		mid := cmd.pts[0].Interpolate(cmd.pts[1], t)
		first = newCommand(LineToCmd, cmd.pts[0], mid)
		second = newCommand(LineToCmd, mid, cmd.pts[1])
	} else {
		left, right := subdivideBezier(cmd.pts, t)
		kind := QuadToCmd
		if len(cmd.pts) == 4 {
			kind = CubeToCmd
		}
		first = newCommand(kind, left...)
		second = newCommand(kind, right...)
	}
	if cmd.kind == CloseCmd {
		second.kind = CloseCmd
	}

	orig := cmd
	partner := second
	first.split = true
	first.orig = &orig
	first.partner = &partner
	return first, second, nil
}

// halfLengthT returns the parameter at which the command's arc length is
// bisected. For lines this is 0.5 exactly; for curves it is found by
// bisection on the left half's arc length.
func (cmd Command) halfLengthT() float64 {
	if len(cmd.pts) == 2 || cmd.IsDegenerate() {
		return 0.5
	}
	target := cmd.Length() / 2.0
	lo, hi := 0.0, 1.0
	for i := 0; i < 32; i++ {
		t := (lo + hi) / 2.0
		left, _ := subdivideBezier(cmd.pts, t)
		if bezierLength(left, lengthTolerance, 16) < target {
			lo = t
		} else {
			hi = t
		}
	}
	return (lo + hi) / 2.0
}

// reverse returns the command with its direction swapped, tracing the same
// geometry from end to start. Split partnerships do not survive reversal.
func (cmd Command) reverse() Command {
	pts := make([]Point, len(cmd.pts))
	for i, p := range cmd.pts {
		pts[len(pts)-1-i] = p
	}
	rev := newCommand(cmd.kind, pts...)
	rev.split = cmd.split
	return rev
}

// asPlain returns the command retagged by its point count: two points become a
// line, three a quadratic and four a cubic. Used when a close rotates out of
// closing position.
func (cmd Command) asPlain() Command {
	plain := cmd
	switch len(cmd.pts) {
	case 2:
		plain.kind = LineToCmd
	case 3:
		plain.kind = QuadToCmd
	default:
		plain.kind = CubeToCmd
	}
	return plain
}

// asClose returns the command retagged as a close, keeping its geometry.
func (cmd Command) asClose() Command {
	cl := cmd
	cl.kind = CloseCmd
	return cl
}

// Equals returns true if both commands have the same kind and equal control
// points within epsilon.
func (cmd Command) Equals(other Command) bool {
	if cmd.kind != other.kind || len(cmd.pts) != len(other.pts) {
		return false
	}
	for i, p := range cmd.pts {
		if !p.Equals(other.pts[i]) {
			return false
		}
	}
	return true
}

func (cmd Command) String() string {
	s := cmd.kind.String() + "("
	for i, p := range cmd.pts {
		if i != 0 {
			s += " "
		}
		s += ftos(p.X) + "," + ftos(p.Y)
	}
	return s + ")"
}
