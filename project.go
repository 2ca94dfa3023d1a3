package pathedit

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Projection is the nearest point on a path to a query point, addressed by
// subpath and command index with the parametric location on that command.
type Projection struct {
	SubPath  int
	Command  int
	T        float64
	Point    Point
	Distance float64
}

// Projection refinement: curves are sampled coarsely and the best bracket is
// narrowed by golden-section search. The iteration bound guarantees
// termination; the parametric tolerance is far below a pixel at any
// reasonable zoom.
const (
	projectSamples   = 16
	projectMaxIters  = 64
	projectTolerance = 1e-9
)

// Project returns the nearest point on the path to q. Move commands carry no
// geometry and are skipped. Ties are broken by the earliest subpath, then the
// earliest command. The second return value is false only for paths without
// any drawn command.
func (p *Path) Project(q Point) (Projection, bool) {
	best := Projection{Distance: math.Inf(1)}
	found := false
	for si, sp := range p.subs {
		for ci, cmd := range sp.cmds {
			if cmd.kind == MoveToCmd {
				continue
			}
			t, pt := projectCommand(cmd, q)
			if d := pt.Sub(q).Hypot(); d < best.Distance {
				best = Projection{SubPath: si, Command: ci, T: t, Point: pt, Distance: d}
				found = true
			}
		}
	}
	return best, found
}

// projectCommand returns the parameter and point on cmd closest to q.
func projectCommand(cmd Command, q Point) (float64, Point) {
	if len(cmd.pts) == 2 {
		a, b := cmd.pts[0], cmd.pts[1]
		dir := b.Sub(a)
		denom := dir.Dot(dir)
		if Equal(denom, 0.0) {
			return 0.0, a
		}
		t := math.Max(0.0, math.Min(1.0, q.Sub(a).Dot(dir)/denom))
		return t, a.Interpolate(b, t)
	}

	// coarse sampling to bracket the minimum
	bestI, bestD := 0, math.Inf(1)
	for i := 0; i <= projectSamples; i++ {
		t := float64(i) / projectSamples
		if d := cmd.PointAt(t).Sub(q).Hypot(); d < bestD {
			bestI, bestD = i, d
		}
	}
	lo := float64(max(bestI-1, 0)) / projectSamples
	hi := float64(min(bestI+1, projectSamples)) / projectSamples

	// golden-section refinement of the bracket
	const invPhi = 0.6180339887498949
	x1 := hi - invPhi*(hi-lo)
	x2 := lo + invPhi*(hi-lo)
	d1 := cmd.PointAt(x1).Sub(q).Hypot()
	d2 := cmd.PointAt(x2).Sub(q).Hypot()
	for i := 0; i < projectMaxIters && projectTolerance < hi-lo; i++ {
		if d1 < d2 {
			hi, x2, d2 = x2, x1, d1
			x1 = hi - invPhi*(hi-lo)
			d1 = cmd.PointAt(x1).Sub(q).Hypot()
		} else {
			lo, x1, d1 = x1, x2, d2
			x2 = lo + invPhi*(hi-lo)
			d2 = cmd.PointAt(x2).Sub(q).Hypot()
		}
	}
	t := (lo + hi) / 2.0
	return t, cmd.PointAt(t)
}

////////////////////////////////////////////////////////////////

// HitOptions configures HitTest. The radii are caller-supplied geometric
// tolerances in the path's local coordinate space; the host derives them from
// its rendering scale. Endpoint and segment hits are tested unless disabled,
// shape (fill) hits only when FindShapes is set.
type HitOptions struct {
	PointRadius   float64
	SegmentRadius float64
	NoPoints      bool
	NoSegments    bool
	FindShapes    bool
}

// HitRef addresses a hit command by subpath and command index. Shape hits
// refer to the whole contour and carry the subpath's leading move.
type HitRef struct {
	SubPath int
	Command int
}

// HitResult lists the endpoint, segment and shape hits of a hit-test, each in
// first-encountered order. The categories are independent and may all be
// populated for the same query.
type HitResult struct {
	Points   []HitRef
	Segments []HitRef
	Shapes   []HitRef
}

// Hit returns true if any category recorded a hit.
func (r HitResult) Hit() bool {
	return 0 < len(r.Points) || 0 < len(r.Segments) || 0 < len(r.Shapes)
}

// HitTest tests q against the path's command end points, its segments and the
// fills of its closed subpaths. q must already be in the path's local
// coordinate space; see Matrix.
func (p *Path) HitTest(q Point, opts HitOptions) HitResult {
	var res HitResult
	for si, sp := range p.subs {
		for ci, cmd := range sp.cmds {
			if !opts.NoPoints && cmd.End().Sub(q).Hypot() <= opts.PointRadius {
				res.Points = append(res.Points, HitRef{si, ci})
			}
			if !opts.NoSegments && cmd.kind != MoveToCmd {
				if _, pt := projectCommand(cmd, q); pt.Sub(q).Hypot() <= opts.SegmentRadius {
					res.Segments = append(res.Segments, HitRef{si, ci})
				}
			}
		}
		if opts.FindShapes && sp.Closed() && !sp.Collapsing() {
			if planar.RingContains(flattenRing(sp), orb.Point{q.X, q.Y}) {
				res.Shapes = append(res.Shapes, HitRef{si, 0})
			}
		}
	}
	return res
}

// flattenSteps is the fixed number of segments a curve contributes to the
// polygon used for fill testing.
const flattenSteps = 16

// flattenRing approximates a closed subpath by a polygon ring.
func flattenRing(sp SubPath) orb.Ring {
	ring := orb.Ring{orb.Point{sp.Start().X, sp.Start().Y}}
	for _, cmd := range sp.cmds[1:] {
		if len(cmd.pts) == 2 {
			ring = append(ring, orb.Point{cmd.End().X, cmd.End().Y})
			continue
		}
		for i := 1; i <= flattenSteps; i++ {
			pt := cmd.PointAt(float64(i) / flattenSteps)
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
	}
	ring = append(ring, ring[0])
	return ring
}
