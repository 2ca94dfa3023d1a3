package pathedit

import "fmt"

// MorphableWith reports whether p and q are structurally interpolatable: the
// same number of subpaths, pairwise the same command count, and at every
// position the same command kind with the same number of control points.
// Closedness then matches pairwise by construction. No reordering or
// resampling is attempted; callers align structures first, typically with
// matching splits.
func (p *Path) MorphableWith(q *Path) bool {
	if len(p.subs) != len(q.subs) {
		return false
	}
	for i, sp := range p.subs {
		sq := q.subs[i]
		if len(sp.cmds) != len(sq.cmds) {
			return false
		}
		for j, cmd := range sp.cmds {
			if cmd.kind != sq.cmds[j].kind || len(cmd.pts) != len(sq.cmds[j].pts) {
				return false
			}
		}
	}
	return true
}

// Interpolate produces the blend of two morphable paths at the given
// fraction: every control point is interpolated linearly between its
// counterparts, with 0 yielding start and 1 yielding end. Fractions outside
// [0,1] extrapolate linearly, which upstream overshoot easing relies on. It
// fails with ErrNotMorphable if the paths are structurally incompatible.
func Interpolate(start, end *Path, fraction float64) (*Path, error) {
	if !start.MorphableWith(end) {
		return nil, fmt.Errorf("interpolate: %w", ErrNotMorphable)
	}
	subs := make([]SubPath, len(start.subs))
	for i, sp := range start.subs {
		sq := end.subs[i]
		cmds := make([]Command, len(sp.cmds))
		for j, cmd := range sp.cmds {
			pts := make([]Point, len(cmd.pts))
			for k, pt := range cmd.pts {
				pts[k] = pt.Interpolate(sq.cmds[j].pts[k], fraction)
			}
			blend := newCommand(cmd.kind, pts...)
			blend.split = cmd.split
			cmds[j] = blend
		}
		subs[i] = SubPath{cmds: cmds}
	}
	return newPath(subs, nil), nil
}
