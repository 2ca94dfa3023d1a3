package pathedit

import (
	"strings"
	"sync"
)

// Path is an immutable ordered collection of subpaths forming one drawable
// shape. A Path is never modified after construction; editing it opens a
// PathMutator that produces a new Path. Two Paths derived from the same
// source share no mutable state and may be used from different goroutines.
type Path struct {
	subs []SubPath
	id   any

	lengthOnce sync.Once
	length     float64
}

func newPath(subs []SubPath, id any) *Path {
	return &Path{subs: subs, id: id}
}

// Empty returns true if the path contains no subpaths.
func (p *Path) Empty() bool {
	return len(p.subs) == 0
}

// SubPaths returns the path's subpaths in order. The slice is a read-only
// view and must not be modified.
func (p *Path) SubPaths() []SubPath {
	return p.subs
}

// SubPath returns the subpath at the given index.
func (p *Path) SubPath(i int) SubPath {
	return p.subs[i]
}

// Commands returns all commands of all subpaths flattened in order.
func (p *Path) Commands() []Command {
	n := 0
	for _, sp := range p.subs {
		n += len(sp.cmds)
	}
	cmds := make([]Command, 0, n)
	for _, sp := range p.subs {
		cmds = append(cmds, sp.cmds...)
	}
	return cmds
}

// ID returns the path's identity token. The token is opaque to the engine and
// is never used for equality; owning collaborators use it to correlate paths
// across state updates.
func (p *Path) ID() any {
	return p.id
}

// Identify returns a path with the same geometry and the given identity
// token.
func (p *Path) Identify(id any) *Path {
	return newPath(p.subs, id)
}

// Length returns the total arc length of the path. It is computed on first
// use and cached for the path's lifetime.
func (p *Path) Length() float64 {
	p.lengthOnce.Do(func() {
		for _, sp := range p.subs {
			p.length += sp.Length()
		}
	})
	return p.length
}

// Equals returns true if both paths have the same subpath structure and equal
// control points within epsilon. Identity tokens are not compared.
func (p *Path) Equals(q *Path) bool {
	if len(p.subs) != len(q.subs) {
		return false
	}
	for i, sp := range p.subs {
		if !sp.Equals(q.subs[i]) {
			return false
		}
	}
	return true
}

// String returns the path serialized as path data, such as "M5 0L5 10z". A
// close that carries a curve (see Command) is written as the curve followed
// by z.
func (p *Path) String() string {
	var sb strings.Builder
	for _, sp := range p.subs {
		for _, cmd := range sp.cmds {
			writeCommand(&sb, cmd)
		}
	}
	return sb.String()
}

func writeCommand(sb *strings.Builder, cmd Command) {
	switch cmd.kind {
	case MoveToCmd:
		sb.WriteByte('M')
		writePoint(sb, cmd.pts[1])
	case LineToCmd:
		sb.WriteByte('L')
		writePoint(sb, cmd.pts[1])
	case QuadToCmd:
		sb.WriteByte('Q')
		writePoint(sb, cmd.pts[1])
		sb.WriteByte(' ')
		writePoint(sb, cmd.pts[2])
	case CubeToCmd:
		sb.WriteByte('C')
		writePoint(sb, cmd.pts[1])
		sb.WriteByte(' ')
		writePoint(sb, cmd.pts[2])
		sb.WriteByte(' ')
		writePoint(sb, cmd.pts[3])
	case CloseCmd:
		if 2 < len(cmd.pts) {
			writeCommand(sb, cmd.asPlain())
		}
		sb.WriteByte('z')
	}
}

func writePoint(sb *strings.Builder, p Point) {
	sb.WriteString(ftos(p.X))
	sb.WriteByte(' ')
	sb.WriteString(ftos(p.Y))
}
