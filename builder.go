package pathedit

// PathBuilder constructs an immutable Path from pen-style drawing calls. The
// zero value is an empty builder positioned at the origin; a drawing command
// before any MoveTo starts a subpath at the current position.
type PathBuilder struct {
	subs  []SubPath
	cur   []Command
	start Point
	pos   Point
}

func (b *PathBuilder) flush() {
	if len(b.cur) != 0 {
		b.subs = append(b.subs, SubPath{cmds: b.cur})
		b.cur = nil
	}
}

// open makes sure a subpath is in progress, starting one with an implicit
// move at the current position when needed.
func (b *PathBuilder) open() {
	if len(b.cur) == 0 {
		b.start = b.pos
		b.cur = append(b.cur, moveTo(b.pos))
	}
}

// MoveTo starts a new subpath at (x,y).
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.flush()
	b.pos = Point{x, y}
	b.open()
	return b
}

// LineTo adds a line towards (x,y).
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.open()
	end := Point{x, y}
	b.cur = append(b.cur, newCommand(LineToCmd, b.pos, end))
	b.pos = end
	return b
}

// QuadTo adds a quadratic Bézier with control point (cpx,cpy) towards (x,y).
func (b *PathBuilder) QuadTo(cpx, cpy, x, y float64) *PathBuilder {
	b.open()
	end := Point{x, y}
	b.cur = append(b.cur, newCommand(QuadToCmd, b.pos, Point{cpx, cpy}, end))
	b.pos = end
	return b
}

// CubeTo adds a cubic Bézier with control points (cpx1,cpy1) and (cpx2,cpy2)
// towards (x,y).
func (b *PathBuilder) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) *PathBuilder {
	b.open()
	end := Point{x, y}
	b.cur = append(b.cur, newCommand(CubeToCmd, b.pos, Point{cpx1, cpy1}, Point{cpx2, cpy2}, end))
	b.pos = end
	return b
}

// Close closes the current subpath with a straight segment back to its start
// point and ends it. A following drawing command starts a new subpath at the
// start point.
func (b *PathBuilder) Close() *PathBuilder {
	b.open()
	b.cur = append(b.cur, newCommand(CloseCmd, b.pos, b.start))
	b.pos = b.start
	b.flush()
	return b
}

// Build returns the constructed Path. The builder must not be used
// afterwards.
func (b *PathBuilder) Build() *Path {
	b.flush()
	return newPath(b.subs, nil)
}
