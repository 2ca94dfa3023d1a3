package pathedit

// SubPath is an ordered sequence of commands forming one contour. The first
// command is always a move; every further command starts at its predecessor's
// end point. SubPaths are immutable, structural edits replace them wholesale
// inside a new Path.
type SubPath struct {
	cmds []Command
}

// Commands returns the subpath's commands in order. The slice is a read-only
// view and must not be modified.
func (sp SubPath) Commands() []Command {
	return sp.cmds
}

// Len returns the number of commands, including the leading move.
func (sp SubPath) Len() int {
	return len(sp.cmds)
}

// Start returns the subpath's start point, the end of its leading move.
func (sp SubPath) Start() Point {
	return sp.cmds[0].End()
}

// End returns the end point of the subpath's last command. For a closed
// subpath this equals Start.
func (sp SubPath) End() Point {
	return sp.cmds[len(sp.cmds)-1].End()
}

// Closed returns true if the subpath's last command is a close.
func (sp SubPath) Closed() bool {
	return sp.cmds[len(sp.cmds)-1].kind == CloseCmd
}

// Collapsing returns true if every command has zero length, that is the whole
// contour degenerates to a single point.
func (sp SubPath) Collapsing() bool {
	for _, cmd := range sp.cmds {
		if !cmd.collapsing {
			return false
		}
	}
	return true
}

// SplitCommands returns the indices of commands that were introduced by a
// split operation, in order.
func (sp SubPath) SplitCommands() []int {
	var idxs []int
	for i, cmd := range sp.cmds {
		if cmd.split {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Length returns the sum of the subpath's command arc lengths.
func (sp SubPath) Length() float64 {
	d := 0.0
	for _, cmd := range sp.cmds {
		d += cmd.Length()
	}
	return d
}

// Equals returns true if both subpaths have the same commands, comparing
// kinds and control points within epsilon.
func (sp SubPath) Equals(other SubPath) bool {
	if len(sp.cmds) != len(other.cmds) {
		return false
	}
	for i, cmd := range sp.cmds {
		if !cmd.Equals(other.cmds[i]) {
			return false
		}
	}
	return true
}
