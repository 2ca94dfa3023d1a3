package pathedit

import "fmt"

// PathMutator accumulates structural edit operations against a source Path
// and builds a new Path; the source is never modified and nothing becomes
// observable before Build. Operations return the mutator so that edits
// compose. The first failing operation records its error, all later
// operations become no-ops and Build returns the error.
//
// Operations address commands by (subpath index, command index) as observed
// on the source path. Splits shift the indices of all subsequent commands in
// the same subpath by one, so whenever two edits on the same subpath could
// invalidate each other's indices, apply the edit with the higher command
// index first.
type PathMutator struct {
	subs [][]Command
	id   any
	err  error
}

// Mutate opens a mutator on the path.
func (p *Path) Mutate() *PathMutator {
	subs := make([][]Command, len(p.subs))
	for i, sp := range p.subs {
		subs[i] = append([]Command(nil), sp.cmds...)
	}
	return &PathMutator{subs: subs, id: p.id}
}

func (m *PathMutator) fail(err error) *PathMutator {
	if m.err == nil {
		m.err = err
	}
	return m
}

// Err returns the first error recorded by a preceding operation, if any.
func (m *PathMutator) Err() error {
	return m.err
}

func (m *PathMutator) checkSub(subIdx int) error {
	if subIdx < 0 || len(m.subs) <= subIdx {
		return fmt.Errorf("subpath %d of %d: %w", subIdx, len(m.subs), ErrIndexOutOfRange)
	}
	return nil
}

func (m *PathMutator) checkCmd(subIdx, cmdIdx int) error {
	if err := m.checkSub(subIdx); err != nil {
		return err
	}
	if cmdIdx < 0 || len(m.subs[subIdx]) <= cmdIdx {
		return fmt.Errorf("command %d of %d in subpath %d: %w", cmdIdx, len(m.subs[subIdx]), subIdx, ErrIndexOutOfRange)
	}
	return nil
}

// SplitCommand splits the command at cmdIdx at parameter t in (0,1) into two
// commands tracing the same geometry. Subsequent commands in the subpath
// shift one index up. The first half is marked as introduced by the split and
// records the partnership needed by UnsplitCommand.
func (m *PathMutator) SplitCommand(subIdx, cmdIdx int, t float64) *PathMutator {
	if m.err != nil {
		return m
	}
	if err := m.checkCmd(subIdx, cmdIdx); err != nil {
		return m.fail(err)
	}
	first, second, err := m.subs[subIdx][cmdIdx].SplitAt(t)
	if err != nil {
		return m.fail(fmt.Errorf("split command %d in subpath %d: %w", cmdIdx, subIdx, err))
	}
	cmds := m.subs[subIdx]
	cmds = append(cmds[:cmdIdx:cmdIdx], append([]Command{first, second}, cmds[cmdIdx+1:]...)...)
	m.subs[subIdx] = cmds
	return m
}

// SplitCommandInHalf splits the command at the parameter that bisects its arc
// length, which for curves is generally not t=0.5.
func (m *PathMutator) SplitCommandInHalf(subIdx, cmdIdx int) *PathMutator {
	if m.err != nil {
		return m
	}
	if err := m.checkCmd(subIdx, cmdIdx); err != nil {
		return m.fail(err)
	}
	return m.SplitCommand(subIdx, cmdIdx, m.subs[subIdx][cmdIdx].halfLengthT())
}

// UnsplitCommand merges the command at cmdIdx, which must have been the first
// half of a split, with its split partner at cmdIdx+1 back into the original
// command. It fails with ErrNotSplit if the command has no recorded partner
// or the partner was edited since the split.
func (m *PathMutator) UnsplitCommand(subIdx, cmdIdx int) *PathMutator {
	if m.err != nil {
		return m
	}
	if err := m.checkCmd(subIdx, cmdIdx); err != nil {
		return m.fail(err)
	}
	cmds := m.subs[subIdx]
	cmd := cmds[cmdIdx]
	if !cmd.split || cmd.orig == nil || cmd.partner == nil {
		return m.fail(fmt.Errorf("command %d in subpath %d: %w", cmdIdx, subIdx, ErrNotSplit))
	}
	if len(cmds) <= cmdIdx+1 || !cmds[cmdIdx+1].Equals(*cmd.partner) {
		return m.fail(fmt.Errorf("command %d in subpath %d: split partner is gone: %w", cmdIdx, subIdx, ErrNotSplit))
	}
	cmds = append(cmds[:cmdIdx:cmdIdx], append([]Command{*cmd.orig}, cmds[cmdIdx+2:]...)...)
	m.subs[subIdx] = cmds
	return m
}

// ReverseSubPath reverses the subpath so that it traces the identical
// geometry backward. The start point of an open subpath becomes its former
// end point; a closed subpath keeps its start point and stays closed. The
// command count never changes, but at the seam of a closed subpath the close
// swaps kinds with the first drawn command, so a close may end up carrying a
// curve. Split partnerships in the subpath do not survive.
func (m *PathMutator) ReverseSubPath(subIdx int) *PathMutator {
	if m.err != nil {
		return m
	}
	if err := m.checkSub(subIdx); err != nil {
		return m.fail(err)
	}
	cmds := m.subs[subIdx]
	if len(cmds) == 1 {
		return m
	}

	if !(SubPath{cmds: cmds}).Closed() {
		rev := make([]Command, 0, len(cmds))
		rev = append(rev, moveTo(cmds[len(cmds)-1].End()))
		for i := len(cmds) - 1; 1 <= i; i-- {
			rev = append(rev, cmds[i].reverse())
		}
		m.subs[subIdx] = rev
		return m
	}

	// The reversed contour starts at the same point and first traces the
	// close backward; the former first drawn command arrives back at the
	// start and becomes the new close.
	segs := make([]Command, 0, len(cmds)-1)
	segs = append(segs, cmds[len(cmds)-1].reverse())
	for i := len(cmds) - 2; 1 <= i; i-- {
		segs = append(segs, cmds[i].reverse())
	}
	for j := range segs {
		if j < len(segs)-1 {
			segs[j] = segs[j].asPlain()
		} else {
			segs[j] = segs[j].asClose()
		}
	}
	rev := make([]Command, 0, len(cmds))
	rev = append(rev, moveTo(cmds[0].End()))
	rev = append(rev, segs...)
	m.subs[subIdx] = rev
	return m
}

// shift rotates the drawn cycle of a closed subpath by rearranging its
// segments and re-synthesizing the move at the new start; the traced geometry
// is unchanged.
func (m *PathMutator) shift(subIdx int, forward bool) *PathMutator {
	if m.err != nil {
		return m
	}
	if err := m.checkSub(subIdx); err != nil {
		return m.fail(err)
	}
	cmds := m.subs[subIdx]
	if !(SubPath{cmds: cmds}).Closed() {
		return m.fail(fmt.Errorf("shift subpath %d: %w", subIdx, ErrNotClosed))
	}
	cycle := cmds[1:]
	if len(cycle) < 2 {
		return m
	}

	rotated := make([]Command, 0, len(cycle))
	if forward {
		rotated = append(rotated, cycle[1:]...)
		rotated = append(rotated, cycle[0])
	} else {
		rotated = append(rotated, cycle[len(cycle)-1])
		rotated = append(rotated, cycle[:len(cycle)-1]...)
	}
	for j := range rotated {
		if j < len(rotated)-1 {
			rotated[j] = rotated[j].asPlain()
		} else {
			rotated[j] = rotated[j].asClose()
		}
	}
	shifted := make([]Command, 0, len(cmds))
	shifted = append(shifted, moveTo(rotated[0].Start()))
	shifted = append(shifted, rotated...)
	m.subs[subIdx] = shifted
	return m
}

// ShiftSubPathForward rotates which command is considered the start of a
// closed subpath one position forward: the new start point is the end of the
// formerly first drawn command. Fails with ErrNotClosed on an open subpath.
func (m *PathMutator) ShiftSubPathForward(subIdx int) *PathMutator {
	return m.shift(subIdx, true)
}

// ShiftSubPathBack rotates the start of a closed subpath one position
// backward, inverting ShiftSubPathForward. Fails with ErrNotClosed on an open
// subpath.
func (m *PathMutator) ShiftSubPathBack(subIdx int) *PathMutator {
	return m.shift(subIdx, false)
}

// SplitFilledSubPath partitions a closed subpath into two closed subpaths
// along the chord between the end points of the commands at firstCmdIdx and
// secondCmdIdx. Each half retraces one arc of the original outline plus the
// chord, once per direction, so both halves remain independently fillable.
// The second half is inserted directly after the first.
func (m *PathMutator) SplitFilledSubPath(subIdx, firstCmdIdx, secondCmdIdx int) *PathMutator {
	if m.err != nil {
		return m
	}
	if err := m.checkCmd(subIdx, firstCmdIdx); err != nil {
		return m.fail(err)
	}
	if err := m.checkCmd(subIdx, secondCmdIdx); err != nil {
		return m.fail(err)
	}
	if firstCmdIdx == secondCmdIdx {
		return m.fail(fmt.Errorf("split filled subpath %d: boundaries coincide at command %d: %w", subIdx, firstCmdIdx, ErrInvalidParameter))
	}
	if secondCmdIdx < firstCmdIdx {
		firstCmdIdx, secondCmdIdx = secondCmdIdx, firstCmdIdx
	}
	cmds := m.subs[subIdx]
	if !(SubPath{cmds: cmds}).Closed() {
		return m.fail(fmt.Errorf("split filled subpath %d: %w", subIdx, ErrNotClosed))
	}

	a := cmds[firstCmdIdx].End()
	b := cmds[secondCmdIdx].End()

	// first half: arc from a to b, then the chord back
	sub1 := make([]Command, 0, secondCmdIdx-firstCmdIdx+2)
	sub1 = append(sub1, moveTo(a))
	for _, cmd := range cmds[firstCmdIdx+1 : secondCmdIdx+1] {
		sub1 = append(sub1, cmd.asPlain())
	}
	sub1 = append(sub1, newCommand(CloseCmd, b, a))

	// second half: remaining arc from b around the start back to a, then the
	// chord in the other direction
	sub2 := make([]Command, 0, len(cmds)-(secondCmdIdx-firstCmdIdx)+1)
	sub2 = append(sub2, moveTo(b))
	for _, cmd := range cmds[secondCmdIdx+1:] {
		sub2 = append(sub2, cmd.asPlain())
	}
	for _, cmd := range cmds[1 : firstCmdIdx+1] {
		sub2 = append(sub2, cmd.asPlain())
	}
	sub2 = append(sub2, newCommand(CloseCmd, a, b))

	subs := m.subs
	subs = append(subs[:subIdx:subIdx], append([][]Command{sub1, sub2}, subs[subIdx+1:]...)...)
	m.subs = subs
	return m
}

// SplitStrokedSubPath cuts the subpath into two subpaths at the end of the
// command at cmdIdx, without synthesizing a chord. A closed subpath is opened
// at its close first, so cutting a ring yields two open contours. The second
// part is inserted directly after the first.
func (m *PathMutator) SplitStrokedSubPath(subIdx, cmdIdx int) *PathMutator {
	if m.err != nil {
		return m
	}
	if err := m.checkCmd(subIdx, cmdIdx); err != nil {
		return m.fail(err)
	}
	cmds := m.subs[subIdx]
	if (SubPath{cmds: cmds}).Closed() {
		opened := append([]Command(nil), cmds...)
		opened[len(opened)-1] = opened[len(opened)-1].asPlain()
		cmds = opened
	}

	sub1 := append([]Command(nil), cmds[:cmdIdx+1]...)
	sub2 := make([]Command, 0, len(cmds)-cmdIdx)
	sub2 = append(sub2, moveTo(cmds[cmdIdx].End()))
	sub2 = append(sub2, cmds[cmdIdx+1:]...)

	subs := m.subs
	subs = append(subs[:subIdx:subIdx], append([][]Command{sub1, sub2}, subs[subIdx+1:]...)...)
	m.subs = subs
	return m
}

// MoveSubPath reorders the subpath at fromIdx to position toIdx. Subpath
// contents are unchanged.
func (m *PathMutator) MoveSubPath(fromIdx, toIdx int) *PathMutator {
	if m.err != nil {
		return m
	}
	if err := m.checkSub(fromIdx); err != nil {
		return m.fail(err)
	}
	if err := m.checkSub(toIdx); err != nil {
		return m.fail(err)
	}
	sub := m.subs[fromIdx]
	subs := append(m.subs[:fromIdx], m.subs[fromIdx+1:]...)
	subs = append(subs[:toIdx], append([][]Command{sub}, subs[toIdx:]...)...)
	m.subs = subs
	return m
}

// Build finalizes the edits into a new Path carrying the source's identity
// token. It returns the first error recorded by a preceding operation; if all
// operations succeeded, Build is a pure assembly step and cannot fail.
func (m *PathMutator) Build() (*Path, error) {
	if m.err != nil {
		return nil, m.err
	}
	subs := make([]SubPath, len(m.subs))
	for i, cmds := range m.subs {
		subs[i] = SubPath{cmds: cmds}
	}
	return newPath(subs, m.id), nil
}
