package pathedit

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func cmdOf(t *testing.T, s string, i int) Command {
	t.Helper()
	return MustParse(s).SubPath(0).Commands()[i]
}

func TestCommandPointAt(t *testing.T) {
	line := cmdOf(t, "M0 0L10 0", 1)
	test.T(t, line.PointAt(0.0), Point{0, 0})
	test.T(t, line.PointAt(0.5), Point{5, 0})
	test.T(t, line.PointAt(1.0), Point{10, 0})

	quad := cmdOf(t, "M0 0Q5 10 10 0", 1)
	test.T(t, quad.PointAt(0.0), Point{0, 0})
	test.T(t, quad.PointAt(0.5), Point{5, 5})
	test.T(t, quad.PointAt(1.0), Point{10, 0})

	cube := cmdOf(t, "M0 0C0 10 10 10 10 0", 1)
	test.T(t, cube.PointAt(0.0), Point{0, 0})
	test.T(t, cube.PointAt(0.5), Point{5, 7.5})
	test.T(t, cube.PointAt(1.0), Point{10, 0})

	// a close behaves as a line back to the subpath's start
	closeCmd := cmdOf(t, "M0 0L10 0L10 10z", 3)
	test.T(t, closeCmd.PointAt(0.0), Point{10, 10})
	test.T(t, closeCmd.PointAt(0.5), Point{5, 5})
	test.T(t, closeCmd.PointAt(1.0), Point{0, 0})
}

func TestCommandLength(t *testing.T) {
	var tts = []struct {
		orig   string
		length float64
	}{
		{"M0 0L3 4", 5.0},
		{"M0 0L10 0L10 10z", 10.0 + 10.0 + math.Sqrt(200.0)},
		{"M0 0Q50 66.67 100 0", 124.533},
		{"M0 0Q100 0 100 0", 100.0},
		{"M0 0C0 66.67 100 66.67 100 0", 158.5864},
		{"M0 0C0 0 100 0 100 0", 100.0},
		{"M0 0C100 66.67 0 66.67 100 0", 143.9746},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			length := MustParse(tt.orig).Length()
			if math.Abs(tt.length-length)/tt.length > 0.01 {
				test.Fail(t, length, "!=", tt.length, "±1%")
			}
		})
	}
}

func TestCommandLengthMove(t *testing.T) {
	test.Float(t, MustParse("M10 20").Length(), 0.0)
}

func TestCommandSplitAt(t *testing.T) {
	var tts = []struct {
		orig string
		t    float64
	}{
		{"M0 0L10 0", 0.5},
		{"M0 0L10 0", 0.25},
		{"M1 1Q5 10 10 0", 0.3},
		{"M0 0C0 10 10 10 10 0", 0.7},
		{"M0 0L10 0L10 10z", 0.5},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			cmds := MustParse(tt.orig).SubPath(0).Commands()
			cmd := cmds[len(cmds)-1]
			first, second, err := cmd.SplitAt(tt.t)
			test.Error(t, err)

			test.That(t, first.Split())
			test.That(t, !second.Split())
			test.That(t, first.Start().Equals(cmd.Start()))
			test.That(t, first.End().Equals(second.Start()))
			test.That(t, second.End().Equals(cmd.End()))
			test.T(t, second.Kind(), cmd.Kind())

			// the concatenation traces the original curve
			for _, s := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
				test.That(t, first.PointAt(s).Equals(cmd.PointAt(s*tt.t)))
				test.That(t, second.PointAt(s).Equals(cmd.PointAt(tt.t+s*(1.0-tt.t))))
			}
		})
	}
}

func TestCommandSplitAtErrors(t *testing.T) {
	line := cmdOf(t, "M0 0L10 0", 1)
	_, _, err := line.SplitAt(0.0)
	test.That(t, errors.Is(err, ErrInvalidParameter))
	_, _, err = line.SplitAt(1.0)
	test.That(t, errors.Is(err, ErrInvalidParameter))
	_, _, err = line.SplitAt(-0.5)
	test.That(t, errors.Is(err, ErrInvalidParameter))

	move := cmdOf(t, "M0 0L10 0", 0)
	_, _, err = move.SplitAt(0.5)
	test.That(t, errors.Is(err, ErrInvalidParameter))
}

func TestCommandIsDegenerate(t *testing.T) {
	test.That(t, cmdOf(t, "M5 5L5 5", 1).IsDegenerate())
	test.That(t, cmdOf(t, "M5 5Q5 5 5 5", 1).IsDegenerate())
	test.That(t, !cmdOf(t, "M5 5L5 6", 1).IsDegenerate())
	test.That(t, !cmdOf(t, "M5 5Q7 7 5 5", 1).IsDegenerate())
	test.That(t, cmdOf(t, "M5 5L5 5", 1).Collapsing())
}

func TestCommandHalfLengthT(t *testing.T) {
	test.Float(t, cmdOf(t, "M0 0L10 0", 1).halfLengthT(), 0.5)

	// strongly asymmetric cubic: the arc-length midpoint is not t=0.5
	cmd := cmdOf(t, "M0 0C90 0 100 0 100 10", 1)
	th := cmd.halfLengthT()
	first, second, err := cmd.SplitAt(th)
	test.Error(t, err)
	if math.Abs(first.Length()-second.Length()) > 0.1 {
		test.Fail(t, first.Length(), "!=", second.Length())
	}
}

func TestCommandReverse(t *testing.T) {
	quad := cmdOf(t, "M0 0Q5 10 10 0", 1)
	rev := quad.reverse()
	test.T(t, rev.Start(), Point{10, 0})
	test.T(t, rev.End(), Point{0, 0})
	test.T(t, rev.Points()[1], Point{5, 10})
	test.That(t, rev.reverse().Equals(quad))
}
