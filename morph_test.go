package pathedit

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestMorphableWith(t *testing.T) {
	var tts = []struct {
		p, q      string
		morphable bool
	}{
		{"M0 0L10 10", "M5 5L20 20", true},
		{"M0 0L10 10", "M0 0L10 10", true},
		{"M0 0Q5 10 10 0z", "M10 10Q20 0 30 10z", true},
		{"M0 0L10 0M0 10L10 10", "M5 5L6 5M5 6L6 6", true},
		{"M0 0L10 10", "M0 0Q5 5 10 10", false},
		{"M0 0L10 10", "M0 0L5 5L10 10", false},
		{"M0 0L10 10", "M0 0L10 10M20 20L30 30", false},
		{"M0 0L10 0L10 10z", "M0 0L10 0L10 10", false},
	}
	for _, tt := range tts {
		t.Run(tt.p+" "+tt.q, func(t *testing.T) {
			p, q := MustParse(tt.p), MustParse(tt.q)
			test.T(t, p.MorphableWith(q), tt.morphable)
			test.T(t, q.MorphableWith(p), tt.morphable)
		})
	}
}

func TestMorphableWithCurvedClose(t *testing.T) {
	// reversing moves the curve into the closing command; the string reads the
	// same as a plainly parsed path but the structures no longer line up
	rev, err := MustParse("M5 5Q10 10 15 5z").Mutate().ReverseSubPath(0).Build()
	test.Error(t, err)
	plain := MustParse(rev.String())
	test.T(t, rev.String(), plain.String())
	test.That(t, !rev.MorphableWith(plain))
}

func TestInterpolate(t *testing.T) {
	var tts = []struct {
		start, end string
		fraction   float64
		res        string
	}{
		{"M0 0L10 0", "M0 0L0 10", 0.5, "M0 0L5 5"},
		{"M0 0L0 0", "M0 0L10 10", 0.0, "M0 0L0 0"},
		{"M0 0L0 0", "M0 0L10 10", 0.5, "M0 0L5 5"},
		{"M0 0L0 0", "M0 0L10 10", 1.0, "M0 0L10 10"},
		{"M0 0L0 0", "M0 0L10 10", 2.0, "M0 0L20 20"},
		{"M0 0L0 0", "M0 0L10 10", -1.0, "M0 0L-10 -10"},
		{"M0 0Q5 10 10 0z", "M0 0Q5 -10 10 0z", 0.5, "M0 0Q5 0 10 0z"},
		{"M0 0L10 0M0 10L10 10", "M0 10L10 10M0 0L10 0", 0.5, "M0 5L10 5M0 5L10 5"},
		{"M0 0C0 10 10 10 10 0", "M0 0C0 10 10 10 10 0", 0.5, "M0 0C0 10 10 10 10 0"},
	}
	for _, tt := range tts {
		t.Run(tt.res, func(t *testing.T) {
			p, err := Interpolate(MustParse(tt.start), MustParse(tt.end), tt.fraction)
			test.Error(t, err)
			test.T(t, p.String(), tt.res)
		})
	}
}

func TestInterpolateNotMorphable(t *testing.T) {
	p, err := Interpolate(MustParse("M0 0L10 10"), MustParse("M0 0Q5 5 10 10"), 0.5)
	test.That(t, errors.Is(err, ErrNotMorphable))
	test.That(t, p == nil)
}

func TestInterpolateSplitMarkers(t *testing.T) {
	// blends keep the start's split bookkeeping so editors can keep addressing
	// the halves across an animation
	start, err := MustParse("M0 0L10 0").Mutate().SplitCommand(0, 1, 0.5).Build()
	test.Error(t, err)
	end, err := MustParse("M0 10L10 10").Mutate().SplitCommand(0, 1, 0.5).Build()
	test.Error(t, err)

	p, err := Interpolate(start, end, 0.5)
	test.Error(t, err)
	test.T(t, p.String(), "M0 5L5 5L10 5")
	test.T(t, len(p.SubPath(0).SplitCommands()), 1)
	test.T(t, p.SubPath(0).SplitCommands()[0], 1)
}

func TestInterpolateIdentity(t *testing.T) {
	// the blend is a fresh path without the operands' identities
	start := MustParse("M0 0L10 10").Identify("start")
	end := MustParse("M0 0L20 20").Identify("end")
	p, err := Interpolate(start, end, 0.5)
	test.Error(t, err)
	test.That(t, p.ID() == nil)
}

func TestInterpolateImmutable(t *testing.T) {
	start, end := MustParse("M0 0L0 0"), MustParse("M0 0L10 10")
	_, err := Interpolate(start, end, 0.5)
	test.Error(t, err)
	test.T(t, start.String(), "M0 0L0 0")
	test.T(t, end.String(), "M0 0L10 10")
}
