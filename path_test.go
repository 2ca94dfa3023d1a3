package pathedit

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	test.That(t, MustParse("").Empty())
	test.That(t, !MustParse("M5 5").Empty())
}

func TestPathEquals(t *testing.T) {
	test.That(t, MustParse("M5 0L5 10").Equals(MustParse("M5 0L5 10")))
	test.That(t, !MustParse("M5 0L5 10").Equals(MustParse("M5 0")))
	test.That(t, !MustParse("M5 0L5 10").Equals(MustParse("M5 0L5 9")))
	test.That(t, !MustParse("M5 0L5 10").Equals(MustParse("M5 0Q5 5 5 10")))
	test.That(t, !MustParse("M5 0L5 10z").Equals(MustParse("M5 0L5 10")))
}

func TestPathClosed(t *testing.T) {
	test.That(t, !MustParse("M5 0L5 10").SubPath(0).Closed())
	test.That(t, MustParse("M5 0L5 10z").SubPath(0).Closed())
	test.That(t, !MustParse("M5 0L5 10zM5 10L0 0").SubPath(1).Closed())
}

func TestPathCollapsing(t *testing.T) {
	test.That(t, MustParse("M5 5L5 5z").SubPath(0).Collapsing())
	test.That(t, MustParse("M5 5Q5 5 5 5L5 5").SubPath(0).Collapsing())
	test.That(t, !MustParse("M5 5L6 5z").SubPath(0).Collapsing())
}

func TestPathCommands(t *testing.T) {
	p := MustParse("M5 0L5 10zM10 10Q20 20 30 10")
	test.T(t, len(p.SubPaths()), 2)
	test.T(t, len(p.Commands()), 5)
	test.T(t, p.SubPath(0).Len(), 3)
	test.T(t, p.SubPath(1).Len(), 2)
	test.T(t, p.SubPath(0).Start(), Point{5, 0})
	test.T(t, p.SubPath(0).End(), Point{5, 0})
	test.T(t, p.SubPath(1).End(), Point{30, 10})
}

func TestPathLengthCached(t *testing.T) {
	p := MustParse("M0 0L10 0L10 10")
	test.Float(t, p.Length(), 20.0)
	test.Float(t, p.Length(), 20.0)
}

func TestPathIdentity(t *testing.T) {
	p := MustParse("M0 0L10 0")
	test.That(t, p.ID() == nil)

	q := p.Identify("layer1")
	test.T(t, q.ID(), "layer1")
	test.That(t, p.Equals(q))

	// the token carries through edits
	r, err := q.Mutate().SplitCommand(0, 1, 0.5).Build()
	test.Error(t, err)
	test.T(t, r.ID(), "layer1")
}

func TestPathString(t *testing.T) {
	var tts = []string{
		"",
		"M5 5",
		"M5 0L5 10z",
		"M0 0L10 0Q15 10 20 0C23 10 27 10 30 0z",
		"M5 0L5 10zM10 10L20 20",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			test.T(t, MustParse(tt).String(), tt)
		})
	}
}

func TestPathSplitCommands(t *testing.T) {
	p, err := MustParse("M0 0L10 0L10 10").Mutate().SplitCommand(0, 1, 0.5).Build()
	test.Error(t, err)
	test.T(t, p.SubPath(0).SplitCommands(), []int{1})
	test.That(t, p.SubPath(0).Commands()[1].Split())
	test.That(t, !p.SubPath(0).Commands()[2].Split())
}
