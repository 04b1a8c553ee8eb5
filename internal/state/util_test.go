package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// recorder is a Canvas that remembers every line it was asked to draw.
type recorder struct {
	lines []Segment
}

func (r *recorder) DrawLine(from, to Point) {
	r.lines = append(r.lines, Segment{Start: from, End: to})
}

type repaintCounter int

func (c *repaintCounter) Repaint() { *c++ }
