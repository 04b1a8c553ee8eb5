package state

import "testing"

func TestSegmentPress(t *testing.T) {
	b := NewSegmentBoard(CommitOnPaint)
	if _, ok := b.DragSpan(); ok {
		t.Fatal("fresh board reports a drag span")
	}
	b.Press(Pt(7, 8))
	span, ok := b.DragSpan()
	if !ok {
		t.Fatal("no drag span after press")
	}
	diff(t, Segment{Pt(7, 8), Pt(7, 8)}, span)
	if b.SegmentCount() != 0 {
		t.Errorf("press committed %d segments", b.SegmentCount())
	}
}

func TestSegmentDragChains(t *testing.T) {
	b := NewSegmentBoard(CommitOnPaint)
	Dispatch(b, Pressed{Pt(0, 0)}, nil)
	Dispatch(b, Dragged{Pt(1, 1)}, nil)
	Dispatch(b, Dragged{Pt(2, 2)}, nil)
	Dispatch(b, Dragged{Pt(3, 3)}, nil)

	span, _ := b.DragSpan()
	diff(t, Segment{Pt(2, 2), Pt(3, 3)}, span)
	if b.SegmentCount() != 0 {
		t.Errorf("drags committed %d segments before any render", b.SegmentCount())
	}
}

func TestSegmentRenderCommits(t *testing.T) {
	b := NewSegmentBoard(CommitOnPaint)
	b.Press(Pt(0, 0))
	b.Drag(Pt(4, 0))

	var r recorder
	b.Render(&r)
	if got := b.SegmentCount(); got != 1 {
		t.Fatalf("after first render: %d segments, want 1", got)
	}
	diff(t, []Segment{{Pt(0, 0), Pt(4, 0)}}, r.lines)

	r = recorder{}
	b.Render(&r)
	if got := b.SegmentCount(); got != 2 {
		t.Fatalf("after second render: %d segments, want 2", got)
	}
	// both committed copies plus the freshly committed one
	want := []Segment{
		{Pt(0, 0), Pt(4, 0)},
		{Pt(0, 0), Pt(4, 0)},
	}
	diff(t, want, r.lines)
	diff(t, want, b.Segments())
}

func TestSegmentRenderAfterPressOnly(t *testing.T) {
	b := NewSegmentBoard(CommitOnPaint)
	b.Press(Pt(5, 5))
	var r recorder
	b.Render(&r)
	diff(t, []Segment{{Pt(5, 5), Pt(5, 5)}}, b.Segments())
	diff(t, b.Segments(), r.lines)
}

func TestSegmentRenderEmpty(t *testing.T) {
	for _, policy := range []CommitPolicy{CommitOnPaint, CommitOnDrag} {
		t.Run(policy.String(), func(t *testing.T) {
			b := NewSegmentBoard(policy)
			var r recorder
			b.Render(&r)
			if len(r.lines) != 0 || b.SegmentCount() != 0 {
				t.Errorf("empty board drew %d lines, holds %d segments", len(r.lines), b.SegmentCount())
			}
		})
	}
}

func TestSegmentCommitOnDrag(t *testing.T) {
	b := NewSegmentBoard(CommitOnDrag)
	b.Press(Pt(0, 0))
	b.Drag(Pt(1, 0))
	b.Drag(Pt(2, 0))
	b.Press(Pt(10, 10))
	b.Drag(Pt(10, 11))

	want := []Segment{
		{Pt(0, 0), Pt(1, 0)},
		{Pt(1, 0), Pt(2, 0)},
		{Pt(10, 10), Pt(10, 11)},
	}
	diff(t, want, b.Segments())

	var first, second recorder
	b.Render(&first)
	b.Render(&second)
	diff(t, want, first.lines)
	diff(t, first.lines, second.lines)
	diff(t, want, b.Segments())
}

func TestSegmentDragWithoutPress(t *testing.T) {
	b := NewSegmentBoard(CommitOnDrag)
	b.Drag(Pt(1, 1))
	if _, ok := b.DragSpan(); ok || b.SegmentCount() != 0 {
		t.Error("drag before press changed the board")
	}
}
