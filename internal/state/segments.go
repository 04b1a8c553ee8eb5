package state

// CommitPolicy decides when a SegmentBoard turns the current drag span
// into a permanent segment.
type CommitPolicy int

const (
	// CommitOnPaint commits the drag span on every render pass, including
	// repeated passes with no new input.
	CommitOnPaint CommitPolicy = iota
	// CommitOnDrag commits one segment per drag event. Render passes only
	// read.
	CommitOnDrag
)

func (p CommitPolicy) String() string {
	switch p {
	case CommitOnPaint:
		return "commit-on-paint"
	case CommitOnDrag:
		return "commit-on-drag"
	default:
		return "unknown"
	}
}

// SegmentBoard keeps straight segments. Each drag moves the previous end
// point to the start and the pointer to the end.
type SegmentBoard struct {
	segments []Segment
	drag     Segment
	dragging bool
	policy   CommitPolicy
}

var _ Surface = (*SegmentBoard)(nil)

func NewSegmentBoard(policy CommitPolicy) *SegmentBoard {
	return &SegmentBoard{
		segments: make([]Segment, 0),
		policy:   policy,
	}
}

func (b *SegmentBoard) Press(at Point) {
	b.drag = Segment{Start: at, End: at}
	b.dragging = true
}

func (b *SegmentBoard) Drag(at Point) {
	if !b.dragging {
		return
	}
	b.drag = Segment{Start: b.drag.End, End: at}
	if b.policy == CommitOnDrag {
		b.segments = append(b.segments, b.drag)
	}
}

// Render draws the committed segments. With CommitOnPaint it then commits
// the current drag span and draws it too, so every pass grows the board
// by one segment once a gesture has started.
func (b *SegmentBoard) Render(c Canvas) {
	for _, s := range b.segments {
		c.DrawLine(s.Start, s.End)
	}
	if b.policy != CommitOnPaint || !b.dragging {
		return
	}
	s := b.drag
	b.segments = append(b.segments, s)
	c.DrawLine(s.Start, s.End)
}

// DragSpan returns the current start and end points, ok is false before
// the first press.
func (b *SegmentBoard) DragSpan() (span Segment, ok bool) {
	return b.drag, b.dragging
}

// Segments returns a copy of the committed segments.
func (b *SegmentBoard) Segments() []Segment {
	return append([]Segment(nil), b.segments...)
}

func (b *SegmentBoard) SegmentCount() int { return len(b.segments) }

func (b *SegmentBoard) Policy() CommitPolicy { return b.policy }
