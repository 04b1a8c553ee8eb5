package state

import "log"

// CurveBoard keeps freehand curves. A press starts a curve, each drag
// extends the latest one.
type CurveBoard struct {
	curves []*Curve
}

var _ Surface = (*CurveBoard)(nil)

func NewCurveBoard() *CurveBoard {
	return &CurveBoard{curves: make([]*Curve, 0)}
}

func (b *CurveBoard) Press(at Point) {
	c := newCurve(at)
	b.curves = append(b.curves, c)
	log.Printf("[SKETCH] Curve %s started at (%.0f, %.0f)", c.ID, at.X, at.Y)
}

// Drag appends at to the latest curve. Hosts deliver drags only after a
// press, so a drag on an empty board is dropped.
func (b *CurveBoard) Drag(at Point) {
	if len(b.curves) == 0 {
		return
	}
	last := b.curves[len(b.curves)-1]
	last.Points = append(last.Points, at)
}

// Render draws a line between every consecutive pair of points. It does
// not modify the board.
func (b *CurveBoard) Render(c Canvas) {
	for _, curve := range b.curves {
		for i := 1; i < len(curve.Points); i++ {
			c.DrawLine(curve.Points[i-1], curve.Points[i])
		}
	}
}

// Curves returns copies of all curves in the order they were started.
func (b *CurveBoard) Curves() []Curve {
	out := make([]Curve, 0, len(b.curves))
	for _, c := range b.curves {
		out = append(out, Curve{
			ID:     c.ID,
			Points: append([]Point(nil), c.Points...),
		})
	}
	return out
}

func (b *CurveBoard) CurveCount() int { return len(b.curves) }

func (b *CurveBoard) PointCount() int {
	n := 0
	for _, c := range b.curves {
		n += len(c.Points)
	}
	return n
}
