package state

import "github.com/google/uuid"

// Point is a position in surface coordinates, origin at the top-left corner.
type Point struct{ X, Y float32 }

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Segment is a straight line between two points.
type Segment struct {
	Start Point
	End   Point
}

// Curve is one freehand stroke. Points only ever grow at the end.
type Curve struct {
	ID     string
	Points []Point
}

func newCurve(at Point) *Curve {
	return &Curve{
		ID:     uuid.NewString(),
		Points: []Point{at},
	}
}

// Event is a pointer event delivered by the host: Pressed or Dragged.
type Event interface {
	isEvent()
}

// Pressed starts a new gesture.
type Pressed struct{ At Point }

// Dragged moves the pointer while the button is held.
type Dragged struct{ At Point }

func (Pressed) isEvent() {}
func (Dragged) isEvent() {}
