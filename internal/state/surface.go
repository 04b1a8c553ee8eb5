package state

// Canvas receives the draw calls of a render pass.
type Canvas interface {
	DrawLine(from, to Point)
}

// Repainter asks the host for a render pass. The host may coalesce
// requests, so callers must not rely on one pass per call.
type Repainter interface {
	Repaint()
}

// Surface is a drawing surface: it owns its shapes, reacts to pointer
// events and draws itself during a render pass. All methods are called
// from the host's UI goroutine.
type Surface interface {
	Press(at Point)
	Drag(at Point)
	Render(c Canvas)
}

// Dispatch applies ev to s and requests a repaint of the whole surface.
func Dispatch(s Surface, ev Event, r Repainter) {
	switch ev := ev.(type) {
	case Pressed:
		s.Press(ev.At)
	case Dragged:
		s.Drag(ev.At)
	default:
		return
	}
	if r != nil {
		r.Repaint()
	}
}
