package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/state"
)

// SketchWidget hosts a drawing surface: it feeds mouse input to the
// surface and runs a render pass whenever it is refreshed.
type SketchWidget struct {
	widget.BaseWidget
	surface     state.Surface
	strokeWidth float32
	minSize     fyne.Size
	drawing     bool
	lines       []fyne.CanvasObject
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)
var _ state.Repainter = (*SketchWidget)(nil)

func NewSketchWidget(s state.Surface, cfg Config) *SketchWidget {
	w := &SketchWidget{
		surface:     s,
		strokeWidth: cfg.StrokeWidth,
		minSize:     fyne.NewSize(cfg.Width, cfg.Height),
	}
	w.ExtendBaseWidget(w)
	return w
}

// Repaint schedules a render pass of the whole surface.
func (w *SketchWidget) Repaint() {
	w.Refresh()
}

func (w *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.drawing = true
	state.Dispatch(w.surface, state.Pressed{At: toPoint(e.Position)}, w)
}

func (w *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.drawing = false
	}
}

func (w *SketchWidget) Dragged(e *fyne.DragEvent) {
	if !w.drawing {
		return
	}
	state.Dispatch(w.surface, state.Dragged{At: toPoint(e.Position)}, w)
}

func (w *SketchWidget) DragEnd()                       {}
func (w *SketchWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *SketchWidget) MouseOut()                      {}
func (w *SketchWidget) MouseMoved(*desktop.MouseEvent) {}

// paint runs one render pass and keeps the resulting line objects.
func (w *SketchWidget) paint() {
	lc := &lineCanvas{stroke: w.strokeWidth}
	w.surface.Render(lc)
	w.lines = lc.objects
}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchRenderer{
		sketch:     w,
		background: canvas.NewRectangle(color.White),
	}
	w.paint()
	return r
}

type sketchRenderer struct {
	sketch     *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.sketch.lines)+1)
	objects = append(objects, r.background)
	return append(objects, r.sketch.lines...)
}

func (r *sketchRenderer) Refresh() {
	r.sketch.paint()
	canvas.Refresh(r.sketch)
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return r.sketch.minSize
}

func (r *sketchRenderer) Destroy() {}

// lineCanvas turns draw calls into fixed black canvas.Line objects.
type lineCanvas struct {
	stroke  float32
	objects []fyne.CanvasObject
}

func (c *lineCanvas) DrawLine(from, to state.Point) {
	l := canvas.NewLine(color.Black)
	l.StrokeWidth = c.stroke
	l.Position1 = fyne.NewPos(from.X, from.Y)
	l.Position2 = fyne.NewPos(to.X, to.Y)
	c.objects = append(c.objects, l)
}

func toPoint(p fyne.Position) state.Point {
	return state.Pt(p.X, p.Y)
}
