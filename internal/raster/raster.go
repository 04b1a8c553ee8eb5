// Package raster draws sketch surfaces into in-memory alpha masks.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"SketchBoard/internal/state"
)

// Canvas strokes lines into an *image.Alpha with square caps.
type Canvas struct {
	dst   *image.Alpha
	r     *vector.Rasterizer
	width float32
	lines int
}

var _ state.Canvas = (*Canvas)(nil)

// NewCanvas returns a transparent w×h canvas stroking lines strokeWidth
// pixels wide.
func NewCanvas(w, h int, strokeWidth float32) *Canvas {
	return &Canvas{
		dst:   image.NewAlpha(image.Rect(0, 0, w, h)),
		r:     vector.NewRasterizer(w, h),
		width: strokeWidth,
	}
}

func (c *Canvas) DrawLine(from, to state.Point) {
	c.lines++

	half := c.width / 2
	dx, dy := to.X-from.X, to.Y-from.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))

	// unit direction, a zero-length line becomes a square dot
	ux, uy := float32(1), float32(0)
	if length > 0 {
		ux, uy = dx/length, dy/length
	}
	// extend both ends by half the width, offset sideways by the normal
	ax, ay := from.X-ux*half, from.Y-uy*half
	bx, by := to.X+ux*half, to.Y+uy*half
	nx, ny := -uy*half, ux*half

	b := c.dst.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
	c.r.MoveTo(ax+nx, ay+ny)
	c.r.LineTo(bx+nx, by+ny)
	c.r.LineTo(bx-nx, by-ny)
	c.r.LineTo(ax-nx, ay-ny)
	c.r.ClosePath()
	c.r.Draw(c.dst, b, image.Opaque, image.Point{})
}

// Image returns the mask drawn so far.
func (c *Canvas) Image() *image.Alpha { return c.dst }

// Lines reports how many DrawLine calls the canvas received.
func (c *Canvas) Lines() int { return c.lines }

// Clear makes the canvas transparent again.
func (c *Canvas) Clear() {
	draw.Draw(c.dst, c.dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	c.lines = 0
}

// Snapshot runs one render pass of s on a fresh w×h canvas.
func Snapshot(s state.Surface, w, h int, strokeWidth float32) *Canvas {
	c := NewCanvas(w, h, strokeWidth)
	s.Render(c)
	return c
}
