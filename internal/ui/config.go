package ui

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid window config")

// Config describes the window and the fixed pen of one sketch program.
type Config struct {
	Title       string
	Width       float32
	Height      float32
	StrokeWidth float32
}

// CurvesConfig is the window used by the freehand curve sketcher.
func CurvesConfig() Config {
	return Config{
		Title:       "Simple Sketching Program",
		Width:       400,
		Height:      300,
		StrokeWidth: 1,
	}
}

// SegmentsConfig is the window used by the segment sketcher.
func SegmentsConfig() Config {
	return Config{
		Title:       "The Drawing Board",
		Width:       600,
		Height:      600,
		StrokeWidth: 2,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Title == "":
		return fmt.Errorf("%w: empty title", ErrInvalidConfig)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.StrokeWidth <= 0:
		return fmt.Errorf("%w: stroke width %g", ErrInvalidConfig, c.StrokeWidth)
	}
	return nil
}
