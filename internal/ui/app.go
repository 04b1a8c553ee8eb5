package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"SketchBoard/internal/state"
)

// RunApp opens one window showing s and blocks until it is closed.
func RunApp(cfg Config, s state.Surface) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("starting %q: %w", cfg.Title, err)
	}

	myApp := app.New()
	myWindow := NewSketchWindow(myApp, cfg, s)
	myWindow.ShowAndRun()
	return nil
}

// NewSketchWindow builds the window for s. Closing it quits the app.
func NewSketchWindow(a fyne.App, cfg Config, s state.Surface) fyne.Window {
	myWindow := a.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(cfg.Width, cfg.Height))
	myWindow.SetMaster()

	sketch := NewSketchWidget(s, cfg)
	myWindow.SetContent(sketch)
	myWindow.SetOnClosed(func() {
		log.Printf("[UI] Window %q closed: %s", cfg.Title, describe(s))
	})
	log.Printf("[UI] Window %q created (%gx%g)", cfg.Title, cfg.Width, cfg.Height)
	return myWindow
}

func describe(s state.Surface) string {
	switch s := s.(type) {
	case *state.CurveBoard:
		return fmt.Sprintf("%d curves, %d points", s.CurveCount(), s.PointCount())
	case *state.SegmentBoard:
		return fmt.Sprintf("%d segments (%s)", s.SegmentCount(), s.Policy())
	default:
		return "done"
	}
}
