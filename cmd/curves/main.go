// Command curves is a freehand sketcher: press to start a curve, drag to
// extend it.
package main

import (
	"log"

	"SketchBoard/internal/state"
	"SketchBoard/internal/ui"
)

func main() {
	log.Println("[SKETCH] Starting curve sketcher")
	if err := ui.RunApp(ui.CurvesConfig(), state.NewCurveBoard()); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
