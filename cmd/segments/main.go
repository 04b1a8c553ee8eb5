// Command segments is a line sketcher: every drag draws a straight segment
// from the previous pointer position to the current one.
package main

import (
	"log"

	"SketchBoard/internal/state"
	"SketchBoard/internal/ui"
)

func main() {
	board := state.NewSegmentBoard(state.CommitOnPaint)
	log.Printf("[SKETCH] Starting segment sketcher (%s)", board.Policy())
	if err := ui.RunApp(ui.SegmentsConfig(), board); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
