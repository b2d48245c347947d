package ui

import (
	"time"

	"github.com/briandowns/spinner"
	bspinner "github.com/charmbracelet/bubbles/spinner"
)

// DefaultSpinnerCharsetIndex is the charset index used across views.
const DefaultSpinnerCharsetIndex = 14

// BubbleSpinner builds a bubbles spinner from the shared charset so the
// TUI spinner and any plain-terminal progress output animate alike.
func BubbleSpinner() bspinner.Model {
	s := bspinner.New()
	frames := spinner.CharSets[DefaultSpinnerCharsetIndex]
	if len(frames) > 0 {
		s.Spinner = bspinner.Spinner{Frames: frames, FPS: time.Second / 10}
	}
	s.Style = FaintStyle
	return s
}
