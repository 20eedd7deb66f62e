package geom

import (
	"fmt"
	"math"
)

// FPS is the fixed display frame rate
const FPS = 24

// Timecode formats a frame number as HH:MM:SS:FF at the fixed display rate.
// Display only; it never feeds back into model state.
func Timecode(frame float64) string {
	frames := int(math.Round(frame))
	seconds := frames / FPS
	framesRem := frames % FPS
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secondsRem := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, secondsRem, framesRem)
}
