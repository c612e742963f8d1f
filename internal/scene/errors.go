package scene

import (
	"errors"
	"fmt"
)

// Domain errors for timeline playback.
var (
	// ErrBadFrameRate indicates a non-positive frames-per-second value.
	ErrBadFrameRate = errors.New("scene: frame rate must be positive")

	// ErrBadDuration indicates a non-positive step duration.
	ErrBadDuration = errors.New("scene: step duration must be positive")

	// ErrNoSink indicates playback was attempted without a frame sink.
	ErrNoSink = errors.New("scene: no frame sink attached")

	// ErrCanceled indicates playback was interrupted by its context.
	ErrCanceled = errors.New("scene: playback canceled")
)

// StepError wraps a failure with the step and timeline position it
// occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.3fs): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error { return e.Wrapped }
