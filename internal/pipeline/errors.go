package pipeline

import "fmt"

// GenerationError wraps the first unrecoverable failure of a run with the
// identity of the stage or step that failed. Only extraction and
// persistence failures are unrecoverable; artifact steps fail softly.
type GenerationError struct {
	Step  string
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed at %s: %v", e.Step, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }
