package llm

import "context"

// Request is a single completion call: a prompt plus an optional system
// instruction and generation options.
type Request struct {
	Prompt      string
	System      string
	MaxTokens   int
	Temperature float64
}

// Client abstracts the generative text service. Implementations do not
// retry; retry policy belongs to the caller because it differs by call
// importance (extraction vs. artifact generation).
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ServiceError reports a failed completion call: transport failure, quota,
// or a malformed response.
type ServiceError struct {
	Provider string
	Cause    error
}

func (e *ServiceError) Error() string {
	return "completion service (" + e.Provider + "): " + e.Cause.Error()
}

func (e *ServiceError) Unwrap() error { return e.Cause }
