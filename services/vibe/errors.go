package vibe

import "fmt"

// InputError reports a search request that cannot be served as given.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PipelineError wraps an unexpected failure of the search as a whole.
type PipelineError struct {
	Err error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("place search failed: %v", e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
