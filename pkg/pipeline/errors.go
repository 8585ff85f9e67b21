package pipeline

import "fmt"

// LayerError reports which layer of a pipeline failed.
// It wraps the transform's coded error, so errors.Is on the code still works.
type LayerError struct {
	Index     int    // zero-based position in the caller's layer list
	Algorithm string // algorithm as resolved, or as given if unresolvable
	Err       error
}

// Error implements the error interface.
func (e *LayerError) Error() string {
	return fmt.Sprintf("layer %d (%s): %v", e.Index+1, e.Algorithm, e.Err)
}

// Unwrap returns the underlying transform error.
func (e *LayerError) Unwrap() error {
	return e.Err
}
