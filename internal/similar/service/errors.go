package service

import "fmt"

// LoadError means the corpus source could not be opened or parsed at all.
// Malformed individual rows never produce it.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load corpus %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
