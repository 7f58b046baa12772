package demo

import "errors"

// ErrDemoNotFound is returned when a demo name is not present in the registry.
var ErrDemoNotFound = errors.New("demo not found")

// ErrRunNotFound is returned when a run ID cannot be found in the transcript store.
var ErrRunNotFound = errors.New("run not found")
