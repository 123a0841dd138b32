package app

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit is returned by an action handler to end the run loop.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning is returned by Run when called concurrently.
	ErrAlreadyRunning = errors.New("application already running")
)

// InitError reports a component that could not be set up.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// RunError reports a component that failed while the loop was running.
type RunError struct {
	Component string
	Err       error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Component, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// PanicError is a recovered panic and the stack it was raised on.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	if len(e.Stack) == 0 {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
}
