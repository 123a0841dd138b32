package app

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"init", &InitError{Component: "config", Err: cause}, "starting config: boom"},
		{"run", &RunError{Component: "input", Err: cause}, "input failed: boom"},
		{"panic", &PanicError{Value: "bad"}, "panic: bad"},
		{"panic with stack", &PanicError{Value: "bad", Stack: []byte("goroutine 1")}, "panic: bad\ngoroutine 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	if !errors.Is(&InitError{Component: "x", Err: cause}, cause) {
		t.Error("InitError should unwrap")
	}
	if !errors.Is(&RunError{Component: "x", Err: cause}, cause) {
		t.Error("RunError should unwrap")
	}
}
