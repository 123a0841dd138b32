package event

import "errors"

// ErrClosed is returned by Next once the multiplexer has been cancelled or
// its producer has stopped and the queue is drained.
var ErrClosed = errors.New("event multiplexer closed")
