package event

import (
	"time"

	"github.com/fucaluca/torrentui/internal/logging"
)

const (
	// DefaultCapacity is the default queue capacity.
	DefaultCapacity = 32

	// DefaultTickInterval is the default tick period.
	DefaultTickInterval = 2 * time.Second
)

// Option configures a Multiplexer.
type Option func(*config)

type config struct {
	capacity     int
	tickInterval time.Duration
	logger       *logging.Logger
}

func defaultConfig() config {
	return config{
		capacity:     DefaultCapacity,
		tickInterval: DefaultTickInterval,
		logger:       logging.Nop(),
	}
}

// WithCapacity sets the queue capacity.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithTickInterval sets the tick period. Zero or negative disables ticks.
func WithTickInterval(d time.Duration) Option {
	return func(c *config) {
		c.tickInterval = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
