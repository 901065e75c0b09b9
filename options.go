package cubelets

import "log/slog"

// Option configures Session behavior.
type Option func(*config)

type config struct {
	gap      float32
	logger   *slog.Logger
	onChange func(Snapshot)
}

func defaultConfig() *config {
	return &config{
		gap:    DefaultGap,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithGap sets the spacing between neighbouring cubelets.
// Negative values are ignored.
func WithGap(gap float32) Option {
	return func(c *config) {
		if gap >= 0 {
			c.gap = gap
		}
	}
}

// WithLogger sets the logger events are reported to.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOnChange sets a callback that fires after every event that changed
// the state or the selection.
func WithOnChange(fn func(Snapshot)) Option {
	return func(c *config) {
		c.onChange = fn
	}
}
