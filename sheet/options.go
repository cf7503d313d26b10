// SPDX-License-Identifier: MIT
// Package: selkit/sheet

package sheet

import "go.uber.org/zap"

// Option customizes Load.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

// WithLogger sets the logger used by the sheet and by every builder it
// creates. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sheet: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
