// SPDX-License-Identifier: MIT
// Package: selkit/selector
//
// options.go — functional options for New and Combine.
//
// Contract:
//   • Options mutate an unexported config before the builder is created.
//   • Option constructors panic on meaningless input (nil logger); builders never panic.

package selector

import "go.uber.org/zap"

// Option customizes a Builder created by New or Combine.
type Option func(*config)

// config aggregates the builder knobs. Defaults are resolved in newConfig.
type config struct {
	logger *zap.Logger
}

// WithLogger attaches a logger that receives Debug records for every accepted
// and rejected fragment. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("selector: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// newConfig applies opts in order (last wins) over a silent default.
func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
