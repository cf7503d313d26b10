// SPDX-License-Identifier: MIT
// Package: selkit/codec

package codec

import "go.uber.org/zap"

// Option customizes a decode call.
type Option func(*config)

type config struct {
	strict bool
	logger *zap.Logger
}

// WithStrict rejects keys that do not map to a field of the target struct.
func WithStrict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithLogger receives Debug records for rejected keys. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("codec: WithLogger(nil)")
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
