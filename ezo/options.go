package ezo

import (
	"time"

	"github.com/saibatizoku/go-ezo/chip"
	"github.com/saibatizoku/go-ezo/protocol"
)

// Config holds the device configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// ReplySize is the number of bytes read for every reply
	ReplySize int

	// WriteBackoff is the pause before the single write retry
	WriteBackoff time.Duration

	// Sleep blocks for the given duration; replaceable in tests
	Sleep func(time.Duration)
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ReplySize:    protocol.DefaultReplySize,
		WriteBackoff: 100 * time.Millisecond,
		Sleep:        time.Sleep,
	}
}

// Option is a functional option for configuring the Device.
type Option func(*Config)

// WithLogger sets a logger for the device operations.
//
// Example:
//
//	dev := ezo.New(transport, ezo.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithReplySize sets the reply buffer size in bytes. Chip families whose
// longest response exceeds the default 42 bytes need a larger buffer.
//
// Example:
//
//	dev := ezo.New(transport, ezo.WithReplySize(64))
func WithReplySize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ReplySize = size
		}
	}
}

// WithProfile applies a chip profile's reply size.
//
// Example:
//
//	p, _ := chip.Builtin("rtd")
//	dev := ezo.New(transport, ezo.WithProfile(p))
func WithProfile(p chip.Profile) Option {
	return func(c *Config) {
		if p.ReplySize > 0 {
			c.ReplySize = p.ReplySize
		}
	}
}

// WithWriteBackoff sets the pause before a failed command write is retried.
//
// Example:
//
//	dev := ezo.New(transport, ezo.WithWriteBackoff(50*time.Millisecond))
func WithWriteBackoff(backoff time.Duration) Option {
	return func(c *Config) {
		if backoff > 0 {
			c.WriteBackoff = backoff
		}
	}
}

// WithSleepFunc replaces the function used for settle delays and the write
// backoff. Intended for tests that must not block on real time.
func WithSleepFunc(sleep func(time.Duration)) Option {
	return func(c *Config) {
		if sleep != nil {
			c.Sleep = sleep
		}
	}
}
