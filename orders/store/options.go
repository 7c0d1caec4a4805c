package store

import (
	"log/slog"
	"time"

	"github.com/tomypizza/orderdesk/orders"
)

// Option modifies the JSON file store configuration.
type Option func(*jsonFileStore)

// WithFileSystem sets a custom FileSystem implementation.
func WithFileSystem(fs FileSystem) Option {
	return func(s *jsonFileStore) {
		s.fs = fs
	}
}

// WithFileLockFactory sets a custom FileLockFactory implementation.
func WithFileLockFactory(factory FileLockFactory) Option {
	return func(s *jsonFileStore) {
		s.lockFactory = factory
	}
}

// WithTimeFunc sets a custom time function so tests get deterministic
// timestamps.
func WithTimeFunc(fn func() time.Time) Option {
	return func(s *jsonFileStore) {
		s.timeFunc = fn
	}
}

// WithLogger sets the structured logger. Nil means slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *jsonFileStore) {
		s.logger = logger
	}
}

// WithSeed replaces the demo records used when the data file is absent.
// An empty slice starts the collection empty.
func WithSeed(seed []orders.Order) Option {
	return func(s *jsonFileStore) {
		s.seed = seed
	}
}
