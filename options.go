// SPDX-License-Identifier: MIT

package mosaic

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrOptionViolation reports an invalid Solve option.
var ErrOptionViolation = errors.New("mosaic: invalid option supplied")

// Option configures Solve.
type Option func(*Options)

// Options holds Solve parameters.
type Options struct {
	// Workers bounds the classifier's comparison pool; 0 means GOMAXPROCS.
	Workers int
	// Start, when non-zero, names the corner tile placed at (0,0).
	Start  int
	Logger *zap.Logger

	err error
}

// DefaultOptions returns a silent configuration that starts from the first
// corner in input order.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithWorkers bounds the number of goroutines comparing tiles.
// n < 0 is an ErrOptionViolation; 0 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStart fixes the corner tile the placement grows from.
// The image orientation depends on it; the checksum and roughness do not.
func WithStart(id int) Option {
	return func(o *Options) {
		if id <= 0 {
			o.err = fmt.Errorf("%w: start tile id must be positive, got %d", ErrOptionViolation, id)
			return
		}
		o.Start = id
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
