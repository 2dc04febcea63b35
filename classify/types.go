// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Kinds, Result, options and sentinel errors.

package classify

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic/core"
)

// Sentinel errors for classification.
var (
	ErrNoTiles         = errors.New("classify: no tiles")
	ErrTooFewMatches   = errors.New("classify: tile has fewer than 2 matching borders")
	ErrTooManyMatches  = errors.New("classify: tile has more than 4 matching borders")
	ErrSharedTwice     = errors.New("classify: tile pair shares more than one border")
	ErrCornerCount     = errors.New("classify: mosaic must have exactly 4 corners")
	ErrNotSquare       = errors.New("classify: tiles do not form a square mosaic")
	ErrOptionViolation = errors.New("classify: invalid option supplied")
)

// Kind is a tile's role in the finished mosaic.
type Kind int

const (
	Corner   Kind = iota + 2 // two matching borders
	Edge                     // three matching borders
	Interior                 // four matching borders
)

func (k Kind) String() string {
	switch k {
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	case Interior:
		return "interior"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Metadata keys set on every adjacency graph vertex.
const (
	MetaTile    = "tile"    // int tile id
	MetaMatches = "matches" // int matching border count
	MetaKind    = "kind"    // Kind
)

// Result is the classification of one tile set.
type Result struct {
	Side     int          // k, tiles per mosaic side
	Matches  map[int]int  // tile id → matching border count
	Kinds    map[int]Kind // tile id → role
	Corners  []int        // ascending
	Edges    []int        // ascending
	Interior []int        // ascending
	Graph    *core.Graph  // vertex per tile (decimal id), edge per shared border
}

// Checksum returns the product of the corner tile ids.
func (r *Result) Checksum() int64 {
	p := int64(1)
	for _, id := range r.Corners {
		p *= int64(id)
	}

	return p
}

// Option configures Classify.
type Option func(*Options)

// Options holds classification parameters.
type Options struct {
	// Workers bounds the goroutines of the comparison pass.
	Workers int
	Logger  *zap.Logger

	err error
}

// DefaultOptions returns GOMAXPROCS workers and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// WithWorkers sets the worker count; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
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
