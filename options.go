package reactiveset

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// Options contains the configuration options for a SortedSet. The options are immutable for the lifetime of the set.
type Options struct {
	// MaxSize is the maximum number of elements the set retains (0 means unbounded).
	MaxSize int

	// Logger is the logger that receives warnings about ignored elements.
	Logger log.Logger
}

// WithMaxSize is an option that bounds the number of retained elements: whenever the set grows beyond maxSize, the
// largest element is evicted so the set always keeps the maxSize smallest elements.
func WithMaxSize(maxSize int) options.Option[Options] {
	if maxSize <= 0 {
		panic(ierrors.Errorf("max size must be positive (got %d)", maxSize))
	}

	return func(opts *Options) {
		opts.MaxSize = maxSize
	}
}

// WithLogger is an option to set the logger that receives warnings about ignored elements.
func WithLogger(logger log.Logger) options.Option[Options] {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
