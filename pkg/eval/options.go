package eval

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/vic/lamb/pkg/debruijn"
)

// DefaultLimit is the step limit used when LAMB_LIMIT is not set.
const DefaultLimit = 1_000_000

// Options configures an Evaluator.
type Options struct {
	Strategy debruijn.Strategy
	// Limit bounds the steps of one reduction. Zero means unbounded.
	Limit uint64
	// Timeout bounds the wall time of one reduction. Zero means none.
	Timeout time.Duration
	// SearchPath lists the directories tried for an import that is not
	// found next to the importing file.
	SearchPath []string
	// Output receives the result of every bare expression in a loaded
	// file. Results are discarded when nil.
	Output io.Writer
}

// DefaultOptions returns normal order with DefaultLimit, overridden by the
// LAMB_STRATEGY, LAMB_LIMIT, LAMB_TIMEOUT and LAMB_PATH environment
// variables. Malformed values are reported and ignored.
func DefaultOptions() Options {
	opts := Options{
		Strategy: debruijn.NormalOrder,
		Limit:    DefaultLimit,
	}

	if v := os.Getenv("LAMB_STRATEGY"); v != "" {
		if s, err := debruijn.ParseStrategy(v); err == nil {
			opts.Strategy = s
		} else {
			log.Printf("lamb: ignoring LAMB_STRATEGY: %v", err)
		}
	}
	if v := os.Getenv("LAMB_LIMIT"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			opts.Limit = n
		} else {
			log.Printf("lamb: ignoring LAMB_LIMIT=%q: %v", v, err)
		}
	}
	if v := os.Getenv("LAMB_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.Timeout = d
		} else {
			log.Printf("lamb: ignoring LAMB_TIMEOUT=%q: %v", v, err)
		}
	}
	if v := os.Getenv("LAMB_PATH"); v != "" {
		opts.SearchPath = lo.Filter(filepath.SplitList(v), func(dir string, _ int) bool {
			return strings.TrimSpace(dir) != ""
		})
	}
	return opts
}
