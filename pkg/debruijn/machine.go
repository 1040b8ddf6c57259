package debruijn

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"
)

var debug = os.Getenv("LAMB_DEBUG") != ""

// ErrStepLimit is matched by the error Run returns when it runs out of steps.
var ErrStepLimit = errors.New("step limit exceeded")

// LimitError reports a reduction stopped after Steps steps without reaching
// the strategy's target form.
type LimitError struct {
	Steps uint64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("no normal form after %d steps", e.Steps)
}

func (e *LimitError) Is(target error) bool {
	return target == ErrStepLimit
}

// Stats holds the counters of the last Run.
type Stats struct {
	Steps      uint64
	Elapsed    time.Duration
	ResultSize int
}

// ReduceWithLimit performs at most limit steps of s on t. It returns the
// term reached, the number of steps performed and whether that term is in
// the strategy's target form.
func ReduceWithLimit(t Term, s Strategy, limit uint64) (Term, uint64, bool) {
	var steps uint64
	for steps < limit {
		next, ok := Step(t, s)
		if !ok {
			return next, steps, true
		}
		t = next
		steps++
	}
	// The limit may land exactly on the normal form.
	_, more := Step(t, s)
	return t, steps, !more
}

// Machine drives Step with an optional step limit, cancellation and a
// trace of the intermediate terms. A Machine is not safe for concurrent use.
type Machine struct {
	strategy Strategy
	limit    uint64

	steps uint64
	stats Stats

	traceBuf []TraceEvent
	traceCap uint64
	traceIdx uint64
	traceOn  bool
}

func NewMachine(s Strategy) *Machine {
	return &Machine{strategy: s}
}

func (m *Machine) Strategy() Strategy { return m.strategy }

func (m *Machine) SetStrategy(s Strategy) { m.strategy = s }

// SetLimit bounds the number of steps of each Run. Zero means unbounded.
func (m *Machine) SetLimit(n uint64) { m.limit = n }

func (m *Machine) Limit() uint64 { return m.limit }

func (m *Machine) Stats() Stats { return m.stats }

// Run reduces t until Step reports no progress, the step limit is reached
// or ctx is done. On a limit or cancellation the partial term is returned
// together with a *LimitError or ctx.Err().
func (m *Machine) Run(ctx context.Context, t Term) (Term, error) {
	start := time.Now()
	m.steps = 0
	m.traceIdx = 0
	defer func() {
		m.stats = Stats{
			Steps:      m.steps,
			Elapsed:    time.Since(start),
			ResultSize: Size(t),
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		if m.limit > 0 && m.steps >= m.limit {
			if _, more := Step(t, m.strategy); !more {
				return t, nil
			}
			return t, &LimitError{Steps: m.steps}
		}
		next, ok := Step(t, m.strategy)
		if !ok {
			return t, nil
		}
		t = next
		m.steps++
		m.recordTrace(t)
		if debug {
			log.Printf("[lamb] %s step %d: %s", m.strategy, m.steps, t)
		}
	}
}
