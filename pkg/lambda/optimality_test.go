package lambda

import (
	"testing"

	"github.com/vic/lamb/pkg/debruijn"
)

// TestStepCounts pins the number of beta steps each strategy needs on small
// terms. The counts show where the strategies differ: normal order never
// reduces an argument it will discard, applicative order reduces every
// argument first, and the weak strategies stop at the first abstraction.
func TestStepCounts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		strategy debruijn.Strategy
		expected uint64
	}{
		{"identity", `\x. x`, debruijn.NormalOrder, 0},
		{"id_id", `(\x. x) (\y. y)`, debruijn.NormalOrder, 1},
		{"K_combinator_2args", `(\x. \y. x) a b`, debruijn.NormalOrder, 2},
		{"K_combinator_1arg", `(\x. \y. x) a`, debruijn.NormalOrder, 1},
		{"church_zero", `(\f. \x. x) f x`, debruijn.NormalOrder, 2},
		{"nested_id_normal", `(\x. x) ((\y. y) z)`, debruijn.NormalOrder, 2},
		{"nested_id_applicative", `(\x. x) ((\y. y) z)`, debruijn.ApplicativeOrder, 2},
		{"SKK_normal", `(\x. \y. \z. x z (y z)) (\a. \b. a) (\c. \d. c) e`, debruijn.NormalOrder, 5},
		{"discard_normal", `(\x. \y. y) ((\z. z) w)`, debruijn.NormalOrder, 1},
		{"discard_applicative", `(\x. \y. y) ((\z. z) w)`, debruijn.ApplicativeOrder, 2},
		{"discard_cbn", `(\x. \y. y) ((\z. z) w)`, debruijn.CallByName, 1},
		{"discard_cbv", `(\x. \y. y) ((\z. z) w)`, debruijn.CallByValue, 2},
		{"under_binder_cbn", `\x. (\y. y) x`, debruijn.CallByName, 0},
		{"under_binder_normal", `\x. (\y. y) x`, debruijn.NormalOrder, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, _ := ToIndex(mustParse(t, tt.input))
			_, steps, done := debruijn.ReduceWithLimit(idx, tt.strategy, 1000)
			if !done {
				t.Fatalf("%s did not reach a normal form in 1000 steps", tt.input)
			}
			if steps != tt.expected {
				t.Errorf("%s under %s: %d steps, expected %d", tt.input, tt.strategy, steps, tt.expected)
			}
		})
	}
}
