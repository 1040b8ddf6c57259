package debruijn_test

import (
	"testing"

	"github.com/vic/lamb/pkg/debruijn"
	"github.com/vic/lamb/pkg/lambda"
)

func parseIndexed(t *testing.T, src string) (debruijn.Term, *lambda.Resolver) {
	t.Helper()
	term, err := lambda.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	idx, r := lambda.ToIndex(term)
	return idx, r
}

func TestStrategies(t *testing.T) {
	const (
		no  = debruijn.NormalOrder
		ao  = debruijn.ApplicativeOrder
		cbn = debruijn.CallByName
		cbv = debruijn.CallByValue
	)
	tests := []struct {
		input    string
		expected map[debruijn.Strategy]string
	}{
		{`(\x. x) ((\y. y) z)`, map[debruijn.Strategy]string{no: "z", ao: "z", cbn: "z", cbv: "z"}},
		{`\x. (\y. y) x`, map[debruijn.Strategy]string{
			no: "(λx. x)", ao: "(λx. x)",
			cbn: "(λx. ((λy. y) x))", cbv: "(λx. ((λy. y) x))",
		}},
		{`a ((\x. x) b)`, map[debruijn.Strategy]string{
			no: "(a b)", ao: "(a b)", cbn: "(a ((λx. x) b))", cbv: "(a b)",
		}},
		{`(\x. \y. x y) (\z. z)`, map[debruijn.Strategy]string{
			no: "(λy. y)", ao: "(λy. y)", cbn: "(λy. ((λz. z) y))", cbv: "(λy. ((λz. z) y))",
		}},
		{`(\x. \y. y) ((\x. x x) (\x. x x))`, map[debruijn.Strategy]string{no: "(λy. y)", cbn: "(λy. y)"}},
	}

	for _, tt := range tests {
		for s, want := range tt.expected {
			t.Run(s.String()+"/"+tt.input, func(t *testing.T) {
				idx, r := parseIndexed(t, tt.input)
				if got := r.ToNamed(debruijn.Reduce(idx, s)).String(); got != want {
					t.Errorf("%s reduced to %s, expected %s", tt.input, got, want)
				}
			})
		}
	}
}

// Strict strategies evaluate a discarded divergent argument.
func TestStrictStrategiesDiverge(t *testing.T) {
	idx, _ := parseIndexed(t, `(\x. \y. y) ((\x. x x) (\x. x x))`)
	for _, s := range []debruijn.Strategy{debruijn.ApplicativeOrder, debruijn.CallByValue} {
		if _, steps, done := debruijn.ReduceWithLimit(idx, s, 100); done || steps != 100 {
			t.Errorf("%s: done=%v after %d steps, expected to run out of steps", s, done, steps)
		}
	}
}

func TestNormalizeAgreesWithReduce(t *testing.T) {
	corpus := []string{
		`\x. x`,
		`(\x. x) (\y. y)`,
		`(\x. \y. x) a b`,
		`(\x. \y. \z. x z (y z)) (\a. \b. a) (\c. \d. c) e`,
		`(\f. \x. f (f x)) (\f. \x. f (f x))`,
		`\x. (\y. y) x`,
		`(\x. x x) (\y. y)`,
		`a ((\x. x) b)`,
		`(\x. \y. x y) (\z. z) w`,
		`\f. (\x. f (x x)) (\x. f x)`,
		`(\n. \f. \x. f (n f x)) (\f. \x. f x)`,
	}
	for _, src := range corpus {
		idx, _ := parseIndexed(t, src)
		for _, s := range debruijn.Strategies() {
			small := debruijn.Reduce(idx, s)
			big := debruijn.Normalize(idx, s)
			if !debruijn.Equal(small, big) {
				t.Errorf("%s under %s: Reduce gave %s, Normalize gave %s", src, s, small, big)
			}
			if _, more := debruijn.Step(small, s); more {
				t.Errorf("%s under %s: %s can still step", src, s, small)
			}
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := map[string]debruijn.Strategy{
		"normal":        debruijn.NormalOrder,
		"NO":            debruijn.NormalOrder,
		"applicative":   debruijn.ApplicativeOrder,
		"ao":            debruijn.ApplicativeOrder,
		"call-by-name":  debruijn.CallByName,
		" cbn ":         debruijn.CallByName,
		"call-by-value": debruijn.CallByValue,
		"value":         debruijn.CallByValue,
	}
	for in, want := range tests {
		got, err := debruijn.ParseStrategy(in)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q) = %v, %v; expected %v", in, got, err, want)
		}
	}
	if _, err := debruijn.ParseStrategy("lazy"); err == nil {
		t.Error("expected an error for an unknown strategy")
	}
	for _, s := range debruijn.Strategies() {
		back, err := debruijn.ParseStrategy(s.String())
		if err != nil || back != s {
			t.Errorf("%s does not parse back", s)
		}
	}
}
