// Package helper checks the reduction fixtures under cmd/gentests.
package helper

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vic/lamb/pkg/debruijn"
	"github.com/vic/lamb/pkg/eval"
	"github.com/vic/lamb/pkg/lambda"
)

// Limit bounds every fixture reduction.
const Limit = 100_000

// NewEvaluator returns an evaluator with the prelude loaded.
func NewEvaluator(t *testing.T, strategy string) *eval.Evaluator {
	t.Helper()
	s, err := debruijn.ParseStrategy(strategy)
	if err != nil {
		t.Fatalf("%v", err)
	}
	ev := eval.New(eval.Options{Strategy: s, Limit: Limit})
	if err := ev.LoadPrelude(); err != nil {
		t.Fatalf("LoadPrelude error: %v", err)
	}
	return ev
}

// Expected parses and expands an expected result. Prelude names and
// numerals may be used.
func Expected(t *testing.T, ev *eval.Evaluator, outputStr string) lambda.Term {
	t.Helper()
	term, err := lambda.Parse(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}
	term, err = ev.Expand(term)
	if err != nil {
		t.Fatalf("Expand error for expected output: %v", err)
	}
	return term
}

// CheckReduction reduces input under strategy and compares the result
// with output up to renaming of bound variables.
func CheckReduction(t *testing.T, testName, strategy, inputStr, outputStr string) {
	t.Helper()
	ev := NewEvaluator(t, strategy)
	expectedTerm := Expected(t, ev, outputStr)

	actualTerm, err := ev.ExecSource(context.Background(), strings.TrimSpace(inputStr))
	if errors.Is(err, debruijn.ErrStepLimit) {
		t.Fatalf("%s: no normal form after %d steps", testName, Limit)
	}
	if err != nil {
		t.Fatalf("%s: %v", testName, err)
	}
	if actualTerm == nil {
		t.Fatalf("%s: input is not an expression", testName)
	}

	if !lambda.AlphaEqual(actualTerm, expectedTerm) {
		t.Errorf("Mismatch in %s (%s):\nInput: %s\nExpected: %s\nActual:   %s",
			testName, strategy, inputStr, lambda.Canonical(expectedTerm), lambda.Canonical(actualTerm))
	}

	stats := ev.Stats()
	t.Logf("%s: %d reductions in %v", testName, stats.Steps, stats.Elapsed)
}
