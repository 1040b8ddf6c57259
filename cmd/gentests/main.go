package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/lamb/pkg/debruijn"
	"github.com/vic/lamb/pkg/lambda"
)

type TestCase struct {
	Name     string
	Strategy debruijn.Strategy
	Input    string
	Output   string
}

const testTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lamb
var input string

//go:embed output.lamb
var output string

func Test_%s_Reduction(t *testing.T) {
	helper.CheckReduction(t, "%s", "%s", input, output)
}
`

const (
	no  = debruijn.NormalOrder
	ao  = debruijn.ApplicativeOrder
	cbn = debruijn.CallByName
	cbv = debruijn.CallByValue
)

// Inputs and outputs may use the prelude definitions and numerals.
var tests = []TestCase{
	// Identity
	{"001_id", no, `\x. x`, `\y. y`},
	{"002_id_id", no, `(\x. x) (\y. y)`, `\z. z`},

	// K Combinator (Erasure)
	{"003_k_1", no, `(\x. \y. x) a b`, `a`},
	{"004_k_2", no, `(\x. \y. y) a b`, `b`},
	{"005_erase_complex", no, `(\x. \y. x) a ((\z. z) b)`, `a`},

	// S Combinator
	{"006_s_1", no, `(\x. \y. \z. x z (y z)) (\a. \b. a) (\c. \d. c) e`, `e`},
	{"007_s_2", no, `(\x. \y. \z. x z (y z)) (\a. \b. b) (\c. \d. c) e`, `\d. e`},

	// Church Numerals
	{"010_zero", no, `(\f. \x. x) f x`, `x`},
	{"011_one", no, `(\f. \x. f x) f x`, `f x`},
	{"012_two", no, `(\f. \x. f (f x)) f x`, `f (f x)`},
	{"013_succ_0", no, `(\n. \f. \x. f (n f x)) (\f. \x. x) f x`, `f x`},
	{"014_succ_1", no, `Succ 1`, `2`},
	{"015_add_1_1", no, `Plus 1 1`, `2`},
	{"016_mul_2_2", no, `Mult 2 2`, `4`},
	{"017_pow_2_3", no, `Pow 2 3`, `8`},
	{"018_pred_3", no, `Pred 3`, `2`},
	{"019_fact_3", no, `Fact 3`, `6`},

	// Logic
	{"020_true", no, `True a b`, `a`},
	{"021_false", no, `False a b`, `b`},
	{"022_not_true", no, `Not True`, `False`},
	{"023_not_false", no, `(\b. b (\x. \y. y) (\x. \y. x)) (\x. \y. y) a b`, `a`},
	{"024_and_true_true", no, `And True True`, `True`},
	{"025_and_true_false", no, `(\p. \q. p q p) (\x. \y. x) (\x. \y. y) a b`, `b`},

	// Pairs
	{"030_pair_fst", no, `Fst (Pair a b)`, `a`},
	{"031_pair_snd", no, `(\p. p (\x. \y. y)) ((\x. \y. \f. f x y) a b)`, `b`},

	// Let bindings
	{"040_let_simple", no, `let x = a in x`, `a`},
	{"041_let_id", no, `let i = \x. x in i a`, `a`},
	{"042_let_nested", no, `let x = a in let y = b in x`, `a`},
	{"043_let_shadow", no, `let x = a in let x = b in x`, `b`},

	// Capture avoidance
	{"050_capture", no, `(\x. \y. x) y`, `\z. y`},
	{"051_share_app", no, `(\f. f (f x)) (\y. y)`, `x`},
	{"052_capture_deep", no, `(\x. \y. \z. x y z) (y z)`, `\a. \b. y z a b`},

	// Weak strategies
	{"060_cbn_whnf", cbn, `(\x. \y. x) ((\z. z) a)`, `\y. (\z. z) a`},
	{"061_cbn_lazy", cbn, `(\x. \y. y) Omega`, `\y. y`},
	{"062_cbn_head", cbn, `a ((\x. x) b)`, `a ((\x. x) b)`},
	{"063_cbv_whnf", cbv, `(\x. \y. x) ((\z. z) a)`, `\y. a`},
	{"064_cbv_under_lambda", cbv, `\x. (\y. y) x`, `\x. (\y. y) x`},
	{"065_cbv_args", cbv, `a ((\x. x) b)`, `a b`},

	// Applicative order
	{"070_ao_args", ao, `(\x. x x) ((\y. y) (\z. z))`, `\z. z`},
	{"071_ao_church", ao, `Plus 2 2`, `4`},

	// Nested Lambdas
	{"080_nested_1", no, `\x. \y. \z. x y z`, `\x. \y. \z. x y z`},
	{"081_nested_app", no, `(\x. \y. x y) a b`, `a b`},

	// Free variables
	{"090_free_1", no, `x`, `x`},
	{"091_free_app", no, `x y`, `x y`},
	{"092_free_abs", no, `\y. x y`, `\y. x y`},

	// Mixed
	{"100_mixed_1", no, `(\x. x) ((\y. y) a)`, `a`},
}

func main() {
	baseDir := "cmd/gentests/generated"
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", baseDir, err)
		os.Exit(1)
	}

	var generated int
	for _, tc := range tests {
		if _, err := lambda.Parse(tc.Input); err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			continue
		}
		if _, err := lambda.Parse(tc.Output); err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			continue
		}

		if err := writeCase(baseDir, tc); err != nil {
			fmt.Printf("Error writing %s: %v\n", tc.Name, err)
			continue
		}
		generated++
	}

	fmt.Printf("Generated %d tests\n", generated)
}

// writeCase writes the fixture directory of tc under baseDir.
func writeCase(baseDir string, tc TestCase) error {
	dir := filepath.Join(baseDir, tc.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	files := []struct {
		name string
		data string
	}{
		{"input.lamb", tc.Input + "\n"},
		{"output.lamb", tc.Output + "\n"},
		{"reduction_test.go", fmt.Sprintf(testTemplate, tc.Name, tc.Name, tc.Strategy)},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), []byte(f.data), 0644); err != nil {
			return err
		}
	}
	return nil
}
