package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lamb
var input string

//go:embed output.lamb
var output string

func Test_030_pair_fst_Reduction(t *testing.T) {
	helper.CheckReduction(t, "030_pair_fst", "normal", input, output)
}
