package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lamb
var input string

//go:embed output.lamb
var output string

func Test_003_k_1_Reduction(t *testing.T) {
	helper.CheckReduction(t, "003_k_1", "normal", input, output)
}
