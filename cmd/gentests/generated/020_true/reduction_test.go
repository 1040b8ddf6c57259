package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lamb
var input string

//go:embed output.lamb
var output string

func Test_020_true_Reduction(t *testing.T) {
	helper.CheckReduction(t, "020_true", "normal", input, output)
}
