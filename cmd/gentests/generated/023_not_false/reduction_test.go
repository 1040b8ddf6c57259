package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lamb
var input string

//go:embed output.lamb
var output string

func Test_023_not_false_Reduction(t *testing.T) {
	helper.CheckReduction(t, "023_not_false", "normal", input, output)
}
