package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lamb
var input string

//go:embed output.lamb
var output string

func Test_015_add_1_1_Reduction(t *testing.T) {
	helper.CheckReduction(t, "015_add_1_1", "normal", input, output)
}
