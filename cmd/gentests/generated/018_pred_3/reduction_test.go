package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lamb
var input string

//go:embed output.lamb
var output string

func Test_018_pred_3_Reduction(t *testing.T) {
	helper.CheckReduction(t, "018_pred_3", "normal", input, output)
}
