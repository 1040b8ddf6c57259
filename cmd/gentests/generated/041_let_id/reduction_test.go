package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lamb
var input string

//go:embed output.lamb
var output string

func Test_041_let_id_Reduction(t *testing.T) {
	helper.CheckReduction(t, "041_let_id", "normal", input, output)
}
