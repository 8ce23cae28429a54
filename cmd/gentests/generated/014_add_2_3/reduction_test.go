package gentests

import _ "embed"
import "testing"
import "github.com/vic/achurch/cmd/gentests/helper"

//go:embed input.lc
var input string

//go:embed output.lc
var output string

func Test_014_add_2_3_Reduction(t *testing.T) {
	gentests.CheckReduction(t, "014_add_2_3", input, output)
}
