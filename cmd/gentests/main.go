package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/achurch/pkg/parser"
)

type TestCase struct {
	Name   string
	Input  string
	Output string
}

const testTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/achurch/cmd/gentests/helper"

//go:embed input.lc
var input string

//go:embed output.lc
var output string

func Test_%s_Reduction(t *testing.T) {
	gentests.CheckReduction(t, "%s", input, output)
}
`

func main() {
	tests := []TestCase{
		// Identity
		{"001_id", "λx.x", "λy.y"},
		{"002_id_id", "(λx.x)(λy.y)", "λz.z"},

		// K Combinator (Erasure)
		{"003_k_1", "(λx.λy.x) a b", "a"},
		{"004_k_2", "(λxy.y) a b", "b"},
		{"005_erase_complex", "(λxy.x) a ((λz.z) b)", "a"},

		// S Combinator
		{"006_s_1", "(λxyz.xz(yz)) (λab.a) (λcd.c) e", "e"},
		{"007_s_2", "(λxyz.xz(yz)) (λab.b) (λcd.c) e", "λd.e"},

		// Church Numerals
		{"010_zero", "(λfx.x) f x", "x"},
		{"011_one", "(λfx.fx) f x", "f x"},
		{"012_two", "(λfx.f(fx)) f x", "f (f x)"},
		{"013_succ_0", "SUCC (λfx.x) f x", "f x"},
		{"014_add_2_3", "N2 + N3", "λxy.x(x(x(x(xy))))"},
		{"015_twice_succ", "TWICE SUCC N2", "λbc.b(b(b(bc)))"},

		// Logic
		{"020_true", "TRUE a b", "a"},
		{"021_false", "FALSE a b", "b"},
		{"022_not_true", "NOT TRUE a b", "b"},
		{"023_not_false", "NOT FALSE a b", "a"},
		{"024_and_true_true", "TRUE `AND` TRUE", "TRUE"},
		{"025_and_true_false", "TRUE `AND` FALSE", "FALSE"},
		{"026_or_false_true", "FALSE `OR` TRUE", "TRUE"},
		{"027_and_operator", "TRUE AND FALSE", "FALSE"},
		{"028_not_and_or", "NOT TRUE AND FALSE OR TRUE", "TRUE"},

		// Pairs
		{"030_pair_fst", "(λp.p(λxy.x))((λxyf.fxy) a b)", "a"},
		{"031_pair_snd", "(λp.p(λxy.y))((λxyf.fxy) a b)", "b"},

		// Capture avoidance
		{"040_capture", "(λx.λy.x) y", "λz.y"},
		{"041_capture_nested", "(λx.((λy.x)y)) y", "y"},

		// Sharing
		{"051_share_app", "(λf.f(fx))(λy.y)", "x"},
		{"070_share_complex", "(λx.x(xa))(λy.y)", "a"},
		{"071_erase_shared", "(λxy.y) ((λz.z) a) b", "b"},

		// Nested Lambdas
		{"081_nested_app", "(λxy.xy) a b", "a b"},

		// Free variables
		{"090_free_1", "x", "x"},
		{"091_free_app", "x y", "x y"},
		{"092_free_abs", "λy.xy", "λy.xy"},

		// Mixed
		{"100_mixed_1", "(λx.x) ((λy.y) a)", "a"},
	}

	baseDir := "cmd/gentests/generated"
	os.MkdirAll(baseDir, 0755)

	generated := 0
	for _, tc := range tests {
		if _, err := parser.Parse(tc.Input); err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			continue
		}
		if _, err := parser.Parse(tc.Output); err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			continue
		}

		dir := filepath.Join(baseDir, tc.Name)
		os.MkdirAll(dir, 0755)

		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name)

		os.WriteFile(filepath.Join(dir, "input.lc"), []byte(tc.Input+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "output.lc"), []byte(tc.Output+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
		generated++
	}

	fmt.Printf("Generated %d tests\n", generated)
}
