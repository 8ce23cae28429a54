package gentests

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vic/achurch/pkg/config"
	"github.com/vic/achurch/pkg/lambda"
	"github.com/vic/achurch/pkg/macro"
	"github.com/vic/achurch/pkg/parser"
	"github.com/vic/achurch/pkg/session"
)

// MaxBetaReductions is the budget given to golden inputs. Every golden
// input must reach its normal form within it.
const MaxBetaReductions = 1000

// Normalize renames bound variables to x0, x1, ... in binding order so that
// alpha-equivalent terms render identically. Free variables keep their
// names.
func Normalize(t lambda.Term) lambda.Term {
	bindings := make(map[string]string)
	var idx int
	var walk func(lambda.Term) lambda.Term
	walk = func(tt lambda.Term) lambda.Term {
		switch v := tt.(type) {
		case lambda.Var:
			if name, ok := bindings[v.Name]; ok {
				return lambda.Var{Name: name}
			}
			return v
		case lambda.Abs:
			canon := fmt.Sprintf("x%d", idx)
			idx++
			old, had := bindings[v.Arg]
			bindings[v.Arg] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Arg] = old
			} else {
				delete(bindings, v.Arg)
			}
			return lambda.Abs{Arg: canon, Body: body}
		case lambda.App:
			return lambda.App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			return tt
		}
	}
	return walk(t)
}

// parseWithDefaults builds src with the default macros available.
func parseWithDefaults(src string) (lambda.Term, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	env := macro.NewEnv()
	b := macro.NewBuilder(env)
	if err := b.ImportDefaults(); err != nil {
		return nil, err
	}
	t, defined, err := b.Build(tree)
	if err != nil {
		return nil, err
	}
	if defined != "" {
		return nil, fmt.Errorf("expected a term, got definition of %s", defined)
	}
	return t, nil
}

// CheckReduction reduces inputStr in a fresh session with the default macros
// and compares its normal form with outputStr up to alpha equivalence.
func CheckReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	t.Helper()

	expected, err := parseWithDefaults(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("%s: parse error for expected output: %v", testName, err)
	}

	cfg := config.Default()
	cfg.MaxBetaReductions = MaxBetaReductions
	s := session.New(cfg)
	if _, err := s.ImportDefaults(); err != nil {
		t.Fatalf("%s: importing macros: %v", testName, err)
	}

	report, err := s.Eval(strings.TrimSpace(inputStr))
	if err != nil {
		t.Fatalf("%s: %v", testName, err)
	}
	if report.Defined != "" {
		t.Fatalf("%s: input is a definition of %s", testName, report.Defined)
	}
	if report.Result.Status != lambda.NormalForm {
		t.Fatalf("%s: no normal form within %d beta reductions", testName, MaxBetaReductions)
	}

	got := lambda.Render(Normalize(report.Result.Term))
	want := lambda.Render(Normalize(expected))
	if got != want {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s", testName, inputStr, want, got)
	}

	stats := report.Result.Stats
	t.Logf("%s: %d alpha conversions, %d beta reductions", testName, stats.AlphaConversions, stats.BetaReductions)
}
