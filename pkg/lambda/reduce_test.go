package lambda

import (
	"errors"
	"fmt"
	"testing"
)

// deBruijn prints t with bound variables replaced by their binder distance.
// Free variables keep their names.
func deBruijn(t Term) string {
	var walk func(Term, []string) string
	walk = func(t Term, scope []string) string {
		switch t := t.(type) {
		case Var:
			for i := len(scope) - 1; i >= 0; i-- {
				if scope[i] == t.Name {
					return fmt.Sprintf("#%d", len(scope)-1-i)
				}
			}
			return t.Name
		case App:
			return "(" + walk(t.Fun, scope) + " " + walk(t.Arg, scope) + ")"
		case Abs:
			return "λ." + walk(t.Body, append(scope[:len(scope):len(scope)], t.Arg))
		}
		return "?"
	}
	return walk(t, nil)
}

func collect(t *testing.T, term Term, opts Options) (Result, []Event) {
	t.Helper()
	rec := NewRecorder(1000)
	res, err := Reduce(term, opts, rec)
	if err != nil {
		t.Fatalf("Reduce(%s): unexpected error: %v", term, err)
	}
	return res, rec.Snapshot()
}

func TestIdentityApplication(t *testing.T) {
	term := app(lam("x", v("x")), v("y"))
	res, events := collect(t, term, DefaultOptions())

	if !Equal(res.Term, v("y")) {
		t.Errorf("result = %s, want y", res.Term)
	}
	if res.Stats.BetaReductions != 1 || res.Stats.AlphaConversions != 0 {
		t.Errorf("stats = %+v, want 1 beta", res.Stats)
	}
	if res.Status != NormalForm {
		t.Errorf("status = %v, want NormalForm", res.Status)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	beta, ok := events[0].(BetaReductionEvent)
	if !ok {
		t.Fatalf("expected BetaReductionEvent, got %T", events[0])
	}
	if beta.Before != "((λx.x)y)" || beta.After != "y" {
		t.Errorf("event = %+v", beta)
	}
}

func TestBudgetExhaustedOmega(t *testing.T) {
	self := lam("x", app(v("x"), v("x")))
	omega := app(self, self)

	res, events := collect(t, omega, Options{MaxBetaReductions: 3, EmitAlpha: true, EmitBeta: true})
	if res.Status != BudgetExhausted {
		t.Fatalf("status = %v, want BudgetExhausted", res.Status)
	}
	if res.Stats.BetaReductions != 3 {
		t.Errorf("beta reductions = %d, want 3", res.Stats.BetaReductions)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Outcome() != BetaReduced {
			t.Errorf("event %d outcome = %v", i, ev.Outcome())
		}
		if ev.StepIndex() != uint64(i) {
			t.Errorf("event %d step index = %d", i, ev.StepIndex())
		}
	}
	if !Equal(res.Term, omega) {
		t.Errorf("omega should reduce to itself, got %s", res.Term)
	}
}

func TestCaptureAvoidanceTriggersBeforeBeta(t *testing.T) {
	// (λx.((λy.x) y)) y
	term := app(lam("x", app(lam("y", v("x")), v("y"))), v("y"))
	res, events := collect(t, term, DefaultOptions())

	if len(events) == 0 {
		t.Fatal("expected events")
	}
	alpha, ok := events[0].(AlphaConversionEvent)
	if !ok {
		t.Fatalf("first event = %T, want AlphaConversionEvent", events[0])
	}
	if alpha.From != "y" || alpha.To != "z" {
		t.Errorf("renaming = %s→%s, want y→z", alpha.From, alpha.To)
	}
	if alpha.Before != "(λx.((λy.x)y))" || alpha.After != "(λx.((λz.x)y))" {
		t.Errorf("alpha event = %+v", alpha)
	}
	if !Equal(res.Term, v("y")) {
		t.Errorf("result = %s, want y", res.Term)
	}
	if res.Stats.AlphaConversions != 1 || res.Stats.BetaReductions != 2 {
		t.Errorf("stats = %+v, want 1 alpha / 2 beta", res.Stats)
	}
}

func TestEventsRenderRewrittenSubterm(t *testing.T) {
	// f ((λx.λy.x) y): the redex sits in argument position.
	term := app(v("f"), app(lam("x", lam("y", v("x"))), v("y")))
	res, events := collect(t, term, DefaultOptions())

	want := []string{
		"(λx.(λy.x)) → α(y→z) → (λx.(λz.x))",
		"((λx.(λz.x))y) →β→ (λz.y)",
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, ev := range events {
		if got := FormatEvent(ev); got != want[i] {
			t.Errorf("event %d = %q, want %q", i, got, want[i])
		}
	}
	if got := Render(res.Term); got != "(f(λz.y))" {
		t.Errorf("result = %s, want (f(λz.y))", got)
	}
}

func TestStepReportsRedex(t *testing.T) {
	redex := app(lam("a", v("a")), v("b"))
	step, err := Step(app(v("f"), redex))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(step.Redex, redex) || !Equal(step.Contractum, v("b")) {
		t.Errorf("redex = %s, contractum = %s", step.Redex, step.Contractum)
	}
	if !Equal(step.Term, app(v("f"), v("b"))) {
		t.Errorf("term = %s", step.Term)
	}
}

func TestNoCapture(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want Term
	}{
		{
			name: "single binder",
			term: app(lam("x", lam("y", app(v("x"), v("y")))), v("y")),
			want: lam("p", app(v("y"), v("p"))),
		},
		{
			name: "two binders",
			term: app(lam("x", lam("y", lam("z", app(app(v("x"), v("y")), v("z"))))), app(v("y"), v("z"))),
			want: lam("p", lam("q", app(app(app(v("y"), v("z")), v("p")), v("q")))),
		},
		{
			name: "binder in application",
			term: app(lam("x", app(lam("y", app(v("y"), v("x"))), v("a"))), v("y")),
			want: app(v("a"), v("y")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := collect(t, tt.term, Options{MaxBetaReductions: 100})
			if res.Status != NormalForm {
				t.Fatalf("status = %v", res.Status)
			}
			if got, want := deBruijn(res.Term), deBruijn(tt.want); got != want {
				t.Errorf("result %s = %s, want %s", res.Term, got, want)
			}
		})
	}
}

func TestNormalFormIsIdempotent(t *testing.T) {
	terms := []Term{
		v("x"),
		lam("x", v("x")),
		app(v("f"), lam("x", app(v("x"), v("y")))),
	}
	for _, term := range terms {
		res, events := collect(t, term, DefaultOptions())
		if len(events) != 0 || res.Stats.Steps() != 0 {
			t.Errorf("%s: expected no steps, got %d", term, res.Stats.Steps())
		}
		if !Equal(res.Term, term) {
			t.Errorf("%s: changed to %s", term, res.Term)
		}
		if res.Status != NormalForm {
			t.Errorf("%s: status = %v", term, res.Status)
		}
	}
}

func TestBudgetPrefix(t *testing.T) {
	// SUCC N2 applied to free variables, with a capture along the way.
	succ := lam("a", lam("b", lam("c", app(v("b"), app(app(v("a"), v("b")), v("c"))))))
	two := lam("s", lam("z", app(v("s"), app(v("s"), v("z")))))
	term := app(app(app(succ, two), v("b")), v("c"))

	var previous []Event
	for budget := 1; budget <= 8; budget++ {
		_, events := collect(t, term, Options{MaxBetaReductions: budget, EmitAlpha: true, EmitBeta: true})
		if len(events) < len(previous) {
			t.Fatalf("budget %d produced fewer events (%d) than budget %d (%d)", budget, len(events), budget-1, len(previous))
		}
		for i := range previous {
			if FormatEvent(events[i]) != FormatEvent(previous[i]) {
				t.Fatalf("budget %d: event %d = %q, previously %q", budget, i, FormatEvent(events[i]), FormatEvent(previous[i]))
			}
		}
		previous = events
	}
}

func TestBudgetReachedOnNormalForm(t *testing.T) {
	term := app(lam("x", v("x")), v("y"))
	res, _ := collect(t, term, Options{MaxBetaReductions: 1})
	if res.Status != NormalForm {
		t.Errorf("status = %v, want NormalForm when the last allowed step reaches it", res.Status)
	}
}

func TestAlphaDoesNotConsumeBudget(t *testing.T) {
	term := app(lam("x", app(lam("y", v("x")), v("y"))), v("y"))
	res, _ := collect(t, term, Options{MaxBetaReductions: 1})
	if res.Stats.AlphaConversions != 1 || res.Stats.BetaReductions != 1 {
		t.Fatalf("stats = %+v, want 1 alpha / 1 beta", res.Stats)
	}
	if res.Status != BudgetExhausted {
		t.Errorf("status = %v, want BudgetExhausted", res.Status)
	}
	if want := "((λz.y)y)"; Render(res.Term) != want {
		t.Errorf("result = %s, want %s", res.Term, want)
	}
}

func TestEventFilters(t *testing.T) {
	term := app(lam("x", app(lam("y", v("x")), v("y"))), v("y"))

	_, events := collect(t, term, Options{MaxBetaReductions: 10, EmitAlpha: true})
	for _, ev := range events {
		if ev.Outcome() != AlphaConverted {
			t.Errorf("unexpected %v event with beta events disabled", ev.Outcome())
		}
	}
	if len(events) != 1 {
		t.Errorf("expected 1 alpha event, got %d", len(events))
	}

	_, events = collect(t, term, Options{MaxBetaReductions: 10, EmitBeta: true})
	if len(events) != 2 {
		t.Errorf("expected 2 beta events, got %d", len(events))
	}
	// Step indices count every committed step, emitted or not.
	if len(events) == 2 && (events[0].StepIndex() != 1 || events[1].StepIndex() != 2) {
		t.Errorf("step indices = %d, %d; want 1, 2", events[0].StepIndex(), events[1].StepIndex())
	}
}

func TestInvalidBudget(t *testing.T) {
	_, err := Reduce(v("x"), Options{MaxBetaReductions: 0}, nil)
	if !errors.Is(err, ErrInvalidBudget) {
		t.Fatalf("expected ErrInvalidBudget, got %v", err)
	}
}

func TestReduceFreshNameExhausted(t *testing.T) {
	// The argument mentions every letter, so no fresh binder name exists.
	var arg Term = v("a")
	for c := 'b'; c <= 'z'; c++ {
		arg = app(arg, v(string(c)))
	}
	term := app(lam("x", lam("y", v("x"))), arg)

	res, err := Reduce(term, DefaultOptions(), nil)
	if !errors.Is(err, ErrFreshNameExhausted) {
		t.Fatalf("expected ErrFreshNameExhausted, got %v", err)
	}
	if res.Status != Aborted {
		t.Errorf("status = %v, want Aborted", res.Status)
	}
	if !Equal(res.Term, term) {
		t.Errorf("term = %s, want the unreduced input", res.Term)
	}
}

func TestStepOrder(t *testing.T) {
	// Leftmost-outermost: the outer redex goes before the one in the argument.
	inner := app(lam("a", v("a")), v("b"))
	term := app(lam("x", v("c")), inner)

	step, err := Step(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Outcome != BetaReduced || !Equal(step.Term, v("c")) {
		t.Errorf("step = %v %s, want BetaReduced c", step.Outcome, step.Term)
	}

	// With a stuck head, the left side is reduced before the right.
	term = app(app(v("f"), inner), inner)
	step, err = Step(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "((fb)((λa.a)b))"; Render(step.Term) != want {
		t.Errorf("step = %s, want %s", step.Term, want)
	}
}
