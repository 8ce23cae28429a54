package lambda

import "testing"

func TestRecorderCapacity(t *testing.T) {
	rec := NewRecorder(2)
	for i := 0; i < 5; i++ {
		rec.Emit(BetaReductionEvent{Step: uint64(i)})
	}
	events := rec.Snapshot()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].StepIndex() != 0 || events[1].StepIndex() != 1 {
		t.Errorf("recorder kept %v", events)
	}
	if rec.Dropped() != 3 {
		t.Errorf("Dropped() = %d, want 3", rec.Dropped())
	}
}

func TestFormatEvent(t *testing.T) {
	alpha := AlphaConversionEvent{Before: "(λx.(λy.x))", After: "(λx.(λz.x))", From: "y", To: "z"}
	if got, want := FormatEvent(alpha), "(λx.(λy.x)) → α(y→z) → (λx.(λz.x))"; got != want {
		t.Errorf("FormatEvent(alpha) = %q, want %q", got, want)
	}
	beta := BetaReductionEvent{Before: "((λx.x)y)", After: "y"}
	if got, want := FormatEvent(beta), "((λx.x)y) →β→ y"; got != want {
		t.Errorf("FormatEvent(beta) = %q, want %q", got, want)
	}
}

func TestSinkFunc(t *testing.T) {
	var got []Outcome
	sink := SinkFunc(func(ev Event) { got = append(got, ev.Outcome()) })

	term := app(lam("x", app(lam("y", v("x")), v("y"))), v("y"))
	if _, err := Reduce(term, DefaultOptions(), sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Outcome{AlphaConverted, BetaReduced, BetaReduced}
	if len(got) != len(want) {
		t.Fatalf("outcomes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("outcome %d = %v, want %v", i, got[i], want[i])
		}
	}
}
