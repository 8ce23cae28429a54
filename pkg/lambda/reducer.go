package lambda

import "fmt"

// DefaultMaxBetaReductions is the beta budget used when none is configured.
const DefaultMaxBetaReductions = 10

// Options controls a Reducer.
type Options struct {
	// MaxBetaReductions bounds the number of beta steps. Must be positive.
	MaxBetaReductions int
	EmitAlpha         bool
	EmitBeta          bool
}

// DefaultOptions emits every event with the default budget.
func DefaultOptions() Options {
	return Options{
		MaxBetaReductions: DefaultMaxBetaReductions,
		EmitAlpha:         true,
		EmitBeta:          true,
	}
}

// Status tells why a reduction stopped.
type Status int

const (
	NormalForm Status = iota
	BudgetExhausted
	// Aborted means a step failed; the term may still contain redexes.
	Aborted
)

func (s Status) String() string {
	switch s {
	case NormalForm:
		return "NormalForm"
	case BudgetExhausted:
		return "BudgetExhausted"
	case Aborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Stats holds reduction statistics.
type Stats struct {
	AlphaConversions uint64
	BetaReductions   uint64
}

// Steps returns the number of committed steps.
func (s Stats) Steps() uint64 {
	return s.AlphaConversions + s.BetaReductions
}

// Result is the outcome of a bounded reduction.
type Result struct {
	Term   Term
	Status Status
	Stats  Stats
}

// Reducer drives Step until a normal form or the beta budget is reached.
// A Reducer holds no state between calls to Reduce.
type Reducer struct {
	opts Options
	sink Sink
}

// NewReducer validates opts and returns a Reducer reporting to sink.
// A nil sink discards events.
func NewReducer(opts Options, sink Sink) (*Reducer, error) {
	if opts.MaxBetaReductions < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidBudget, opts.MaxBetaReductions)
	}
	if sink == nil {
		sink = Discard
	}
	return &Reducer{opts: opts, sink: sink}, nil
}

// Reduce rewrites t in normal order. Alpha conversions are free; each beta
// reduction consumes one unit of budget. When the budget runs out before a
// normal form is reached the result has status BudgetExhausted.
//
// On error the partially reduced term is returned alongside the error with
// status Aborted.
func (r *Reducer) Reduce(t Term) (Result, error) {
	var stats Stats
	budget := r.opts.MaxBetaReductions
	current := t

	for {
		step, err := Step(current)
		if err != nil {
			return Result{Term: current, Status: Aborted, Stats: stats}, fmt.Errorf("step %d: %w", stats.Steps()+1, err)
		}

		switch step.Outcome {
		case NoChange:
			return Result{Term: current, Status: NormalForm, Stats: stats}, nil

		case AlphaConverted:
			if r.opts.EmitAlpha {
				r.sink.Emit(AlphaConversionEvent{
					Step:   stats.Steps(),
					Before: Render(step.Redex),
					After:  Render(step.Contractum),
					From:   step.Renaming.From,
					To:     step.Renaming.To,
				})
			}
			stats.AlphaConversions++

		case BetaReduced:
			if r.opts.EmitBeta {
				r.sink.Emit(BetaReductionEvent{
					Step:   stats.Steps(),
					Before: Render(step.Redex),
					After:  Render(step.Contractum),
				})
			}
			stats.BetaReductions++
			budget--
		}

		current = step.Term
		if budget <= 0 {
			status := BudgetExhausted
			if !HasRedex(current) {
				status = NormalForm
			}
			return Result{Term: current, Status: status, Stats: stats}, nil
		}
	}
}

// Reduce runs a Reducer built from opts once.
func Reduce(t Term, opts Options, sink Sink) (Result, error) {
	r, err := NewReducer(opts, sink)
	if err != nil {
		return Result{Term: t}, err
	}
	return r.Reduce(t)
}
