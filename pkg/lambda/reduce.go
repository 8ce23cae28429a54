package lambda

// Outcome classifies a single reduction step.
type Outcome int

const (
	NoChange Outcome = iota
	AlphaConverted
	BetaReduced
)

func (o Outcome) String() string {
	switch o {
	case NoChange:
		return "NoChange"
	case AlphaConverted:
		return "AlphaConverted"
	case BetaReduced:
		return "BetaReduced"
	default:
		return "Unknown"
	}
}

// StepResult is the term produced by one call to Step.
//
// Redex and Contractum are the sub-term that was rewritten and what replaced
// it: the abstraction before and after renaming for AlphaConverted, the
// redex and its contraction for BetaReduced. Renaming is set only for
// AlphaConverted steps.
type StepResult struct {
	Term       Term
	Outcome    Outcome
	Renaming   *Renaming
	Redex      Term
	Contractum Term
}

// Step performs one leftmost-outermost rewrite of t.
//
// The leftmost-outermost redex is first checked for variable capture; if a
// binder had to be renamed the step ends there with AlphaConverted, otherwise
// the redex is contracted and the step is BetaReduced. A term without redexes
// comes back unchanged with NoChange.
func Step(t Term) (StepResult, error) {
	switch t := t.(type) {
	case Abs:
		res, err := Step(t.Body)
		if err != nil || res.Outcome == NoChange {
			return StepResult{Term: t, Outcome: NoChange}, err
		}
		res.Term = Abs{Arg: t.Arg, Body: res.Term}
		return res, nil

	case App:
		if fn, ok := t.Fun.(Abs); ok {
			converted, r, err := AlphaConvert(fn, t.Arg)
			if err != nil {
				return StepResult{Term: t, Outcome: NoChange}, err
			}
			if r != nil {
				return StepResult{
					Term:       App{Fun: converted, Arg: t.Arg},
					Outcome:    AlphaConverted,
					Renaming:   r,
					Redex:      fn,
					Contractum: converted,
				}, nil
			}
			contracted := Substitute(fn.Body, fn.Arg, t.Arg)
			return StepResult{
				Term:       contracted,
				Outcome:    BetaReduced,
				Redex:      t,
				Contractum: contracted,
			}, nil
		}

		res, err := Step(t.Fun)
		if err != nil {
			return StepResult{Term: t, Outcome: NoChange}, err
		}
		if res.Outcome != NoChange {
			res.Term = App{Fun: res.Term, Arg: t.Arg}
			return res, nil
		}

		res, err = Step(t.Arg)
		if err != nil || res.Outcome == NoChange {
			return StepResult{Term: t, Outcome: NoChange}, err
		}
		res.Term = App{Fun: t.Fun, Arg: res.Term}
		return res, nil

	default:
		return StepResult{Term: t, Outcome: NoChange}, nil
	}
}

// HasRedex reports whether t contains an application of an abstraction.
func HasRedex(t Term) bool {
	switch t := t.(type) {
	case App:
		if _, ok := t.Fun.(Abs); ok {
			return true
		}
		return HasRedex(t.Fun) || HasRedex(t.Arg)
	case Abs:
		return HasRedex(t.Body)
	default:
		return false
	}
}
