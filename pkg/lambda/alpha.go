package lambda

import "fmt"

// Renaming records a single alpha conversion of a binder.
type Renaming struct {
	From string
	To   string
}

func (r Renaming) String() string {
	return fmt.Sprintf("α(%s→%s)", r.From, r.To)
}

// ResolveCaptures looks for the first abstraction inside body whose binder is
// one of conflicts while bound still occurs in its body. That binder is
// renamed to a name absent from seen and the rewritten body is returned along
// with the renaming. Without a conflict body comes back untouched and the
// renaming is nil.
//
// The search is depth first: the left side of an application is exhausted
// before the right side is visited, and an outer abstraction is checked
// before its body. At most one binder is renamed per call.
func ResolveCaptures(body Term, bound string, conflicts, seen NameSet) (Term, *Renaming, error) {
	switch t := body.(type) {
	case App:
		fun, r, err := ResolveCaptures(t.Fun, bound, conflicts, seen)
		if err != nil || r != nil {
			return App{Fun: fun, Arg: t.Arg}, r, err
		}
		arg, r, err := ResolveCaptures(t.Arg, bound, conflicts, seen)
		return App{Fun: t.Fun, Arg: arg}, r, err

	case Abs:
		if conflicts.Has(t.Arg) && Occurs(t.Body, bound) {
			fresh, ok := FreshName(seen)
			if !ok {
				return body, nil, fmt.Errorf("renaming %s: %w", t.Arg, ErrFreshNameExhausted)
			}
			renamed := Abs{Arg: fresh, Body: Substitute(t.Body, t.Arg, Var{Name: fresh})}
			return renamed, &Renaming{From: t.Arg, To: fresh}, nil
		}
		inner, r, err := ResolveCaptures(t.Body, bound, conflicts, seen)
		return Abs{Arg: t.Arg, Body: inner}, r, err

	default:
		return body, nil, nil
	}
}

// AlphaConvert prepares the redex (fn arg) for beta reduction. Conflicts are
// the variables of arg; fresh names avoid every variable of fn and arg.
func AlphaConvert(fn Abs, arg Term) (Abs, *Renaming, error) {
	conflicts := Variables(arg)
	seen := Variables(fn).Union(conflicts)
	body, r, err := ResolveCaptures(fn.Body, fn.Arg, conflicts, seen)
	if err != nil || r == nil {
		return fn, nil, err
	}
	return Abs{Arg: fn.Arg, Body: body}, r, nil
}
