package lambda

// Substitute replaces every variable called name in t with replacement.
//
// Binder names are never rewritten and no shadowing check is made: callers
// run capture avoidance first (see ResolveCaptures).
func Substitute(t Term, name string, replacement Term) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == name {
			return replacement
		}
		return t
	case App:
		return App{
			Fun: Substitute(t.Fun, name, replacement),
			Arg: Substitute(t.Arg, name, replacement),
		}
	case Abs:
		return Abs{Arg: t.Arg, Body: Substitute(t.Body, name, replacement)}
	default:
		return t
	}
}
