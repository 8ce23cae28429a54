package lambda

import "sort"

// NameSet is a set of variable names.
type NameSet map[string]struct{}

// NewNameSet returns a set holding names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Union returns a new set with the members of s and other.
func (s NameSet) Union(other NameSet) NameSet {
	res := make(NameSet, len(s)+len(other))
	for n := range s {
		res[n] = struct{}{}
	}
	for n := range other {
		res[n] = struct{}{}
	}
	return res
}

// Sorted returns the members in lexical order.
func (s NameSet) Sorted() []string {
	res := make([]string, 0, len(s))
	for n := range s {
		res = append(res, n)
	}
	sort.Strings(res)
	return res
}

// Variables collects every variable name occurring in t.
//
// Bound occurrences are not excluded: an abstraction contributes exactly what
// its body contains, nothing for the binder itself. Capture detection relies
// on this conservative set.
func Variables(t Term) NameSet {
	s := make(NameSet)
	collectVariables(t, s)
	return s
}

func collectVariables(t Term, s NameSet) {
	switch t := t.(type) {
	case Var:
		s[t.Name] = struct{}{}
	case App:
		collectVariables(t.Fun, s)
		collectVariables(t.Arg, s)
	case Abs:
		collectVariables(t.Body, s)
	}
}

// Occurs reports whether name appears as a variable anywhere in t,
// including under binders of the same name.
func Occurs(t Term, name string) bool {
	switch t := t.(type) {
	case Var:
		return t.Name == name
	case App:
		return Occurs(t.Fun, name) || Occurs(t.Arg, name)
	case Abs:
		return Occurs(t.Body, name)
	default:
		return false
	}
}

// FreshName picks the highest lowercase letter not in seen, scanning from
// 'z' down to 'a'. It returns false when all 26 letters are taken.
func FreshName(seen NameSet) (string, bool) {
	for c := 'z'; c >= 'a'; c-- {
		name := string(c)
		if !seen.Has(name) {
			return name, true
		}
	}
	return "", false
}
