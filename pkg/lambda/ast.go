package lambda

import "strings"

// Term represents a lambda calculus term.
// The set of terms is closed: Var, Abs and App are the only implementations.
type Term interface {
	String() string
	term()
}

// TermKind identifies the variant of a term.
type TermKind int

const (
	KindVar TermKind = iota
	KindApp
	KindAbs
)

func (k TermKind) String() string {
	switch k {
	case KindVar:
		return "Var"
	case KindApp:
		return "App"
	case KindAbs:
		return "Abs"
	default:
		return "Unknown"
	}
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (Var) term() {}

func (v Var) String() string {
	return v.Name
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Arg  string
	Body Term
}

func (Abs) term() {}

func (a Abs) String() string {
	return Render(a)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (App) term() {}

func (a App) String() string {
	return Render(a)
}

// Render prints a term fully parenthesised and without spaces:
// x, (ab), (λx.b).
func Render(t Term) string {
	var sb strings.Builder
	render(&sb, t)
	return sb.String()
}

func render(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case Var:
		sb.WriteString(t.Name)
	case App:
		sb.WriteByte('(')
		render(sb, t.Fun)
		render(sb, t.Arg)
		sb.WriteByte(')')
	case Abs:
		sb.WriteString("(λ")
		sb.WriteString(t.Arg)
		sb.WriteByte('.')
		render(sb, t.Body)
		sb.WriteByte(')')
	}
}

// Kind returns the variant tag of t.
func Kind(t Term) TermKind {
	switch t.(type) {
	case App:
		return KindApp
	case Abs:
		return KindAbs
	default:
		return KindVar
	}
}

// Children returns the direct subterms of t, left to right.
func Children(t Term) []Term {
	switch t := t.(type) {
	case App:
		return []Term{t.Fun, t.Arg}
	case Abs:
		return []Term{t.Body}
	default:
		return nil
	}
}

// Equal reports whether a and b are the same tree, name for name.
// Alpha-equivalent terms with different binder names are not equal.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Var:
		bv, ok := b.(Var)
		return ok && a.Name == bv.Name
	case App:
		ba, ok := b.(App)
		return ok && Equal(a.Fun, ba.Fun) && Equal(a.Arg, ba.Arg)
	case Abs:
		bb, ok := b.(Abs)
		return ok && a.Arg == bb.Arg && Equal(a.Body, bb.Body)
	default:
		return false
	}
}
