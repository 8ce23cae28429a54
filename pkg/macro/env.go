// Package macro holds the per-session macro table and turns parse trees into
// lambda terms, expanding macro references and infix operators on the way.
package macro

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vic/achurch/pkg/lambda"
)

// ErrUnknownMacro matches every *UnknownMacroError.
var ErrUnknownMacro = errors.New("unknown macro")

// UnknownMacroError is returned when a macro name has no definition.
type UnknownMacroError struct {
	Name string
}

func (e *UnknownMacroError) Error() string {
	return fmt.Sprintf("unknown macro %q", e.Name)
}

func (e *UnknownMacroError) Is(target error) bool {
	return target == ErrUnknownMacro
}

// Env maps macro names to terms. The last definition of a name wins.
// An Env belongs to a single session and is not safe for concurrent use.
type Env struct {
	macros    map[string]lambda.Term
	operators map[string]bool
}

func NewEnv() *Env {
	return &Env{
		macros:    make(map[string]lambda.Term),
		operators: make(map[string]bool),
	}
}

// Define binds name to t, replacing any previous definition.
func (e *Env) Define(name string, t lambda.Term) {
	e.macros[name] = t
}

// Lookup returns the term bound to name.
func (e *Env) Lookup(name string) (lambda.Term, error) {
	t, ok := e.macros[name]
	if !ok {
		return nil, &UnknownMacroError{Name: name}
	}
	return t, nil
}

// MarkOperator lets the alphabetic macro name be written between its two
// operands, as in TRUE AND FALSE. The mark outlives redefinitions of name.
func (e *Env) MarkOperator(name string) {
	e.operators[name] = true
}

// IsOperator reports whether name was marked with MarkOperator.
func (e *Env) IsOperator(name string) bool {
	return e.operators[name]
}

// ExpandInfix builds ((op left) right) for the infix macro op.
func (e *Env) ExpandInfix(left lambda.Term, op string, right lambda.Term) (lambda.Term, error) {
	fn, err := e.Lookup(op)
	if err != nil {
		return nil, err
	}
	return lambda.App{Fun: lambda.App{Fun: fn, Arg: left}, Arg: right}, nil
}

func (e *Env) Len() int {
	return len(e.macros)
}

// Names returns the defined names in lexical order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.macros))
	for name := range e.macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Each calls fn for every macro in name order.
func (e *Env) Each(fn func(name string, t lambda.Term)) {
	for _, name := range e.Names() {
		fn(name, e.macros[name])
	}
}
