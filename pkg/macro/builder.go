package macro

import (
	"fmt"

	"github.com/vic/achurch/pkg/lambda"
	"github.com/vic/achurch/pkg/parser"
)

// Builder converts parse trees into terms using an Env.
type Builder struct {
	Env *Env
}

func NewBuilder(env *Env) *Builder {
	return &Builder{Env: env}
}

// Build turns tree into a term. For a definition the body is built, stored
// in the Env under its name, and the name is returned with a nil term.
// Trees with syntax errors are refused.
func (b *Builder) Build(tree *parser.Tree) (lambda.Term, string, error) {
	if tree.SyntaxErrors() > 0 {
		return nil, "", &parser.SyntaxError{Errors: tree.Errors}
	}

	if def := tree.Definition; def != nil {
		t, err := b.build(def.Body)
		if err != nil {
			return nil, "", fmt.Errorf("defining %s: %w", def.Name, err)
		}
		b.Env.Define(def.Name, t)
		return nil, def.Name, nil
	}

	t, err := b.build(tree.Term)
	if err != nil {
		return nil, "", err
	}
	return t, "", nil
}

func (b *Builder) build(n parser.Node) (lambda.Term, error) {
	switch n := n.(type) {
	case parser.VarNode:
		return lambda.Var{Name: n.Name}, nil

	case parser.MacroNode:
		return b.Env.Lookup(n.Name)

	case parser.AbsNode:
		body, err := b.build(n.Body)
		if err != nil {
			return nil, err
		}
		// λxy.b is λx.λy.b
		for i := len(n.Params) - 1; i >= 0; i-- {
			body = lambda.Abs{Arg: n.Params[i], Body: body}
		}
		return body, nil

	case parser.AppNode:
		if spine := flatten(n); b.hasOperator(spine) {
			return b.buildOperators(spine)
		}
		fun, err := b.build(n.Fun)
		if err != nil {
			return nil, err
		}
		arg, err := b.build(n.Arg)
		if err != nil {
			return nil, err
		}
		return lambda.App{Fun: fun, Arg: arg}, nil

	case parser.InfixNode:
		left, err := b.build(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.build(n.Right)
		if err != nil {
			return nil, err
		}
		return b.Env.ExpandInfix(left, n.Op, right)

	default:
		return nil, fmt.Errorf("unexpected parse node %T", n)
	}
}

// flatten returns the head of an application followed by its arguments.
func flatten(n parser.AppNode) []parser.Node {
	var args []parser.Node
	var head parser.Node = n
	for {
		app, ok := head.(parser.AppNode)
		if !ok {
			break
		}
		args = append(args, app.Arg)
		head = app.Fun
	}
	spine := make([]parser.Node, 0, len(args)+1)
	spine = append(spine, head)
	for i := len(args) - 1; i >= 0; i-- {
		spine = append(spine, args[i])
	}
	return spine
}

// isOperatorAt reports whether spine[i] is an operator macro with an operand
// on each side.
func (b *Builder) isOperatorAt(spine []parser.Node, i int) bool {
	if i == 0 || i == len(spine)-1 {
		return false
	}
	m, ok := spine[i].(parser.MacroNode)
	return ok && b.Env.IsOperator(m.Name)
}

func (b *Builder) hasOperator(spine []parser.Node) bool {
	for i := range spine {
		if b.isOperatorAt(spine, i) {
			return true
		}
	}
	return false
}

// buildOperators splits spine at operator macros and folds the operands
// left to right: A AND B OR C is OR (AND A B) C. Application binds tighter,
// so F x AND G y is AND (F x) (G y).
func (b *Builder) buildOperators(spine []parser.Node) (lambda.Term, error) {
	var (
		result  lambda.Term
		pending string
		run     []parser.Node
	)
	flush := func() error {
		var operand lambda.Term
		for _, n := range run {
			t, err := b.build(n)
			if err != nil {
				return err
			}
			if operand == nil {
				operand = t
			} else {
				operand = lambda.App{Fun: operand, Arg: t}
			}
		}
		run = run[:0]
		if pending == "" {
			result = operand
			return nil
		}
		t, err := b.Env.ExpandInfix(result, pending, operand)
		if err != nil {
			return err
		}
		result = t
		return nil
	}

	for i, n := range spine {
		// Two operators in a row: the second one is an operand.
		if b.isOperatorAt(spine, i) && len(run) > 0 {
			if err := flush(); err != nil {
				return nil, err
			}
			pending = n.(parser.MacroNode).Name
			continue
		}
		run = append(run, n)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return result, nil
}

// Entry is a macro name with the source text of its body.
type Entry struct {
	Name   string
	Source string
}

// Import parses and defines entries in order, so an entry may refer to any
// entry before it. It stops at the first failing entry.
func (b *Builder) Import(entries []Entry) error {
	for _, entry := range entries {
		tree, err := parser.Parse(entry.Source)
		if err != nil {
			return fmt.Errorf("macro %s: %w", entry.Name, err)
		}
		if tree.Definition != nil {
			return fmt.Errorf("macro %s: body is itself a definition", entry.Name)
		}
		t, _, err := b.Build(tree)
		if err != nil {
			return fmt.Errorf("macro %s: %w", entry.Name, err)
		}
		b.Env.Define(entry.Name, t)
	}
	return nil
}

// ImportDefaults imports Defaults and marks Operators.
func (b *Builder) ImportDefaults() error {
	if err := b.Import(Defaults); err != nil {
		return err
	}
	for _, name := range Operators {
		b.Env.MarkOperator(name)
	}
	return nil
}
