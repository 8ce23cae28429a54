package parser

import (
	"fmt"
	"strings"
)

// Node is a parse tree node. Nodes keep the surface structure of the input:
// multi-name lambda heads and infix operators are not yet desugared.
type Node interface {
	Pos() int
	node()
}

// VarNode is a lowercase variable.
type VarNode struct {
	At   int
	Name string
}

// MacroNode is a reference to a macro used in prefix position.
type MacroNode struct {
	At   int
	Name string
}

// AbsNode is λx y z.Body.
type AbsNode struct {
	At     int
	Params []string
	Body   Node
}

// AppNode is a juxtaposition Fun Arg.
type AppNode struct {
	At  int
	Fun Node
	Arg Node
}

// InfixNode is Left Op Right where Op names a macro.
type InfixNode struct {
	At    int
	Left  Node
	Op    string
	Right Node
}

func (n VarNode) Pos() int   { return n.At }
func (n MacroNode) Pos() int { return n.At }
func (n AbsNode) Pos() int   { return n.At }
func (n AppNode) Pos() int   { return n.At }
func (n InfixNode) Pos() int { return n.At }

func (VarNode) node()   {}
func (MacroNode) node() {}
func (AbsNode) node()   {}
func (AppNode) node()   {}
func (InfixNode) node() {}

// Definition is NAME = Body.
type Definition struct {
	Name string
	Body Node
}

// Tree is the result of parsing one line of input. Exactly one of Term and
// Definition is set when the input had no syntax errors.
type Tree struct {
	Source     string
	Term       Node
	Definition *Definition
	Errors     []Error
}

// SyntaxErrors returns the number of syntax errors found.
func (t *Tree) SyntaxErrors() int {
	return len(t.Errors)
}

// Error is a single syntax error at a rune offset.
type Error struct {
	Pos int
	Msg string
}

func (e Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Pos, e.Msg)
}

// SyntaxError is returned by Parse when the input has errors.
type SyntaxError struct {
	Errors []Error
}

// Count returns the number of syntax errors.
func (e *SyntaxError) Count() int {
	return len(e.Errors)
}

func (e *SyntaxError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d syntax error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}
