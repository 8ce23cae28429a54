// Package graph draws lambda terms as Graphviz digraphs: "@" for
// applications, "λx" for abstractions and the name for variables, with a
// dotted back edge from each binder to the variables it binds.
package graph

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/vic/achurch/pkg/lambda"
)

// IDFunc hands out node identifiers.
type IDFunc func() string

// UUIDs returns random UUID node identifiers.
func UUIDs() IDFunc {
	return uuid.NewString
}

// Counter returns sequential identifiers n0, n1, ...
func Counter() IDFunc {
	n := 0
	return func() string {
		id := fmt.Sprintf("n%d", n)
		n++
		return id
	}
}

type Node struct {
	ID    string
	Label string
}

type Edge struct {
	From  string
	To    string
	Bound bool // binder to variable
}

// Graph is a rendered term.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Render builds the graph of t using ids for node identifiers.
// A nil ids uses UUIDs.
func Render(t lambda.Term, ids IDFunc) *Graph {
	if ids == nil {
		ids = UUIDs()
	}
	g := &Graph{}
	binders := make(map[string]string)
	g.add(t, "", binders, ids)
	return g
}

// add walks t through lambda.Kind and lambda.Children, threading the binder
// map explicitly. Shadowed entries are restored when an abstraction is left.
func (g *Graph) add(t lambda.Term, parent string, binders map[string]string, ids IDFunc) {
	id := ids()

	var label, binds string
	switch lambda.Kind(t) {
	case lambda.KindVar:
		label = t.(lambda.Var).Name
	case lambda.KindApp:
		label = "@"
	case lambda.KindAbs:
		binds = t.(lambda.Abs).Arg
		label = "λ" + binds
	}
	g.Nodes = append(g.Nodes, Node{ID: id, Label: label})
	if parent != "" {
		g.Edges = append(g.Edges, Edge{From: parent, To: id})
	}

	if lambda.Kind(t) == lambda.KindVar {
		if binder, ok := binders[label]; ok {
			g.Edges = append(g.Edges, Edge{From: binder, To: id, Bound: true})
		}
		return
	}

	var old string
	var had bool
	if binds != "" {
		old, had = binders[binds]
		binders[binds] = id
	}
	for _, child := range lambda.Children(t) {
		g.add(child, id, binders, ids)
	}
	if binds != "" {
		if had {
			binders[binds] = old
		} else {
			delete(binders, binds)
		}
	}
}

// DOT returns the graph in Graphviz DOT syntax.
func (g *Graph) DOT() string {
	var sb strings.Builder

	sb.WriteString("digraph {\n")
	for _, n := range g.Nodes {
		sb.WriteString(fmt.Sprintf("  %q [label=%q, shape=plaintext];\n", n.ID, n.Label))
	}
	for _, e := range g.Edges {
		if e.Bound {
			sb.WriteString(fmt.Sprintf("  %q -> %q [style=dotted, dir=back];\n", e.From, e.To))
		} else {
			sb.WriteString(fmt.Sprintf("  %q -> %q;\n", e.From, e.To))
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

// WriteFile saves the DOT text to path.
func (g *Graph) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(g.DOT()), 0644); err != nil {
		return fmt.Errorf("writing graph %s: %w", path, err)
	}
	return nil
}
