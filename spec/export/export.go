// Package export serializes parsed workouts into YAML documents. It is a
// read-only consumer of the AST: it walks the tree the parser produced and
// emits a stable, machine-friendly representation.
package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/daveroberts0321/swimlang/parser/grammar"
)

// Document is the root of the exported YAML.
type Document struct {
	Format string  `yaml:"format"`
	Sets   []*Node `yaml:"sets"`
}

// Node is the YAML-facing shape of a single set. Exactly one of Count/Body,
// Sets, or Statement is populated, matching the node's Kind.
type Node struct {
	Kind      string         `yaml:"kind"`
	Count     int            `yaml:"count,omitempty"`
	Body      *Node          `yaml:"body,omitempty"`
	Sets      []*Node        `yaml:"sets,omitempty"`
	Statement *StatementNode `yaml:"statement,omitempty"`
}

// StatementNode carries the three statement fields. Seconds is the
// normalized interval total.
type StatementNode struct {
	Distance  string   `yaml:"distance"`
	Stroke    string   `yaml:"stroke"`
	Modifiers []string `yaml:"modifiers,omitempty"`
	Seconds   int      `yaml:"seconds"`
}

// Generate converts a parsed workout into a YAML string.
func Generate(w *grammar.Workout) (string, error) {
	if w == nil {
		return "", fmt.Errorf("nil workout")
	}

	doc := Document{Format: "swimlang/1", Sets: []*Node{}}
	for _, set := range w.Sets {
		doc.Sets = append(doc.Sets, node(set))
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode renders w as YAML and writes it to out.
func Encode(w *grammar.Workout, out io.Writer) error {
	doc, err := Generate(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, doc)
	return err
}

func node(set grammar.Set) *Node {
	switch s := set.(type) {
	case *grammar.Repetition:
		return &Node{Kind: s.SetType(), Count: s.Count, Body: node(s.Body)}
	case *grammar.Block:
		n := &Node{Kind: s.SetType()}
		for _, inner := range s.Sets {
			n.Sets = append(n.Sets, node(inner))
		}
		return n
	case *grammar.Statement:
		return &Node{
			Kind: s.SetType(),
			Statement: &StatementNode{
				Distance:  s.Distance.String(),
				Stroke:    s.Stroke.Name,
				Modifiers: s.Stroke.Modifiers,
				Seconds:   s.Interval.Seconds,
			},
		}
	}
	return nil
}
