// Package grammar implements the swimlang workout language parser.
// ast.go defines the AST structures representing parsed workouts.
package grammar

import (
	"fmt"
	"strings"
)

// Workout is the root of a parsed workout: its top-level sets in source
// order. The tree is built once by the parser and never mutated afterwards.
type Workout struct {
	Sets     []Set     `json:"sets"`
	Position *Position `json:"position,omitempty"`
}

// Set is any workout element: a *Repetition, a *Block or a *Statement.
type Set interface {
	SetType() string
	GetPosition() *Position
}

// Repetition replicates a single block or statement Count times.
type Repetition struct {
	Count    int       `json:"count"`
	Body     Set       `json:"body"` // always a *Block or a *Statement
	Position *Position `json:"position,omitempty"`
}

func (s *Repetition) SetType() string        { return "repetition" }
func (s *Repetition) GetPosition() *Position { return s.Position }

// Block is a brace-delimited group of at least one set.
type Block struct {
	Sets     []Set     `json:"sets"`
	Position *Position `json:"position,omitempty"`
}

func (s *Block) SetType() string        { return "block" }
func (s *Block) GetPosition() *Position { return s.Position }

// Statement is a leaf set: a distance, a stroke and an interval, all
// mandatory, in that order.
type Statement struct {
	Distance Distance  `json:"distance"`
	Stroke   Stroke    `json:"stroke"`
	Interval Interval  `json:"interval"`
	Position *Position `json:"position,omitempty"`
}

func (s *Statement) SetType() string        { return "statement" }
func (s *Statement) GetPosition() *Position { return s.Position }

// Unit is a distance unit. Only the exact spellings "m" and "km" exist;
// matching is case-sensitive.
type Unit string

const (
	Meters     Unit = "m"
	Kilometers Unit = "km"
)

// Distance pairs a non-negative value with its unit.
type Distance struct {
	Value int  `json:"value"`
	Unit  Unit `json:"unit"`
}

// Stroke names a swim style with optional modifiers. Modifiers is empty
// when no parenthesized list was present; when one is, it holds at least
// one word. Case is preserved everywhere.
type Stroke struct {
	Name      string   `json:"name"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// Interval is the target elapsed time of a statement, normalized to total
// seconds. "@90s" and "@1:30" produce the same Interval.
type Interval struct {
	Seconds int `json:"seconds"`
}

// String renders the workout in canonical form: one top-level set per line,
// blocks on a single line, repetition counts adjacent to their 'x'. The
// canonical text re-parses to a structurally identical tree.
func (w *Workout) String() string {
	lines := make([]string, len(w.Sets))
	for i, s := range w.Sets {
		lines[i] = fmt.Sprint(s)
	}
	return strings.Join(lines, "\n")
}

func (s *Repetition) String() string {
	return fmt.Sprintf("%dx%v", s.Count, s.Body)
}

func (s *Block) String() string {
	parts := make([]string, len(s.Sets))
	for i, set := range s.Sets {
		parts[i] = fmt.Sprint(set)
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (s *Statement) String() string {
	return fmt.Sprintf("%s %s %s", s.Distance, s.Stroke, s.Interval)
}

func (d Distance) String() string {
	return fmt.Sprintf("%d%s", d.Value, d.Unit)
}

func (s Stroke) String() string {
	if len(s.Modifiers) == 0 {
		return s.Name
	}
	return fmt.Sprintf("%s(%s)", s.Name, strings.Join(s.Modifiers, ", "))
}

func (iv Interval) String() string {
	if iv.Seconds >= 60 {
		return fmt.Sprintf("@%d:%02d", iv.Seconds/60, iv.Seconds%60)
	}
	return fmt.Sprintf("@%ds", iv.Seconds)
}
