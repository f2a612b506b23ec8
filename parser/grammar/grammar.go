// Package grammar implements the swimlang workout language parser.
// grammar.go holds the parse entry points and per-parse options.
package grammar

import (
	"io"
)

// DefaultMaxDepth bounds how deeply blocks and repetitions may nest when
// Options.MaxDepth is left at zero.
const DefaultMaxDepth = 100

// Options control a single parse. The zero value gives the default
// behavior: repetition counts must be byte-adjacent to their 'x' operator,
// and nesting is limited to DefaultMaxDepth levels.
type Options struct {
	// MaxDepth limits the nesting of blocks and repetitions. Exceeding it
	// returns a *DepthError. Zero means DefaultMaxDepth.
	MaxDepth int

	// SpacedRepetition also accepts whitespace between a repetition count
	// and its 'x'/'X' operator ("4 x 100m ..."). By default the operator
	// must follow the count directly ("4x100m ..."), which keeps a number
	// followed by a spaced word unambiguous as the start of a distance.
	SpacedRepetition bool
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

// Parse reads workout text from r and returns the parsed AST.
func Parse(r io.Reader) (*Workout, error) {
	return ParseWithFilename(r, "")
}

// ParseWithFilename allows tracking the source file for better error messages
func ParseWithFilename(r io.Reader, filename string) (*Workout, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseSource(string(src), filename, Options{})
}

// ParseString parses a string containing a swimlang workout into an AST
func ParseString(s string) (*Workout, error) {
	return parseSource(s, "", Options{})
}

// ParseStringWithOptions parses a string under explicit Options.
func ParseStringWithOptions(s string, opts Options) (*Workout, error) {
	return parseSource(s, "", opts)
}

func parseSource(src, filename string, opts Options) (*Workout, error) {
	tokens, err := newLexer(src, filename).lex()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, opts: opts}
	return p.parseWorkout()
}
