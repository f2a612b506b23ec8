// Package grammar implements the swimlang workout language parser.
// errors.go defines the error values returned by the lexer and parser, and
// a helper that renders them with a caret-annotated source snippet.
package grammar

import (
	"fmt"
	"strings"
)

// LexError reports input the lexer cannot tokenize: an invalid character,
// an unterminated block comment, or a number too large to represent.
type LexError struct {
	Pos Position
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: %s", e.Pos, e.Msg)
}

// SyntaxError reports a malformed construct. Msg names what was expected
// and what was actually found.
type SyntaxError struct {
	Pos Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Pos, e.Msg)
}

// DepthError reports that block/repetition nesting exceeded the configured
// limit. The parse is aborted cleanly; callers may retry with a higher
// Options.MaxDepth.
type DepthError struct {
	Pos   Position
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("depth error at %s: nesting exceeds the limit of %d levels", e.Pos, e.Limit)
}

// FormatWithSource renders a lex, syntax or depth error as a multi-line
// snippet of src with a caret under the offending column:
//
//	syntax error at line 1, column 17: expected '}', found EOF
//
//	   1 | {100m free @1:30
//	     |                 ^
//
// Other errors are rendered with their plain Error() string.
func FormatWithSource(err error, src string) string {
	var pos Position
	switch e := err.(type) {
	case *LexError:
		pos = e.Pos
	case *SyntaxError:
		pos = e.Pos
	case *DepthError:
		pos = e.Pos
	default:
		return err.Error()
	}

	lines := strings.Split(src, "\n")
	line, col := pos.Line, pos.Column
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", err.Error())
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	return b.String()
}
