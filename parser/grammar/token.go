// Package grammar implements the swimlang workout language parser.
// token.go defines the lexical tokens produced by the lexer.
package grammar

import "fmt"

// TokenType identifies the kind of a lexical token.
type TokenType int

const (
	EOF TokenType = iota
	NUMBER
	WORD
	LBRACE // "{"
	RBRACE // "}"
	LPAREN // "("
	RPAREN // ")"
	COMMA  // ","
	AT     // "@"
	COLON  // ":"
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "number"
	case WORD:
		return "word"
	case LBRACE:
		return "'{'"
	case RBRACE:
		return "'}'"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case COMMA:
		return "','"
	case AT:
		return "'@'"
	case COLON:
		return "':'"
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Position represents a source code position
type Position struct {
	Line   int    `json:"line"`   // 1-based
	Column int    `json:"column"` // 1-based
	Offset int    `json:"offset"` // byte offset into the input
	File   string `json:"file,omitempty"`
}

// String returns a human-readable position
func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token is a single lexical token. The repetition operator 'x', the units
// 'm'/'km' and the seconds marker 's' are plain WORD tokens here; the
// parser gives them meaning by position, keeping the lexer context-free.
type Token struct {
	Type   TokenType
	Lexeme string
	Value  int // parsed value for NUMBER tokens
	Pos    Position

	// Adjacent is true when the token starts at the byte directly after the
	// previous token, with no whitespace or comment in between. The parser
	// uses it to tell a repetition count's 'x' from a stroke word.
	Adjacent bool
}

// describe renders the token for "expected X, found Y" messages.
func (t Token) describe() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%q", t.Lexeme)
}
