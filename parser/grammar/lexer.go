// Package grammar implements the swimlang workout language parser.
// lexer.go scans workout text into the token stream the parser consumes.
package grammar

import (
	"fmt"
	"strconv"
)

// lexer walks the input byte by byte, tracking 1-based line/column for
// error positions. It owns only a cursor into the buffer; one lexer serves
// exactly one parse.
type lexer struct {
	src  string
	file string
	cur  int
	line int
	col  int

	// prevEnd is the byte offset just past the previous token, used to set
	// Token.Adjacent. -1 until the first token has been scanned.
	prevEnd int
}

func newLexer(src, file string) *lexer {
	return &lexer{src: src, file: file, line: 1, col: 1, prevEnd: -1}
}

var punct = map[byte]TokenType{
	'{': LBRACE,
	'}': RBRACE,
	'(': LPAREN,
	')': RPAREN,
	',': COMMA,
	'@': AT,
	':': COLON,
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
func isWordChar(b byte) bool { return isLetter(b) || b == '.' || b == '-' }

// lex scans the entire input and returns the token stream, terminated by a
// single EOF token.
func (l *lexer) lex() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

func (l *lexer) next() (Token, error) {
	if err := l.skip(); err != nil {
		return Token{}, err
	}

	start := l.cur
	pos := l.position()
	adjacent := start == l.prevEnd

	if l.cur >= len(l.src) {
		return Token{Type: EOF, Pos: pos, Adjacent: adjacent}, nil
	}

	var tok Token
	switch ch := l.src[l.cur]; {
	case isDigit(ch):
		for l.cur < len(l.src) && isDigit(l.src[l.cur]) {
			l.advance()
		}
		lexeme := l.src[start:l.cur]
		v, err := strconv.Atoi(lexeme)
		if err != nil {
			return Token{}, &LexError{Pos: pos, Msg: fmt.Sprintf("number %s out of range", lexeme)}
		}
		tok = Token{Type: NUMBER, Lexeme: lexeme, Value: v}

	case isLetter(ch):
		l.advance()
		for l.cur < len(l.src) && isWordChar(l.src[l.cur]) {
			l.advance()
		}
		tok = Token{Type: WORD, Lexeme: l.src[start:l.cur]}

	default:
		tt, ok := punct[ch]
		if !ok {
			return Token{}, &LexError{Pos: pos, Msg: fmt.Sprintf("invalid character %q", ch)}
		}
		l.advance()
		tok = Token{Type: tt, Lexeme: string(ch)}
	}

	tok.Pos = pos
	tok.Adjacent = adjacent
	l.prevEnd = l.cur
	return tok, nil
}

// skip discards whitespace and all three comment forms: '#' and '//' to end
// of line, and non-nesting '/* ... */'.
func (l *lexer) skip() error {
	for l.cur < len(l.src) {
		switch ch := l.src[l.cur]; {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			l.advance()
		case ch == '#':
			l.skipLine()
		case ch == '/' && l.peekNext() == '/':
			l.skipLine()
		case ch == '/' && l.peekNext() == '*':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) skipLine() {
	for l.cur < len(l.src) && l.src[l.cur] != '\n' {
		l.advance()
	}
}

// skipBlockComment consumes up to and including the smallest enclosing "*/".
// A lone '*' does not terminate the comment.
func (l *lexer) skipBlockComment() error {
	pos := l.position()
	l.advance() // '/'
	l.advance() // '*'
	for l.cur < len(l.src) {
		if l.src[l.cur] == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return nil
		}
		l.advance()
	}
	return &LexError{Pos: pos, Msg: "unterminated block comment"}
}

func (l *lexer) peekNext() byte {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

func (l *lexer) advance() {
	if l.src[l.cur] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.cur++
}

func (l *lexer) position() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.cur, File: l.file}
}
