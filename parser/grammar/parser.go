// Package grammar implements the swimlang workout language parser.
// parser.go contains the recursive-descent parsing logic.
package grammar

import "fmt"

// Workout grammar:
//   Workout    := { Set }
//   Set        := Repetition | Block | Statement
//   Repetition := NUMBER 'x' ( Block | Statement )
//   Block      := '{' Set { Set } '}'
//   Statement  := Distance Stroke Interval
//   Distance   := NUMBER ( 'm' | 'km' )
//   Stroke     := WORD [ '(' WORD { ',' WORD } ')' ]
//   Interval   := '@' ( NUMBER 's' | NUMBER ':' NUMBER [ 's' ] )
//
// 'x', 'm', 'km' and 's' arrive from the lexer as ordinary WORD tokens; the
// parser gives them meaning by position. The one real ambiguity is a WORD
// 'x'/'X' after a NUMBER at a set boundary: it is the repetition operator
// only when byte-adjacent to the count (or always, under
// Options.SpacedRepetition). Everything else is LL(1).

type parser struct {
	tokens []Token
	cur    int
	opts   Options
	depth  int
}

func (p *parser) peek() Token {
	return p.tokens[p.cur]
}

func (p *parser) peekN(n int) Token {
	if p.cur+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.cur+n]
}

func (p *parser) next() Token {
	tok := p.tokens[p.cur]
	if tok.Type != EOF {
		p.cur++
	}
	return tok
}

func (p *parser) expect(tt TokenType, what string) (Token, error) {
	if p.peek().Type != tt {
		return Token{}, p.errExpected(what)
	}
	return p.next(), nil
}

func (p *parser) errExpected(what string) error {
	tok := p.peek()
	return &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("expected %s, found %s", what, tok.describe())}
}

// enter guards recursion depth; every nested set must pass through it.
func (p *parser) enter() error {
	if p.depth >= p.opts.maxDepth() {
		return &DepthError{Pos: p.peek().Pos, Limit: p.opts.maxDepth()}
	}
	p.depth++
	return nil
}

func (p *parser) leave() { p.depth-- }

// parseWorkout parses sets until EOF. Input that is only whitespace and
// comments yields an empty workout. The first error aborts the parse; no
// partial tree is returned.
func (p *parser) parseWorkout() (*Workout, error) {
	pos := p.peek().Pos
	w := &Workout{Sets: []Set{}, Position: &pos}
	for p.peek().Type != EOF {
		set, err := p.parseSet()
		if err != nil {
			return nil, err
		}
		w.Sets = append(w.Sets, set)
	}
	return w, nil
}

func (p *parser) parseSet() (Set, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch {
	case p.peek().Type == LBRACE:
		return p.parseBlock()
	case p.peek().Type == NUMBER && p.repOpFollows():
		return p.parseRepetition()
	case p.peek().Type == NUMBER:
		return p.parseStatement()
	default:
		return nil, p.errExpected("number or '{'")
	}
}

// repOpFollows reports whether the token after the current NUMBER is the
// repetition operator: a WORD of exactly 'x' or 'X', byte-adjacent to the
// count unless Options.SpacedRepetition relaxes that.
func (p *parser) repOpFollows() bool {
	op := p.peekN(1)
	if op.Type != WORD || (op.Lexeme != "x" && op.Lexeme != "X") {
		return false
	}
	return op.Adjacent || p.opts.SpacedRepetition
}

func (p *parser) parseRepetition() (Set, error) {
	count := p.next() // NUMBER, checked by parseSet
	if count.Value < 1 {
		return nil, &SyntaxError{Pos: count.Pos, Msg: "repetition count must be at least 1"}
	}
	op := p.next() // the 'x' WORD

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	var body Set
	var err error
	switch {
	case p.peek().Type == LBRACE:
		body, err = p.parseBlock()
	case p.peek().Type == NUMBER && p.repOpFollows():
		return nil, &SyntaxError{
			Pos: p.peek().Pos,
			Msg: "repetition body must be a block or a statement, not another repetition",
		}
	case p.peek().Type == NUMBER:
		body, err = p.parseStatement()
	default:
		return nil, p.errExpected(fmt.Sprintf("block or statement after %q", op.Lexeme))
	}
	if err != nil {
		return nil, err
	}

	pos := count.Pos
	return &Repetition{Count: count.Value, Body: body, Position: &pos}, nil
}

func (p *parser) parseBlock() (Set, error) {
	open, err := p.expect(LBRACE, "'{'")
	if err != nil {
		return nil, err
	}
	if p.peek().Type == RBRACE {
		return nil, &SyntaxError{Pos: p.peek().Pos, Msg: "empty block: expected at least one set before '}'"}
	}

	pos := open.Pos
	block := &Block{Position: &pos}
	for p.peek().Type != RBRACE {
		if p.peek().Type == EOF {
			return nil, p.errExpected("'}'")
		}
		set, err := p.parseSet()
		if err != nil {
			return nil, err
		}
		block.Sets = append(block.Sets, set)
	}
	p.next() // '}'
	return block, nil
}

func (p *parser) parseStatement() (Set, error) {
	pos := p.peek().Pos
	distance, err := p.parseDistance()
	if err != nil {
		return nil, err
	}
	stroke, err := p.parseStroke()
	if err != nil {
		return nil, err
	}
	interval, err := p.parseInterval()
	if err != nil {
		return nil, err
	}
	return &Statement{Distance: distance, Stroke: stroke, Interval: interval, Position: &pos}, nil
}

func (p *parser) parseDistance() (Distance, error) {
	num, err := p.expect(NUMBER, "distance")
	if err != nil {
		return Distance{}, err
	}
	unit := p.peek()
	if unit.Type != WORD {
		return Distance{}, p.errExpected("distance unit 'm' or 'km'")
	}
	switch unit.Lexeme {
	case "m", "km":
		p.next()
		return Distance{Value: num.Value, Unit: Unit(unit.Lexeme)}, nil
	default:
		// Unit spelling is case-sensitive: "M" and "KM" are rejected here.
		return Distance{}, p.errExpected("distance unit 'm' or 'km'")
	}
}

func (p *parser) parseStroke() (Stroke, error) {
	name, err := p.expect(WORD, "stroke name")
	if err != nil {
		return Stroke{}, err
	}
	stroke := Stroke{Name: name.Lexeme}

	if p.peek().Type != LPAREN {
		return stroke, nil
	}
	p.next() // '('
	for {
		mod, err := p.expect(WORD, "stroke modifier")
		if err != nil {
			return Stroke{}, err
		}
		stroke.Modifiers = append(stroke.Modifiers, mod.Lexeme)
		if p.peek().Type != COMMA {
			break
		}
		p.next()
	}
	if _, err := p.expect(RPAREN, "',' or ')' after modifier"); err != nil {
		return Stroke{}, err
	}
	return stroke, nil
}

func (p *parser) parseInterval() (Interval, error) {
	if _, err := p.expect(AT, "'@' to begin interval"); err != nil {
		return Interval{}, err
	}
	num, err := p.expect(NUMBER, "number after '@'")
	if err != nil {
		return Interval{}, err
	}

	// minutes:seconds form, with an optional trailing 's' marker that
	// carries no meaning.
	if p.peek().Type == COLON {
		p.next()
		sec, err := p.expect(NUMBER, "seconds after ':'")
		if err != nil {
			return Interval{}, err
		}
		p.acceptSecondsMarker()
		return Interval{Seconds: num.Value*60 + sec.Value}, nil
	}

	// plain seconds form requires the 's' suffix.
	if p.acceptSecondsMarker() {
		return Interval{Seconds: num.Value}, nil
	}
	tok := p.peek()
	return Interval{}, &SyntaxError{
		Pos: tok.Pos,
		Msg: fmt.Sprintf("malformed interval: expected 's' or ':' after number, found %s", tok.describe()),
	}
}

// acceptSecondsMarker consumes a WORD token that is exactly "s". Spacing
// before it is irrelevant: no set can begin with a word, so the marker is
// never confused with what follows.
func (p *parser) acceptSecondsMarker() bool {
	if p.peek().Type == WORD && p.peek().Lexeme == "s" {
		p.next()
		return true
	}
	return false
}
