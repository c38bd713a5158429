// Package parser implements the recursive-descent grammar recogniser and
// chain decomposer: it walks a lexer.Token stream and builds an
// ast.Pattern, carrying every repetition as a signed Quantity so both
// "appears N times" and "Nth inverse operation" flow through the same
// field.
//
// The grammar is collapsed one level: a group's own trailing "^value"
// quantity is parsed uniformly whether the group is an explicit tuple or
// an implicit bare action, since ast.Group carries exactly one Quantity
// field — there is no separate action-level quantity in the data model
// for it to target.
package parser

import (
	"fmt"

	"github.com/varkor/siteswap/internal/ast"
	"github.com/varkor/siteswap/internal/lexer"
)

// SyntaxError is raised for any grammar violation; the caller (the
// siteswap package) wraps it into a SiteswapError tagged
// SyntacticallyInvalid.
type SyntaxError struct {
	Message  string
	Pos      int
	Fragment string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at byte %d", e.Message, e.Pos)
}

type parser struct {
	tokens []lexer.Token
	pos    int
	src    string
}

// Parse tokenizes and parses src (already whitespace-stripped and
// lower-cased) into an ast.Pattern, or returns a *SyntaxError.
func Parse(src string) (ast.Pattern, error) {
	p := &parser{tokens: lexer.Scan(src), src: src}
	var groups []ast.Group
	for p.current().Kind != lexer.EOF {
		g, err := p.parseGroup()
		if err != nil {
			return ast.Pattern{}, err
		}
		groups = append(groups, g)
	}
	if len(groups) == 0 {
		return ast.Pattern{}, &SyntaxError{Message: "empty pattern", Pos: 0}
	}
	return ast.Pattern{Groups: groups}, nil
}

func (p *parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) fragment() string {
	t := p.current()
	if t.Kind == lexer.EOF {
		return ""
	}
	end := t.Pos + 1
	if end > len(p.src) {
		end = len(p.src)
	}
	return p.src[t.Pos:end]
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{
		Message:  fmt.Sprintf(format, args...),
		Pos:      p.current().Pos,
		Fragment: p.fragment(),
	}
}

// ---- value ::= sign (digit | 'a'..'o') | '{' sign digits '}' ----

func (p *parser) parseValue() (int, error) {
	neg := false
	if p.current().Kind == lexer.BraceOpen {
		p.advance()
		if p.current().Kind == lexer.Minus {
			p.advance()
			neg = true
		}
		if p.current().Kind != lexer.Digit {
			return 0, p.errorf("expected decimal digit inside braced literal")
		}
		n := 0
		for p.current().Kind == lexer.Digit {
			n = n*10 + lexer.DigitValue(p.current())
			p.advance()
		}
		if p.current().Kind != lexer.BraceClose {
			return 0, p.errorf("expected '}' to close braced literal")
		}
		p.advance()
		if neg {
			return -n, nil
		}
		return n, nil
	}

	if p.current().Kind == lexer.Minus {
		p.advance()
		neg = true
	}
	switch p.current().Kind {
	case lexer.Digit, lexer.Letter:
		v := lexer.DigitValue(p.current())
		p.advance()
		if neg {
			return -v, nil
		}
		return v, nil
	default:
		return 0, p.errorf("expected a value (digit, letter a-o, or braced literal)")
	}
}

// ---- quantity ::= '^' value ----
// Returns (quantity, present).
func (p *parser) parseOptionalQuantity() (int, bool, error) {
	if p.current().Kind != lexer.Caret {
		return 1, false, nil
	}
	p.advance()
	v, err := p.parseValue()
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// ---- event ::= value 'x'* ----

func (p *parser) parseEvent() (ast.Event, error) {
	v, err := p.parseValue()
	if err != nil {
		return ast.Event{}, err
	}
	offset := 0
	for p.current().Kind == lexer.X {
		offset++
		p.advance()
	}
	return ast.Event{Value: v, Offset: offset, Quantity: 1}, nil
}

func startsValue(k lexer.Kind) bool {
	switch k {
	case lexer.Digit, lexer.Letter, lexer.BraceOpen, lexer.Minus:
		return true
	default:
		return false
	}
}

// ---- events ::= event quantity? (one or more, inside a multiplex) ----

func (p *parser) parseEvents() ([]ast.Event, error) {
	var events []ast.Event
	for {
		ev, err := p.parseEvent()
		if err != nil {
			return nil, err
		}
		q, present, err := p.parseOptionalQuantity()
		if err != nil {
			return nil, err
		}
		if present {
			ev.Quantity = q
		}
		events = append(events, ev)
		if !startsValue(p.current().Kind) {
			break
		}
	}
	return events, nil
}

// ---- action ::= '[' events+ ']' | event ----

func (p *parser) parseAction() (ast.Action, error) {
	if p.current().Kind == lexer.BracketOpen {
		p.advance()
		events, err := p.parseEvents()
		if err != nil {
			return ast.Action{}, err
		}
		if p.current().Kind != lexer.BracketClose {
			return ast.Action{}, p.errorf("expected ']' to close multiplex")
		}
		p.advance()
		return ast.Action{Events: events}, nil
	}
	ev, err := p.parseEvent()
	if err != nil {
		return ast.Action{}, err
	}
	return ast.Action{Events: []ast.Event{ev}}, nil
}

// ---- tuple ::= '(' action (',' action)* ')' ----

func (p *parser) parseTuple() ([]ast.Action, error) {
	p.advance() // consume '('
	var actions []ast.Action
	for {
		a, err := p.parseAction()
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
		if p.current().Kind == lexer.Comma {
			p.advance()
			continue
		}
		break
	}
	if p.current().Kind != lexer.ParenClose {
		return nil, p.errorf("expected ')' to close tuple")
	}
	p.advance()
	return actions, nil
}

// ---- suppression ::= '!'+ ----

func (p *parser) parseSuppression() int {
	n := 0
	for p.current().Kind == lexer.Bang {
		n++
		p.advance()
	}
	return n
}

// ---- group ::= tuple suppression? | action ; groups ::= group quantity? ----

func (p *parser) parseGroup() (ast.Group, error) {
	var g ast.Group
	if p.current().Kind == lexer.ParenOpen {
		actions, err := p.parseTuple()
		if err != nil {
			return ast.Group{}, err
		}
		g = ast.Group{Actions: actions, Suppression: p.parseSuppression(), Implicit: false}
	} else {
		a, err := p.parseAction()
		if err != nil {
			return ast.Group{}, err
		}
		g = ast.Group{Actions: []ast.Action{a}, Suppression: 0, Implicit: true}
	}
	q, _, err := p.parseOptionalQuantity()
	if err != nil {
		return ast.Group{}, err
	}
	g.Quantity = q
	return g, nil
}
