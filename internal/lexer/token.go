// Package lexer tokenizes a whitespace-stripped, lower-cased siteswap
// string into the fixed alphabet the grammar requires: digits, the
// letters a-o, and the punctuation '{', '}', '[', ']', '(', ')', ',',
// 'x', '!', '^', '-'.
package lexer

// Kind identifies a lexical token class.
type Kind int

const (
	EOF Kind = iota
	Digit
	Letter // a..o, base-25 literal continuation
	BraceOpen
	BraceClose
	BracketOpen
	BracketClose
	ParenOpen
	ParenClose
	Comma
	X
	Bang
	Caret
	Minus
	Illegal // any byte outside the fixed alphabet
)

// Token is one lexical unit with its byte offset in the (already
// whitespace-stripped, lower-cased) source string.
type Token struct {
	Kind Kind
	Text byte // the single source byte; digits/letters carry their own value
	Pos  int
}

// String renders the token's source byte for diagnostics.
func (t Token) String() string {
	if t.Kind == EOF {
		return "<eof>"
	}
	return string(t.Text)
}
