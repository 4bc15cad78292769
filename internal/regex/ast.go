package regex

import "unicode/utf8"

// Node is a pattern AST node. The set of implementations is closed: the
// matcher and the printer switch over exactly the types in this file.
type Node interface {
	node()
}

// Literal matches exactly Char. When the pattern held a byte that is not
// valid UTF-8, Char is utf8.RuneError and Raw keeps that byte, which must
// then appear verbatim in the input.
type Literal struct {
	Char rune
	Raw  string
}

func newLiteral(ch rune, text string) *Literal {
	if ch == utf8.RuneError && text != string(utf8.RuneError) {
		return &Literal{Char: ch, Raw: text}
	}
	return &Literal{Char: ch}
}

// text is the exact input text the literal matches.
func (l *Literal) text() string {
	if l.Raw != "" {
		return l.Raw
	}
	return string(l.Char)
}

// Wildcard matches any one character.
type Wildcard struct{}

// StartAnchor asserts the cursor is at the start of the input.
type StartAnchor struct{}

// EndAnchor asserts the cursor is at the end of the input.
type EndAnchor struct{}

// CharClass matches one character belonging to a named class or to an
// explicit bracket set.
type CharClass struct {
	Kind    ClassKind
	Set     map[rune]bool // ClassSet only
	Negated bool
	Source  string // bracket contents as written, for printing
}

// Group matches Nodes in order.
type Group struct{ Nodes []Node }

// Alternation matches Left, or Right when Left does not lead to a match.
// More than two choices nest in Right.
type Alternation struct {
	Left, Right []Node
}

// Repetition applies Child as many times as Quantifier allows.
type Repetition struct {
	Child      Node
	Quantifier Quantifier
}

func (*Literal) node()     {}
func (*Wildcard) node()    {}
func (*StartAnchor) node() {}
func (*EndAnchor) node()   {}
func (*CharClass) node()   {}
func (*Group) node()       {}
func (*Alternation) node() {}
func (*Repetition) node()  {}
