package regex

import "fmt"

type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenWildcard
	TokenStartAnchor
	TokenEndAnchor
	TokenGroupStart
	TokenGroupEnd
	TokenAlternation
	TokenQuantifier
	TokenClassEscape // \d, \w, \s
	TokenEscape      // backslash followed by anything else
	TokenBracket     // [...] or [^...]
	TokenEOF
)

var tokenNames = [...]string{
	TokenLiteral:     "Literal",
	TokenWildcard:    "Wildcard",
	TokenStartAnchor: "StartAnchor",
	TokenEndAnchor:   "EndAnchor",
	TokenGroupStart:  "GroupStart",
	TokenGroupEnd:    "GroupEnd",
	TokenAlternation: "Alternation",
	TokenQuantifier:  "Quantifier",
	TokenClassEscape: "ClassEscape",
	TokenEscape:      "Escape",
	TokenBracket:     "Bracket",
	TokenEOF:         "EOF",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

type Quantifier int

const (
	ZeroOrOne  Quantifier = iota // ?
	ZeroOrMore                   // *
	OneOrMore                    // +
)

func (q Quantifier) String() string {
	switch q {
	case ZeroOrOne:
		return "?"
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	}
	return fmt.Sprintf("Quantifier(%d)", int(q))
}

// bounds returns the repetition range; hi < 0 means unbounded.
func (q Quantifier) bounds() (lo, hi int) {
	switch q {
	case ZeroOrOne:
		return 0, 1
	case OneOrMore:
		return 1, -1
	default:
		return 0, -1
	}
}

// Token is one lexical unit of a pattern. Only the fields relevant to Kind
// are set.
type Token struct {
	Kind TokenKind
	Pos  int    // byte offset in the pattern
	Raw  string // pattern text the token was scanned from

	Char       rune       // Literal, ClassEscape, Escape
	Quantifier Quantifier // Quantifier
	Set        string     // Bracket contents, verbatim
	Negated    bool       // Bracket
	Terminated bool       // Bracket: closing ']' was found
	Dangling   bool       // Escape: pattern ended right after '\'
}

func (t Token) String() string {
	switch t.Kind {
	case TokenLiteral:
		return fmt.Sprintf("Literal(%q)", t.Char)
	case TokenQuantifier:
		return fmt.Sprintf("Quantifier(%s)", t.Quantifier)
	case TokenClassEscape, TokenEscape:
		if t.Dangling {
			return `Escape(\)`
		}
		return fmt.Sprintf(`%s(\%c)`, t.Kind, t.Char)
	case TokenBracket:
		neg := ""
		if t.Negated {
			neg = "^"
		}
		return fmt.Sprintf("Bracket([%s%s])", neg, t.Set)
	}
	return t.Kind.String()
}
