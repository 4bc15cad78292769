package regex

import (
	"strings"
	"unicode/utf8"
)

// lexer scans a pattern left to right and produces tokens. It never fails:
// structural problems are left for the parser to report.
type lexer struct {
	input    string
	position int
	tokens   []Token
}

// Tokenize splits pattern into tokens. The result always ends with an EOF
// token.
func Tokenize(pattern string) []Token {
	l := &lexer{input: pattern, tokens: make([]Token, 0, len(pattern)+1)}
	return l.tokenize()
}

func (l *lexer) tokenize() []Token {
	for l.position < len(l.input) {
		start := l.position
		ch, size := utf8.DecodeRuneInString(l.input[l.position:])
		l.position += size

		switch ch {
		case '^':
			l.emit(Token{Kind: TokenStartAnchor}, start)
		case '$':
			l.emit(Token{Kind: TokenEndAnchor}, start)
		case '.':
			l.emit(Token{Kind: TokenWildcard}, start)
		case '(':
			l.emit(Token{Kind: TokenGroupStart}, start)
		case ')':
			l.emit(Token{Kind: TokenGroupEnd}, start)
		case '|':
			l.emit(Token{Kind: TokenAlternation}, start)
		case '*':
			l.emit(Token{Kind: TokenQuantifier, Quantifier: ZeroOrMore}, start)
		case '+':
			l.emit(Token{Kind: TokenQuantifier, Quantifier: OneOrMore}, start)
		case '?':
			l.emit(Token{Kind: TokenQuantifier, Quantifier: ZeroOrOne}, start)
		case '\\':
			l.lexEscape(start)
		case '[':
			l.lexBracket(start)
		default:
			l.emit(Token{Kind: TokenLiteral, Char: ch}, start)
		}
	}

	l.emit(Token{Kind: TokenEOF}, l.position)
	return l.tokens
}

func (l *lexer) emit(t Token, start int) {
	t.Pos = start
	t.Raw = l.input[start:l.position]
	l.tokens = append(l.tokens, t)
}

// lexEscape consumes the character after a backslash as a unit.
func (l *lexer) lexEscape(start int) {
	if l.position >= len(l.input) {
		l.emit(Token{Kind: TokenEscape, Dangling: true}, start)
		return
	}
	ch, size := utf8.DecodeRuneInString(l.input[l.position:])
	l.position += size

	switch ch {
	case 'd', 'w', 's':
		l.emit(Token{Kind: TokenClassEscape, Char: ch}, start)
	default:
		l.emit(Token{Kind: TokenEscape, Char: ch}, start)
	}
}

// lexBracket captures everything up to the closing ']' verbatim. A leading
// '^' negates the set. Without a closing bracket the rest of the pattern is
// taken as the set and the token is marked unterminated.
func (l *lexer) lexBracket(start int) {
	tok := Token{Kind: TokenBracket}
	if strings.HasPrefix(l.input[l.position:], "^") {
		tok.Negated = true
		l.position++
	}

	end := strings.IndexByte(l.input[l.position:], ']')
	if end < 0 {
		tok.Set = l.input[l.position:]
		l.position = len(l.input)
	} else {
		tok.Set = l.input[l.position : l.position+end]
		tok.Terminated = true
		l.position += end + 1
	}
	l.emit(tok, start)
}
