package regex

type ClassKind int

const (
	ClassDigit ClassKind = iota // \d
	ClassWord                   // \w
	ClassSpace                  // \s
	ClassSet                    // [...]
)

func classForEscape(ch rune) ClassKind {
	switch ch {
	case 'd':
		return ClassDigit
	case 'w':
		return ClassWord
	default:
		return ClassSpace
	}
}

func newSetClass(contents string, negated bool) *CharClass {
	set := make(map[rune]bool)
	for _, r := range contents {
		set[r] = true
	}
	return &CharClass{Kind: ClassSet, Set: set, Negated: negated, Source: contents}
}

func (c *CharClass) contains(r rune) bool {
	var in bool
	switch c.Kind {
	case ClassDigit:
		in = isDigit(r)
	case ClassWord:
		in = isWord(r)
	case ClassSpace:
		in = isSpace(r)
	default:
		in = c.Set[r]
	}
	return in != c.Negated
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWord(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		isDigit(r) ||
		r == '_'
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
