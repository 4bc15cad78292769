package regex

import (
	"strings"
	"unicode/utf8"
)

// matcher walks the AST over one input string. The cursor is a byte offset
// handed down by value, so a failed branch never moves the caller's
// position. Each node receives a continuation k that matches the rest of the
// pattern from wherever the node stopped. Returning false from k makes the
// node try its next alternative, which is how alternation and quantifiers
// backtrack.
type matcher struct {
	input string
}

// at decodes the character under the cursor; size is 0 at end of input.
func (m *matcher) at(pos int) (rune, int) {
	if pos >= len(m.input) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(m.input[pos:])
}

func (m *matcher) matchNodes(nodes []Node, pos int, k func(int) bool) bool {
	if len(nodes) == 0 {
		return k(pos)
	}
	return m.matchNode(nodes[0], pos, func(next int) bool {
		return m.matchNodes(nodes[1:], next, k)
	})
}

func (m *matcher) matchNode(n Node, pos int, k func(int) bool) bool {
	switch x := n.(type) {
	case *Literal:
		if x.Raw != "" {
			return strings.HasPrefix(m.input[pos:], x.Raw) && k(pos+len(x.Raw))
		}
		r, size := m.at(pos)
		if r == utf8.RuneError && size == 1 {
			// an invalid input byte only matches a literal holding that byte
			return false
		}
		return size > 0 && r == x.Char && k(pos+size)
	case *Wildcard:
		_, size := m.at(pos)
		return size > 0 && k(pos+size)
	case *CharClass:
		r, size := m.at(pos)
		return size > 0 && x.contains(r) && k(pos+size)
	case *StartAnchor:
		return pos == 0 && k(pos)
	case *EndAnchor:
		return pos == len(m.input) && k(pos)
	case *Group:
		return m.matchNodes(x.Nodes, pos, k)
	case *Alternation:
		if m.matchNodes(x.Left, pos, k) {
			return true
		}
		return m.matchNodes(x.Right, pos, k)
	case *Repetition:
		return m.matchRepetition(x, 0, pos, k)
	default:
		return false
	}
}

// matchRepetition is greedy: it tries one more iteration of the child before
// handing the cursor to k, and falls back to fewer iterations when the rest
// of the pattern fails.
func (m *matcher) matchRepetition(r *Repetition, count, pos int, k func(int) bool) bool {
	lo, hi := r.Quantifier.bounds()
	if hi < 0 || count < hi {
		matched := m.matchNode(r.Child, pos, func(next int) bool {
			if next == pos {
				// an empty iteration would loop forever
				return k(next)
			}
			return m.matchRepetition(r, count+1, next, k)
		})
		if matched {
			return true
		}
	}
	return count >= lo && k(pos)
}

// matchAt reports whether nodes match input starting at pos and returns the
// end offset of the match.
func matchAt(nodes []Node, input string, pos int) (int, bool) {
	m := &matcher{input: input}
	end := -1
	ok := m.matchNodes(nodes, pos, func(e int) bool {
		end = e
		return true
	})
	return end, ok
}
