// Package regex implements a small backtracking regular expression engine.
//
// A pattern is tokenized, parsed into an AST and matched directly over that
// AST. The supported syntax is literals, '.', '^', '$', \d, \w, \s, bracket
// sets [abc] and [^abc], the quantifiers ?, * and +, grouping with ( ) and
// alternation with |. A match may start anywhere in the input unless the
// pattern begins with '^'.
package regex

import (
	"errors"
	"unicode/utf8"
)

// Regexp is a compiled pattern. It is immutable and may be used by several
// goroutines at once.
type Regexp struct {
	expr     string
	root     *Group
	anchored bool
	pf       *prefilter
}

// Compile parses pattern. A malformed pattern yields an *Error wrapping one
// of the parse sentinels; a pattern using an unimplemented construct yields
// an *Error wrapping ErrUnsupported.
func Compile(pattern string) (*Regexp, error) {
	root, err := Parse(Tokenize(pattern))
	if err != nil {
		var rerr *Error
		if errors.As(err, &rerr) {
			rerr.Expr = pattern
		}
		return nil, err
	}
	return &Regexp{
		expr:     pattern,
		root:     root,
		anchored: startsAnchored(root.Nodes),
		pf:       newPrefilter(root),
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString compiles pattern and reports whether it matches s.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

func (re *Regexp) String() string {
	return re.expr
}

// Root returns the parsed AST. Callers must not modify it.
func (re *Regexp) Root() *Group {
	return re.root
}

// MatchString reports whether the pattern matches anywhere in s.
func (re *Regexp) MatchString(s string) bool {
	return re.FindStringIndex(s) != nil
}

// FindStringIndex returns the byte offsets [start, end) of the leftmost
// match in s, or nil.
func (re *Regexp) FindStringIndex(s string) []int {
	if !re.pf.mayMatch(s) {
		return nil
	}
	start, end, ok := re.find(s, 0)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindString returns the text of the leftmost match in s. It returns "" both
// for no match and for an empty match; use FindStringIndex to tell them
// apart.
func (re *Regexp) FindString(s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindAllStringIndex returns successive non-overlapping matches in s. An
// empty match directly after the previous match is skipped. n < 0 means no
// limit.
func (re *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if n == 0 || !re.pf.mayMatch(s) {
		return nil
	}
	var out [][]int
	prevEnd := -1
	for pos := 0; pos <= len(s); {
		start, end, ok := re.find(s, pos)
		if !ok {
			break
		}
		if end > start || start != prevEnd {
			out = append(out, []int{start, end})
			prevEnd = end
			if n > 0 && len(out) == n {
				break
			}
		}
		if end > start {
			pos = end
			continue
		}
		if end >= len(s) {
			break
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		pos = end + size
	}
	return out
}

// find tries every start offset from pos onwards, left to right, and
// returns the first one at which the whole pattern matches.
func (re *Regexp) find(s string, pos int) (start, end int, ok bool) {
	if re.anchored {
		if pos != 0 {
			return 0, 0, false
		}
		end, ok = matchAt(re.root.Nodes, s, 0)
		return 0, end, ok
	}
	for {
		if end, ok = matchAt(re.root.Nodes, s, pos); ok {
			return pos, end, true
		}
		if pos >= len(s) {
			return 0, 0, false
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
}

// startsAnchored reports whether every match must begin with '^'.
func startsAnchored(nodes []Node) bool {
	if len(nodes) == 0 {
		return false
	}
	switch x := nodes[0].(type) {
	case *StartAnchor:
		return true
	case *Group:
		return startsAnchored(x.Nodes)
	case *Alternation:
		return startsAnchored(x.Left) && startsAnchored(x.Right)
	}
	return false
}
