package regex

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

// prefilter rejects inputs that cannot match because none of the pattern's
// required literals occur in them. It never accepts on its own: a line that
// passes still goes through the matcher.
type prefilter struct {
	literals []string
	ac       *ahocorasick.Automaton
}

func newPrefilter(root *Group) *prefilter {
	lits := requiredLiterals(root.Nodes)
	if lits == nil {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &prefilter{literals: lits, ac: auto}
}

func (p *prefilter) mayMatch(s string) bool {
	if p == nil {
		return true
	}
	return p.ac.IsMatch([]byte(s))
}

// requiredLiterals returns a set of strings at least one of which occurs in
// every input that nodes match, or nil when no such set is known. Among the
// candidates it keeps the one whose shortest member is longest.
func requiredLiterals(nodes []Node) []string {
	var best []string
	consider := func(set []string) {
		if literalScore(set) > literalScore(best) {
			best = set
		}
	}

	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			consider([]string{run.String()})
			run.Reset()
		}
	}

	for _, n := range nodes {
		switch x := n.(type) {
		case *Literal:
			run.WriteString(x.text())
			continue
		case *StartAnchor, *EndAnchor:
			// zero-width, the literals around it stay adjacent
			continue
		case *Group:
			flush()
			consider(requiredLiterals(x.Nodes))
		case *Alternation:
			flush()
			left, right := requiredLiterals(x.Left), requiredLiterals(x.Right)
			if left != nil && right != nil {
				union := make([]string, 0, len(left)+len(right))
				consider(append(append(union, left...), right...))
			}
		case *Repetition:
			flush()
			if x.Quantifier == OneOrMore {
				consider(requiredLiterals([]Node{x.Child}))
			}
		default:
			flush()
		}
	}
	flush()
	return best
}

// literalScore is the byte length of the shortest member, 0 for an empty or
// unusable set.
func literalScore(set []string) int {
	if len(set) == 0 {
		return 0
	}
	score := -1
	for _, s := range set {
		if score < 0 || len(s) < score {
			score = len(s)
		}
	}
	return score
}
