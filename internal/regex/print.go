package regex

import (
	"fmt"
	"strings"
)

// Tree renders the AST one node per line, for debugging.
func (re *Regexp) Tree() string {
	return printTree(re.root)
}

func printTree(root Node) string {
	var b strings.Builder
	writeNode(&b, root, "", true)
	return b.String()
}

func writeNode(b *strings.Builder, n Node, prefix string, last bool) {
	connector := "├─ "
	childPrefix := prefix + "│  "
	if last {
		connector = "└─ "
		childPrefix = prefix + "   "
	}
	b.WriteString(prefix + connector)

	switch x := n.(type) {
	case *Literal:
		if x.Raw != "" {
			fmt.Fprintf(b, "Literal(%q)\n", x.Raw)
		} else {
			fmt.Fprintf(b, "Literal(%q)\n", x.Char)
		}
	case *Wildcard:
		b.WriteString("Wildcard\n")
	case *StartAnchor:
		b.WriteString("StartAnchor\n")
	case *EndAnchor:
		b.WriteString("EndAnchor\n")
	case *CharClass:
		fmt.Fprintf(b, "CharClass(%s)\n", x.describe())
	case *Group:
		b.WriteString("Group\n")
		writeNodes(b, x.Nodes, childPrefix)
	case *Alternation:
		b.WriteString("Alternation\n")
		writeNode(b, &Group{Nodes: x.Left}, childPrefix, false)
		writeNode(b, &Group{Nodes: x.Right}, childPrefix, true)
	case *Repetition:
		fmt.Fprintf(b, "Repetition(%s)\n", x.Quantifier)
		writeNode(b, x.Child, childPrefix, true)
	default:
		fmt.Fprintf(b, "%T\n", n)
	}
}

func writeNodes(b *strings.Builder, nodes []Node, prefix string) {
	for i, n := range nodes {
		writeNode(b, n, prefix, i == len(nodes)-1)
	}
}

func (c *CharClass) describe() string {
	switch c.Kind {
	case ClassDigit:
		return `\d`
	case ClassWord:
		return `\w`
	case ClassSpace:
		return `\s`
	}
	if c.Negated {
		return "[^" + c.Source + "]"
	}
	return "[" + c.Source + "]"
}
