package regex

type parser struct {
	tokens   []Token
	position int
}

// Parse builds the AST for a token sequence produced by Tokenize. The root
// is always a Group; a pattern consisting of a single alternation yields a
// Group holding one Alternation.
func Parse(tokens []Token) (*Group, error) {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != TokenEOF {
		eof := Token{Kind: TokenEOF}
		if n > 0 {
			last := tokens[n-1]
			eof.Pos = last.Pos + len(last.Raw)
		}
		tokens = append(tokens[:n:n], eof)
	}
	p := &parser{tokens: tokens}
	return p.parse()
}

func (p *parser) current() Token {
	return p.tokens[p.position]
}

func (p *parser) next() {
	if p.position < len(p.tokens)-1 {
		p.position++
	}
}

func (p *parser) fail(code error, tok Token) error {
	return &Error{Code: code, Pos: tok.Pos, Detail: tok.Raw}
}

func (p *parser) parse() (*Group, error) {
	root, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	// parseAlternation only stops early on a ')' nobody opened.
	if tok := p.current(); tok.Kind != TokenEOF {
		return nil, p.fail(ErrUnexpectedToken, tok)
	}
	if g, ok := root.(*Group); ok {
		return g, nil
	}
	return &Group{Nodes: []Node{root}}, nil
}

// parseAlternation returns a *Group when no '|' follows the left-hand side,
// otherwise an *Alternation whose right branch holds any further choices.
func (p *parser) parseAlternation() (Node, error) {
	left, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	if p.current().Kind != TokenAlternation {
		return &Group{Nodes: left}, nil
	}
	p.next()

	rest, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	right := []Node{rest}
	if g, ok := rest.(*Group); ok {
		right = g.Nodes
	}
	return &Alternation{Left: left, Right: right}, nil
}

func (p *parser) parseSequence() ([]Node, error) {
	var nodes []Node
	for {
		switch p.current().Kind {
		case TokenAlternation, TokenGroupEnd, TokenEOF:
			return nodes, nil
		}
		n, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

// parseRepetition parses one primary and binds at most one quantifier to it.
// A second quantifier is rejected by the next parsePrimary call.
func (p *parser) parseRepetition() (Node, error) {
	atom, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	tok := p.current()
	if tok.Kind != TokenQuantifier {
		return atom, nil
	}
	switch atom.(type) {
	case *StartAnchor, *EndAnchor:
		return nil, p.fail(ErrUnexpectedQuantifier, tok)
	}
	p.next()
	return &Repetition{Child: atom, Quantifier: tok.Quantifier}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.current()
	switch tok.Kind {
	case TokenLiteral:
		p.next()
		return newLiteral(tok.Char, tok.Raw), nil
	case TokenWildcard:
		p.next()
		return &Wildcard{}, nil
	case TokenStartAnchor:
		p.next()
		return &StartAnchor{}, nil
	case TokenEndAnchor:
		p.next()
		return &EndAnchor{}, nil
	case TokenClassEscape:
		p.next()
		return &CharClass{Kind: classForEscape(tok.Char)}, nil
	case TokenEscape:
		return p.parseEscape(tok)
	case TokenBracket:
		if !tok.Terminated {
			return nil, p.fail(ErrUnterminatedClass, tok)
		}
		p.next()
		return newSetClass(tok.Set, tok.Negated), nil
	case TokenGroupStart:
		return p.parseGroup()
	case TokenQuantifier:
		return nil, p.fail(ErrUnexpectedQuantifier, tok)
	default:
		return nil, p.fail(ErrUnexpectedToken, tok)
	}
}

// parseEscape turns an escaped punctuation character into a literal. Escaped
// letters and digits name features such as \b or \1 that are not
// implemented.
func (p *parser) parseEscape(tok Token) (Node, error) {
	switch {
	case tok.Dangling:
		return nil, p.fail(ErrUnexpectedToken, tok)
	case isWord(tok.Char) && tok.Char != '_':
		return nil, p.fail(ErrUnsupported, tok)
	}
	p.next()
	return newLiteral(tok.Char, tok.Raw[1:]), nil
}

func (p *parser) parseGroup() (Node, error) {
	open := p.current()
	p.next()

	inner, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.current().Kind != TokenGroupEnd {
		return nil, p.fail(ErrUnmatchedGroup, open)
	}
	p.next()
	return inner, nil
}
