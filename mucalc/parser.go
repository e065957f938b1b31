package mucalc

import "fmt"

// parser consumes the token stream produced by lex.
type parser struct {
	toks []token
	pos  int
}

// Parse builds a Formula from source text, α-renames reused binder
// variables, and annotates every binder with its cell id and coupling data.
// The result is ready for evaluation. Syntax failures wrap ErrSyntax and
// cite the offending line and column.
func Parse(src string) (Formula, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok, "trailing input")
	}
	if err = Normalize(f); err != nil {
		return nil, err
	}

	return f, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}

	return tok
}

// expect consumes a token of the given kind or fails.
func (p *parser) expect(kind tokenType) (token, error) {
	tok := p.next()
	if tok.kind != kind {
		return token{}, p.errorf(tok, "expected %s", tokenName[kind])
	}

	return tok, nil
}

func (p *parser) errorf(tok token, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	got := tokenName[tok.kind]
	if tok.kind == tokVar || tok.kind == tokIdent {
		got = fmt.Sprintf("%q", tok.lexeme)
	}

	return fmt.Errorf("%w: line %d, col %d: %s, got %s", ErrSyntax, tok.line, tok.col, msg, got)
}

// formula parses one formula of the fully parenthesized grammar.
func (p *parser) formula() (Formula, error) {
	tok := p.next()
	switch tok.kind {
	case tokFalse:
		return &False{}, nil
	case tokTrue:
		return &True{}, nil
	case tokVar:
		return &Var{Name: VarName(tok.lexeme[0])}, nil
	case tokLParen:
		return p.binary()
	case tokLAngle:
		return p.modal(tokRAngle)
	case tokLBracket:
		return p.modal(tokRBracket)
	case tokMu, tokNu:
		return p.fixpoint(tok.kind)
	default:
		return nil, p.errorf(tok, "expected a formula")
	}
}

// binary parses "f && g" or "f || g" after the opening parenthesis.
// A closing parenthesis right after the first operand is plain grouping,
// "(f)", and yields the operand itself.
func (p *parser) binary() (Formula, error) {
	left, err := p.formula()
	if err != nil {
		return nil, err
	}
	op := p.next()
	if op.kind == tokRParen {
		return left, nil
	}
	if op.kind != tokAnd && op.kind != tokOr {
		return nil, p.errorf(op, `expected "&&" or "||"`)
	}
	right, err := p.formula()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(tokRParen); err != nil {
		return nil, err
	}

	if op.kind == tokAnd {
		return &And{Left: left, Right: right}, nil
	}

	return &Or{Left: left, Right: right}, nil
}

// modal parses "<a>f" or "[a]f" after the opening delimiter; closer selects
// which operator is being built.
func (p *parser) modal(closer tokenType) (Formula, error) {
	action, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(closer); err != nil {
		return nil, err
	}
	body, err := p.formula()
	if err != nil {
		return nil, err
	}

	if closer == tokRAngle {
		return &Diamond{Action: action.lexeme, Body: body}, nil
	}

	return &Box{Action: action.lexeme, Body: body}, nil
}

// fixpoint parses "mu X. f" or "nu X. f" after the keyword.
func (p *parser) fixpoint(kw tokenType) (Formula, error) {
	v, err := p.expect(tokVar)
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(tokDot); err != nil {
		return nil, err
	}
	body, err := p.formula()
	if err != nil {
		return nil, err
	}

	if kw == tokMu {
		return &Mu{Var: VarName(v.lexeme[0]), Body: body}, nil
	}

	return &Nu{Var: VarName(v.lexeme[0]), Body: body}, nil
}
