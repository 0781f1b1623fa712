package parser

import (
	"github.com/ccheck-dev/ccheck/pkg/ast"
	"github.com/ccheck-dev/ccheck/pkg/lexer"
)

// binLevels lists the binary operator precedence ladder from loosest
// (logical or) to tightest (multiplicative). Each level is left
// associative.
var binLevels = [][]lexer.Kind{
	{lexer.Lor},
	{lexer.Land},
	{lexer.Bor},
	{lexer.Bxor},
	{lexer.Amper},
	{lexer.EqEq, lexer.NotEq},
	{lexer.Less, lexer.Greater, lexer.LessEq, lexer.GreaterEq},
	{lexer.Shl, lexer.Shr},
	{lexer.Plus, lexer.Minus},
	{lexer.Asterisk, lexer.Slash, lexer.Percent},
}

func isAssignOp(k lexer.Kind) bool {
	switch k {
	case lexer.Assign, lexer.PlusAssign, lexer.MinusAssign, lexer.MulAssign,
		lexer.DivAssign, lexer.ModAssign, lexer.ShlAssign, lexer.ShrAssign,
		lexer.BandAssign, lexer.BorAssign, lexer.BxorAssign:
		return true
	}
	return false
}

// parseExpr parses a full expression, comma operator included.
func (p *Parser) parseExpr() (ast.Node, error) {
	left, err := p.parseAssignExpr()
	if err != nil {
		return nil, err
	}

	for p.kind(0) == lexer.Comma {
		e := &ast.EComma{Left: left, TComma: p.next()}
		if e.Right, err = p.parseAssignExpr(); err != nil {
			return nil, err
		}
		left = e
	}
	return left, nil
}

// parseAssignExpr parses an assignment expression. Assignment is right
// associative and represented as a binary operator node.
func (p *Parser) parseAssignExpr() (ast.Node, error) {
	left, err := p.parseCondExpr()
	if err != nil {
		return nil, err
	}

	if !isAssignOp(p.kind(0)) {
		return left, nil
	}

	e := &ast.EBinop{Left: left, TOp: p.next()}
	if e.Right, err = p.parseAssignExpr(); err != nil {
		return nil, err
	}
	return e, nil
}

// parseCondExpr parses a conditional (ternary) expression.
func (p *Parser) parseCondExpr() (ast.Node, error) {
	cond, err := p.parseBinLevel(0)
	if err != nil {
		return nil, err
	}

	if p.kind(0) != lexer.Qmark {
		return cond, nil
	}

	e := &ast.ETCond{Cond: cond, TQmark: p.next()}
	if e.TArg, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if e.TColon, err = p.match(lexer.Colon, "':'"); err != nil {
		return nil, err
	}
	if e.FArg, err = p.parseCondExpr(); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) parseBinLevel(level int) (ast.Node, error) {
	if level == len(binLevels) {
		return p.parseUnary()
	}

	left, err := p.parseBinLevel(level + 1)
	if err != nil {
		return nil, err
	}

	for {
		k := p.kind(0)
		found := false
		for _, op := range binLevels[level] {
			if k == op {
				found = true
				break
			}
		}
		if !found {
			return left, nil
		}

		e := &ast.EBinop{Left: left, TOp: p.next()}
		if e.Right, err = p.parseBinLevel(level + 1); err != nil {
			return nil, err
		}
		left = e
	}
}

func (p *Parser) parseUnary() (ast.Node, error) {
	var err error

	switch p.kind(0) {
	case lexer.Asterisk:
		e := &ast.EDeref{TAsterisk: p.next()}
		e.BExpr, err = p.parseUnary()
		return e, err
	case lexer.Amper:
		e := &ast.EAddr{TAmper: p.next()}
		e.BExpr, err = p.parseUnary()
		return e, err
	case lexer.Plus, lexer.Minus:
		e := &ast.EUSign{TSign: p.next()}
		e.BExpr, err = p.parseUnary()
		return e, err
	case lexer.Lnot:
		e := &ast.ELNot{TLnot: p.next()}
		e.BExpr, err = p.parseUnary()
		return e, err
	case lexer.Bnot:
		e := &ast.EBNot{TBnot: p.next()}
		e.BExpr, err = p.parseUnary()
		return e, err
	case lexer.Inc, lexer.Dec:
		e := &ast.EPreAdj{TAdj: p.next()}
		e.BExpr, err = p.parseUnary()
		return e, err
	case lexer.KwSizeof:
		return p.parseSizeof()
	default:
		return p.parsePostfix()
	}
}

// parseSizeof parses sizeof over a parenthesized operand. The operand
// is a type name when it starts with a type-specifier or qualifier
// keyword, or when it is an identifier followed by a run of '*'
// reaching the closing parenthesis (sizeof(foo_t *)); any other
// content parses as an expression.
func (p *Parser) parseSizeof() (ast.Node, error) {
	e := &ast.ESizeof{TSizeof: p.next()}
	var err error

	if e.TLparen, err = p.match(lexer.Lparen, "'('"); err != nil {
		return nil, err
	}

	k := p.kind(0)
	isType := k.IsTSpec() || k.IsTQual()
	if k == lexer.Ident {
		i := 1
		for p.kind(i) == lexer.Asterisk {
			i++
		}
		if i > 1 && p.kind(i) == lexer.Rparen {
			isType = true
		}
	}

	if isType {
		if e.TName, err = p.parseTypeName(); err != nil {
			return nil, err
		}
	} else {
		if e.BExpr, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}

	if e.TRparen, err = p.match(lexer.Rparen, "')'"); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) parsePostfix() (ast.Node, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.kind(0) {
		case lexer.Lparen:
			e, err = p.parseFuncall(e)
		case lexer.Lbracket:
			ix := &ast.EIndex{BExpr: e, TLbracket: p.next()}
			if ix.IExpr, err = p.parseExpr(); err != nil {
				return nil, err
			}
			if ix.TRbracket, err = p.match(lexer.Rbracket, "']'"); err != nil {
				return nil, err
			}
			e = ix
		case lexer.Period:
			m := &ast.EMember{BExpr: e, TPeriod: p.next()}
			if m.TMember, err = p.match(lexer.Ident, "member name"); err != nil {
				return nil, err
			}
			e = m
		case lexer.Arrow:
			m := &ast.EIndMember{BExpr: e, TArrow: p.next()}
			if m.TMember, err = p.match(lexer.Ident, "member name"); err != nil {
				return nil, err
			}
			e = m
		case lexer.Inc, lexer.Dec:
			e = &ast.EPostAdj{BExpr: e, TAdj: p.next()}
		default:
			return e, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseFuncall(fexpr ast.Node) (ast.Node, error) {
	e := &ast.EFuncall{FExpr: fexpr, TLparen: p.next()}

	if p.kind(0) != lexer.Rparen {
		for {
			arg := &ast.ECallArg{}
			var err error
			if arg.Expr, err = p.parseAssignExpr(); err != nil {
				return nil, err
			}
			e.Args = append(e.Args, arg)

			if p.kind(0) != lexer.Comma {
				break
			}
			arg.TComma = p.next()
		}
	}

	trparen, err := p.match(lexer.Rparen, "')'")
	if err != nil {
		return nil, err
	}
	e.TRparen = trparen
	return e, nil
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	switch p.kind(0) {
	case lexer.Number:
		return &ast.EInt{TLit: p.next()}, nil
	case lexer.CharLit:
		return &ast.EChar{TLit: p.next()}, nil
	case lexer.StrLit:
		e := &ast.EString{}
		for p.kind(0) == lexer.StrLit {
			e.Parts = append(e.Parts, p.next())
		}
		return e, nil
	case lexer.Ident:
		return &ast.EIdent{TIdent: p.next()}, nil
	case lexer.Lparen:
		e := &ast.EParen{TLparen: p.next()}
		var err error
		if e.BExpr, err = p.parseExpr(); err != nil {
			return nil, err
		}
		if e.TRparen, err = p.match(lexer.Rparen, "')'"); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, p.errExpected("expression")
	}
}
