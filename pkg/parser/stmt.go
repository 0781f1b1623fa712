package parser

import (
	"github.com/ccheck-dev/ccheck/pkg/ast"
	"github.com/ccheck-dev/ccheck/pkg/lexer"
)

// parseBlock parses a braced statement block, or a single statement
// wrapped in a brace-less block.
func (p *Parser) parseBlock(braces bool) (*ast.Block, error) {
	blk := &ast.Block{Braces: braces}

	if !braces {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		blk.Stmts = append(blk.Stmts, stmt)
		return blk, nil
	}

	tlbrace, err := p.match(lexer.Lbrace, "'{'")
	if err != nil {
		return nil, err
	}
	blk.TLbrace = tlbrace

	for p.kind(0) != lexer.Rbrace {
		if p.kind(0) == lexer.EOF {
			return nil, p.errExpected("'}'")
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		blk.Stmts = append(blk.Stmts, stmt)
	}

	blk.TRbrace = p.next()
	return blk, nil
}

// parseBody parses the body of a compound statement: a braced block
// when one follows, a single-statement block otherwise.
func (p *Parser) parseBody() (*ast.Block, error) {
	return p.parseBlock(p.kind(0) == lexer.Lbrace)
}

func (p *Parser) parseStmt() (ast.Node, error) {
	switch k := p.kind(0); {
	case k == lexer.KwBreak:
		s := &ast.Break{TBreak: p.next()}
		var err error
		s.TScolon, err = p.match(lexer.Scolon, "';'")
		return s, err
	case k == lexer.KwContinue:
		s := &ast.Continue{TContinue: p.next()}
		var err error
		s.TScolon, err = p.match(lexer.Scolon, "';'")
		return s, err
	case k == lexer.KwGoto:
		return p.parseGoto()
	case k == lexer.KwReturn:
		return p.parseReturn()
	case k == lexer.KwIf:
		return p.parseIf()
	case k == lexer.KwWhile:
		return p.parseWhile()
	case k == lexer.KwDo:
		return p.parseDo()
	case k == lexer.KwFor:
		return p.parseFor()
	case k == lexer.KwSwitch:
		return p.parseSwitch()
	case k == lexer.KwCase, k == lexer.KwDefault:
		return p.parseCLabel()
	case k == lexer.Ident && p.kind(1) == lexer.Colon:
		s := &ast.GLabel{TLabel: p.next(), TColon: p.next()}
		return s, nil
	case k.IsDSpec():
		return p.parseStDecln()
	default:
		return p.parseStExpr()
	}
}

func (p *Parser) parseGoto() (ast.Node, error) {
	s := &ast.Goto{TGoto: p.next()}
	var err error
	if s.TIdent, err = p.match(lexer.Ident, "label name"); err != nil {
		return nil, err
	}
	if s.TScolon, err = p.match(lexer.Scolon, "';'"); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseReturn() (ast.Node, error) {
	s := &ast.Return{TReturn: p.next()}
	var err error

	if p.kind(0) != lexer.Scolon {
		if s.Arg, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if s.TScolon, err = p.match(lexer.Scolon, "';'"); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	s := &ast.If{TIf: p.next()}
	var err error

	if s.TLparen, err = p.match(lexer.Lparen, "'('"); err != nil {
		return nil, err
	}
	if s.Cond, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if s.TRparen, err = p.match(lexer.Rparen, "')'"); err != nil {
		return nil, err
	}
	if s.TBody, err = p.parseBody(); err != nil {
		return nil, err
	}

	if p.kind(0) != lexer.KwElse {
		return s, nil
	}
	s.TElse = p.next()

	if p.kind(0) == lexer.KwIf {
		// else-if chain: the nested if forms a brace-less else body
		nested, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		s.EBody = &ast.Block{Stmts: []ast.Node{nested}}
		return s, nil
	}

	if s.EBody, err = p.parseBody(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	s := &ast.While{TWhile: p.next()}
	var err error

	if s.TLparen, err = p.match(lexer.Lparen, "'('"); err != nil {
		return nil, err
	}
	if s.Cond, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if s.TRparen, err = p.match(lexer.Rparen, "')'"); err != nil {
		return nil, err
	}
	if s.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseDo() (ast.Node, error) {
	s := &ast.Do{TDo: p.next()}
	var err error

	if s.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	if s.TWhile, err = p.match(lexer.KwWhile, "'while'"); err != nil {
		return nil, err
	}
	if s.TLparen, err = p.match(lexer.Lparen, "'('"); err != nil {
		return nil, err
	}
	if s.Cond, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if s.TRparen, err = p.match(lexer.Rparen, "')'"); err != nil {
		return nil, err
	}
	if s.TScolon, err = p.match(lexer.Scolon, "';'"); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseFor() (ast.Node, error) {
	s := &ast.For{TFor: p.next()}
	var err error

	if s.TLparen, err = p.match(lexer.Lparen, "'('"); err != nil {
		return nil, err
	}
	if p.kind(0) != lexer.Scolon {
		if s.Init, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if s.TScolon1, err = p.match(lexer.Scolon, "';'"); err != nil {
		return nil, err
	}
	if p.kind(0) != lexer.Scolon {
		if s.Cond, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if s.TScolon2, err = p.match(lexer.Scolon, "';'"); err != nil {
		return nil, err
	}
	if p.kind(0) != lexer.Rparen {
		if s.Next, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if s.TRparen, err = p.match(lexer.Rparen, "')'"); err != nil {
		return nil, err
	}
	if s.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseSwitch() (ast.Node, error) {
	s := &ast.Switch{TSwitch: p.next()}
	var err error

	if s.TLparen, err = p.match(lexer.Lparen, "'('"); err != nil {
		return nil, err
	}
	if s.Cond, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if s.TRparen, err = p.match(lexer.Rparen, "')'"); err != nil {
		return nil, err
	}
	if s.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseCLabel() (ast.Node, error) {
	s := &ast.CLabel{TCase: p.next()}
	var err error

	if s.TCase.Text == "case" {
		if s.CExpr, err = p.parseCondExpr(); err != nil {
			return nil, err
		}
	}
	if s.TColon, err = p.match(lexer.Colon, "':'"); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseStExpr() (ast.Node, error) {
	s := &ast.StExpr{}
	var err error

	if s.Expr, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if s.TScolon, err = p.match(lexer.Scolon, "';'"); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseStDecln() (ast.Node, error) {
	s := &ast.StDecln{}
	var err error

	if s.DSpecs, err = p.parseDSpecs(); err != nil {
		return nil, err
	}
	if s.DList, err = p.parseDList(true); err != nil {
		return nil, err
	}
	if s.TScolon, err = p.match(lexer.Scolon, "';'"); err != nil {
		return nil, err
	}
	return s, nil
}
