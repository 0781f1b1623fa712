// Package parser builds an abstract syntax tree from the token stream
// by recursive descent. Whitespace, comments and preprocessor lines are
// skipped before the grammar sees a token; every token a grammar rule
// does consume is recorded, with the consumer's back-reference handle,
// in the matching slot of the node under construction.
package parser

import (
	"fmt"

	"github.com/ccheck-dev/ccheck/pkg/ast"
	"github.com/ccheck-dev/ccheck/pkg/lexer"
	"github.com/ccheck-dev/ccheck/pkg/srcpos"
)

// Source supplies tokens to the parser. Next returns the next lexer
// token and an opaque handle that ends up in the Data field of the AST
// token slot the token is stored in.
type Source interface {
	Next() (lexer.Token, any)
}

// SyntaxError describes a parse failure: the offending token and the
// alternative the grammar expected. Parse errors are fatal for the
// translation unit; the parser does not resynchronize.
type SyntaxError struct {
	Pos      srcpos.Pos
	Found    string
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: unexpected %s, expected %s", e.Pos, e.Found, e.Expected)
}

type laTok struct {
	tok  lexer.Token
	data any
}

// Parser is the recursive-descent parser state: the token source and a
// small lookahead queue of grammatical tokens.
type Parser struct {
	src Source
	la  []laTok
}

// New creates a parser over the given source.
func New(src Source) *Parser {
	return &Parser{src: src}
}

// Parse consumes the whole source and returns the module tree.
func Parse(src Source) (*ast.Module, error) {
	return New(src).parseModule()
}

// peek returns the i-th upcoming grammatical token, pulling and
// discarding non-grammatical tokens as needed.
func (p *Parser) peek(i int) laTok {
	for len(p.la) <= i {
		tok, data := p.src.Next()
		if tok.Kind.IsWspace() || tok.Kind.IsComment() || tok.Kind == lexer.Preproc {
			continue
		}
		p.la = append(p.la, laTok{tok: tok, data: data})
	}
	return p.la[i]
}

func (p *Parser) kind(i int) lexer.Kind {
	return p.peek(i).tok.Kind
}

// next consumes the current token unconditionally.
func (p *Parser) next() *ast.Tok {
	lt := p.peek(0)
	p.la = p.la[1:]
	return &ast.Tok{Pos: lt.tok.Bpos, Text: lt.tok.Text, Data: lt.data}
}

// match consumes the current token if it has the wanted kind and fails
// with a syntax error otherwise.
func (p *Parser) match(k lexer.Kind, expected string) (*ast.Tok, error) {
	if p.kind(0) != k {
		return nil, p.errExpected(expected)
	}
	return p.next(), nil
}

func (p *Parser) errExpected(expected string) error {
	lt := p.peek(0)
	found := fmt.Sprintf("'%s'", lt.tok.Text)
	switch lt.tok.Kind {
	case lexer.EOF:
		found = "end of file"
	case lexer.Invalid:
		found = fmt.Sprintf("invalid token '%s'", lt.tok.Text)
	}
	return &SyntaxError{Pos: lt.tok.Bpos, Found: found, Expected: expected}
}

// declStart reports whether a token kind can begin a (non-abstract)
// declarator.
func declStart(k lexer.Kind) bool {
	return k == lexer.Ident || k == lexer.Asterisk || k == lexer.Lparen
}

func (p *Parser) parseModule() (*ast.Module, error) {
	mod := &ast.Module{}
	for p.kind(0) != lexer.EOF {
		d, err := p.parseGDecln()
		if err != nil {
			return nil, err
		}
		mod.Decls = append(mod.Decls, d)
	}
	return mod, nil
}

// parseGDecln parses one global declaration or function definition.
func (p *Parser) parseGDecln() (ast.Node, error) {
	dspecs, err := p.parseDSpecs()
	if err != nil {
		return nil, err
	}

	dlist, err := p.parseDList(true)
	if err != nil {
		return nil, err
	}

	g := &ast.GDecln{DSpecs: dspecs, DList: dlist}

	if p.kind(0) == lexer.Lbrace {
		body, err := p.parseBlock(true)
		if err != nil {
			return nil, err
		}
		g.Body = body
		return g, nil
	}

	tscolon, err := p.match(lexer.Scolon, "';'")
	if err != nil {
		return nil, err
	}
	g.TScolon = tscolon
	return g, nil
}

// parseDSpecs parses a declaration-specifier sequence: any mix of
// storage classes, type specifiers, qualifiers and function
// specifiers. At most one identifier is accepted as a type-specifier,
// and only before any other type specifier has been seen.
func (p *Parser) parseDSpecs() (*ast.DSpecs, error) {
	ds := &ast.DSpecs{}
	seenType := false

	for {
		k := p.kind(0)
		switch {
		case k.IsSClass():
			ds.Specs = append(ds.Specs, &ast.SClass{TSclass: p.next()})
		case k.IsTQual():
			ds.Specs = append(ds.Specs, &ast.TQual{TQual: p.next()})
		case k.IsFSpec():
			ds.Specs = append(ds.Specs, &ast.FSpec{TFspec: p.next()})
		case k == lexer.KwStruct || k == lexer.KwUnion:
			rec, err := p.parseTSRecord()
			if err != nil {
				return nil, err
			}
			ds.Specs = append(ds.Specs, rec)
			seenType = true
		case k == lexer.KwEnum:
			en, err := p.parseTSEnum()
			if err != nil {
				return nil, err
			}
			ds.Specs = append(ds.Specs, en)
			seenType = true
		case k.IsTSpec():
			ds.Specs = append(ds.Specs, &ast.TSBasic{TBasic: p.next()})
			seenType = true
		case k == lexer.Ident && !seenType && declStart(p.kind(1)):
			ds.Specs = append(ds.Specs, &ast.TSIdent{TIdent: p.next()})
			seenType = true
		default:
			if len(ds.Specs) == 0 {
				return nil, p.errExpected("declaration specifier")
			}
			return ds, nil
		}
	}
}

// parseSQList parses a specifier-qualifier list (no storage classes),
// as used in record members and type names.
func (p *Parser) parseSQList() (*ast.SQList, error) {
	sq := &ast.SQList{}
	seenType := false

	for {
		k := p.kind(0)
		switch {
		case k.IsTQual():
			sq.Elems = append(sq.Elems, &ast.TQual{TQual: p.next()})
		case k == lexer.KwStruct || k == lexer.KwUnion:
			rec, err := p.parseTSRecord()
			if err != nil {
				return nil, err
			}
			sq.Elems = append(sq.Elems, rec)
			seenType = true
		case k == lexer.KwEnum:
			en, err := p.parseTSEnum()
			if err != nil {
				return nil, err
			}
			sq.Elems = append(sq.Elems, en)
			seenType = true
		case k.IsTSpec():
			sq.Elems = append(sq.Elems, &ast.TSBasic{TBasic: p.next()})
			seenType = true
		case k == lexer.Ident && !seenType:
			sq.Elems = append(sq.Elems, &ast.TSIdent{TIdent: p.next()})
			seenType = true
		default:
			if len(sq.Elems) == 0 {
				return nil, p.errExpected("type specifier")
			}
			return sq, nil
		}
	}
}

func (p *Parser) parseTSRecord() (*ast.TSRecord, error) {
	rec := &ast.TSRecord{TSU: p.next()}
	if rec.TSU.Text == "union" {
		rec.RType = ast.Union
	}

	if p.kind(0) == lexer.Ident {
		rec.TIdent = p.next()
	}

	if p.kind(0) != lexer.Lbrace {
		if rec.TIdent == nil {
			return nil, p.errExpected("struct/union tag or '{'")
		}
		return rec, nil
	}

	rec.HaveDef = true
	rec.TLbrace = p.next()

	for p.kind(0) != lexer.Rbrace {
		sq, err := p.parseSQList()
		if err != nil {
			return nil, err
		}
		dl, err := p.parseDList(false)
		if err != nil {
			return nil, err
		}
		tscolon, err := p.match(lexer.Scolon, "';'")
		if err != nil {
			return nil, err
		}
		rec.Elems = append(rec.Elems, &ast.RecordElem{
			SQList:  sq,
			DList:   dl,
			TScolon: tscolon,
		})
	}

	rec.TRbrace = p.next()
	return rec, nil
}

func (p *Parser) parseTSEnum() (*ast.TSEnum, error) {
	en := &ast.TSEnum{TEnum: p.next()}

	if p.kind(0) == lexer.Ident {
		en.TIdent = p.next()
	}

	if p.kind(0) != lexer.Lbrace {
		if en.TIdent == nil {
			return nil, p.errExpected("enum tag or '{'")
		}
		return en, nil
	}

	en.HaveDef = true
	en.TLbrace = p.next()

	for p.kind(0) != lexer.Rbrace {
		elem := &ast.EnumElem{}
		tident, err := p.match(lexer.Ident, "enumerator name")
		if err != nil {
			return nil, err
		}
		elem.TIdent = tident

		if p.kind(0) == lexer.Assign {
			elem.TEquals = p.next()
			init, err := p.parseCondExpr()
			if err != nil {
				return nil, err
			}
			elem.Init = init
		}

		if p.kind(0) == lexer.Comma {
			elem.TComma = p.next()
		}
		en.Elems = append(en.Elems, elem)

		if elem.TComma == nil {
			break
		}
	}

	trbrace, err := p.match(lexer.Rbrace, "'}'")
	if err != nil {
		return nil, err
	}
	en.TRbrace = trbrace
	return en, nil
}

// parseDecl parses a declarator: any number of pointer levels followed
// by a direct declarator, which may be abstract.
func (p *Parser) parseDecl() (ast.Node, error) {
	if p.kind(0) == lexer.Asterisk {
		dptr := &ast.DPtr{TAsterisk: p.next()}
		for p.kind(0).IsTQual() {
			dptr.TQuals = append(dptr.TQuals, &ast.TQual{TQual: p.next()})
		}
		b, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		dptr.BDecl = b
		return dptr, nil
	}
	return p.parseDirectDecl()
}

func (p *Parser) parseDirectDecl() (ast.Node, error) {
	var base ast.Node
	var err error

	switch {
	case p.kind(0) == lexer.Ident:
		base = &ast.DIdent{TIdent: p.next()}
	case p.kind(0) == lexer.Lparen && declStart(p.kind(1)):
		dp := &ast.DParen{TLparen: p.next()}
		dp.BDecl, err = p.parseDecl()
		if err != nil {
			return nil, err
		}
		dp.TRparen, err = p.match(lexer.Rparen, "')'")
		if err != nil {
			return nil, err
		}
		base = dp
	default:
		base = &ast.DNoident{}
	}

	for {
		switch p.kind(0) {
		case lexer.Lparen:
			base, err = p.parseDFun(base)
		case lexer.Lbracket:
			base, err = p.parseDArray(base)
		default:
			return base, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseDFun(base ast.Node) (ast.Node, error) {
	df := &ast.DFun{BDecl: base, TLparen: p.next()}

	if p.kind(0) != lexer.Rparen {
		for {
			ds, err := p.parseDSpecs()
			if err != nil {
				return nil, err
			}
			d, err := p.parseDecl()
			if err != nil {
				return nil, err
			}
			arg := &ast.DFunArg{DSpecs: ds, Decl: d}
			df.Args = append(df.Args, arg)

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
	df.TRparen = trparen
	return df, nil
}

func (p *Parser) parseDArray(base ast.Node) (ast.Node, error) {
	da := &ast.DArray{BDecl: base, TLbracket: p.next()}

	if p.kind(0) != lexer.Rbracket {
		if p.kind(0) != lexer.Number && p.kind(0) != lexer.Ident {
			return nil, p.errExpected("array size")
		}
		da.TSize = p.next()
	}

	trbracket, err := p.match(lexer.Rbracket, "']'")
	if err != nil {
		return nil, err
	}
	da.TRbracket = trbracket
	return da, nil
}

// parseDList parses a comma-separated declarator list. An entry can
// carry an initializer when withInit is set (declarations, but not
// record members).
func (p *Parser) parseDList(withInit bool) (*ast.DList, error) {
	dl := &ast.DList{}
	var tcomma *ast.Tok

	for {
		d, err := p.parseDecl()
		if err != nil {
			return nil, err
		}

		entry := &ast.DListEntry{TComma: tcomma, Decl: d}
		if withInit && p.kind(0) == lexer.Assign {
			entry.TAssign = p.next()
			init, err := p.parseAssignExpr()
			if err != nil {
				return nil, err
			}
			entry.Init = init
		}
		dl.Entries = append(dl.Entries, entry)

		if p.kind(0) != lexer.Comma {
			return dl, nil
		}
		tcomma = p.next()
	}
}

// parseTypeName parses a type name as it appears inside sizeof.
func (p *Parser) parseTypeName() (*ast.TypeName, error) {
	sq, err := p.parseSQList()
	if err != nil {
		return nil, err
	}
	d, err := p.parseDecl()
	if err != nil {
		return nil, err
	}
	return &ast.TypeName{SQList: sq, Decl: d}, nil
}
