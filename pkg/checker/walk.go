package checker

import (
	"fmt"

	"github.com/ccheck-dev/ccheck/pkg/ast"
)

// Messages pinned by more than one check.
const (
	msgStmtNewline  = "Statement must start on a new line."
	msgDeclNewline  = "Declaration must start on a new line."
	msgBlockOpen    = "Expected single space before block opening brace."
	msgBlockClose   = "Block closing brace must start on a new line."
	msgNoWsLparen   = "Unexpected whitespace after '('."
	msgNoWsRparen   = "Unexpected whitespace before ')'."
	msgNoWsScolon   = "Unexpected whitespace before ';'."
	msgNoWsComma    = "Unexpected whitespace before ','."
	msgSpaceComma   = "Expected whitespace after ','."
	msgSingleLparen = "Expected single space before '('."
)

// checkModule walks every global declaration.
func (m *Module) checkModule() {
	sc := scope{}
	for _, decl := range m.ast.Decls {
		m.checkGDecln(decl, sc)
	}
}

func (m *Module) checkGDecln(n ast.Node, sc scope) {
	g := n.(*ast.GDecln)

	m.lbegin(tokOf(g.FirstTok()), sc, msgDeclNewline)
	m.checkDSpecs(g.DSpecs, sc)
	m.checkDList(g.DList, sc)

	if g.Body != nil {
		m.checkFnBody(g.Body, sc)
	}
	m.nowsBefore(tokOf(g.TScolon), sc, msgNoWsScolon)
}

// checkFnBody checks a function body: both braces begin their own line
// at the function's indentation, the statements are one level deeper.
func (m *Module) checkFnBody(b *ast.Block, sc scope) {
	m.lbegin(tokOf(b.TLbrace), sc, "Function opening brace must start on a new line.")

	nsc := sc.nested()
	for _, stmt := range b.Stmts {
		m.checkStmt(stmt, nsc)
	}

	m.lbegin(tokOf(b.TRbrace), sc, "Function closing brace must start on a new line.")
}

// checkBlock checks a statement body. Braced bodies open with a single
// space after the controlling statement and close on their own line;
// statements sit at bodyLvl.
func (m *Module) checkBlock(b *ast.Block, sc scope, bodyLvl int) {
	if b == nil {
		return
	}

	if b.Braces {
		m.nbspaceBefore(tokOf(b.TLbrace), sc, msgBlockOpen)
	}

	bsc := scope{indlvl: bodyLvl}
	for _, stmt := range b.Stmts {
		m.checkStmt(stmt, bsc)
	}

	if b.Braces {
		m.lbegin(tokOf(b.TRbrace), sc, msgBlockClose)
	}
}

func (m *Module) checkDSpecs(ds *ast.DSpecs, sc scope) {
	if ds == nil {
		return
	}
	for i, spec := range ds.Specs {
		if i > 0 {
			m.brkspaceBefore(tokOf(spec.FirstTok()), sc,
				"Expected whitespace between declaration specifiers.")
		} else {
			m.anyTok(tokOf(spec.FirstTok()), sc)
		}
		m.checkSpec(spec, sc)
	}
}

func (m *Module) checkSQList(sq *ast.SQList, sc scope) {
	if sq == nil {
		return
	}
	for i, elem := range sq.Elems {
		if i > 0 {
			m.brkspaceBefore(tokOf(elem.FirstTok()), sc,
				"Expected whitespace between declaration specifiers.")
		} else {
			m.anyTok(tokOf(elem.FirstTok()), sc)
		}
		m.checkSpec(elem, sc)
	}
}

// checkSpec checks one specifier or qualifier element.
func (m *Module) checkSpec(n ast.Node, sc scope) {
	switch v := n.(type) {
	case *ast.SClass:
		m.anyTok(tokOf(v.TSclass), sc)
	case *ast.TQual:
		m.anyTok(tokOf(v.TQual), sc)
	case *ast.FSpec:
		m.anyTok(tokOf(v.TFspec), sc)
	case *ast.TSBasic:
		m.anyTok(tokOf(v.TBasic), sc)
	case *ast.TSIdent:
		m.anyTok(tokOf(v.TIdent), sc)
	case *ast.TSRecord:
		m.checkTSRecord(v, sc)
	case *ast.TSEnum:
		m.checkTSEnum(v, sc)
	}
}

func (m *Module) checkTSRecord(r *ast.TSRecord, sc scope) {
	m.anyTok(tokOf(r.TSU), sc)
	if r.TIdent != nil {
		m.nbspaceBefore(tokOf(r.TIdent), sc,
			fmt.Sprintf("Expected single space before '%s'.", r.TIdent.Text))
	}

	if !r.HaveDef {
		return
	}

	m.nbspaceBefore(tokOf(r.TLbrace), sc, "Expected single space before '{'.")

	nsc := sc.nested()
	for _, elem := range r.Elems {
		first := elem.SQList.FirstTok()
		m.lbegin(tokOf(first), nsc, "Member declaration must start on a new line.")
		m.checkSQList(elem.SQList, nsc)
		m.checkDList(elem.DList, nsc)
		m.nowsBefore(tokOf(elem.TScolon), nsc, msgNoWsScolon)
	}

	m.lbegin(tokOf(r.TRbrace), sc, "Record closing brace must start on a new line.")
}

func (m *Module) checkTSEnum(e *ast.TSEnum, sc scope) {
	m.anyTok(tokOf(e.TEnum), sc)
	if e.TIdent != nil {
		m.nbspaceBefore(tokOf(e.TIdent), sc,
			fmt.Sprintf("Expected single space before '%s'.", e.TIdent.Text))
	}

	if !e.HaveDef {
		return
	}

	m.nbspaceBefore(tokOf(e.TLbrace), sc, "Expected single space before '{'.")

	nsc := sc.nested()
	for _, elem := range e.Elems {
		m.lbegin(tokOf(elem.TIdent), nsc, "Enumerator must start on a new line.")
		if elem.TEquals != nil {
			m.brkspaceBefore(tokOf(elem.TEquals), nsc, "Expected whitespace before '='.")
			m.brkspaceAfter(tokOf(elem.TEquals), nsc, "Expected whitespace after '='.")
			m.checkExpr(elem.Init, nsc)
		}
		m.nowsBefore(tokOf(elem.TComma), nsc, msgNoWsComma)
	}

	m.lbegin(tokOf(e.TRbrace), sc, "Enum closing brace must start on a new line.")
}

func (m *Module) checkDList(dl *ast.DList, sc scope) {
	if dl == nil {
		return
	}
	for _, entry := range dl.Entries {
		if entry.TComma != nil {
			m.nowsBefore(tokOf(entry.TComma), sc, msgNoWsComma)
			m.brkspaceAfter(tokOf(entry.TComma), sc, msgSpaceComma)
		}

		if first := entry.Decl.FirstTok(); first != nil {
			m.brkspaceBefore(tokOf(first), sc,
				"Expected whitespace before declarator.")
		}
		m.checkDecl(entry.Decl, sc)

		if entry.TAssign != nil {
			m.brkspaceBefore(tokOf(entry.TAssign), sc, "Expected whitespace before '='.")
			m.brkspaceAfter(tokOf(entry.TAssign), sc, "Expected whitespace after '='.")
			m.checkExpr(entry.Init, sc)
		}
	}
}

// checkDecl checks a declarator.
func (m *Module) checkDecl(n ast.Node, sc scope) {
	switch v := n.(type) {
	case *ast.DIdent:
		m.anyTok(tokOf(v.TIdent), sc)
	case *ast.DNoident:
	case *ast.DParen:
		m.anyTok(tokOf(v.TLparen), sc)
		m.nsbrkAfter(tokOf(v.TLparen), sc, msgNoWsLparen)
		m.checkDecl(v.BDecl, sc)
		m.nowsBefore(tokOf(v.TRparen), sc, msgNoWsRparen)
	case *ast.DPtr:
		m.anyTok(tokOf(v.TAsterisk), sc)
		if len(v.TQuals) == 0 {
			m.nowsAfter(tokOf(v.TAsterisk), sc, "Unexpected whitespace after '*'.")
		}
		for _, q := range v.TQuals {
			m.brkspaceBefore(tokOf(q.TQual), sc, "Expected whitespace before qualifier.")
		}
		m.checkDecl(v.BDecl, sc)
	case *ast.DFun:
		m.checkDecl(v.BDecl, sc)
		m.nowsBefore(tokOf(v.TLparen), sc, "Unexpected whitespace before '('.")
		m.nsbrkAfter(tokOf(v.TLparen), sc, msgNoWsLparen)
		for _, arg := range v.Args {
			m.checkDSpecs(arg.DSpecs, sc)
			if first := arg.Decl.FirstTok(); first != nil {
				m.brkspaceBefore(tokOf(first), sc,
					"Expected whitespace before declarator.")
			}
			m.checkDecl(arg.Decl, sc)
			if arg.TComma != nil {
				m.nowsBefore(tokOf(arg.TComma), sc, msgNoWsComma)
				m.brkspaceAfter(tokOf(arg.TComma), sc, msgSpaceComma)
			}
		}
		m.nowsBefore(tokOf(v.TRparen), sc, msgNoWsRparen)
	case *ast.DArray:
		m.checkDecl(v.BDecl, sc)
		m.nowsBefore(tokOf(v.TLbracket), sc, "Unexpected whitespace before '['.")
		m.nsbrkAfter(tokOf(v.TLbracket), sc, "Unexpected whitespace after '['.")
		m.anyTok(tokOf(v.TSize), sc)
		m.nowsBefore(tokOf(v.TRbracket), sc, "Unexpected whitespace before ']'.")
	}
}

func (m *Module) checkTypeName(tn *ast.TypeName, sc scope) {
	if tn == nil {
		return
	}
	m.checkSQList(tn.SQList, sc)
	if first := tn.Decl.FirstTok(); first != nil {
		m.brkspaceBefore(tokOf(first), sc, "Expected whitespace before declarator.")
	}
	m.checkDecl(tn.Decl, sc)
}
