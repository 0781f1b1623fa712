package checker

import (
	"github.com/ccheck-dev/ccheck/pkg/ast"
)

// checkStmt dispatches on the statement kind. Every statement's first
// token must begin its line; case and goto labels are dedented by one
// level relative to the surrounding statements.
func (m *Module) checkStmt(n ast.Node, sc scope) {
	switch v := n.(type) {
	case *ast.Break:
		m.lbegin(tokOf(v.TBreak), sc, msgStmtNewline)
		m.nowsBefore(tokOf(v.TScolon), sc, msgNoWsScolon)
	case *ast.Continue:
		m.lbegin(tokOf(v.TContinue), sc, msgStmtNewline)
		m.nowsBefore(tokOf(v.TScolon), sc, msgNoWsScolon)
	case *ast.Goto:
		m.lbegin(tokOf(v.TGoto), sc, msgStmtNewline)
		m.brkspaceAfter(tokOf(v.TGoto), sc, "Expected whitespace after 'goto'.")
		m.anyTok(tokOf(v.TIdent), sc)
		m.nowsBefore(tokOf(v.TScolon), sc, msgNoWsScolon)
	case *ast.Return:
		m.lbegin(tokOf(v.TReturn), sc, msgStmtNewline)
		if v.Arg != nil {
			m.brkspaceAfter(tokOf(v.TReturn), sc, "Expected whitespace after 'return'.")
			m.checkExpr(v.Arg, sc)
		}
		m.nowsBefore(tokOf(v.TScolon), sc, msgNoWsScolon)
	case *ast.If:
		m.checkIf(v, sc, true)
	case *ast.While:
		m.lbegin(tokOf(v.TWhile), sc, msgStmtNewline)
		m.checkCondHead(v.TLparen, v.Cond, v.TRparen, sc)
		m.checkBlock(v.Body, sc, sc.indlvl+1)
	case *ast.Do:
		m.checkDo(v, sc)
	case *ast.For:
		m.checkFor(v, sc)
	case *ast.Switch:
		m.lbegin(tokOf(v.TSwitch), sc, msgStmtNewline)
		m.checkCondHead(v.TLparen, v.Cond, v.TRparen, sc)
		// Statements of a switch body sit two levels in; the case
		// labels between them are dedented back by one.
		m.checkBlock(v.Body, sc, sc.indlvl+2)
	case *ast.CLabel:
		// the label token is dedented one level from the body it
		// annotates
		lsc := scope{indlvl: sc.indlvl - 1}
		m.lbegin(tokOf(v.TCase), lsc, "Case label must start on a new line.")
		if v.CExpr != nil {
			m.brkspaceAfter(tokOf(v.TCase), lsc, "Expected whitespace after 'case'.")
			m.checkExpr(v.CExpr, sc)
		}
		m.nowsBefore(tokOf(v.TColon), sc, "Unexpected whitespace before ':'.")
	case *ast.GLabel:
		m.lbegin(tokOf(v.TLabel), scope{indlvl: sc.indlvl - 1},
			"Label must start on a new line.")
		m.nowsBefore(tokOf(v.TColon), sc, "Unexpected whitespace before ':'.")
	case *ast.StExpr:
		m.lbegin(tokOf(v.FirstTok()), sc, msgStmtNewline)
		m.checkExpr(v.Expr, sc)
		m.nowsBefore(tokOf(v.TScolon), sc, msgNoWsScolon)
	case *ast.StDecln:
		m.lbegin(tokOf(v.FirstTok()), sc, msgDeclNewline)
		m.checkDSpecs(v.DSpecs, sc)
		m.checkDList(v.DList, sc)
		m.nowsBefore(tokOf(v.TScolon), sc, msgNoWsScolon)
	}
}

// checkCondHead checks the parenthesized controlling expression of if,
// while, for and switch: a single space before '(', no spaces inside
// the parentheses.
func (m *Module) checkCondHead(tlparen *ast.Tok, cond ast.Node, trparen *ast.Tok, sc scope) {
	m.nbspaceBefore(tokOf(tlparen), sc, msgSingleLparen)
	m.nsbrkAfter(tokOf(tlparen), sc, msgNoWsLparen)
	m.checkExpr(cond, sc)
	m.nowsBefore(tokOf(trparen), sc, msgNoWsRparen)
}

// checkIf checks an if statement. lbeginOK is false for the if of an
// else-if chain, which continues the else line instead of starting its
// own.
func (m *Module) checkIf(v *ast.If, sc scope, lbeginOK bool) {
	if lbeginOK {
		m.lbegin(tokOf(v.TIf), sc, msgStmtNewline)
	} else {
		m.nbspaceBefore(tokOf(v.TIf), sc, "Expected single space before 'if'.")
	}

	m.checkCondHead(v.TLparen, v.Cond, v.TRparen, sc)
	m.checkBlock(v.TBody, sc, sc.indlvl+1)

	if v.TElse == nil {
		return
	}

	// With a braced if-body the else shares the closing brace's line;
	// without braces it must begin a line of its own.
	if v.TBody.Braces {
		m.nbspaceBefore(tokOf(v.TElse), sc, "Expected single space before 'else'.")
	} else {
		m.lbegin(tokOf(v.TElse), sc, "'else' must start on a new line.")
	}

	// else-if: the nested if continues the same line
	if !v.EBody.Braces && len(v.EBody.Stmts) == 1 {
		if nested, ok := v.EBody.Stmts[0].(*ast.If); ok {
			m.checkIf(nested, sc, false)
			return
		}
	}
	m.checkBlock(v.EBody, sc, sc.indlvl+1)
}

func (m *Module) checkDo(v *ast.Do, sc scope) {
	m.lbegin(tokOf(v.TDo), sc, msgStmtNewline)
	m.checkBlock(v.Body, sc, sc.indlvl+1)

	if v.Body.Braces {
		m.nbspaceBefore(tokOf(v.TWhile), sc, "Expected single space before 'while'.")
	} else {
		m.lbegin(tokOf(v.TWhile), sc, "'while' must start on a new line.")
	}

	m.checkCondHead(v.TLparen, v.Cond, v.TRparen, sc)
	m.nowsBefore(tokOf(v.TScolon), sc, msgNoWsScolon)
}

func (m *Module) checkFor(v *ast.For, sc scope) {
	m.lbegin(tokOf(v.TFor), sc, msgStmtNewline)
	m.nbspaceBefore(tokOf(v.TLparen), sc, msgSingleLparen)
	m.nsbrkAfter(tokOf(v.TLparen), sc, msgNoWsLparen)

	m.checkExpr(v.Init, sc)
	m.nowsBefore(tokOf(v.TScolon1), sc, msgNoWsScolon)
	if v.Cond != nil {
		m.brkspaceAfter(tokOf(v.TScolon1), sc, "Expected whitespace after ';'.")
		m.checkExpr(v.Cond, sc)
	}
	m.nowsBefore(tokOf(v.TScolon2), sc, msgNoWsScolon)
	if v.Next != nil {
		m.brkspaceAfter(tokOf(v.TScolon2), sc, "Expected whitespace after ';'.")
		m.checkExpr(v.Next, sc)
	}

	m.nowsBefore(tokOf(v.TRparen), sc, msgNoWsRparen)
	m.checkBlock(v.Body, sc, sc.indlvl+1)
}
