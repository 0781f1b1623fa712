package checker

import (
	"fmt"

	"github.com/ccheck-dev/ccheck/pkg/ast"
)

// checkExpr walks an expression, applying the spacing rule of each
// operator: binary operators are set off by spaces (or a line break),
// unary operators and member accesses bind tightly with no whitespace.
func (m *Module) checkExpr(n ast.Node, sc scope) {
	if n == nil {
		return
	}

	switch v := n.(type) {
	case *ast.EInt:
		m.anyTok(tokOf(v.TLit), sc)
	case *ast.EChar:
		m.anyTok(tokOf(v.TLit), sc)
	case *ast.EString:
		for i, part := range v.Parts {
			if i == 0 {
				m.anyTok(tokOf(part), sc)
			} else {
				m.brkspaceBefore(tokOf(part), sc,
					"Expected whitespace between string literal parts.")
			}
		}
	case *ast.EIdent:
		m.anyTok(tokOf(v.TIdent), sc)
	case *ast.EParen:
		m.anyTok(tokOf(v.TLparen), sc)
		m.nsbrkAfter(tokOf(v.TLparen), sc, msgNoWsLparen)
		m.checkExpr(v.BExpr, sc)
		m.nowsBefore(tokOf(v.TRparen), sc, msgNoWsRparen)
	case *ast.EBinop:
		m.checkExpr(v.Left, sc)
		m.brkspaceBefore(tokOf(v.TOp), sc,
			fmt.Sprintf("Expected whitespace before '%s'.", v.TOp.Text))
		m.brkspaceAfter(tokOf(v.TOp), sc,
			fmt.Sprintf("Expected whitespace after '%s'.", v.TOp.Text))
		m.checkExpr(v.Right, sc)
	case *ast.ETCond:
		m.checkExpr(v.Cond, sc)
		m.brkspaceBefore(tokOf(v.TQmark), sc, "Expected whitespace before '?'.")
		m.brkspaceAfter(tokOf(v.TQmark), sc, "Expected whitespace after '?'.")
		m.checkExpr(v.TArg, sc)
		m.brkspaceBefore(tokOf(v.TColon), sc, "Expected whitespace before ':'.")
		m.brkspaceAfter(tokOf(v.TColon), sc, "Expected whitespace after ':'.")
		m.checkExpr(v.FArg, sc)
	case *ast.EComma:
		m.checkExpr(v.Left, sc)
		m.nowsBefore(tokOf(v.TComma), sc, msgNoWsComma)
		m.brkspaceAfter(tokOf(v.TComma), sc, msgSpaceComma)
		m.checkExpr(v.Right, sc)
	case *ast.EFuncall:
		m.checkExpr(v.FExpr, sc)
		m.nowsBefore(tokOf(v.TLparen), sc, "Unexpected whitespace before '('.")
		m.nsbrkAfter(tokOf(v.TLparen), sc, msgNoWsLparen)
		for _, arg := range v.Args {
			m.checkExpr(arg.Expr, sc)
			if arg.TComma != nil {
				m.nowsBefore(tokOf(arg.TComma), sc, msgNoWsComma)
				m.brkspaceAfter(tokOf(arg.TComma), sc, msgSpaceComma)
			}
		}
		m.nowsBefore(tokOf(v.TRparen), sc, msgNoWsRparen)
	case *ast.EIndex:
		m.checkExpr(v.BExpr, sc)
		m.nowsBefore(tokOf(v.TLbracket), sc, "Unexpected whitespace before '['.")
		m.nsbrkAfter(tokOf(v.TLbracket), sc, "Unexpected whitespace after '['.")
		m.checkExpr(v.IExpr, sc)
		m.nowsBefore(tokOf(v.TRbracket), sc, "Unexpected whitespace before ']'.")
	case *ast.EDeref:
		m.anyTok(tokOf(v.TAsterisk), sc)
		m.nowsAfter(tokOf(v.TAsterisk), sc, "Unexpected whitespace after '*'.")
		m.checkExpr(v.BExpr, sc)
	case *ast.EAddr:
		m.anyTok(tokOf(v.TAmper), sc)
		m.nowsAfter(tokOf(v.TAmper), sc, "Unexpected whitespace after '&'.")
		m.checkExpr(v.BExpr, sc)
	case *ast.ESizeof:
		m.anyTok(tokOf(v.TSizeof), sc)
		m.nowsBefore(tokOf(v.TLparen), sc, "Unexpected whitespace before '('.")
		m.nsbrkAfter(tokOf(v.TLparen), sc, msgNoWsLparen)
		if v.TName != nil {
			m.checkTypeName(v.TName, sc)
		} else {
			m.checkExpr(v.BExpr, sc)
		}
		m.nowsBefore(tokOf(v.TRparen), sc, msgNoWsRparen)
	case *ast.EMember:
		m.checkExpr(v.BExpr, sc)
		m.nowsBefore(tokOf(v.TPeriod), sc, "Unexpected whitespace before '.'.")
		m.nowsAfter(tokOf(v.TPeriod), sc, "Unexpected whitespace after '.'.")
		m.anyTok(tokOf(v.TMember), sc)
	case *ast.EIndMember:
		m.checkExpr(v.BExpr, sc)
		m.nowsBefore(tokOf(v.TArrow), sc, "Unexpected whitespace before '->'.")
		m.nowsAfter(tokOf(v.TArrow), sc, "Unexpected whitespace after '->'.")
		m.anyTok(tokOf(v.TMember), sc)
	case *ast.EUSign:
		m.anyTok(tokOf(v.TSign), sc)
		m.nowsAfter(tokOf(v.TSign), sc,
			fmt.Sprintf("Unexpected whitespace after '%s'.", v.TSign.Text))
		m.checkExpr(v.BExpr, sc)
	case *ast.ELNot:
		m.anyTok(tokOf(v.TLnot), sc)
		m.nowsAfter(tokOf(v.TLnot), sc, "Unexpected whitespace after '!'.")
		m.checkExpr(v.BExpr, sc)
	case *ast.EBNot:
		m.anyTok(tokOf(v.TBnot), sc)
		m.nowsAfter(tokOf(v.TBnot), sc, "Unexpected whitespace after '~'.")
		m.checkExpr(v.BExpr, sc)
	case *ast.EPreAdj:
		m.anyTok(tokOf(v.TAdj), sc)
		m.nowsAfter(tokOf(v.TAdj), sc,
			fmt.Sprintf("Unexpected whitespace after '%s'.", v.TAdj.Text))
		m.checkExpr(v.BExpr, sc)
	case *ast.EPostAdj:
		m.checkExpr(v.BExpr, sc)
		m.nowsBefore(tokOf(v.TAdj), sc,
			fmt.Sprintf("Unexpected whitespace before '%s'.", v.TAdj.Text))
	}
}
