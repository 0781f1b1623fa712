package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a compact textual dump of the tree, one top-level
// declaration per line. The dump names each node kind and includes the
// text of identifier and literal tokens, so two structurally equal
// trees produce identical dumps.
func Fprint(w io.Writer, n Node) error {
	if mod, ok := n.(*Module); ok {
		for _, d := range mod.Decls {
			if err := Fprint(w, d); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		return nil
	}

	var b strings.Builder
	dumpNode(&b, n)
	_, err := io.WriteString(w, b.String())
	return err
}

// Sdump returns the dump of a tree as a string.
func Sdump(n Node) string {
	var b strings.Builder
	if err := Fprint(&b, n); err != nil {
		return ""
	}
	return b.String()
}

func dumpTok(b *strings.Builder, t *Tok) {
	if t == nil {
		b.WriteString("-")
		return
	}
	b.WriteString(t.Text)
}

// isNilNode also catches a typed nil pointer wrapped in a Node value.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *DSpecs:
		return v == nil
	case *DList:
		return v == nil
	case *Block:
		return v == nil
	case *SQList:
		return v == nil
	case *TypeName:
		return v == nil
	}
	return false
}

func dumpChildren(b *strings.Builder, nodes ...Node) {
	first := true
	for _, n := range nodes {
		if isNilNode(n) {
			continue
		}
		if !first {
			b.WriteString(" ")
		}
		first = false
		dumpNode(b, n)
	}
}

func dumpNode(b *strings.Builder, n Node) {
	if isNilNode(n) {
		b.WriteString("-")
		return
	}

	switch v := n.(type) {
	case *GDecln:
		b.WriteString("gdecln(")
		dumpChildren(b, v.DSpecs, v.DList, v.Body)
		b.WriteString(")")
	case *Block:
		b.WriteString("block(")
		dumpChildren(b, v.Stmts...)
		b.WriteString(")")
	case *DSpecs:
		b.WriteString("dspecs(")
		dumpChildren(b, v.Specs...)
		b.WriteString(")")
	case *SQList:
		b.WriteString("sqlist(")
		dumpChildren(b, v.Elems...)
		b.WriteString(")")
	case *SClass:
		b.WriteString("sclass(")
		dumpTok(b, v.TSclass)
		b.WriteString(")")
	case *TQual:
		b.WriteString("tqual(")
		dumpTok(b, v.TQual)
		b.WriteString(")")
	case *FSpec:
		b.WriteString("fspec(")
		dumpTok(b, v.TFspec)
		b.WriteString(")")
	case *TSBasic:
		b.WriteString("tsbasic(")
		dumpTok(b, v.TBasic)
		b.WriteString(")")
	case *TSIdent:
		b.WriteString("tsident(")
		dumpTok(b, v.TIdent)
		b.WriteString(")")
	case *TSRecord:
		if v.RType == Struct {
			b.WriteString("tsrecord(struct ")
		} else {
			b.WriteString("tsrecord(union ")
		}
		dumpTok(b, v.TIdent)
		for _, e := range v.Elems {
			b.WriteString(" elem(")
			dumpChildren(b, e.SQList, e.DList)
			b.WriteString(")")
		}
		b.WriteString(")")
	case *TSEnum:
		b.WriteString("tsenum(")
		dumpTok(b, v.TIdent)
		for _, e := range v.Elems {
			b.WriteString(" elem(")
			dumpTok(b, e.TIdent)
			if e.Init != nil {
				b.WriteString(" = ")
				dumpNode(b, e.Init)
			}
			b.WriteString(")")
		}
		b.WriteString(")")
	case *DIdent:
		b.WriteString("dident(")
		dumpTok(b, v.TIdent)
		b.WriteString(")")
	case *DNoident:
		b.WriteString("dnoident")
	case *DParen:
		b.WriteString("dparen(")
		dumpNode(b, v.BDecl)
		b.WriteString(")")
	case *DPtr:
		b.WriteString("dptr(")
		dumpNode(b, v.BDecl)
		b.WriteString(")")
	case *DFun:
		b.WriteString("dfun(")
		dumpNode(b, v.BDecl)
		for _, a := range v.Args {
			b.WriteString(" arg(")
			dumpChildren(b, a.DSpecs, a.Decl)
			b.WriteString(")")
		}
		b.WriteString(")")
	case *DArray:
		b.WriteString("darray(")
		dumpNode(b, v.BDecl)
		if v.TSize != nil {
			b.WriteString(" ")
			dumpTok(b, v.TSize)
		}
		b.WriteString(")")
	case *DList:
		b.WriteString("dlist(")
		first := true
		for _, e := range v.Entries {
			if !first {
				b.WriteString(" ")
			}
			first = false
			dumpNode(b, e.Decl)
			if e.Init != nil {
				b.WriteString(" = ")
				dumpNode(b, e.Init)
			}
		}
		b.WriteString(")")
	case *TypeName:
		b.WriteString("typename(")
		dumpChildren(b, v.SQList, v.Decl)
		b.WriteString(")")

	case *Break:
		b.WriteString("break")
	case *Continue:
		b.WriteString("continue")
	case *Goto:
		b.WriteString("goto(")
		dumpTok(b, v.TIdent)
		b.WriteString(")")
	case *Return:
		b.WriteString("return(")
		dumpNode(b, v.Arg)
		b.WriteString(")")
	case *If:
		b.WriteString("if(")
		dumpChildren(b, v.Cond, v.TBody, v.EBody)
		b.WriteString(")")
	case *While:
		b.WriteString("while(")
		dumpChildren(b, v.Cond, v.Body)
		b.WriteString(")")
	case *Do:
		b.WriteString("do(")
		dumpChildren(b, v.Body, v.Cond)
		b.WriteString(")")
	case *For:
		b.WriteString("for(")
		dumpNode(b, v.Init)
		b.WriteString(" ")
		dumpNode(b, v.Cond)
		b.WriteString(" ")
		dumpNode(b, v.Next)
		b.WriteString(" ")
		dumpNode(b, v.Body)
		b.WriteString(")")
	case *Switch:
		b.WriteString("switch(")
		dumpChildren(b, v.Cond, v.Body)
		b.WriteString(")")
	case *CLabel:
		b.WriteString("clabel(")
		dumpNode(b, v.CExpr)
		b.WriteString(")")
	case *GLabel:
		b.WriteString("glabel(")
		dumpTok(b, v.TLabel)
		b.WriteString(")")
	case *StExpr:
		b.WriteString("stexpr(")
		dumpNode(b, v.Expr)
		b.WriteString(")")
	case *StDecln:
		b.WriteString("stdecln(")
		dumpChildren(b, v.DSpecs, v.DList)
		b.WriteString(")")

	case *EInt:
		b.WriteString("eint(")
		dumpTok(b, v.TLit)
		b.WriteString(")")
	case *EChar:
		b.WriteString("echar(")
		dumpTok(b, v.TLit)
		b.WriteString(")")
	case *EString:
		b.WriteString("estring(")
		for i, p := range v.Parts {
			if i > 0 {
				b.WriteString(" ")
			}
			dumpTok(b, p)
		}
		b.WriteString(")")
	case *EIdent:
		b.WriteString("eident(")
		dumpTok(b, v.TIdent)
		b.WriteString(")")
	case *EParen:
		b.WriteString("eparen(")
		dumpNode(b, v.BExpr)
		b.WriteString(")")
	case *EBinop:
		fmt.Fprintf(b, "ebinop(%s ", v.TOp.Text)
		dumpNode(b, v.Left)
		b.WriteString(" ")
		dumpNode(b, v.Right)
		b.WriteString(")")
	case *ETCond:
		b.WriteString("etcond(")
		dumpChildren(b, v.Cond, v.TArg, v.FArg)
		b.WriteString(")")
	case *EComma:
		b.WriteString("ecomma(")
		dumpChildren(b, v.Left, v.Right)
		b.WriteString(")")
	case *EFuncall:
		b.WriteString("efuncall(")
		dumpNode(b, v.FExpr)
		for _, a := range v.Args {
			b.WriteString(" ")
			dumpNode(b, a.Expr)
		}
		b.WriteString(")")
	case *EIndex:
		b.WriteString("eindex(")
		dumpChildren(b, v.BExpr, v.IExpr)
		b.WriteString(")")
	case *EDeref:
		b.WriteString("ederef(")
		dumpNode(b, v.BExpr)
		b.WriteString(")")
	case *EAddr:
		b.WriteString("eaddr(")
		dumpNode(b, v.BExpr)
		b.WriteString(")")
	case *ESizeof:
		b.WriteString("esizeof(")
		if v.TName != nil {
			dumpNode(b, v.TName)
		} else {
			dumpNode(b, v.BExpr)
		}
		b.WriteString(")")
	case *EMember:
		b.WriteString("emember(")
		dumpNode(b, v.BExpr)
		b.WriteString(" ")
		dumpTok(b, v.TMember)
		b.WriteString(")")
	case *EIndMember:
		b.WriteString("eindmember(")
		dumpNode(b, v.BExpr)
		b.WriteString(" ")
		dumpTok(b, v.TMember)
		b.WriteString(")")
	case *EUSign:
		fmt.Fprintf(b, "eusign(%s ", v.TSign.Text)
		dumpNode(b, v.BExpr)
		b.WriteString(")")
	case *ELNot:
		b.WriteString("elnot(")
		dumpNode(b, v.BExpr)
		b.WriteString(")")
	case *EBNot:
		b.WriteString("ebnot(")
		dumpNode(b, v.BExpr)
		b.WriteString(")")
	case *EPreAdj:
		fmt.Fprintf(b, "epreadj(%s ", v.TAdj.Text)
		dumpNode(b, v.BExpr)
		b.WriteString(")")
	case *EPostAdj:
		fmt.Fprintf(b, "epostadj(%s ", v.TAdj.Text)
		dumpNode(b, v.BExpr)
		b.WriteString(")")
	default:
		fmt.Fprintf(b, "?(%d)", n.Type())
	}
}
