package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccheck-dev/ccheck/pkg/srcpos"
)

func tok(text string, line, col int) *Tok {
	return &Tok{Pos: srcpos.New("t.c", line, col), Text: text}
}

// intDecl builds the tree for "int x = 1;".
func intDecl() *GDecln {
	return &GDecln{
		DSpecs: &DSpecs{Specs: []Node{
			&TSBasic{TBasic: tok("int", 1, 1)},
		}},
		DList: &DList{Entries: []*DListEntry{
			{
				Decl:    &DIdent{TIdent: tok("x", 1, 5)},
				TAssign: tok("=", 1, 7),
				Init:    &EInt{TLit: tok("1", 1, 9)},
			},
		}},
		TScolon: tok(";", 1, 10),
	}
}

func TestFirstLastTok(t *testing.T) {
	d := intDecl()

	assert.Equal(t, "int", d.FirstTok().Text)
	assert.Equal(t, ";", d.LastTok().Text)
	assert.Equal(t, "x", d.DList.FirstTok().Text)
	assert.Equal(t, "1", d.DList.LastTok().Text)
}

func TestFirstTokNilSlots(t *testing.T) {
	// An abstract declarator has no tokens at all.
	var noident Node = &DNoident{}
	assert.Nil(t, noident.FirstTok())
	assert.Nil(t, noident.LastTok())

	// A pointer to an abstract declarator starts and ends at '*'.
	ptr := &DPtr{TAsterisk: tok("*", 1, 1), BDecl: &DNoident{}}
	assert.Equal(t, "*", ptr.FirstTok().Text)
	assert.Equal(t, "*", ptr.LastTok().Text)
}

func TestNilListAccessors(t *testing.T) {
	var ds *DSpecs
	assert.Nil(t, ds.FirstTok())

	var dl *DList
	assert.Nil(t, dl.LastTok())

	var blk *Block
	assert.Nil(t, blk.FirstTok())
}

func TestBlockTokens(t *testing.T) {
	blk := &Block{
		Braces:  true,
		TLbrace: tok("{", 1, 1),
		TRbrace: tok("}", 3, 1),
		Stmts: []Node{
			&Return{TReturn: tok("return", 2, 2), TScolon: tok(";", 2, 8)},
		},
	}

	assert.Equal(t, "{", blk.FirstTok().Text)
	assert.Equal(t, "}", blk.LastTok().Text)

	noBraces := &Block{Stmts: blk.Stmts}
	assert.Equal(t, "return", noBraces.FirstTok().Text)
	assert.Equal(t, ";", noBraces.LastTok().Text)
}

func TestSdump(t *testing.T) {
	mod := &Module{Decls: []Node{intDecl()}}
	assert.Equal(t,
		"gdecln(dspecs(tsbasic(int)) dlist(dident(x) = eint(1)))\n",
		Sdump(mod))
}

func TestSdumpStmts(t *testing.T) {
	ret := &Return{
		TReturn: tok("return", 1, 1),
		Arg:     &EInt{TLit: tok("0", 1, 8)},
		TScolon: tok(";", 1, 9),
	}
	blk := &Block{Braces: true, TLbrace: tok("{", 1, 1),
		TRbrace: tok("}", 1, 12), Stmts: []Node{ret}}

	var b Node = blk
	assert.Equal(t, "block(return(eint(0)))", Sdump(b))
}
