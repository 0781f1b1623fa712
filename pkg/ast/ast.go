// Package ast defines the abstract syntax tree for the supported C99
// subset. Every grammatical token consumed by the parser is recorded in
// a named slot on the node it belongs to; a nil slot means the grammar
// branch did not consume that token. The Data field of a slot is a
// back-reference handle owned by the consumer (the checker stores its
// stream token there).
package ast

import "github.com/ccheck-dev/ccheck/pkg/srcpos"

// Tok is an AST token slot: the position and text of the lexer token
// plus the consumer's back-reference handle.
type Tok struct {
	Pos  srcpos.Pos
	Text string
	Data any
}

// NodeType discriminates the concrete node behind a Node.
type NodeType int

const (
	NTModule NodeType = iota
	NTGDecln
	NTBlock
	NTDSpecs
	NTSQList
	NTSClass
	NTTQual
	NTFSpec
	NTTSBasic
	NTTSIdent
	NTTSRecord
	NTTSEnum
	NTDIdent
	NTDNoident
	NTDParen
	NTDPtr
	NTDFun
	NTDArray
	NTDList
	NTTypeName

	NTBreak
	NTContinue
	NTGoto
	NTReturn
	NTIf
	NTWhile
	NTDo
	NTFor
	NTSwitch
	NTCLabel
	NTGLabel
	NTStExpr
	NTStDecln

	NTEInt
	NTEChar
	NTEString
	NTEIdent
	NTEParen
	NTEBinop
	NTETCond
	NTEComma
	NTEFuncall
	NTEIndex
	NTEDeref
	NTEAddr
	NTESizeof
	NTEMember
	NTEIndMember
	NTEUSign
	NTELNot
	NTEBNot
	NTEPreAdj
	NTEPostAdj
)

// Node is implemented by every AST node. FirstTok and LastTok return
// the extreme token slots of the subtree, or nil when the subtree
// contains no tokens (abstract declarators).
type Node interface {
	Type() NodeType
	FirstTok() *Tok
	LastTok() *Tok
}

// firstOf returns the first non-nil token of the arguments.
func firstOf(toks ...*Tok) *Tok {
	for _, t := range toks {
		if t != nil {
			return t
		}
	}
	return nil
}

// nodeFirst returns the first token of the first node yielding one.
func nodeFirst(nodes ...Node) *Tok {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if t := n.FirstTok(); t != nil {
			return t
		}
	}
	return nil
}

// nodeLast returns the last token of the last node yielding one.
func nodeLast(nodes ...Node) *Tok {
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] == nil {
			continue
		}
		if t := nodes[i].LastTok(); t != nil {
			return t
		}
	}
	return nil
}

// Module is the root node: an ordered sequence of global declarations.
type Module struct {
	Decls []Node
}

func (m *Module) Type() NodeType { return NTModule }

func (m *Module) FirstTok() *Tok { return nodeFirst(m.Decls...) }

func (m *Module) LastTok() *Tok { return nodeLast(m.Decls...) }

// GDecln is a global declaration or function definition: declaration
// specifiers, a declarator list, and either a terminating ';' or a
// function body.
type GDecln struct {
	DSpecs  *DSpecs
	DList   *DList
	Body    *Block
	TScolon *Tok
}

func (g *GDecln) Type() NodeType { return NTGDecln }

func (g *GDecln) FirstTok() *Tok { return nodeFirst(g.DSpecs, g.DList) }

func (g *GDecln) LastTok() *Tok {
	if g.TScolon != nil {
		return g.TScolon
	}
	return nodeLast(g.DSpecs, g.DList, g.Body)
}

// Block is a sequence of statements, braced or not.
type Block struct {
	Braces  bool
	TLbrace *Tok
	TRbrace *Tok
	Stmts   []Node
}

func (b *Block) Type() NodeType { return NTBlock }

func (b *Block) FirstTok() *Tok {
	if b == nil {
		return nil
	}
	if b.TLbrace != nil {
		return b.TLbrace
	}
	return nodeFirst(b.Stmts...)
}

func (b *Block) LastTok() *Tok {
	if b == nil {
		return nil
	}
	if b.TRbrace != nil {
		return b.TRbrace
	}
	return nodeLast(b.Stmts...)
}

// DSpecs is a declaration-specifier sequence. Order among storage
// classes, type specifiers, qualifiers and function specifiers is not
// enforced.
type DSpecs struct {
	Specs []Node
}

func (d *DSpecs) Type() NodeType { return NTDSpecs }

func (d *DSpecs) FirstTok() *Tok {
	if d == nil {
		return nil
	}
	return nodeFirst(d.Specs...)
}

func (d *DSpecs) LastTok() *Tok {
	if d == nil {
		return nil
	}
	return nodeLast(d.Specs...)
}

// SQList is a specifier-qualifier list (record members, type names).
type SQList struct {
	Elems []Node
}

func (s *SQList) Type() NodeType { return NTSQList }

func (s *SQList) FirstTok() *Tok {
	if s == nil {
		return nil
	}
	return nodeFirst(s.Elems...)
}

func (s *SQList) LastTok() *Tok {
	if s == nil {
		return nil
	}
	return nodeLast(s.Elems...)
}

// SClass wraps one storage-class specifier token.
type SClass struct {
	TSclass *Tok
}

func (s *SClass) Type() NodeType { return NTSClass }
func (s *SClass) FirstTok() *Tok { return s.TSclass }
func (s *SClass) LastTok() *Tok  { return s.TSclass }

// TQual wraps one type-qualifier token.
type TQual struct {
	TQual *Tok
}

func (t *TQual) Type() NodeType { return NTTQual }
func (t *TQual) FirstTok() *Tok { return t.TQual }
func (t *TQual) LastTok() *Tok  { return t.TQual }

// FSpec wraps one function-specifier token.
type FSpec struct {
	TFspec *Tok
}

func (f *FSpec) Type() NodeType { return NTFSpec }
func (f *FSpec) FirstTok() *Tok { return f.TFspec }
func (f *FSpec) LastTok() *Tok  { return f.TFspec }

// TSBasic wraps one basic type-specifier keyword token.
type TSBasic struct {
	TBasic *Tok
}

func (t *TSBasic) Type() NodeType { return NTTSBasic }
func (t *TSBasic) FirstTok() *Tok { return t.TBasic }
func (t *TSBasic) LastTok() *Tok  { return t.TBasic }

// TSIdent is a type specifier naming a (typedef) identifier.
type TSIdent struct {
	TIdent *Tok
}

func (t *TSIdent) Type() NodeType { return NTTSIdent }
func (t *TSIdent) FirstTok() *Tok { return t.TIdent }
func (t *TSIdent) LastTok() *Tok  { return t.TIdent }

// RecordType distinguishes struct from union specifiers.
type RecordType int

const (
	Struct RecordType = iota
	Union
)

// RecordElem is one member declaration of a record definition.
type RecordElem struct {
	SQList  *SQList
	DList   *DList
	TScolon *Tok
}

// TSRecord is a struct or union specifier, optionally with a tag and
// optionally with a member definition.
type TSRecord struct {
	RType   RecordType
	TSU     *Tok // 'struct' or 'union'
	TIdent  *Tok
	HaveDef bool
	TLbrace *Tok
	Elems   []*RecordElem
	TRbrace *Tok
}

func (t *TSRecord) Type() NodeType { return NTTSRecord }
func (t *TSRecord) FirstTok() *Tok { return t.TSU }

func (t *TSRecord) LastTok() *Tok {
	if t.HaveDef {
		return t.TRbrace
	}
	return firstOf(t.TIdent, t.TSU)
}

// EnumElem is one enumerator: a name, an optional initializer and an
// optional trailing comma (absent on the last enumerator).
type EnumElem struct {
	TIdent  *Tok
	TEquals *Tok
	Init    Node
	TComma  *Tok
}

// TSEnum is an enum specifier, optionally with a tag and definition.
type TSEnum struct {
	TEnum   *Tok
	TIdent  *Tok
	HaveDef bool
	TLbrace *Tok
	Elems   []*EnumElem
	TRbrace *Tok
}

func (t *TSEnum) Type() NodeType { return NTTSEnum }
func (t *TSEnum) FirstTok() *Tok { return t.TEnum }

func (t *TSEnum) LastTok() *Tok {
	if t.HaveDef {
		return t.TRbrace
	}
	return firstOf(t.TIdent, t.TEnum)
}

// DIdent is a declarator naming an identifier.
type DIdent struct {
	TIdent *Tok
}

func (d *DIdent) Type() NodeType { return NTDIdent }
func (d *DIdent) FirstTok() *Tok { return d.TIdent }
func (d *DIdent) LastTok() *Tok  { return d.TIdent }

// DNoident is the abstract declarator: no tokens at all.
type DNoident struct{}

func (d *DNoident) Type() NodeType { return NTDNoident }
func (d *DNoident) FirstTok() *Tok { return nil }
func (d *DNoident) LastTok() *Tok  { return nil }

// DParen is a parenthesized declarator.
type DParen struct {
	TLparen *Tok
	BDecl   Node
	TRparen *Tok
}

func (d *DParen) Type() NodeType { return NTDParen }
func (d *DParen) FirstTok() *Tok { return d.TLparen }
func (d *DParen) LastTok() *Tok  { return d.TRparen }

// DPtr is a pointer declarator: '*', optional qualifiers, base
// declarator.
type DPtr struct {
	TAsterisk *Tok
	TQuals    []*TQual
	BDecl     Node
}

func (d *DPtr) Type() NodeType { return NTDPtr }
func (d *DPtr) FirstTok() *Tok { return d.TAsterisk }

func (d *DPtr) LastTok() *Tok {
	if t := nodeLast(d.BDecl); t != nil {
		return t
	}
	if len(d.TQuals) > 0 {
		return d.TQuals[len(d.TQuals)-1].TQual
	}
	return d.TAsterisk
}

// DFunArg is one parameter of a function declarator, with the trailing
// comma (absent on the last parameter).
type DFunArg struct {
	DSpecs *DSpecs
	Decl   Node
	TComma *Tok
}

// DFun is a function declarator.
type DFun struct {
	BDecl   Node
	TLparen *Tok
	Args    []*DFunArg
	TRparen *Tok
}

func (d *DFun) Type() NodeType { return NTDFun }

func (d *DFun) FirstTok() *Tok {
	if t := nodeFirst(d.BDecl); t != nil {
		return t
	}
	return d.TLparen
}

func (d *DFun) LastTok() *Tok { return d.TRparen }

// DArray is an array declarator with an optional size token.
type DArray struct {
	BDecl     Node
	TLbracket *Tok
	TSize     *Tok
	TRbracket *Tok
}

func (d *DArray) Type() NodeType { return NTDArray }

func (d *DArray) FirstTok() *Tok {
	if t := nodeFirst(d.BDecl); t != nil {
		return t
	}
	return d.TLbracket
}

func (d *DArray) LastTok() *Tok { return d.TRbracket }

// DListEntry is one declarator of a declarator list: the comma
// separating it from the previous entry (nil on the first), the
// declarator, and an optional initializer.
type DListEntry struct {
	TComma  *Tok
	Decl    Node
	TAssign *Tok
	Init    Node
}

// DList is a comma-separated declarator list.
type DList struct {
	Entries []*DListEntry
}

func (d *DList) Type() NodeType { return NTDList }

func (d *DList) FirstTok() *Tok {
	if d == nil {
		return nil
	}
	for _, e := range d.Entries {
		if e.TComma != nil {
			return e.TComma
		}
		if t := nodeFirst(e.Decl); t != nil {
			return t
		}
	}
	return nil
}

func (d *DList) LastTok() *Tok {
	if d == nil {
		return nil
	}
	for i := len(d.Entries) - 1; i >= 0; i-- {
		e := d.Entries[i]
		if t := nodeLast(e.Init); t != nil {
			return t
		}
		if e.TAssign != nil {
			return e.TAssign
		}
		if t := nodeLast(e.Decl); t != nil {
			return t
		}
		if e.TComma != nil {
			return e.TComma
		}
	}
	return nil
}

// TypeName is a type name as used inside sizeof: a specifier-qualifier
// list followed by an abstract declarator.
type TypeName struct {
	SQList *SQList
	Decl   Node
}

func (t *TypeName) Type() NodeType { return NTTypeName }

func (t *TypeName) FirstTok() *Tok {
	if t == nil {
		return nil
	}
	return nodeFirst(t.SQList, t.Decl)
}

func (t *TypeName) LastTok() *Tok {
	if t == nil {
		return nil
	}
	return nodeLast(t.SQList, t.Decl)
}
