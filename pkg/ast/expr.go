package ast

// EInt is an integer constant.
type EInt struct {
	TLit *Tok
}

func (e *EInt) Type() NodeType { return NTEInt }
func (e *EInt) FirstTok() *Tok { return e.TLit }
func (e *EInt) LastTok() *Tok  { return e.TLit }

// EChar is a character constant.
type EChar struct {
	TLit *Tok
}

func (e *EChar) Type() NodeType { return NTEChar }
func (e *EChar) FirstTok() *Tok { return e.TLit }
func (e *EChar) LastTok() *Tok  { return e.TLit }

// EString is a string literal, possibly composed of several adjacent
// parts ("a" "b").
type EString struct {
	Parts []*Tok
}

func (e *EString) Type() NodeType { return NTEString }
func (e *EString) FirstTok() *Tok { return e.Parts[0] }
func (e *EString) LastTok() *Tok  { return e.Parts[len(e.Parts)-1] }

// EIdent is an identifier expression.
type EIdent struct {
	TIdent *Tok
}

func (e *EIdent) Type() NodeType { return NTEIdent }
func (e *EIdent) FirstTok() *Tok { return e.TIdent }
func (e *EIdent) LastTok() *Tok  { return e.TIdent }

// EParen is a parenthesized expression.
type EParen struct {
	TLparen *Tok
	BExpr   Node
	TRparen *Tok
}

func (e *EParen) Type() NodeType { return NTEParen }
func (e *EParen) FirstTok() *Tok { return e.TLparen }
func (e *EParen) LastTok() *Tok  { return e.TRparen }

// EBinop is a binary operator expression; the operator token itself is
// stored, assignment operators included.
type EBinop struct {
	Left  Node
	TOp   *Tok
	Right Node
}

func (e *EBinop) Type() NodeType { return NTEBinop }
func (e *EBinop) FirstTok() *Tok { return nodeFirst(e.Left) }
func (e *EBinop) LastTok() *Tok  { return nodeLast(e.Right) }

// ETCond is the ternary conditional operator.
type ETCond struct {
	Cond   Node
	TQmark *Tok
	TArg   Node
	TColon *Tok
	FArg   Node
}

func (e *ETCond) Type() NodeType { return NTETCond }
func (e *ETCond) FirstTok() *Tok { return nodeFirst(e.Cond) }
func (e *ETCond) LastTok() *Tok  { return nodeLast(e.FArg) }

// EComma is the comma operator.
type EComma struct {
	Left   Node
	TComma *Tok
	Right  Node
}

func (e *EComma) Type() NodeType { return NTEComma }
func (e *EComma) FirstTok() *Tok { return nodeFirst(e.Left) }
func (e *EComma) LastTok() *Tok  { return nodeLast(e.Right) }

// ECallArg is one argument of a function call with its trailing comma
// (absent on the last argument).
type ECallArg struct {
	Expr   Node
	TComma *Tok
}

// EFuncall is a function call.
type EFuncall struct {
	FExpr   Node
	TLparen *Tok
	Args    []*ECallArg
	TRparen *Tok
}

func (e *EFuncall) Type() NodeType { return NTEFuncall }
func (e *EFuncall) FirstTok() *Tok { return nodeFirst(e.FExpr) }
func (e *EFuncall) LastTok() *Tok  { return e.TRparen }

// EIndex is an array subscript expression.
type EIndex struct {
	BExpr     Node
	TLbracket *Tok
	IExpr     Node
	TRbracket *Tok
}

func (e *EIndex) Type() NodeType { return NTEIndex }
func (e *EIndex) FirstTok() *Tok { return nodeFirst(e.BExpr) }
func (e *EIndex) LastTok() *Tok  { return e.TRbracket }

// EDeref is a pointer dereference.
type EDeref struct {
	TAsterisk *Tok
	BExpr     Node
}

func (e *EDeref) Type() NodeType { return NTEDeref }
func (e *EDeref) FirstTok() *Tok { return e.TAsterisk }
func (e *EDeref) LastTok() *Tok  { return nodeLast(e.BExpr) }

// EAddr is an address-of expression.
type EAddr struct {
	TAmper *Tok
	BExpr  Node
}

func (e *EAddr) Type() NodeType { return NTEAddr }
func (e *EAddr) FirstTok() *Tok { return e.TAmper }
func (e *EAddr) LastTok() *Tok  { return nodeLast(e.BExpr) }

// ESizeof is a sizeof expression over either a parenthesized expression
// or a type name; exactly one of BExpr and TName is set.
type ESizeof struct {
	TSizeof *Tok
	TLparen *Tok
	BExpr   Node
	TName   *TypeName
	TRparen *Tok
}

func (e *ESizeof) Type() NodeType { return NTESizeof }
func (e *ESizeof) FirstTok() *Tok { return e.TSizeof }
func (e *ESizeof) LastTok() *Tok  { return e.TRparen }

// EMember is direct member access ('.').
type EMember struct {
	BExpr   Node
	TPeriod *Tok
	TMember *Tok
}

func (e *EMember) Type() NodeType { return NTEMember }
func (e *EMember) FirstTok() *Tok { return nodeFirst(e.BExpr) }
func (e *EMember) LastTok() *Tok  { return e.TMember }

// EIndMember is indirect member access ('->').
type EIndMember struct {
	BExpr   Node
	TArrow  *Tok
	TMember *Tok
}

func (e *EIndMember) Type() NodeType { return NTEIndMember }
func (e *EIndMember) FirstTok() *Tok { return nodeFirst(e.BExpr) }
func (e *EIndMember) LastTok() *Tok  { return e.TMember }

// EUSign is unary plus or minus.
type EUSign struct {
	TSign *Tok
	BExpr Node
}

func (e *EUSign) Type() NodeType { return NTEUSign }
func (e *EUSign) FirstTok() *Tok { return e.TSign }
func (e *EUSign) LastTok() *Tok  { return nodeLast(e.BExpr) }

// ELNot is logical negation.
type ELNot struct {
	TLnot *Tok
	BExpr Node
}

func (e *ELNot) Type() NodeType { return NTELNot }
func (e *ELNot) FirstTok() *Tok { return e.TLnot }
func (e *ELNot) LastTok() *Tok  { return nodeLast(e.BExpr) }

// EBNot is bitwise negation.
type EBNot struct {
	TBnot *Tok
	BExpr Node
}

func (e *EBNot) Type() NodeType { return NTEBNot }
func (e *EBNot) FirstTok() *Tok { return e.TBnot }
func (e *EBNot) LastTok() *Tok  { return nodeLast(e.BExpr) }

// EPreAdj is prefix increment or decrement.
type EPreAdj struct {
	TAdj  *Tok
	BExpr Node
}

func (e *EPreAdj) Type() NodeType { return NTEPreAdj }
func (e *EPreAdj) FirstTok() *Tok { return e.TAdj }
func (e *EPreAdj) LastTok() *Tok  { return nodeLast(e.BExpr) }

// EPostAdj is postfix increment or decrement.
type EPostAdj struct {
	BExpr Node
	TAdj  *Tok
}

func (e *EPostAdj) Type() NodeType { return NTEPostAdj }
func (e *EPostAdj) FirstTok() *Tok { return nodeFirst(e.BExpr) }
func (e *EPostAdj) LastTok() *Tok  { return e.TAdj }
