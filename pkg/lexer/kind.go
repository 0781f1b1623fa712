package lexer

// Kind identifies the lexical class of a token. Every byte of input
// belongs to exactly one token of some kind, including whitespace,
// comments and preprocessor lines.
type Kind int

const (
	Invalid Kind = iota
	EOF

	// Whitespace. Space and Tab tokens are a single byte each so that
	// the checker can count them; Newline is "\n" or "\r\n".
	Space
	Tab
	Newline

	Comment   // block or line comment
	DSComment // documentation comment ("/**")
	Preproc   // preprocessor line, continuations included

	Ident
	Number
	StrLit
	CharLit

	// Keywords
	KwAuto
	KwBreak
	KwCase
	KwChar
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInline
	KwInt
	KwLong
	KwRegister
	KwRestrict
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTypedef
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile

	// Punctuators
	Lparen
	Rparen
	Lbrace
	Rbrace
	Lbracket
	Rbracket
	Comma
	Scolon
	Colon
	Qmark
	Period
	Arrow
	Ellipsis
	Plus
	Minus
	Asterisk
	Slash
	Percent
	Inc
	Dec
	Shl
	Shr
	Less
	Greater
	LessEq
	GreaterEq
	EqEq
	NotEq
	Amper
	Bor
	Bxor
	Bnot
	Lnot
	Land
	Lor
	Assign
	PlusAssign
	MinusAssign
	MulAssign
	DivAssign
	ModAssign
	ShlAssign
	ShrAssign
	BandAssign
	BorAssign
	BxorAssign
	Hash
	HashHash
)

var kindNames = map[Kind]string{
	Invalid:   "invalid",
	EOF:       "eof",
	Space:     "space",
	Tab:       "tab",
	Newline:   "newline",
	Comment:   "comment",
	DSComment: "dscomment",
	Preproc:   "preproc",
	Ident:     "ident",
	Number:    "number",
	StrLit:    "strlit",
	CharLit:   "charlit",

	KwAuto:     "auto",
	KwBreak:    "break",
	KwCase:     "case",
	KwChar:     "char",
	KwConst:    "const",
	KwContinue: "continue",
	KwDefault:  "default",
	KwDo:       "do",
	KwDouble:   "double",
	KwElse:     "else",
	KwEnum:     "enum",
	KwExtern:   "extern",
	KwFloat:    "float",
	KwFor:      "for",
	KwGoto:     "goto",
	KwIf:       "if",
	KwInline:   "inline",
	KwInt:      "int",
	KwLong:     "long",
	KwRegister: "register",
	KwRestrict: "restrict",
	KwReturn:   "return",
	KwShort:    "short",
	KwSigned:   "signed",
	KwSizeof:   "sizeof",
	KwStatic:   "static",
	KwStruct:   "struct",
	KwSwitch:   "switch",
	KwTypedef:  "typedef",
	KwUnion:    "union",
	KwUnsigned: "unsigned",
	KwVoid:     "void",
	KwVolatile: "volatile",
	KwWhile:    "while",

	Lparen:      "(",
	Rparen:      ")",
	Lbrace:      "{",
	Rbrace:      "}",
	Lbracket:    "[",
	Rbracket:    "]",
	Comma:       ",",
	Scolon:      ";",
	Colon:       ":",
	Qmark:       "?",
	Period:      ".",
	Arrow:       "->",
	Ellipsis:    "...",
	Plus:        "+",
	Minus:       "-",
	Asterisk:    "*",
	Slash:       "/",
	Percent:     "%",
	Inc:         "++",
	Dec:         "--",
	Shl:         "<<",
	Shr:         ">>",
	Less:        "<",
	Greater:     ">",
	LessEq:      "<=",
	GreaterEq:   ">=",
	EqEq:        "==",
	NotEq:       "!=",
	Amper:       "&",
	Bor:         "|",
	Bxor:        "^",
	Bnot:        "~",
	Lnot:        "!",
	Land:        "&&",
	Lor:         "||",
	Assign:      "=",
	PlusAssign:  "+=",
	MinusAssign: "-=",
	MulAssign:   "*=",
	DivAssign:   "/=",
	ModAssign:   "%=",
	ShlAssign:   "<<=",
	ShrAssign:   ">>=",
	BandAssign:  "&=",
	BorAssign:   "|=",
	BxorAssign:  "^=",
	Hash:        "#",
	HashHash:    "##",
}

// String returns the canonical name of the kind: whitespace and literal
// classes by name, keywords and punctuators by their spelling.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// keywords maps identifier spellings to keyword kinds.
var keywords = map[string]Kind{
	"auto":     KwAuto,
	"break":    KwBreak,
	"case":     KwCase,
	"char":     KwChar,
	"const":    KwConst,
	"continue": KwContinue,
	"default":  KwDefault,
	"do":       KwDo,
	"double":   KwDouble,
	"else":     KwElse,
	"enum":     KwEnum,
	"extern":   KwExtern,
	"float":    KwFloat,
	"for":      KwFor,
	"goto":     KwGoto,
	"if":       KwIf,
	"inline":   KwInline,
	"int":      KwInt,
	"long":     KwLong,
	"register": KwRegister,
	"restrict": KwRestrict,
	"return":   KwReturn,
	"short":    KwShort,
	"signed":   KwSigned,
	"sizeof":   KwSizeof,
	"static":   KwStatic,
	"struct":   KwStruct,
	"switch":   KwSwitch,
	"typedef":  KwTypedef,
	"union":    KwUnion,
	"unsigned": KwUnsigned,
	"void":     KwVoid,
	"volatile": KwVolatile,
	"while":    KwWhile,
}

// IsWspace reports whether the kind is a whitespace token kind.
func (k Kind) IsWspace() bool {
	return k == Space || k == Tab || k == Newline
}

// IsComment reports whether the kind is a comment of either flavor.
func (k Kind) IsComment() bool {
	return k == Comment || k == DSComment
}

// IsKeyword reports whether the kind is a C keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwAuto && k <= KwWhile
}

// IsSClass reports whether the kind is a storage-class specifier keyword.
func (k Kind) IsSClass() bool {
	switch k {
	case KwTypedef, KwExtern, KwStatic, KwAuto, KwRegister:
		return true
	}
	return false
}

// IsTSpec reports whether the kind is a basic type-specifier keyword or
// begins a struct/union/enum specifier.
func (k Kind) IsTSpec() bool {
	switch k {
	case KwVoid, KwChar, KwShort, KwInt, KwLong, KwSigned, KwUnsigned,
		KwFloat, KwDouble, KwStruct, KwUnion, KwEnum:
		return true
	}
	return false
}

// IsTQual reports whether the kind is a type-qualifier keyword.
func (k Kind) IsTQual() bool {
	switch k {
	case KwConst, KwRestrict, KwVolatile:
		return true
	}
	return false
}

// IsFSpec reports whether the kind is a function-specifier keyword.
func (k Kind) IsFSpec() bool {
	return k == KwInline
}

// IsDSpec reports whether the kind can begin a declaration-specifier
// sequence.
func (k Kind) IsDSpec() bool {
	return k.IsSClass() || k.IsTSpec() || k.IsTQual() || k.IsFSpec()
}
