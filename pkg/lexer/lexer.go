// Package lexer tokenizes C99 source text without losing a single byte.
// Whitespace, comments and preprocessor lines are emitted as tokens just
// like identifiers and punctuators, so concatenating the text of every
// token reproduces the input exactly.
package lexer

import (
	"fmt"
	"strings"

	"github.com/ccheck-dev/ccheck/pkg/input"
	"github.com/ccheck-dev/ccheck/pkg/srcpos"
)

const readChunk = 4096

// Token is one lexeme of the source, carrying its exact text and the
// inclusive positions of its first and last byte. UData is a slot for
// consumers to attach their own per-token state.
type Token struct {
	Kind  Kind
	Text  string
	Bpos  srcpos.Pos
	Epos  srcpos.Pos
	UData any
}

// Lexer produces a lazy sequence of tokens from a byte source. The
// sequence is terminated by exactly one EOF token.
type Lexer struct {
	src  input.Source
	data []byte
	off  int
	eof  bool
	pos  srcpos.Pos
	bol  bool // only whitespace seen since start of line
}

// New creates a lexer over the given source.
func New(src input.Source) *Lexer {
	return &Lexer{
		src: src,
		pos: src.Pos(),
		bol: true,
	}
}

// fill ensures at least n unconsumed bytes are buffered, or the source
// is exhausted.
func (l *Lexer) fill(n int) error {
	for !l.eof && len(l.data)-l.off < n {
		buf := make([]byte, readChunk)
		nread, err := l.src.Read(buf)
		if err != nil {
			return err
		}
		if nread == 0 {
			l.eof = true
			break
		}
		if l.off > 0 {
			l.data = l.data[l.off:]
			l.off = 0
		}
		l.data = append(l.data, buf[:nread]...)
	}
	return nil
}

// peek returns the byte i positions past the next unconsumed byte, or 0
// past end of input.
func (l *Lexer) peek(i int) byte {
	if err := l.fill(i + 1); err != nil {
		return 0
	}
	if l.off+i >= len(l.data) {
		return 0
	}
	return l.data[l.off+i]
}

// emit consumes n buffered bytes as a token of the given kind.
func (l *Lexer) emit(kind Kind, n int) Token {
	tok := Token{Kind: kind, Bpos: l.pos, Epos: l.pos}

	var b strings.Builder
	for i := 0; i < n; i++ {
		c := l.data[l.off]
		tok.Epos = l.pos
		b.WriteByte(c)
		l.off++
		l.pos.Fwd(c)
	}
	tok.Text = b.String()
	return tok
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isNum(c byte) bool   { return c >= '0' && c <= '9' }
func isHex(c byte) bool {
	return isNum(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isIDBegin(c byte) bool { return isAlpha(c) || c == '_' }
func isIDCnt(c byte) bool   { return isAlpha(c) || isNum(c) || c == '_' }

func isIntSuffix(c byte) bool {
	return c == 'u' || c == 'U' || c == 'l' || c == 'L'
}

// Next returns the next token. After the EOF token has been returned,
// further calls keep returning EOF tokens. The only error condition is
// an I/O failure on the underlying source.
func (l *Lexer) Next() (Token, error) {
	if err := l.fill(1); err != nil {
		return Token{}, err
	}
	if l.off >= len(l.data) {
		return l.emit(EOF, 0), nil
	}

	tok := l.scan()

	switch tok.Kind {
	case Newline:
		l.bol = true
	case Space, Tab:
		// beginning-of-line state carries over leading whitespace
	default:
		l.bol = false
	}
	return tok, nil
}

func (l *Lexer) scan() Token {
	c := l.peek(0)

	switch c {
	case ' ':
		return l.emit(Space, 1)
	case '\t':
		return l.emit(Tab, 1)
	case '\n':
		return l.emit(Newline, 1)
	case '\r':
		if l.peek(1) == '\n' {
			return l.emit(Newline, 2)
		}
		return l.emit(Invalid, 1)
	case '#':
		if l.bol {
			return l.scanPreproc()
		}
		if l.peek(1) == '#' {
			return l.emit(HashHash, 2)
		}
		return l.emit(Hash, 1)
	case '/':
		switch l.peek(1) {
		case '/':
			return l.scanLineComment()
		case '*':
			return l.scanBlockComment()
		case '=':
			return l.emit(DivAssign, 2)
		}
		return l.emit(Slash, 1)
	case '\'':
		return l.scanLit(0, '\'', CharLit)
	case '"':
		return l.scanLit(0, '"', StrLit)
	case '(':
		return l.emit(Lparen, 1)
	case ')':
		return l.emit(Rparen, 1)
	case '{':
		return l.emit(Lbrace, 1)
	case '}':
		return l.emit(Rbrace, 1)
	case '[':
		return l.emit(Lbracket, 1)
	case ']':
		return l.emit(Rbracket, 1)
	case ',':
		return l.emit(Comma, 1)
	case ';':
		return l.emit(Scolon, 1)
	case ':':
		return l.emit(Colon, 1)
	case '?':
		return l.emit(Qmark, 1)
	case '~':
		return l.emit(Bnot, 1)
	case '.':
		if l.peek(1) == '.' && l.peek(2) == '.' {
			return l.emit(Ellipsis, 3)
		}
		return l.emit(Period, 1)
	case '-':
		switch l.peek(1) {
		case '-':
			return l.emit(Dec, 2)
		case '=':
			return l.emit(MinusAssign, 2)
		case '>':
			return l.emit(Arrow, 2)
		}
		return l.emit(Minus, 1)
	case '+':
		switch l.peek(1) {
		case '+':
			return l.emit(Inc, 2)
		case '=':
			return l.emit(PlusAssign, 2)
		}
		return l.emit(Plus, 1)
	case '*':
		if l.peek(1) == '=' {
			return l.emit(MulAssign, 2)
		}
		return l.emit(Asterisk, 1)
	case '%':
		if l.peek(1) == '=' {
			return l.emit(ModAssign, 2)
		}
		return l.emit(Percent, 1)
	case '<':
		if l.peek(1) == '<' {
			if l.peek(2) == '=' {
				return l.emit(ShlAssign, 3)
			}
			return l.emit(Shl, 2)
		}
		if l.peek(1) == '=' {
			return l.emit(LessEq, 2)
		}
		return l.emit(Less, 1)
	case '>':
		if l.peek(1) == '>' {
			if l.peek(2) == '=' {
				return l.emit(ShrAssign, 3)
			}
			return l.emit(Shr, 2)
		}
		if l.peek(1) == '=' {
			return l.emit(GreaterEq, 2)
		}
		return l.emit(Greater, 1)
	case '=':
		if l.peek(1) == '=' {
			return l.emit(EqEq, 2)
		}
		return l.emit(Assign, 1)
	case '!':
		if l.peek(1) == '=' {
			return l.emit(NotEq, 2)
		}
		return l.emit(Lnot, 1)
	case '&':
		switch l.peek(1) {
		case '&':
			return l.emit(Land, 2)
		case '=':
			return l.emit(BandAssign, 2)
		}
		return l.emit(Amper, 1)
	case '|':
		switch l.peek(1) {
		case '|':
			return l.emit(Lor, 2)
		case '=':
			return l.emit(BorAssign, 2)
		}
		return l.emit(Bor, 1)
	case '^':
		if l.peek(1) == '=' {
			return l.emit(BxorAssign, 2)
		}
		return l.emit(Bxor, 1)
	case 'L':
		// wide literal prefix
		if l.peek(1) == '"' {
			return l.scanLit(1, '"', StrLit)
		}
		if l.peek(1) == '\'' {
			return l.scanLit(1, '\'', CharLit)
		}
		return l.scanIdent()
	}

	if isIDBegin(c) {
		return l.scanIdent()
	}
	if isNum(c) {
		return l.scanNumber()
	}
	return l.emit(Invalid, 1)
}

// scanPreproc consumes a preprocessor line starting at '#', up to but
// not including the terminating newline. Backslash-newline sequences
// continue the line.
func (l *Lexer) scanPreproc() Token {
	i := 1
	for {
		b := l.peek(i)
		if b == 0 {
			break
		}
		if b == '\n' {
			if l.peek(i-1) == '\\' {
				i++
				continue
			}
			break
		}
		if b == '\r' && l.peek(i+1) == '\n' {
			if l.peek(i-1) == '\\' {
				i += 2
				continue
			}
			break
		}
		i++
	}
	return l.emit(Preproc, i)
}

func (l *Lexer) scanLineComment() Token {
	i := 2
	for {
		b := l.peek(i)
		if b == 0 || b == '\n' {
			break
		}
		if b == '\r' && l.peek(i+1) == '\n' {
			break
		}
		i++
	}
	return l.emit(Comment, i)
}

func (l *Lexer) scanBlockComment() Token {
	kind := Comment
	if l.peek(2) == '*' && l.peek(3) != '/' {
		kind = DSComment
	}

	i := 2
	for {
		if l.peek(i) == 0 {
			// unterminated comment
			return l.emit(Invalid, i)
		}
		if l.peek(i) == '*' && l.peek(i+1) == '/' {
			return l.emit(kind, i+2)
		}
		i++
	}
}

// scanLit consumes a string or character literal. start is the offset of
// the opening quote (1 for wide literals with an L prefix). A literal
// left open at end of line or end of input becomes an Invalid token.
func (l *Lexer) scanLit(start int, quote byte, kind Kind) Token {
	i := start + 1
	for {
		b := l.peek(i)
		if b == 0 || b == '\n' || (b == '\r' && l.peek(i+1) == '\n') {
			return l.emit(Invalid, i)
		}
		if b == '\\' {
			if l.peek(i + 1) == 0 {
				return l.emit(Invalid, i+1)
			}
			i += 2
			continue
		}
		if b == quote {
			return l.emit(kind, i+1)
		}
		i++
	}
}

func (l *Lexer) scanIdent() Token {
	i := 1
	for isIDCnt(l.peek(i)) {
		i++
	}

	// The token is cheap to classify before consuming: the bytes are
	// already buffered.
	text := string(l.data[l.off : l.off+i])
	if kind, ok := keywords[text]; ok {
		return l.emit(kind, i)
	}
	return l.emit(Ident, i)
}

func (l *Lexer) scanNumber() Token {
	i := 1
	if l.peek(0) == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X') {
		i = 2
		for isHex(l.peek(i)) {
			i++
		}
	} else {
		for isNum(l.peek(i)) {
			i++
		}
	}
	for isIntSuffix(l.peek(i)) {
		i++
	}
	return l.emit(Number, i)
}

// Dump renders a token in diagnostic form, e.g. <main.c:1:1-3:id:foo>.
func Dump(tok Token) string {
	rng := srcpos.RangeString(tok.Bpos, tok.Epos)
	switch tok.Kind {
	case Ident:
		return fmt.Sprintf("<%s:id:%s>", rng, tok.Text)
	case Number:
		return fmt.Sprintf("<%s:num:%s>", rng, tok.Text)
	case StrLit:
		return fmt.Sprintf("<%s:str:%s>", rng, tok.Text)
	case CharLit:
		return fmt.Sprintf("<%s:char:%s>", rng, tok.Text)
	default:
		return fmt.Sprintf("<%s:%s>", rng, tok.Kind)
	}
}
