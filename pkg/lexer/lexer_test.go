package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccheck-dev/ccheck/pkg/input"
)

// lexAll tokenizes s completely, including the trailing EOF token.
func lexAll(t *testing.T, s string) []Token {
	t.Helper()

	l := New(input.NewString("test.c", s))
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"int main(void)\n{\n\treturn 0;\n}\n",
		"/* comment */\nint x;\n",
		"#define FOO \\\n\t1\nint y = FOO;\n",
		"char *s = \"a\\\"b\";\nchar c = '\\'';\n",
		"  \t mixed\tws\r\n",
		"if (a <<= 2) { b ->c; }\n",
		"\"unterminated\nint z;\n",
	}

	for _, in := range inputs {
		var b strings.Builder
		for _, tok := range lexAll(t, in) {
			b.WriteString(tok.Text)
		}
		assert.Equal(t, in, b.String())
	}
}

func TestWhitespaceTokens(t *testing.T) {
	toks := lexAll(t, "\t\t  \na")
	assert.Equal(t, []Kind{Tab, Tab, Space, Space, Newline, Ident, EOF}, kinds(toks))
}

func TestCRLFNewline(t *testing.T) {
	toks := lexAll(t, "a\r\nb")
	assert.Equal(t, []Kind{Ident, Newline, Ident, EOF}, kinds(toks))
	assert.Equal(t, "\r\n", toks[1].Text)
}

func TestKeywords(t *testing.T) {
	toks := lexAll(t, "if else while do for switch case default break continue "+
		"goto return sizeof typedef extern static auto register inline "+
		"const restrict volatile void char short int long signed unsigned "+
		"float double struct union enum")

	want := []Kind{
		KwIf, KwElse, KwWhile, KwDo, KwFor, KwSwitch, KwCase, KwDefault,
		KwBreak, KwContinue, KwGoto, KwReturn, KwSizeof, KwTypedef,
		KwExtern, KwStatic, KwAuto, KwRegister, KwInline, KwConst,
		KwRestrict, KwVolatile, KwVoid, KwChar, KwShort, KwInt, KwLong,
		KwSigned, KwUnsigned, KwFloat, KwDouble, KwStruct, KwUnion, KwEnum,
	}

	var got []Kind
	for _, tok := range toks {
		if tok.Kind == Space || tok.Kind == EOF {
			continue
		}
		got = append(got, tok.Kind)
	}
	assert.Equal(t, want, got)
}

func TestKeywordPrefixIsIdent(t *testing.T) {
	// An identifier that merely starts with a keyword is not a keyword.
	toks := lexAll(t, "interface dot double_t iff")
	assert.Equal(t, []Kind{Ident, Space, Ident, Space, Ident, Space, Ident, EOF},
		kinds(toks))
}

func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		in   string
		want []Kind
	}{
		{"<<=", []Kind{ShlAssign, EOF}},
		{"<< =", []Kind{Shl, Space, Assign, EOF}},
		{">>=", []Kind{ShrAssign, EOF}},
		{"a->b", []Kind{Ident, Arrow, Ident, EOF}},
		{"a--b", []Kind{Ident, Dec, Ident, EOF}},
		{"a- -b", []Kind{Ident, Minus, Space, Minus, Ident, EOF}},
		{"...", []Kind{Ellipsis, EOF}},
		{"..", []Kind{Period, Period, EOF}},
		{"a&&b", []Kind{Ident, Land, Ident, EOF}},
		{"a&b", []Kind{Ident, Amper, Ident, EOF}},
		{"a|=b", []Kind{Ident, BorAssign, Ident, EOF}},
		{"!=!", []Kind{NotEq, Lnot, EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(lexAll(t, tt.in)))
		})
	}
}

func TestComments(t *testing.T) {
	toks := lexAll(t, "/* block */")
	assert.Equal(t, []Kind{Comment, EOF}, kinds(toks))
	assert.Equal(t, "/* block */", toks[0].Text)

	toks = lexAll(t, "/* multi\nline */")
	assert.Equal(t, []Kind{Comment, EOF}, kinds(toks))

	toks = lexAll(t, "// line\nx")
	assert.Equal(t, []Kind{Comment, Newline, Ident, EOF}, kinds(toks))
	assert.Equal(t, "// line", toks[0].Text)
}

func TestDocComment(t *testing.T) {
	toks := lexAll(t, "/** doc */")
	assert.Equal(t, DSComment, toks[0].Kind)

	// "/**/" is an empty plain comment, not a doc comment.
	toks = lexAll(t, "/**/")
	assert.Equal(t, Comment, toks[0].Kind)
}

func TestUnterminatedComment(t *testing.T) {
	toks := lexAll(t, "/* no end")
	assert.Equal(t, []Kind{Invalid, EOF}, kinds(toks))
	assert.Equal(t, "/* no end", toks[0].Text)
}

func TestPreproc(t *testing.T) {
	toks := lexAll(t, "#include <stdio.h>\nint x;\n")
	assert.Equal(t, Preproc, toks[0].Kind)
	assert.Equal(t, "#include <stdio.h>", toks[0].Text)
	assert.Equal(t, Newline, toks[1].Kind)
}

func TestPreprocContinuation(t *testing.T) {
	toks := lexAll(t, "#define X \\\n\t1\ny\n")
	assert.Equal(t, Preproc, toks[0].Kind)
	assert.Equal(t, "#define X \\\n\t1", toks[0].Text)
	assert.Equal(t, Newline, toks[1].Kind)
	assert.Equal(t, Ident, toks[2].Kind)
}

func TestPreprocIndented(t *testing.T) {
	// '#' preceded only by whitespace still starts a preprocessor line.
	toks := lexAll(t, "\t#if FOO\n")
	assert.Equal(t, []Kind{Tab, Preproc, Newline, EOF}, kinds(toks))
}

func TestHashMidLine(t *testing.T) {
	toks := lexAll(t, "a # b ## c")
	assert.Equal(t, []Kind{Ident, Space, Hash, Space, Ident, Space,
		HashHash, Space, Ident, EOF}, kinds(toks))
}

func TestStringLiterals(t *testing.T) {
	toks := lexAll(t, `"abc"`)
	assert.Equal(t, StrLit, toks[0].Kind)

	toks = lexAll(t, `"a\"b"`)
	assert.Equal(t, StrLit, toks[0].Kind)
	assert.Equal(t, `"a\"b"`, toks[0].Text)

	toks = lexAll(t, `L"wide"`)
	assert.Equal(t, StrLit, toks[0].Kind)
	assert.Equal(t, `L"wide"`, toks[0].Text)
}

func TestCharLiterals(t *testing.T) {
	toks := lexAll(t, `'a'`)
	assert.Equal(t, CharLit, toks[0].Kind)

	toks = lexAll(t, `'\''`)
	assert.Equal(t, CharLit, toks[0].Kind)
	assert.Equal(t, `'\''`, toks[0].Text)

	toks = lexAll(t, `L'x'`)
	assert.Equal(t, CharLit, toks[0].Kind)
}

func TestUnterminatedString(t *testing.T) {
	toks := lexAll(t, "\"oops\nx")
	assert.Equal(t, []Kind{Invalid, Newline, Ident, EOF}, kinds(toks))
	assert.Equal(t, "\"oops", toks[0].Text)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		text string
	}{
		{"0", "0"},
		{"1234", "1234"},
		{"0x1fF", "0x1fF"},
		{"0777", "0777"},
		{"10u", "10u"},
		{"10UL", "10UL"},
		{"10ll", "10ll"},
	}

	for _, tt := range tests {
		toks := lexAll(t, tt.in)
		assert.Equal(t, Number, toks[0].Kind)
		assert.Equal(t, tt.text, toks[0].Text)
	}
}

func TestPositions(t *testing.T) {
	toks := lexAll(t, "int x;\nint y;\n")

	// "int" spans columns 1-3 of line 1
	assert.Equal(t, 1, toks[0].Bpos.Line)
	assert.Equal(t, 1, toks[0].Bpos.Col)
	assert.Equal(t, 3, toks[0].Epos.Col)

	// the newline token ends line 1; the second "int" opens line 2
	assert.Equal(t, Newline, toks[4].Kind)
	assert.Equal(t, 2, toks[5].Bpos.Line)
	assert.Equal(t, 1, toks[5].Bpos.Col)
}

func TestPositionsNonDecreasing(t *testing.T) {
	toks := lexAll(t, "int main(void)\n{\n\tif (x)\n\t\ty();\n}\n")

	prev := toks[0]
	for _, tok := range toks[1:] {
		after := tok.Bpos.Line > prev.Bpos.Line ||
			(tok.Bpos.Line == prev.Bpos.Line && tok.Bpos.Col >= prev.Bpos.Col)
		assert.True(t, after, "token %s before %s", Dump(tok), Dump(prev))
		prev = tok
	}
}

func TestDump(t *testing.T) {
	toks := lexAll(t, "foo")
	assert.Equal(t, "<test.c:1:1-3:id:foo>", Dump(toks[0]))

	toks = lexAll(t, "42")
	assert.Equal(t, "<test.c:1:1-2:num:42>", Dump(toks[0]))

	toks = lexAll(t, ";")
	assert.Equal(t, "<test.c:1:1:;>", Dump(toks[0]))
}

func TestEOFTerminated(t *testing.T) {
	l := New(input.NewString("test.c", "x"))

	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, Ident, tok.Kind)

	tok, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, EOF, tok.Kind)

	// EOF repeats once reached
	tok, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, EOF, tok.Kind)
}

func BenchmarkLexer(b *testing.B) {
	src := strings.Repeat("int main(void)\n{\n\tif (x >= 2)\n\t\treturn x->y[0];\n}\n", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := New(input.NewString("bench.c", src))
		for {
			tok, err := l.Next()
			if err != nil {
				b.Fatal(err)
			}
			if tok.Kind == EOF {
				break
			}
		}
	}
}
