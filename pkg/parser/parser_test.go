package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccheck-dev/ccheck/pkg/ast"
	"github.com/ccheck-dev/ccheck/pkg/input"
	"github.com/ccheck-dev/ccheck/pkg/lexer"
)

// lexSource adapts a lexer into a parser source with no consumer
// back-references.
type lexSource struct {
	l *lexer.Lexer
}

func (s *lexSource) Next() (lexer.Token, any) {
	tok, err := s.l.Next()
	if err != nil {
		return lexer.Token{Kind: lexer.EOF}, nil
	}
	return tok, nil
}

func parseString(t *testing.T, src string) (*ast.Module, error) {
	t.Helper()
	return Parse(&lexSource{l: lexer.New(input.NewString("test.c", src))})
}

func mustParse(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, err := parseString(t, src)
	require.NoError(t, err)
	return mod
}

func TestGlobalVar(t *testing.T) {
	mod := mustParse(t, "int x;\n")
	assert.Equal(t, "gdecln(dspecs(tsbasic(int)) dlist(dident(x)))\n",
		ast.Sdump(mod))
}

func TestGlobalVarInit(t *testing.T) {
	mod := mustParse(t, "static int x = 42;\n")
	assert.Equal(t,
		"gdecln(dspecs(sclass(static) tsbasic(int)) dlist(dident(x) = eint(42)))\n",
		ast.Sdump(mod))
}

func TestMultipleDeclarators(t *testing.T) {
	mod := mustParse(t, "int a, *b, c[10];\n")
	assert.Equal(t,
		"gdecln(dspecs(tsbasic(int)) dlist(dident(a) dptr(dident(b)) darray(dident(c) 10)))\n",
		ast.Sdump(mod))
}

func TestTypedefName(t *testing.T) {
	mod := mustParse(t, "foo_t *p;\n")
	assert.Equal(t,
		"gdecln(dspecs(tsident(foo_t)) dlist(dptr(dident(p))))\n",
		ast.Sdump(mod))
}

func TestFunctionDef(t *testing.T) {
	mod := mustParse(t, "int main(void)\n{\n\treturn 0;\n}\n")
	assert.Equal(t,
		"gdecln(dspecs(tsbasic(int)) dlist(dfun(dident(main) arg(dspecs(tsbasic(void)) dnoident))) block(return(eint(0))))\n",
		ast.Sdump(mod))
}

func TestFunctionArgs(t *testing.T) {
	mod := mustParse(t, "int f(int a, char *b);\n")
	assert.Equal(t,
		"gdecln(dspecs(tsbasic(int)) dlist(dfun(dident(f) arg(dspecs(tsbasic(int)) dident(a)) arg(dspecs(tsbasic(char)) dptr(dident(b))))))\n",
		ast.Sdump(mod))
}

func TestFunctionPointerDeclarator(t *testing.T) {
	mod := mustParse(t, "int (*fp)(int);\n")
	assert.Equal(t,
		"gdecln(dspecs(tsbasic(int)) dlist(dfun(dparen(dptr(dident(fp))) arg(dspecs(tsbasic(int)) dnoident))))\n",
		ast.Sdump(mod))
}

func TestStructDef(t *testing.T) {
	mod := mustParse(t, "struct foo {\n\tint x;\n\tchar *name;\n};\n")
	assert.Equal(t,
		"gdecln(dspecs(tsrecord(struct foo elem(sqlist(tsbasic(int)) dlist(dident(x))) elem(sqlist(tsbasic(char)) dlist(dptr(dident(name)))))) dlist(dnoident))\n",
		ast.Sdump(mod))
}

func TestTypedefStruct(t *testing.T) {
	mod := mustParse(t, "typedef struct foo {\n\tint x;\n} foo_t;\n")
	assert.Equal(t,
		"gdecln(dspecs(sclass(typedef) tsrecord(struct foo elem(sqlist(tsbasic(int)) dlist(dident(x))))) dlist(dident(foo_t)))\n",
		ast.Sdump(mod))
}

func TestUnion(t *testing.T) {
	mod := mustParse(t, "union u {\n\tint i;\n\tchar c;\n} v;\n")
	dump := ast.Sdump(mod)
	assert.Contains(t, dump, "tsrecord(union u")
	assert.Contains(t, dump, "dlist(dident(v))")
}

func TestEnum(t *testing.T) {
	mod := mustParse(t, "enum color {\n\tred,\n\tgreen = 3,\n\tblue\n};\n")
	assert.Equal(t,
		"gdecln(dspecs(tsenum(color elem(red) elem(green = eint(3)) elem(blue))) dlist(dnoident))\n",
		ast.Sdump(mod))
}

func TestStatements(t *testing.T) {
	src := "void f(int x)\n" +
		"{\n" +
		"\tint i = 0;\n" +
		"\tif (x)\n" +
		"\t\tg();\n" +
		"\telse\n" +
		"\t\th();\n" +
		"\twhile (x > 0)\n" +
		"\t\tx--;\n" +
		"\tdo {\n" +
		"\t\tx++;\n" +
		"\t} while (x < 10);\n" +
		"\tfor (i = 0; i < 10; i++)\n" +
		"\t\tg();\n" +
		"\tswitch (x) {\n" +
		"\tcase 1:\n" +
		"\t\tbreak;\n" +
		"\tdefault:\n" +
		"\t\tbreak;\n" +
		"\t}\n" +
		"\tgoto out;\n" +
		"out:\n" +
		"\treturn;\n" +
		"}\n"

	mod := mustParse(t, src)
	dump := ast.Sdump(mod)

	assert.Contains(t, dump, "stdecln(dspecs(tsbasic(int)) dlist(dident(i) = eint(0)))")
	assert.Contains(t, dump, "if(eident(x) block(stexpr(efuncall(eident(g)))) block(stexpr(efuncall(eident(h)))))")
	assert.Contains(t, dump, "while(ebinop(> eident(x) eint(0)) block(stexpr(epostadj(-- eident(x)))))")
	assert.Contains(t, dump, "do(block(stexpr(epostadj(++ eident(x)))) ebinop(< eident(x) eint(10)))")
	assert.Contains(t, dump, "for(ebinop(= eident(i) eint(0)) ebinop(< eident(i) eint(10)) epostadj(++ eident(i)) block(stexpr(efuncall(eident(g)))))")
	assert.Contains(t, dump, "switch(eident(x) block(clabel(eint(1)) break clabel(-) break))")
	assert.Contains(t, dump, "goto(out)")
	assert.Contains(t, dump, "glabel(out)")
}

func TestElseIfChain(t *testing.T) {
	mod := mustParse(t, "void f(void)\n{\n\tif (a)\n\t\tx();\n\telse if (b)\n\t\ty();\n\telse\n\t\tz();\n}\n")
	dump := ast.Sdump(mod)
	assert.Contains(t, dump,
		"if(eident(a) block(stexpr(efuncall(eident(x)))) block(if(eident(b) block(stexpr(efuncall(eident(y)))) block(stexpr(efuncall(eident(z)))))))")
}

func TestExprPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"int x = 1 + 2 * 3;", "ebinop(+ eint(1) ebinop(* eint(2) eint(3)))"},
		{"int x = (1 + 2) * 3;", "ebinop(* eparen(ebinop(+ eint(1) eint(2))) eint(3))"},
		{"int x = a || b && c;", "ebinop(|| eident(a) ebinop(&& eident(b) eident(c)))"},
		{"int x = a & b | c ^ d;", "ebinop(| ebinop(& eident(a) eident(b)) ebinop(^ eident(c) eident(d)))"},
		{"int x = a == b != c;", "ebinop(!= ebinop(== eident(a) eident(b)) eident(c))"},
		{"int x = a << 2 + b;", "ebinop(<< eident(a) ebinop(+ eint(2) eident(b)))"},
		{"int x = a ? b : c ? d : e;", "etcond(eident(a) eident(b) etcond(eident(c) eident(d) eident(e)))"},
		{"int x = -a + !b;", "ebinop(+ eusign(- eident(a)) elnot(eident(b)))"},
		{"int x = *p->q;", "ederef(eindmember(eident(p) q))"},
		{"int x = s.a[3];", "eindex(emember(eident(s) a) eint(3))"},
		{"int x = f(a, b + 1);", "efuncall(eident(f) eident(a) ebinop(+ eident(b) eint(1)))"},
		{"int x = ~a % b;", "ebinop(% ebnot(eident(a)) eident(b))"},
		{"int x = &v;", "eaddr(eident(v))"},
		{"int x = ++i;", "epreadj(++ eident(i))"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			mod := mustParse(t, tt.src+"\n")
			assert.Contains(t, ast.Sdump(mod), tt.want)
		})
	}
}

func TestAssignmentRightAssoc(t *testing.T) {
	mod := mustParse(t, "void f(void)\n{\n\ta = b = c;\n}\n")
	assert.Contains(t, ast.Sdump(mod),
		"ebinop(= eident(a) ebinop(= eident(b) eident(c)))")
}

func TestCommaExpr(t *testing.T) {
	mod := mustParse(t, "void f(void)\n{\n\ta = 1, b = 2;\n}\n")
	assert.Contains(t, ast.Sdump(mod),
		"ecomma(ebinop(= eident(a) eint(1)) ebinop(= eident(b) eint(2)))")
}

// The four sizeof disambiguation cases exercised by the original test
// corpus.
func TestSizeof(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		// keyword operand: type name, and '* 2' binds outside sizeof
		{"int a = sizeof(int) * 2;",
			"ebinop(* esizeof(typename(sqlist(tsbasic(int)) dnoident)) eint(2))"},
		// plain identifier: expression
		{"int b = sizeof(array) / sizeof(array[0]);",
			"ebinop(/ esizeof(eident(array)) esizeof(eindex(eident(array) eint(0))))"},
		// identifier times identifier: expression
		{"int c = sizeof(a * b);",
			"esizeof(ebinop(* eident(a) eident(b)))"},
		// identifier followed by '*' and ')': type name
		{"int d = sizeof(foo_t *);",
			"esizeof(typename(sqlist(tsident(foo_t)) dptr(dnoident)))"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			mod := mustParse(t, tt.src+"\n")
			assert.Contains(t, ast.Sdump(mod), tt.want)
		})
	}
}

func TestMultipartString(t *testing.T) {
	mod := mustParse(t, "char *s = \"a\" \"b\" \"c\";\n")
	assert.Contains(t, ast.Sdump(mod), "estring(\"a\" \"b\" \"c\")")
}

func TestCharLiteral(t *testing.T) {
	mod := mustParse(t, "char c = 'x';\n")
	assert.Contains(t, ast.Sdump(mod), "echar('x')")
}

func TestCommentsSkipped(t *testing.T) {
	mod := mustParse(t, "/* leading */\nint /* mid */ x; // trailing\n")
	assert.Equal(t, "gdecln(dspecs(tsbasic(int)) dlist(dident(x)))\n",
		ast.Sdump(mod))
}

func TestPreprocSkipped(t *testing.T) {
	mod := mustParse(t, "#include <stdio.h>\nint x;\n")
	assert.Equal(t, "gdecln(dspecs(tsbasic(int)) dlist(dident(x)))\n",
		ast.Sdump(mod))
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := parseString(t, "int x\nint y;\n")
	require.Error(t, err)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 2, serr.Pos.Line)
	assert.Equal(t, 1, serr.Pos.Col)
	assert.Contains(t, err.Error(), "expected ';'")
}

func TestSyntaxErrorEOF(t *testing.T) {
	_, err := parseString(t, "int f(void)\n{\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end of file")
}

func TestInvalidTokenFatal(t *testing.T) {
	_, err := parseString(t, "int x = $;\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestTokenBackrefs(t *testing.T) {
	// Token slots carry the consumer handle delivered by the source.
	type marker struct{ n int }

	count := 0
	l := lexer.New(input.NewString("test.c", "int x;\n"))
	src := sourceFunc(func() (lexer.Token, any) {
		tok, _ := l.Next()
		count++
		return tok, &marker{n: count}
	})

	mod, err := Parse(src)
	require.NoError(t, err)

	g := mod.Decls[0].(*ast.GDecln)
	first := g.FirstTok()
	require.NotNil(t, first)
	assert.IsType(t, &marker{}, first.Data)
	assert.IsType(t, &marker{}, g.TScolon.Data)
}

type sourceFunc func() (lexer.Token, any)

func (f sourceFunc) Next() (lexer.Token, any) { return f() }
