package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccheck-dev/ccheck/pkg/input"
	"github.com/ccheck-dev/ccheck/pkg/lexer"
)

// lexModule builds a module stream from a source string without
// parsing it, for predicate-level tests.
func lexModule(t *testing.T, src string, fix bool) *Module {
	t.Helper()

	m := &Module{cfg: nil, fix: fix}
	l := lexer.New(input.NewString("t.c", src))
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		m.append(&Tok{Tok: tok})
		if tok.Kind == lexer.EOF {
			return m
		}
	}
}

// findTok returns the first token with the given text.
func findTok(m *Module, text string) *Tok {
	for t := m.first; t != nil; t = t.next {
		if t.Tok.Text == text {
			return t
		}
	}
	return nil
}

func printStream(m *Module) string {
	var b strings.Builder
	for t := m.first; t != nil; t = t.next {
		b.WriteString(t.Tok.Text)
	}
	return b.String()
}

func TestStreamSplicing(t *testing.T) {
	m := lexModule(t, "ab", false)
	b := findTok(m, "ab")

	m.insertBefore(b, lexer.Space, " ")
	assert.Equal(t, " ab", printStream(m))

	m.insertAfter(b, lexer.Newline, "\n")
	assert.Equal(t, " ab\n", printStream(m))

	m.remove(b.prev)
	assert.Equal(t, "ab\n", printStream(m))

	// head and tail links survive removal at either end
	m.remove(m.first)
	assert.Equal(t, "\n", printStream(m))
}

func TestNowsBeforeRepair(t *testing.T) {
	m := lexModule(t, "x  ;", true)
	m.nowsBefore(findTok(m, ";"), scope{}, "msg")
	assert.Equal(t, "x;", printStream(m))
}

func TestNowsBeforeDiagCoversRun(t *testing.T) {
	m := lexModule(t, "x  ;", false)
	m.nowsBefore(findTok(m, ";"), scope{}, "msg")

	require.Len(t, m.diags, 1)
	// the diagnostic points at the whitespace run, columns 2-3
	assert.Equal(t, 2, m.diags[0].BPos.Col)
	assert.Equal(t, 3, m.diags[0].EPos.Col)
}

func TestNowsAfterRepair(t *testing.T) {
	m := lexModule(t, "( x", true)
	m.nowsAfter(findTok(m, "("), scope{}, "msg")
	assert.Equal(t, "(x", printStream(m))
}

func TestNsbrkAfterAllowsNewline(t *testing.T) {
	m := lexModule(t, "(\nx", false)
	m.nsbrkAfter(findTok(m, "("), scope{}, "msg")
	assert.Empty(t, m.diags)

	m = lexModule(t, "( \nx", false)
	m.nsbrkAfter(findTok(m, "("), scope{}, "msg")
	assert.Len(t, m.diags, 1)
}

func TestBrkspaceBefore(t *testing.T) {
	// single space is fine
	m := lexModule(t, "a b", false)
	m.brkspaceBefore(findTok(m, "b"), scope{}, "msg")
	assert.Empty(t, m.diags)

	// a line break is fine too
	m = lexModule(t, "a\n    b", false)
	m.brkspaceBefore(findTok(m, "b"), scope{}, "msg")
	assert.Empty(t, m.diags)

	// no whitespace is repaired by inserting one space
	m = lexModule(t, "a+b", true)
	m.brkspaceBefore(findTok(m, "+"), scope{}, "msg")
	assert.Equal(t, "a +b", printStream(m))

	// two spaces collapse to one
	m = lexModule(t, "a  b", true)
	m.brkspaceBefore(findTok(m, "b"), scope{}, "msg")
	assert.Equal(t, "a b", printStream(m))
}

func TestNbspaceBefore(t *testing.T) {
	m := lexModule(t, ") {", false)
	m.nbspaceBefore(findTok(m, "{"), scope{}, "msg")
	assert.Empty(t, m.diags)

	// a line break violates: the brace may not start its line
	m = lexModule(t, ")\n{", true)
	m.nbspaceBefore(findTok(m, "{"), scope{}, "msg")
	assert.Equal(t, ") {", printStream(m))
}

func TestLbegin(t *testing.T) {
	// token already first on its line
	m := lexModule(t, "x;\ny;", false)
	y := findTok(m, "y")
	m.lbegin(y, scope{indlvl: 1}, "msg")
	assert.Empty(t, m.diags)
	assert.True(t, y.LBegin)
	assert.Equal(t, 1, y.IndLvl)

	// token after another on the same line is moved to its own line
	m = lexModule(t, "x; y;", true)
	m.lbegin(findTok(m, "y"), scope{indlvl: 1}, "msg")
	assert.Equal(t, "x;\n\ty;", printStream(m))
}

func TestPredicatesNilTok(t *testing.T) {
	// empty slots are simply skipped
	m := lexModule(t, "x", false)
	m.lbegin(nil, scope{}, "msg")
	m.nowsBefore(nil, scope{}, "msg")
	m.brkspaceAfter(nil, scope{}, "msg")
	assert.Empty(t, m.diags)
}
