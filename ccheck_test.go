package ccheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckString(t *testing.T) {
	diags, err := CheckString("main.c", "int x = 1;  \n")
	require.NoError(t, err)

	require.Len(t, diags, 1)
	assert.Equal(t, "main.c:1:12: Whitespace at end of line", diags[0].String())
}

func TestCheckStringClean(t *testing.T) {
	diags, err := CheckString("main.c", "int x = 1;\n")
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestCheckStringParseError(t *testing.T) {
	_, err := CheckString("main.c", "int x\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected ';'")
}

func TestFixString(t *testing.T) {
	fixed, err := FixString("main.c", "int f(void){\n  return 0;\n}\n")
	require.NoError(t, err)
	assert.Equal(t, "int f(void)\n{\n\treturn 0;\n}\n", fixed)
}

func TestFixStringIdempotent(t *testing.T) {
	once, err := FixString("main.c", "int  x  =  1 ;\n")
	require.NoError(t, err)

	twice, err := FixString("main.c", once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestWithStyle(t *testing.T) {
	style := &Style{LineLength: 10, ContIndent: 4}

	diags, err := CheckString("main.c", "int abcdefgh = 1;\n", WithStyle(style))
	require.NoError(t, err)

	require.Len(t, diags, 1)
	assert.Equal(t, "line-length", diags[0].RuleID)
}
