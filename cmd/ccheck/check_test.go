package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the package-level flag state between tests.
func resetFlags() {
	flagFix = false
	flagTest = false
	flagDumpAST = false
	flagDumpToks = false
	flagFormat = "human"
	flagColor = "never"
	flagConfig = ""
	flagHidden = false
	flagMaxSize = 10 * 1024 * 1024
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runRootTest(t *testing.T, args []string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runRoot(cmd, args)
	return buf.String(), err
}

func TestRunCheckClean(t *testing.T) {
	resetFlags()
	path := writeSource(t, t.TempDir(), "clean.c", "int x = 1;\n")

	out, err := runRootTest(t, []string{path})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunCheckViolations(t *testing.T) {
	resetFlags()
	path := writeSource(t, t.TempDir(), "bad.c", "int x = 1;  \n")

	out, err := runRootTest(t, []string{path})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errViolations))
	assert.Contains(t, out, "bad.c:1:12: Whitespace at end of line")
}

func TestRunCheckMissingTarget(t *testing.T) {
	resetFlags()
	_, err := runRootTest(t, []string{filepath.Join(t.TempDir(), "nope.c")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target does not exist")
}

func TestRunFix(t *testing.T) {
	resetFlags()
	flagFix = true
	dir := t.TempDir()
	path := writeSource(t, dir, "fixme.c", "int f(void){\n  return 0;\n}\n")

	_, err := runRootTest(t, []string{path})
	require.NoError(t, err)

	fixed, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "int f(void)\n{\n\treturn 0;\n}\n", string(fixed))

	orig, err := os.ReadFile(path + ".orig")
	require.NoError(t, err)
	assert.Equal(t, "int f(void){\n  return 0;\n}\n", string(orig))
}

func TestRunFixKeepsExistingBackup(t *testing.T) {
	resetFlags()
	flagFix = true
	dir := t.TempDir()
	path := writeSource(t, dir, "x.c", "int x = 1 ;\n")
	writeSource(t, dir, "x.c.orig", "previous backup\n")

	_, err := runRootTest(t, []string{path})
	require.NoError(t, err)

	orig, err := os.ReadFile(path + ".orig")
	require.NoError(t, err)
	assert.Equal(t, "previous backup\n", string(orig))
}

func TestRunCheckDirectory(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	writeSource(t, dir, "a.c", "int x = 1;  \n")
	writeSource(t, dir, "b.c", "int y ;\n")
	writeSource(t, dir, "notes.txt", "not C\n")

	out, err := runRootTest(t, []string{dir})
	require.Error(t, err)
	assert.Contains(t, out, "a.c:1:12:")
	assert.Contains(t, out, "b.c:1:6:")
}

func TestRunCheckParseError(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	writeSource(t, dir, "broken.c", "int x\n")
	writeSource(t, dir, "fine.c", "int y = 2;\n")

	out, err := runRootTest(t, []string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal errors")
	assert.Contains(t, out, "expected ';'")
}

func TestRunCheckJSON(t *testing.T) {
	resetFlags()
	flagFormat = "json"
	path := writeSource(t, t.TempDir(), "bad.c", "int x = 1;  \n")

	out, err := runRootTest(t, []string{path})
	require.Error(t, err)
	assert.Contains(t, out, `"rule_id": "trailing-ws"`)
	assert.Contains(t, out, `"line": 1`)
}

func TestRunCheckSARIF(t *testing.T) {
	resetFlags()
	flagFormat = "sarif"
	path := writeSource(t, t.TempDir(), "bad.c", "int x = 1;  \n")

	out, err := runRootTest(t, []string{path})
	require.Error(t, err)
	assert.Contains(t, out, `"$schema"`)
	assert.Contains(t, out, `"ruleId": "trailing-ws"`)
}

func TestRunSelfTest(t *testing.T) {
	resetFlags()
	flagTest = true

	out, err := runRootTest(t, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "good.c: ok")
	assert.Contains(t, out, "ugly.c: ok")
}

func TestDumpToks(t *testing.T) {
	resetFlags()
	flagDumpToks = true
	path := writeSource(t, t.TempDir(), "t.c", "int x;\n")

	out, err := runRootTest(t, []string{path})
	require.NoError(t, err)
	assert.Contains(t, out, ":int>")
	assert.Contains(t, out, ":id:x>")
	assert.Contains(t, out, ":eof>")
}

func TestDumpAST(t *testing.T) {
	resetFlags()
	flagDumpAST = true
	path := writeSource(t, t.TempDir(), "t.c", "int x;\n")

	out, err := runRootTest(t, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "gdecln(dspecs(tsbasic(int)) dlist(dident(x)))\n", out)
}

func TestConfigOverridesLineLength(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	flagConfig = writeSource(t, dir, ".ccheck.yml", "style:\n  line_length: 10\n")
	path := writeSource(t, dir, "long.c", "int abcdefgh = 1;\n")

	out, err := runRootTest(t, []string{path})
	require.Error(t, err)
	assert.Contains(t, out, "Line too long")
}
