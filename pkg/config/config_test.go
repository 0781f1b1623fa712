package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 80, s.LineLength)
	assert.Equal(t, 4, s.ContIndent)
}

func TestLoad(t *testing.T) {
	s, err := Load([]byte("style:\n  line_length: 100\n  cont_indent: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 100, s.LineLength)
	assert.Equal(t, 8, s.ContIndent)
}

func TestLoadPartial(t *testing.T) {
	s, err := Load([]byte("style:\n  line_length: 120\n"))
	require.NoError(t, err)
	assert.Equal(t, 120, s.LineLength)
	assert.Equal(t, 4, s.ContIndent)
}

func TestLoadEmpty(t *testing.T) {
	s, err := Load([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load([]byte("style: ["))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ccheck.yml")
	require.NoError(t, os.WriteFile(path,
		[]byte("style:\n  line_length: 72\n"), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 72, s.LineLength)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
