package main

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runVersion(cmd, nil))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "ccheck "), "output %q", out)
	assert.Contains(t, out, runtime.Version())
	assert.Contains(t, out, fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH))
}

func TestBuildVersion(t *testing.T) {
	ver, rev := buildVersion()

	// With no release version linked in, the build info (or the "dev"
	// fallback) still yields something to report.
	assert.NotEmpty(t, ver)

	// A revision, when present, is truncated to short form.
	if rev != "" {
		assert.LessOrEqual(t, len(rev), 12)
	}
}

func TestBuildVersionLinkedRelease(t *testing.T) {
	orig := version
	defer func() { version = orig }()

	// A version stamped via -ldflags takes precedence over build info.
	version = "1.2.3"
	ver, _ := buildVersion()
	assert.Equal(t, "1.2.3", ver)
}
