// Package ccheck provides a library interface to the C99 style checker.
//
// Ccheck tokenizes a translation unit without losing a byte, parses it,
// and verifies layout rules: indentation, spacing around punctuation,
// line breaks, trailing whitespace and line length. In fix mode it
// rewrites only whitespace, leaving every other token untouched.
//
// # Basic Usage
//
// Check a source string and inspect the diagnostics:
//
//	diags, err := ccheck.CheckString("main.c", src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, d := range diags {
//	    fmt.Println(d)
//	}
//
// # Fixing
//
// Repair a source string in one call:
//
//	fixed, err := ccheck.FixString("main.c", src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("main.c", []byte(fixed), 0o644)
package ccheck

import (
	"fmt"
	"strings"

	"github.com/ccheck-dev/ccheck/pkg/checker"
	"github.com/ccheck-dev/ccheck/pkg/config"
	"github.com/ccheck-dev/ccheck/pkg/input"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/ccheck-dev/ccheck" without subpackages.
type (
	// Diagnostic is a single reported style violation.
	Diagnostic = checker.Diagnostic

	// Style holds the tunable style parameters.
	Style = config.Style
)

// Option configures a check or fix run.
type Option func(*runConfig)

// runConfig holds the resolved options of one run.
type runConfig struct {
	style *config.Style
}

// WithStyle uses a custom style instead of the defaults (80-column
// limit, 4-space continuation indent).
func WithStyle(style *Style) Option {
	return func(c *runConfig) {
		c.style = style
	}
}

func newRunConfig(opts []Option) *runConfig {
	c := &runConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.style == nil {
		c.style = config.Default()
	}
	return c
}

// CheckString checks a source string and returns its diagnostics in
// position order. name is used in diagnostic positions. Lex I/O
// failures and parse errors are returned as an error.
//
// Example:
//
//	diags, err := ccheck.CheckString("main.c", "int x = 1;  \n")
func CheckString(name, src string, opts ...Option) ([]Diagnostic, error) {
	cfg := newRunConfig(opts)

	c := checker.New(input.NewString(name, src), cfg.style)
	diags, err := c.Run(false)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", name, err)
	}
	return diags, nil
}

// FixString repairs a source string and returns the corrected text.
// Only whitespace tokens differ from the input; everything else is
// byte-identical. Fixing is idempotent and a clean source comes back
// unchanged.
func FixString(name, src string, opts ...Option) (string, error) {
	cfg := newRunConfig(opts)

	c := checker.New(input.NewString(name, src), cfg.style)
	if _, err := c.Run(true); err != nil {
		return "", fmt.Errorf("fixing %s: %w", name, err)
	}

	var b strings.Builder
	if err := c.Print(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
