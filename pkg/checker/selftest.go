package checker

import (
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/ccheck-dev/ccheck/pkg/input"
	"github.com/ccheck-dev/ccheck/pkg/lexer"
)

// samplesFS embeds the sample sources the self-test runs over.
//
//go:embed samples/*.c
var samplesFS embed.FS

// SelfTest exercises the engine's core properties over the embedded
// sample sources: the lexer reproduces its input byte for byte, fixing
// twice equals fixing once, and a clean source is left untouched.
// Progress is reported to w; the first failed property is returned as
// an error.
func SelfTest(w io.Writer) error {
	entries, err := samplesFS.ReadDir("samples")
	if err != nil {
		return fmt.Errorf("reading embedded samples: %w", err)
	}

	for _, entry := range entries {
		data, err := samplesFS.ReadFile("samples/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		src := string(data)

		if err := checkRoundTrip(entry.Name(), src); err != nil {
			return err
		}
		if err := checkFixProperties(entry.Name(), src); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: ok\n", entry.Name())
	}

	return nil
}

// checkRoundTrip verifies that concatenating every lexer token's text
// reproduces the input.
func checkRoundTrip(name, src string) error {
	l := lexer.New(input.NewString(name, src))

	var b strings.Builder
	for {
		tok, err := l.Next()
		if err != nil {
			return fmt.Errorf("%s: lexing: %w", name, err)
		}
		b.WriteString(tok.Text)
		if tok.Kind == lexer.EOF {
			break
		}
	}

	if b.String() != src {
		return fmt.Errorf("%s: lexer round-trip mismatch", name)
	}
	return nil
}

// checkFixProperties verifies fixer idempotence and that clean input
// is left unchanged.
func checkFixProperties(name, src string) error {
	once, err := fixString(name, src)
	if err != nil {
		return err
	}
	twice, err := fixString(name, once)
	if err != nil {
		return err
	}
	if once != twice {
		return fmt.Errorf("%s: fixer is not idempotent", name)
	}

	c := New(input.NewString(name, src), nil)
	diags, err := c.Run(false)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if len(diags) == 0 && once != src {
		return fmt.Errorf("%s: fix changed a clean source", name)
	}

	return nil
}

func fixString(name, src string) (string, error) {
	c := New(input.NewString(name, src), nil)
	if _, err := c.Run(true); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	var b strings.Builder
	if err := c.Print(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
