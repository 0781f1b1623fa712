// Package checker verifies and repairs the layout of a C translation
// unit. The lexer output is kept as a doubly linked token stream owning
// every byte of the input; an AST walk classifies each grammatical
// token by its contextual whitespace requirement, and a final pass over
// physical lines enforces indentation, trailing-whitespace and
// line-length rules. In fix mode the stream is mutated in place, only
// ever by inserting or removing whitespace tokens, so printing the
// stream yields a corrected file that is otherwise byte-identical to
// the original.
package checker

import (
	"fmt"
	"io"
	"sort"

	"github.com/ccheck-dev/ccheck/pkg/ast"
	"github.com/ccheck-dev/ccheck/pkg/config"
	"github.com/ccheck-dev/ccheck/pkg/input"
	"github.com/ccheck-dev/ccheck/pkg/lexer"
	"github.com/ccheck-dev/ccheck/pkg/parser"
	"github.com/ccheck-dev/ccheck/pkg/srcpos"
)

// Diagnostic is one reported style violation.
type Diagnostic struct {
	// RuleID is a stable identifier of the violated rule, used by the
	// SARIF and JSON output formats.
	RuleID string
	BPos   srcpos.Pos
	EPos   srcpos.Pos
	Msg    string
}

// String renders the diagnostic as file:LINE:COL: message, with the
// position written as a range (srcpos.RangeString) when it spans bytes.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", srcpos.RangeString(d.BPos, d.EPos), d.Msg)
}

// Tok is one token of the module stream: the lexer token plus the
// sibling links and the indentation state assigned by the AST walk.
type Tok struct {
	mod  *Module
	prev *Tok
	next *Tok

	// Tok is the underlying lexer token.
	Tok lexer.Token

	// IndLvl is the expected indentation level (tab count) of the
	// token's line, assigned during the AST walk.
	IndLvl int

	// LBegin is set when the token must be the first non-whitespace
	// token on its line. Lines whose first token is not marked are
	// continuation lines.
	LBegin bool
}

// Next returns the following token in the stream, or nil.
func (t *Tok) Next() *Tok { return t.next }

// Prev returns the preceding token in the stream, or nil.
func (t *Tok) Prev() *Tok { return t.prev }

// Module owns the token stream and the AST annotating it.
type Module struct {
	first *Tok
	last  *Tok
	ast   *ast.Module
	cfg   *config.Style

	fix   bool
	diags []Diagnostic
}

// FirstTok returns the first token of the module stream.
func (m *Module) FirstTok() *Tok { return m.first }

// append links a new token at the end of the stream.
func (m *Module) append(ct *Tok) {
	ct.mod = m
	ct.prev = m.last
	if m.last != nil {
		m.last.next = ct
	} else {
		m.first = ct
	}
	m.last = ct
}

// insertBefore splices a new whitespace token in front of t.
func (m *Module) insertBefore(t *Tok, kind lexer.Kind, text string) *Tok {
	nt := &Tok{mod: m, Tok: lexer.Token{Kind: kind, Text: text}}
	nt.prev = t.prev
	nt.next = t
	if t.prev != nil {
		t.prev.next = nt
	} else {
		m.first = nt
	}
	t.prev = nt
	return nt
}

// insertAfter splices a new whitespace token right after t.
func (m *Module) insertAfter(t *Tok, kind lexer.Kind, text string) *Tok {
	nt := &Tok{mod: m, Tok: lexer.Token{Kind: kind, Text: text}}
	nt.next = t.next
	nt.prev = t
	if t.next != nil {
		t.next.prev = nt
	} else {
		m.last = nt
	}
	t.next = nt
	return nt
}

// remove unlinks t from the stream.
func (m *Module) remove(t *Tok) {
	if t.prev != nil {
		t.prev.next = t.next
	} else {
		m.first = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	} else {
		m.last = t.prev
	}
	t.prev = nil
	t.next = nil
}

func (m *Module) diag(rule string, bpos, epos srcpos.Pos, msg string) {
	m.diags = append(m.diags, Diagnostic{
		RuleID: rule,
		BPos:   bpos,
		EPos:   epos,
		Msg:    msg,
	})
}

// Checker runs the check/fix engine over one translation unit.
type Checker struct {
	src input.Source
	cfg *config.Style
	mod *Module
}

// New creates a checker reading from src. A nil cfg selects the
// default style.
func New(src input.Source, cfg *config.Style) *Checker {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Checker{src: src, cfg: cfg}
}

// Run lexes, parses and checks the translation unit. With fix set,
// repairable violations are silently repaired in the token stream
// instead of reported. The returned diagnostics are ordered by source
// position. Lex I/O errors and parse errors are fatal and returned as
// an error.
func (c *Checker) Run(fix bool) ([]Diagnostic, error) {
	if c.mod == nil {
		if err := c.load(); err != nil {
			return nil, err
		}
	}

	c.mod.fix = fix
	c.mod.diags = nil

	c.mod.checkModule()
	c.mod.checkLines()

	diags := c.mod.diags
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].BPos.Line != diags[j].BPos.Line {
			return diags[i].BPos.Line < diags[j].BPos.Line
		}
		return diags[i].BPos.Col < diags[j].BPos.Col
	})
	return diags, nil
}

// load lexes the whole input into the token stream and parses it.
func (c *Checker) load() error {
	m := &Module{cfg: c.cfg}

	l := lexer.New(c.src)
	for {
		tok, err := l.Next()
		if err != nil {
			return err
		}
		ct := &Tok{Tok: tok}
		m.append(ct)
		if tok.Kind == lexer.EOF {
			break
		}
	}

	amod, err := parser.Parse(&tokSource{cur: m.first})
	if err != nil {
		return err
	}
	m.ast = amod

	c.mod = m
	return nil
}

// Print writes the token stream back out; with no fixes applied the
// output is byte-identical to the input.
func (c *Checker) Print(w io.Writer) error {
	for t := c.mod.first; t != nil; t = t.next {
		if _, err := io.WriteString(w, t.Tok.Text); err != nil {
			return err
		}
	}
	return nil
}

// Module returns the checker module once Run has loaded it.
func (c *Checker) Module() *Module { return c.mod }

// tokSource feeds the parser from the token stream, handing each
// stream token down as the back-reference handle for the AST slot.
type tokSource struct {
	cur *Tok
}

func (s *tokSource) Next() (lexer.Token, any) {
	ct := s.cur
	if ct.Tok.Kind != lexer.EOF {
		s.cur = ct.next
	}
	return ct.Tok, ct
}

// tokOf resolves an AST token slot to the stream token it references.
func tokOf(at *ast.Tok) *Tok {
	if at == nil {
		return nil
	}
	ct, _ := at.Data.(*Tok)
	return ct
}
