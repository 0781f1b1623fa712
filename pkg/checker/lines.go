package checker

import (
	"fmt"

	"github.com/ccheck-dev/ccheck/pkg/lexer"
	"github.com/ccheck-dev/ccheck/pkg/srcpos"
)

// checkLines is the second pass: a linear scan over the token stream
// enforcing per-line rules that the AST walk cannot see, namely the
// indentation prefix, trailing whitespace and the line-length limit.
func (m *Module) checkLines() {
	t := m.first
	for t != nil && t.Tok.Kind != lexer.EOF {
		t = m.checkLine(t)
	}
}

// checkLine handles one physical line starting at t and returns the
// first token of the following line, or nil at end of stream.
func (m *Module) checkLine(start *Tok) *Tok {
	// Leading whitespace prefix: tabs, then spaces; anything beyond
	// that exact pattern counts as mixed.
	tabs, spaces, extra := 0, 0, 0
	var leading []*Tok

	t := start
	for isBreakable(t) {
		leading = append(leading, t)
		switch {
		case t.Tok.Kind == lexer.Tab && spaces == 0 && extra == 0:
			tabs++
		case t.Tok.Kind == lexer.Space && extra == 0:
			spaces++
		default:
			extra++
		}
		t = t.next
	}

	tok := t
	if tok == nil || tok.Tok.Kind == lexer.EOF {
		return nil
	}
	if tok.Tok.Kind == lexer.Newline {
		// blank line
		return tok.next
	}

	// Locate the last non-whitespace token and the terminating newline.
	last := tok
	var nl *Tok
	for u := tok; u != nil && u.Tok.Kind != lexer.EOF; u = u.next {
		if u.Tok.Kind == lexer.Newline {
			nl = u
			break
		}
		if !u.Tok.Kind.IsWspace() {
			last = u
		}
	}

	m.checkIndent(tok, tabs, spaces, extra, leading)
	m.checkTrailingWs(last, nl)
	if !m.fix {
		m.checkLineLength(last)
	}

	if nl == nil {
		return nil
	}
	return nl.next
}

// checkIndent enforces the indentation prefix of a line against the
// level assigned to its first token. Comment lines are left alone;
// preprocessor lines always begin a line at level zero.
func (m *Module) checkIndent(tok *Tok, tabs, spaces, extra int, leading []*Tok) {
	if tok.Tok.Kind.IsComment() {
		return
	}

	lbegin := tok.LBegin || tok.Tok.Kind == lexer.Preproc
	viol := false

	if extra > 0 {
		viol = true
		if !m.fix {
			m.diag("indent-mix", tok.Tok.Bpos, tok.Tok.Bpos,
				"Mixing tabs and spaces for indentation.")
		}
	}
	if tabs != tok.IndLvl {
		viol = true
		if !m.fix {
			m.diag("indent", tok.Tok.Bpos, tok.Tok.Bpos, fmt.Sprintf(
				"Wrong indentation: found %d tabs, should be %d tabs",
				tabs, tok.IndLvl))
		}
	}
	if lbegin && spaces != 0 {
		viol = true
		if !m.fix {
			m.diag("indent-spaces", tok.Tok.Bpos, tok.Tok.Bpos, fmt.Sprintf(
				"Non-continuation line should not have any spaces for indentation (found %d)",
				spaces))
		}
	}
	if !lbegin && spaces != m.cfg.ContIndent {
		viol = true
		if !m.fix {
			m.diag("cont-indent", tok.Tok.Bpos, tok.Tok.Bpos, fmt.Sprintf(
				"Continuation line should have exactly %d spaces for indentation (found %d)",
				m.cfg.ContIndent, spaces))
		}
	}

	if !viol || !m.fix {
		return
	}

	for _, w := range leading {
		m.remove(w)
	}
	for i := 0; i < tok.IndLvl; i++ {
		m.insertBefore(tok, lexer.Tab, "\t")
	}
	if !lbegin {
		for i := 0; i < m.cfg.ContIndent; i++ {
			m.insertBefore(tok, lexer.Space, " ")
		}
	}
}

// checkTrailingWs flags whitespace between the last non-whitespace
// token of a line and its newline.
func (m *Module) checkTrailingWs(last, nl *Tok) {
	var run []*Tok
	for u := last.next; u != nil && u != nl && u.Tok.Kind != lexer.EOF; u = u.next {
		run = append(run, u)
	}
	if len(run) == 0 {
		return
	}

	if !m.fix {
		at := run[len(run)-1].Tok.Bpos
		m.diag("trailing-ws", at, at, "Whitespace at end of line")
		return
	}

	for _, w := range run {
		m.remove(w)
	}
}

// checkLineLength reports lines whose last byte sits beyond the
// configured limit. There is no repair for this one.
func (m *Module) checkLineLength(last *Tok) {
	endCol := last.Tok.Epos.Col
	if endCol <= m.cfg.LineLength {
		return
	}
	at := srcpos.New(last.Tok.Epos.File, last.Tok.Epos.Line, m.cfg.LineLength+1)
	m.diag("line-length", at, at, fmt.Sprintf(
		"Line too long (%d characters, limit %d)", endCol, m.cfg.LineLength))
}
