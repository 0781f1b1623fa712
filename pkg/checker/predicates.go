package checker

import (
	"github.com/ccheck-dev/ccheck/pkg/lexer"
)

// scope is the walker's current indentation frame. A nested scope adds
// one tab of indentation.
type scope struct {
	indlvl int
}

func (sc scope) nested() scope {
	return scope{indlvl: sc.indlvl + 1}
}

// isBreakable reports a space or tab token (whitespace that does not
// break the line).
func isBreakable(t *Tok) bool {
	return t != nil && (t.Tok.Kind == lexer.Space || t.Tok.Kind == lexer.Tab)
}

func isWs(t *Tok) bool {
	return t != nil && t.Tok.Kind.IsWspace()
}

// wsRunBefore returns the run of whitespace tokens immediately before
// t, in stream order.
func wsRunBefore(t *Tok) []*Tok {
	var run []*Tok
	for p := t.prev; isWs(p); p = p.prev {
		run = append([]*Tok{p}, run...)
	}
	return run
}

// wsRunAfter returns the run of whitespace tokens immediately after t.
func wsRunAfter(t *Tok) []*Tok {
	var run []*Tok
	for n := t.next; isWs(n); n = n.next {
		run = append(run, n)
	}
	return run
}

func runHasNewline(run []*Tok) bool {
	for _, t := range run {
		if t.Tok.Kind == lexer.Newline {
			return true
		}
	}
	return false
}

// anyTok only assigns the indentation level; the token has no
// whitespace constraint of its own.
func (m *Module) anyTok(t *Tok, sc scope) {
	if t == nil {
		return
	}
	t.IndLvl = sc.indlvl
}

// lbegin requires the token to be the first non-whitespace token on
// its line and marks its line as a non-continuation line.
func (m *Module) lbegin(t *Tok, sc scope, msg string) {
	if t == nil {
		return
	}
	t.IndLvl = sc.indlvl
	t.LBegin = true

	// Violated when a non-whitespace token precedes on the same line.
	p := t.prev
	for isBreakable(p) {
		p = p.prev
	}
	if p == nil || p.Tok.Kind == lexer.Newline {
		return
	}

	if !m.fix {
		m.diag("stmt-newline", t.Tok.Bpos, t.Tok.Bpos, msg)
		return
	}

	for isBreakable(t.prev) {
		m.remove(t.prev)
	}
	m.insertBefore(t, lexer.Newline, "\n")
	for i := 0; i < t.IndLvl; i++ {
		m.insertBefore(t, lexer.Tab, "\t")
	}
}

// nowsBefore requires that no whitespace token is adjacent before t.
func (m *Module) nowsBefore(t *Tok, sc scope, msg string) {
	if t == nil {
		return
	}
	t.IndLvl = sc.indlvl

	run := wsRunBefore(t)
	if len(run) == 0 {
		return
	}

	if !m.fix {
		first := run[0]
		last := run[len(run)-1]
		m.diag("ws-before", first.Tok.Bpos, last.Tok.Epos, msg)
		return
	}

	for _, w := range run {
		m.remove(w)
	}
}

// nowsAfter requires that no whitespace token is adjacent after t.
func (m *Module) nowsAfter(t *Tok, sc scope, msg string) {
	if t == nil {
		return
	}
	t.IndLvl = sc.indlvl

	run := wsRunAfter(t)
	if len(run) == 0 {
		return
	}

	if !m.fix {
		m.diag("ws-after", run[0].Tok.Bpos, run[len(run)-1].Tok.Epos, msg)
		return
	}

	for _, w := range run {
		m.remove(w)
	}
}

// nsbrkAfter allows either no whitespace or a line break after t, but
// no spaces or tabs before the break.
func (m *Module) nsbrkAfter(t *Tok, sc scope, msg string) {
	if t == nil {
		return
	}
	t.IndLvl = sc.indlvl

	var bad []*Tok
	for n := t.next; isBreakable(n); n = n.next {
		bad = append(bad, n)
	}
	if len(bad) == 0 {
		return
	}

	if !m.fix {
		m.diag("ws-after", bad[0].Tok.Bpos, bad[len(bad)-1].Tok.Epos, msg)
		return
	}

	for _, w := range bad {
		m.remove(w)
	}
}

// brkspaceBefore requires a single space or a line break before t.
func (m *Module) brkspaceBefore(t *Tok, sc scope, msg string) {
	if t == nil {
		return
	}
	t.IndLvl = sc.indlvl

	run := wsRunBefore(t)
	if runHasNewline(run) {
		return
	}
	if len(run) == 1 && run[0].Tok.Kind == lexer.Space {
		return
	}

	if !m.fix {
		m.diag("space-missing", t.Tok.Bpos, t.Tok.Bpos, msg)
		return
	}

	for _, w := range run {
		m.remove(w)
	}
	m.insertBefore(t, lexer.Space, " ")
}

// brkspaceAfter requires a single space or a line break after t.
func (m *Module) brkspaceAfter(t *Tok, sc scope, msg string) {
	if t == nil {
		return
	}
	t.IndLvl = sc.indlvl

	run := wsRunAfter(t)
	if runHasNewline(run) {
		return
	}
	if len(run) == 1 && run[0].Tok.Kind == lexer.Space {
		return
	}

	if !m.fix {
		m.diag("space-missing", t.Tok.Bpos, t.Tok.Bpos, msg)
		return
	}

	for _, w := range run {
		m.remove(w)
	}
	m.insertAfter(t, lexer.Space, " ")
}

// nbspaceBefore requires exactly one space before t; in particular the
// token must not be first on its line.
func (m *Module) nbspaceBefore(t *Tok, sc scope, msg string) {
	if t == nil {
		return
	}
	t.IndLvl = sc.indlvl

	run := wsRunBefore(t)
	if len(run) == 1 && run[0].Tok.Kind == lexer.Space {
		return
	}

	if !m.fix {
		m.diag("space-missing", t.Tok.Bpos, t.Tok.Bpos, msg)
		return
	}

	for _, w := range run {
		m.remove(w)
	}
	m.insertBefore(t, lexer.Space, " ")
}
