package main

import (
	"fmt"
	"io"

	"github.com/ccheck-dev/ccheck/pkg/ast"
	"github.com/ccheck-dev/ccheck/pkg/input"
	"github.com/ccheck-dev/ccheck/pkg/lexer"
	"github.com/ccheck-dev/ccheck/pkg/parser"
)

// dumpToks prints the token stream of a file, one token per line, in
// the lexer's diagnostic form.
func dumpToks(w io.Writer, path string) error {
	src, err := input.OpenFile(path)
	if err != nil {
		return err
	}
	defer src.Close()

	l := lexer.New(src)
	for {
		tok, err := l.Next()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, lexer.Dump(tok)); err != nil {
			return err
		}
		if tok.Kind == lexer.EOF {
			return nil
		}
	}
}

// lexerSource adapts the lexer to the parser source interface for the
// plain dump, where no back-references are needed.
type lexerSource struct {
	l   *lexer.Lexer
	err error
}

func (s *lexerSource) Next() (lexer.Token, any) {
	tok, err := s.l.Next()
	if err != nil {
		s.err = err
		return lexer.Token{Kind: lexer.EOF}, nil
	}
	return tok, nil
}

// dumpAST parses a file and prints its syntax tree.
func dumpAST(w io.Writer, path string) error {
	src, err := input.OpenFile(path)
	if err != nil {
		return err
	}
	defer src.Close()

	ls := &lexerSource{l: lexer.New(src)}
	mod, err := parser.Parse(ls)
	if err != nil {
		return err
	}
	if ls.err != nil {
		return ls.err
	}

	return ast.Fprint(w, mod)
}
