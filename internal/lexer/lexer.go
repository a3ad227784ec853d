// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package lexer scans WCPS query text into tokens.
package lexer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"gopkg.microglot.org/wcps.go/internal/exc"
	"gopkg.microglot.org/wcps.go/internal/fs"
	"gopkg.microglot.org/wcps.go/internal/idl"
	"gopkg.microglot.org/wcps.go/internal/iter"
	"gopkg.microglot.org/wcps.go/internal/optional"
	"gopkg.microglot.org/wcps.go/internal/token"
)

var wcpsLexer = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Space", Pattern: `\s+`},
	{Name: "Float", Pattern: `\d+\.\d+(?:[eE][-+]?\d+)?|\d+[eE][-+]?\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Variable", Pattern: `\$[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Operator", Pattern: `!=|<=|>=|[-+*/=<>(),;:\[\]{}.]`},
})

var (
	symbols     = wcpsLexer.Symbols()
	symSpace    = symbols["Space"]
	symFloat    = symbols["Float"]
	symInt      = symbols["Int"]
	symString   = symbols["String"]
	symVariable = symbols["Variable"]
	symIdent    = symbols["Ident"]
	symOperator = symbols["Operator"]
)

// Lexer implements idl.Lexer for WCPS query files.
type Lexer struct {
	reporter exc.Reporter
}

var _ idl.Lexer = (*Lexer)(nil)

func New(reporter exc.Reporter) *Lexer {
	return &Lexer{reporter: reporter}
}

func (self *Lexer) Lex(ctx context.Context, f idl.File) (idl.LexerFile, error) {
	return &lexerFile{
		File:     f,
		reporter: self.reporter,
	}, nil
}

// LexString is a shortcut for lexing query text that did not come from a file.
// Space tokens are dropped.
func (self *Lexer) LexString(ctx context.Context, uri string, text string) (idl.Iterator[token.Token], error) {
	lf, err := self.Lex(ctx, fs.NewFileString(uri, text))
	if err != nil {
		return nil, err
	}
	tokens, err := lf.Tokens(ctx)
	if err != nil {
		return nil, err
	}
	return WithoutSpace(tokens), nil
}

// WithoutSpace filters space tokens out of a stream.
func WithoutSpace(tokens idl.Iterator[token.Token]) idl.Iterator[token.Token] {
	return iter.NewIteratorFilter(tokens, idl.Filter[token.Token](iter.FilterFunc[token.Token](func(ctx context.Context, t token.Token) bool {
		return t.Type != token.TypeSpace
	})))
}

type lexerFile struct {
	idl.File
	reporter exc.Reporter
}

func (self *lexerFile) Tokens(ctx context.Context) (idl.Iterator[token.Token], error) {
	b, err := self.File.Body(ctx)
	if err != nil {
		return nil, err
	}
	uri := self.File.Path(ctx)
	body := fs.NewBodyReader(ctx, b)
	lex, err := wcpsLexer.Lex(uri, body)
	if err != nil {
		_ = body.Close()
		return nil, lexErr(uri, err)
	}
	return &lexerFileTokens{
		uri:      uri,
		lex:      lex,
		body:     body,
		reporter: self.reporter,
	}, nil
}

func lexErr(uri string, err error) exc.Exception {
	var positioned interface {
		Position() plexer.Position
		Message() string
	}
	if errors.As(err, &positioned) {
		return exc.New(location(uri, positioned.Position()), exc.CodeLexError, positioned.Message())
	}
	return exc.Wrap(exc.Location{URI: uri}, exc.CodeLexError, err)
}

type lexerFileTokens struct {
	uri      string
	lex      plexer.Lexer
	body     io.Closer
	reporter exc.Reporter
	done     bool
}

func (self *lexerFileTokens) Next(ctx context.Context) optional.Optional[token.Token] {
	if self.done {
		return optional.None[token.Token]()
	}
	t, err := self.lex.Next()
	if err != nil {
		self.done = true
		_ = self.reporter.Report(lexErr(self.uri, err))
		return optional.None[token.Token]()
	}
	loc := location(self.uri, t.Pos).Location
	if t.EOF() {
		self.done = true
		return optional.Some(token.Token{Type: token.TypeEOF, Location: loc})
	}
	switch t.Type {
	case symSpace:
		return optional.Some(token.Token{Type: token.TypeSpace, Value: t.Value, Location: loc})
	case symFloat:
		return optional.Some(token.Token{Type: token.TypeFloat, Value: t.Value, Location: loc})
	case symInt:
		return optional.Some(token.Token{Type: token.TypeInteger, Value: t.Value, Location: loc})
	case symVariable:
		return optional.Some(token.Token{Type: token.TypeVariable, Value: t.Value, Location: loc})
	case symString:
		v, err := strconv.Unquote(t.Value)
		if err != nil {
			self.done = true
			e := exc.New(location(self.uri, t.Pos), exc.CodeInvalidLiteral, fmt.Sprintf("invalid string literal %s", t.Value))
			_ = self.reporter.Report(e)
			return optional.None[token.Token]()
		}
		return optional.Some(token.Token{Type: token.TypeString, Value: v, Location: loc})
	case symIdent:
		if kw, ok := token.LookupKeyword(t.Value); ok {
			return optional.Some(token.Token{Type: kw, Value: t.Value, Location: loc})
		}
		return optional.Some(token.Token{Type: token.TypeName, Value: t.Value, Location: loc})
	case symOperator:
		if sym, ok := token.LookupSymbol(t.Value); ok {
			return optional.Some(token.Token{Type: sym, Value: t.Value, Location: loc})
		}
	}
	self.done = true
	e := exc.New(location(self.uri, t.Pos), exc.CodeLexError, fmt.Sprintf("unexpected %q", t.Value))
	_ = self.reporter.Report(e)
	return optional.None[token.Token]()
}

func (self *lexerFileTokens) Close(ctx context.Context) error {
	return self.body.Close()
}

func location(uri string, pos plexer.Position) exc.Location {
	return exc.Location{
		URI: uri,
		Location: token.Location{
			Line:   pos.Line,
			Column: pos.Column,
			Offset: pos.Offset,
		},
	}
}
