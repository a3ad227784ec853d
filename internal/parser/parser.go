// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package parser builds a WCPS request tree from a token stream.
package parser

import (
	"context"

	"gopkg.microglot.org/wcps.go/internal/ast"
	"gopkg.microglot.org/wcps.go/internal/exc"
	"gopkg.microglot.org/wcps.go/internal/idl"
	"gopkg.microglot.org/wcps.go/internal/iter"
	"gopkg.microglot.org/wcps.go/internal/token"
)

// DefaultMaxDepth bounds rule nesting when WithMaxDepth is not given.
const DefaultMaxDepth = 256

type Option func(p *parser)

// WithMaxDepth sets how deeply rules may nest before parsing fails with
// exc.KindRecursionLimitExceeded. Values below one are ignored.
func WithMaxDepth(depth int) Option {
	return func(p *parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// Parse reads one complete request from the token stream. Space tokens are
// skipped. On failure the error is an *exc.ParseError describing the failure
// that reached furthest into the stream, or the context error if ctx is
// already done.
func Parse(ctx context.Context, tokens idl.Iterator[token.Token], opts ...Option) (*ast.Request, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filtered := iter.NewIteratorFilter(tokens, idl.Filter[token.Token](iter.FilterFunc[token.Token](func(ctx context.Context, t token.Token) bool {
		return t.Type != token.TypeSpace
	})))
	p := &parser{
		ctx:      ctx,
		tokens:   iter.NewBuffer(filtered),
		maxDepth: DefaultMaxDepth,
		memo:     make(map[memoKey]memoEntry),
	}
	for _, opt := range opts {
		opt(p)
	}
	defer p.tokens.Close(ctx)

	request := p.parseRequest()
	if request == nil {
		return nil, p.failure()
	}
	return request, nil
}

type parser struct {
	ctx      context.Context
	tokens   *iter.Buffer[token.Token]
	maxDepth int
	depth    int
	// vars is set where a bare name is read as a numeric variable: the where
	// clause, condense conditions, and subset bounds.
	vars bool
	memo map[memoKey]memoEntry
	// err is the failure that got furthest so far. fatal ends the parse
	// regardless of remaining alternatives.
	err   *exc.ParseError
	fatal *exc.ParseError
	// last is the location of the furthest token seen, used for the
	// synthetic EOF when the stream ends without one.
	last token.Location
}

func (p *parser) index() int {
	return p.tokens.Mark()
}

func (p *parser) rewind(mark int) {
	p.tokens.Rewind(mark)
}

func (p *parser) peekN(n int) token.Token {
	maybeToken := p.tokens.Peek(p.ctx, n)
	if !maybeToken.IsPresent() {
		return token.Token{Type: token.TypeEOF, Location: p.last}
	}
	t := maybeToken.Value()
	if t.Location.Offset > p.last.Offset {
		p.last = t.Location
	}
	return t
}

func (p *parser) peek() token.Token {
	return p.peekN(0)
}

// advance consumes the current token. The end of the stream is never
// consumed.
func (p *parser) advance() token.Token {
	t := p.peek()
	if t.Type != token.TypeEOF {
		_ = p.tokens.Next(p.ctx)
	}
	return t
}

// accept consumes the current token if it is one of the given types.
func (p *parser) accept(types ...token.Type) (token.Token, bool) {
	t := p.peek()
	if !t.Is(types...) {
		return t, false
	}
	p.advance()
	return t, true
}

// expect is accept that records an unexpected token failure for rule.
func (p *parser) expect(rule string, types ...token.Type) (token.Token, bool) {
	t, ok := p.accept(types...)
	if !ok {
		expected := make([]string, 0, len(types))
		for _, typ := range types {
			expected = append(expected, typ.String())
		}
		p.unexpected(rule, expected...)
	}
	return t, ok
}

// isName reports whether t can stand for an axis, field, or function name.
// Keywords qualify because axis and field names are not reserved.
func isName(t token.Token) bool {
	return t.Type == token.TypeName || t.Type.IsKeyword()
}

func (p *parser) expectName(rule string) (string, bool) {
	t := p.peek()
	if !isName(t) {
		p.unexpected(rule, "name")
		return "", false
	}
	p.advance()
	return t.Value, true
}

// expectIdentifier accepts only plain names. Coverage names are never
// keywords.
func (p *parser) expectIdentifier(rule string) (string, bool) {
	t, ok := p.expect(rule, token.TypeName)
	return t.Value, ok
}

// expectVariable accepts a $-prefixed variable or a plain name.
func (p *parser) expectVariable(rule string) (string, bool) {
	t, ok := p.expect(rule, token.TypeVariable, token.TypeName)
	return t.Value, ok
}

// expectCrs accepts a quoted CRS or a bare name and returns its text.
func (p *parser) expectCrs(rule string) (string, bool) {
	t, ok := p.expect(rule, token.TypeString, token.TypeName)
	return t.Value, ok
}

func (p *parser) enter(rule string) bool {
	if p.fatal != nil {
		return false
	}
	p.depth = p.depth + 1
	if p.depth > p.maxDepth {
		p.depth = p.depth - 1
		t := p.peek()
		p.fatal = &exc.ParseError{
			Kind:  exc.KindRecursionLimitExceeded,
			Rule:  rule,
			Found: t.String(),
			Index: p.index(),
			Depth: p.maxDepth,
			Pos:   exc.Location{Location: t.Location},
		}
		return false
	}
	return true
}

func (p *parser) leave() {
	p.depth = p.depth - 1
}

func (p *parser) record(kind exc.ParseErrorKind, rule string, expected []string, index int, found token.Token) {
	if p.fatal != nil {
		return
	}
	if p.err != nil && p.err.Index > index {
		return
	}
	if found.Type == token.TypeEOF && (kind == exc.KindUnexpectedToken || kind == exc.KindAllAlternativesFailed) {
		kind = exc.KindUnexpectedEndOfInput
	}
	p.err = &exc.ParseError{
		Kind:     kind,
		Rule:     rule,
		Expected: expected,
		Found:    found.String(),
		Index:    index,
		Pos:      exc.Location{Location: found.Location},
	}
}

func (p *parser) unexpected(rule string, expected ...string) {
	p.record(exc.KindUnexpectedToken, rule, expected, p.index(), p.peek())
}

// noAlternative records that no alternative of rule matched at start. A more
// specific failure at or beyond start is kept instead.
func (p *parser) noAlternative(rule string, start int) {
	if p.err != nil && p.err.Index >= start {
		return
	}
	p.rewind(start)
	p.record(exc.KindAllAlternativesFailed, rule, nil, start, p.peek())
}

// invalidLiteral stops the parse. A literal token that cannot be converted is
// not valid under any alternative.
func (p *parser) invalidLiteral(kind string, t token.Token) {
	if p.fatal != nil {
		return
	}
	p.fatal = &exc.ParseError{
		Kind:  exc.KindInvalidLiteral,
		Rule:  kind,
		Found: t.Value,
		Index: p.index(),
		Pos:   exc.Location{Location: t.Location},
	}
}

func (p *parser) failure() *exc.ParseError {
	if p.fatal != nil {
		return p.fatal
	}
	if p.err != nil {
		return p.err
	}
	t := p.peek()
	return &exc.ParseError{
		Kind:  exc.KindAllAlternativesFailed,
		Rule:  "request",
		Found: t.String(),
		Index: p.index(),
		Pos:   exc.Location{Location: t.Location},
	}
}

// scoped runs parse with variable reading switched to vars and restores the
// previous mode afterwards.
func scoped[N any](p *parser, vars bool, parse func() N) N {
	prev := p.vars
	p.vars = vars
	defer func() { p.vars = prev }()
	return parse()
}

// choice tries each alternative from the same position and keeps the first
// one that succeeds.
func choice[N ast.Node](p *parser, rule string, alternatives ...func() N) N {
	var zero N
	start := p.index()
	for _, alternative := range alternatives {
		node := alternative()
		if any(node) != nil {
			return node
		}
		if p.fatal != nil {
			return zero
		}
		p.rewind(start)
	}
	p.noAlternative(rule, start)
	return zero
}

// longest tries every alternative from the same position and keeps the one
// that consumed the most tokens. Earlier alternatives win ties.
func longest[N ast.Node](p *parser, rule string, alternatives ...func() N) N {
	var best N
	start := p.index()
	end := -1
	for _, alternative := range alternatives {
		p.rewind(start)
		node := alternative()
		if p.fatal != nil {
			var zero N
			return zero
		}
		if any(node) != nil && p.index() > end {
			best = node
			end = p.index()
		}
	}
	if end < 0 {
		p.noAlternative(rule, start)
		return best
	}
	p.rewind(end)
	return best
}

// binaryChain parses operand { operator operand } and folds to the left. An
// operator whose right operand does not parse is left in the stream.
func binaryChain[N ast.Node](p *parser, operators map[token.Type]ast.Operator, operand func() N, build func(op ast.Operator, left N, right N) N) N {
	var zero N
	left := operand()
	if any(left) == nil {
		return zero
	}
	for {
		op, ok := operators[p.peek().Type]
		if !ok {
			return left
		}
		mark := p.index()
		p.advance()
		right := operand()
		if any(right) == nil {
			if p.fatal != nil {
				return zero
			}
			p.rewind(mark)
			return left
		}
		left = build(op, left, right)
	}
}

var (
	orOperators = map[token.Type]ast.Operator{
		token.TypeKeywordOr:  ast.OpOr,
		token.TypeKeywordXor: ast.OpXor,
	}
	andOperators = map[token.Type]ast.Operator{
		token.TypeKeywordAnd: ast.OpAnd,
	}
	comparisonOperators = map[token.Type]ast.Operator{
		token.TypeEqual:        ast.OpEqual,
		token.TypeNotEqual:     ast.OpNotEqual,
		token.TypeLess:         ast.OpLess,
		token.TypeGreater:      ast.OpGreater,
		token.TypeLessEqual:    ast.OpLessEqual,
		token.TypeGreaterEqual: ast.OpGreaterEqual,
	}
	equalityOperators = map[token.Type]ast.Operator{
		token.TypeEqual:    ast.OpEqual,
		token.TypeNotEqual: ast.OpNotEqual,
	}
	additiveOperators = map[token.Type]ast.Operator{
		token.TypePlus:  ast.OpAdd,
		token.TypeMinus: ast.OpSub,
	}
	multiplicativeOperators = map[token.Type]ast.Operator{
		token.TypeStar:  ast.OpMul,
		token.TypeSlash: ast.OpDiv,
	}
	overlayOperators = map[token.Type]ast.Operator{
		token.TypeKeywordOverlay: ast.OpOverlay,
	}
)
