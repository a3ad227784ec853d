// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/wcps.go/internal/ast"
	"gopkg.microglot.org/wcps.go/internal/optional"
	"gopkg.microglot.org/wcps.go/internal/token"
)

// Request = ForClause [ WhereClause ] ReturnClause EOF .
func (p *parser) parseRequest() *ast.Request {
	maybeFor := p.parseForClause()
	if maybeFor == nil {
		return nil
	}
	this := ast.Request{For: maybeFor}

	if p.peek().Is(token.TypeKeywordWhere) {
		maybeWhere := p.parseWhereClause()
		if maybeWhere == nil {
			return nil
		}
		this.Where = maybeWhere
	}

	maybeReturn := p.parseReturnClause()
	if maybeReturn == nil {
		return nil
	}
	this.Return = maybeReturn

	if !p.peek().Is(token.TypeEOF) {
		p.unexpected("request", token.TypeEOF.String())
		return nil
	}
	return &this
}

// ForClause = for Binding { "," Binding } .
func (p *parser) parseForClause() *ast.ForClause {
	if _, ok := p.expect("forClause", token.TypeKeywordFor); !ok {
		return nil
	}
	bindings, ok := parseList(p, token.TypeComma, p.parseBinding)
	if !ok {
		return nil
	}
	return &ast.ForClause{Bindings: bindings}
}

// Binding = Variable in "(" CoverageName { "," CoverageName } ")" .
func (p *parser) parseBinding() (ast.Binding, bool) {
	variable, ok := p.expectVariable("forClause")
	if !ok {
		return ast.Binding{}, false
	}
	if _, ok := p.expect("forClause", token.TypeKeywordIn); !ok {
		return ast.Binding{}, false
	}
	coverages, ok := parseEnclosedList(p, "forClause", token.TypeParenOpen, token.TypeComma, token.TypeParenClose, false, func() (string, bool) {
		return p.expectIdentifier("forClause")
	})
	if !ok {
		return ast.Binding{}, false
	}
	return ast.Binding{Variable: variable, Coverages: coverages}, true
}

// WhereClause = where BooleanScalarExpr .
func (p *parser) parseWhereClause() *ast.WhereClause {
	if _, ok := p.expect("whereClause", token.TypeKeywordWhere); !ok {
		return nil
	}
	condition := scoped(p, true, p.parseBooleanScalarExpr)
	if condition == nil {
		return nil
	}
	return &ast.WhereClause{Condition: condition}
}

// ReturnClause = return ProcessingExpr .
func (p *parser) parseReturnClause() *ast.ReturnClause {
	if _, ok := p.expect("returnClause", token.TypeKeywordReturn); !ok {
		return nil
	}
	body := p.parseProcessingExpr()
	if body == nil {
		return nil
	}
	return &ast.ReturnClause{Body: body}
}

// ProcessingExpr = EncodedCoverageExpr | StoreExpr | ScalarExpr | CoverageExpr .
//
// A scalar only counts when it runs to the end of the query. Otherwise the
// same tokens are read again as a coverage expression.
func (p *parser) parseProcessingExpr() ast.ProcessingExpr {
	switch p.peek().Type {
	case token.TypeKeywordEncode:
		maybeEncode := p.parseEncode()
		if maybeEncode == nil {
			return nil
		}
		return maybeEncode
	case token.TypeKeywordStore:
		return p.parseStore()
	}

	start := p.index()
	scalar := p.parseScalarExpr()
	if scalar != nil && p.peek().Is(token.TypeEOF) {
		return &ast.ScalarResult{Scalar: scalar}
	}
	if p.fatal != nil {
		return nil
	}
	p.rewind(start)

	coverage := p.parseCoverageExpr()
	if coverage == nil {
		return nil
	}
	return &ast.CoverageResult{Coverage: coverage}
}

// EncodedCoverageExpr = encode "(" CoverageExpr "," String [ "," String ] ")" .
func (p *parser) parseEncode() *ast.Encode {
	if _, ok := p.expect("encode", token.TypeKeywordEncode); !ok {
		return nil
	}
	if _, ok := p.expect("encode", token.TypeParenOpen); !ok {
		return nil
	}
	coverage := p.parseCoverageExpr()
	if coverage == nil {
		return nil
	}
	if _, ok := p.expect("encode", token.TypeComma); !ok {
		return nil
	}
	format, ok := p.expect("encode", token.TypeString)
	if !ok {
		return nil
	}
	this := ast.Encode{
		Coverage: coverage,
		Format:   format.Value,
		Params:   optional.None[string](),
	}
	if _, ok := p.accept(token.TypeComma); ok {
		params, ok := p.expect("encode", token.TypeString)
		if !ok {
			return nil
		}
		this.Params = optional.Some(params.Value)
	}
	if _, ok := p.expect("encode", token.TypeParenClose); !ok {
		return nil
	}
	return &this
}

// StoreExpr = store "(" EncodedCoverageExpr ")" .
func (p *parser) parseStore() ast.ProcessingExpr {
	if _, ok := p.expect("store", token.TypeKeywordStore); !ok {
		return nil
	}
	if _, ok := p.expect("store", token.TypeParenOpen); !ok {
		return nil
	}
	maybeEncode := p.parseEncode()
	if maybeEncode == nil {
		return nil
	}
	if _, ok := p.expect("store", token.TypeParenClose); !ok {
		return nil
	}
	return &ast.Store{Encode: maybeEncode}
}
