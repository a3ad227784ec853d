// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strconv"

	"gopkg.microglot.org/wcps.go/internal/ast"
	"gopkg.microglot.org/wcps.go/internal/token"
)

// ScalarExpr = MetaDataExpr | CondenseExpr | BooleanScalarExpr
//
//	| NumericScalarExpr | StringScalarExpr | "(" ScalarExpr ")" .
//
// All alternatives are attempted and the longest match wins, so that
// count(c) > 1 is a comparison rather than a condense followed by junk.
func (p *parser) parseScalarExpr() ast.ScalarExpr {
	if !p.enter("scalarExpr") {
		return nil
	}
	defer p.leave()
	return memoize(p, "scalarExpr", func() ast.ScalarExpr {
		return longest(p, "scalarExpr",
			p.parseMetaDataExpr,
			p.parseCondenseScalar,
			func() ast.ScalarExpr { return nilBoolean(p.parseBooleanScalarExpr()) },
			func() ast.ScalarExpr { return nilNumeric(p.parseNumericScalarExpr()) },
			func() ast.ScalarExpr { return nilString(p.parseStringScalar()) },
			p.parseScalarParen,
		)
	})
}

// The nil* helpers keep a failed family parse from turning into a non-nil
// ScalarExpr holding a nil family interface.
func nilBoolean(e ast.BooleanExpr) ast.ScalarExpr {
	if e == nil {
		return nil
	}
	return e
}

func nilNumeric(e ast.NumericExpr) ast.ScalarExpr {
	if e == nil {
		return nil
	}
	return e
}

func nilString(e ast.StringExpr) ast.ScalarExpr {
	if e == nil {
		return nil
	}
	return e
}

func (p *parser) parseScalarParen() ast.ScalarExpr {
	if _, ok := p.accept(token.TypeParenOpen); !ok {
		return nil
	}
	inner := p.parseScalarExpr()
	if inner == nil {
		return nil
	}
	if _, ok := p.expect("scalarExpr", token.TypeParenClose); !ok {
		return nil
	}
	return inner
}

// ScalarOperand is the scalar that may stand as a coverage atom.
//
// ScalarOperand = MetaDataExpr | CondenseExpr | true | false | String
//
//	| NumericScalarFactor | "(" ScalarExpr ")" .
func (p *parser) parseScalarOperand() ast.ScalarExpr {
	return memoize(p, "scalarOperand", func() ast.ScalarExpr {
		return choice(p, "scalarOperand",
			p.parseMetaDataExpr,
			p.parseCondenseScalar,
			func() ast.ScalarExpr { return nilBoolean(p.parseBooleanLiteral()) },
			func() ast.ScalarExpr { return nilString(p.parseStringLiteral()) },
			func() ast.ScalarExpr { return nilNumeric(p.parseNumericScalarFactor()) },
			p.parseScalarParen,
		)
	})
}

func booleanBinary(op ast.Operator, left ast.BooleanExpr, right ast.BooleanExpr) ast.BooleanExpr {
	return &ast.BooleanBinary{Op: op, Left: left, Right: right}
}

// BooleanScalarExpr = BooleanScalarTerm { ( or | xor ) BooleanScalarTerm } .
func (p *parser) parseBooleanScalarExpr() ast.BooleanExpr {
	if !p.enter("booleanScalarExpr") {
		return nil
	}
	defer p.leave()
	return memoize(p, "booleanScalarExpr", func() ast.BooleanExpr {
		return binaryChain(p, orOperators, p.parseBooleanScalarTerm, booleanBinary)
	})
}

// BooleanScalarTerm = BooleanScalarNegation { and BooleanScalarNegation } .
func (p *parser) parseBooleanScalarTerm() ast.BooleanExpr {
	return binaryChain(p, andOperators, p.parseBooleanScalarNegation, booleanBinary)
}

// BooleanScalarNegation = [ not ] BooleanScalarAtom .
func (p *parser) parseBooleanScalarNegation() ast.BooleanExpr {
	if _, ok := p.accept(token.TypeKeywordNot); ok {
		operand := p.parseBooleanScalarAtom()
		if operand == nil {
			return nil
		}
		return &ast.BooleanNot{Operand: operand}
	}
	return p.parseBooleanScalarAtom()
}

// BooleanScalarAtom = "(" BooleanScalarExpr ")" | StringScalarExpr ( "=" | "!=" ) StringScalarExpr
//
//	| NumericScalarExpr CompOp NumericScalarExpr | true | false .
func (p *parser) parseBooleanScalarAtom() ast.BooleanExpr {
	return choice(p, "booleanScalarAtom",
		p.parseBooleanParen,
		p.parseStringComparison,
		p.parseNumericComparison,
		p.parseBooleanLiteral,
	)
}

func (p *parser) parseBooleanParen() ast.BooleanExpr {
	if _, ok := p.accept(token.TypeParenOpen); !ok {
		return nil
	}
	inner := p.parseBooleanScalarExpr()
	if inner == nil {
		return nil
	}
	if _, ok := p.expect("booleanScalarAtom", token.TypeParenClose); !ok {
		return nil
	}
	return inner
}

func (p *parser) parseStringComparison() ast.BooleanExpr {
	left := p.parseStringScalar()
	if left == nil {
		return nil
	}
	op, ok := equalityOperators[p.peek().Type]
	if !ok {
		return nil
	}
	p.advance()
	right := p.parseStringScalar()
	if right == nil {
		return nil
	}
	return &ast.StringComparison{Op: op, Left: left, Right: right}
}

func (p *parser) parseNumericComparison() ast.BooleanExpr {
	left := p.parseNumericScalarExpr()
	if left == nil {
		return nil
	}
	op, ok := comparisonOperators[p.peek().Type]
	if !ok {
		return nil
	}
	p.advance()
	right := p.parseNumericScalarExpr()
	if right == nil {
		return nil
	}
	return &ast.NumericComparison{Op: op, Left: left, Right: right}
}

func (p *parser) parseBooleanLiteral() ast.BooleanExpr {
	t, ok := p.accept(token.TypeKeywordTrue, token.TypeKeywordFalse)
	if !ok {
		return nil
	}
	return &ast.BooleanLiteral{Value: t.Type == token.TypeKeywordTrue}
}

func numericBinary(op ast.Operator, left ast.NumericExpr, right ast.NumericExpr) ast.NumericExpr {
	return &ast.NumericBinary{Op: op, Left: left, Right: right}
}

// NumericScalarExpr = NumericScalarTerm { ( "+" | "-" ) NumericScalarTerm } .
func (p *parser) parseNumericScalarExpr() ast.NumericExpr {
	if !p.enter("numericScalarExpr") {
		return nil
	}
	defer p.leave()
	return memoize(p, "numericScalarExpr", func() ast.NumericExpr {
		return binaryChain(p, additiveOperators, p.parseNumericScalarTerm, numericBinary)
	})
}

// NumericScalarTerm = NumericScalarFactor { ( "*" | "/" ) NumericScalarFactor } .
func (p *parser) parseNumericScalarTerm() ast.NumericExpr {
	return binaryChain(p, multiplicativeOperators, p.parseNumericScalarFactor, numericBinary)
}

var numericFunctions = map[token.Type]ast.Operator{
	token.TypeKeywordAbs:   ast.OpAbs,
	token.TypeKeywordSqrt:  ast.OpSqrt,
	token.TypeKeywordRound: ast.OpRound,
}

// NumericScalarFactor = "(" NumericScalarExpr ")" | "-" NumericScalarFactor
//
//	| ( abs | sqrt | round ) "(" NumericScalarExpr ")" | Integer | Float
//	| ComplexConstant | CondenseExpr | Variable .
func (p *parser) parseNumericScalarFactor() ast.NumericExpr {
	if !p.enter("numericScalarFactor") {
		return nil
	}
	defer p.leave()
	return memoize(p, "numericScalarFactor", func() ast.NumericExpr {
		return choice(p, "numericScalarFactor",
			p.parseNumericParen,
			p.parseNumericNegation,
			p.parseNumericFunction,
			p.parseIntegerLiteral,
			p.parseFloatLiteral,
			p.parseComplexLiteral,
			p.parseCondenseNumeric,
			p.parseNumericVariable,
		)
	})
}

func (p *parser) parseNumericParen() ast.NumericExpr {
	if _, ok := p.accept(token.TypeParenOpen); !ok {
		return nil
	}
	inner := p.parseNumericScalarExpr()
	if inner == nil {
		return nil
	}
	if _, ok := p.expect("numericScalarFactor", token.TypeParenClose); !ok {
		return nil
	}
	return inner
}

func (p *parser) parseNumericNegation() ast.NumericExpr {
	if _, ok := p.accept(token.TypeMinus); !ok {
		return nil
	}
	operand := p.parseNumericScalarFactor()
	if operand == nil {
		return nil
	}
	return &ast.NumericUnary{Op: ast.OpMinus, Operand: operand}
}

func (p *parser) parseNumericFunction() ast.NumericExpr {
	op, ok := numericFunctions[p.peek().Type]
	if !ok {
		return nil
	}
	p.advance()
	if _, ok := p.expect("numericScalarFactor", token.TypeParenOpen); !ok {
		return nil
	}
	operand := p.parseNumericScalarExpr()
	if operand == nil {
		return nil
	}
	if _, ok := p.expect("numericScalarFactor", token.TypeParenClose); !ok {
		return nil
	}
	return &ast.NumericUnary{Op: op, Operand: operand}
}

func (p *parser) parseIntegerLiteral() ast.NumericExpr {
	value, ok := p.parseInteger()
	if !ok {
		return nil
	}
	return &ast.IntegerLiteral{Value: value}
}

func (p *parser) parseInteger() (int64, bool) {
	t := p.peek()
	if !t.Is(token.TypeInteger) {
		return 0, false
	}
	value, err := strconv.ParseInt(t.Value, 10, 64)
	if err != nil {
		p.invalidLiteral("integer", t)
		return 0, false
	}
	p.advance()
	return value, true
}

func (p *parser) parseFloatLiteral() ast.NumericExpr {
	t := p.peek()
	if !t.Is(token.TypeFloat) {
		return nil
	}
	value, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		p.invalidLiteral("float", t)
		return nil
	}
	p.advance()
	return &ast.FloatLiteral{Value: value}
}

// ComplexConstant = "(" RealNumber "," RealNumber ")" .
// RealNumber = [ "-" ] ( Integer | Float ) .
func (p *parser) parseComplexLiteral() ast.NumericExpr {
	if _, ok := p.accept(token.TypeParenOpen); !ok {
		return nil
	}
	re, ok := p.parseRealNumber()
	if !ok {
		return nil
	}
	if _, ok := p.expect("complexConstant", token.TypeComma); !ok {
		return nil
	}
	im, ok := p.parseRealNumber()
	if !ok {
		return nil
	}
	if _, ok := p.expect("complexConstant", token.TypeParenClose); !ok {
		return nil
	}
	return &ast.ComplexLiteral{Re: re, Im: im}
}

func (p *parser) parseRealNumber() (float64, bool) {
	sign := 1.0
	if _, ok := p.accept(token.TypeMinus); ok {
		sign = -1.0
	}
	t, ok := p.expect("complexConstant", token.TypeInteger, token.TypeFloat)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		p.invalidLiteral("number", t)
		return 0, false
	}
	return sign * value, true
}

func (p *parser) parseNumericVariable() ast.NumericExpr {
	t := p.peek()
	if !p.vars || !t.Is(token.TypeVariable, token.TypeName) || p.peekN(1).Is(token.TypeParenOpen) {
		return nil
	}
	p.advance()
	return &ast.NumericVariable{Name: t.Value}
}

// StringScalarExpr = String | GenericMetaDataCall .
func (p *parser) parseStringScalar() ast.StringExpr {
	if literal := p.parseStringLiteral(); literal != nil {
		return literal
	}
	t := p.peek()
	if !t.Is(token.TypeName, token.TypeKeywordIdentifier) || !p.peekN(1).Is(token.TypeParenOpen) {
		return nil
	}
	call := p.parseGenericCall()
	if call == nil {
		return nil
	}
	return call
}

func (p *parser) parseStringLiteral() ast.StringExpr {
	t, ok := p.accept(token.TypeString)
	if !ok {
		return nil
	}
	return &ast.StringLiteral{Value: t.Value}
}

// Constant = String | true | false | RealNumber | ComplexConstant .
func (p *parser) parseConstant() ast.ScalarExpr {
	t := p.peek()
	switch {
	case t.Is(token.TypeString):
		return nilString(p.parseStringLiteral())
	case t.Is(token.TypeKeywordTrue, token.TypeKeywordFalse):
		return nilBoolean(p.parseBooleanLiteral())
	case t.Is(token.TypeParenOpen):
		return nilNumeric(p.parseComplexLiteral())
	case t.Is(token.TypeMinus):
		p.advance()
		operand := p.parseUnsignedNumber()
		if operand == nil {
			return nil
		}
		return &ast.NumericUnary{Op: ast.OpMinus, Operand: operand}
	}
	return nilNumeric(p.parseUnsignedNumber())
}

func (p *parser) parseUnsignedNumber() ast.NumericExpr {
	switch p.peek().Type {
	case token.TypeInteger:
		return p.parseIntegerLiteral()
	case token.TypeFloat:
		return p.parseFloatLiteral()
	}
	p.unexpected("constant", token.TypeInteger.String(), token.TypeFloat.String())
	return nil
}

var reduceOperators = map[token.Type]ast.Operator{
	token.TypeKeywordAll:   ast.OpAll,
	token.TypeKeywordSome:  ast.OpSome,
	token.TypeKeywordCount: ast.OpCount,
	token.TypeKeywordAdd:   ast.OpSum,
	token.TypeKeywordAvg:   ast.OpAvg,
	token.TypeKeywordMin:   ast.OpMin,
	token.TypeKeywordMax:   ast.OpMax,
}

var condenseOperators = map[token.Type]ast.Operator{
	token.TypePlus:       ast.OpAdd,
	token.TypeStar:       ast.OpMul,
	token.TypeKeywordMax: ast.OpMax,
	token.TypeKeywordMin: ast.OpMin,
	token.TypeKeywordAnd: ast.OpAnd,
	token.TypeKeywordOr:  ast.OpOr,
}

func (p *parser) parseCondenseScalar() ast.ScalarExpr {
	return nilCondense(p.parseCondenseExpr())
}

func (p *parser) parseCondenseNumeric() ast.NumericExpr {
	condense := p.parseCondenseExpr()
	if condense == nil {
		return nil
	}
	return condense
}

func nilCondense(e ast.CondenseExpr) ast.ScalarExpr {
	if e == nil {
		return nil
	}
	return e
}

// CondenseExpr = ReduceExpr | GeneralCondenseExpr .
// ReduceExpr = ( all | some | count | add | avg | min | max ) "(" CoverageExpr ")" .
func (p *parser) parseCondenseExpr() ast.CondenseExpr {
	t := p.peek()
	if t.Is(token.TypeKeywordCondense) {
		return p.parseGeneralCondense()
	}
	op, ok := reduceOperators[t.Type]
	if !ok {
		return nil
	}
	p.advance()
	coverage := scoped(p, false, func() ast.CoverageExpr { return p.parseCallArgument("reduceExpr") })
	if coverage == nil {
		return nil
	}
	return &ast.Reduce{Op: op, Coverage: coverage}
}

// GeneralCondenseExpr = condense CondenseOp over AxisIteratorList [ where BooleanScalarExpr ] using CoverageExpr .
func (p *parser) parseGeneralCondense() ast.CondenseExpr {
	if _, ok := p.expect("generalCondenseExpr", token.TypeKeywordCondense); !ok {
		return nil
	}
	t := p.peek()
	op, ok := condenseOperators[t.Type]
	if !ok {
		p.unexpected("generalCondenseExpr", "+", "*", "max", "min", "and", "or")
		return nil
	}
	p.advance()
	if _, ok := p.expect("generalCondenseExpr", token.TypeKeywordOver); !ok {
		return nil
	}
	iterators, ok := parseList(p, token.TypeComma, p.parseAxisIterator)
	if !ok {
		return nil
	}
	this := ast.GeneralCondense{Op: op, Iterators: iterators}
	if _, ok := p.accept(token.TypeKeywordWhere); ok {
		where := scoped(p, true, p.parseBooleanScalarExpr)
		if where == nil {
			return nil
		}
		this.Where = where
	}
	if _, ok := p.expect("generalCondenseExpr", token.TypeKeywordUsing); !ok {
		return nil
	}
	using := scoped(p, false, p.parseCoverageExpr)
	if using == nil {
		return nil
	}
	this.Using = using
	return &this
}

// AxisIterator = Variable AxisName "(" ( IndexExpr ":" IndexExpr | imageCrsDomain "(" CoverageName "," AxisName ")" ) ")" .
func (p *parser) parseAxisIterator() (*ast.AxisIterator, bool) {
	variable, ok := p.expectVariable("axisIterator")
	if !ok {
		return nil, false
	}
	axis, ok := p.expectName("axisIterator")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect("axisIterator", token.TypeParenOpen); !ok {
		return nil, false
	}
	this := ast.AxisIterator{Variable: variable, Axis: axis}
	if _, ok := p.accept(token.TypeKeywordImageCrsDomain); ok {
		if _, ok := p.expect("axisIterator", token.TypeParenOpen); !ok {
			return nil, false
		}
		coverage, ok := p.expectVariable("axisIterator")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect("axisIterator", token.TypeComma); !ok {
			return nil, false
		}
		domainAxis, ok := p.expectName("axisIterator")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect("axisIterator", token.TypeParenClose); !ok {
			return nil, false
		}
		this.Domain = &ast.ImageDomainOf{Coverage: coverage, Axis: domainAxis}
	} else {
		lo := p.parseIndexExpr()
		if lo == nil {
			return nil, false
		}
		if _, ok := p.expect("axisIterator", token.TypeColon); !ok {
			return nil, false
		}
		hi := p.parseIndexExpr()
		if hi == nil {
			return nil, false
		}
		this.Domain = &ast.IndexInterval{Lo: lo, Hi: hi}
	}
	if _, ok := p.expect("axisIterator", token.TypeParenClose); !ok {
		return nil, false
	}
	return &this, true
}

func indexBinary(op ast.Operator, left ast.IndexExpr, right ast.IndexExpr) ast.IndexExpr {
	return &ast.IndexBinary{Op: op, Left: left, Right: right}
}

// IndexExpr = IndexTerm { ( "+" | "-" ) IndexTerm } .
func (p *parser) parseIndexExpr() ast.IndexExpr {
	if !p.enter("indexExpr") {
		return nil
	}
	defer p.leave()
	return binaryChain(p, additiveOperators, p.parseIndexTerm, indexBinary)
}

// IndexTerm = IndexFactor { ( "*" | "/" ) IndexFactor } .
func (p *parser) parseIndexTerm() ast.IndexExpr {
	return binaryChain(p, multiplicativeOperators, p.parseIndexFactor, indexBinary)
}

// IndexFactor = Integer | round "(" NumericScalarExpr ")" | "(" IndexExpr ")" .
func (p *parser) parseIndexFactor() ast.IndexExpr {
	t := p.peek()
	switch t.Type {
	case token.TypeInteger:
		value, ok := p.parseInteger()
		if !ok {
			return nil
		}
		return &ast.IndexLiteral{Value: value}
	case token.TypeKeywordRound:
		p.advance()
		if _, ok := p.expect("indexExpr", token.TypeParenOpen); !ok {
			return nil
		}
		operand := p.parseNumericScalarExpr()
		if operand == nil {
			return nil
		}
		if _, ok := p.expect("indexExpr", token.TypeParenClose); !ok {
			return nil
		}
		return &ast.IndexRound{Operand: operand}
	case token.TypeParenOpen:
		p.advance()
		inner := p.parseIndexExpr()
		if inner == nil {
			return nil
		}
		if _, ok := p.expect("indexExpr", token.TypeParenClose); !ok {
			return nil
		}
		return inner
	}
	p.unexpected("indexExpr", token.TypeInteger.String(), token.TypeKeywordRound.String(), token.TypeParenOpen.String())
	return nil
}
