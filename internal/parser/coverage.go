// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/wcps.go/internal/ast"
	"gopkg.microglot.org/wcps.go/internal/token"
)

func coverageBinary(op ast.Operator, left ast.CoverageExpr, right ast.CoverageExpr) ast.CoverageExpr {
	return &ast.CoverageBinary{Op: op, Left: left, Right: right}
}

// CoverageExpr = CoverageLogicTerm { ( or | xor ) CoverageLogicTerm } .
func (p *parser) parseCoverageExpr() ast.CoverageExpr {
	if !p.enter("coverageExpr") {
		return nil
	}
	defer p.leave()
	return binaryChain(p, orOperators, p.parseCoverageLogicTerm, coverageBinary)
}

// CoverageLogicTerm = CoverageComparison { and CoverageComparison } .
func (p *parser) parseCoverageLogicTerm() ast.CoverageExpr {
	return binaryChain(p, andOperators, p.parseCoverageComparison, coverageBinary)
}

// CoverageComparison = CoverageArithmetic [ CompOp CoverageArithmetic ] .
func (p *parser) parseCoverageComparison() ast.CoverageExpr {
	left := p.parseCoverageArithmetic()
	if left == nil {
		return nil
	}
	op, ok := comparisonOperators[p.peek().Type]
	if !ok {
		return left
	}
	mark := p.index()
	p.advance()
	right := p.parseCoverageArithmetic()
	if right == nil {
		if p.fatal != nil {
			return nil
		}
		p.rewind(mark)
		return left
	}
	return coverageBinary(op, left, right)
}

// CoverageArithmetic = CoverageTerm { ( "+" | "-" ) CoverageTerm } .
func (p *parser) parseCoverageArithmetic() ast.CoverageExpr {
	return binaryChain(p, additiveOperators, p.parseCoverageTerm, coverageBinary)
}

// CoverageTerm = CoverageOverlay { ( "*" | "/" ) CoverageOverlay } .
func (p *parser) parseCoverageTerm() ast.CoverageExpr {
	return binaryChain(p, multiplicativeOperators, p.parseCoverageOverlay, coverageBinary)
}

// CoverageOverlay = CoverageValue { overlay CoverageValue } .
func (p *parser) parseCoverageOverlay() ast.CoverageExpr {
	return binaryChain(p, overlayOperators, p.parseCoverageValue, coverageBinary)
}

// CoverageValue = SubsetExpr | UnaryInducedExpr | ScaleExpr | CrsTransformExpr | CoverageAtom .
func (p *parser) parseCoverageValue() ast.CoverageExpr {
	if !p.enter("coverageValue") {
		return nil
	}
	defer p.leave()
	switch p.peek().Type {
	case token.TypeKeywordScale:
		return p.parseScaleExpr()
	case token.TypeKeywordCrsTransform:
		return p.parseCrsTransformExpr()
	}
	return choice(p, "coverageValue",
		p.parseSubsetExpr,
		p.parseUnaryInducedExpr,
		p.parseCoverageAtom,
	)
}

// CoverageAtom = CoverageConstantExpr | CoverageConstructorExpr | SetMetaDataExpr
//
//	| RangeConstructorExpr | SwitchExpr | CoverageVariable | ScalarOperand
//	| "(" CoverageExpr ")" .
func (p *parser) parseCoverageAtom() ast.CoverageExpr {
	return memoize(p, "coverageAtom", func() ast.CoverageExpr {
		switch p.peek().Type {
		case token.TypeKeywordCoverage:
			return p.parseCoverageConstructor()
		case token.TypeKeywordSetIdentifier,
			token.TypeKeywordSetCrsSet,
			token.TypeKeywordSetNullSet,
			token.TypeKeywordSetInterpolationDefault,
			token.TypeKeywordSetInterpolationSet:
			return p.parseSetMetaDataExpr()
		case token.TypeKeywordStruct, token.TypeCurlyOpen:
			return p.parseRangeConstructor()
		case token.TypeKeywordSwitch:
			return p.parseSwitch()
		}
		return choice(p, "coverageAtom",
			p.parseCoverageVariable,
			p.parseCoverageScalar,
			p.parseCoverageParen,
		)
	})
}

// A name followed by "(" is a call, never a variable.
func (p *parser) parseCoverageVariable() ast.CoverageExpr {
	t := p.peek()
	if !t.Is(token.TypeVariable, token.TypeName) || p.peekN(1).Is(token.TypeParenOpen) {
		return nil
	}
	p.advance()
	return &ast.CoverageVariable{Name: t.Value}
}

func (p *parser) parseCoverageScalar() ast.CoverageExpr {
	scalar := scoped(p, false, p.parseScalarOperand)
	if scalar == nil {
		return nil
	}
	return &ast.CoverageScalar{Scalar: scalar}
}

func (p *parser) parseCoverageParen() ast.CoverageExpr {
	if _, ok := p.accept(token.TypeParenOpen); !ok {
		return nil
	}
	inner := p.parseCoverageExpr()
	if inner == nil {
		return nil
	}
	if _, ok := p.expect("coverageAtom", token.TypeParenClose); !ok {
		return nil
	}
	return &ast.CoverageParen{Inner: inner}
}

var inducedFunctions = map[token.Type]ast.Operator{
	token.TypeKeywordSqrt:   ast.OpSqrt,
	token.TypeKeywordAbs:    ast.OpAbs,
	token.TypeKeywordRe:     ast.OpRe,
	token.TypeKeywordIm:     ast.OpIm,
	token.TypeKeywordExp:    ast.OpExp,
	token.TypeKeywordLog:    ast.OpLog,
	token.TypeKeywordLn:     ast.OpLn,
	token.TypeKeywordSin:    ast.OpSin,
	token.TypeKeywordCos:    ast.OpCos,
	token.TypeKeywordTan:    ast.OpTan,
	token.TypeKeywordSinh:   ast.OpSinh,
	token.TypeKeywordCosh:   ast.OpCosh,
	token.TypeKeywordTanh:   ast.OpTanh,
	token.TypeKeywordArcsin: ast.OpArcsin,
	token.TypeKeywordArccos: ast.OpArccos,
	token.TypeKeywordArctan: ast.OpArctan,
}

// UnaryInducedExpr = FieldExpr | ( "+" | "-" ) CoverageAtom
//
//	| InducedFunction "(" CoverageExpr ")" | not CoverageExpr
//	| bit "(" CoverageExpr "," IndexExpr ")" | CastExpr .
func (p *parser) parseUnaryInducedExpr() ast.CoverageExpr {
	return choice(p, "unaryInducedExpr", p.parseFieldSelect, p.parseInducedOperation)
}

// FieldExpr = CoverageAtom "." FieldName .
func (p *parser) parseFieldSelect() ast.CoverageExpr {
	atom := p.parseCoverageAtom()
	if atom == nil {
		return nil
	}
	if _, ok := p.accept(token.TypeDot); !ok {
		return nil
	}
	t := p.peek()
	if !isName(t) && !t.Is(token.TypeInteger) {
		p.unexpected("fieldExpr", "name", token.TypeInteger.String())
		return nil
	}
	p.advance()
	return &ast.FieldSelect{Coverage: atom, Field: t.Value}
}

func (p *parser) parseInducedOperation() ast.CoverageExpr {
	t := p.peek()
	switch {
	case t.Is(token.TypePlus, token.TypeMinus):
		p.advance()
		operand := p.parseCoverageAtom()
		if operand == nil {
			return nil
		}
		op := ast.OpPlus
		if t.Type == token.TypeMinus {
			op = ast.OpMinus
		}
		return &ast.CoverageUnary{Op: op, Operand: operand}
	case t.Is(token.TypeKeywordNot):
		p.advance()
		operand := p.parseCoverageExpr()
		if operand == nil {
			return nil
		}
		return &ast.CoverageUnary{Op: ast.OpNot, Operand: operand}
	case t.Is(token.TypeKeywordBit):
		return p.parseBitSelect()
	case t.Is(token.TypeParenOpen) && isRangeType(p.peekN(1)):
		return p.parseCast()
	}
	op, ok := inducedFunctions[t.Type]
	if !ok {
		return nil
	}
	p.advance()
	operand := p.parseCallArgument("unaryInducedExpr")
	if operand == nil {
		return nil
	}
	return &ast.CoverageUnary{Op: op, Operand: operand}
}

// parseCallArgument parses "(" CoverageExpr ")".
func (p *parser) parseCallArgument(rule string) ast.CoverageExpr {
	if _, ok := p.expect(rule, token.TypeParenOpen); !ok {
		return nil
	}
	operand := p.parseCoverageExpr()
	if operand == nil {
		return nil
	}
	if _, ok := p.expect(rule, token.TypeParenClose); !ok {
		return nil
	}
	return operand
}

// BitExpr = bit "(" CoverageExpr "," IndexExpr ")" .
func (p *parser) parseBitSelect() ast.CoverageExpr {
	if _, ok := p.expect("bitExpr", token.TypeKeywordBit); !ok {
		return nil
	}
	if _, ok := p.expect("bitExpr", token.TypeParenOpen); !ok {
		return nil
	}
	coverage := p.parseCoverageExpr()
	if coverage == nil {
		return nil
	}
	if _, ok := p.expect("bitExpr", token.TypeComma); !ok {
		return nil
	}
	index := p.parseIndexExpr()
	if index == nil {
		return nil
	}
	if _, ok := p.expect("bitExpr", token.TypeParenClose); !ok {
		return nil
	}
	return &ast.BitSelect{Coverage: coverage, Index: index}
}

var rangeTypes = map[token.Type]ast.RangeType{
	token.TypeKeywordBoolean:  ast.RangeTypeBoolean,
	token.TypeKeywordChar:     ast.RangeTypeChar,
	token.TypeKeywordShort:    ast.RangeTypeShort,
	token.TypeKeywordInt:      ast.RangeTypeInt,
	token.TypeKeywordLong:     ast.RangeTypeLong,
	token.TypeKeywordFloat:    ast.RangeTypeFloat,
	token.TypeKeywordDouble:   ast.RangeTypeDouble,
	token.TypeKeywordComplex:  ast.RangeTypeComplex,
	token.TypeKeywordComplex2: ast.RangeTypeComplex2,
}

var unsignedRangeTypes = map[token.Type]ast.RangeType{
	token.TypeKeywordChar:  ast.RangeTypeUnsignedChar,
	token.TypeKeywordShort: ast.RangeTypeUnsignedShort,
	token.TypeKeywordInt:   ast.RangeTypeUnsignedInt,
	token.TypeKeywordLong:  ast.RangeTypeUnsignedLong,
}

func isRangeType(t token.Token) bool {
	_, ok := rangeTypes[t.Type]
	return ok || t.Is(token.TypeKeywordUnsigned)
}

// CastExpr = "(" RangeType ")" CoverageExpr .
// RangeType = boolean | char | short | int | long | float | double | complex
//
//	| complex2 | unsigned ( char | short | int | long ) .
func (p *parser) parseCast() ast.CoverageExpr {
	if _, ok := p.expect("castExpr", token.TypeParenOpen); !ok {
		return nil
	}
	var rangeType ast.RangeType
	if _, ok := p.accept(token.TypeKeywordUnsigned); ok {
		t, ok := p.expect("castExpr", token.TypeKeywordChar, token.TypeKeywordShort, token.TypeKeywordInt, token.TypeKeywordLong)
		if !ok {
			return nil
		}
		rangeType = unsignedRangeTypes[t.Type]
	} else {
		t := p.peek()
		typ, ok := rangeTypes[t.Type]
		if !ok {
			p.unexpected("castExpr", "range type")
			return nil
		}
		p.advance()
		rangeType = typ
	}
	if _, ok := p.expect("castExpr", token.TypeParenClose); !ok {
		return nil
	}
	operand := p.parseCoverageExpr()
	if operand == nil {
		return nil
	}
	return &ast.Cast{Type: rangeType, Operand: operand}
}

// ScaleExpr = scale "(" CoverageExpr "," "{" DimensionIntervalList "}" [ "," FieldInterpolationList ] ")" .
func (p *parser) parseScaleExpr() ast.CoverageExpr {
	if _, ok := p.accept(token.TypeKeywordScale); !ok {
		return nil
	}
	if _, ok := p.expect("scaleExpr", token.TypeParenOpen); !ok {
		return nil
	}
	coverage := p.parseCoverageExpr()
	if coverage == nil {
		return nil
	}
	if _, ok := p.expect("scaleExpr", token.TypeComma); !ok {
		return nil
	}
	intervals, ok := parseEnclosedList(p, "scaleExpr", token.TypeCurlyOpen, token.TypeComma, token.TypeCurlyClose, false, p.parseDimensionInterval)
	if !ok {
		return nil
	}
	this := ast.Scale{Coverage: coverage, Intervals: intervals}
	if _, ok := p.accept(token.TypeComma); ok {
		interpolations, ok := p.parseFieldInterpolationList("scaleExpr")
		if !ok {
			return nil
		}
		this.Interpolations = interpolations
	}
	if _, ok := p.expect("scaleExpr", token.TypeParenClose); !ok {
		return nil
	}
	return &this
}

// CrsTransformExpr = crsTransform "(" CoverageExpr "," "{" AxisCrs { "," AxisCrs } "}"
//
//	[ "," FieldInterpolationList ] ")" .
func (p *parser) parseCrsTransformExpr() ast.CoverageExpr {
	if _, ok := p.accept(token.TypeKeywordCrsTransform); !ok {
		return nil
	}
	if _, ok := p.expect("crsTransformExpr", token.TypeParenOpen); !ok {
		return nil
	}
	coverage := p.parseCoverageExpr()
	if coverage == nil {
		return nil
	}
	if _, ok := p.expect("crsTransformExpr", token.TypeComma); !ok {
		return nil
	}
	crs, ok := parseEnclosedList(p, "crsTransformExpr", token.TypeCurlyOpen, token.TypeComma, token.TypeCurlyClose, false, p.parseAxisCrs)
	if !ok {
		return nil
	}
	this := ast.CrsTransform{Coverage: coverage, Crs: crs}
	if _, ok := p.accept(token.TypeComma); ok {
		interpolations, ok := p.parseFieldInterpolationList("crsTransformExpr")
		if !ok {
			return nil
		}
		this.Interpolations = interpolations
	}
	if _, ok := p.expect("crsTransformExpr", token.TypeParenClose); !ok {
		return nil
	}
	return &this
}

// AxisCrs = AxisName ":" Crs .
func (p *parser) parseAxisCrs() (ast.AxisCrs, bool) {
	axis, ok := p.expectName("dimensionCrsElement")
	if !ok {
		return ast.AxisCrs{}, false
	}
	if _, ok := p.expect("dimensionCrsElement", token.TypeColon); !ok {
		return ast.AxisCrs{}, false
	}
	crs, ok := p.expectCrs("dimensionCrsElement")
	if !ok {
		return ast.AxisCrs{}, false
	}
	return ast.AxisCrs{Axis: axis, Crs: crs}, true
}

// FieldInterpolationList = "{" FieldName InterpolationMethod { "," FieldName InterpolationMethod } "}" .
func (p *parser) parseFieldInterpolationList(rule string) ([]ast.FieldInterpolation, bool) {
	return parseEnclosedList(p, rule, token.TypeCurlyOpen, token.TypeComma, token.TypeCurlyClose, false, func() (ast.FieldInterpolation, bool) {
		field, ok := p.expectName("fieldInterpolationElement")
		if !ok {
			return ast.FieldInterpolation{}, false
		}
		method, ok := p.parseInterpolationMethod()
		if !ok {
			return ast.FieldInterpolation{}, false
		}
		return ast.FieldInterpolation{Field: field, Method: method}, true
	})
}

// CoverageConstantExpr = coverage CoverageName over AxisIteratorList value list "<" Constant { ";" Constant } ">" .
// CoverageConstructorExpr = coverage CoverageName over AxisIteratorList values CoverageExpr .
func (p *parser) parseCoverageConstructor() ast.CoverageExpr {
	if _, ok := p.expect("coverageConstructorExpr", token.TypeKeywordCoverage); !ok {
		return nil
	}
	name, ok := p.expectIdentifier("coverageConstructorExpr")
	if !ok {
		return nil
	}
	if _, ok := p.expect("coverageConstructorExpr", token.TypeKeywordOver); !ok {
		return nil
	}
	iterators, ok := parseList(p, token.TypeComma, p.parseAxisIterator)
	if !ok {
		return nil
	}

	t, ok := p.expect("coverageConstructorExpr", token.TypeKeywordValue, token.TypeKeywordValues)
	if !ok {
		return nil
	}
	if t.Type == token.TypeKeywordValues {
		values := p.parseCoverageExpr()
		if values == nil {
			return nil
		}
		return &ast.CoverageConstructor{Name: name, Iterators: iterators, Values: values}
	}

	if _, ok := p.expect("coverageConstantExpr", token.TypeKeywordList); !ok {
		return nil
	}
	constants, ok := parseEnclosedList(p, "coverageConstantExpr", token.TypeLess, token.TypeSemicolon, token.TypeGreater, false, func() (ast.ScalarExpr, bool) {
		constant := p.parseConstant()
		return constant, constant != nil
	})
	if !ok {
		return nil
	}
	return &ast.CoverageConstant{Name: name, Iterators: iterators, Values: constants}
}

// RangeConstructorExpr = [ struct ] "{" FieldName ":" CoverageExpr { ";" FieldName ":" CoverageExpr } "}" .
func (p *parser) parseRangeConstructor() ast.CoverageExpr {
	_, _ = p.accept(token.TypeKeywordStruct)
	fields, ok := parseEnclosedList(p, "rangeConstructorExpr", token.TypeCurlyOpen, token.TypeSemicolon, token.TypeCurlyClose, false, func() (ast.RangeField, bool) {
		field, ok := p.expectName("rangeConstructorExpr")
		if !ok {
			return ast.RangeField{}, false
		}
		if _, ok := p.expect("rangeConstructorExpr", token.TypeColon); !ok {
			return ast.RangeField{}, false
		}
		value := p.parseCoverageExpr()
		if value == nil {
			return ast.RangeField{}, false
		}
		return ast.RangeField{Field: field, Value: value}, true
	})
	if !ok {
		return nil
	}
	return &ast.RangeConstructor{Fields: fields}
}

// SwitchExpr = switch SwitchCase { SwitchCase } default return CoverageExpr .
// SwitchCase = case CoverageExpr return CoverageExpr .
func (p *parser) parseSwitch() ast.CoverageExpr {
	if _, ok := p.expect("switchExpr", token.TypeKeywordSwitch); !ok {
		return nil
	}
	this := ast.Switch{}
	for {
		if _, ok := p.expect("switchExpr", token.TypeKeywordCase); !ok {
			return nil
		}
		condition := p.parseCoverageExpr()
		if condition == nil {
			return nil
		}
		if _, ok := p.expect("switchExpr", token.TypeKeywordReturn); !ok {
			return nil
		}
		result := p.parseCoverageExpr()
		if result == nil {
			return nil
		}
		this.Cases = append(this.Cases, ast.SwitchCase{Condition: condition, Result: result})
		if !p.peek().Is(token.TypeKeywordCase) {
			break
		}
	}
	if _, ok := p.expect("switchExpr", token.TypeKeywordDefault); !ok {
		return nil
	}
	if _, ok := p.expect("switchExpr", token.TypeKeywordReturn); !ok {
		return nil
	}
	fallback := p.parseCoverageExpr()
	if fallback == nil {
		return nil
	}
	this.Default = fallback
	return &this
}
