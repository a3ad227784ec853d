// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/wcps.go/internal/ast"
	"gopkg.microglot.org/wcps.go/internal/optional"
	"gopkg.microglot.org/wcps.go/internal/token"
)

// MetaDataExpr = identifier "(" CoverageExpr ")" | Name "(" CoverageExpr ")"
//
//	| imageCrs "(" CoverageExpr ")" | imageCrsDomain "(" CoverageExpr [ "," AxisName ] ")"
//	| crsSet "(" CoverageExpr ")" | nullSet "(" CoverageExpr ")"
//	| domain "(" Variable "," AxisName "," Crs ")"
//	| ( interpolationDefault | interpolationSet ) "(" CoverageExpr "," FieldName ")" .
func (p *parser) parseMetaDataExpr() ast.ScalarExpr {
	t := p.peek()
	switch t.Type {
	case token.TypeKeywordImageCrs:
		p.advance()
		coverage := p.parseCallArgument("metaDataExpr")
		if coverage == nil {
			return nil
		}
		return &ast.ImageCrs{Coverage: coverage}
	case token.TypeKeywordImageCrsDomain:
		return p.parseImageCrsDomain()
	case token.TypeKeywordCrsSet:
		p.advance()
		coverage := p.parseCallArgument("metaDataExpr")
		if coverage == nil {
			return nil
		}
		return &ast.CrsSet{Coverage: coverage}
	case token.TypeKeywordNullSet:
		p.advance()
		coverage := p.parseCallArgument("metaDataExpr")
		if coverage == nil {
			return nil
		}
		return &ast.NullSet{Coverage: coverage}
	case token.TypeKeywordDomain:
		return p.parseDomain()
	case token.TypeKeywordInterpolationDefault, token.TypeKeywordInterpolationSet:
		return p.parseInterpolationQuery()
	case token.TypeKeywordIdentifier, token.TypeName:
		if !p.peekN(1).Is(token.TypeParenOpen) {
			return nil
		}
		call := p.parseGenericCall()
		if call == nil {
			return nil
		}
		return call
	}
	return nil
}

// GenericMetaDataCall = ( identifier | Name ) "(" CoverageExpr ")" .
func (p *parser) parseGenericCall() *ast.GenericCall {
	t, ok := p.expect("metaDataExpr", token.TypeKeywordIdentifier, token.TypeName)
	if !ok {
		return nil
	}
	coverage := scoped(p, false, func() ast.CoverageExpr { return p.parseCallArgument("metaDataExpr") })
	if coverage == nil {
		return nil
	}
	return &ast.GenericCall{Name: t.Value, Coverage: coverage}
}

func (p *parser) parseImageCrsDomain() ast.ScalarExpr {
	if _, ok := p.expect("metaDataExpr", token.TypeKeywordImageCrsDomain); !ok {
		return nil
	}
	if _, ok := p.expect("metaDataExpr", token.TypeParenOpen); !ok {
		return nil
	}
	coverage := p.parseCoverageExpr()
	if coverage == nil {
		return nil
	}
	this := ast.ImageCrsDomain{Coverage: coverage, Axis: optional.None[string]()}
	if _, ok := p.accept(token.TypeComma); ok {
		axis, ok := p.expectName("metaDataExpr")
		if !ok {
			return nil
		}
		this.Axis = optional.Some(axis)
	}
	if _, ok := p.expect("metaDataExpr", token.TypeParenClose); !ok {
		return nil
	}
	return &this
}

func (p *parser) parseDomain() ast.ScalarExpr {
	if _, ok := p.expect("metaDataExpr", token.TypeKeywordDomain); !ok {
		return nil
	}
	if _, ok := p.expect("metaDataExpr", token.TypeParenOpen); !ok {
		return nil
	}
	variable, ok := p.expectVariable("metaDataExpr")
	if !ok {
		return nil
	}
	if _, ok := p.expect("metaDataExpr", token.TypeComma); !ok {
		return nil
	}
	axis, ok := p.expectName("metaDataExpr")
	if !ok {
		return nil
	}
	if _, ok := p.expect("metaDataExpr", token.TypeComma); !ok {
		return nil
	}
	crs, ok := p.expectCrs("metaDataExpr")
	if !ok {
		return nil
	}
	if _, ok := p.expect("metaDataExpr", token.TypeParenClose); !ok {
		return nil
	}
	return &ast.Domain{Variable: variable, Axis: axis, Crs: crs}
}

func (p *parser) parseInterpolationQuery() ast.ScalarExpr {
	t, ok := p.expect("metaDataExpr", token.TypeKeywordInterpolationDefault, token.TypeKeywordInterpolationSet)
	if !ok {
		return nil
	}
	if _, ok := p.expect("metaDataExpr", token.TypeParenOpen); !ok {
		return nil
	}
	coverage := p.parseCoverageExpr()
	if coverage == nil {
		return nil
	}
	if _, ok := p.expect("metaDataExpr", token.TypeComma); !ok {
		return nil
	}
	field, ok := p.expectName("metaDataExpr")
	if !ok {
		return nil
	}
	if _, ok := p.expect("metaDataExpr", token.TypeParenClose); !ok {
		return nil
	}
	if t.Type == token.TypeKeywordInterpolationDefault {
		return &ast.InterpolationDefault{Coverage: coverage, Field: field}
	}
	return &ast.InterpolationSet{Coverage: coverage, Field: field}
}

// SetMetaDataExpr = setIdentifier "(" String "," CoverageExpr ")"
//
//	| setCrsSet "(" CoverageExpr "," "{" [ Crs { "," Crs } ] "}" ")"
//	| setNullSet "(" CoverageExpr "," "{" [ RangeExpr { "," RangeExpr } ] "}" ")"
//	| setInterpolationDefault "(" CoverageExpr "," FieldName "," InterpolationMethod ")"
//	| setInterpolationSet "(" CoverageExpr "," FieldName "," "{" [ InterpolationMethod { "," InterpolationMethod } ] "}" ")" .
func (p *parser) parseSetMetaDataExpr() ast.CoverageExpr {
	t := p.advance()
	if _, ok := p.expect("setMetaDataExpr", token.TypeParenOpen); !ok {
		return nil
	}

	if t.Type == token.TypeKeywordSetIdentifier {
		value, ok := p.expect("setMetaDataExpr", token.TypeString)
		if !ok {
			return nil
		}
		if _, ok := p.expect("setMetaDataExpr", token.TypeComma); !ok {
			return nil
		}
		coverage := p.parseCoverageExpr()
		if coverage == nil {
			return nil
		}
		if _, ok := p.expect("setMetaDataExpr", token.TypeParenClose); !ok {
			return nil
		}
		return &ast.SetIdentifier{Value: value.Value, Coverage: coverage}
	}

	coverage := p.parseCoverageExpr()
	if coverage == nil {
		return nil
	}
	if _, ok := p.expect("setMetaDataExpr", token.TypeComma); !ok {
		return nil
	}

	var this ast.CoverageExpr
	switch t.Type {
	case token.TypeKeywordSetCrsSet:
		crs, ok := parseEnclosedList(p, "crsList", token.TypeCurlyOpen, token.TypeComma, token.TypeCurlyClose, true, func() (string, bool) {
			return p.expectCrs("crsList")
		})
		if !ok {
			return nil
		}
		this = &ast.SetCrsSet{Coverage: coverage, Crs: crs}
	case token.TypeKeywordSetNullSet:
		values, ok := parseEnclosedList(p, "rangeExprList", token.TypeCurlyOpen, token.TypeComma, token.TypeCurlyClose, true, p.parseRangeExpr)
		if !ok {
			return nil
		}
		this = &ast.SetNullSet{Coverage: coverage, Values: values}
	case token.TypeKeywordSetInterpolationDefault:
		field, ok := p.expectName("setMetaDataExpr")
		if !ok {
			return nil
		}
		if _, ok := p.expect("setMetaDataExpr", token.TypeComma); !ok {
			return nil
		}
		method, ok := p.parseInterpolationMethod()
		if !ok {
			return nil
		}
		this = &ast.SetInterpolationDefault{Coverage: coverage, Field: field, Method: method}
	case token.TypeKeywordSetInterpolationSet:
		field, ok := p.expectName("setMetaDataExpr")
		if !ok {
			return nil
		}
		if _, ok := p.expect("setMetaDataExpr", token.TypeComma); !ok {
			return nil
		}
		methods, ok := parseEnclosedList(p, "interpolationMethodList", token.TypeCurlyOpen, token.TypeComma, token.TypeCurlyClose, true, p.parseInterpolationMethod)
		if !ok {
			return nil
		}
		this = &ast.SetInterpolationSet{Coverage: coverage, Field: field, Methods: methods}
	default:
		return nil
	}

	if _, ok := p.expect("setMetaDataExpr", token.TypeParenClose); !ok {
		return nil
	}
	return this
}

// RangeExpr = struct "{" FieldName ":" ScalarExpr { ";" FieldName ":" ScalarExpr } "}" | ScalarExpr .
func (p *parser) parseRangeExpr() (ast.RangeExpr, bool) {
	if !p.peek().Is(token.TypeKeywordStruct) {
		scalar := p.parseScalarExpr()
		if scalar == nil {
			return nil, false
		}
		return &ast.RangeScalar{Scalar: scalar}, true
	}
	p.advance()
	fields, ok := parseEnclosedList(p, "rangeExpr", token.TypeCurlyOpen, token.TypeSemicolon, token.TypeCurlyClose, false, func() (ast.RangeValue, bool) {
		field, ok := p.expectName("rangeExpr")
		if !ok {
			return ast.RangeValue{}, false
		}
		if _, ok := p.expect("rangeExpr", token.TypeColon); !ok {
			return ast.RangeValue{}, false
		}
		value := p.parseScalarExpr()
		if value == nil {
			return ast.RangeValue{}, false
		}
		return ast.RangeValue{Field: field, Value: value}, true
	})
	if !ok {
		return nil, false
	}
	return &ast.RangeStruct{Fields: fields}, true
}

var interpolationTypes = map[token.Type]ast.InterpolationType{
	token.TypeKeywordNearest:   ast.InterpolationNearest,
	token.TypeKeywordLinear:    ast.InterpolationLinear,
	token.TypeKeywordQuadratic: ast.InterpolationQuadratic,
	token.TypeKeywordCubic:     ast.InterpolationCubic,
}

var nullResistances = map[token.Type]ast.NullResistance{
	token.TypeKeywordFull:  ast.NullResistanceFull,
	token.TypeKeywordNone:  ast.NullResistanceNone,
	token.TypeKeywordHalf:  ast.NullResistanceHalf,
	token.TypeKeywordOther: ast.NullResistanceOther,
}

// InterpolationMethod = "(" InterpolationType ":" NullResistance ")" .
func (p *parser) parseInterpolationMethod() (ast.InterpolationMethod, bool) {
	if _, ok := p.expect("interpolationMethod", token.TypeParenOpen); !ok {
		return ast.InterpolationMethod{}, false
	}
	t, ok := p.expect("interpolationMethod", token.TypeKeywordNearest, token.TypeKeywordLinear, token.TypeKeywordQuadratic, token.TypeKeywordCubic)
	if !ok {
		return ast.InterpolationMethod{}, false
	}
	if _, ok := p.expect("interpolationMethod", token.TypeColon); !ok {
		return ast.InterpolationMethod{}, false
	}
	r, ok := p.expect("interpolationMethod", token.TypeKeywordFull, token.TypeKeywordNone, token.TypeKeywordHalf, token.TypeKeywordOther)
	if !ok {
		return ast.InterpolationMethod{}, false
	}
	if _, ok := p.expect("interpolationMethod", token.TypeParenClose); !ok {
		return ast.InterpolationMethod{}, false
	}
	return ast.InterpolationMethod{Type: interpolationTypes[t.Type], Resistance: nullResistances[r.Type]}, true
}
