// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/wcps.go/internal/ast"
	"gopkg.microglot.org/wcps.go/internal/optional"
	"gopkg.microglot.org/wcps.go/internal/token"
)

// SubsetExpr = TrimExpr | SliceExpr | ExtendExpr | CoverageAtom "[" DimensionElementList "]" { "[" DimensionElementList "]" } .
func (p *parser) parseSubsetExpr() ast.CoverageExpr {
	switch p.peek().Type {
	case token.TypeKeywordTrim:
		return p.parseTrim()
	case token.TypeKeywordSlice:
		return p.parseSlice()
	case token.TypeKeywordExtend:
		return p.parseExtend()
	}

	atom := p.parseCoverageAtom()
	if atom == nil {
		return nil
	}
	if !p.peek().Is(token.TypeSquareOpen) {
		return nil
	}
	var this ast.CoverageExpr = atom
	for p.peek().Is(token.TypeSquareOpen) {
		elements, ok := parseEnclosedList(p, "subsetExpr", token.TypeSquareOpen, token.TypeComma, token.TypeSquareClose, false, func() (ast.DimensionElement, bool) {
			element := p.parseDimensionElement()
			return element, element != nil
		})
		if !ok {
			return nil
		}
		this = classifySubset(this, elements)
	}
	return this
}

// classifySubset picks Trim when every element is an interval, Slice when
// every element is a point, and MixedSubset otherwise.
func classifySubset(target ast.CoverageExpr, elements []ast.DimensionElement) ast.CoverageExpr {
	intervals := make([]*ast.DimensionInterval, 0, len(elements))
	points := make([]*ast.DimensionPoint, 0, len(elements))
	for _, element := range elements {
		switch e := element.(type) {
		case *ast.DimensionInterval:
			intervals = append(intervals, e)
		case *ast.DimensionPoint:
			points = append(points, e)
		}
	}
	switch {
	case len(points) == 0:
		return &ast.Trim{Coverage: target, Intervals: intervals}
	case len(intervals) == 0:
		return &ast.Slice{Coverage: target, Points: points}
	default:
		return &ast.MixedSubset{Coverage: target, Elements: elements}
	}
}

// TrimExpr = trim "(" CoverageExpr "," "{" DimensionIntervalList "}" ")" .
func (p *parser) parseTrim() ast.CoverageExpr {
	coverage, intervals, ok := parseKeywordSubset(p, "trimExpr", token.TypeKeywordTrim, p.parseDimensionInterval)
	if !ok {
		return nil
	}
	return &ast.Trim{Coverage: coverage, Intervals: intervals}
}

// ExtendExpr = extend "(" CoverageExpr "," "{" DimensionIntervalList "}" ")" .
func (p *parser) parseExtend() ast.CoverageExpr {
	coverage, intervals, ok := parseKeywordSubset(p, "extendExpr", token.TypeKeywordExtend, p.parseDimensionInterval)
	if !ok {
		return nil
	}
	return &ast.Extend{Coverage: coverage, Intervals: intervals}
}

// SliceExpr = slice "(" CoverageExpr "," "{" DimensionPointList "}" ")" .
func (p *parser) parseSlice() ast.CoverageExpr {
	coverage, points, ok := parseKeywordSubset(p, "sliceExpr", token.TypeKeywordSlice, p.parseDimensionPoint)
	if !ok {
		return nil
	}
	return &ast.Slice{Coverage: coverage, Points: points}
}

// parseKeywordSubset reads keyword "(" CoverageExpr "," "{" element { "," element } "}" ")".
func parseKeywordSubset[T any](p *parser, rule string, keyword token.Type, element func() (T, bool)) (ast.CoverageExpr, []T, bool) {
	if _, ok := p.expect(rule, keyword); !ok {
		return nil, nil, false
	}
	if _, ok := p.expect(rule, token.TypeParenOpen); !ok {
		return nil, nil, false
	}
	coverage := p.parseCoverageExpr()
	if coverage == nil {
		return nil, nil, false
	}
	if _, ok := p.expect(rule, token.TypeComma); !ok {
		return nil, nil, false
	}
	elements, ok := parseEnclosedList(p, rule, token.TypeCurlyOpen, token.TypeComma, token.TypeCurlyClose, false, element)
	if !ok {
		return nil, nil, false
	}
	if _, ok := p.expect(rule, token.TypeParenClose); !ok {
		return nil, nil, false
	}
	return coverage, elements, true
}

type dimensionHead struct {
	axis string
	crs  optional.Optional[string]
}

// DimensionHead = AxisName [ ":" Crs ] "(" .
func (p *parser) parseDimensionHead() (dimensionHead, bool) {
	axis, ok := p.expectName("dimensionElement")
	if !ok {
		return dimensionHead{}, false
	}
	this := dimensionHead{axis: axis, crs: optional.None[string]()}
	if _, ok := p.accept(token.TypeColon); ok {
		crs, ok := p.expectCrs("dimensionElement")
		if !ok {
			return dimensionHead{}, false
		}
		this.crs = optional.Some(crs)
	}
	if _, ok := p.expect("dimensionElement", token.TypeParenOpen); !ok {
		return dimensionHead{}, false
	}
	return this, true
}

// DimensionIntervalTail = DimensionBound ":" DimensionBound ")" .
func (p *parser) parseIntervalTail(head dimensionHead) *ast.DimensionInterval {
	lo := p.parseDimensionBound()
	if lo == nil {
		return nil
	}
	if _, ok := p.expect("dimensionIntervalElement", token.TypeColon); !ok {
		return nil
	}
	hi := p.parseDimensionBound()
	if hi == nil {
		return nil
	}
	if _, ok := p.expect("dimensionIntervalElement", token.TypeParenClose); !ok {
		return nil
	}
	return &ast.DimensionInterval{Axis: head.axis, Crs: head.crs, Lo: lo, Hi: hi}
}

// DimensionPointTail = DimensionBound ")" .
func (p *parser) parsePointTail(head dimensionHead) *ast.DimensionPoint {
	value := p.parseDimensionBound()
	if value == nil {
		return nil
	}
	if _, ok := p.expect("dimensionPointElement", token.TypeParenClose); !ok {
		return nil
	}
	return &ast.DimensionPoint{Axis: head.axis, Crs: head.crs, Value: value}
}

// DimensionIntervalElement = DimensionHead DimensionIntervalTail .
func (p *parser) parseDimensionInterval() (*ast.DimensionInterval, bool) {
	head, ok := p.parseDimensionHead()
	if !ok {
		return nil, false
	}
	interval := p.parseIntervalTail(head)
	return interval, interval != nil
}

// DimensionPointElement = DimensionHead DimensionPointTail .
func (p *parser) parseDimensionPoint() (*ast.DimensionPoint, bool) {
	head, ok := p.parseDimensionHead()
	if !ok {
		return nil, false
	}
	point := p.parsePointTail(head)
	return point, point != nil
}

// DimensionElement = DimensionHead ( DimensionIntervalTail | DimensionPointTail ) .
//
// The interval tail is tried first. When it fails the stream returns to just
// after "(" and the point tail is read instead.
func (p *parser) parseDimensionElement() ast.DimensionElement {
	head, ok := p.parseDimensionHead()
	if !ok {
		return nil
	}
	mark := p.index()
	if interval := p.parseIntervalTail(head); interval != nil {
		return interval
	}
	if p.fatal != nil {
		return nil
	}
	p.rewind(mark)
	if point := p.parsePointTail(head); point != nil {
		return point
	}
	return nil
}

// DimensionBound = domain "(" CoverageName ":" AxisName ":" Crs ")" | ScalarExpr .
func (p *parser) parseDimensionBound() ast.DimensionBound {
	start := p.index()
	if p.peek().Is(token.TypeKeywordDomain) {
		if domain := p.parseDomainOf(); domain != nil {
			return domain
		}
		if p.fatal != nil {
			return nil
		}
		p.rewind(start)
	}
	scalar := scoped(p, true, p.parseScalarExpr)
	if scalar == nil {
		return nil
	}
	return &ast.ScalarBound{Scalar: scalar}
}

func (p *parser) parseDomainOf() *ast.DomainOf {
	if _, ok := p.expect("domainOf", token.TypeKeywordDomain); !ok {
		return nil
	}
	if _, ok := p.expect("domainOf", token.TypeParenOpen); !ok {
		return nil
	}
	coverage, ok := p.expectVariable("domainOf")
	if !ok {
		return nil
	}
	if _, ok := p.expect("domainOf", token.TypeColon); !ok {
		return nil
	}
	axis, ok := p.expectName("domainOf")
	if !ok {
		return nil
	}
	if _, ok := p.expect("domainOf", token.TypeColon); !ok {
		return nil
	}
	crs, ok := p.expectCrs("domainOf")
	if !ok {
		return nil
	}
	if _, ok := p.expect("domainOf", token.TypeParenClose); !ok {
		return nil
	}
	return &ast.DomainOf{Coverage: coverage, Axis: axis, Crs: crs}
}
