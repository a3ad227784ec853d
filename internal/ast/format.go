// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a request in canonical query syntax. Parsing the result
// produces a tree equal to the one given.
func Format(r *Request) string {
	p := &printer{}
	p.request(r)
	return p.String()
}

// FormatCoverage renders a single coverage expression.
func FormatCoverage(e CoverageExpr) string {
	p := &printer{}
	p.coverage(e)
	return p.String()
}

// FormatScalar renders a single scalar expression.
func FormatScalar(e ScalarExpr) string {
	p := &printer{}
	p.scalar(e)
	return p.String()
}

type printer struct {
	strings.Builder
}

func (p *printer) w(parts ...string) {
	for _, part := range parts {
		p.WriteString(part)
	}
}

func (p *printer) quote(s string) {
	p.w(strconv.Quote(s))
}

func (p *printer) request(r *Request) {
	p.w("for ")
	for offset, b := range r.For.Bindings {
		if offset > 0 {
			p.w(", ")
		}
		p.w(b.Variable, " in (", strings.Join(b.Coverages, ", "), ")")
	}
	if r.Where != nil {
		p.w(" where ")
		p.scalar(r.Where.Condition)
	}
	p.w(" return ")
	p.processing(r.Return.Body)
}

func (p *printer) processing(e ProcessingExpr) {
	switch n := e.(type) {
	case *Encode:
		p.encode(n)
	case *Store:
		p.w("store(")
		p.encode(n.Encode)
		p.w(")")
	case *ScalarResult:
		p.scalar(n.Scalar)
	case *CoverageResult:
		p.coverage(n.Coverage)
	default:
		panic(fmt.Sprintf("unknown processing expression %T", e))
	}
}

func (p *printer) encode(n *Encode) {
	p.w("encode(")
	p.coverage(n.Coverage)
	p.w(", ")
	p.quote(n.Format)
	if n.Params.IsPresent() {
		p.w(", ")
		p.quote(n.Params.Value())
	}
	p.w(")")
}

// bracketTarget reports whether a subset target can be written directly in
// front of "[" without changing how the result parses.
func bracketTarget(e CoverageExpr) bool {
	switch e.(type) {
	case *CoverageVariable, *CoverageParen, *CoverageScalar, *CoverageConstant, *RangeConstructor, SetMetaDataExpr:
		return true
	default:
		return false
	}
}

// delimited reports whether a scalar can stand in coverage position without
// parentheses.
func delimited(e ScalarExpr) bool {
	switch n := e.(type) {
	case *IntegerLiteral, *FloatLiteral, *ComplexLiteral, *BooleanLiteral, *StringLiteral, *NumericVariable, *Reduce, MetaDataExpr:
		return true
	case *NumericUnary:
		return n.Op.IsFunction()
	default:
		return false
	}
}

func (p *printer) coverage(e CoverageExpr) {
	switch n := e.(type) {
	case *CoverageBinary:
		p.coverage(n.Left)
		p.w(" ", n.Op.String(), " ")
		p.coverage(n.Right)
	case *CoverageUnary:
		switch {
		case n.Op == OpPlus || n.Op == OpMinus:
			p.w(n.Op.String())
			p.coverage(n.Operand)
		case n.Op == OpNot:
			p.w("not ")
			p.coverage(n.Operand)
		default:
			p.w(n.Op.String(), "(")
			p.coverage(n.Operand)
			p.w(")")
		}
	case *CoverageVariable:
		p.w(n.Name)
	case *CoverageParen:
		p.w("(")
		p.coverage(n.Inner)
		p.w(")")
	case *CoverageScalar:
		if delimited(n.Scalar) {
			p.scalar(n.Scalar)
			return
		}
		p.w("(")
		p.scalar(n.Scalar)
		p.w(")")
	case *CoverageConstant:
		p.w("coverage ", n.Name, " over ")
		p.iterators(n.Iterators)
		p.w(" value list <")
		for offset, v := range n.Values {
			if offset > 0 {
				p.w("; ")
			}
			p.scalar(v)
		}
		p.w(">")
	case *CoverageConstructor:
		p.w("coverage ", n.Name, " over ")
		p.iterators(n.Iterators)
		p.w(" values ")
		p.coverage(n.Values)
	case *RangeConstructor:
		p.w("struct {")
		for offset, f := range n.Fields {
			if offset > 0 {
				p.w(";")
			}
			p.w(" ", f.Field, ": ")
			p.coverage(f.Value)
		}
		p.w(" }")
	case *Cast:
		p.w("(", n.Type.String(), ") ")
		p.coverage(n.Operand)
	case *FieldSelect:
		p.coverage(n.Coverage)
		p.w(".", n.Field)
	case *BitSelect:
		p.w("bit(")
		p.coverage(n.Coverage)
		p.w(", ")
		p.index(n.Index)
		p.w(")")
	case *Scale:
		p.w("scale(")
		p.coverage(n.Coverage)
		p.w(", {")
		p.intervals(n.Intervals)
		p.w("}")
		p.fieldInterpolations(n.Interpolations)
		p.w(")")
	case *CrsTransform:
		p.w("crsTransform(")
		p.coverage(n.Coverage)
		p.w(", {")
		for offset, ac := range n.Crs {
			if offset > 0 {
				p.w(", ")
			}
			p.w(ac.Axis, ":")
			p.quote(ac.Crs)
		}
		p.w("}")
		p.fieldInterpolations(n.Interpolations)
		p.w(")")
	case *Switch:
		p.w("switch")
		for _, c := range n.Cases {
			p.w(" case ")
			p.coverage(c.Condition)
			p.w(" return ")
			p.coverage(c.Result)
		}
		p.w(" default return ")
		p.coverage(n.Default)
	case *Trim:
		p.subset("trim", n.Coverage, func() { p.intervals(n.Intervals) })
	case *Slice:
		p.subset("slice", n.Coverage, func() { p.points(n.Points) })
	case *Extend:
		p.w("extend(")
		p.coverage(n.Coverage)
		p.w(", {")
		p.intervals(n.Intervals)
		p.w("})")
	case *MixedSubset:
		p.coverage(n.Coverage)
		p.w("[")
		for offset, el := range n.Elements {
			if offset > 0 {
				p.w(", ")
			}
			p.dimensionElement(el)
		}
		p.w("]")
	case *SetIdentifier:
		p.w("setIdentifier(")
		p.quote(n.Value)
		p.w(", ")
		p.coverage(n.Coverage)
		p.w(")")
	case *SetCrsSet:
		p.w("setCrsSet(")
		p.coverage(n.Coverage)
		p.w(", {")
		for offset, crs := range n.Crs {
			if offset > 0 {
				p.w(", ")
			}
			p.quote(crs)
		}
		p.w("})")
	case *SetNullSet:
		p.w("setNullSet(")
		p.coverage(n.Coverage)
		p.w(", {")
		for offset, v := range n.Values {
			if offset > 0 {
				p.w(", ")
			}
			p.rangeExpr(v)
		}
		p.w("})")
	case *SetInterpolationDefault:
		p.w("setInterpolationDefault(")
		p.coverage(n.Coverage)
		p.w(", ", n.Field, ", ")
		p.method(n.Method)
		p.w(")")
	case *SetInterpolationSet:
		p.w("setInterpolationSet(")
		p.coverage(n.Coverage)
		p.w(", ", n.Field, ", {")
		for offset, m := range n.Methods {
			if offset > 0 {
				p.w(", ")
			}
			p.method(m)
		}
		p.w("})")
	default:
		panic(fmt.Sprintf("unknown coverage expression %T", e))
	}
}

func (p *printer) subset(keyword string, target CoverageExpr, elements func()) {
	if bracketTarget(target) {
		p.coverage(target)
		p.w("[")
		elements()
		p.w("]")
		return
	}
	p.w(keyword, "(")
	p.coverage(target)
	p.w(", {")
	elements()
	p.w("})")
}

func (p *printer) intervals(intervals []*DimensionInterval) {
	for offset, in := range intervals {
		if offset > 0 {
			p.w(", ")
		}
		p.dimensionElement(in)
	}
}

func (p *printer) points(points []*DimensionPoint) {
	for offset, pt := range points {
		if offset > 0 {
			p.w(", ")
		}
		p.dimensionElement(pt)
	}
}

func (p *printer) dimensionElement(e DimensionElement) {
	switch n := e.(type) {
	case *DimensionInterval:
		p.axisCrs(n.Axis, n.Crs.IsPresent(), n.Crs.Value())
		p.w("(")
		p.bound(n.Lo)
		p.w(":")
		p.bound(n.Hi)
		p.w(")")
	case *DimensionPoint:
		p.axisCrs(n.Axis, n.Crs.IsPresent(), n.Crs.Value())
		p.w("(")
		p.bound(n.Value)
		p.w(")")
	default:
		panic(fmt.Sprintf("unknown dimension element %T", e))
	}
}

func (p *printer) axisCrs(axis string, hasCrs bool, crs string) {
	p.w(axis)
	if hasCrs {
		p.w(":")
		p.quote(crs)
	}
}

func (p *printer) bound(b DimensionBound) {
	switch n := b.(type) {
	case *ScalarBound:
		p.scalar(n.Scalar)
	case *DomainOf:
		p.w("domain(", n.Coverage, ":", n.Axis, ":")
		p.quote(n.Crs)
		p.w(")")
	default:
		panic(fmt.Sprintf("unknown dimension bound %T", b))
	}
}

func (p *printer) fieldInterpolations(fis []FieldInterpolation) {
	if len(fis) < 1 {
		return
	}
	p.w(", {")
	for offset, fi := range fis {
		if offset > 0 {
			p.w(", ")
		}
		p.w(fi.Field)
		p.method(fi.Method)
	}
	p.w("}")
}

func (p *printer) method(m InterpolationMethod) {
	p.w("(", m.Type.String(), ":", m.Resistance.String(), ")")
}

func (p *printer) rangeExpr(e RangeExpr) {
	switch n := e.(type) {
	case *RangeStruct:
		p.w("struct {")
		for offset, f := range n.Fields {
			if offset > 0 {
				p.w(";")
			}
			p.w(" ", f.Field, ": ")
			p.scalar(f.Value)
		}
		p.w(" }")
	case *RangeScalar:
		p.scalar(n.Scalar)
	default:
		panic(fmt.Sprintf("unknown range expression %T", e))
	}
}

func (p *printer) iterators(its []*AxisIterator) {
	for offset, it := range its {
		if offset > 0 {
			p.w(", ")
		}
		p.w(it.Variable, " ", it.Axis, "(")
		switch d := it.Domain.(type) {
		case *IndexInterval:
			p.index(d.Lo)
			p.w(":")
			p.index(d.Hi)
		case *ImageDomainOf:
			p.w("imageCrsDomain(", d.Coverage, ", ", d.Axis, ")")
		default:
			panic(fmt.Sprintf("unknown iterator domain %T", it.Domain))
		}
		p.w(")")
	}
}

func (p *printer) index(e IndexExpr) {
	switch n := e.(type) {
	case *IndexBinary:
		p.indexOperand(n.Left)
		p.w(" ", n.Op.String(), " ")
		p.indexOperand(n.Right)
	case *IndexLiteral:
		p.w(strconv.FormatInt(n.Value, 10))
	case *IndexRound:
		p.w("round(")
		p.scalar(n.Operand)
		p.w(")")
	default:
		panic(fmt.Sprintf("unknown index expression %T", e))
	}
}

func (p *printer) indexOperand(e IndexExpr) {
	if _, ok := e.(*IndexBinary); ok {
		p.w("(")
		p.index(e)
		p.w(")")
		return
	}
	p.index(e)
}

func (p *printer) scalar(e ScalarExpr) {
	switch n := e.(type) {
	case *BooleanBinary:
		p.booleanOperand(n.Left)
		p.w(" ", n.Op.String(), " ")
		p.booleanOperand(n.Right)
	case *BooleanNot:
		p.w("not ")
		switch n.Operand.(type) {
		case *BooleanBinary, *BooleanNot:
			p.w("(")
			p.scalar(n.Operand)
			p.w(")")
		default:
			p.scalar(n.Operand)
		}
	case *BooleanLiteral:
		p.w(strconv.FormatBool(n.Value))
	case *NumericComparison:
		p.scalar(n.Left)
		p.w(" ", n.Op.String(), " ")
		p.scalar(n.Right)
	case *StringComparison:
		p.scalar(n.Left)
		p.w(" ", n.Op.String(), " ")
		p.scalar(n.Right)
	case *NumericBinary:
		p.numericOperand(n.Left)
		p.w(" ", n.Op.String(), " ")
		p.numericOperand(n.Right)
	case *NumericUnary:
		if n.Op == OpMinus {
			p.w("-")
			p.numericOperand(n.Operand)
			return
		}
		p.w(n.Op.String(), "(")
		p.scalar(n.Operand)
		p.w(")")
	case *IntegerLiteral:
		p.w(strconv.FormatInt(n.Value, 10))
	case *FloatLiteral:
		p.w(formatFloat(n.Value))
	case *ComplexLiteral:
		p.w("(", formatFloat(n.Re), ", ", formatFloat(n.Im), ")")
	case *NumericVariable:
		p.w(n.Name)
	case *StringLiteral:
		p.quote(n.Value)
	case *Reduce:
		p.w(n.Op.String(), "(")
		p.coverage(n.Coverage)
		p.w(")")
	case *GeneralCondense:
		p.w("condense ", n.Op.String(), " over ")
		p.iterators(n.Iterators)
		if n.Where != nil {
			p.w(" where ")
			p.scalar(n.Where)
		}
		p.w(" using ")
		p.coverage(n.Using)
	case *GenericCall:
		p.w(n.Name, "(")
		p.coverage(n.Coverage)
		p.w(")")
	case *ImageCrs:
		p.call("imageCrs", n.Coverage)
	case *ImageCrsDomain:
		p.w("imageCrsDomain(")
		p.coverage(n.Coverage)
		if n.Axis.IsPresent() {
			p.w(", ", n.Axis.Value())
		}
		p.w(")")
	case *CrsSet:
		p.call("crsSet", n.Coverage)
	case *NullSet:
		p.call("nullSet", n.Coverage)
	case *Domain:
		p.w("domain(", n.Variable, ", ", n.Axis, ", ")
		p.quote(n.Crs)
		p.w(")")
	case *InterpolationDefault:
		p.w("interpolationDefault(")
		p.coverage(n.Coverage)
		p.w(", ", n.Field, ")")
	case *InterpolationSet:
		p.w("interpolationSet(")
		p.coverage(n.Coverage)
		p.w(", ", n.Field, ")")
	default:
		panic(fmt.Sprintf("unknown scalar expression %T", e))
	}
}

func (p *printer) call(name string, e CoverageExpr) {
	p.w(name, "(")
	p.coverage(e)
	p.w(")")
}

func (p *printer) booleanOperand(e BooleanExpr) {
	if _, ok := e.(*BooleanBinary); ok {
		p.w("(")
		p.scalar(e)
		p.w(")")
		return
	}
	p.scalar(e)
}

func (p *printer) numericOperand(e NumericExpr) {
	if _, ok := e.(*NumericBinary); ok {
		p.w("(")
		p.scalar(e)
		p.w(")")
		return
	}
	p.scalar(e)
}

// formatFloat always emits a decimal point or an exponent so that the value
// reads back as a float.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s = s + ".0"
	}
	return s
}
