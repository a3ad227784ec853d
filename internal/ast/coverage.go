// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

type CoverageBinary struct {
	Op    Operator
	Left  CoverageExpr
	Right CoverageExpr
}

// CoverageUnary covers the sign operators, not, and the induced functions
// such as sqrt or arctan.
type CoverageUnary struct {
	Op      Operator
	Operand CoverageExpr
}

// CoverageVariable is a reference to a variable bound in the for clause.
type CoverageVariable struct {
	Name string
}

type CoverageParen struct {
	Inner CoverageExpr
}

// CoverageScalar lifts a scalar into coverage position.
type CoverageScalar struct {
	Scalar ScalarExpr
}

// CoverageConstant = "coverage" name "over" AxisIteratorList "value" "list" "<" Constant { ";" Constant } ">"
type CoverageConstant struct {
	Name      string
	Iterators []*AxisIterator
	Values    []ScalarExpr
}

// CoverageConstructor = "coverage" name "over" AxisIteratorList "values" CoverageExpr
type CoverageConstructor struct {
	Name      string
	Iterators []*AxisIterator
	Values    CoverageExpr
}

type RangeField struct {
	Field string
	Value CoverageExpr
}

// RangeConstructor = [ "struct" ] "{" FieldName ":" CoverageExpr { ";" FieldName ":" CoverageExpr } "}"
type RangeConstructor struct {
	Fields []RangeField
}

type Cast struct {
	Type    RangeType
	Operand CoverageExpr
}

type FieldSelect struct {
	Coverage CoverageExpr
	Field    string
}

type BitSelect struct {
	Coverage CoverageExpr
	Index    IndexExpr
}

type Scale struct {
	Coverage       CoverageExpr
	Intervals      []*DimensionInterval
	Interpolations []FieldInterpolation
}

type AxisCrs struct {
	Axis string
	Crs  string
}

type CrsTransform struct {
	Coverage       CoverageExpr
	Crs            []AxisCrs
	Interpolations []FieldInterpolation
}

type SwitchCase struct {
	Condition CoverageExpr
	Result    CoverageExpr
}

// Switch = "switch" "case" CoverageExpr "return" CoverageExpr { ... } "default" "return" CoverageExpr
type Switch struct {
	Cases   []SwitchCase
	Default CoverageExpr
}

func (*CoverageBinary) node()      {}
func (*CoverageUnary) node()       {}
func (*CoverageVariable) node()    {}
func (*CoverageParen) node()       {}
func (*CoverageScalar) node()      {}
func (*CoverageConstant) node()    {}
func (*CoverageConstructor) node() {}
func (*RangeConstructor) node()    {}
func (*Cast) node()                {}
func (*FieldSelect) node()         {}
func (*BitSelect) node()           {}
func (*Scale) node()               {}
func (*CrsTransform) node()        {}
func (*Switch) node()              {}

func (*CoverageBinary) coverageExpr()      {}
func (*CoverageUnary) coverageExpr()       {}
func (*CoverageVariable) coverageExpr()    {}
func (*CoverageParen) coverageExpr()       {}
func (*CoverageScalar) coverageExpr()      {}
func (*CoverageConstant) coverageExpr()    {}
func (*CoverageConstructor) coverageExpr() {}
func (*RangeConstructor) coverageExpr()    {}
func (*Cast) coverageExpr()                {}
func (*FieldSelect) coverageExpr()         {}
func (*BitSelect) coverageExpr()           {}
func (*Scale) coverageExpr()               {}
func (*CrsTransform) coverageExpr()        {}
func (*Switch) coverageExpr()              {}
