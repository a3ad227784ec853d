// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

import "gopkg.microglot.org/wcps.go/internal/optional"

// GenericCall is a metadata call by name, such as identifier(c). It doubles as
// a string expression in comparisons.
type GenericCall struct {
	Name     string
	Coverage CoverageExpr
}

type ImageCrs struct {
	Coverage CoverageExpr
}

type ImageCrsDomain struct {
	Coverage CoverageExpr
	Axis     optional.Optional[string]
}

type CrsSet struct {
	Coverage CoverageExpr
}

type NullSet struct {
	Coverage CoverageExpr
}

// Domain = "domain" "(" Variable "," Axis "," Crs ")"
type Domain struct {
	Variable string
	Axis     string
	Crs      string
}

type InterpolationDefault struct {
	Coverage CoverageExpr
	Field    string
}

type InterpolationSet struct {
	Coverage CoverageExpr
	Field    string
}

func (*GenericCall) node()          {}
func (*ImageCrs) node()             {}
func (*ImageCrsDomain) node()       {}
func (*CrsSet) node()               {}
func (*NullSet) node()              {}
func (*Domain) node()               {}
func (*InterpolationDefault) node() {}
func (*InterpolationSet) node()     {}

func (*GenericCall) scalarExpr()          {}
func (*ImageCrs) scalarExpr()             {}
func (*ImageCrsDomain) scalarExpr()       {}
func (*CrsSet) scalarExpr()               {}
func (*NullSet) scalarExpr()              {}
func (*Domain) scalarExpr()               {}
func (*InterpolationDefault) scalarExpr() {}
func (*InterpolationSet) scalarExpr()     {}

func (*GenericCall) metaDataExpr()          {}
func (*ImageCrs) metaDataExpr()             {}
func (*ImageCrsDomain) metaDataExpr()       {}
func (*CrsSet) metaDataExpr()               {}
func (*NullSet) metaDataExpr()              {}
func (*Domain) metaDataExpr()               {}
func (*InterpolationDefault) metaDataExpr() {}
func (*InterpolationSet) metaDataExpr()     {}

func (*GenericCall) stringExpr() {}

type SetMetaDataExpr interface {
	CoverageExpr
	setMetaDataExpr()
}

// RangeExpr is either a *RangeStruct or a *RangeScalar.
type RangeExpr interface {
	Node
	rangeExpr()
}

type RangeValue struct {
	Field string
	Value ScalarExpr
}

// RangeStruct = "struct" "{" FieldName ":" ScalarExpr { ";" FieldName ":" ScalarExpr } "}"
type RangeStruct struct {
	Fields []RangeValue
}

type RangeScalar struct {
	Scalar ScalarExpr
}

type SetIdentifier struct {
	Value    string
	Coverage CoverageExpr
}

type SetCrsSet struct {
	Coverage CoverageExpr
	Crs      []string
}

type SetNullSet struct {
	Coverage CoverageExpr
	Values   []RangeExpr
}

type SetInterpolationDefault struct {
	Coverage CoverageExpr
	Field    string
	Method   InterpolationMethod
}

type SetInterpolationSet struct {
	Coverage CoverageExpr
	Field    string
	Methods  []InterpolationMethod
}

func (*RangeStruct) node()             {}
func (*RangeScalar) node()             {}
func (*SetIdentifier) node()           {}
func (*SetCrsSet) node()               {}
func (*SetNullSet) node()              {}
func (*SetInterpolationDefault) node() {}
func (*SetInterpolationSet) node()     {}

func (*RangeStruct) rangeExpr() {}
func (*RangeScalar) rangeExpr() {}

func (*SetIdentifier) coverageExpr()           {}
func (*SetCrsSet) coverageExpr()               {}
func (*SetNullSet) coverageExpr()              {}
func (*SetInterpolationDefault) coverageExpr() {}
func (*SetInterpolationSet) coverageExpr()     {}

func (*SetIdentifier) setMetaDataExpr()           {}
func (*SetCrsSet) setMetaDataExpr()               {}
func (*SetNullSet) setMetaDataExpr()              {}
func (*SetInterpolationDefault) setMetaDataExpr() {}
func (*SetInterpolationSet) setMetaDataExpr()     {}
