// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

import "gopkg.microglot.org/wcps.go/internal/optional"

type SubsetExpr interface {
	CoverageExpr
	subsetExpr()
}

// DimensionElement is either a *DimensionInterval or a *DimensionPoint.
type DimensionElement interface {
	Node
	dimensionElement()
}

// DimensionBound is either a *ScalarBound or a *DomainOf.
type DimensionBound interface {
	Node
	dimensionBound()
}

type Trim struct {
	Coverage  CoverageExpr
	Intervals []*DimensionInterval
}

type Slice struct {
	Coverage CoverageExpr
	Points   []*DimensionPoint
}

type Extend struct {
	Coverage  CoverageExpr
	Intervals []*DimensionInterval
}

// MixedSubset keeps intervals and points in the order they were written.
type MixedSubset struct {
	Coverage CoverageExpr
	Elements []DimensionElement
}

// DimensionInterval = Axis [ ":" Crs ] "(" Bound ":" Bound ")"
type DimensionInterval struct {
	Axis string
	Crs  optional.Optional[string]
	Lo   DimensionBound
	Hi   DimensionBound
}

// DimensionPoint = Axis [ ":" Crs ] "(" Bound ")"
type DimensionPoint struct {
	Axis  string
	Crs   optional.Optional[string]
	Value DimensionBound
}

type ScalarBound struct {
	Scalar ScalarExpr
}

// DomainOf = "domain" "(" Coverage ":" Axis ":" Crs ")"
type DomainOf struct {
	Coverage string
	Axis     string
	Crs      string
}

func (*Trim) node()              {}
func (*Slice) node()             {}
func (*Extend) node()            {}
func (*MixedSubset) node()       {}
func (*DimensionInterval) node() {}
func (*DimensionPoint) node()    {}
func (*ScalarBound) node()       {}
func (*DomainOf) node()          {}

func (*Trim) coverageExpr()        {}
func (*Slice) coverageExpr()       {}
func (*Extend) coverageExpr()      {}
func (*MixedSubset) coverageExpr() {}

func (*Trim) subsetExpr()        {}
func (*Slice) subsetExpr()       {}
func (*Extend) subsetExpr()      {}
func (*MixedSubset) subsetExpr() {}

func (*DimensionInterval) dimensionElement() {}
func (*DimensionPoint) dimensionElement()    {}

func (*ScalarBound) dimensionBound() {}
func (*DomainOf) dimensionBound()    {}
