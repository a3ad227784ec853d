// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package ast defines the syntax tree of a WCPS query.
//
// Every family of expressions is a sealed interface. The concrete nodes are
// plain structs that own their children and are never modified once the
// parser returns them. Lists keep source order.
package ast

import "gopkg.microglot.org/wcps.go/internal/optional"

type Node interface {
	node()
}

type ProcessingExpr interface {
	Node
	processingExpr()
}

type CoverageExpr interface {
	Node
	coverageExpr()
}

type ScalarExpr interface {
	Node
	scalarExpr()
}

type BooleanExpr interface {
	ScalarExpr
	booleanExpr()
}

type NumericExpr interface {
	ScalarExpr
	numericExpr()
}

type StringExpr interface {
	ScalarExpr
	stringExpr()
}

type MetaDataExpr interface {
	ScalarExpr
	metaDataExpr()
}

type CondenseExpr interface {
	NumericExpr
	condenseExpr()
}

// Request is the root of every query.
type Request struct {
	For    *ForClause
	Where  *WhereClause
	Return *ReturnClause
}

// ForClause = "for" Binding { "," Binding }
type ForClause struct {
	Bindings []Binding
}

// Binding ties an iteration variable to the coverages it ranges over.
type Binding struct {
	Variable  string
	Coverages []string
}

type WhereClause struct {
	Condition BooleanExpr
}

type ReturnClause struct {
	Body ProcessingExpr
}

type Encode struct {
	Coverage CoverageExpr
	Format   string
	Params   optional.Optional[string]
}

type Store struct {
	Encode *Encode
}

// ScalarResult is a return clause that evaluates to a single value.
type ScalarResult struct {
	Scalar ScalarExpr
}

// CoverageResult is a return clause that yields a coverage without encoding.
type CoverageResult struct {
	Coverage CoverageExpr
}

func (*Request) node()        {}
func (*ForClause) node()      {}
func (*WhereClause) node()    {}
func (*ReturnClause) node()   {}
func (*Encode) node()         {}
func (*Store) node()          {}
func (*ScalarResult) node()   {}
func (*CoverageResult) node() {}

func (*Encode) processingExpr()         {}
func (*Store) processingExpr()          {}
func (*ScalarResult) processingExpr()   {}
func (*CoverageResult) processingExpr() {}
