// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

// IteratorDomain is either an *IndexInterval or an *ImageDomainOf.
type IteratorDomain interface {
	Node
	iteratorDomain()
}

type IndexExpr interface {
	Node
	indexExpr()
}

// AxisIterator = Variable Axis "(" ( IndexExpr ":" IndexExpr | ImageDomainOf ) ")"
type AxisIterator struct {
	Variable string
	Axis     string
	Domain   IteratorDomain
}

type IndexInterval struct {
	Lo IndexExpr
	Hi IndexExpr
}

// ImageDomainOf = "imageCrsDomain" "(" Coverage "," Axis ")"
type ImageDomainOf struct {
	Coverage string
	Axis     string
}

type IndexBinary struct {
	Op    Operator
	Left  IndexExpr
	Right IndexExpr
}

type IndexLiteral struct {
	Value int64
}

type IndexRound struct {
	Operand NumericExpr
}

func (*AxisIterator) node()  {}
func (*IndexInterval) node() {}
func (*ImageDomainOf) node() {}
func (*IndexBinary) node()   {}
func (*IndexLiteral) node()  {}
func (*IndexRound) node()    {}

func (*IndexInterval) iteratorDomain() {}
func (*ImageDomainOf) iteratorDomain() {}

func (*IndexBinary) indexExpr()  {}
func (*IndexLiteral) indexExpr() {}
func (*IndexRound) indexExpr()   {}
