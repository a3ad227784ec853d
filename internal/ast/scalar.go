// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

type BooleanBinary struct {
	Op    Operator
	Left  BooleanExpr
	Right BooleanExpr
}

type BooleanNot struct {
	Operand BooleanExpr
}

type BooleanLiteral struct {
	Value bool
}

type NumericComparison struct {
	Op    Operator
	Left  NumericExpr
	Right NumericExpr
}

type StringComparison struct {
	Op    Operator
	Left  StringExpr
	Right StringExpr
}

type NumericBinary struct {
	Op    Operator
	Left  NumericExpr
	Right NumericExpr
}

// NumericUnary is negation or one of abs, sqrt, and round.
type NumericUnary struct {
	Op      Operator
	Operand NumericExpr
}

type IntegerLiteral struct {
	Value int64
}

type FloatLiteral struct {
	Value float64
}

type ComplexLiteral struct {
	Re float64
	Im float64
}

// NumericVariable is a variable read as a number. Only axis iterator and
// where clause contexts allow these.
type NumericVariable struct {
	Name string
}

type StringLiteral struct {
	Value string
}

// Reduce = ( "all" | "some" | "count" | "add" | "avg" | "min" | "max" ) "(" CoverageExpr ")"
type Reduce struct {
	Op       Operator
	Coverage CoverageExpr
}

// GeneralCondense = "condense" CondenseOp "over" AxisIteratorList [ "where" BooleanExpr ] "using" CoverageExpr
type GeneralCondense struct {
	Op        Operator
	Iterators []*AxisIterator
	Where     BooleanExpr
	Using     CoverageExpr
}

func (*BooleanBinary) node()     {}
func (*BooleanNot) node()        {}
func (*BooleanLiteral) node()    {}
func (*NumericComparison) node() {}
func (*StringComparison) node()  {}
func (*NumericBinary) node()     {}
func (*NumericUnary) node()      {}
func (*IntegerLiteral) node()    {}
func (*FloatLiteral) node()      {}
func (*ComplexLiteral) node()    {}
func (*NumericVariable) node()   {}
func (*StringLiteral) node()     {}
func (*Reduce) node()            {}
func (*GeneralCondense) node()   {}

func (*BooleanBinary) scalarExpr()     {}
func (*BooleanNot) scalarExpr()        {}
func (*BooleanLiteral) scalarExpr()    {}
func (*NumericComparison) scalarExpr() {}
func (*StringComparison) scalarExpr()  {}
func (*NumericBinary) scalarExpr()     {}
func (*NumericUnary) scalarExpr()      {}
func (*IntegerLiteral) scalarExpr()    {}
func (*FloatLiteral) scalarExpr()      {}
func (*ComplexLiteral) scalarExpr()    {}
func (*NumericVariable) scalarExpr()   {}
func (*StringLiteral) scalarExpr()     {}
func (*Reduce) scalarExpr()            {}
func (*GeneralCondense) scalarExpr()   {}

func (*BooleanBinary) booleanExpr()     {}
func (*BooleanNot) booleanExpr()        {}
func (*BooleanLiteral) booleanExpr()    {}
func (*NumericComparison) booleanExpr() {}
func (*StringComparison) booleanExpr()  {}

func (*NumericBinary) numericExpr()   {}
func (*NumericUnary) numericExpr()    {}
func (*IntegerLiteral) numericExpr()  {}
func (*FloatLiteral) numericExpr()    {}
func (*ComplexLiteral) numericExpr()  {}
func (*NumericVariable) numericExpr() {}
func (*Reduce) numericExpr()          {}
func (*GeneralCondense) numericExpr() {}

func (*StringLiteral) stringExpr() {}

func (*Reduce) condenseExpr()          {}
func (*GeneralCondense) condenseExpr() {}
