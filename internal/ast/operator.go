// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

import "fmt"

// Operator tags every unary, binary, and reduction node.
type Operator uint8

const (
	OpNone Operator = iota

	OpOr
	OpXor
	OpAnd

	OpEqual
	OpNotEqual
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpOverlay

	OpPlus
	OpMinus
	OpNot
	OpSqrt
	OpAbs
	OpRe
	OpIm
	OpExp
	OpLog
	OpLn
	OpSin
	OpCos
	OpTan
	OpSinh
	OpCosh
	OpTanh
	OpArcsin
	OpArccos
	OpArctan
	OpRound

	OpAll
	OpSome
	OpCount
	OpSum
	OpAvg
	OpMin
	OpMax
)

var operatorText = [...]string{
	OpNone:         "",
	OpOr:           "or",
	OpXor:          "xor",
	OpAnd:          "and",
	OpEqual:        "=",
	OpNotEqual:     "!=",
	OpLess:         "<",
	OpGreater:      ">",
	OpLessEqual:    "<=",
	OpGreaterEqual: ">=",
	OpAdd:          "+",
	OpSub:          "-",
	OpMul:          "*",
	OpDiv:          "/",
	OpOverlay:      "overlay",
	OpPlus:         "+",
	OpMinus:        "-",
	OpNot:          "not",
	OpSqrt:         "sqrt",
	OpAbs:          "abs",
	OpRe:           "re",
	OpIm:           "im",
	OpExp:          "exp",
	OpLog:          "log",
	OpLn:           "ln",
	OpSin:          "sin",
	OpCos:          "cos",
	OpTan:          "tan",
	OpSinh:         "sinh",
	OpCosh:         "cosh",
	OpTanh:         "tanh",
	OpArcsin:       "arcsin",
	OpArccos:       "arccos",
	OpArctan:       "arctan",
	OpRound:        "round",
	OpAll:          "all",
	OpSome:         "some",
	OpCount:        "count",
	OpSum:          "add",
	OpAvg:          "avg",
	OpMin:          "min",
	OpMax:          "max",
}

// String returns the operator as it is written in a query.
func (op Operator) String() string {
	if int(op) < len(operatorText) {
		return operatorText[op]
	}
	return fmt.Sprintf("op-%d", op)
}

// IsFunction reports whether the operator is written as a call.
func (op Operator) IsFunction() bool {
	return op >= OpSqrt && op <= OpRound
}

// RangeType names the cell type targeted by a cast.
type RangeType uint8

const (
	RangeTypeNone RangeType = iota
	RangeTypeBoolean
	RangeTypeChar
	RangeTypeUnsignedChar
	RangeTypeShort
	RangeTypeUnsignedShort
	RangeTypeInt
	RangeTypeUnsignedInt
	RangeTypeLong
	RangeTypeUnsignedLong
	RangeTypeFloat
	RangeTypeDouble
	RangeTypeComplex
	RangeTypeComplex2
)

var rangeTypeText = [...]string{
	RangeTypeNone:          "",
	RangeTypeBoolean:       "boolean",
	RangeTypeChar:          "char",
	RangeTypeUnsignedChar:  "unsigned char",
	RangeTypeShort:         "short",
	RangeTypeUnsignedShort: "unsigned short",
	RangeTypeInt:           "int",
	RangeTypeUnsignedInt:   "unsigned int",
	RangeTypeLong:          "long",
	RangeTypeUnsignedLong:  "unsigned long",
	RangeTypeFloat:         "float",
	RangeTypeDouble:        "double",
	RangeTypeComplex:       "complex",
	RangeTypeComplex2:      "complex2",
}

func (t RangeType) String() string {
	if int(t) < len(rangeTypeText) {
		return rangeTypeText[t]
	}
	return fmt.Sprintf("type-%d", t)
}

type InterpolationType uint8

const (
	InterpolationNone InterpolationType = iota
	InterpolationNearest
	InterpolationLinear
	InterpolationQuadratic
	InterpolationCubic
)

func (t InterpolationType) String() string {
	switch t {
	case InterpolationNearest:
		return "nearest"
	case InterpolationLinear:
		return "linear"
	case InterpolationQuadratic:
		return "quadratic"
	case InterpolationCubic:
		return "cubic"
	default:
		return fmt.Sprintf("interpolation-%d", t)
	}
}

type NullResistance uint8

const (
	NullResistanceUnset NullResistance = iota
	NullResistanceFull
	NullResistanceNone
	NullResistanceHalf
	NullResistanceOther
)

func (r NullResistance) String() string {
	switch r {
	case NullResistanceFull:
		return "full"
	case NullResistanceNone:
		return "none"
	case NullResistanceHalf:
		return "half"
	case NullResistanceOther:
		return "other"
	default:
		return fmt.Sprintf("resistance-%d", r)
	}
}

// InterpolationMethod = "(" InterpolationType ":" NullResistance ")"
type InterpolationMethod struct {
	Type       InterpolationType
	Resistance NullResistance
}

// FieldInterpolation = FieldName InterpolationMethod
type FieldInterpolation struct {
	Field  string
	Method InterpolationMethod
}
