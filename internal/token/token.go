// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package token defines the closed set of WCPS token kinds and the token value
// exchanged between the lexer and the parser.
package token

import "fmt"

// Location is the 1-based line and column of the first character of a token
// along with its 0-based byte offset.
type Location struct {
	Line   int
	Column int
	Offset int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

type Token struct {
	Type     Type
	Value    string
	Location Location
}

func (t Token) String() string {
	if t.Type == TypeEOF {
		return "EOF"
	}
	return t.Value
}

// Is reports whether the token is any of the given types.
func (t Token) Is(types ...Type) bool {
	for _, typ := range types {
		if t.Type == typ {
			return true
		}
	}
	return false
}

type Type uint16

const (
	TypeNone Type = iota
	TypeEOF
	TypeSpace

	TypeName
	TypeVariable
	TypeInteger
	TypeFloat
	TypeString

	TypeParenOpen
	TypeParenClose
	TypeComma
	TypeSemicolon
	TypeColon
	TypeSquareOpen
	TypeSquareClose
	TypeCurlyOpen
	TypeCurlyClose
	TypeLess
	TypeGreater
	TypeDot
	TypePlus
	TypeMinus
	TypeStar
	TypeSlash
	TypeEqual
	TypeNotEqual
	TypeLessEqual
	TypeGreaterEqual

	typeKeywordStart

	TypeKeywordFor
	TypeKeywordIn
	TypeKeywordWhere
	TypeKeywordReturn
	TypeKeywordEncode
	TypeKeywordStore
	TypeKeywordOverlay
	TypeKeywordDomain
	TypeKeywordAll
	TypeKeywordSome
	TypeKeywordCount
	TypeKeywordAdd
	TypeKeywordAvg
	TypeKeywordMin
	TypeKeywordMax
	TypeKeywordCondense
	TypeKeywordOver
	TypeKeywordUsing
	TypeKeywordCoverage
	TypeKeywordValue
	TypeKeywordList
	TypeKeywordValues
	TypeKeywordStruct
	TypeKeywordCrsTransform
	TypeKeywordTrim
	TypeKeywordSlice
	TypeKeywordExtend
	TypeKeywordScale
	TypeKeywordSwitch
	TypeKeywordCase
	TypeKeywordDefault
	TypeKeywordSetIdentifier
	TypeKeywordSetCrsSet
	TypeKeywordSetNullSet
	TypeKeywordSetInterpolationDefault
	TypeKeywordSetInterpolationSet
	TypeKeywordIdentifier
	TypeKeywordImageCrs
	TypeKeywordImageCrsDomain
	TypeKeywordCrsSet
	TypeKeywordNullSet
	TypeKeywordInterpolationDefault
	TypeKeywordInterpolationSet
	TypeKeywordSqrt
	TypeKeywordAbs
	TypeKeywordRe
	TypeKeywordIm
	TypeKeywordExp
	TypeKeywordLog
	TypeKeywordLn
	TypeKeywordSin
	TypeKeywordCos
	TypeKeywordTan
	TypeKeywordSinh
	TypeKeywordCosh
	TypeKeywordTanh
	TypeKeywordArcsin
	TypeKeywordArccos
	TypeKeywordArctan
	TypeKeywordRound
	TypeKeywordBit
	TypeKeywordNot
	TypeKeywordAnd
	TypeKeywordOr
	TypeKeywordXor
	TypeKeywordTrue
	TypeKeywordFalse
	TypeKeywordBoolean
	TypeKeywordChar
	TypeKeywordShort
	TypeKeywordInt
	TypeKeywordLong
	TypeKeywordFloat
	TypeKeywordDouble
	TypeKeywordComplex
	TypeKeywordComplex2
	TypeKeywordUnsigned
	TypeKeywordNearest
	TypeKeywordLinear
	TypeKeywordQuadratic
	TypeKeywordCubic
	TypeKeywordFull
	TypeKeywordNone
	TypeKeywordHalf
	TypeKeywordOther

	typeKeywordEnd
)

// IsKeyword reports whether the type is one of the reserved words.
func (t Type) IsKeyword() bool {
	return t > typeKeywordStart && t < typeKeywordEnd
}

var typeNames = map[Type]string{
	TypeNone:         "none",
	TypeEOF:          "EOF",
	TypeSpace:        "space",
	TypeName:         "name",
	TypeVariable:     "variable",
	TypeInteger:      "integer",
	TypeFloat:        "float",
	TypeString:       "string",
	TypeParenOpen:    "(",
	TypeParenClose:   ")",
	TypeComma:        ",",
	TypeSemicolon:    ";",
	TypeColon:        ":",
	TypeSquareOpen:   "[",
	TypeSquareClose:  "]",
	TypeCurlyOpen:    "{",
	TypeCurlyClose:   "}",
	TypeLess:         "<",
	TypeGreater:      ">",
	TypeDot:          ".",
	TypePlus:         "+",
	TypeMinus:        "-",
	TypeStar:         "*",
	TypeSlash:        "/",
	TypeEqual:        "=",
	TypeNotEqual:     "!=",
	TypeLessEqual:    "<=",
	TypeGreaterEqual: ">=",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if text, ok := keywordText[t]; ok {
		return text
	}
	return fmt.Sprintf("unknown-%d", t)
}
