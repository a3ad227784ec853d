// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package token

import "strings"

// keywords lists every reserved word with its canonical spelling. Matching is
// case-insensitive.
var keywords = []struct {
	text string
	typ  Type
}{
	{"for", TypeKeywordFor},
	{"in", TypeKeywordIn},
	{"where", TypeKeywordWhere},
	{"return", TypeKeywordReturn},
	{"encode", TypeKeywordEncode},
	{"store", TypeKeywordStore},
	{"overlay", TypeKeywordOverlay},
	{"domain", TypeKeywordDomain},
	{"all", TypeKeywordAll},
	{"some", TypeKeywordSome},
	{"count", TypeKeywordCount},
	{"add", TypeKeywordAdd},
	{"avg", TypeKeywordAvg},
	{"min", TypeKeywordMin},
	{"max", TypeKeywordMax},
	{"condense", TypeKeywordCondense},
	{"over", TypeKeywordOver},
	{"using", TypeKeywordUsing},
	{"coverage", TypeKeywordCoverage},
	{"value", TypeKeywordValue},
	{"list", TypeKeywordList},
	{"values", TypeKeywordValues},
	{"struct", TypeKeywordStruct},
	{"crsTransform", TypeKeywordCrsTransform},
	{"trim", TypeKeywordTrim},
	{"slice", TypeKeywordSlice},
	{"extend", TypeKeywordExtend},
	{"scale", TypeKeywordScale},
	{"switch", TypeKeywordSwitch},
	{"case", TypeKeywordCase},
	{"default", TypeKeywordDefault},
	{"setIdentifier", TypeKeywordSetIdentifier},
	{"setCrsSet", TypeKeywordSetCrsSet},
	{"setNullSet", TypeKeywordSetNullSet},
	{"setInterpolationDefault", TypeKeywordSetInterpolationDefault},
	{"setInterpolationSet", TypeKeywordSetInterpolationSet},
	{"identifier", TypeKeywordIdentifier},
	{"imageCrs", TypeKeywordImageCrs},
	{"imageCrsDomain", TypeKeywordImageCrsDomain},
	{"crsSet", TypeKeywordCrsSet},
	{"nullSet", TypeKeywordNullSet},
	{"interpolationDefault", TypeKeywordInterpolationDefault},
	{"interpolationSet", TypeKeywordInterpolationSet},
	{"sqrt", TypeKeywordSqrt},
	{"abs", TypeKeywordAbs},
	{"re", TypeKeywordRe},
	{"im", TypeKeywordIm},
	{"exp", TypeKeywordExp},
	{"log", TypeKeywordLog},
	{"ln", TypeKeywordLn},
	{"sin", TypeKeywordSin},
	{"cos", TypeKeywordCos},
	{"tan", TypeKeywordTan},
	{"sinh", TypeKeywordSinh},
	{"cosh", TypeKeywordCosh},
	{"tanh", TypeKeywordTanh},
	{"arcsin", TypeKeywordArcsin},
	{"arccos", TypeKeywordArccos},
	{"arctan", TypeKeywordArctan},
	{"round", TypeKeywordRound},
	{"bit", TypeKeywordBit},
	{"not", TypeKeywordNot},
	{"and", TypeKeywordAnd},
	{"or", TypeKeywordOr},
	{"xor", TypeKeywordXor},
	{"true", TypeKeywordTrue},
	{"false", TypeKeywordFalse},
	{"boolean", TypeKeywordBoolean},
	{"char", TypeKeywordChar},
	{"short", TypeKeywordShort},
	{"int", TypeKeywordInt},
	{"long", TypeKeywordLong},
	{"float", TypeKeywordFloat},
	{"double", TypeKeywordDouble},
	{"complex", TypeKeywordComplex},
	{"complex2", TypeKeywordComplex2},
	{"unsigned", TypeKeywordUnsigned},
	{"nearest", TypeKeywordNearest},
	{"linear", TypeKeywordLinear},
	{"quadratic", TypeKeywordQuadratic},
	{"cubic", TypeKeywordCubic},
	{"full", TypeKeywordFull},
	{"none", TypeKeywordNone},
	{"half", TypeKeywordHalf},
	{"other", TypeKeywordOther},
}

var (
	keywordLookup = make(map[string]Type, len(keywords))
	keywordText   = make(map[Type]string, len(keywords))
	symbolLookup  = make(map[string]Type)
)

func init() {
	for _, kw := range keywords {
		keywordLookup[strings.ToLower(kw.text)] = kw.typ
		keywordText[kw.typ] = kw.text
	}
	for typ := TypeParenOpen; typ <= TypeGreaterEqual; typ = typ + 1 {
		symbolLookup[typeNames[typ]] = typ
	}
}

// LookupKeyword returns the keyword type for the given word, ignoring case.
func LookupKeyword(word string) (Type, bool) {
	typ, ok := keywordLookup[strings.ToLower(word)]
	return typ, ok
}

// LookupSymbol returns the punctuation or operator type for the given text.
func LookupSymbol(text string) (Type, bool) {
	typ, ok := symbolLookup[text]
	return typ, ok
}
