// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/wcps.go/internal/exc"
	"gopkg.microglot.org/wcps.go/internal/iter"
	"gopkg.microglot.org/wcps.go/internal/token"
)

type tv struct {
	typ   token.Type
	value string
}

func lexAll(t *testing.T, input string) ([]token.Token, exc.Reporter) {
	t.Helper()
	ctx := context.Background()
	reporter := exc.NewReporter(nil)
	tokens, err := New(reporter).LexString(ctx, "", input)
	require.NoError(t, err)
	out, err := iter.Collect(ctx, tokens)
	require.NoError(t, err)
	return out, reporter
}

func TestLexer(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []tv
	}{
		{
			name:     "empty",
			input:    "",
			expected: []tv{{token.TypeEOF, ""}},
		},
		{
			name:  "encode query",
			input: `for c in (MyCov) return encode(c, "png")`,
			expected: []tv{
				{token.TypeKeywordFor, "for"},
				{token.TypeName, "c"},
				{token.TypeKeywordIn, "in"},
				{token.TypeParenOpen, "("},
				{token.TypeName, "MyCov"},
				{token.TypeParenClose, ")"},
				{token.TypeKeywordReturn, "return"},
				{token.TypeKeywordEncode, "encode"},
				{token.TypeParenOpen, "("},
				{token.TypeName, "c"},
				{token.TypeComma, ","},
				{token.TypeString, "png"},
				{token.TypeParenClose, ")"},
				{token.TypeEOF, ""},
			},
		},
		{
			name:  "keywords ignore case",
			input: "FOR For fOr imagecrsdomain CRSTRANSFORM",
			expected: []tv{
				{token.TypeKeywordFor, "FOR"},
				{token.TypeKeywordFor, "For"},
				{token.TypeKeywordFor, "fOr"},
				{token.TypeKeywordImageCrsDomain, "imagecrsdomain"},
				{token.TypeKeywordCrsTransform, "CRSTRANSFORM"},
				{token.TypeEOF, ""},
			},
		},
		{
			name:  "numbers",
			input: "1 2.5 3e10 4.0E-2 007",
			expected: []tv{
				{token.TypeInteger, "1"},
				{token.TypeFloat, "2.5"},
				{token.TypeFloat, "3e10"},
				{token.TypeFloat, "4.0E-2"},
				{token.TypeInteger, "007"},
				{token.TypeEOF, ""},
			},
		},
		{
			name:  "operators",
			input: "!=<=>=<>=+-*/()[]{},;:.",
			expected: []tv{
				{token.TypeNotEqual, "!="},
				{token.TypeLessEqual, "<="},
				{token.TypeGreaterEqual, ">="},
				{token.TypeLess, "<"},
				{token.TypeGreaterEqual, ">="},
				{token.TypePlus, "+"},
				{token.TypeMinus, "-"},
				{token.TypeStar, "*"},
				{token.TypeSlash, "/"},
				{token.TypeParenOpen, "("},
				{token.TypeParenClose, ")"},
				{token.TypeSquareOpen, "["},
				{token.TypeSquareClose, "]"},
				{token.TypeCurlyOpen, "{"},
				{token.TypeCurlyClose, "}"},
				{token.TypeComma, ","},
				{token.TypeSemicolon, ";"},
				{token.TypeColon, ":"},
				{token.TypeDot, "."},
				{token.TypeEOF, ""},
			},
		},
		{
			name:  "variables and fields",
			input: "$x c.red c.0",
			expected: []tv{
				{token.TypeVariable, "$x"},
				{token.TypeName, "c"},
				{token.TypeDot, "."},
				{token.TypeName, "red"},
				{token.TypeName, "c"},
				{token.TypeDot, "."},
				{token.TypeInteger, "0"},
				{token.TypeEOF, ""},
			},
		},
		{
			name:  "string escapes",
			input: `"EPSG:4326" "a\"b"`,
			expected: []tv{
				{token.TypeString, "EPSG:4326"},
				{token.TypeString, `a"b`},
				{token.TypeEOF, ""},
			},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			tokens, reporter := lexAll(t, testCase.input)
			require.Empty(t, reporter.Reported())
			actual := make([]tv, 0, len(tokens))
			for _, tok := range tokens {
				actual = append(actual, tv{tok.Type, tok.Value})
			}
			require.Equal(t, testCase.expected, actual)
		})
	}
}

func TestLexerLocations(t *testing.T) {
	t.Parallel()

	tokens, _ := lexAll(t, "for\n  c in")
	require.Len(t, tokens, 4)
	require.Equal(t, token.Location{Line: 1, Column: 1, Offset: 0}, tokens[0].Location)
	require.Equal(t, token.Location{Line: 2, Column: 3, Offset: 6}, tokens[1].Location)
	require.Equal(t, token.Location{Line: 2, Column: 5, Offset: 8}, tokens[2].Location)
}

func TestLexerErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		code     string
		expected []token.Type
	}{
		{
			name:     "bad character",
			input:    "for # c",
			code:     exc.CodeLexError,
			expected: []token.Type{token.TypeKeywordFor},
		},
		{
			name:     "bad escape",
			input:    `encode "\q"`,
			code:     exc.CodeInvalidLiteral,
			expected: []token.Type{token.TypeKeywordEncode},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			tokens, reporter := lexAll(t, testCase.input)
			actual := make([]token.Type, 0, len(tokens))
			for _, tok := range tokens {
				actual = append(actual, tok.Type)
			}
			require.Equal(t, testCase.expected, actual)
			reported := reporter.Reported()
			require.Len(t, reported, 1)
			require.Equal(t, testCase.code, reported[0].Code())
		})
	}
}
