package exc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/wcps.go/internal/token"
)

func TestParseErrorMessages(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      *ParseError
		code     string
		expected string
	}{
		{
			name: "unexpected token",
			err: &ParseError{
				Kind:     KindUnexpectedToken,
				Rule:     "forClause",
				Expected: []string{")"},
				Found:    "return",
				Pos:      Location{Location: token.Location{Line: 1, Column: 14, Offset: 13}},
			},
			code:     CodeUnexpectedToken,
			expected: `1:14 -- W0006: unexpected return in forClause (expecting ")")`,
		},
		{
			name: "end of input with uri",
			err: &ParseError{
				Kind:     KindUnexpectedEndOfInput,
				Rule:     "encode",
				Expected: []string{",", ")"},
				Pos:      Location{Location: token.Location{Line: 2, Column: 3}, URI: "/q.wcps"},
			},
			code:     CodeUnexpectedEOF,
			expected: `/q.wcps:2:3 -- W0005: unexpected end of input in encode (expecting "," or ")")`,
		},
		{
			name:     "end of input without expectation",
			err:      &ParseError{Kind: KindUnexpectedEndOfInput, Rule: "coverageAtom", Found: "EOF"},
			code:     CodeUnexpectedEOF,
			expected: `0:0 -- W0005: unexpected end of input in coverageAtom`,
		},
		{
			name:     "recursion",
			err:      &ParseError{Kind: KindRecursionLimitExceeded, Rule: "coverageExpr", Depth: 8},
			code:     CodeRecursionLimitExceeded,
			expected: `0:0 -- W0008: coverageExpr nests deeper than 8`,
		},
		{
			name:     "alternatives",
			err:      &ParseError{Kind: KindAllAlternativesFailed, Rule: "coverageAtom", Found: ")"},
			code:     CodeAllAlternativesFailed,
			expected: `0:0 -- W0007: no alternative of coverageAtom matches )`,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.code, testCase.err.Code())
			require.Equal(t, testCase.expected, testCase.err.Error())
		})
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	pe := &ParseError{Kind: KindInvalidLiteral, Rule: "integer", Found: "99999999999999999999"}
	require.Equal(t, CodeInvalidLiteral, CodeOf(fmt.Errorf("query: %w", pe)))
	require.Equal(t, CodeFileNotFound, CodeOf(New(Location{URI: "x"}, CodeFileNotFound, "missing")))
	require.Equal(t, CodeUnknownFatal, CodeOf(errors.New("boom")))

	wrapped := Wrap(Location{}, CodeLexError, pe)
	require.Equal(t, CodeLexError, wrapped.Code())
	require.ErrorIs(t, wrapped, pe)
}

func TestReporter(t *testing.T) {
	t.Parallel()

	r := NewReporter([]string{CodeInvalidLiteral})
	require.Nil(t, r.Report(New(Location{}, CodeInvalidLiteral, "ignored")))
	fatal := New(Location{}, CodeLexError, "bad character")
	require.Equal(t, fatal, r.Report(fatal))
	reported := r.Reported()
	require.Len(t, reported, 2)
	reported[0] = nil
	require.NotNil(t, r.Reported()[0])
}
