// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/wcps.go/internal/ast"
	"gopkg.microglot.org/wcps.go/internal/exc"
	"gopkg.microglot.org/wcps.go/internal/lexer"
	"gopkg.microglot.org/wcps.go/internal/optional"
)

var treeOptions = cmp.AllowUnexported(optional.Optional[string]{})

func parse(t *testing.T, query string, opts ...Option) (*ast.Request, error) {
	t.Helper()
	ctx := context.Background()
	tokens, err := lexer.New(exc.NewReporter(nil)).LexString(ctx, "", query)
	require.NoError(t, err)
	return Parse(ctx, tokens, opts...)
}

func parseError(t *testing.T, query string, opts ...Option) *exc.ParseError {
	t.Helper()
	_, err := parse(t, query, opts...)
	require.Error(t, err)
	var perr *exc.ParseError
	require.True(t, errors.As(err, &perr), "expected a parse error, got %T", err)
	return perr
}

func bindings(variable string, coverages ...string) *ast.ForClause {
	return &ast.ForClause{Bindings: []ast.Binding{{Variable: variable, Coverages: coverages}}}
}

func integer(v int64) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{Value: v}
}

func bound(v int64) ast.DimensionBound {
	return &ast.ScalarBound{Scalar: integer(v)}
}

func TestParse(t *testing.T) {
	t.Parallel()
	c := &ast.CoverageVariable{Name: "c"}
	testCases := []struct {
		name     string
		input    string
		expected *ast.Request
	}{
		{
			name:  "encode",
			input: `for c in (MyCov) return encode(c, "png")`,
			expected: &ast.Request{
				For: bindings("c", "MyCov"),
				Return: &ast.ReturnClause{Body: &ast.Encode{
					Coverage: c,
					Format:   "png",
					Params:   optional.None[string](),
				}},
			},
		},
		{
			name:  "where clause",
			input: `for c in (A, B) where c = 1 return c`,
			expected: &ast.Request{
				For: bindings("c", "A", "B"),
				Where: &ast.WhereClause{Condition: &ast.NumericComparison{
					Op:    ast.OpEqual,
					Left:  &ast.NumericVariable{Name: "c"},
					Right: integer(1),
				}},
				Return: &ast.ReturnClause{Body: &ast.CoverageResult{Coverage: c}},
			},
		},
		{
			name:  "trim",
			input: `for c in (A) return c[x(0:10),y(0:20)]`,
			expected: &ast.Request{
				For: bindings("c", "A"),
				Return: &ast.ReturnClause{Body: &ast.CoverageResult{Coverage: &ast.Trim{
					Coverage: c,
					Intervals: []*ast.DimensionInterval{
						{Axis: "x", Crs: optional.None[string](), Lo: bound(0), Hi: bound(10)},
						{Axis: "y", Crs: optional.None[string](), Lo: bound(0), Hi: bound(20)},
					},
				}}},
			},
		},
		{
			name:  "switch",
			input: `for c in (A) return switch case c>0 return 1 default return 0`,
			expected: &ast.Request{
				For: bindings("c", "A"),
				Return: &ast.ReturnClause{Body: &ast.CoverageResult{Coverage: &ast.Switch{
					Cases: []ast.SwitchCase{{
						Condition: &ast.CoverageBinary{
							Op:    ast.OpGreater,
							Left:  c,
							Right: &ast.CoverageScalar{Scalar: integer(0)},
						},
						Result: &ast.CoverageScalar{Scalar: integer(1)},
					}},
					Default: &ast.CoverageScalar{Scalar: integer(0)},
				}}},
			},
		},
		{
			name:  "coverage precedence",
			input: `for c in (A) return a+b-c*d`,
			expected: &ast.Request{
				For: bindings("c", "A"),
				Return: &ast.ReturnClause{Body: &ast.CoverageResult{Coverage: &ast.CoverageBinary{
					Op: ast.OpSub,
					Left: &ast.CoverageBinary{
						Op:    ast.OpAdd,
						Left:  &ast.CoverageVariable{Name: "a"},
						Right: &ast.CoverageVariable{Name: "b"},
					},
					Right: &ast.CoverageBinary{
						Op:    ast.OpMul,
						Left:  c,
						Right: &ast.CoverageVariable{Name: "d"},
					},
				}}},
			},
		},
		{
			name:  "numeric precedence",
			input: `for c in (A) return 1+2-3*4`,
			expected: &ast.Request{
				For: bindings("c", "A"),
				Return: &ast.ReturnClause{Body: &ast.ScalarResult{Scalar: &ast.NumericBinary{
					Op:    ast.OpSub,
					Left:  &ast.NumericBinary{Op: ast.OpAdd, Left: integer(1), Right: integer(2)},
					Right: &ast.NumericBinary{Op: ast.OpMul, Left: integer(3), Right: integer(4)},
				}}},
			},
		},
		{
			name:  "slice",
			input: `for c in (A) return c[x(5)]`,
			expected: &ast.Request{
				For: bindings("c", "A"),
				Return: &ast.ReturnClause{Body: &ast.CoverageResult{Coverage: &ast.Slice{
					Coverage: c,
					Points:   []*ast.DimensionPoint{{Axis: "x", Crs: optional.None[string](), Value: bound(5)}},
				}}},
			},
		},
		{
			name:  "mixed subset",
			input: `for c in (A) return c[x(0:10), y(5)]`,
			expected: &ast.Request{
				For: bindings("c", "A"),
				Return: &ast.ReturnClause{Body: &ast.CoverageResult{Coverage: &ast.MixedSubset{
					Coverage: c,
					Elements: []ast.DimensionElement{
						&ast.DimensionInterval{Axis: "x", Crs: optional.None[string](), Lo: bound(0), Hi: bound(10)},
						&ast.DimensionPoint{Axis: "y", Crs: optional.None[string](), Value: bound(5)},
					},
				}}},
			},
		},
		{
			name:  "name without call is a variable",
			input: `for c in (A) return c`,
			expected: &ast.Request{
				For:    bindings("c", "A"),
				Return: &ast.ReturnClause{Body: &ast.CoverageResult{Coverage: c}},
			},
		},
		{
			name:  "identifier call is metadata",
			input: `for c in (A) return identifier(c)`,
			expected: &ast.Request{
				For:    bindings("c", "A"),
				Return: &ast.ReturnClause{Body: &ast.ScalarResult{Scalar: &ast.GenericCall{Name: "identifier", Coverage: c}}},
			},
		},
		{
			name:  "comparison beats reduce",
			input: `for c in (A) return count(c) > 1`,
			expected: &ast.Request{
				For: bindings("c", "A"),
				Return: &ast.ReturnClause{Body: &ast.ScalarResult{Scalar: &ast.NumericComparison{
					Op:    ast.OpGreater,
					Left:  &ast.Reduce{Op: ast.OpCount, Coverage: c},
					Right: integer(1),
				}}},
			},
		},
		{
			name:  "empty crs list",
			input: `for c in (A) return setCrsSet(c, {})`,
			expected: &ast.Request{
				For:    bindings("c", "A"),
				Return: &ast.ReturnClause{Body: &ast.CoverageResult{Coverage: &ast.SetCrsSet{Coverage: c, Crs: []string{}}}},
			},
		},
		{
			name:  "keyword axis names",
			input: `for $c in (A) return $c[Long:"EPSG:4326"(domain($c:Long:"EPSG:4326"):10)]`,
			expected: &ast.Request{
				For: bindings("$c", "A"),
				Return: &ast.ReturnClause{Body: &ast.CoverageResult{Coverage: &ast.Trim{
					Coverage: &ast.CoverageVariable{Name: "$c"},
					Intervals: []*ast.DimensionInterval{{
						Axis: "Long",
						Crs:  optional.Some("EPSG:4326"),
						Lo:   &ast.DomainOf{Coverage: "$c", Axis: "Long", Crs: "EPSG:4326"},
						Hi:   bound(10),
					}},
				}}},
			},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			actual, err := parse(t, testCase.input)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(testCase.expected, actual, treeOptions))
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		kind     exc.ParseErrorKind
		rule     string
		expected []string
		found    string
		index    int
	}{
		{
			name:     "unclosed coverage list",
			input:    `for c in (A return c`,
			kind:     exc.KindUnexpectedToken,
			rule:     "forClause",
			expected: []string{")"},
			found:    "return",
		},
		{
			name:     "empty coverage list",
			input:    `for c in () return c`,
			kind:     exc.KindUnexpectedToken,
			rule:     "forClause",
			expected: []string{"name"},
			found:    ")",
		},
		{
			name:     "trailing tokens",
			input:    `for c in (A) return c c`,
			kind:     exc.KindUnexpectedToken,
			rule:     "request",
			expected: []string{"EOF"},
			found:    "c",
		},
		{
			name:     "unquoted format",
			input:    `for c in (A) return encode(c, png)`,
			kind:     exc.KindUnexpectedToken,
			rule:     "encode",
			expected: []string{"string"},
			found:    "png",
		},
		{
			name:  "missing return body",
			input: `for c in (A) return`,
			kind:  exc.KindUnexpectedEndOfInput,
			found: "EOF",
		},
		{
			name:     "scale without arguments",
			input:    `for c in (A) return scale c`,
			kind:     exc.KindUnexpectedToken,
			rule:     "scaleExpr",
			expected: []string{"("},
			found:    "c",
		},
		{
			name:     "crsTransform without arguments",
			input:    `for c in (A) return crsTransform c`,
			kind:     exc.KindUnexpectedToken,
			rule:     "crsTransformExpr",
			expected: []string{"("},
			found:    "c",
		},
		{
			name:  "no alternative matches",
			input: `for c in (A) return )`,
			kind:  exc.KindAllAlternativesFailed,
			rule:  "numericScalarFactor",
			found: ")",
			index: 7,
		},
		{
			// The numeric sqrt fails at c. The coverage sqrt reads c + and
			// fails later, at the closing parenthesis.
			name:  "furthest alternative wins",
			input: `for c in (A) return sqrt(c + )`,
			kind:  exc.KindAllAlternativesFailed,
			rule:  "numericScalarFactor",
			found: ")",
			index: 11,
		},
		{
			name:  "integer overflow",
			input: `for c in (A) return 99999999999999999999`,
			kind:  exc.KindInvalidLiteral,
			rule:  "integer",
			found: "99999999999999999999",
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			perr := parseError(t, testCase.input)
			require.Equal(t, testCase.kind, perr.Kind)
			require.Equal(t, testCase.found, perr.Found)
			if testCase.rule != "" {
				require.Equal(t, testCase.rule, perr.Rule)
			}
			if testCase.expected != nil {
				require.Equal(t, testCase.expected, perr.Expected)
			}
			if testCase.index != 0 {
				require.Equal(t, testCase.index, perr.Index)
			}
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	t.Parallel()
	perr := parseError(t, `for c in (A return c`)
	require.Equal(t, 1, perr.Pos.Line)
	require.Equal(t, 13, perr.Pos.Column)
	require.Equal(t, 5, perr.Index)
}

func TestRecursionLimit(t *testing.T) {
	t.Parallel()
	nested := func(depth int) string {
		return "for c in (A) return " + strings.Repeat("(", depth) + "c" + strings.Repeat(")", depth)
	}

	perr := parseError(t, nested(100), WithMaxDepth(16))
	require.Equal(t, exc.KindRecursionLimitExceeded, perr.Kind)
	require.Equal(t, 16, perr.Depth)

	request, err := parse(t, nested(40))
	require.NoError(t, err)
	var inner ast.CoverageExpr = request.Return.Body.(*ast.CoverageResult).Coverage
	for depth := 0; depth < 40; depth = depth + 1 {
		paren, ok := inner.(*ast.CoverageParen)
		require.True(t, ok, "depth %d is %T", depth, inner)
		inner = paren.Inner
	}
	require.Equal(t, &ast.CoverageVariable{Name: "c"}, inner)
}

func TestParseCanceled(t *testing.T) {
	t.Parallel()
	tokens, err := lexer.New(exc.NewReporter(nil)).LexString(context.Background(), "", `for c in (A) return c`)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Parse(ctx, tokens)
	require.ErrorIs(t, err, context.Canceled)
}
