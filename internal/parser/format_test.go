// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/wcps.go/internal/ast"
)

// TestFormatRoundTrip checks the canonical text of each query against a
// golden file and confirms that the text parses back to the same tree.
func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		input string
	}{
		{name: "encode", input: `for c in (MyCov) return encode(c, "png")`},
		{name: "where", input: `for $c in (A,B), $d in (C) where $c = 1 return $c+$d`},
		{name: "trim", input: `for c in (A) return c[x(0:10),y(0:20)]`},
		{name: "switch", input: `for c in (A) return switch case c>0 return 1 default return 0`},
		{name: "scale", input: `for $c in (mean_summer_airtemp) return encode(scale($c[Lat:"EPSG:4326"(-30.5:-10)], {Lat(0:100)}, {red(linear:none)}), "image/tiff", "compression=lzw")`},
		{name: "reduce", input: `for c in (A) return count(c > 0) > 10 and min(c) < 0`},
		{name: "condense", input: `for c in (A) return condense + over $x x(0:10), $y y(imageCrsDomain(c, y)) where $x > 2 using c[x($x), y($y)]`},
		{name: "cast", input: `for c in (A) return (unsigned short) (c + 1) * 2`},
		{name: "range_constructor", input: `for c in (A) return {red: c.red * 0.5; green: sqrt(abs(c.green)); blue: -c}`},
		{name: "null_set", input: `for c in (A) return setNullSet(setIdentifier("B", c), {struct {r: 0; g: 1}, -9999})`},
		{name: "constructor", input: `for c in (A) return coverage histogram over $b bucket(0:255) values count(c = $b)`},
		{name: "constant", input: `for c in (A) return coverage k over $i i(0:1), $j j(0:1) value list <1; 2.5; -3; (1.0, 2.0)>`},
		{name: "crs_transform", input: `for c in (A) return crsTransform(c, {Lat:"EPSG:4326", Long:"EPSG:4326"}, {red(nearest:full)})`},
		{name: "keyword_trim", input: `for c in (A) return trim(c + 1, {x(domain(c:x:"CRS:1"):100)})`},
		{name: "overlay", input: `for c in (A) return extend(c, {x(0:511)}) overlay bit(c, 2 + 1) / imageCrsDomain(c, x)`},
		{name: "store", input: `for c in (A) where identifier(c) != "x" and not (c > 1 or false) return store(encode(c[t("2020-01-01")], "netcdf"))`},
		{name: "interpolation", input: `for c in (A) return setInterpolationDefault(c, red, (cubic:half)) + setInterpolationSet(c, red, {})`},
		{name: "mixed", input: `for c in (A) return c[x(0:10), y(5)]`},
		{name: "numeric", input: `for c in (A) return avg(c) * (1 + 2) - abs(-3.5)`},
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			first, err := parse(t, testCase.input)
			require.NoError(t, err)
			text := ast.Format(first)
			g.Assert(t, testCase.name, []byte(text))

			second, err := parse(t, text)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(first, second, treeOptions))
			require.Equal(t, text, ast.Format(second))
		})
	}
}
