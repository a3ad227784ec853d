// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/wcps.go/internal/optional"
)

func TestDump(t *testing.T) {
	t.Parallel()
	tree := request(&Encode{
		Coverage: &CoverageUnary{Op: OpAbs, Operand: &CoverageVariable{Name: "$c"}},
		Format:   "csv",
		Params:   optional.None[string](),
	})

	expected := map[string]any{
		"type": "Request",
		"for": map[string]any{
			"type": "ForClause",
			"bindings": []any{
				map[string]any{
					"type":      "Binding",
					"variable":  "$c",
					"coverages": []any{"mean_summer_airtemp"},
				},
			},
		},
		"where": nil,
		"return": map[string]any{
			"type": "ReturnClause",
			"body": map[string]any{
				"type": "Encode",
				"coverage": map[string]any{
					"type":    "CoverageUnary",
					"op":      "abs",
					"operand": map[string]any{"type": "CoverageVariable", "name": "$c"},
				},
				"format": "csv",
				"params": nil,
			},
		},
	}
	require.Equal(t, expected, Dump(tree))
}

func TestDumpOptionalPresent(t *testing.T) {
	t.Parallel()
	out := Dump(&ImageCrsDomain{Coverage: &CoverageVariable{Name: "$c"}, Axis: optional.Some("Lat")})
	require.Equal(t, "Lat", out.(map[string]any)["axis"])
}
