// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/wcps.go/internal/exc"
)

func queryDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// execute runs wcpsc with a config search path that holds no config file.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{args[0], "--config-path", t.TempDir()}, args[1:]...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Parallel()
	cmd := NewRootCommand()
	require.Equal(t, "wcpsc", cmd.Use)
	for _, name := range []string{"parse", "fmt"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, sub.Name())
	}
	depth := cmd.PersistentFlags().Lookup("max-depth")
	require.NotNil(t, depth)
	require.Equal(t, "256", depth.DefValue)
}

func TestParseExpression(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "quiet",
			args:     []string{"parse", "-e", `for c in (A) return c`},
			contains: nil,
		},
		{
			name:     "yaml",
			args:     []string{"parse", "--dump-tree", "-e", `for c in (A) return c`},
			contains: []string{"type: Request", "type: CoverageVariable", "name: c"},
		},
		{
			name:     "json",
			args:     []string{"parse", "--dump-tree", "--format", "json", "-e", `for c in (A) return c`},
			contains: []string{`"type": "Request"`, `"type": "CoverageVariable"`},
		},
		{
			name:     "tokens",
			args:     []string{"parse", "--dump-tokens", "-e", `FOR c in (A) return c`},
			contains: []string{"1:1\tfor\t\"FOR\"", "1:5\tname\t\"c\"", "EOF"},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			out, errOut, err := execute(t, testCase.args...)
			require.NoError(t, err)
			require.Empty(t, errOut)
			if testCase.contains == nil {
				require.Empty(t, out)
			}
			for _, want := range testCase.contains {
				require.Contains(t, out, want)
			}
		})
	}
}

func TestParseRejected(t *testing.T) {
	t.Parallel()
	_, errOut, err := execute(t, "parse", "-e", `for c in (A return c`)
	require.ErrorIs(t, err, ErrRejected)
	require.Contains(t, errOut, "1:13 -- "+exc.CodeUnexpectedToken)
}

func TestParseUsage(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		args []string
	}{
		{name: "format", args: []string{"parse", "--format", "xml", "-e", `for c in (A) return c`}},
		{name: "none", args: []string{"parse"}},
		{name: "both", args: []string{"parse", "-e", `for c in (A) return c`, "a.wcps"}},
		{name: "depth", args: []string{"parse", "--max-depth", "0", "-e", `for c in (A) return c`}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := execute(t, testCase.args...)
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrRejected)
		})
	}
}

func TestParseFiles(t *testing.T) {
	t.Parallel()
	dir := queryDir(t, map[string]string{
		"queries/a.wcps": `for c in (A) return c`,
		"queries/b.wcps": `for c in (B) return`,
	})

	out, errOut, err := execute(t, "parse", "--root", dir, "--dump-tree", "queries")
	require.ErrorIs(t, err, ErrRejected)
	require.Contains(t, out, "path: queries/a.wcps")
	require.NotContains(t, out, "queries/b.wcps")
	require.Contains(t, errOut, exc.CodeUnexpectedEOF)
	require.Contains(t, errOut, "queries/b.wcps:1:")

	out, errOut, err = execute(t, "parse", "--root", dir, "--dump-tokens", "queries/a.wcps")
	require.NoError(t, err)
	require.Empty(t, errOut)
	require.Contains(t, out, "# /queries/a.wcps\n1:1\tfor\t\"for\"")
}

func TestFmt(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "fmt", "-e", `for $c in (A,B), $d in (C) where $c = 1 return $c+$d`)
	require.NoError(t, err)
	require.Equal(t, "for $c in (A, B), $d in (C) where $c = 1 return $c + $d\n", out)

	_, errOut, err := execute(t, "fmt", "-e", `for c in (A) return`)
	require.ErrorIs(t, err, ErrRejected)
	require.Contains(t, errOut, exc.CodeUnexpectedEOF)
}

func TestFmtWrite(t *testing.T) {
	t.Parallel()
	dir := queryDir(t, map[string]string{
		"a.wcps": `FOR c IN (A) RETURN encode(c,"png")`,
	})
	out, _, err := execute(t, "fmt", "--root", dir, "-w", "a.wcps")
	require.NoError(t, err)
	require.Empty(t, out)
	b, err := os.ReadFile(filepath.Join(dir, "a.wcps"))
	require.NoError(t, err)
	require.Equal(t, "for c in (A) return encode(c, \"png\")\n", string(b))
}
