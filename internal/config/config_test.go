// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// Environment changes keep these tests serial.

func TestLoadEnv(t *testing.T) {
	testCases := []struct {
		flagName string
		envName  string
		envValue string
	}{
		{flagName: "max-depth", envName: "WCPS_MAX_DEPTH", envValue: "64"},
		{flagName: "log-level", envName: "WCPS_LOG_LEVEL", envValue: "debug"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.flagName, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			var value string
			fs.StringVar(&value, testCase.flagName, "", "")
			t.Setenv(testCase.envName, testCase.envValue)
			require.NoError(t, Load(fs, WithPaths(t.TempDir())))
			require.Equal(t, testCase.envValue, value)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "max-depth: 32\nroot: /srv/queries\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, Name+".yaml"), []byte(content), 0o600))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	depth := fs.Int("max-depth", 256, "")
	root := fs.String("root", "", "")
	format := fs.String("format", "yaml", "")
	require.NoError(t, Load(fs, WithPaths(dir)))
	require.Equal(t, 32, *depth)
	require.Equal(t, "/srv/queries", *root)
	require.Equal(t, "yaml", *format)
}

func TestLoadFlagWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Name+".yaml"), []byte("max-depth: 32\n"), 0o600))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	depth := fs.Int("max-depth", 256, "")
	require.NoError(t, fs.Parse([]string{"--max-depth=8"}))
	require.NoError(t, Load(fs, WithPaths(dir)))
	require.Equal(t, 8, *depth)
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Name+".yaml"), []byte("max-depth: [\n"), 0o600))
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("max-depth", 256, "")
	require.Error(t, Load(fs, WithPaths(dir)))
}
