// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build aix || darwin || dragonfly || freebsd || (js && wasm) || linux || netbsd || openbsd || solaris

package fs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRoots(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"XDG_DATA_DIRS": "/opt/share:$HOME/.local/share",
		"HOME":          "/home/wcps",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	require.Equal(t, []string{
		"/opt/share/wcps/queries",
		"/home/wcps/.local/share/wcps/queries",
	}, getDefaultRoots(lookup))

	none := func(string) (string, bool) { return "", false }
	require.Equal(t, []string{
		"/usr/local/share/wcps/queries",
		"/usr/share/wcps/queries",
	}, getDefaultRoots(none))
}
