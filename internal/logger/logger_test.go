// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamed(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	l, err := New(Logging{Env: "prod", Level: "info"}, &out)
	require.NoError(t, err)

	child := l.Named("frontend", "cache")
	require.Equal(t, "FRONTEND.CACHE", child.Module())
	grandchild := child.Named("lru")
	require.Equal(t, "FRONTEND.CACHE.LRU", grandchild.Module())

	child.Info().Int("size", 3).Msg("hit")
	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	require.Equal(t, "FRONTEND.CACHE", entry["module"])
	require.Equal(t, "hit", entry["message"])
	require.Equal(t, float64(3), entry["size"])
}

func TestLevelFilter(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	l, err := New(Logging{Env: "prod", Level: "warn"}, &out)
	require.NoError(t, err)
	l.Debug().Msg("hidden")
	require.Zero(t, out.Len())
	l.Warn().Msg("shown")
	require.NotZero(t, out.Len())
}

func TestBadLevel(t *testing.T) {
	t.Parallel()
	_, err := New(Logging{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestFetch(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	l, err := New(Logging{Level: "info"}, &out)
	require.NoError(t, err)
	ctx := l.Named("cli").WithContext(context.Background())
	require.Equal(t, "CLI.PARSE", Fetch(ctx, "parse").Module())

	fallback := l.Named("fallback")
	require.Same(t, fallback, FetchOrDefault(context.Background(), "parse", fallback))
}
