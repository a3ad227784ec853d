// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package logger provides the scoped zerolog loggers used by the frontend and
// the wcpsc command.
package logger

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// ContextKey carries a *Logger through a context.
var ContextKey = contextKey{}

type contextKey struct{}

// Logging is the logger configuration. Env selects the output format: "dev"
// writes a human readable console format and anything else writes JSON lines.
type Logging struct {
	Env   string
	Level string
}

type Logger struct {
	*zerolog.Logger
	// base has no module field so that children do not repeat it.
	base   *zerolog.Logger
	module string
}

func (l *Logger) Module() string {
	return l.module
}

// Named returns a child logger whose module is this logger's module followed
// by name, joined with dots and upper cased.
func (l *Logger) Named(name ...string) *Logger {
	var mm []string
	if l.module == rootName {
		mm = name
	} else {
		mm = append([]string{l.module}, name...)
	}
	var moduleBuilder strings.Builder
	for i, m := range mm {
		if i != 0 {
			moduleBuilder.WriteString(".")
		}
		moduleBuilder.WriteString(strings.ToUpper(m))
	}
	module := moduleBuilder.String()
	subLogger := l.base.With().Str("module", module).Logger()
	return &Logger{module: module, base: l.base, Logger: &subLogger}
}

// WithContext stores l in ctx for Fetch.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKey, l)
}

// Fetch returns a child of the logger carried by ctx, or a new logger from
// the root when ctx has none.
func Fetch(ctx context.Context, newModuleName string) *Logger {
	return FetchOrDefault(ctx, newModuleName, nil)
}

func FetchOrDefault(ctx context.Context, newModuleName string, defaultLogger *Logger) *Logger {
	parentLogger := ctx.Value(ContextKey)
	if parentLogger != nil {
		if pl, ok := parentLogger.(*Logger); ok {
			return pl.Named(newModuleName)
		}
	}
	if defaultLogger == nil {
		return GetLogger(newModuleName)
	}
	return defaultLogger
}
