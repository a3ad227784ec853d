// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package idl holds the interfaces shared between the lexer, the parser, the
// file systems, and the frontend.
package idl

import (
	"context"
	"fmt"

	"gopkg.microglot.org/wcps.go/internal/optional"
	"gopkg.microglot.org/wcps.go/internal/token"
)

type Closer interface {
	Close(ctx context.Context) error
}

type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(ctx context.Context, n uint8) optional.Optional[T]
}

type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

type Reader interface {
	Read(ctx context.Context, size int32) ([]byte, error)
}

type FileBody interface {
	Reader
	Closer
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	FileKindQuery
)

func (k FileKind) String() string {
	switch k {
	case FileKindNone:
		return "none"
	case FileKindQuery:
		return "wcps"
	default:
		return fmt.Sprintf("unknown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	Body(ctx context.Context) (FileBody, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}

type LexerFile interface {
	File
	Tokens(ctx context.Context) (Iterator[token.Token], error)
}

type Lexer interface {
	Lex(ctx context.Context, f File) (LexerFile, error)
}
