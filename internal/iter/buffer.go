// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package iter

import (
	"context"

	"gopkg.microglot.org/wcps.go/internal/idl"
	"gopkg.microglot.org/wcps.go/internal/optional"
)

var _ idl.Lookahead[int] = (*Buffer[int])(nil)

// Buffer wraps an iterator with unbounded lookahead and the ability to return
// to any earlier position. Values are pulled from the underlying iterator only
// when a lookahead or a call to Next requires them and are retained for the
// life of the Buffer.
//
// Lookahead(ctx, 0) is the value that the next call to Next will return.
type Buffer[T any] struct {
	iter   idl.Iterator[T]
	values []T
	done   bool
	offset int
}

// NewBuffer wraps the given iterator in a Buffer.
func NewBuffer[T any](it idl.Iterator[T]) *Buffer[T] {
	return &Buffer[T]{iter: it}
}

// fill pulls values until position n is buffered or the iterator runs out.
func (b *Buffer[T]) fill(ctx context.Context, n int) bool {
	for len(b.values) <= n {
		if b.done {
			return false
		}
		v := b.iter.Next(ctx)
		if !v.IsPresent() {
			b.done = true
			return false
		}
		b.values = append(b.values, v.Value())
	}
	return true
}

func (b *Buffer[T]) Next(ctx context.Context) optional.Optional[T] {
	if !b.fill(ctx, b.offset) {
		return optional.None[T]()
	}
	v := b.values[b.offset]
	b.offset = b.offset + 1
	return optional.Some(v)
}

func (b *Buffer[T]) Lookahead(ctx context.Context, n uint8) optional.Optional[T] {
	return b.Peek(ctx, int(n))
}

// Peek is Lookahead without the uint8 bound on the offset.
func (b *Buffer[T]) Peek(ctx context.Context, n int) optional.Optional[T] {
	if !b.fill(ctx, b.offset+n) {
		return optional.None[T]()
	}
	return optional.Some(b.values[b.offset+n])
}

// Mark returns the current position for a later call to Rewind.
func (b *Buffer[T]) Mark() int {
	return b.offset
}

// Rewind returns the buffer to a position previously returned by Mark. Marks
// beyond the buffered values are clamped.
func (b *Buffer[T]) Rewind(mark int) {
	if mark < 0 {
		mark = 0
	}
	if mark > len(b.values) {
		mark = len(b.values)
	}
	b.offset = mark
}

func (b *Buffer[T]) Close(ctx context.Context) error {
	return b.iter.Close(ctx)
}
