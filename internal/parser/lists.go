// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import "gopkg.microglot.org/wcps.go/internal/token"

// parseList parses element { sep element }. At least one element is required.
func parseList[T any](p *parser, sep token.Type, element func() (T, bool)) ([]T, bool) {
	first, ok := element()
	if !ok {
		return nil, false
	}
	values := []T{first}
	for p.peek().Is(sep) {
		p.advance()
		next, ok := element()
		if !ok {
			return nil, false
		}
		values = append(values, next)
	}
	return values, true
}

// parseEnclosedList parses open list closing where list is parseList(sep).
// With allowEmpty, open followed directly by closing yields an empty, non-nil
// slice.
func parseEnclosedList[T any](p *parser, rule string, open token.Type, sep token.Type, closing token.Type, allowEmpty bool, element func() (T, bool)) ([]T, bool) {
	if _, ok := p.expect(rule, open); !ok {
		return nil, false
	}
	if allowEmpty {
		if _, ok := p.accept(closing); ok {
			return []T{}, true
		}
	}
	values, ok := parseList(p, sep, element)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(rule, closing); !ok {
		return nil, false
	}
	return values, true
}
