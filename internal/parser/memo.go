// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import "gopkg.microglot.org/wcps.go/internal/ast"

type memoKey struct {
	rule  string
	index int
	vars  bool
}

// memoEntry holds the outcome of one rule at one position. A nil node is a
// failure.
type memoEntry struct {
	node ast.Node
	end  int
}

// memoize runs parse at most once per rule, position, and variable mode.
// Results are not stored once the parse has failed fatally.
func memoize[N ast.Node](p *parser, rule string, parse func() N) N {
	var zero N
	key := memoKey{rule: rule, index: p.index(), vars: p.vars}
	if entry, ok := p.memo[key]; ok {
		if entry.node == nil {
			return zero
		}
		p.rewind(entry.end)
		return entry.node.(N)
	}

	node := parse()
	if p.fatal != nil {
		return zero
	}
	if any(node) == nil {
		p.memo[key] = memoEntry{}
		p.rewind(key.index)
		return zero
	}
	p.memo[key] = memoEntry{node: node, end: p.index()}
	return node
}
