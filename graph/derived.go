// Copyright 2026 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph

import (
	"context"

	"github.com/cayleygraph/rdfstore/term"
)

// Helpers in this file implement parts of the Store contract on top of
// Triples, for backends that have nothing faster.

type tripleKey [3]term.Hash

func keyOf(t term.Triple) tripleKey {
	return tripleKey{term.HashOf(t.Subject), term.HashOf(t.Predicate), term.HashOf(t.Object)}
}

// CountTriples returns the number of distinct triples in ctx, or visible to
// the union view if ctx is nil.
func CountTriples(s Store, ctx term.Term) int {
	seen := make(map[tripleKey]struct{})
	it := s.Triples(term.Wildcard, ctx)
	defer it.Close()
	for it.Next(context.Background()) {
		seen[keyOf(it.Result().Triple)] = struct{}{}
	}
	return len(seen)
}

// DistinctContexts returns the contexts of the union view holding a match
// for pattern, or all of them if pattern is nil. Quoted-only contexts are
// not reported.
func DistinctContexts(s Store, pattern *term.Triple) []term.Term {
	p := term.Wildcard
	if pattern != nil {
		p = *pattern
	}
	seen := make(map[term.Hash]struct{})
	var out []term.Term
	it := s.Triples(p, nil)
	defer it.Close()
	for it.Next(context.Background()) {
		c := it.Result().Context
		if c == nil {
			continue
		}
		h := term.HashOf(c)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, c)
	}
	return out
}

// ContainsLiteral reports whether a stored triple matches pattern. Literal
// objects are matched by content: the store is queried with the object
// wildcarded and candidates are compared with term.Equal.
func ContainsLiteral(s Store, pattern term.Triple, ctx term.Term) bool {
	lit, isLit := pattern.Object.(term.Literal)
	q := pattern
	if isLit {
		q.Object = nil
	}
	it := s.Triples(q, ctx)
	defer it.Close()
	for it.Next(context.Background()) {
		if !isLit {
			return true
		}
		if o, ok := it.Result().Triple.Object.(term.Literal); ok && o.Equal(lit) {
			return true
		}
	}
	return false
}
