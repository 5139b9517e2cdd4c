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
	"sort"

	"github.com/cayleygraph/rdfstore/term"
)

// Merge copies every triple of other into g. Each blank node of other is
// replaced by a fresh one, so unrelated blank nodes that happen to share an
// identifier are never unified.
func (g *Graph) Merge(other View) error {
	res, err := All(context.Background(), other.Triples(term.Wildcard))
	if err != nil {
		return err
	}
	subst := make(map[term.BNode]term.BNode)
	rename := func(t term.Term) term.Term {
		b, ok := t.(term.BNode)
		if !ok {
			return t
		}
		nb, ok := subst[b]
		if !ok {
			nb = g.gen.New()
			subst[b] = nb
		}
		return nb
	}
	for _, r := range res {
		if err := g.Add(r.Triple.Map(rename)); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether two graphs look equivalent: same size, same
// identifier, same sorted multiset of blank node usage counts, and every
// triple of g without a blank subject or object is contained in other.
// It is not a full isomorphism check; graphs that differ only in how
// interchangeable blank nodes are connected compare equal.
func (g *Graph) Equal(other View) bool {
	return equalViews(g, other)
}

func equalViews(a, b View) bool {
	if a.Size() != b.Size() {
		return false
	}
	if term.StringOf(a.Identifier()) != term.StringOf(b.Identifier()) {
		return false
	}
	ca, cb := usageCounts(a), usageCounts(b)
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}
	it := a.Triples(term.Wildcard)
	defer it.Close()
	for it.Next(context.Background()) {
		t := it.Result().Triple
		if t.Subject.Kind() == term.KindBNode || t.Object.Kind() == term.KindBNode {
			continue
		}
		if !b.Contains(t) {
			return false
		}
	}
	return it.Err() == nil
}

func usageCounts(v View) []int {
	m := v.Bnodes()
	out := make([]int, 0, len(m))
	for _, n := range m {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
