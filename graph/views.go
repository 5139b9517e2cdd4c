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

// NewQuoted returns a formula graph: its triples are stored quoted, so they
// are only visible to queries naming the formula context.
func NewQuoted(s Store, id term.Term, opts ...Option) *Graph {
	g := New(s, id, opts...)
	g.quoted = true
	return g
}

// NewConjunctive returns a graph reading across every context of s.
// Writes go to the store identifier context.
func NewConjunctive(s Store, opts ...Option) *Graph {
	g := New(s, s.Identifier(), opts...)
	g.union = true
	return g
}

// Aggregate is a read-only union of several views.
type Aggregate struct {
	id     term.Term
	graphs []View
}

// NewAggregate combines graphs into one read-only view.
func NewAggregate(graphs ...View) *Aggregate {
	return &Aggregate{id: term.DefaultGenerator().New(), graphs: graphs}
}

func (a *Aggregate) Identifier() term.Term { return a.id }

// Graphs returns the members of the aggregate.
func (a *Aggregate) Graphs() []View { return append([]View(nil), a.graphs...) }

func (a *Aggregate) Add(t term.Triple) error {
	return &ContractError{Op: "add", Graph: a.id, Err: ErrReadOnly}
}

func (a *Aggregate) Remove(pattern term.Triple) error {
	return &ContractError{Op: "remove", Graph: a.id, Err: ErrReadOnly}
}

func (a *Aggregate) Triples(pattern term.Triple) Iterator {
	var out []Result
	for _, g := range a.graphs {
		res, err := All(context.Background(), g.Triples(pattern))
		if err != nil {
			return Error(err)
		}
		out = append(out, res...)
	}
	return NewSliceIterator(out)
}

func (a *Aggregate) Contains(pattern term.Triple) bool {
	for _, g := range a.graphs {
		if g.Contains(pattern) {
			return true
		}
	}
	return false
}

// Size returns the number of distinct triples across all members.
func (a *Aggregate) Size() int {
	seen := make(map[tripleKey]struct{})
	it := a.Triples(term.Wildcard)
	defer it.Close()
	for it.Next(context.Background()) {
		seen[keyOf(it.Result().Triple)] = struct{}{}
	}
	return len(seen)
}

func (a *Aggregate) Bnodes() map[term.BNode]int { return bnodes(a) }

func (a *Aggregate) Subjects() []term.Term   { return distinct(a, term.Subject) }
func (a *Aggregate) Predicates() []term.Term { return distinct(a, term.Predicate) }
func (a *Aggregate) Objects() []term.Term    { return distinct(a, term.Object) }

// Equal applies the same weak equivalence check as Graph.Equal.
func (a *Aggregate) Equal(other View) bool { return equalViews(a, other) }
