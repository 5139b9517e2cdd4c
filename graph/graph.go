// Copyright 2014 The Cayley Authors. All rights reserved.
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
	"github.com/cayleygraph/rdfstore/voc/rdf"
)

// View is the read and write surface shared by Graph and Aggregate.
type View interface {
	Identifier() term.Term
	Add(t term.Triple) error
	Remove(pattern term.Triple) error
	Triples(pattern term.Triple) Iterator
	Contains(pattern term.Triple) bool
	Size() int
	// Bnodes counts the subject and object occurrences of every blank node.
	Bnodes() map[term.BNode]int
}

var (
	_ View = (*Graph)(nil)
	_ View = (*Aggregate)(nil)
)

// Option configures a Graph.
type Option func(*Graph)

// WithGenerator sets the blank node generator used for the graph identifier
// and for renaming during Merge.
func WithGenerator(gen *term.Generator) Option {
	return func(g *Graph) { g.gen = gen }
}

// Graph is a handle naming one context of a store. Graphs do not own
// triples and several handles may share one store.
type Graph struct {
	store Store
	id    term.Term
	gen   *term.Generator

	quoted bool // adds are hypothetical, see NewQuoted
	union  bool // reads span all contexts, see NewConjunctive
}

// New returns the graph id of store s. A nil id names a fresh blank node.
func New(s Store, id term.Term, opts ...Option) *Graph {
	g := &Graph{store: s, id: id}
	for _, opt := range opts {
		opt(g)
	}
	if g.gen == nil {
		g.gen = term.DefaultGenerator()
	}
	if g.id == nil {
		g.id = g.gen.New()
	}
	return g
}

func (g *Graph) Identifier() term.Term { return g.id }
func (g *Graph) Store() Store          { return g.store }

func (g *Graph) readContext() term.Term {
	if g.union {
		return nil
	}
	return g.id
}

// Add stores t in the graph.
func (g *Graph) Add(t term.Triple) error {
	if _, err := term.NewTriple(t.Subject, t.Predicate, t.Object); err != nil {
		return err
	}
	return g.store.Add(t, g.id, g.quoted)
}

// AddTriple builds a triple from s, p and o and adds it.
func (g *Graph) AddTriple(s, p, o term.Term) error {
	t, err := term.NewTriple(s, p, o)
	if err != nil {
		return err
	}
	return g.store.Add(t, g.id, g.quoted)
}

func (g *Graph) Remove(pattern term.Triple) error {
	return g.store.Remove(pattern, g.readContext())
}

func (g *Graph) Triples(pattern term.Triple) Iterator {
	return g.store.Triples(pattern, g.readContext())
}

func (g *Graph) Contains(pattern term.Triple) bool {
	return g.store.Contains(pattern, g.readContext())
}

func (g *Graph) Size() int {
	return g.store.Size(g.readContext())
}

// Contexts returns the store contexts holding a match for pattern.
func (g *Graph) Contexts(pattern *term.Triple) []term.Term {
	return g.store.Contexts(pattern)
}

func (g *Graph) Subjects() []term.Term   { return distinct(g, term.Subject) }
func (g *Graph) Predicates() []term.Term { return distinct(g, term.Predicate) }
func (g *Graph) Objects() []term.Term    { return distinct(g, term.Object) }

func distinct(v View, p term.Position) []term.Term {
	return distinctOf(v, term.Wildcard, p)
}

func distinctOf(v View, pattern term.Triple, p term.Position) []term.Term {
	seen := make(map[term.Hash]struct{})
	var out []term.Term
	it := v.Triples(pattern)
	defer it.Close()
	for it.Next(context.Background()) {
		t := it.Result().Triple.Get(p)
		h := term.HashOf(t)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (g *Graph) Bnodes() map[term.BNode]int {
	return bnodes(g)
}

// bnodes counts the distinct triples using each blank node; a triple held
// by several contexts of a union view counts once.
func bnodes(v View) map[term.BNode]int {
	m := make(map[term.BNode]int)
	seen := make(map[[3]term.Hash]struct{})
	it := v.Triples(term.Wildcard)
	defer it.Close()
	for it.Next(context.Background()) {
		t := it.Result().Triple
		key := [3]term.Hash{term.HashOf(t.Subject), term.HashOf(t.Predicate), term.HashOf(t.Object)}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if b, ok := t.Subject.(term.BNode); ok {
			m[b]++
		}
		if b, ok := t.Object.(term.BNode); ok {
			m[b]++
		}
	}
	return m
}

// GetByType returns the distinct subjects of (?, rdf:type, typ).
func (g *Graph) GetByType(typ term.Term) []term.Term {
	return distinctOf(g, term.Triple{Predicate: term.IRI(rdf.Type), Object: typ}, term.Subject)
}

func (g *Graph) Bind(ns Namespace)                         { g.store.Bind(ns) }
func (g *Graph) Namespace(prefix string) (Namespace, bool) { return g.store.Namespace(prefix) }
func (g *Graph) Prefix(uri term.IRI) (string, bool)        { return g.store.Prefix(uri) }

func (g *Graph) Commit() error   { return g.store.Commit() }
func (g *Graph) Rollback() error { return g.store.Rollback() }

// Destroy removes every triple of the graph from the store. For a
// conjunctive graph this tears down the whole store.
func (g *Graph) Destroy() error {
	if g.union {
		return g.store.Destroy()
	}
	return g.store.Remove(term.Wildcard, g.id)
}
