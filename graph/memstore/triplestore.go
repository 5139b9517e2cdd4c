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

// Package memstore is the in-memory indexed triple store.
package memstore

import (
	"sort"
	"time"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/term"
)

const StoreType = "memory"

func init() {
	graph.RegisterStore(StoreType, graph.Registration{
		NewFunc: func(opts graph.Options) (graph.Store, error) {
			var o []Option
			id, err := opts.StringKey("identifier", "")
			if err != nil {
				return nil, err
			}
			if id != "" {
				iri, err := term.NewIRI(id)
				if err != nil {
					return nil, err
				}
				o = append(o, WithIdentifier(iri))
			}
			seed, err := opts.IntKey("seed", 0)
			if err != nil {
				return nil, err
			}
			if seed != 0 {
				o = append(o, WithSeed(int64(seed)))
			}
			return New(o...)
		},
		IsPersistent: false,
	})
}

var _ graph.Store = (*TripleStore)(nil)

// Option configures a TripleStore.
type Option func(*TripleStore)

// WithIdentifier sets the store identifier, which is also the context used
// when Add is called without one.
func WithIdentifier(id term.Term) Option {
	return func(ts *TripleStore) { ts.id = id }
}

// WithSeed fixes the seed of the term id permutation.
func WithSeed(seed int64) Option {
	return func(ts *TripleStore) { ts.seed = seed }
}

// withMaxTerms limits the id space, for tests.
func withMaxTerms(n int) Option {
	return func(ts *TripleStore) { ts.maxTerms = n }
}

// TripleStore keeps every association in six nested map indices keyed by
// interned term ids. It is not safe for concurrent use except for term
// interning; wrap it with graph.NewSynchronized to share it.
type TripleStore struct {
	id       term.Term
	seed     int64
	maxTerms int

	idx *indexSet
	in  *interner
	ns  graph.Namespaces
}

// New creates an empty store.
func New(opts ...Option) (*TripleStore, error) {
	ts := &TripleStore{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(ts)
	}
	if ts.id == nil {
		ts.id = term.DefaultGenerator().New()
	}
	if err := ts.reset(); err != nil {
		return nil, err
	}
	return ts, nil
}

func (ts *TripleStore) reset() error {
	in, err := newInterner(ts.seed, ts.maxTerms)
	if err != nil {
		return err
	}
	ts.in = in
	ts.idx = newIndexSet()
	return nil
}

func (ts *TripleStore) context(ctx term.Term) term.Term {
	if ctx == nil {
		return ts.id
	}
	return ctx
}

// Add inserts t into ctx, or into the store identifier context if ctx is nil.
func (ts *TripleStore) Add(t term.Triple, ctx term.Term, quoted bool) error {
	if _, err := term.NewTriple(t.Subject, t.Predicate, t.Object); err != nil {
		return err
	}
	ctx = ts.context(ctx)
	if !quoted && !ts.has(t, ctx) && ts.Contains(t, ctx) {
		// a content-equal literal is already stored in ctx
		mAddsNoop.Inc()
		return nil
	}
	var ids [4]uint32
	for i, v := range []term.Term{t.Subject, t.Predicate, t.Object, ctx} {
		id, err := ts.in.intern(v)
		if err != nil {
			ts.in.collect(ids[:i]...)
			return err
		}
		ids[i] = id
	}
	added, visible := ts.idx.insert(ids[0], ids[1], ids[2], ids[3], quoted)
	switch {
	case added:
		ts.in.acquire(ids[:]...)
		mAdds.Inc()
	case visible:
		if clog.V(3) {
			clog.Infof("memstore: %v in %v is no longer quoted", t, ctx)
		}
	default:
		mAddsNoop.Inc()
	}
	return nil
}

// has is the structural presence check: exact terms, no literal content
// comparison.
func (ts *TripleStore) has(t term.Triple, ctx term.Term) bool {
	var ids [4]uint32
	for i, v := range []term.Term{t.Subject, t.Predicate, t.Object, ctx} {
		id, ok := ts.in.lookup(v)
		if !ok {
			return false
		}
		ids[i] = id
	}
	return ts.idx.has(ids[0], ids[1], ids[2], ids[3])
}

// ids resolves a pattern and context to index ids. It returns false if a
// bound term has never been stored, in which case nothing can match.
func (ts *TripleStore) ids(pattern term.Triple, ctx term.Term) (s, p, o, c uint32, ok bool) {
	if s, ok = ts.in.lookup(pattern.Subject); !ok {
		return
	}
	if p, ok = ts.in.lookup(pattern.Predicate); !ok {
		return
	}
	if o, ok = ts.in.lookup(pattern.Object); !ok {
		return
	}
	c, ok = ts.in.lookup(ctx)
	return
}

type match [4]uint32

func (ts *TripleStore) matches(pattern term.Triple, ctx term.Term, limit int) []match {
	s, p, o, c, ok := ts.ids(pattern, ctx)
	if !ok {
		return nil
	}
	var out []match
	name := ts.idx.query(s, p, o, c, func(s, p, o, c uint32) bool {
		out = append(out, match{s, p, o, c})
		return limit <= 0 || len(out) < limit
	})
	mQueries.WithLabelValues(name).Inc()
	return out
}

func (ts *TripleStore) result(m match) graph.Result {
	return graph.Result{
		Triple: term.Triple{
			Subject:   ts.in.term(m[0]),
			Predicate: ts.in.term(m[1]),
			Object:    ts.in.term(m[2]),
		},
		Context: ts.in.term(m[3]),
	}
}

// matchesContent is like matches, comparing a literal object by content.
func (ts *TripleStore) matchesContent(pattern term.Triple, ctx term.Term) []match {
	lit, ok := pattern.Object.(term.Literal)
	if !ok {
		return ts.matches(pattern, ctx, 0)
	}
	pattern.Object = nil
	var out []match
	for _, m := range ts.matches(pattern, ctx, 0) {
		if o, ok := ts.in.term(m[2]).(term.Literal); ok && o.Equal(lit) {
			out = append(out, m)
		}
	}
	return out
}

// Remove deletes every association matching pattern in ctx, or in the
// default view if ctx is nil. A literal object matches by content, as in
// Contains. The wildcard pattern with a context drops the whole context,
// quoted triples included.
func (ts *TripleStore) Remove(pattern term.Triple, ctx term.Term) error {
	if err := pattern.Validate(); err != nil {
		return err
	}
	found := ts.matchesContent(pattern, ctx)
	for _, m := range found {
		if !ts.idx.delete(m[0], m[1], m[2], m[3]) {
			continue
		}
		ts.in.release(m[:]...)
		mRemoves.Inc()
	}
	if clog.V(2) {
		clog.Infof("memstore: removed %d associations matching %v", len(found), pattern)
	}
	return nil
}

// Triples returns the matches of pattern. The results are collected before
// returning, so the store may be modified while the iterator is consumed.
func (ts *TripleStore) Triples(pattern term.Triple, ctx term.Term) graph.Iterator {
	if err := pattern.Validate(); err != nil {
		return graph.Error(err)
	}
	found := ts.matches(pattern, ctx, 0)
	out := make([]graph.Result, 0, len(found))
	for _, m := range found {
		out = append(out, ts.result(m))
	}
	return graph.NewSliceIterator(out)
}

// Contains reports whether a triple matching pattern is stored. Literal
// objects are compared by content.
func (ts *TripleStore) Contains(pattern term.Triple, ctx term.Term) bool {
	if pattern.Validate() != nil {
		return false
	}
	if _, ok := pattern.Object.(term.Literal); !ok {
		return len(ts.matches(pattern, ctx, 1)) != 0
	}
	if ts.has(pattern, ctx) {
		return true
	}
	return len(ts.matchesContent(pattern, ctx)) != 0
}

func (ts *TripleStore) Size(ctx term.Term) int {
	c, ok := ts.in.lookup(ctx)
	if !ok {
		return 0
	}
	return ts.idx.size(c)
}

// Contexts returns the contexts holding a match for pattern, or all of them
// if pattern is nil, sorted by their N-Triples form. Contexts holding only
// quoted triples are included.
func (ts *TripleStore) Contexts(pattern *term.Triple) []term.Term {
	var out []term.Term
	for _, c := range ts.idx.contexts() {
		ctx := ts.in.term(c)
		if pattern == nil || ts.Contains(*pattern, ctx) {
			out = append(out, ctx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func (ts *TripleStore) Bind(ns graph.Namespace)                    { ts.ns.Bind(ns) }
func (ts *TripleStore) Namespace(p string) (graph.Namespace, bool) { return ts.ns.Namespace(p) }
func (ts *TripleStore) Prefix(uri term.IRI) (string, bool)         { return ts.ns.Prefix(uri) }
func (ts *TripleStore) Namespaces() []graph.Namespace              { return ts.ns.List() }

func (ts *TripleStore) Features() graph.Features {
	return graph.Features{ContextAware: true, FormulaAware: true}
}

func (ts *TripleStore) Identifier() term.Term { return ts.id }

// Commit and Rollback are no-ops: changes apply immediately.
func (ts *TripleStore) Commit() error   { return nil }
func (ts *TripleStore) Rollback() error { return nil }

// Destroy drops every association and interned term.
func (ts *TripleStore) Destroy() error {
	return ts.reset()
}

func (ts *TripleStore) Close() error { return nil }

// Terms returns the number of interned terms.
func (ts *TripleStore) Terms() int { return ts.in.len() }
