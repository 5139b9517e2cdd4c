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

// Package graph defines the statement store contract, the backend registry
// and the Graph handle that names a context inside a store.
package graph

import (
	"context"

	"github.com/cayleygraph/rdfstore/term"
)

// Store is the capability set every backend exposes.
//
// A store owns (triple, context) associations. Within one context triples
// are a set; the same triple may appear once per context. A nil context in
// a query means the union of all contexts, which never includes quoted
// triples.
type Store interface {
	// Add inserts t into ctx. Adding a triple that is already present is a
	// no-op. For non-quoted triples a content-equal literal counts as present.
	Add(t term.Triple, ctx term.Term, quoted bool) error
	// Remove deletes every association reported by Triples(pattern, ctx).
	// The all-wildcard pattern with a non-nil context drops the context.
	Remove(pattern term.Triple, ctx term.Term) error
	// Triples returns all stored triples matching pattern, restricted to ctx
	// if it is not nil. The order of results is unspecified.
	Triples(pattern term.Triple, ctx term.Term) Iterator
	// Contains reports whether at least one stored triple matches pattern.
	Contains(pattern term.Triple, ctx term.Term) bool
	// Size returns the number of distinct triples in ctx, or visible to the
	// union view if ctx is nil.
	Size(ctx term.Term) int
	// Contexts returns the distinct contexts holding a match for pattern,
	// or every known context if pattern is nil.
	Contexts(pattern *term.Triple) []term.Term

	Bind(ns Namespace)
	Namespace(prefix string) (Namespace, bool)
	Prefix(uri term.IRI) (string, bool)
	Namespaces() []Namespace

	Features() Features
	// Identifier is the context used by conjunctive views for writes.
	Identifier() term.Term

	Commit() error
	Rollback() error
	// Destroy tears down all indices.
	Destroy() error
	Close() error
}

// Features lists optional capabilities of a backend.
type Features struct {
	ContextAware     bool `json:"context_aware"`
	FormulaAware     bool `json:"formula_aware"`
	TransactionAware bool `json:"transaction_aware"`
}

// Result is a single match: a concrete triple and the context it was found in.
type Result struct {
	Triple  term.Triple
	Context term.Term
}

func (r Result) String() string {
	s := r.Triple.String()
	if r.Context == nil {
		return s
	}
	return s[:len(s)-1] + r.Context.String() + " ."
}

// Iterator walks a finite sequence of results.
type Iterator interface {
	// Next advances the iterator. It returns false when there are no more
	// results or ctx is done; check Err to tell the two apart.
	Next(ctx context.Context) bool
	Result() Result
	Err() error
	Close() error
}

// NewSliceIterator returns an iterator over a materialized result list.
func NewSliceIterator(results []Result) Iterator {
	return &sliceIterator{results: results, i: -1}
}

type sliceIterator struct {
	results []Result
	i       int
	err     error
	closed  bool
}

func (it *sliceIterator) Next(ctx context.Context) bool {
	if it.closed || it.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		it.err = err
		return false
	}
	if it.i+1 >= len(it.results) {
		it.i = len(it.results)
		return false
	}
	it.i++
	return true
}

func (it *sliceIterator) Result() Result {
	if it.i < 0 || it.i >= len(it.results) {
		return Result{}
	}
	return it.results[it.i]
}

func (it *sliceIterator) Err() error { return it.err }

func (it *sliceIterator) Close() error {
	it.closed = true
	it.results = nil
	return nil
}

// Empty returns an iterator with no results.
func Empty() Iterator { return NewSliceIterator(nil) }

// Error returns an iterator that fails with err on the first call to Next.
func Error(err error) Iterator { return &sliceIterator{err: err, i: -1} }

// All consumes and closes the iterator, returning every result.
func All(ctx context.Context, it Iterator) ([]Result, error) {
	defer it.Close()
	var out []Result
	for it.Next(ctx) {
		out = append(out, it.Result())
	}
	return out, it.Err()
}

// Iterate calls fn for every result, stopping at the first error fn returns.
func Iterate(ctx context.Context, it Iterator, fn func(Result) error) error {
	defer it.Close()
	for it.Next(ctx) {
		if err := fn(it.Result()); err != nil {
			return err
		}
	}
	return it.Err()
}
