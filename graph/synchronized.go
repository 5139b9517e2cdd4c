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
	"sync"

	"github.com/cayleygraph/rdfstore/term"
)

// NewSynchronized wraps s so it can be shared between goroutines. Writers
// take an exclusive lock, readers a shared one. Query results are consumed
// while the lock is held, so the returned iterators do not touch s.
func NewSynchronized(s Store) Store {
	if _, ok := s.(*synchronized); ok {
		return s
	}
	return &synchronized{s: s}
}

type synchronized struct {
	mu sync.RWMutex
	s  Store
}

func (w *synchronized) Add(t term.Triple, ctx term.Term, quoted bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.s.Add(t, ctx, quoted)
}

func (w *synchronized) Remove(pattern term.Triple, ctx term.Term) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.s.Remove(pattern, ctx)
}

func (w *synchronized) Triples(pattern term.Triple, ctx term.Term) Iterator {
	w.mu.RLock()
	defer w.mu.RUnlock()
	res, err := All(context.Background(), w.s.Triples(pattern, ctx))
	if err != nil {
		return Error(err)
	}
	return NewSliceIterator(res)
}

func (w *synchronized) Contains(pattern term.Triple, ctx term.Term) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.s.Contains(pattern, ctx)
}

func (w *synchronized) Size(ctx term.Term) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.s.Size(ctx)
}

func (w *synchronized) Contexts(pattern *term.Triple) []term.Term {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.s.Contexts(pattern)
}

func (w *synchronized) Bind(ns Namespace) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.s.Bind(ns)
}

func (w *synchronized) Namespace(prefix string) (Namespace, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.s.Namespace(prefix)
}

func (w *synchronized) Prefix(uri term.IRI) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.s.Prefix(uri)
}

func (w *synchronized) Namespaces() []Namespace {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.s.Namespaces()
}

func (w *synchronized) Features() Features    { return w.s.Features() }
func (w *synchronized) Identifier() term.Term { return w.s.Identifier() }

func (w *synchronized) Commit() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.s.Commit()
}

func (w *synchronized) Rollback() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.s.Rollback()
}

func (w *synchronized) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.s.Destroy()
}

func (w *synchronized) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.s.Close()
}
