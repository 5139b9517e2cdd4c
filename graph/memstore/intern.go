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

package memstore

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cznic/mathutil"

	"github.com/cayleygraph/rdfstore/term"
)

// ErrIDSpaceExhausted is returned when every term id is in use.
var ErrIDSpaceExhausted = errors.New("memstore: term id space exhausted")

type entry struct {
	t    term.Term
	refs int
}

// interner assigns small integer ids to terms. Ids are drawn from a seeded
// full cycle permutation of [1, max], so they look random but never repeat
// until the whole space has been handed out.
type interner struct {
	mu    sync.Mutex
	rng   *mathutil.FC32
	max   int
	ids   map[term.Hash]uint32
	terms map[uint32]*entry
}

func newInterner(seed int64, max int) (*interner, error) {
	if max <= 0 || max > math.MaxInt32 {
		max = math.MaxInt32
	}
	rng, err := mathutil.NewFC32(1, max, true)
	if err != nil {
		return nil, fmt.Errorf("memstore: cannot create id generator: %w", err)
	}
	rng.Seed(seed)
	return &interner{
		rng:   rng,
		max:   max,
		ids:   make(map[term.Hash]uint32),
		terms: make(map[uint32]*entry),
	}, nil
}

// intern returns the id of t, assigning a new one if t is not known yet.
// New ids start without references; see acquire and collect.
func (in *interner) intern(t term.Term) (uint32, error) {
	h := term.HashOf(t)
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.ids[h]; ok {
		return id, nil
	}
	if len(in.terms) >= in.max {
		return 0, ErrIDSpaceExhausted
	}
	var id uint32
	for {
		id = uint32(in.rng.Next())
		if _, used := in.terms[id]; !used {
			break
		}
	}
	in.ids[h] = id
	in.terms[id] = &entry{t: t}
	mTermsInterned.Inc()
	return id, nil
}

// lookup returns the id of t without assigning one. A nil term maps to the
// wildcard id.
func (in *interner) lookup(t term.Term) (uint32, bool) {
	if t == nil {
		return wildcard, true
	}
	h := term.HashOf(t)
	in.mu.Lock()
	id, ok := in.ids[h]
	in.mu.Unlock()
	return id, ok
}

// term returns the term for id. A miss means the indices reference an id
// that was released, which is not recoverable.
func (in *interner) term(id uint32) term.Term {
	in.mu.Lock()
	e, ok := in.terms[id]
	in.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("memstore: no term for id %d", id))
	}
	return e.t
}

func (in *interner) acquire(ids ...uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, id := range ids {
		e, ok := in.terms[id]
		if !ok {
			panic(fmt.Sprintf("memstore: acquire of unknown id %d", id))
		}
		e.refs++
	}
}

// release drops one reference from each id, freeing ids left unused.
func (in *interner) release(ids ...uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, id := range ids {
		e, ok := in.terms[id]
		if !ok {
			panic(fmt.Sprintf("memstore: release of unknown id %d", id))
		}
		e.refs--
		in.dropIfUnused(id, e)
	}
}

// collect frees ids that were interned but never acquired.
func (in *interner) collect(ids ...uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, id := range ids {
		if e, ok := in.terms[id]; ok {
			in.dropIfUnused(id, e)
		}
	}
}

func (in *interner) dropIfUnused(id uint32, e *entry) {
	if e.refs > 0 {
		return
	}
	delete(in.terms, id)
	delete(in.ids, term.HashOf(e.t))
	mTermsReleased.Inc()
}

func (in *interner) len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.terms)
}
