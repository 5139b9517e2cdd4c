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

import "fmt"

// wildcard is never assigned to a term; in a query it matches any id.
const wildcard uint32 = 0

type (
	set    = map[uint32]struct{}
	level2 = map[uint32]set
	level3 = map[uint32]level2
)

// index4 is a four level nested map. The meaning of each level depends on
// the index: cspo is keyed context, subject, predicate, object; spo is
// keyed subject, predicate, object and holds the context ids at the leaf.
type index4 map[uint32]level3

func (x index4) insert(a, b, c, d uint32) bool {
	l1, ok := x[a]
	if !ok {
		l1 = make(level3)
		x[a] = l1
	}
	l2, ok := l1[b]
	if !ok {
		l2 = make(level2)
		l1[b] = l2
	}
	l3, ok := l2[c]
	if !ok {
		l3 = make(set)
		l2[c] = l3
	}
	if _, ok = l3[d]; ok {
		return false
	}
	l3[d] = struct{}{}
	return true
}

// remove deletes the leaf and prunes every parent left empty.
func (x index4) remove(a, b, c, d uint32) bool {
	l1, ok := x[a]
	if !ok {
		return false
	}
	l2, ok := l1[b]
	if !ok {
		return false
	}
	l3, ok := l2[c]
	if !ok {
		return false
	}
	if _, ok = l3[d]; !ok {
		return false
	}
	delete(l3, d)
	if len(l3) == 0 {
		delete(l2, c)
		if len(l2) == 0 {
			delete(l1, b)
			if len(l1) == 0 {
				delete(x, a)
			}
		}
	}
	return true
}

func (x index4) has(a, b, c, d uint32) bool {
	_, ok := x[a][b][c][d]
	return ok
}

// leaves returns the number of entries stored under the first three keys.
func (x index4) leaves(a, b, c uint32) int {
	return len(x[a][b][c])
}

// walk calls fn for every entry matching the keys, where wildcard keys
// enumerate a level. Walking stops when fn returns false.
func (x index4) walk(a, b, c, d uint32, fn func(a, b, c, d uint32) bool) bool {
	return each(map[uint32]level3(x), a, func(a uint32, l1 level3) bool {
		return each(l1, b, func(b uint32, l2 level2) bool {
			return each(l2, c, func(c uint32, l3 set) bool {
				return each(l3, d, func(d uint32, _ struct{}) bool {
					return fn(a, b, c, d)
				})
			})
		})
	})
}

func each[V any](m map[uint32]V, k uint32, fn func(uint32, V) bool) bool {
	if k != wildcard {
		if v, ok := m[k]; ok {
			return fn(k, v)
		}
		return true
	}
	for k, v := range m {
		if !fn(k, v) {
			return false
		}
	}
	return true
}

// indexSet owns the six indices and keeps them in step. The context
// family holds every association; the default family holds non-quoted
// associations only and is what queries without a context read.
type indexSet struct {
	cspo, cpos, cosp index4
	spo, pos, osp    index4

	ctxSize     map[uint32]int
	defaultSize int
}

func newIndexSet() *indexSet {
	return &indexSet{
		cspo: make(index4), cpos: make(index4), cosp: make(index4),
		spo: make(index4), pos: make(index4), osp: make(index4),
		ctxSize: make(map[uint32]int),
	}
}

func consistent(ok bool, op string, s, p, o, c uint32) {
	if !ok {
		panic(fmt.Sprintf("memstore: index inconsistency on %s of (%d %d %d) in %d", op, s, p, o, c))
	}
}

// insert stores (s, p, o) in context c. It reports whether the association
// is new, and whether it became visible to the default family: a non-quoted
// insert of a triple held only as quoted in c makes it visible.
func (ix *indexSet) insert(s, p, o, c uint32, quoted bool) (added, visible bool) {
	if ix.cspo.insert(c, s, p, o) {
		consistent(ix.cpos.insert(c, p, o, s), "insert", s, p, o, c)
		consistent(ix.cosp.insert(c, o, s, p), "insert", s, p, o, c)
		ix.ctxSize[c]++
		added = true
	}
	if quoted {
		return added, false
	}
	fresh := ix.spo.leaves(s, p, o) == 0
	if ix.spo.insert(s, p, o, c) {
		consistent(ix.pos.insert(p, o, s, c), "insert", s, p, o, c)
		consistent(ix.osp.insert(o, s, p, c), "insert", s, p, o, c)
		if fresh {
			ix.defaultSize++
		}
		visible = true
	}
	return added, visible
}

// delete removes (s, p, o) from context c in all six indices.
func (ix *indexSet) delete(s, p, o, c uint32) bool {
	if !ix.cspo.remove(c, s, p, o) {
		return false
	}
	consistent(ix.cpos.remove(c, p, o, s), "delete", s, p, o, c)
	consistent(ix.cosp.remove(c, o, s, p), "delete", s, p, o, c)
	if ix.ctxSize[c]--; ix.ctxSize[c] == 0 {
		delete(ix.ctxSize, c)
	}
	if ix.spo.remove(s, p, o, c) {
		consistent(ix.pos.remove(p, o, s, c), "delete", s, p, o, c)
		consistent(ix.osp.remove(o, s, p, c), "delete", s, p, o, c)
		if ix.spo.leaves(s, p, o) == 0 {
			ix.defaultSize--
		}
	}
	return true
}

func (ix *indexSet) has(s, p, o, c uint32) bool {
	if c == wildcard {
		return ix.spo.leaves(s, p, o) != 0
	}
	return ix.cspo.has(c, s, p, o)
}

// size returns the number of triples in c, or in the default family for
// the wildcard context.
func (ix *indexSet) size(c uint32) int {
	if c == wildcard {
		return ix.defaultSize
	}
	return ix.ctxSize[c]
}

func (ix *indexSet) contexts() []uint32 {
	out := make([]uint32, 0, len(ix.cspo))
	for c := range ix.cspo {
		out = append(out, c)
	}
	return out
}

// query calls fn for each stored (s, p, o, c) matching the ids, where
// wildcard fields match anything. A wildcard context reads the default
// family and reports each triple once per context it is visible from.
// It returns the name of the index that was walked.
func (ix *indexSet) query(s, p, o, c uint32, fn func(s, p, o, c uint32) bool) string {
	if c != wildcard {
		switch {
		case s != wildcard:
			ix.cspo.walk(c, s, p, o, func(c, s, p, o uint32) bool { return fn(s, p, o, c) })
			return "cspo"
		case p != wildcard:
			ix.cpos.walk(c, p, o, s, func(c, p, o, s uint32) bool { return fn(s, p, o, c) })
			return "cpos"
		case o != wildcard:
			ix.cosp.walk(c, o, s, p, func(c, o, s, p uint32) bool { return fn(s, p, o, c) })
			return "cosp"
		}
		ix.cspo.walk(c, wildcard, wildcard, wildcard, func(c, s, p, o uint32) bool { return fn(s, p, o, c) })
		return "cspo"
	}
	switch {
	case s != wildcard:
		ix.spo.walk(s, p, o, wildcard, fn)
		return "spo"
	case p != wildcard:
		ix.pos.walk(p, o, s, wildcard, func(p, o, s, c uint32) bool { return fn(s, p, o, c) })
		return "pos"
	case o != wildcard:
		ix.osp.walk(o, s, p, wildcard, func(o, s, p, c uint32) bool { return fn(s, p, o, c) })
		return "osp"
	}
	ix.spo.walk(wildcard, wildcard, wildcard, wildcard, fn)
	return "spo"
}
