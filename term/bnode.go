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

package term

import (
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// nameToken matches XML NCName-like tokens: no colons, must not start
// with a digit, dot or dash.
var nameToken = regexp.MustCompile(`^[\p{L}_][\p{L}\p{Mn}\p{Mc}\p{Nd}\p{Pc}._\-\x{B7}]*$`)

// IsNameToken reports whether s is a valid blank node identifier or
// namespace prefix.
func IsNameToken(s string) bool {
	return nameToken.MatchString(s)
}

// NamedBNode creates a blank node with a caller supplied identifier. An
// empty id is anonymous: a fresh node is drawn from DefaultGenerator.
func NamedBNode(id string) (BNode, error) {
	if id == "" {
		return DefaultGenerator().New(), nil
	}
	if !IsNameToken(id) {
		return BNode{}, &ShapeError{Role: "bnode", Value: id, Expected: "XML name token"}
	}
	return BNode{ID: id}, nil
}

var generators uint64

// Generator creates blank node identifiers that never collide with
// identifiers created earlier in the same process by any Generator.
//
// It is safe for concurrent use.
type Generator struct {
	prefix string
	next   uint64
}

// NewGenerator creates a generator whose sequence starts at the current
// wall-clock time in milliseconds.
func NewGenerator() *Generator {
	n := atomic.AddUint64(&generators, 1)
	return &Generator{
		prefix: "b" + strconv.FormatUint(n, 36) + "x",
		next:   uint64(time.Now().UnixNano() / int64(time.Millisecond)),
	}
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// DefaultGenerator returns a process-wide generator for callers that do
// not inject their own.
func DefaultGenerator() *Generator {
	defaultOnce.Do(func() { defaultGen = NewGenerator() })
	return defaultGen
}

// New returns a fresh anonymous blank node.
func (g *Generator) New() BNode {
	n := atomic.AddUint64(&g.next, 1)
	return BNode{ID: g.prefix + strconv.FormatUint(n, 36)}
}

// NewScope starts a naming scope backed by g.
func (g *Generator) NewScope() *Scope {
	return &Scope{gen: g, labels: make(map[string]BNode)}
}

// Scope maps textual labels to blank nodes for the duration of one parse.
// Within a scope the same label always yields the same node, while the
// same label in another scope yields a different one.
type Scope struct {
	gen    *Generator
	labels map[string]BNode
}

// Lookup returns the node for label, creating it on first use. An empty
// label is anonymous and yields a fresh node on every call. Labels are
// only used as keys, so they need not be valid identifiers themselves.
func (s *Scope) Lookup(label string) BNode {
	if label == "" {
		return s.gen.New()
	}
	if b, ok := s.labels[label]; ok {
		return b
	}
	b := s.gen.New()
	s.labels[label] = b
	return b
}

// Len returns the number of labels seen by the scope.
func (s *Scope) Len() int { return len(s.labels) }
