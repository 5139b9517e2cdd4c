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
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cayleygraph/rdfstore/term"
)

// Namespace binds a prefix to a base IRI. An empty prefix is the default
// namespace. Fragment namespaces end in '#'.
type Namespace struct {
	URI      term.IRI `json:"uri"`
	Prefix   string   `json:"prefix"`
	Fragment bool     `json:"fragment"`
}

// NewNamespace validates the prefix and builds a namespace.
func NewNamespace(uri term.IRI, prefix string) (Namespace, error) {
	if prefix != "" && !term.IsNameToken(prefix) {
		return Namespace{}, &term.ShapeError{Role: "prefix", Value: prefix, Expected: "XML name token or empty"}
	}
	if uri == "" {
		return Namespace{}, &term.ShapeError{Role: "namespace", Value: uri, Expected: "IRI"}
	}
	return Namespace{URI: uri, Prefix: prefix, Fragment: strings.HasSuffix(string(uri), "#")}, nil
}

func (ns Namespace) String() string {
	return fmt.Sprintf("@prefix %s: %s .", ns.Prefix, ns.URI)
}

// Namespaces is a two way prefix table. The zero value is ready to use and
// safe for concurrent access.
type Namespaces struct {
	mu       sync.RWMutex
	prefixes map[string]Namespace
	uris     map[term.IRI]Namespace
}

// Bind registers ns under its prefix and URI. A later binding of an already
// known URI without a prefix does not replace the earlier one.
func (p *Namespaces) Bind(ns Namespace) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.prefixes == nil {
		p.prefixes = make(map[string]Namespace)
		p.uris = make(map[term.IRI]Namespace)
	}
	p.prefixes[ns.Prefix] = ns
	if _, ok := p.uris[ns.URI]; ok && ns.Prefix == "" {
		return
	}
	p.uris[ns.URI] = ns
}

// Namespace looks up a binding by prefix.
func (p *Namespaces) Namespace(prefix string) (Namespace, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ns, ok := p.prefixes[prefix]
	return ns, ok
}

// Prefix returns the prefix bound to the namespace URI.
func (p *Namespaces) Prefix(uri term.IRI) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ns, ok := p.uris[uri]
	return ns.Prefix, ok
}

// List returns all bindings sorted by prefix.
func (p *Namespaces) List() []Namespace {
	p.mu.RLock()
	out := make([]Namespace, 0, len(p.prefixes))
	for _, ns := range p.prefixes {
		out = append(out, ns)
	}
	p.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

// Expand resolves a prefixed name (ex:a) to a full IRI.
func (p *Namespaces) Expand(name string) (term.IRI, error) {
	i := strings.IndexByte(name, ':')
	if i < 0 {
		return "", fmt.Errorf("%q is not a prefixed name", name)
	}
	ns, ok := p.Namespace(name[:i])
	if !ok {
		return "", fmt.Errorf("unknown prefix %q", name[:i])
	}
	return ns.URI + term.IRI(name[i+1:]), nil
}

// Shorten returns the prefixed form of iri using the longest matching
// namespace, or false if none matches.
func (p *Namespaces) Shorten(iri term.IRI) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var (
		best Namespace
		ok   bool
	)
	for uri, ns := range p.uris {
		if strings.HasPrefix(string(iri), string(uri)) && len(uri) > len(best.URI) {
			best, ok = ns, true
		}
	}
	if !ok {
		return "", false
	}
	return best.Prefix + ":" + string(iri[len(best.URI):]), true
}
