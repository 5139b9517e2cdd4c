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

package internal

import (
	"fmt"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/cayleygraph/rdfstore/term"
	"github.com/cayleygraph/rdfstore/voc"
	_ "github.com/cayleygraph/rdfstore/voc/rdfs"
)

// placeholder stands in for a wildcard while a pattern is parsed as N-Quads.
const placeholder = "<urn:x-rdfstore:any>"

// IsWildcard reports whether a pattern field matches anything.
func IsWildcard(field string) bool {
	switch strings.TrimSpace(field) {
	case "", "*", "?":
		return true
	}
	return false
}

// Expand rewrites a prefixed name of a registered vocabulary, such as
// rdf:type, to an IRI reference. The datatype of a literal is expanded the
// same way. Other fields are returned unchanged.
func Expand(field string) string {
	if field == "" {
		return field
	}
	switch field[0] {
	case '<', '_':
		return field
	case '"':
		i := strings.LastIndex(field, "^^")
		if i < 0 || strings.HasPrefix(field[i+2:], "<") {
			return field
		}
		if dt := voc.FullIRI(field[i+2:]); dt != field[i+2:] {
			return field[:i+2] + "<" + dt + ">"
		}
		return field
	}
	if full := voc.FullIRI(field); full != field {
		return "<" + full + ">"
	}
	return field
}

// ParsePattern converts up to four fields in N-Quads notation (subject,
// predicate, object, context) to terms. Wildcard fields become nil and
// prefixed names are expanded, see Expand.
func ParsePattern(fields []string, scope *term.Scope) ([4]term.Term, error) {
	var out [4]term.Term
	if len(fields) > 4 {
		return out, fmt.Errorf("expected at most 4 terms, got %d", len(fields))
	}
	parts := []string{placeholder, placeholder, placeholder, placeholder}
	for i, f := range fields {
		if !IsWildcard(f) {
			parts[i] = Expand(strings.TrimSpace(f))
		}
	}
	q, err := nquads.Parse(strings.Join(parts, " ") + " .")
	if err != nil {
		return out, fmt.Errorf("not a valid pattern: %w", err)
	}
	for i, v := range []quad.Value{q.Subject, q.Predicate, q.Object, q.Label} {
		if !sameKind(parts[i], v) {
			return out, fmt.Errorf("%w: cannot read %q", term.ErrInvalidTerm, parts[i])
		}
		if parts[i] == placeholder {
			continue
		}
		t, err := FromQuad(v, scope)
		if err != nil {
			return out, err
		}
		out[i] = t
	}
	return out, nil
}

// sameKind reports whether v is the kind of value field is written as. The
// parser turns text it cannot read into a plain string, which must not pass
// for a literal.
func sameKind(field string, v quad.Value) bool {
	switch {
	case field == placeholder:
		return v == quad.IRI(placeholder[1:len(placeholder)-1])
	case strings.HasPrefix(field, "<"):
		_, ok := v.(quad.IRI)
		return ok
	case strings.HasPrefix(field, "_:"):
		_, ok := v.(quad.BNode)
		return ok
	case strings.HasPrefix(field, `"`):
		switch v.(type) {
		case nil, quad.IRI, quad.BNode:
			return false
		}
		return true
	}
	return false
}

// ParseTriplePattern is like ParsePattern, also checking the shape of the
// triple fields.
func ParseTriplePattern(fields []string, scope *term.Scope) (term.Triple, term.Term, error) {
	ts, err := ParsePattern(fields, scope)
	if err != nil {
		return term.Triple{}, nil, err
	}
	t, err := term.NewPattern(ts[0], ts[1], ts[2])
	if err != nil {
		return term.Triple{}, nil, err
	}
	return t, ts[3], nil
}
