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

// Package term defines the values that can appear in a statement: IRIs,
// blank nodes and literals, and the triples built from them.
package term

// Every statement is built from three kinds of terms. The set is closed:
// Term has an unexported method, so code switching on the kind of a term
// can rely on IRI, BNode and Literal being the only implementations.

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Kind identifies a term variant.
type Kind uint8

const (
	KindIRI Kind = iota + 1
	KindBNode
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBNode:
		return "bnode"
	case KindLiteral:
		return "literal"
	}
	return "invalid"
}

// Term is a subject, predicate, object or context value.
type Term interface {
	// Kind returns the variant of the term.
	Kind() Kind
	// String returns the N-Triples representation of the term.
	String() string

	isTerm()
}

var (
	// ErrInvalidTerm is wrapped by all term and triple construction errors.
	ErrInvalidTerm = errors.New("invalid term")
	// ErrPattern is returned when a pattern is used where a statement is required.
	ErrPattern = errors.New("pattern triple cannot be stored")
)

// ShapeError records a value that does not have the shape required for its role.
type ShapeError struct {
	Role     string
	Value    interface{}
	Expected string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: got %v, expected %s", e.Role, e.Value, e.Expected)
}

func (e *ShapeError) Unwrap() error { return ErrInvalidTerm }

var (
	_ Term = IRI("")
	_ Term = BNode{}
	_ Term = Literal{}
)

// IRI is an absolute reference (ex: <http://example.com/a>).
//
// Values created with NewIRI are normalized, so two IRIs naming the same
// resource compare equal as strings. A plain conversion such as
// IRI("http://ex/a") is taken verbatim and must already be normalized;
// triples reject the empty IRI.
type IRI string

// NewIRI validates and normalizes an absolute IRI.
func NewIRI(s string) (IRI, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", &ShapeError{Role: "iri", Value: s, Expected: "absolute IRI (" + err.Error() + ")"}
	}
	if u.Scheme == "" {
		return "", &ShapeError{Role: "iri", Value: s, Expected: "absolute IRI with a scheme"}
	}
	return IRI(normalize(u, s)), nil
}

// MustIRI is like NewIRI but panics on invalid input. It is meant for constants.
func MustIRI(s string) IRI {
	v, err := NewIRI(s)
	if err != nil {
		panic(err)
	}
	return v
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ftp":   "21",
}

func normalize(u *url.URL, raw string) string {
	scheme := strings.ToLower(u.Scheme)
	rest := raw[len(u.Scheme)+1:]
	if !strings.HasPrefix(rest, "//") {
		// urn:, mailto: and friends: only the scheme is case-insensitive
		return scheme + ":" + rest
	}
	rest = rest[2:]
	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		end = len(rest)
	}
	authority, rest := rest[:end], rest[end:]
	var user string
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		user, authority = authority[:i+1], authority[i+1:]
	}
	authority = strings.ToLower(authority)
	if port := u.Port(); port != "" && defaultPorts[scheme] == port {
		authority = strings.TrimSuffix(authority, ":"+port)
	}
	return scheme + "://" + user + authority + rest
}

func (IRI) Kind() Kind       { return KindIRI }
func (s IRI) String() string { return `<` + string(s) + `>` }
func (IRI) isTerm()          {}

// BNode is a blank node (ex: _:b1). Identity is carried entirely by the
// identifier string; see Generator and Scope for how identifiers are assigned.
type BNode struct {
	ID string
}

func (BNode) Kind() Kind       { return KindBNode }
func (b BNode) String() string { return `_:` + b.ID }
func (BNode) isTerm()          {}

// Equal reports whether two terms are the same value. Literals are compared
// by datatype and content, everything else by identity string. Nil terms are
// only equal to nil.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case IRI:
		b, ok := b.(IRI)
		return ok && a == b
	case BNode:
		b, ok := b.(BNode)
		return ok && a.ID == b.ID
	case Literal:
		b, ok := b.(Literal)
		return ok && a.Equal(b)
	}
	panic(fmt.Errorf("unknown term type %T", a))
}

// StringOf safely calls t.String, returning an empty string for a nil term.
func StringOf(t Term) string {
	if t == nil {
		return ""
	}
	return t.String()
}
