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

import "fmt"

// Position of a term inside a triple.
type Position byte

const (
	Any Position = iota
	Subject
	Predicate
	Object
	Context
)

func (p Position) String() string {
	switch p {
	case Any:
		return "any"
	case Subject:
		return "subject"
	case Predicate:
		return "predicate"
	case Object:
		return "object"
	case Context:
		return "context"
	}
	return fmt.Sprint("illegal position ", byte(p))
}

// Triple is a statement. A nil field is absent, which turns the triple
// into a pattern; patterns are only legal as query arguments.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Wildcard is the pattern that matches every triple.
var Wildcard = Triple{}

// NewTriple creates a statement, validating the shape of every field.
func NewTriple(s, p, o Term) (Triple, error) {
	t := Triple{Subject: s, Predicate: p, Object: o}
	if t.IsPattern() {
		return Triple{}, fmt.Errorf("%v: %w", t, ErrPattern)
	}
	if err := t.validate(); err != nil {
		return Triple{}, err
	}
	return t, nil
}

// NewPattern creates a query pattern, validating the fields that are present.
func NewPattern(s, p, o Term) (Triple, error) {
	t := Triple{Subject: s, Predicate: p, Object: o}
	if err := t.validate(); err != nil {
		return Triple{}, err
	}
	return t, nil
}

// Validate checks that every present field has the shape required for its
// position: subject IRI or blank node, predicate IRI, object any term.
// Empty IRIs and blank nodes without an identifier are rejected.
func (t Triple) Validate() error { return t.validate() }

// checkEmpty rejects the zero IRI and BNode values, which do not come from
// a constructor.
func checkEmpty(role string, v Term) error {
	switch v := v.(type) {
	case IRI:
		if v == "" {
			return &ShapeError{Role: role, Value: v, Expected: "non-empty IRI"}
		}
	case BNode:
		if v.ID == "" {
			return &ShapeError{Role: role, Value: v, Expected: "blank node with an identifier"}
		}
	}
	return nil
}

func (t Triple) validate() error {
	for _, f := range []struct {
		role string
		v    Term
	}{{"subject", t.Subject}, {"predicate", t.Predicate}, {"object", t.Object}} {
		if err := checkEmpty(f.role, f.v); err != nil {
			return err
		}
	}
	if t.Subject != nil {
		switch t.Subject.(type) {
		case IRI, BNode:
		default:
			return &ShapeError{Role: "subject", Value: t.Subject, Expected: "IRI or blank node"}
		}
	}
	if t.Predicate != nil {
		if _, ok := t.Predicate.(IRI); !ok {
			return &ShapeError{Role: "predicate", Value: t.Predicate, Expected: "IRI"}
		}
	}
	return nil
}

// IsPattern reports whether any field is absent.
func (t Triple) IsPattern() bool {
	return t.Subject == nil || t.Predicate == nil || t.Object == nil
}

// Get returns the term at position p.
func (t Triple) Get(p Position) Term {
	switch p {
	case Subject:
		return t.Subject
	case Predicate:
		return t.Predicate
	case Object:
		return t.Object
	}
	panic(p.String())
}

// Equal reports whether every position present on both sides holds equal
// terms. A pattern is therefore equal to every triple it matches.
func (t Triple) Equal(o Triple) bool {
	return matchTerm(t.Subject, o.Subject) &&
		matchTerm(t.Predicate, o.Predicate) &&
		matchTerm(t.Object, o.Object)
}

func matchTerm(a, b Term) bool {
	if a == nil || b == nil {
		return true
	}
	return Equal(a, b)
}

// Map returns a copy of the triple with fn applied to every present field.
func (t Triple) Map(fn func(Term) Term) Triple {
	if t.Subject != nil {
		t.Subject = fn(t.Subject)
	}
	if t.Predicate != nil {
		t.Predicate = fn(t.Predicate)
	}
	if t.Object != nil {
		t.Object = fn(t.Object)
	}
	return t
}

// String returns the N-Triples form of the triple. Absent fields print as "?".
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", pos(t.Subject), pos(t.Predicate), pos(t.Object))
}

func pos(t Term) string {
	if t == nil {
		return "?"
	}
	return t.String()
}

// ByString sorts triples by their N-Triples form.
type ByString []Triple

func (a ByString) Len() int           { return len(a) }
func (a ByString) Less(i, j int) bool { return a[i].String() < a[j].String() }
func (a ByString) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
