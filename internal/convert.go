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
	"strconv"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/term"
	"github.com/cayleygraph/rdfstore/voc/xsd"
)

// FromQuad converts a parsed value to a term. Blank node labels are
// resolved through scope, so labels from different inputs never unify.
// A nil value converts to a nil term.
func FromQuad(v quad.Value, scope *term.Scope) (term.Term, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case quad.IRI:
		return term.NewIRI(string(v))
	case quad.BNode:
		return scope.Lookup(string(v)), nil
	case quad.String:
		return term.NewLiteral(string(v)), nil
	case quad.LangString:
		return term.NewLangLiteral(string(v.Value), v.Lang)
	case quad.TypedString:
		return term.NewTypedLiteral(string(v.Value), term.IRI(v.Type)), nil
	case quad.Int:
		return term.NewTypedLiteral(strconv.FormatInt(int64(v), 10), xsd.Integer), nil
	case quad.Float:
		return term.NewTypedLiteral(strconv.FormatFloat(float64(v), 'g', -1, 64), xsd.Double), nil
	case quad.Bool:
		return term.NewTypedLiteral(strconv.FormatBool(bool(v)), xsd.Boolean), nil
	case quad.Time:
		return term.NewTypedLiteral(time.Time(v).Format(time.RFC3339Nano), xsd.DateTime), nil
	}
	return nil, &term.ShapeError{Role: "value", Value: v, Expected: "IRI, blank node or literal"}
}

// FromQuadTriple converts a parsed quad to a triple and its context.
func FromQuadTriple(q quad.Quad, scope *term.Scope) (term.Triple, term.Term, error) {
	var ts [4]term.Term
	for i, v := range []quad.Value{q.Subject, q.Predicate, q.Object, q.Label} {
		t, err := FromQuad(v, scope)
		if err != nil {
			return term.Triple{}, nil, err
		}
		ts[i] = t
	}
	t, err := term.NewTriple(ts[0], ts[1], ts[2])
	if err != nil {
		return term.Triple{}, nil, fmt.Errorf("%v: %w", q, err)
	}
	return t, ts[3], nil
}

// ToQuad converts a term back to a quad value.
func ToQuad(t term.Term) quad.Value {
	switch t := t.(type) {
	case nil:
		return nil
	case term.IRI:
		return quad.IRI(t)
	case term.BNode:
		return quad.BNode(t.ID)
	case term.Literal:
		switch {
		case t.Language != "":
			return quad.LangString{Value: quad.String(t.Lexical), Lang: t.Language}
		case t.Datatype == "" || t.Datatype == xsd.String:
			return quad.String(t.Lexical)
		}
		return quad.TypedString{Value: quad.String(t.Lexical), Type: quad.IRI(t.Datatype)}
	}
	panic(fmt.Errorf("unknown term type %T", t))
}

// ToQuadResult converts a query result to a quad labelled with its context.
func ToQuadResult(r graph.Result) quad.Quad {
	return quad.Quad{
		Subject:   ToQuad(r.Triple.Subject),
		Predicate: ToQuad(r.Triple.Predicate),
		Object:    ToQuad(r.Triple.Object),
		Label:     ToQuad(r.Context),
	}
}
