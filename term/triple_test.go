package term

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/voc/xsd"
)

var (
	ex    = IRI("http://ex/a")
	knows = IRI("http://ex/knows")
	exB   = IRI("http://ex/b")
)

func TestNewTripleShape(t *testing.T) {
	_, err := NewTriple(ex, knows, exB)
	require.NoError(t, err)

	_, err = NewTriple(BNode{ID: "x"}, knows, NewLiteral("v"))
	require.NoError(t, err)

	_, err = NewTriple(NewLiteral("s"), knows, exB)
	var se *ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "subject", se.Role)

	_, err = NewTriple(ex, BNode{ID: "p"}, exB)
	require.True(t, errors.As(err, &se))
	require.Equal(t, "predicate", se.Role)
	require.True(t, errors.Is(err, ErrInvalidTerm))

	_, err = NewTriple(ex, nil, exB)
	require.True(t, errors.Is(err, ErrPattern))
}

func TestNewTripleEmptyTerms(t *testing.T) {
	for _, c := range []struct {
		t    Triple
		role string
	}{
		{Triple{BNode{}, knows, exB}, "subject"},
		{Triple{ex, IRI(""), exB}, "predicate"},
		{Triple{ex, knows, BNode{}}, "object"},
		{Triple{IRI(""), knows, exB}, "subject"},
	} {
		_, err := NewTriple(c.t.Subject, c.t.Predicate, c.t.Object)
		var se *ShapeError
		require.True(t, errors.As(err, &se), "%v", c.t)
		require.Equal(t, c.role, se.Role)
	}
	_, err := NewPattern(BNode{}, nil, nil)
	require.Error(t, err)
}

func TestNewPattern(t *testing.T) {
	p, err := NewPattern(nil, knows, nil)
	require.NoError(t, err)
	require.True(t, p.IsPattern())

	_, err = NewPattern(nil, NewLiteral("p"), nil)
	require.Error(t, err)
	require.True(t, Wildcard.IsPattern())
}

func TestTripleEqual(t *testing.T) {
	a := Triple{ex, knows, exB}
	require.True(t, a.Equal(Triple{ex, knows, exB}))
	require.True(t, Triple{Predicate: knows}.Equal(a))
	require.True(t, a.Equal(Triple{Predicate: knows}))
	require.False(t, Triple{Predicate: exB}.Equal(a))

	l1 := Triple{ex, knows, NewTypedLiteral("5", xsd.Int)}
	l2 := Triple{ex, knows, NewTypedLiteral("05", xsd.Int)}
	require.True(t, l1.Equal(l2))
}

func TestTripleMap(t *testing.T) {
	b := BNode{ID: "a"}
	in := Triple{b, knows, b}
	out := in.Map(func(v Term) Term {
		if v == b {
			return BNode{ID: "z"}
		}
		return v
	})
	require.Equal(t, Triple{BNode{ID: "z"}, knows, BNode{ID: "z"}}, out)
	require.Equal(t, `_:a <http://ex/knows> _:a .`, in.String())
	require.Equal(t, `? <http://ex/knows> ? .`, Triple{Predicate: knows}.String())
}

func TestByString(t *testing.T) {
	list := []Triple{{exB, knows, ex}, {ex, knows, exB}}
	sort.Sort(ByString(list))
	require.Equal(t, ex, list[0].Subject)
}
