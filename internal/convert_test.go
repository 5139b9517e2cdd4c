package internal

import (
	"testing"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/term"
	"github.com/cayleygraph/rdfstore/voc/rdf"
	"github.com/cayleygraph/rdfstore/voc/xsd"
)

func TestFromQuad(t *testing.T) {
	scope := term.NewGenerator().NewScope()
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, c := range []struct {
		in  quad.Value
		exp term.Term
	}{
		{in: nil, exp: nil},
		{in: quad.IRI("HTTP://Ex.com/a"), exp: term.IRI("http://ex.com/a")},
		{in: quad.String("x"), exp: term.NewLiteral("x")},
		{in: quad.LangString{Value: "chat", Lang: "FR"}, exp: term.Literal{Lexical: "chat", Datatype: rdf.LangString, Language: "fr"}},
		{in: quad.TypedString{Value: "5", Type: xsd.Int}, exp: term.NewTypedLiteral("5", xsd.Int)},
		{in: quad.Int(42), exp: term.NewTypedLiteral("42", xsd.Integer)},
		{in: quad.Float(1.5), exp: term.NewTypedLiteral("1.5", xsd.Double)},
		{in: quad.Bool(true), exp: term.NewTypedLiteral("true", xsd.Boolean)},
		{in: quad.Time(ts), exp: term.NewTypedLiteral("2020-01-02T03:04:05Z", xsd.DateTime)},
	} {
		got, err := FromQuad(c.in, scope)
		require.NoError(t, err, "%v", c.in)
		require.Equal(t, c.exp, got)
	}

	_, err := FromQuad(quad.IRI("relative"), scope)
	require.ErrorIs(t, err, term.ErrInvalidTerm)
}

func TestFromQuadBlankScope(t *testing.T) {
	gen := term.NewGenerator()
	s1, s2 := gen.NewScope(), gen.NewScope()

	a1, err := FromQuad(quad.BNode("a"), s1)
	require.NoError(t, err)
	a1again, _ := FromQuad(quad.BNode("a"), s1)
	a2, _ := FromQuad(quad.BNode("a"), s2)
	require.Equal(t, a1, a1again)
	require.NotEqual(t, a1, a2)
}

func TestFromQuadTripleShape(t *testing.T) {
	scope := term.NewGenerator().NewScope()
	_, _, err := FromQuadTriple(quad.Quad{
		Subject:   quad.String("lit"),
		Predicate: quad.IRI("http://ex/p"),
		Object:    quad.IRI("http://ex/o"),
	}, scope)
	var se *term.ShapeError
	require.ErrorAs(t, err, &se)

	tr, ctx, err := FromQuadTriple(quad.MakeIRI("http://ex/s", "http://ex/p", "http://ex/o", "http://ex/g"), scope)
	require.NoError(t, err)
	require.Equal(t, term.IRI("http://ex/g"), ctx)
	require.Equal(t, term.IRI("http://ex/s"), tr.Subject)
}

func TestToQuadRoundTrip(t *testing.T) {
	scope := term.NewGenerator().NewScope()
	lang, err := term.NewLangLiteral("cat", "en")
	require.NoError(t, err)
	for _, v := range []term.Term{
		term.IRI("http://ex/a"),
		term.NewLiteral("plain"),
		lang,
		term.NewTypedLiteral("5", xsd.Int),
		term.NewTypedLiteral("<a/>", rdf.XMLLiteral),
	} {
		back, err := FromQuad(ToQuad(v), scope)
		require.NoError(t, err)
		require.Equal(t, v, back)
	}
	require.Equal(t, quad.BNode("x"), ToQuad(term.BNode{ID: "x"}))
	require.Nil(t, ToQuad(nil))

	q := ToQuadResult(graph.Result{
		Triple:  term.Triple{Subject: term.IRI("http://ex/s"), Predicate: term.IRI("http://ex/p"), Object: term.NewLiteral("o")},
		Context: term.IRI("http://ex/g"),
	})
	require.Equal(t, quad.IRI("http://ex/g"), q.Label)
	require.Equal(t, quad.String("o"), q.Object)
}
