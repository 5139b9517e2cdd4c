package internal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/term"
	"github.com/cayleygraph/rdfstore/voc/rdf"
	"github.com/cayleygraph/rdfstore/voc/rdfs"
	"github.com/cayleygraph/rdfstore/voc/xsd"
)

func TestParsePattern(t *testing.T) {
	scope := term.NewGenerator().NewScope()
	ts, err := ParsePattern([]string{"<http://ex/a>", "*", `"5"^^<http://www.w3.org/2001/XMLSchema#integer>`, ""}, scope)
	require.NoError(t, err)
	require.Equal(t, term.IRI("http://ex/a"), ts[0])
	require.Nil(t, ts[1])
	require.Equal(t, term.NewTypedLiteral("5", xsd.Integer), ts[2])
	require.Nil(t, ts[3])

	ts, err = ParsePattern([]string{"_:x", "?", "?", "<http://ctx/1>"}, scope)
	require.NoError(t, err)
	require.Equal(t, scope.Lookup("x"), ts[0])
	require.Equal(t, term.IRI("http://ctx/1"), ts[3])

	ts, err = ParsePattern(nil, scope)
	require.NoError(t, err)
	require.Equal(t, [4]term.Term{}, ts)
}

func TestParsePatternErrors(t *testing.T) {
	scope := term.NewGenerator().NewScope()
	for _, fields := range [][]string{
		{"<http://ex/a", "*", "*"},
		{"*", "*", "*", "*", "*"},
		{"<relative>", "*", "*"},
		{"*", "*", "<http://ex/b"},
		{"*", "*", "nope:x"},
		{"*", "*", "bare"},
		{"*", "*", "*", "<http://ctx/1"},
	} {
		_, err := ParsePattern(fields, scope)
		require.Error(t, err, "%q", fields)
	}
	_, err := ParsePattern([]string{"*", "*", "<http://ex/b"}, scope)
	require.ErrorIs(t, err, term.ErrInvalidTerm)
	_, _, err = ParseTriplePattern([]string{"*", "_:p", "*"}, scope)
	require.Error(t, err)
}

func TestExpand(t *testing.T) {
	for _, c := range []struct{ in, out string }{
		{"rdf:type", "<" + rdf.Type + ">"},
		{"rdfs:label", "<" + rdfs.Label + ">"},
		{`"5"^^xsd:integer`, `"5"^^<` + xsd.Integer + `>`},
		{`"5"^^<http://ex/t>`, `"5"^^<http://ex/t>`},
		{"<http://ex/a>", "<http://ex/a>"},
		{"_:b", "_:b"},
		{"nope:x", "nope:x"},
	} {
		require.Equal(t, c.out, Expand(c.in), c.in)
	}

	scope := term.NewGenerator().NewScope()
	pt, _, err := ParseTriplePattern([]string{"*", "rdf:type", "*"}, scope)
	require.NoError(t, err)
	require.Equal(t, term.IRI(rdf.Type), pt.Predicate)
}
