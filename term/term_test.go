package term

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var iriCases = []struct {
	in, out string
	err     bool
}{
	{in: "http://ex/a", out: "http://ex/a"},
	{in: "HTTP://Example.COM/Path", out: "http://example.com/Path"},
	{in: "http://example.com:80/a", out: "http://example.com/a"},
	{in: "https://example.com:443", out: "https://example.com"},
	{in: "https://example.com:8443/x", out: "https://example.com:8443/x"},
	{in: "http://User@Example.com/a?q#f", out: "http://User@example.com/a?q#f"},
	{in: "URN:isbn:0451450523", out: "urn:isbn:0451450523"},
	{in: "relative/path", err: true},
	{in: "", err: true},
}

func TestNewIRI(t *testing.T) {
	for _, c := range iriCases {
		v, err := NewIRI(c.in)
		if c.err {
			require.Error(t, err, "%q", c.in)
			require.True(t, errors.Is(err, ErrInvalidTerm))
			continue
		}
		require.NoError(t, err, "%q", c.in)
		require.Equal(t, IRI(c.out), v)
	}
}

func TestEqualKinds(t *testing.T) {
	iri := IRI("http://ex/a")
	bn := BNode{ID: "a"}
	lit := NewLiteral("http://ex/a")

	require.True(t, Equal(iri, IRI("http://ex/a")))
	require.True(t, Equal(bn, BNode{ID: "a"}))
	require.False(t, Equal(iri, lit))
	require.False(t, Equal(lit, iri))
	require.False(t, Equal(bn, IRI("_:a")))
	require.False(t, Equal(bn, NewLiteral("_:a")))
	require.False(t, Equal(iri, nil))
	require.True(t, Equal(nil, nil))
}

func TestHashOf(t *testing.T) {
	require.Equal(t, HashOf(IRI("http://ex/a")), HashOf(IRI("http://ex/a")))
	require.NotEqual(t, HashOf(IRI("http://ex/a")), HashOf(IRI("http://ex/b")))
	require.NotEqual(t, HashOf(BNode{ID: "a"}), HashOf(NewLiteral("a")))
	require.False(t, HashOf(nil).Valid())
	require.True(t, HashOf(BNode{ID: "a"}).Valid())
	require.Len(t, HashOf(BNode{ID: "a"}).String(), 2*HashSize)
}
