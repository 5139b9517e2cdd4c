package voc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var casesShortIRI = []struct {
	full  string
	short string
}{
	{full: "http://example.com/name", short: "ex:name"},
	{full: "http://example.com/deep/name", short: "exd:name"},
	{full: "http://other.org/name", short: "http://other.org/name"},
}

func TestShortIRI(t *testing.T) {
	RegisterPrefix("ex:", "http://example.com/")
	RegisterPrefix("exd:", "http://example.com/deep/")
	for _, c := range casesShortIRI {
		require.Equal(t, c.full, FullIRI(c.full))
		s := ShortIRI(c.full)
		require.Equal(t, c.short, s)
		require.Equal(t, c.full, FullIRI(s))
	}
}

func TestLookup(t *testing.T) {
	RegisterPrefix("lk:", "http://lookup.example/")
	ns, ok := Lookup("lk:")
	require.True(t, ok)
	require.Equal(t, "http://lookup.example/", ns)
	_, ok = Lookup("missing:")
	require.False(t, ok)

	list := List()
	for i := 1; i < len(list); i++ {
		require.True(t, list[i-1][0] < list[i][0], "list is not sorted")
	}
}
