package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamedBNode(t *testing.T) {
	for _, id := range []string{"a", "_x", "node-1", "n.2", "é"} {
		b, err := NamedBNode(id)
		require.NoError(t, err, "%q", id)
		require.Equal(t, id, b.ID)
	}
	for _, id := range []string{"1a", "a:b", "-a", "a b"} {
		_, err := NamedBNode(id)
		require.Error(t, err, "%q", id)
	}
}

func TestNamedBNodeAnonymous(t *testing.T) {
	a, err := NamedBNode("")
	require.NoError(t, err)
	b, err := NamedBNode("")
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	require.False(t, Equal(a, b))
}

func TestBNodeIdentity(t *testing.T) {
	a, _ := NamedBNode("same")
	b, _ := NamedBNode("same")
	require.True(t, Equal(a, b))
	require.Equal(t, HashOf(a), HashOf(b))

	g := NewGenerator()
	x, y := g.New(), g.New()
	require.False(t, Equal(x, y))
	require.True(t, IsNameToken(x.ID), "generated id %q is not a name token", x.ID)
}

func TestGeneratorsNeverCollide(t *testing.T) {
	g1, g2 := NewGenerator(), NewGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		for _, g := range []*Generator{g1, g2, DefaultGenerator()} {
			id := g.New().ID
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %q", id)
			seen[id] = struct{}{}
		}
	}
}

func TestScope(t *testing.T) {
	g := NewGenerator()
	s1, s2 := g.NewScope(), g.NewScope()

	a1 := s1.Lookup("a")
	require.Equal(t, a1, s1.Lookup("a"))
	require.NotEqual(t, a1, s1.Lookup("b"))
	require.NotEqual(t, a1, s2.Lookup("a"))
	require.NotEqual(t, s1.Lookup(""), s1.Lookup(""))
	require.Equal(t, 2, s1.Len())
	// labels that are not valid identifiers are still usable as keys
	require.Equal(t, s1.Lookup("0"), s1.Lookup("0"))
}
