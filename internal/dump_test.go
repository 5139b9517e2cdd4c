package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/term"
)

func TestDumpRoundTrip(t *testing.T) {
	s := newStore(t)
	_, err := Load(s, nil, writeFile(t, "sample.nq", []byte(sample)), LoadOptions{})
	require.NoError(t, err)

	for _, name := range []string{"out.nq", "out.nq.gz"} {
		out := filepath.Join(t.TempDir(), name)
		n, err := Dump(s, nil, out, "")
		require.NoError(t, err)
		require.Equal(t, 4, n)

		back := newStore(t)
		n, err = Load(back, nil, out, LoadOptions{Strict: true})
		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Equal(t, s.Size(nil), back.Size(nil))
		require.ElementsMatch(t, s.Contexts(nil), back.Contexts(nil))
	}
}

func TestWriteSorted(t *testing.T) {
	s := newStore(t)
	for _, o := range []string{"c", "a", "b"} {
		require.NoError(t, s.Add(term.Triple{
			Subject:   term.IRI("http://ex/s"),
			Predicate: term.IRI("http://ex/p"),
			Object:    term.NewLiteral(o),
		}, term.IRI("http://ex/g"), false))
	}
	var buf bytes.Buffer
	n, err := Write(&buf, "nquads", "", s.Triples(term.Wildcard, nil))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		`<http://ex/s> <http://ex/p> "a" <http://ex/g> .`,
		`<http://ex/s> <http://ex/p> "b" <http://ex/g> .`,
		`<http://ex/s> <http://ex/p> "c" <http://ex/g> .`,
	}, lines)

	_, err = Write(&buf, "bogus", "", s.Triples(term.Wildcard, nil))
	require.Error(t, err)
}

func TestDumpCreateError(t *testing.T) {
	s := newStore(t)
	_, err := Dump(s, nil, filepath.Join(t.TempDir(), "missing", "out.nq"), "")
	require.Error(t, err)
}

func TestDumpDefaultContextUnlabelled(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add(term.Triple{
		Subject:   term.IRI("http://ex/s"),
		Predicate: term.IRI("http://ex/p"),
		Object:    term.IRI("http://ex/o"),
	}, nil, false))
	out := filepath.Join(t.TempDir(), "out.nq")
	_, err := Dump(s, nil, out, "")
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "<http://ex/s> <http://ex/p> <http://ex/o> .\n", string(data))
}
