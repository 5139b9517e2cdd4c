package internal

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cayleygraph/quad/nquads"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/graph/memstore"
	"github.com/cayleygraph/rdfstore/term"
)

const sample = `<http://ex/a> <http://ex/knows> <http://ex/b> .
<http://ex/b> <http://ex/knows> _:x <http://ctx/1> .
_:x <http://ex/name> "X"@en <http://ctx/1> .
<relative> <http://ex/knows> <http://ex/b> .
<http://ex/c> <http://ex/age> "7"^^<http://www.w3.org/2001/XMLSchema#integer> .
`

func TestReadSkipsInvalid(t *testing.T) {
	var got []term.Triple
	n, err := Read(nquads.NewReader(strings.NewReader(sample), false), term.NewGenerator().NewScope(),
		func(t term.Triple, ctx term.Term) error {
			got = append(got, t)
			return nil
		}, false)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Len(t, got, 4)
	// the label is shared within one read
	require.Equal(t, got[1].Object, got[2].Subject)
}

func TestReadStrict(t *testing.T) {
	n, err := Read(nquads.NewReader(strings.NewReader(sample), false), term.NewGenerator().NewScope(),
		func(term.Triple, term.Term) error { return nil }, true)
	require.ErrorIs(t, err, term.ErrInvalidTerm)
	require.Equal(t, 3, n)
}

func TestReadSinkError(t *testing.T) {
	stop := errors.New("stop")
	sink := func(term.Triple, term.Term) error { return stop }
	_, err := Read(nquads.NewReader(strings.NewReader(sample), false), term.NewGenerator().NewScope(), sink, true)
	require.ErrorIs(t, err, stop)
	n, err := Read(nquads.NewReader(strings.NewReader(sample), false), term.NewGenerator().NewScope(), sink, false)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func writeFile(t *testing.T, name string, data []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func newStore(t *testing.T) graph.Store {
	s, err := memstore.New(memstore.WithIdentifier(term.IRI("http://ctx/default")))
	require.NoError(t, err)
	return s
}

func TestLoad(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	for _, path := range []string{
		writeFile(t, "sample.nq", []byte(sample)),
		writeFile(t, "sample.nq.gz", buf.Bytes()),
	} {
		s := newStore(t)
		n, err := Load(s, nil, path, LoadOptions{Batch: 2})
		require.NoError(t, err, path)
		require.Equal(t, 4, n)
		require.Equal(t, 2, s.Size(term.IRI("http://ctx/default")))
		require.Equal(t, 2, s.Size(term.IRI("http://ctx/1")))
	}

	s := newStore(t)
	path := writeFile(t, "sample.nq", []byte(sample))
	_, err = Load(s, term.IRI("http://ctx/into"), path, LoadOptions{Format: "nquads", Strict: true})
	require.ErrorIs(t, err, term.ErrInvalidTerm)
	require.Equal(t, 3, s.Size(nil))
	require.Equal(t, 1, s.Size(term.IRI("http://ctx/into")))
}

func TestLoadBlankNodesDoNotUnify(t *testing.T) {
	s := newStore(t)
	path := writeFile(t, "b.nq", []byte("_:x <http://ex/p> <http://ex/o> .\n"))
	_, err := Load(s, nil, path, LoadOptions{})
	require.NoError(t, err)
	_, err = Load(s, nil, path, LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, s.Size(nil))
}

func TestLoadErrors(t *testing.T) {
	s := newStore(t)
	_, err := Load(s, nil, filepath.Join(t.TempDir(), "missing.nq"), LoadOptions{})
	require.Error(t, err)

	path := writeFile(t, "sample.nq", []byte(sample))
	_, err = Load(s, nil, path, LoadOptions{Format: "no-such-format"})
	require.Error(t, err)

	n, err := Load(s, nil, writeFile(t, "empty.nq", nil), LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 0, n)

	n, err = Load(s, nil, "", LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestLoadAndRemoveReader(t *testing.T) {
	s := newStore(t)
	n, err := LoadReader(s, nil, strings.NewReader(sample), "", LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 4, n)

	del := "<http://ex/a> <http://ex/knows> <http://ex/b> .\n" +
		"<http://ex/c> <http://ex/age> \"7\"^^<http://www.w3.org/2001/XMLSchema#integer> <http://ctx/1> .\n"
	n, err = RemoveReader(s, nil, strings.NewReader(del), "", LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	// only the first statement was in the context it named
	require.Equal(t, 1, s.Size(term.IRI("http://ctx/default")))
	require.Equal(t, 2, s.Size(term.IRI("http://ctx/1")))
}

func TestOpenReader(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	qr, err := OpenReader(writeFile(t, "sample.nq.gz", buf.Bytes()), "")
	require.NoError(t, err)
	n, err := Read(qr, term.NewGenerator().NewScope(), func(term.Triple, term.Term) error { return nil }, false)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.NoError(t, qr.Close())

	qr, err = OpenReader(writeFile(t, "empty.nq", nil), "")
	require.NoError(t, err)
	n, err = Read(qr, term.NewGenerator().NewScope(), func(term.Triple, term.Term) error { return nil }, false)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.NoError(t, qr.Close())

	_, err = OpenReader(writeFile(t, "sample.nq", []byte(sample)), "no-such-format")
	require.Error(t, err)
}
