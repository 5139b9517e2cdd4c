package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cayleygraph/quad/nquads"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/internal"
	"github.com/cayleygraph/rdfstore/term"
)

// DatabaseFunc creates an empty store and returns a function that
// releases it.
type DatabaseFunc func(t testing.TB) (graph.Store, func())

// LoadGraph reads an N-Quads file, looking for it in parent directories so
// tests in nested packages can share one copy under data/.
func LoadGraph(t testing.TB, path string) []graph.Result {
	var (
		f   *os.File
		err error
	)
	const levels = 5
	for i := 0; i < levels; i++ {
		f, err = os.Open(path)
		if i+1 < levels && os.IsNotExist(err) {
			path = filepath.Join("../", path)
		} else if err != nil {
			t.Fatalf("Failed to open %q: %v", path, err)
		} else {
			break
		}
	}
	defer f.Close()

	var out []graph.Result
	r := nquads.NewReader(f, false)
	_, err = internal.Read(r, term.NewGenerator().NewScope(), func(t term.Triple, ctx term.Term) error {
		out = append(out, graph.Result{Triple: t, Context: ctx})
		return nil
	}, true)
	require.NoError(t, err)
	return out
}
