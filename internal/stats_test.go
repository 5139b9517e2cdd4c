package internal

import (
	"strings"
	"testing"

	"github.com/cayleygraph/quad/nquads"
	"github.com/stretchr/testify/require"
)

func TestCollectStats(t *testing.T) {
	in := sample + "<http://ex/a> <http://ex/knows> <http://ex/b> .\n"
	st, err := Collect(nquads.NewReader(strings.NewReader(in), false), 0)
	require.NoError(t, err)
	require.Equal(t, 6, st.Statements)
	require.Equal(t, 1, st.Duplicates)
	require.Equal(t, uint64(5), st.Subjects)
	require.Equal(t, uint64(3), st.Predicates)
	require.Equal(t, uint64(1), st.Contexts)
}
