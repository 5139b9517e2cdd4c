package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/internal"
	"github.com/cayleygraph/rdfstore/internal/config"
)

const people = `<http://ex/alice> <http://ex/knows> <http://ex/bob> .
<http://ex/bob> <http://ex/knows> <http://ex/carol> <http://ctx/work> .
<http://ex/alice> <http://ex/name> "Alice" .
`

func writeFile(t *testing.T, name, data string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestQueryCmd(t *testing.T) {
	path := writeFile(t, "people.nq", people)
	out, err := run(t, NewQueryCmd(config.New()), "-i", path, "<http://ex/alice>", "*", "*")
	require.NoError(t, err)
	require.Equal(t, `<http://ex/alice> <http://ex/knows> <http://ex/bob> .
<http://ex/alice> <http://ex/name> "Alice" .
`, out)

	out, err = run(t, NewQueryCmd(config.New()), "-i", path, "*", "<http://ex/knows>", "*", "<http://ctx/work>")
	require.NoError(t, err)
	require.Equal(t, "<http://ex/bob> <http://ex/knows> <http://ex/carol> <http://ctx/work> .\n", out)

	out, err = run(t, NewQueryCmd(config.New()), "-i", path, "-n", "1", "*", "*", "*")
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out, "\n"))
}

func TestQueryCmdErrors(t *testing.T) {
	_, err := run(t, NewQueryCmd(config.New()), "*", "*")
	require.Error(t, err)
	_, err = run(t, NewQueryCmd(config.New()), `"lit`, "*", "*")
	require.Error(t, err)
	_, err = run(t, NewQueryCmd(config.New()), "-i", filepath.Join(t.TempDir(), "missing.nq"), "*", "*", "*")
	require.Error(t, err)
}

func TestContextsCmd(t *testing.T) {
	path := writeFile(t, "people.nq", people)
	out, err := run(t, NewContextsCmd(config.New()), "-i", path)
	require.NoError(t, err)
	require.Equal(t, "<http://ctx/work>\t1\n<"+defaultIdentifier+">\t2\n", out)

	out, err = run(t, NewContextsCmd(config.New()), "-i", path, "*", "<http://ex/name>", "*")
	require.NoError(t, err)
	require.Equal(t, "<"+defaultIdentifier+">\t1\n", out)

	_, err = run(t, NewContextsCmd(config.New()), "-i", path, "*")
	require.Error(t, err)
}

func TestStatsCmd(t *testing.T) {
	path := writeFile(t, "people.nq", people+people)
	out, err := run(t, NewStatsCmd(), "--json", path)
	require.NoError(t, err)
	var st map[string]internal.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &st), out)
	require.Equal(t, 6, st[path].Statements)
	require.Equal(t, 3, st[path].Duplicates)

	out, err = run(t, NewStatsCmd(), path)
	require.NoError(t, err)
	require.Contains(t, out, "statements")
	require.Contains(t, out, path)

	_, err = run(t, NewStatsCmd())
	require.Error(t, err)
}

func TestConvertCmd(t *testing.T) {
	in := writeFile(t, "people.nq", people)
	out, err := run(t, NewConvertCmd(), in, "-")
	require.NoError(t, err)
	require.Equal(t, people, out)

	dst := filepath.Join(t.TempDir(), "people.jsonld")
	_, err = run(t, NewConvertCmd(), in, dst)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Contains(t, string(data), "http://ex/alice")

	back, err := run(t, NewConvertCmd(), "--"+flagDumpFormat, "nquads", dst, "-")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(back, "\n"))

	_, err = run(t, NewConvertCmd(), in)
	require.Error(t, err)
}

func TestMergeCmd(t *testing.T) {
	a := writeFile(t, "a.nq", "_:x <http://ex/p> <http://ex/o> .\n")
	b := writeFile(t, "b.nq", "_:x <http://ex/p> <http://ex/o> .\n<http://ex/s> <http://ex/p> <http://ex/o> .\n")
	dst := filepath.Join(t.TempDir(), "merged.nq")
	_, err := run(t, NewMergeCmd(config.New()), "-o", dst, a, b)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	// the two _:x are different nodes
	require.Equal(t, 3, strings.Count(string(data), "\n"), string(data))

	_, err = run(t, NewMergeCmd(config.New()), a)
	require.Error(t, err)
}

func TestEqualCmd(t *testing.T) {
	a := writeFile(t, "a.nq", "_:x <http://ex/p> <http://ex/o> .\n<http://ex/s> <http://ex/p> _:x .\n")
	b := writeFile(t, "b.nq", "_:y <http://ex/p> <http://ex/o> .\n<http://ex/s> <http://ex/p> _:y .\n")
	c := writeFile(t, "c.nq", "<http://ex/s> <http://ex/p> <http://ex/o> .\n")

	out, err := run(t, NewEqualCmd(config.New()), a, b)
	require.NoError(t, err)
	require.Equal(t, "equal\n", out)

	out, err = run(t, NewEqualCmd(config.New()), a, c)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(out, "not equal\n"), out)
}

func TestParseContext(t *testing.T) {
	c, err := parseContext("*")
	require.NoError(t, err)
	require.Nil(t, c)
	c, err = parseContext("<http://ctx/1>")
	require.NoError(t, err)
	require.Equal(t, "<http://ctx/1>", c.String())
	_, err = parseContext(`"lit"`)
	require.Error(t, err)
}
