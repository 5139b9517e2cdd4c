// Package graphtest is a conformance suite for graph.Store implementations.
package graphtest

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/graph/graphtest/testutil"
	"github.com/cayleygraph/rdfstore/term"
	"github.com/cayleygraph/rdfstore/voc/rdf"
	"github.com/cayleygraph/rdfstore/voc/xsd"
)

type Config struct {
	// SkipQuoted disables checks for backends that are not formula aware.
	SkipQuoted bool
}

func TestAll(t *testing.T, gen testutil.DatabaseFunc, conf *Config) {
	if conf == nil {
		conf = &Config{}
	}
	t.Run("concrete scenario", func(t *testing.T) { TestConcreteScenario(t, gen) })
	t.Run("set semantics", func(t *testing.T) { TestSetSemantics(t, gen) })
	t.Run("round trip", func(t *testing.T) { TestRoundTrip(t, gen) })
	t.Run("context isolation", func(t *testing.T) { TestContextIsolation(t, gen) })
	if !conf.SkipQuoted {
		t.Run("quoting", func(t *testing.T) { TestQuoting(t, gen) })
	}
	t.Run("removal pruning", func(t *testing.T) { TestRemovalPruning(t, gen) })
	t.Run("remove pattern", func(t *testing.T) { TestRemovePattern(t, gen) })
	t.Run("literal containment", func(t *testing.T) { TestLiteralContainment(t, gen) })
	t.Run("patterns", func(t *testing.T) { TestPatterns(t, gen) })
	t.Run("size", func(t *testing.T) { TestSize(t, gen) })
	t.Run("contexts", func(t *testing.T) { TestContexts(t, gen) })
	t.Run("invalid shapes", func(t *testing.T) { TestInvalidShapes(t, gen) })
	t.Run("mutate while iterating", func(t *testing.T) { TestMutateWhileIterating(t, gen) })
	t.Run("namespaces", func(t *testing.T) { TestNamespaces(t, gen) })
	t.Run("destroy", func(t *testing.T) { TestDestroy(t, gen) })
	t.Run("load file", func(t *testing.T) { TestLoadFile(t, gen) })
	t.Run("graph", func(t *testing.T) { TestGraph(t, gen, conf) })
}

var (
	exA     = term.IRI("http://ex/a")
	exB     = term.IRI("http://ex/b")
	exC     = term.IRI("http://ex/c")
	knows   = term.IRI("http://ex/knows")
	likes   = term.IRI("http://ex/likes")
	age     = term.IRI("http://ex/age")
	ctx1    = term.IRI("http://ctx/1")
	ctx2    = term.IRI("http://ctx/2")
	formula = term.IRI("http://ctx/formula")
)

func tr(s, p, o term.Term) term.Triple {
	return term.Triple{Subject: s, Predicate: p, Object: o}
}

// MakeTripleSet returns a small social graph spread over two contexts.
func MakeTripleSet() []graph.Result {
	return []graph.Result{
		{Triple: tr(exA, knows, exB), Context: ctx1},
		{Triple: tr(exB, knows, exC), Context: ctx1},
		{Triple: tr(exA, likes, exC), Context: ctx1},
		{Triple: tr(exA, knows, exB), Context: ctx2},
		{Triple: tr(exC, age, term.NewTypedLiteral("40", xsd.Int)), Context: ctx2},
	}
}

func add(t testing.TB, s graph.Store, data ...graph.Result) {
	for _, r := range data {
		require.NoError(t, s.Add(r.Triple, r.Context, false), "adding %v", r)
	}
}

// Collect returns all results of it sorted by their N-Quads form.
func Collect(t testing.TB, it graph.Iterator) []graph.Result {
	res, err := graph.All(context.Background(), it)
	require.NoError(t, err)
	sort.Slice(res, func(i, j int) bool { return res[i].String() < res[j].String() })
	return res
}

// ExpectResults checks that it yields exactly exp, in any order.
func ExpectResults(t testing.TB, it graph.Iterator, exp []graph.Result) {
	exp = append([]graph.Result(nil), exp...)
	sort.Slice(exp, func(i, j int) bool { return exp[i].String() < exp[j].String() })
	got := Collect(t, it)
	if len(exp) == 0 {
		require.Empty(t, got)
		return
	}
	require.Equal(t, exp, got)
}

func TestConcreteScenario(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	require.NoError(t, s.Add(tr(exA, knows, exB), ctx1, false))
	require.Equal(t, 1, s.Size(ctx1))
	ExpectResults(t, s.Triples(term.Triple{Predicate: knows}, nil), []graph.Result{
		{Triple: tr(exA, knows, exB), Context: ctx1},
	})
	require.Equal(t, []term.Term{ctx1}, s.Contexts(nil))
}

func TestSetSemantics(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Add(tr(exA, knows, exB), ctx1, false))
		require.Equal(t, 1, s.Size(ctx1))
	}
	// the same triple in another context is a separate association
	require.NoError(t, s.Add(tr(exA, knows, exB), ctx2, false))
	require.Equal(t, 1, s.Size(ctx2))
	require.Equal(t, 1, s.Size(nil))
	require.Len(t, Collect(t, s.Triples(term.Wildcard, nil)), 2)
}

func TestRoundTrip(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	data := MakeTripleSet()
	add(t, s, data...)
	for _, r := range data {
		require.True(t, s.Contains(r.Triple, r.Context), "missing %v", r)
		ExpectResults(t, s.Triples(r.Triple, r.Context), []graph.Result{r})
	}
}

func TestContextIsolation(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	bc := tr(exB, knows, exC)
	require.NoError(t, s.Add(bc, ctx1, false))
	require.True(t, s.Contains(bc, ctx1))
	require.False(t, s.Contains(bc, ctx2))
	require.True(t, s.Contains(bc, nil))

	require.NoError(t, s.Add(bc, ctx2, false))
	ExpectResults(t, s.Triples(bc, nil), []graph.Result{
		{Triple: bc, Context: ctx1},
		{Triple: bc, Context: ctx2},
	})
	ExpectResults(t, s.Triples(bc, ctx2), []graph.Result{{Triple: bc, Context: ctx2}})
}

func TestQuoting(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	require.True(t, s.Features().FormulaAware)

	q := tr(exA, likes, exB)
	require.NoError(t, s.Add(q, formula, true))
	ExpectResults(t, s.Triples(q, nil), nil)
	ExpectResults(t, s.Triples(term.Wildcard, nil), nil)
	require.False(t, s.Contains(q, nil))
	ExpectResults(t, s.Triples(q, formula), []graph.Result{{Triple: q, Context: formula}})
	require.True(t, s.Contains(q, formula))
	require.Equal(t, 1, s.Size(formula))
	require.Equal(t, 0, s.Size(nil))
	require.Equal(t, []term.Term{formula}, s.Contexts(nil))

	// a plain add of the same triple makes it visible to the union view
	require.NoError(t, s.Add(q, formula, false))
	require.Equal(t, 1, s.Size(formula))
	ExpectResults(t, s.Triples(q, nil), []graph.Result{{Triple: q, Context: formula}})

	// removing a quoted triple drops it from its context
	qb := tr(exB, likes, exC)
	require.NoError(t, s.Add(qb, formula, true))
	require.NoError(t, s.Remove(qb, formula))
	require.False(t, s.Contains(qb, formula))
	require.Equal(t, 1, s.Size(formula))
}

func TestRemovalPruning(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	add(t, s, MakeTripleSet()...)
	require.Len(t, s.Contexts(nil), 2)

	for _, r := range Collect(t, s.Triples(term.Wildcard, ctx1)) {
		require.NoError(t, s.Remove(r.Triple, ctx1))
	}
	require.Equal(t, 0, s.Size(ctx1))
	require.Equal(t, []term.Term{ctx2}, s.Contexts(nil))
	ExpectResults(t, s.Triples(term.Wildcard, ctx1), nil)
	require.True(t, s.Contains(tr(exA, knows, exB), ctx2))

	// the wildcard pattern drops a whole context
	require.NoError(t, s.Remove(term.Wildcard, ctx2))
	require.Equal(t, 0, s.Size(ctx2))
	require.Equal(t, 0, s.Size(nil))
	require.Empty(t, s.Contexts(nil))
	ExpectResults(t, s.Triples(term.Wildcard, nil), nil)
}

func TestRemovePattern(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	add(t, s, MakeTripleSet()...)

	// a nil context removes from every context
	require.NoError(t, s.Remove(term.Triple{Subject: exA, Predicate: knows}, nil))
	require.False(t, s.Contains(tr(exA, knows, exB), ctx1))
	require.False(t, s.Contains(tr(exA, knows, exB), ctx2))
	require.Equal(t, 2, s.Size(ctx1))
	require.Equal(t, 1, s.Size(ctx2))

	require.NoError(t, s.Remove(term.Triple{Object: exC}, ctx1))
	ExpectResults(t, s.Triples(term.Wildcard, ctx1), nil)
	require.Equal(t, []term.Term{ctx2}, s.Contexts(nil))

	// unknown terms match nothing
	require.NoError(t, s.Remove(term.Triple{Subject: term.IRI("http://ex/none")}, nil))
	require.Equal(t, 1, s.Size(nil))
}

func TestLiteralContainment(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	five := tr(exA, age, term.NewTypedLiteral("5", xsd.Int))
	require.NoError(t, s.Add(five, ctx1, false))

	other := tr(exA, age, term.NewTypedLiteral("5", xsd.Int))
	require.True(t, s.Contains(other, ctx1))
	require.True(t, s.Contains(other, nil))

	padded := tr(exA, age, term.NewTypedLiteral("005", xsd.Int))
	require.True(t, s.Contains(padded, ctx1))
	require.False(t, s.Contains(tr(exA, age, term.NewTypedLiteral("6", xsd.Int)), ctx1))
	require.False(t, s.Contains(tr(exA, age, term.NewLiteral("5")), ctx1))
	require.False(t, s.Contains(padded, ctx2))

	// a content-equal literal is already present, so this is a no-op
	require.NoError(t, s.Add(padded, ctx1, false))
	require.Equal(t, 1, s.Size(ctx1))
}

func TestPatterns(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	data := MakeTripleSet()
	add(t, s, data...)

	for _, c := range []struct {
		name    string
		pattern term.Triple
		ctx     term.Term
		exp     []graph.Result
	}{
		{name: "all", pattern: term.Wildcard, exp: data},
		{name: "subject", pattern: term.Triple{Subject: exA}, exp: []graph.Result{data[0], data[2], data[3]}},
		{name: "subject in context", pattern: term.Triple{Subject: exA}, ctx: ctx2, exp: []graph.Result{data[3]}},
		{name: "predicate", pattern: term.Triple{Predicate: knows}, exp: []graph.Result{data[0], data[1], data[3]}},
		{name: "predicate in context", pattern: term.Triple{Predicate: knows}, ctx: ctx1, exp: []graph.Result{data[0], data[1]}},
		{name: "object", pattern: term.Triple{Object: exC}, exp: []graph.Result{data[1], data[2]}},
		{name: "object in context", pattern: term.Triple{Object: exB}, ctx: ctx2, exp: []graph.Result{data[3]}},
		{name: "subject and object", pattern: term.Triple{Subject: exA, Object: exC}, exp: []graph.Result{data[2]}},
		{name: "predicate and object", pattern: term.Triple{Predicate: knows, Object: exB}, exp: []graph.Result{data[0], data[3]}},
		{name: "unknown term", pattern: term.Triple{Subject: term.IRI("http://ex/none")}},
		{name: "unknown context", pattern: term.Wildcard, ctx: term.IRI("http://ctx/none")},
	} {
		t.Run(c.name, func(t *testing.T) {
			ExpectResults(t, s.Triples(c.pattern, c.ctx), c.exp)
		})
	}
}

func TestSize(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	require.Equal(t, 0, s.Size(nil))
	add(t, s, MakeTripleSet()...)
	require.Equal(t, 3, s.Size(ctx1))
	require.Equal(t, 2, s.Size(ctx2))
	// (a knows b) is in both contexts but counted once
	require.Equal(t, 4, s.Size(nil))
	require.Equal(t, graph.CountTriples(s, nil), s.Size(nil))
	require.Equal(t, graph.CountTriples(s, ctx1), s.Size(ctx1))
	require.Equal(t, 0, s.Size(term.IRI("http://ctx/none")))
}

func TestContexts(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	add(t, s, MakeTripleSet()...)
	assert.ElementsMatch(t, []term.Term{ctx1, ctx2}, s.Contexts(nil))

	p := term.Triple{Subject: exA, Predicate: knows}
	assert.ElementsMatch(t, []term.Term{ctx1, ctx2}, s.Contexts(&p))
	p = term.Triple{Predicate: likes}
	assert.Equal(t, []term.Term{ctx1}, s.Contexts(&p))
	p = term.Triple{Object: term.NewTypedLiteral("040", xsd.Int)}
	assert.Equal(t, []term.Term{ctx2}, s.Contexts(&p))
	p = term.Triple{Subject: term.IRI("http://ex/none")}
	assert.Empty(t, s.Contexts(&p))

	assert.ElementsMatch(t, graph.DistinctContexts(s, nil), s.Contexts(nil))
}

func TestInvalidShapes(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	err := s.Add(tr(term.NewLiteral("x"), knows, exB), ctx1, false)
	var se *term.ShapeError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "subject", se.Role)

	err = s.Add(tr(exA, term.BNode{ID: "p"}, exB), ctx1, false)
	require.ErrorIs(t, err, term.ErrInvalidTerm)

	err = s.Add(term.Triple{Subject: exA, Predicate: knows}, ctx1, false)
	require.ErrorIs(t, err, term.ErrPattern)

	require.Error(t, s.Remove(term.Triple{Predicate: term.NewLiteral("p")}, nil))
	it := s.Triples(term.Triple{Subject: term.NewLiteral("s")}, nil)
	require.False(t, it.Next(context.Background()))
	require.Error(t, it.Err())

	require.Equal(t, 0, s.Size(nil))
	require.Empty(t, s.Contexts(nil))
}

func TestMutateWhileIterating(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	add(t, s, MakeTripleSet()...)
	it := s.Triples(term.Wildcard, nil)
	defer it.Close()
	n := 0
	for it.Next(context.Background()) {
		r := it.Result()
		require.NoError(t, s.Remove(r.Triple, r.Context))
		n++
	}
	require.NoError(t, it.Err())
	require.Equal(t, 5, n)
	require.Equal(t, 0, s.Size(nil))
}

func TestNamespaces(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	ex, err := graph.NewNamespace("http://ex/", "ex")
	require.NoError(t, err)
	s.Bind(ex)
	got, ok := s.Namespace("ex")
	require.True(t, ok)
	require.Equal(t, ex, got)
	p, ok := s.Prefix("http://ex/")
	require.True(t, ok)
	require.Equal(t, "ex", p)

	// an unprefixed binding does not shadow the first prefix of a URI
	def, err := graph.NewNamespace("http://ex/", "")
	require.NoError(t, err)
	s.Bind(def)
	p, _ = s.Prefix("http://ex/")
	require.Equal(t, "ex", p)
	_, ok = s.Namespace("")
	require.True(t, ok)
	require.Len(t, s.Namespaces(), 2)

	_, ok = s.Namespace("none")
	require.False(t, ok)
}

func TestDestroy(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	add(t, s, MakeTripleSet()...)
	require.NoError(t, s.Destroy())
	require.Equal(t, 0, s.Size(nil))
	require.Empty(t, s.Contexts(nil))
	add(t, s, MakeTripleSet()[0])
	require.Equal(t, 1, s.Size(nil))
}

func TestLoadFile(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	data := testutil.LoadGraph(t, "data/testdata.nq")
	require.Len(t, data, 15)
	add(t, s, data...)
	require.Equal(t, 15, s.Size(nil))
	require.Equal(t, 8, s.Size(s.Identifier()))
	assert.ElementsMatch(t, []term.Term{
		s.Identifier(),
		term.IRI("http://ex/status_graph"),
		term.IRI("http://ex/smart_graph"),
	}, s.Contexts(nil))

	status := term.IRI("http://ex/status")
	cool := term.NewLiteral("cool_person")
	ExpectResults(t, s.Triples(term.Triple{Predicate: status, Object: cool}, nil), []graph.Result{
		{Triple: tr(term.IRI("http://ex/bob"), status, cool), Context: term.IRI("http://ex/status_graph")},
		{Triple: tr(term.IRI("http://ex/dani"), status, cool), Context: term.IRI("http://ex/status_graph")},
		{Triple: tr(term.IRI("http://ex/greg"), status, cool), Context: term.IRI("http://ex/status_graph")},
	})
	require.True(t, s.Contains(term.Triple{
		Predicate: term.IRI("http://ex/age"),
		Object:    term.NewTypedLiteral("31", xsd.Integer),
	}, nil))
}

func TestGraph(t *testing.T, gen testutil.DatabaseFunc, conf *Config) {
	t.Run("handle", func(t *testing.T) { TestGraphHandle(t, gen) })
	t.Run("merge", func(t *testing.T) { TestMerge(t, gen) })
	t.Run("equal", func(t *testing.T) { TestEqual(t, gen) })
	t.Run("conjunctive", func(t *testing.T) { TestConjunctive(t, gen) })
	t.Run("conjunctive bnodes", func(t *testing.T) { TestConjunctiveBnodes(t, gen) })
	t.Run("aggregate", func(t *testing.T) { TestAggregate(t, gen) })
	if !conf.SkipQuoted {
		t.Run("quoted", func(t *testing.T) { TestQuotedGraph(t, gen) })
	}
}

func TestGraphHandle(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	g := graph.New(s, ctx1)
	require.Equal(t, ctx1, g.Identifier())
	require.NoError(t, g.AddTriple(exA, knows, exB))
	bn := term.BNode{ID: "x"}
	require.NoError(t, g.AddTriple(bn, term.IRI(rdf.Type), exC))
	require.NoError(t, g.AddTriple(exB, term.IRI(rdf.Type), exC))
	require.NoError(t, g.AddTriple(exA, knows, bn))
	require.Equal(t, 4, g.Size())

	assert.ElementsMatch(t, []term.Term{exA, bn, exB}, g.Subjects())
	assert.ElementsMatch(t, []term.Term{knows, term.IRI(rdf.Type)}, g.Predicates())
	assert.ElementsMatch(t, []term.Term{exB, exC, bn}, g.Objects())
	assert.ElementsMatch(t, []term.Term{bn, exB}, g.GetByType(exC))
	require.Equal(t, map[term.BNode]int{bn: 2}, g.Bnodes())

	err := g.AddTriple(exA, nil, exB)
	require.ErrorIs(t, err, term.ErrPattern)

	other := graph.New(s, nil)
	require.Equal(t, term.KindBNode, other.Identifier().Kind())
	require.Equal(t, 0, other.Size())

	require.NoError(t, g.Remove(term.Triple{Subject: exA}))
	require.Equal(t, 2, g.Size())
	require.NoError(t, g.Destroy())
	require.Equal(t, 0, g.Size())
	require.Empty(t, s.Contexts(nil))
}

func TestMerge(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	bn1, bn2 := term.BNode{ID: "n1"}, term.BNode{ID: "n2"}
	a := graph.New(s, ctx1)
	require.NoError(t, a.AddTriple(bn1, knows, bn2))
	require.NoError(t, a.AddTriple(bn2, knows, exA))

	b := graph.New(s, ctx2, graph.WithGenerator(term.NewGenerator()))
	require.NoError(t, b.AddTriple(term.BNode{ID: "n1"}, likes, exC))
	before := b.Bnodes()

	require.NoError(t, b.Merge(a))
	require.Equal(t, 3, b.Size())

	merged := b.Bnodes()
	require.Len(t, merged, 3)
	for n := range merged {
		if _, ok := before[n]; ok {
			continue
		}
		require.False(t, term.Equal(n, bn1), "blank node %v unified with merged graph", n)
		require.False(t, term.Equal(n, bn2), "blank node %v unified with merged graph", n)
	}
	require.Equal(t, 1, merged[term.BNode{ID: "n1"}])

	var renamed term.Term
	it := b.Triples(term.Triple{Predicate: knows, Object: exA})
	for it.Next(context.Background()) {
		renamed = it.Result().Triple.Subject
	}
	require.NoError(t, it.Close())
	require.NotNil(t, renamed)
	require.True(t, b.Contains(term.Triple{Object: renamed, Predicate: knows}))
	// the source graph is unchanged
	require.Equal(t, 2, a.Size())
}

func TestEqual(t *testing.T, gen testutil.DatabaseFunc) {
	s1, closer1 := gen(t)
	defer closer1()
	s2, closer2 := gen(t)
	defer closer2()

	build := func(s graph.Store, label string) *graph.Graph {
		g := graph.New(s, ctx1)
		bn := term.BNode{ID: label}
		require.NoError(t, g.AddTriple(exA, knows, exB))
		require.NoError(t, g.AddTriple(exA, knows, bn))
		require.NoError(t, g.AddTriple(bn, age, term.NewTypedLiteral("5", xsd.Int)))
		return g
	}
	g1, g2 := build(s1, "x"), build(s2, "y")
	require.True(t, g1.Equal(g2))
	require.True(t, g2.Equal(g1))

	require.NoError(t, g2.AddTriple(exB, knows, exA))
	require.False(t, g1.Equal(g2))
	require.NoError(t, g2.Remove(tr(exB, knows, exA)))
	require.True(t, g1.Equal(g2))

	// different identifiers are never equal
	g3 := graph.New(s2, ctx2)
	require.NoError(t, g3.Merge(g2))
	require.False(t, g1.Equal(g3))

	// known limitation: blank node structure is not compared
	require.NoError(t, g2.Remove(term.Triple{Predicate: age}))
	require.NoError(t, g2.AddTriple(term.BNode{ID: "y"}, likes, exC))
	require.True(t, g1.Equal(g2))
}

func TestConjunctive(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	add(t, s, MakeTripleSet()...)
	g := graph.NewConjunctive(s)
	require.Equal(t, s.Identifier(), g.Identifier())
	require.Equal(t, 4, g.Size())
	require.True(t, g.Contains(tr(exC, age, term.NewTypedLiteral("40", xsd.Int))))

	require.NoError(t, g.AddTriple(exC, knows, exA))
	require.True(t, s.Contains(tr(exC, knows, exA), s.Identifier()))
	require.Equal(t, 5, g.Size())
	assert.Len(t, g.Contexts(nil), 3)
}

func TestConjunctiveBnodes(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	bn := term.BNode{ID: "shared"}
	for _, c := range []term.Term{ctx1, ctx2} {
		require.NoError(t, s.Add(tr(bn, knows, exA), c, false))
	}
	g := graph.NewConjunctive(s)
	require.Equal(t, 1, g.Size())
	require.Equal(t, map[term.BNode]int{bn: 1}, g.Bnodes())
	require.True(t, g.Equal(graph.NewConjunctive(s)))
}

func TestAggregate(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	add(t, s, MakeTripleSet()...)
	agg := graph.NewAggregate(graph.New(s, ctx1), graph.New(s, ctx2))
	require.Equal(t, 4, agg.Size())
	require.True(t, agg.Contains(tr(exB, knows, exC)))
	require.Len(t, Collect(t, agg.Triples(term.Triple{Subject: exA, Predicate: knows})), 2)
	assert.ElementsMatch(t, []term.Term{exA, exB, exC}, agg.Subjects())

	err := agg.Add(tr(exC, knows, exA))
	require.True(t, graph.IsReadOnly(err))
	var ce *graph.ContractError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "add", ce.Op)
	require.True(t, graph.IsReadOnly(agg.Remove(term.Wildcard)))
	require.Equal(t, 4, agg.Size())
}

func TestQuotedGraph(t *testing.T, gen testutil.DatabaseFunc) {
	s, closer := gen(t)
	defer closer()

	f := graph.NewQuoted(s, formula)
	require.NoError(t, f.AddTriple(exA, knows, exC))
	require.Equal(t, 1, f.Size())
	require.True(t, f.Contains(tr(exA, knows, exC)))
	require.False(t, s.Contains(tr(exA, knows, exC), nil))
	require.Equal(t, 0, graph.NewConjunctive(s).Size())
}
