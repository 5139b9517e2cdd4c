package term

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/voc/rdf"
	"github.com/cayleygraph/rdfstore/voc/xsd"
)

func TestLiteralString(t *testing.T) {
	require.Equal(t, `"a"`, NewLiteral("a").String())
	require.Equal(t, `"a"`, Literal{Lexical: "a"}.String())
	require.Equal(t, `"5"^^<`+xsd.Int+`>`, NewTypedLiteral("5", xsd.Int).String())
	l, err := NewLangLiteral("chat", "FR")
	require.NoError(t, err)
	require.Equal(t, `"chat"@fr`, l.String())
	require.Equal(t, IRI(rdf.LangString), l.Datatype)
	require.Equal(t, `"a\"b\nc"`, NewLiteral("a\"b\nc").String())
}

func TestNewLangLiteralInvalid(t *testing.T) {
	for _, lang := range []string{"", "1en", "en--us", "toolongtag"} {
		_, err := NewLangLiteral("x", lang)
		require.Error(t, err, "%q", lang)
	}
	_, err := NewLangLiteral("x", "en-US-1994")
	require.NoError(t, err)
}

var literalEqualCases = []struct {
	a, b  Literal
	equal bool
}{
	{a: NewLiteral("a"), b: NewLiteral("a"), equal: true},
	{a: NewLiteral("a"), b: Literal{Lexical: "a"}, equal: true},
	{a: NewLiteral("a"), b: NewLiteral("b"), equal: false},
	{a: NewTypedLiteral("5", xsd.Int), b: NewTypedLiteral("5", xsd.Int), equal: true},
	{a: NewTypedLiteral("5", xsd.Int), b: NewTypedLiteral("05", xsd.Int), equal: true},
	{a: NewTypedLiteral("+5", xsd.Integer), b: NewTypedLiteral("5", xsd.Integer), equal: true},
	{a: NewTypedLiteral("5", xsd.Int), b: NewTypedLiteral("5", xsd.Integer), equal: false},
	{a: NewTypedLiteral("5", xsd.Int), b: NewLiteral("5"), equal: false},
	{a: NewTypedLiteral("five", xsd.Int), b: NewTypedLiteral("five", xsd.Int), equal: true},
	{a: NewTypedLiteral("1.50", xsd.Decimal), b: NewTypedLiteral("1.5", xsd.Decimal), equal: true},
	{a: NewTypedLiteral("1e2", xsd.Double), b: NewTypedLiteral("100", xsd.Double), equal: true},
	{a: NewTypedLiteral("1", xsd.Boolean), b: NewTypedLiteral("true", xsd.Boolean), equal: true},
	{a: NewTypedLiteral("0", xsd.Boolean), b: NewTypedLiteral("true", xsd.Boolean), equal: false},
	{
		a:     NewTypedLiteral(`<a x="1" y="2"><b/></a>`, rdf.XMLLiteral),
		b:     NewTypedLiteral("<a y=\"2\" x=\"1\">\n  <b></b>\n</a>", rdf.XMLLiteral),
		equal: true,
	},
	{
		a:     NewTypedLiteral(`<a>1</a>`, rdf.XMLLiteral),
		b:     NewTypedLiteral(`<a>2</a>`, rdf.XMLLiteral),
		equal: false,
	},
}

func TestLiteralEqual(t *testing.T) {
	for i, c := range literalEqualCases {
		require.Equal(t, c.equal, c.a.Equal(c.b), "case %d: %v vs %v", i, c.a, c.b)
		require.Equal(t, c.equal, c.b.Equal(c.a), "case %d (reversed)", i)
	}
}

func TestLangLiteralEqual(t *testing.T) {
	en, _ := NewLangLiteral("cat", "en")
	en2 := Literal{Lexical: "cat", Language: "EN"}
	de, _ := NewLangLiteral("cat", "de")
	require.True(t, en.Equal(en2))
	require.False(t, en.Equal(de))
	require.False(t, en.Equal(NewLiteral("cat")))
}

func TestRegisterComparator(t *testing.T) {
	const dt = IRI("http://example.com/caseless")
	RegisterComparator(dt, func(a, b Literal) bool {
		return len(a.Lexical) == len(b.Lexical)
	})
	require.True(t, NewTypedLiteral("abc", dt).Equal(NewTypedLiteral("xyz", dt)))
	require.False(t, NewTypedLiteral("abc", dt).Equal(NewTypedLiteral("xy", dt)))
}
