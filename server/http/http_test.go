package rdfhttp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/graph/memstore"
	"github.com/cayleygraph/rdfstore/term"
)

const data = `<http://ex/a> <http://ex/knows> <http://ex/b> <http://ctx/1> .
<http://ex/b> <http://ex/knows> <http://ex/c> <http://ctx/1> .
<http://ex/a> <http://ex/name> "Alice"@en .
`

func newAPI(t *testing.T, conf Config) (*API, graph.Store) {
	s, err := memstore.New(memstore.WithIdentifier(term.IRI("http://ctx/default")))
	require.NoError(t, err)
	sync := graph.NewSynchronized(s)
	return New(sync, conf, LogRequest), sync
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestWriteAndRead(t *testing.T) {
	api, s := newAPI(t, Config{})

	rec := do(t, api, "POST", prefix+"/write", data)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var wr writeResponse
	decode(t, rec, &wr)
	require.Equal(t, 3, wr.Count)
	require.Equal(t, 3, s.Size(nil))

	rec = do(t, api, "GET", prefix+"/triples?s="+url.QueryEscape("<http://ex/a>"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "<http://ex/a> <http://ex/knows> <http://ex/b> <http://ctx/1> .")
	require.Contains(t, body, `"Alice"@en <http://ctx/default> .`)
	require.Equal(t, 2, strings.Count(body, "\n"))

	rec = do(t, api, "GET", prefix+"/triples?p=*&c="+url.QueryEscape("<http://ctx/1>"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, strings.Count(rec.Body.String(), "\n"))
}

func TestWriteIntoContext(t *testing.T) {
	api, s := newAPI(t, Config{})
	rec := do(t, api, "POST", prefix+"/write?c="+url.QueryEscape("<http://ctx/2>"),
		"<http://ex/x> <http://ex/p> <http://ex/y> .\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, 1, s.Size(term.IRI("http://ctx/2")))

	rec = do(t, api, "POST", prefix+"/delete?c="+url.QueryEscape("<http://ctx/2>"),
		"<http://ex/x> <http://ex/p> <http://ex/y> .\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, 0, s.Size(term.IRI("http://ctx/2")))
}

func TestContextsAndSize(t *testing.T) {
	api, _ := newAPI(t, Config{})
	require.Equal(t, http.StatusOK, do(t, api, "POST", prefix+"/write", data).Code)

	var cr contextsResponse
	decode(t, do(t, api, "GET", prefix+"/contexts", ""), &cr)
	require.Equal(t, []string{"<http://ctx/1>", "<http://ctx/default>"}, cr.Contexts)

	decode(t, do(t, api, "GET", prefix+"/contexts?p="+url.QueryEscape("<http://ex/name>"), ""), &cr)
	require.Equal(t, []string{"<http://ctx/default>"}, cr.Contexts)

	var sr sizeResponse
	decode(t, do(t, api, "GET", prefix+"/size", ""), &sr)
	require.Equal(t, 3, sr.Size)
	decode(t, do(t, api, "GET", prefix+"/size?c="+url.QueryEscape("<http://ctx/1>"), ""), &sr)
	require.Equal(t, 2, sr.Size)
	require.Equal(t, "<http://ctx/1>", sr.Context)
}

func TestNamespaces(t *testing.T) {
	api, s := newAPI(t, Config{})
	var ns []graph.Namespace
	decode(t, do(t, api, "GET", prefix+"/namespaces", ""), &ns)
	require.Empty(t, ns)

	n, err := graph.NewNamespace("http://ex/", "ex")
	require.NoError(t, err)
	s.Bind(n)
	decode(t, do(t, api, "GET", prefix+"/namespaces", ""), &ns)
	require.Equal(t, []graph.Namespace{n}, ns)
}

func TestReadOnly(t *testing.T) {
	api, s := newAPI(t, Config{ReadOnly: true})
	for _, path := range []string{"/write", "/delete"} {
		rec := do(t, api, "POST", prefix+path, data)
		require.Equal(t, http.StatusForbidden, rec.Code)
		var e struct{ Error string }
		decode(t, rec, &e)
		require.Equal(t, "Database is read-only.", e.Error)
	}
	require.Equal(t, 0, s.Size(nil))
	require.Equal(t, http.StatusOK, do(t, api, "GET", prefix+"/triples", "").Code)
}

func TestBadRequests(t *testing.T) {
	api, _ := newAPI(t, Config{Strict: true})
	for _, target := range []string{
		prefix + "/triples?s=" + url.QueryEscape("<http://ex/a"),
		prefix + "/triples?format=nope",
		prefix + "/size?c=" + url.QueryEscape(`"literal`),
	} {
		rec := do(t, api, "GET", target, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
		require.Equal(t, contentTypeJSON, rec.Header().Get(hdrContentType))
	}
	rec := do(t, api, "POST", prefix+"/write", "<relative> <http://ex/p> <http://ex/o> .\n")
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestLimit(t *testing.T) {
	api, _ := newAPI(t, Config{Limit: 1})
	require.Equal(t, http.StatusOK, do(t, api, "POST", prefix+"/write", data).Code)
	rec := do(t, api, "GET", prefix+"/triples", "")
	require.Equal(t, 1, strings.Count(rec.Body.String(), "\n"))
}

func TestHealthAndMetrics(t *testing.T) {
	api, _ := newAPI(t, Config{})
	require.Equal(t, http.StatusNoContent, do(t, api, "GET", "/health", "").Code)
	do(t, api, "POST", prefix+"/write", data)
	rec := do(t, api, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "rdfstore_http_requests_total")
	require.Contains(t, rec.Body.String(), "rdfstore_memstore_adds_total")
}
