package rdfhttp

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/cayleygraph/quad"
	"github.com/julienschmidt/httprouter"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/internal"
	"github.com/cayleygraph/rdfstore/term"
)

// writeResponse represents the response received for a successful write
type writeResponse struct {
	Result string `json:"result"`
	Count  int    `json:"count"`
}

type contextsResponse struct {
	Contexts []string `json:"contexts"`
}

type sizeResponse struct {
	Context string `json:"context,omitempty"`
	Size    int    `json:"size"`
}

func (api *API) context(r *http.Request) (context.Context, func()) {
	if api.conf.Timeout > 0 {
		return context.WithTimeout(r.Context(), api.conf.Timeout)
	}
	return context.WithCancel(r.Context())
}

// contextParam parses the c query parameter. A missing parameter is nil.
func contextParam(r *http.Request, scope *term.Scope) (term.Term, error) {
	c := r.URL.Query().Get("c")
	if internal.IsWildcard(c) {
		return nil, nil
	}
	ts, err := internal.ParsePattern([]string{"", "", "", c}, scope)
	if err != nil {
		return nil, err
	}
	return ts[3], nil
}

// requestFormat picks the input format from the format parameter, then
// from the content type of the body.
func requestFormat(r *http.Request) (string, error) {
	if name := r.URL.Query().Get("format"); name != "" {
		return name, nil
	}
	ct := r.Header.Get(hdrContentType)
	if ct == "" {
		return defaultFormat, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", err
	}
	if f := quad.FormatByMime(mt); f != nil {
		return f.Name, nil
	}
	return defaultFormat, nil
}

type bodyFunc func(s graph.Store, ctx term.Term, r io.Reader, path string, opts internal.LoadOptions) (int, error)

func (api *API) serveBody(w http.ResponseWriter, r *http.Request, verb string, apply bodyFunc) {
	defer r.Body.Close()
	scope := term.NewGenerator().NewScope()
	c, err := contextParam(r, scope)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	name, err := requestFormat(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	n, err := apply(api.s, c, r.Body, "", internal.LoadOptions{
		Format: name,
		Batch:  api.conf.Batch,
		Strict: api.conf.Strict,
	})
	if err != nil {
		jsonResponse(w, errorCode(err), err)
		return
	}
	writeJSON(w, writeResponse{
		Result: fmt.Sprintf("Successfully %s %d triples.", verb, n),
		Count:  n,
	})
}

// ServeWrite adds the statements of the request body to the store.
func (api *API) ServeWrite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	api.serveBody(w, r, "wrote", internal.LoadReader)
}

// ServeDelete removes the statements of the request body from the store.
func (api *API) ServeDelete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	api.serveBody(w, r, "deleted", internal.RemoveReader)
}

// ServeTriples writes the triples matching the s, p, o and c parameters.
func (api *API) ServeTriples(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	scope := term.NewGenerator().NewScope()
	pattern, c, err := internal.ParseTriplePattern([]string{q.Get("s"), q.Get("p"), q.Get("o"), q.Get("c")}, scope)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	name := q.Get("format")
	if name == "" {
		name = defaultFormat
	}
	format, err := internal.FormatFor(name, "")
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	} else if format.Writer == nil {
		jsonResponse(w, http.StatusBadRequest, fmt.Errorf("encoding in %s format is not supported", format.Name))
		return
	}

	ctx, cancel := api.context(r)
	defer cancel()
	res, err := graph.All(ctx, api.s.Triples(pattern, c))
	if err != nil {
		jsonResponse(w, errorCode(err), err)
		return
	}
	if api.conf.Limit > 0 && len(res) > api.conf.Limit {
		internal.SortResults(res)
		res = res[:api.conf.Limit]
	}
	if len(format.Mime) != 0 {
		w.Header().Set(hdrContentType, format.Mime[0])
	}
	if _, err = internal.WriteResults(w, format.Name, "", res); err != nil {
		// headers are already sent
		clog.Errorf("read triples error: %v", err)
	}
}

// ServeContexts lists the contexts holding a match for the s, p and o
// parameters, or every context if none is given.
func (api *API) ServeContexts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	var pattern *term.Triple
	if fields := []string{q.Get("s"), q.Get("p"), q.Get("o")}; !allWildcards(fields) {
		t, _, err := internal.ParseTriplePattern(fields, term.NewGenerator().NewScope())
		if err != nil {
			jsonResponse(w, http.StatusBadRequest, err)
			return
		}
		pattern = &t
	}
	out := contextsResponse{Contexts: []string{}}
	for _, c := range api.s.Contexts(pattern) {
		out.Contexts = append(out.Contexts, c.String())
	}
	writeJSON(w, out)
}

func allWildcards(fields []string) bool {
	for _, f := range fields {
		if !internal.IsWildcard(f) {
			return false
		}
	}
	return true
}

// ServeSize reports the number of triples in the c parameter, or in the
// union of all contexts.
func (api *API) ServeSize(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c, err := contextParam(r, term.NewGenerator().NewScope())
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, sizeResponse{Context: term.StringOf(c), Size: api.s.Size(c)})
}

// ServeNamespaces lists the namespace bindings of the store.
func (api *API) ServeNamespaces(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ns := api.s.Namespaces()
	if ns == nil {
		ns = []graph.Namespace{}
	}
	writeJSON(w, ns)
}
