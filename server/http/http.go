// Copyright 2017 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rdfhttp serves a store over HTTP.
package rdfhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/term"
)

const (
	prefix       = "/api/v1"
	defaultBatch = 10000
	defaultLimit = 1000
)

const (
	defaultFormat   = "nquads"
	hdrContentType  = "Content-Type"
	contentTypeJSON = "application/json"
)

// Config controls the behavior of the API.
type Config struct {
	// ReadOnly rejects writes and deletes with 403.
	ReadOnly bool
	// Batch is the number of statements applied at once by writes.
	Batch int
	// Strict rejects a whole write on the first invalid statement.
	Strict bool
	// Timeout bounds a single request; zero means no limit.
	Timeout time.Duration
	// Limit caps the number of triples returned by a lookup.
	Limit int
}

// API serves a store. The store must be safe for concurrent use; see
// graph.NewSynchronized.
type API struct {
	s       graph.Store
	conf    Config
	handler http.Handler
}

// HandlerWrapper decorates the router, see LogRequest.
type HandlerWrapper func(http.Handler) http.Handler

// New creates an API for s with routes on a fresh router.
func New(s graph.Store, conf Config, wrappers ...HandlerWrapper) *API {
	if conf.Batch <= 0 {
		conf.Batch = defaultBatch
	}
	if conf.Limit == 0 {
		conf.Limit = defaultLimit
	}
	api := &API{s: s, conf: conf}
	r := httprouter.New()
	api.RegisterOn(r)
	var handler http.Handler = r
	for _, wrapper := range wrappers {
		handler = wrapper(handler)
	}
	api.handler = handler
	return api
}

func (api *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.handler.ServeHTTP(w, r)
}

// RegisterOn adds every route of the API to r.
func (api *API) RegisterOn(r *httprouter.Router) {
	r.POST(prefix+"/write", api.writable(api.ServeWrite))
	r.POST(prefix+"/delete", api.writable(api.ServeDelete))
	r.GET(prefix+"/triples", api.ServeTriples)
	r.GET(prefix+"/contexts", api.ServeContexts)
	r.GET(prefix+"/size", api.ServeSize)
	r.GET(prefix+"/namespaces", api.ServeNamespaces)
	r.GET("/health", HandleHealth)
	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())
}

func (api *API) writable(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if api.conf.ReadOnly {
			jsonResponse(w, http.StatusForbidden, "Database is read-only.")
			return
		}
		h(w, r, ps)
	}
}

// HandleHealth reports that the server is up.
func HandleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusNoContent)
}

func jsonResponse(w http.ResponseWriter, code int, err interface{}) {
	w.Header().Set(hdrContentType, contentTypeJSON)
	w.WriteHeader(code)
	w.Write([]byte(`{"error": `))
	var s string
	switch err := err.(type) {
	case string:
		s = err
	case error:
		s = err.Error()
	default:
		s = fmt.Sprint(err)
	}
	data, _ := json.Marshal(s)
	w.Write(data)
	w.Write([]byte(`}`))
}

// errorCode maps store errors to a status code.
func errorCode(err error) int {
	switch {
	case errors.Is(err, term.ErrInvalidTerm), errors.Is(err, term.ErrPattern):
		return http.StatusBadRequest
	case graph.IsReadOnly(err):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set(hdrContentType, contentTypeJSON)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		clog.Errorf("cannot encode response: %v", err)
	}
}
