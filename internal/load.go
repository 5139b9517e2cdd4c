// Copyright 2014 The Cayley Authors. All rights reserved.
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

package internal

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/internal/decompressor"
	"github.com/cayleygraph/rdfstore/term"
)

// Sink receives parsed triples instead of a store. A nil context means the
// statement had no label.
type Sink func(t term.Triple, ctx term.Term) error

// Read converts every quad of r and passes it to sink. Statements that fail
// to convert or that sink rejects are logged and skipped, unless strict is
// set, in which case the first such error aborts the read. Errors from r
// itself are always returned. It returns the number of accepted statements.
func Read(r quad.Reader, scope *term.Scope, sink Sink, strict bool) (int, error) {
	n := 0
	for {
		q, err := r.ReadQuad()
		if err == io.EOF {
			return n, nil
		} else if err != nil {
			return n, err
		}
		ok, err := deliver(q, scope, sink, strict)
		if err != nil {
			return n, err
		} else if ok {
			n++
		}
	}
}

func deliver(q quad.Quad, scope *term.Scope, sink Sink, strict bool) (bool, error) {
	t, ctx, err := FromQuadTriple(q, scope)
	if err == nil {
		err = sink(t, ctx)
	}
	if err == nil {
		return true, nil
	} else if strict {
		return false, err
	}
	clog.Warningf("skipping statement: %v", err)
	return false, nil
}

// LoadOptions control how an input is loaded into a store.
type LoadOptions struct {
	// Format name; detected from the file extension when empty.
	Format string
	// Batch is the number of statements read between progress reports.
	Batch int
	// Strict aborts the load on the first invalid statement.
	Strict bool
	// Generator names the blank nodes of the input.
	Generator *term.Generator
}

// Load reads path and adds its statements to s. Unlabelled statements go
// to ctx, or to the store default context if ctx is nil. Compressed input
// is detected automatically; see Open for the accepted paths.
func Load(s graph.Store, ctx term.Term, path string, opts LoadOptions) (int, error) {
	if path == "" {
		return 0, nil
	}
	rc, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return LoadReader(s, ctx, rc, path, opts)
}

// LoadReader is like Load for an input that is already open. The path is
// only used to detect the format and in error messages.
func LoadReader(s graph.Store, ctx term.Term, r io.Reader, path string, opts LoadOptions) (int, error) {
	w := &storeWriter{s: s, ctx: ctx, strict: opts.Strict, op: storeAdd}
	return copyTo(w, r, path, opts)
}

// RemoveReader parses r and removes every statement it contains from s.
// Unlabelled statements are removed from ctx, or from the store default
// context if ctx is nil.
func RemoveReader(s graph.Store, ctx term.Term, r io.Reader, path string, opts LoadOptions) (int, error) {
	if ctx == nil {
		ctx = s.Identifier()
	}
	w := &storeWriter{s: s, ctx: ctx, strict: opts.Strict, op: storeRemove}
	return copyTo(w, r, path, opts)
}

func copyTo(w *storeWriter, r io.Reader, path string, opts LoadOptions) (int, error) {
	r, err := decompressor.New(r)
	if err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}
	qr, err := NewReader(r, opts.Format, path)
	if err != nil {
		return 0, err
	}
	defer qr.Close()

	gen := opts.Generator
	if gen == nil {
		gen = term.DefaultGenerator()
	}
	w.scope = gen.NewScope()
	batch := opts.Batch
	if batch <= 0 {
		batch = quad.DefaultBatch
	}
	_, err = quad.CopyBatch(&batchLogger{BatchWriter: w}, qr, batch)
	if err != nil {
		return w.n, fmt.Errorf("failed to load %q: %w", path, err)
	}
	return w.n, nil
}

// Open opens a local file, an http(s) URL or stdin ("-").
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	u, err := url.Parse(path)
	if err != nil || u.Scheme == "file" || u.Scheme == "" {
		// Don't alter relative URL path or non-URL path parameter.
		if err == nil && u.Scheme != "" {
			// Recovery heuristic for mistyping "file://path/to/file".
			path = filepath.Join(u.Host, u.Path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open file %q: %w", path, err)
		}
		return f, nil
	}
	res, err := http.Get(path)
	if err != nil {
		return nil, fmt.Errorf("could not get resource <%s>: %w", u, err)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("could not get resource <%s>: %s", u, res.Status)
	}
	return res.Body, nil
}

// OpenReader opens path (see Open) and returns a parser for its content,
// decompressing it if needed. Closing the reader closes the input.
func OpenReader(path, format string) (quad.ReadCloser, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	r, err := decompressor.New(rc)
	if err == io.EOF {
		r = strings.NewReader("")
	} else if err != nil {
		rc.Close()
		return nil, err
	}
	qr, err := NewReader(r, format, path)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return &fileReader{ReadCloser: qr, f: rc}, nil
}

type fileReader struct {
	quad.ReadCloser
	f io.Closer
}

func (r *fileReader) Close() error {
	err := r.ReadCloser.Close()
	if err2 := r.f.Close(); err == nil {
		err = err2
	}
	return err
}

// NewReader returns a parser for the named format. An empty format is
// detected from the extension of path, falling back to N-Quads.
func NewReader(r io.Reader, format, path string) (quad.ReadCloser, error) {
	f, err := FormatFor(format, path)
	if err != nil {
		return nil, err
	}
	if f.Name == "nquads" {
		return nquads.NewReader(r, false), nil
	}
	if f.Reader == nil {
		return nil, fmt.Errorf("decoding of %q is not supported", f.Name)
	}
	return f.Reader(r), nil
}

// FormatFor resolves a format name, accepting a few aliases of nquads.
// An empty or "auto" name is detected from the extension of path, ignoring
// a compression suffix, and falls back to nquads.
func FormatFor(name, path string) (*quad.Format, error) {
	switch name {
	case "", "auto":
		name = ""
	case "nquad", "quad", "nq":
		name = "nquads"
	default:
		if f := quad.FormatByName(name); f != nil {
			return f, nil
		}
		return nil, fmt.Errorf("unknown quad format %q", name)
	}
	ext := filepath.Ext(strings.TrimSuffix(strings.TrimSuffix(path, ".gz"), ".bz2"))
	if name == "" && ext != "" {
		if f := quad.FormatByExt(ext); f != nil {
			return f, nil
		}
	}
	return quad.FormatByName("nquads"), nil
}

func storeAdd(s graph.Store, t term.Triple, ctx term.Term) error    { return s.Add(t, ctx, false) }
func storeRemove(s graph.Store, t term.Triple, ctx term.Term) error { return s.Remove(t, ctx) }

// storeWriter applies converted quads to a store.
type storeWriter struct {
	s      graph.Store
	ctx    term.Term
	scope  *term.Scope
	strict bool
	op     func(s graph.Store, t term.Triple, ctx term.Term) error
	n      int
}

func (w *storeWriter) WriteQuads(quads []quad.Quad) (int, error) {
	for i, q := range quads {
		ok, err := deliver(q, w.scope, w.apply, w.strict)
		if err != nil {
			return i, err
		} else if ok {
			w.n++
		}
	}
	return len(quads), nil
}

func (w *storeWriter) apply(t term.Triple, ctx term.Term) error {
	if ctx == nil {
		ctx = w.ctx
	}
	return w.op(w.s, t, ctx)
}

type batchLogger struct {
	cnt int
	quad.BatchWriter
}

func (w *batchLogger) WriteQuads(quads []quad.Quad) (int, error) {
	n, err := w.BatchWriter.WriteQuads(quads)
	w.cnt += n
	if clog.V(2) {
		clog.Infof("Wrote %d quads.", w.cnt)
	}
	return n, err
}
