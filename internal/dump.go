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
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/internal/decompressor"
	"github.com/cayleygraph/rdfstore/term"
)

// Dump writes the triples of ctx, or of the union view if ctx is nil, to
// outFile ("-" for stdout). Output to a .gz file is compressed. Triples of
// the store default context are written without a label.
func Dump(s graph.Store, ctx term.Term, outFile, format string) (int, error) {
	var f *os.File
	if outFile == "-" {
		f = os.Stdout
	} else {
		var err error
		f, err = os.Create(outFile)
		if err != nil {
			return 0, fmt.Errorf("could not open file %q: %w", outFile, err)
		}
		defer f.Close()
		clog.Infof("dumping store to file %q", outFile)
	}
	w, zc := decompressor.NewWriter(f, outFile)
	res, err := graph.All(context.Background(), s.Triples(term.Wildcard, ctx))
	if err != nil {
		return 0, err
	}
	for i := range res {
		if term.Equal(res[i].Context, s.Identifier()) {
			res[i].Context = nil
		}
	}
	n, err := WriteResults(w, format, outFile, res)
	if err != nil {
		return n, err
	}
	if err = zc.Close(); err != nil {
		return n, err
	}
	if outFile != "-" {
		clog.Infof("%d entries were written", n)
	}
	return n, nil
}

// Write serializes the results of it in the named format, sorted by their
// N-Quads form so the output is stable. An empty format is detected from
// the extension of path.
func Write(w io.Writer, format, path string, it graph.Iterator) (int, error) {
	res, err := graph.All(context.Background(), it)
	if err != nil {
		return 0, err
	}
	return WriteResults(w, format, path, res)
}

// WriteResults is like Write for already collected results.
func WriteResults(w io.Writer, format, path string, res []graph.Result) (int, error) {
	f, err := FormatFor(format, path)
	if err != nil {
		return 0, err
	} else if f.Writer == nil {
		return 0, fmt.Errorf("encoding in %s format is not supported", f.Name)
	}
	SortResults(res)
	qw := f.Writer(w)
	for i, r := range res {
		if err := qw.WriteQuad(ToQuadResult(r)); err != nil {
			qw.Close()
			return i, err
		}
	}
	return len(res), qw.Close()
}

// SortResults orders results by their N-Quads form.
func SortResults(res []graph.Result) {
	sort.Slice(res, func(i, j int) bool { return res[i].String() < res[j].String() })
}
