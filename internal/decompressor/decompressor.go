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

// Package decompressor sniffs compressed input streams.
package decompressor

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"path/filepath"
)

// Kind is a detected compression format.
type Kind int

const (
	None Kind = iota
	Gzip
	Bzip2
)

func (k Kind) String() string {
	switch k {
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	}
	return "none"
}

var magic = []struct {
	kind  Kind
	bytes []byte
}{
	{Gzip, []byte("\x1f\x8b")},
	{Bzip2, []byte("BZh")},
}

// Detect reports the compression of the stream behind br without
// consuming any input.
func Detect(br *bufio.Reader) (Kind, error) {
	buf, err := br.Peek(3)
	if err != nil && !(err == io.EOF && len(buf) > 0) {
		return None, err
	}
	for _, m := range magic {
		if bytes.HasPrefix(buf, m.bytes) {
			return m.kind, nil
		}
	}
	return None, nil
}

// New detects the file type of an io.Reader between bzip2, gzip, or raw
// input and returns a reader of the decompressed data. An empty input
// returns io.EOF.
func New(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	kind, err := Detect(br)
	if err != nil {
		return nil, err
	}
	switch kind {
	case Gzip:
		return gzip.NewReader(br)
	case Bzip2:
		return bzip2.NewReader(br), nil
	}
	return br, nil
}

// NewWriter compresses output for file names ending in .gz. The returned
// closer flushes the compressor and must be called before closing w.
func NewWriter(w io.Writer, name string) (io.Writer, io.Closer) {
	if filepath.Ext(name) == ".gz" {
		gz := gzip.NewWriter(w)
		return gz, gz
	}
	return w, nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
