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

package decompressor

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const payload = "<http://ex/a> <http://ex/b> <http://ex/c> .\n"

func gzipped(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w, c := NewWriter(&buf, "dump.nq.gz")
	_, err := io.WriteString(w, s)
	require.NoError(t, err)
	require.NoError(t, c.Close())
	return buf.Bytes()
}

// bzip2 "cayley data\n"
var bzipped = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xb5, 0x4b, 0xe3, 0xc4, 0x00, 0x00,
	0x02, 0xd1, 0x80, 0x00, 0x10, 0x40, 0x00, 0x2e, 0x04, 0x04, 0x20, 0x20, 0x00, 0x31, 0x06, 0x4c,
	0x41, 0x4c, 0x1e, 0xa7, 0xa9, 0x2a, 0x18, 0x26, 0xb1, 0xc2, 0xee, 0x48, 0xa7, 0x0a, 0x12, 0x16,
	0xa9, 0x7c, 0x78, 0x80,
}

func TestDecompressor(t *testing.T) {
	for _, c := range []struct {
		name  string
		input []byte
		kind  Kind
		exp   string
	}{
		{name: "text", input: []byte(payload), kind: None, exp: payload},
		{name: "short text", input: []byte("a\n"), kind: None, exp: "a\n"},
		{name: "gzip", input: gzipped(t, payload), kind: Gzip, exp: payload},
		{name: "bzip2", input: bzipped, kind: Bzip2, exp: "cayley data\n"},
	} {
		t.Run(c.name, func(t *testing.T) {
			kind, err := Detect(bufio.NewReader(bytes.NewReader(c.input)))
			require.NoError(t, err)
			require.Equal(t, c.kind, kind)

			r, err := New(bytes.NewReader(c.input))
			require.NoError(t, err)
			got, err := ioutil.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, c.exp, string(got))
		})
	}
}

func TestDecompressorEmpty(t *testing.T) {
	_, err := New(strings.NewReader(""))
	require.Equal(t, io.EOF, err)
}

func TestDecompressorCorrupt(t *testing.T) {
	_, err := New(bytes.NewReader([]byte{0x1f, 0x8b, 0x00}))
	require.Error(t, err)
}

func TestNewWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	w, c := NewWriter(&buf, "dump.nq")
	_, err := io.WriteString(w, payload)
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.Equal(t, payload, buf.String())
}
