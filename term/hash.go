// Copyright 2026 The Cayley Authors. All rights reserved.
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

package term

import (
	"crypto/sha1"
	"encoding/hex"
	"hash"
	"sync"
)

// HashSize is the size of a term content hash.
const HashSize = sha1.Size

// Hash is the content hash of a term. Structurally identical terms have
// the same hash; it is used as the interning key by stores.
type Hash [HashSize]byte

var hashPool = sync.Pool{
	New: func() interface{} { return sha1.New() },
}

// HashOf calculates the content hash of t. The zero Hash is returned for nil.
func HashOf(t Term) (out Hash) {
	if t == nil {
		return
	}
	h := hashPool.Get().(hash.Hash)
	h.Reset()
	defer hashPool.Put(h)
	h.Write([]byte{byte(t.Kind())})
	h.Write([]byte(t.String()))
	h.Sum(out[:0])
	return
}

// Valid reports whether the hash is not the zero value.
func (h Hash) Valid() bool { return h != Hash{} }

func (h Hash) String() string {
	if !h.Valid() {
		return ""
	}
	return hex.EncodeToString(h[:])
}
