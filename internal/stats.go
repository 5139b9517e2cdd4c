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

package internal

import (
	"io"

	"github.com/cayleygraph/quad"
	boom "github.com/tylertreat/BoomFilters"
)

// Stats describes an input stream. Statements is exact; the distinct
// counts are HyperLogLog estimates and Duplicates is a bloom filter
// estimate, so both may be slightly off on large inputs.
type Stats struct {
	Statements int    `json:"statements"`
	Duplicates int    `json:"duplicates"`
	Subjects   uint64 `json:"subjects"`
	Predicates uint64 `json:"predicates"`
	Objects    uint64 `json:"objects"`
	Contexts   uint64 `json:"contexts"`
}

// DefaultStatsError is the relative error of the distinct count estimates.
const DefaultStatsError = 0.01

// Collect reads r to the end and estimates its statistics. Blank node
// labels are compared as written, as they are scoped to one input.
func Collect(r quad.Reader, errRate float64) (*Stats, error) {
	if errRate <= 0 {
		errRate = DefaultStatsError
	}
	var hll [4]*boom.HyperLogLog
	for i := range hll {
		h, err := boom.NewDefaultHyperLogLog(errRate)
		if err != nil {
			return nil, err
		}
		hll[i] = h
	}
	seen := boom.NewBloomFilter(1000*1000, errRate)

	st := &Stats{}
	for {
		q, err := r.ReadQuad()
		if err == io.EOF {
			break
		} else if err != nil {
			return st, err
		}
		st.Statements++
		key := make([]byte, 0, 128)
		for i, v := range []quad.Value{q.Subject, q.Predicate, q.Object, q.Label} {
			if v != nil {
				s := v.String()
				hll[i].Add([]byte(s))
				key = append(key, s...)
			}
			key = append(key, 0)
		}
		if seen.TestAndAdd(key) {
			st.Duplicates++
		}
	}
	st.Subjects = hll[0].Count()
	st.Predicates = hll[1].Count()
	st.Objects = hll[2].Count()
	st.Contexts = hll[3].Count()
	return st, nil
}
