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

package memstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mAdds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_adds_total",
		Help: "Number of associations added to memory stores.",
	})
	mAddsNoop = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_adds_noop_total",
		Help: "Number of adds that found the triple already present.",
	})
	mRemoves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_removes_total",
		Help: "Number of associations removed from memory stores.",
	})
	mQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rdfstore_memstore_queries_total",
		Help: "Number of index walks, by index.",
	}, []string{"index"})

	mTermsInterned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_terms_interned_total",
		Help: "Number of term ids assigned.",
	})
	mTermsReleased = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_terms_released_total",
		Help: "Number of term ids released.",
	})
)
