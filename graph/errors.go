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

package graph

import (
	"errors"
	"fmt"

	"github.com/cayleygraph/rdfstore/term"
)

var (
	ErrStoreNotRegistered    = errors.New("store is not registered")
	ErrOperationNotSupported = errors.New("operation is not supported")
	// ErrReadOnly is returned by mutating calls on read-only views.
	ErrReadOnly = errors.New("graph is read-only")
)

// ContractError is returned when an operation is not allowed on a graph.
type ContractError struct {
	Op    string
	Graph term.Term
	Err   error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s on %v: %v", e.Op, term.StringOf(e.Graph), e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

// IsReadOnly reports whether err was caused by mutating a read-only view.
func IsReadOnly(err error) bool {
	return errors.Is(err, ErrReadOnly)
}
