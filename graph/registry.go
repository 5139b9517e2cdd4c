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
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Options are backend specific settings, usually decoded from the
// store.options section of the configuration.
type Options map[string]interface{}

var typeInt = reflect.TypeOf(int(0))

func (d Options) IntKey(key string, def int) (int, error) {
	if val, ok := d[key]; ok {
		if val != nil && reflect.TypeOf(val).ConvertibleTo(typeInt) {
			i := reflect.ValueOf(val).Convert(typeInt).Int()
			return int(i), nil
		}
		return def, fmt.Errorf("invalid %s parameter type from config: %T", key, val)
	}
	return def, nil
}

func (d Options) StringKey(key string, def string) (string, error) {
	if val, ok := d[key]; ok {
		if v, ok := val.(string); ok {
			return v, nil
		}
		return def, fmt.Errorf("invalid %s parameter type from config: %T", key, val)
	}
	return def, nil
}

func (d Options) BoolKey(key string, def bool) (bool, error) {
	if val, ok := d[key]; ok {
		if v, ok := val.(bool); ok {
			return v, nil
		}
		return def, fmt.Errorf("invalid %s parameter type from config: %T", key, val)
	}
	return def, nil
}

type NewStoreFunc func(Options) (Store, error)

type Registration struct {
	NewFunc      NewStoreFunc
	IsPersistent bool
}

var (
	regMu         sync.RWMutex
	storeRegistry = make(map[string]Registration)
)

// RegisterStore makes a backend available by name. It panics if the name
// is already taken, so it is meant to be called from init.
func RegisterStore(name string, r Registration) {
	if r.NewFunc == nil {
		panic("NewFunc must not be nil")
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, found := storeRegistry[name]; found {
		panic(fmt.Sprintf("already registered store %q", name))
	}
	storeRegistry[name] = r
}

// NewStore creates a store using a registered backend.
func NewStore(name string, opts Options) (Store, error) {
	regMu.RLock()
	r, registered := storeRegistry[name]
	regMu.RUnlock()
	if !registered {
		return nil, fmt.Errorf("%q: %w", name, ErrStoreNotRegistered)
	}
	return r.NewFunc(opts)
}

func IsRegistered(name string) bool {
	regMu.RLock()
	defer regMu.RUnlock()
	_, ok := storeRegistry[name]
	return ok
}

func IsPersistent(name string) bool {
	regMu.RLock()
	defer regMu.RUnlock()
	return storeRegistry[name].IsPersistent
}

// Stores lists the names of registered backends.
func Stores() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	t := make([]string, 0, len(storeRegistry))
	for n := range storeRegistry {
		t = append(t, n)
	}
	sort.Strings(t)
	return t
}
