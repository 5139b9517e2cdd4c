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

// Package config holds the settings shared by the rdfstore commands.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/graph/memstore"
)

const (
	KeyBackend    = "store.backend"
	KeyIdentifier = "store.identifier"
	KeySeed       = "store.seed"

	KeyLoadBatch  = "load.batch"
	KeyLoadStrict = "load.strict"
	KeyLoadFormat = "load.format"

	KeyHost     = "http.host"
	KeyPort     = "http.port"
	KeyReadOnly = "http.read_only"

	KeyQueryTimeout = "query.timeout"
)

const (
	// EnvPrefix is prepended to every key when read from the environment,
	// with dots replaced by underscores (ex: RDFSTORE_STORE_BACKEND).
	EnvPrefix = "RDFSTORE"
	// EnvConfig names a config file to use when none is given explicitly.
	EnvConfig = "RDFSTORE_CFG"
)

// Config defines the behavior of a store instance and its front ends.
type Config struct {
	Store StoreConfig `mapstructure:"store"`
	Load  LoadConfig  `mapstructure:"load"`
	HTTP  HTTPConfig  `mapstructure:"http"`
	Query QueryConfig `mapstructure:"query"`
}

type StoreConfig struct {
	Backend    string `mapstructure:"backend"`
	Identifier string `mapstructure:"identifier"`
	Seed       int64  `mapstructure:"seed"`
}

type LoadConfig struct {
	Batch  int    `mapstructure:"batch"`
	Strict bool   `mapstructure:"strict"`
	Format string `mapstructure:"format"`
}

type HTTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	ReadOnly bool   `mapstructure:"read_only"`
}

type QueryConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// SetDefaults registers the default value of every key. Keys without a
// default are not picked up from the environment by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackend, memstore.StoreType)
	v.SetDefault(KeyIdentifier, "")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyLoadBatch, 10000)
	v.SetDefault(KeyLoadStrict, false)
	v.SetDefault(KeyLoadFormat, "")
	v.SetDefault(KeyHost, "127.0.0.1")
	v.SetDefault(KeyPort, 64210)
	v.SetDefault(KeyReadOnly, false)
	v.SetDefault(KeyQueryTimeout, 30*time.Second)
}

// New returns a viper instance with defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Find returns the config file to read: file itself if set, otherwise the
// file named by $RDFSTORE_CFG. An empty result means defaults only.
func Find(file string) (string, error) {
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return "", fmt.Errorf("cannot find specified configuration file: %w", err)
		}
		return file, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		if _, err := os.Stat(env); err == nil {
			return env, nil
		}
	}
	return "", nil
}

// Read loads file into v, if there is one to load. The format is taken
// from the file extension.
func Read(v *viper.Viper, file string) error {
	file, err := Find(file)
	if err != nil || file == "" {
		return err
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read config file %q: %w", file, err)
	}
	return nil
}

// Load decodes the current settings of v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Store.Backend == "" {
		return fmt.Errorf("%s must be set", KeyBackend)
	}
	if c.Load.Batch <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyLoadBatch, c.Load.Batch)
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%s out of range: %d", KeyPort, c.HTTP.Port)
	}
	return nil
}

// Address is the host:port the HTTP server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

// StoreOptions are the backend options passed to graph.NewStore.
func (c *Config) StoreOptions() graph.Options {
	opts := graph.Options{}
	if c.Store.Identifier != "" {
		opts["identifier"] = c.Store.Identifier
	}
	if c.Store.Seed != 0 {
		opts["seed"] = c.Store.Seed
	}
	return opts
}

// OpenStore creates the configured backend.
func (c *Config) OpenStore() (graph.Store, error) {
	return graph.NewStore(c.Store.Backend, c.StoreOptions())
}
