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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/clog"
	_ "github.com/cayleygraph/rdfstore/clog/glog"
	"github.com/cayleygraph/rdfstore/cmd/rdfstore/command"
	"github.com/cayleygraph/rdfstore/graph/memstore"
	"github.com/cayleygraph/rdfstore/internal/config"
	"github.com/cayleygraph/rdfstore/version"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "rdfstore",
		Short: "rdfstore is an in-memory RDF triple store.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("config")
			if err := config.Read(v, file); err != nil {
				return err
			}
			if used := v.ConfigFileUsed(); used != "" {
				clog.Infof("using config file %q", used)
			}
			return nil
		},
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "path to an explicit configuration file (default $"+config.EnvConfig+")")
	pf.StringP("backend", "d", memstore.StoreType, "store backend")
	pf.String("identifier", "", "IRI of the default context")
	pf.Int64("seed", 0, "seed of the term id permutation, zero picks one")
	pf.String("cpuprofile", "", "path to output CPU profile")
	pf.String("memprofile", "", "path to output memory profile")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Prints the version of rdfstore.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
	root.AddCommand(
		versionCmd,
		command.NewQueryCmd(v),
		command.NewContextsCmd(v),
		command.NewReplCmd(v),
		command.NewHttpCmd(v),
		command.NewHealthCmd(),
		command.NewConvertCmd(),
		command.NewStatsCmd(),
		command.NewMergeCmd(v),
		command.NewEqualCmd(v),
	)
	return root
}

func main() {
	// glog writes to files by default.
	flag.Set("logtostderr", "true")
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	root := newRootCmd(config.New())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
