package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/internal"
	"github.com/cayleygraph/rdfstore/internal/config"
)

// loadGraph reads path into a new store.
func loadGraph(cfg *config.Config, path string) (graph.Store, error) {
	s, err := cfg.OpenStore()
	if err != nil {
		return nil, err
	}
	if err = loadFiles(s, cfg, []string{path}); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func NewMergeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Merge quad files into one graph, keeping their blank nodes apart.",
		Long: `Merge quad files into one graph, keeping their blank nodes apart.

Blank nodes of every input are renamed, so equal labels in different files
name different nodes. The result is written to the file given with -o.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one quad file must be specified")
			}
			dump, _ := cmd.Flags().GetString(flagDump)
			if dump == "" {
				return errors.New("an output file must be specified")
			}
			dumpf, _ := cmd.Flags().GetString(flagDumpFormat)
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			into, _ := cmd.Flags().GetString("into")
			c, err := parseContext(into)
			if err != nil {
				return err
			}

			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()
			if c == nil {
				c = s.Identifier()
			}
			target := graph.New(s, c)
			for _, path := range args {
				src, err := loadGraph(cfg, path)
				if err != nil {
					return err
				}
				err = target.Merge(graph.NewConjunctive(src))
				src.Close()
				if err != nil {
					return fmt.Errorf("cannot merge %q: %w", path, err)
				}
			}
			clog.Infof("merged %d files, %d statements", len(args), target.Size())
			_, err = internal.Dump(s, c, dump, dumpf)
			return err
		},
	}
	registerParseFlags(cmd)
	registerDumpFlags(cmd)
	cmd.Flags().String("into", "", "context to merge into instead of the default one")
	return cmd
}

func NewEqualCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equal <file> <file>",
		Short: "Check whether two quad files hold the same graph.",
		Long: `Check whether two quad files hold the same graph.

The check compares sizes, blank node usage and every statement without a
blank node. It can report graphs as equal that only differ in how
interchangeable blank nodes are connected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			a, err := loadGraph(cfg, args[0])
			if err != nil {
				return err
			}
			defer a.Close()
			b, err := loadGraph(cfg, args[1])
			if err != nil {
				return err
			}
			defer b.Close()

			if !graph.NewConjunctive(a).Equal(graph.NewConjunctive(b)) {
				fmt.Fprintln(cmd.OutOrStdout(), "not equal")
				return fmt.Errorf("%q and %q differ", args[0], args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "equal")
			return nil
		},
	}
	registerParseFlags(cmd)
	return cmd
}
