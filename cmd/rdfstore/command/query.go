package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/internal"
	"github.com/cayleygraph/rdfstore/term"
)

func getContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		select {
		case <-ch:
		case <-ctx.Done():
		}
		signal.Stop(ch)
		cancel()
	}()
	return ctx, cancel
}

func registerQueryFlags(cmd *cobra.Command) {
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "elapsed time until an individual query times out")
	registerLoadFlags(cmd)
}

func NewQueryCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query <subject> <predicate> <object> [context]",
		Aliases: []string{"qu"},
		Short:   "Load quad files and print the statements matching a pattern.",
		Long: `Load quad files and print the statements matching a pattern.

Terms are written in N-Quads notation, "*" or "?" matches anything.
Without a context the pattern is matched against the union of all contexts.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := mustSetupProfile(cmd)
			defer mustFinishProfile(p)

			pattern, c, err := internal.ParseTriplePattern(args, term.NewGenerator().NewScope())
			if err != nil {
				return err
			}
			s, cfg, err := openForQueries(cmd, v)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, cancel := getContext()
			defer cancel()
			if cfg.Query.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, cfg.Query.Timeout)
				defer cancel()
			}
			res, err := graph.All(ctx, s.Triples(pattern, c))
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}
			typ, _ := cmd.Flags().GetString(flagDumpFormat)
			if typ == "" {
				typ = "nquads"
			}
			if limit > 0 && len(res) > limit {
				internal.SortResults(res)
				res = res[:limit]
			}
			for i := range res {
				if term.Equal(res[i].Context, s.Identifier()) {
					res[i].Context = nil
				}
			}
			_, err = internal.WriteResults(cmd.OutOrStdout(), typ, "", res)
			return err
		},
	}
	registerQueryFlags(cmd)
	cmd.Flags().IntP("limit", "n", 100, "limit a number of results")
	cmd.Flags().String(flagDumpFormat, "", `output format (`+formatNames(false)+`)`)
	return cmd
}

func NewContextsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contexts [<subject> <predicate> <object>]",
		Short: "Load quad files and list their contexts.",
		Long: `Load quad files and list their contexts, sorted.

With a pattern only the contexts holding a match are listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pattern *term.Triple
			switch len(args) {
			case 0:
			case 3:
				t, _, err := internal.ParseTriplePattern(args, term.NewGenerator().NewScope())
				if err != nil {
					return err
				}
				pattern = &t
			default:
				return errors.New("expected no arguments or a pattern of three terms")
			}
			s, _, err := openForQueries(cmd, v)
			if err != nil {
				return err
			}
			defer s.Close()
			for _, c := range s.Contexts(pattern) {
				n := s.Size(c)
				if pattern != nil {
					res, err := graph.All(context.Background(), s.Triples(*pattern, c))
					if err != nil {
						return err
					}
					n = len(res)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", c, n)
			}
			return nil
		},
	}
	registerLoadFlags(cmd)
	return cmd
}
