package command

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/internal/repl"
)

func NewReplCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Load quad files and drop into an interactive shell.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := mustSetupProfile(cmd)
			defer mustFinishProfile(p)

			s, cfg, err := openForQueries(cmd, v)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, cancel := getContext()
			defer cancel()
			return repl.Repl(ctx, s, cfg.Query.Timeout)
		},
	}
	registerQueryFlags(cmd)
	return cmd
}
