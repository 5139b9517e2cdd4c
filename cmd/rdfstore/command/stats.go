package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/rdfstore/internal"
)

func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>...",
		Short: "Estimate the number of distinct terms in quad files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one quad file must be specified")
			}
			typ, _ := cmd.Flags().GetString(flagLoadFormat)
			rate, _ := cmd.Flags().GetFloat64("error")
			asJSON, _ := cmd.Flags().GetBool("json")

			out := make(map[string]*internal.Stats, len(args))
			for _, path := range args {
				qr, err := internal.OpenReader(path, typ)
				if err != nil {
					return err
				}
				st, err := internal.Collect(qr, rate)
				qr.Close()
				if err != nil {
					return fmt.Errorf("cannot read %q: %w", path, err)
				}
				out[path] = st
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "file\tstatements\tduplicates\tsubjects\tpredicates\tobjects\tcontexts")
			for _, path := range args {
				st := out[path]
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n", path,
					st.Statements, st.Duplicates, st.Subjects, st.Predicates, st.Objects, st.Contexts)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String(flagLoadFormat, "", `quad file format to use instead of auto-detection (`+formatNames(true)+`)`)
	cmd.Flags().Float64("error", internal.DefaultStatsError, "relative error of the distinct count estimates")
	cmd.Flags().Bool("json", false, "print the statistics as JSON")
	return cmd
}
