package command

import (
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	rdfhttp "github.com/cayleygraph/rdfstore/server/http"
)

func NewHttpCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve an HTTP endpoint on the given host and port.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := mustSetupProfile(cmd)
			defer mustFinishProfile(p)

			s, cfg, err := openForQueries(cmd, v)
			if err != nil {
				return err
			}
			s = graph.NewSynchronized(s)
			defer s.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			api := rdfhttp.New(s, rdfhttp.Config{
				ReadOnly: cfg.HTTP.ReadOnly,
				Batch:    cfg.Load.Batch,
				Strict:   cfg.Load.Strict,
				Timeout:  cfg.Query.Timeout,
				Limit:    limit,
			}, rdfhttp.LogRequest)

			addr := cfg.Address()
			phost := addr
			if host, port, err := net.SplitHostPort(addr); err == nil && (host == "" || host == "0.0.0.0") {
				phost = net.JoinHostPort("localhost", port)
			}
			clog.Infof("listening on %s, API at http://%s/api/v1", addr, phost)
			if cfg.HTTP.ReadOnly {
				clog.Infof("writes are disabled")
			}
			srv := &http.Server{Addr: addr, Handler: api}
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().String("host", "127.0.0.1", "host to listen on")
	cmd.Flags().Int("port", 64210, "port to listen on")
	cmd.Flags().Bool("read_only", false, "disable writes over HTTP")
	cmd.Flags().IntP("limit", "n", 1000, "maximum number of triples returned by a lookup, negative for no limit")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "elapsed time until an individual request times out")
	registerLoadFlags(cmd)
	return cmd
}
