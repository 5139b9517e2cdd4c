// Package command implements the rdfstore subcommands.
package command

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/internal"
	"github.com/cayleygraph/rdfstore/internal/config"
	"github.com/cayleygraph/rdfstore/term"
)

// defaultIdentifier names the default context when the configuration does
// not, so that stores opened by one command agree on it.
const defaultIdentifier = "urn:x-rdfstore:default"

const (
	flagLoad       = "load"
	flagLoadFormat = "load_format"
	flagDump       = "dump"
	flagDumpFormat = "dump_format"
)

func formatNames(reader bool) string {
	var names []string
	for _, f := range quad.Formats() {
		if (reader && f.Reader != nil) || (!reader && f.Writer != nil) {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return `"` + strings.Join(names, `", "`) + `"`
}

// flagKeys maps flags to the configuration keys they override.
var flagKeys = map[string]string{
	"backend":      config.KeyBackend,
	"identifier":   config.KeyIdentifier,
	"seed":         config.KeySeed,
	flagLoadFormat: config.KeyLoadFormat,
	"strict":       config.KeyLoadStrict,
	"batch":        config.KeyLoadBatch,
	"host":         config.KeyHost,
	"port":         config.KeyPort,
	"read_only":    config.KeyReadOnly,
	"timeout":      config.KeyQueryTimeout,
}

func registerLoadFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP(flagLoad, "i", nil, `quad files to load before running (".gz" and ".bz2" supported, "-" for stdin)`)
	registerParseFlags(cmd)
}

// registerParseFlags adds the flags controlling how input files are parsed.
func registerParseFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagLoadFormat, "", `quad file format to use for loading instead of auto-detection (`+formatNames(true)+`)`)
	cmd.Flags().Bool("strict", false, "abort on the first invalid statement instead of skipping it")
	cmd.Flags().Int("batch", 10000, "number of statements loaded between progress reports")
}

func registerDumpFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagDump, "o", "", `quad file to dump the result to (".gz" supported, "-" for stdout)`)
	cmd.Flags().String(flagDumpFormat, "", `quad file format to use instead of auto-detection (`+formatNames(false)+`)`)
}

// loadConfig binds the flags of cmd and decodes the configuration. Flags
// are bound when the command runs, as several commands share the keys.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if cfg.Store.Identifier == "" {
		cfg.Store.Identifier = defaultIdentifier
	}
	return cfg, nil
}

func printBackendInfo(cfg *config.Config) {
	clog.Infof("using backend %q (default context <%s>)", cfg.Store.Backend, cfg.Store.Identifier)
}

// openStore creates an empty store of the configured backend.
func openStore(cfg *config.Config) (graph.Store, error) {
	printBackendInfo(cfg)
	return cfg.OpenStore()
}

func loadOptions(cfg *config.Config) internal.LoadOptions {
	return internal.LoadOptions{
		Format: cfg.Load.Format,
		Batch:  cfg.Load.Batch,
		Strict: cfg.Load.Strict,
	}
}

// loadFiles adds every file to s, unlabelled statements going to its
// default context.
func loadFiles(s graph.Store, cfg *config.Config, files []string) error {
	opts := loadOptions(cfg)
	for _, path := range files {
		start := time.Now()
		n, err := internal.Load(s, nil, path, opts)
		if err != nil {
			return err
		}
		clog.Infof("loaded %d statements from %q in %v", n, path, time.Since(start))
	}
	return nil
}

// openForQueries creates a store and loads the files given with -i.
func openForQueries(cmd *cobra.Command, v *viper.Viper) (graph.Store, *config.Config, error) {
	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return nil, nil, err
	}
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	files, _ := cmd.Flags().GetStringSlice(flagLoad)
	if err = loadFiles(s, cfg, files); err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, cfg, nil
}

// parseContext parses an optional context argument; "" and "*" are nil.
func parseContext(arg string) (term.Term, error) {
	if internal.IsWildcard(arg) {
		return nil, nil
	}
	ts, err := internal.ParsePattern([]string{"", "", "", arg}, term.NewGenerator().NewScope())
	if err != nil {
		return nil, fmt.Errorf("invalid context %q: %w", arg, err)
	}
	if _, ok := ts[3].(term.Literal); ok {
		return nil, fmt.Errorf("invalid context %q: literals cannot name a context", arg)
	}
	return ts[3], nil
}

type profileData struct {
	cpuProfile *os.File
	memPath    string
}

func mustSetupProfile(cmd *cobra.Command) profileData {
	p := profileData{}
	if mpp := cmd.Flag("memprofile"); mpp != nil {
		p.memPath = mpp.Value.String()
	}
	cpp := cmd.Flag("cpuprofile")
	if cpp == nil {
		return p
	}
	v := cpp.Value.String()
	if v != "" {
		f, err := os.Create(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open CPU profile file %s\n", v)
			os.Exit(1)
		}
		p.cpuProfile = f
		pprof.StartCPUProfile(f)
	}
	return p
}

func mustFinishProfile(p profileData) {
	if p.cpuProfile != nil {
		pprof.StopCPUProfile()
		p.cpuProfile.Close()
	}
	if p.memPath != "" {
		f, err := os.Create(p.memPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open memory profile file %s\n", p.memPath)
			os.Exit(1)
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write memory profile file %s\n", p.memPath)
		}
		f.Close()
	}
}
