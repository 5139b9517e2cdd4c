package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cayleygraph/quad"
	"github.com/spf13/cobra"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/internal"
	"github.com/cayleygraph/rdfstore/internal/decompressor"
)

// lazyReader opens its input on the first read, so a long list of files
// does not hold every descriptor open at once.
type lazyReader struct {
	rc   quad.ReadCloser
	open func() (quad.ReadCloser, error)
}

func (r *lazyReader) ReadQuad() (quad.Quad, error) {
	if r.rc == nil {
		rc, err := r.open()
		if err != nil {
			return quad.Quad{}, err
		}
		r.rc = rc
	}
	return r.rc.ReadQuad()
}

func (r *lazyReader) Close() error {
	if r.rc == nil {
		return nil
	}
	return r.rc.Close()
}

// multiReader reads its inputs one after another.
type multiReader struct {
	rc []quad.ReadCloser
	i  int
}

func (r *multiReader) ReadQuad() (quad.Quad, error) {
	for r.i < len(r.rc) {
		q, err := r.rc[r.i].ReadQuad()
		if err == io.EOF {
			r.rc[r.i].Close()
			r.i++
			continue
		}
		return q, err
	}
	return quad.Quad{}, io.EOF
}

func (r *multiReader) Close() error {
	var first error
	for ; r.i < len(r.rc); r.i++ {
		if err := r.rc[r.i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// writeQuadsTo copies qr to path ("-" for w) in the given format. Output to
// a .gz file is compressed.
func writeQuadsTo(w io.Writer, path, typ string, qr quad.Reader) (int, error) {
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return 0, fmt.Errorf("could not create file %q: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	format, err := internal.FormatFor(typ, path)
	if err != nil {
		return 0, err
	} else if format.Writer == nil {
		return 0, fmt.Errorf("encoding in %s format is not supported", format.Name)
	}
	zw, zc := decompressor.NewWriter(w, path)
	qw := format.Writer(zw)
	n, err := quad.Copy(qw, qr)
	if err != nil {
		qw.Close()
		return n, err
	}
	if err = qw.Close(); err != nil {
		return n, err
	}
	return n, zc.Close()
}

func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert [<file>...] <output>",
		Aliases: []string{"conv"},
		Short:   "Convert quad files between supported formats.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dump, _ := cmd.Flags().GetString(flagDump)
			dumpf, _ := cmd.Flags().GetString(flagDumpFormat)
			if dump == "" && len(args) > 0 {
				i := len(args) - 1
				dump, args = args[i], args[:i]
			}
			files, _ := cmd.Flags().GetStringSlice(flagLoad)
			files = append(files, args...)
			if len(files) == 0 || dump == "" {
				return errors.New("both input and output files must be specified")
			}
			loadf, _ := cmd.Flags().GetString(flagLoadFormat)

			var multi multiReader
			for _, path := range files {
				path := path
				multi.rc = append(multi.rc, &lazyReader{open: func() (quad.ReadCloser, error) {
					clog.Infof("reading %q", path)
					return internal.OpenReader(path, loadf)
				}})
			}
			defer multi.Close()
			n, err := writeQuadsTo(cmd.OutOrStdout(), dump, dumpf, &multi)
			if err != nil {
				return err
			}
			if dump != "-" {
				clog.Infof("%d entries were written to %q", n, dump)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceP(flagLoad, "i", nil, `quad files to convert (".gz" and ".bz2" supported, "-" for stdin)`)
	cmd.Flags().String(flagLoadFormat, "", `quad file format to use for reading instead of auto-detection (`+formatNames(true)+`)`)
	registerDumpFlags(cmd)
	return cmd
}
