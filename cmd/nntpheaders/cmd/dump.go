package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/zostay/go-nntp/article"
	"github.com/zostay/go-nntp/article/header"
	"github.com/zostay/go-nntp/article/header/field"
)

func newDumpCmd(v *viper.Viper) *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "Print the headers of each saved article",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunDump(v, cmd.OutOrStdout(), args)
		},
	}

	flags := dumpCmd.Flags()
	flags.Bool(keyStatusLine, true, "the files begin with the response status line")
	flags.Bool(keyDecode, false, "unfold and decode MIME encoded words in the output")
	flags.Int(keyMaxLength, article.DefaultMaxLength, "largest article to read, 0 for no limit")
	_ = v.BindPFlag(keyStatusLine, flags.Lookup(keyStatusLine))
	_ = v.BindPFlag(keyDecode, flags.Lookup(keyDecode))
	_ = v.BindPFlag(keyMaxLength, flags.Lookup(keyMaxLength))

	return dumpCmd
}

// RunDump parses every named file and writes its headers to out. A file that
// fails does not stop the others. All failures are returned together.
func RunDump(v *viper.Viper, out io.Writer, paths []string) error {
	logger, err := newLogger(v)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := []article.ParseOption{
		article.WithLogger(logger),
		article.WithMaxLength(v.GetInt(keyMaxLength)),
	}
	if v.GetBool(keyStatusLine) {
		opts = append(opts, article.WithStatusLine())
	}

	var errs error
	for _, path := range paths {
		a, err := parseFile(path, opts)
		if err != nil {
			logger.Warn("unable to parse article",
				zap.String("path", path),
				zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		if err := writeHeaders(out, path, a.Header(), v.GetBool(keyDecode)); err != nil {
			return multierr.Append(errs, err)
		}
	}

	return errs
}

func parseFile(path string, opts []article.ParseOption) (*article.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return article.ParseReader(f, opts...)
}

func writeHeaders(out io.Writer, path string, h *header.Headers, decode bool) error {
	if _, err := fmt.Fprintf(out, "==> %s <==\n", path); err != nil {
		return err
	}

	var werr error
	h.Each(func(hdr *header.Header) {
		for _, c := range hdr.Content() {
			if decode {
				if dc, err := field.Decode(field.Unfold(c)); err == nil {
					c = dc
				} else {
					c = field.Unfold(c)
				}
			}
			_, err := fmt.Fprintf(out, "%s: %s\n", hdr.Name(), c)
			werr = multierr.Append(werr, err)
		}
	})
	if werr != nil {
		return werr
	}

	_, err := fmt.Fprintf(out, "%d headers, %d lines\n", h.Len(), h.Lines())
	return err
}
