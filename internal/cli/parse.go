// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gopkg.microglot.org/wcps.go/internal/ast"
	"gopkg.microglot.org/wcps.go/internal/frontend"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// ParseOptions holds the parse subcommand flags.
type ParseOptions struct {
	*RootOptions
	Expression string
	DumpTokens bool
	DumpTree   bool
	Format     string
}

// NewParseCommand creates the parse subcommand.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Check queries against the grammar",
		Long: `Parse reads each query and reports the first grammar error found in it.

Arguments may be query files or directories holding .wcps, .wcpsq, or
.wcps.txt files. Use -e to parse a query given on the command line instead.`,
		Example: `  wcpsc parse queries/
  wcpsc parse --dump-tree -e 'for $c in (AvgLandTemp) return encode($c, "csv")'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.Expression, "expression", "e", "", "Parse this query instead of files")
	cmd.Flags().BoolVar(&opts.DumpTokens, "dump-tokens", false, "Output the token stream of each query")
	cmd.Flags().BoolVar(&opts.DumpTree, "dump-tree", false, "Output the parse tree of each query")
	cmd.Flags().StringVar(&opts.Format, "format", formatYAML, "Tree output format: yaml or json")

	return cmd
}

func runParse(ctx context.Context, opts *ParseOptions, args []string, out io.Writer, errOut io.Writer) error {
	if opts.Format != formatYAML && opts.Format != formatJSON {
		return errors.Errorf("invalid format %q: must be %q or %q", opts.Format, formatYAML, formatJSON)
	}
	if err := checkInput(opts.Expression, args); err != nil {
		return err
	}
	f, err := opts.newFrontend()
	if err != nil {
		return err
	}
	tw := newTreeWriter(out, opts.Format)

	if opts.Expression != "" {
		if opts.DumpTokens {
			if err := dumpTokens(ctx, f, out, opts.Expression); err != nil {
				return reject(errOut, err)
			}
		}
		request, err := f.ParseQuery(ctx, opts.Expression)
		if err != nil {
			return reject(errOut, err)
		}
		if opts.DumpTree {
			return tw.write(ast.Dump(request))
		}
		return nil
	}

	if opts.DumpTokens {
		sources, err := f.Sources(ctx, args)
		if err != nil {
			return reject(errOut, err)
		}
		for _, source := range sources {
			fmt.Fprintf(out, "# %s\n", source.Path)
			if err := dumpTokens(ctx, f, out, source.Text); err != nil {
				return reject(errOut, err)
			}
		}
	}

	results, err := f.ParseFiles(ctx, args)
	if opts.DumpTree {
		for _, result := range results {
			if result.Err != nil {
				continue
			}
			if werr := tw.write(map[string]any{
				"path":    result.Path,
				"request": ast.Dump(result.Request),
			}); werr != nil {
				return werr
			}
		}
	}
	if err != nil {
		return reject(errOut, err)
	}
	return nil
}

func checkInput(expression string, args []string) error {
	if expression != "" && len(args) > 0 {
		return errors.New("give either -e or query files, not both")
	}
	if expression == "" && len(args) < 1 {
		return errors.New("no queries given")
	}
	return nil
}

func dumpTokens(ctx context.Context, f *frontend.Frontend, out io.Writer, text string) error {
	tokens, err := f.Tokens(ctx, text)
	for _, tok := range tokens {
		fmt.Fprintf(out, "%s\t%s\t%q\n", tok.Location, tok.Type, tok.Value)
	}
	return err
}

// reject writes every diagnostic in err, one per line, and returns
// ErrRejected. Errors that are not diagnostics are returned unchanged.
func reject(errOut io.Writer, err error) error {
	var multi frontend.MultiException
	if errors.As(err, &multi) {
		for _, e := range multi {
			fmt.Fprintln(errOut, e.Error())
		}
		return ErrRejected
	}
	var diag interface{ Code() string }
	if errors.As(err, &diag) {
		fmt.Fprintln(errOut, err.Error())
		return ErrRejected
	}
	return err
}
