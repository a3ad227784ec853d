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
)

// FmtOptions holds the fmt subcommand flags.
type FmtOptions struct {
	*RootOptions
	Expression string
	Write      bool
}

// NewFmtCommand creates the fmt subcommand.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FmtOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Print queries in canonical form",
		Long: `Fmt parses each query and prints it back on a single line with canonical
keyword case, spacing, and parentheses. The output parses to the same tree
as the input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd.Context(), opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.Expression, "expression", "e", "", "Format this query instead of files")
	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite query files in place instead of printing them")

	return cmd
}

func runFmt(ctx context.Context, opts *FmtOptions, args []string, out io.Writer, errOut io.Writer) error {
	if err := checkInput(opts.Expression, args); err != nil {
		return err
	}
	if opts.Write && opts.Expression != "" {
		return errors.New("-w needs query files")
	}
	f, err := opts.newFrontend()
	if err != nil {
		return err
	}

	if opts.Expression != "" {
		request, err := f.ParseQuery(ctx, opts.Expression)
		if err != nil {
			return reject(errOut, err)
		}
		fmt.Fprintln(out, ast.Format(request))
		return nil
	}

	results, parseErr := f.ParseFiles(ctx, args)
	for _, result := range results {
		if result.Err != nil {
			continue
		}
		formatted := ast.Format(result.Request)
		if !opts.Write {
			fmt.Fprintln(out, formatted)
			continue
		}
		if err := opts.rewrite(ctx, result.Path, formatted+"\n"); err != nil {
			return err
		}
	}
	if parseErr != nil {
		return reject(errOut, parseErr)
	}
	return nil
}

// rewrite replaces path in the first --root directory that holds it.
func (opts *FmtOptions) rewrite(ctx context.Context, path string, content string) error {
	roots, err := opts.localRoots()
	if err != nil {
		return err
	}
	for _, root := range roots {
		if _, err := root.Open(ctx, path); err != nil {
			continue
		}
		return errors.Wrapf(root.Write(ctx, path, content), "write %s", path)
	}
	return errors.Errorf("%s is not under any --root directory", path)
}
