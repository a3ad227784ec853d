// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the wcpsc command line.
package cli

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gopkg.microglot.org/wcps.go/internal/config"
	"gopkg.microglot.org/wcps.go/internal/frontend"
	"gopkg.microglot.org/wcps.go/internal/fs"
	"gopkg.microglot.org/wcps.go/internal/idl"
	"gopkg.microglot.org/wcps.go/internal/logger"
	"gopkg.microglot.org/wcps.go/internal/parser"
)

// ErrRejected is returned when one or more queries failed to parse. The
// diagnostics have already been written by the time it is returned.
var ErrRejected = errors.New("one or more queries were rejected")

// RootOptions holds the flags shared by every subcommand.
type RootOptions struct {
	Roots       []string
	MaxDepth    int
	LogLevel    string
	LogEnv      string
	ConfigPaths []string
	LookupEnv   func(string) (string, bool)
}

// NewRootCommand builds the wcpsc command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{LookupEnv: os.LookupEnv}

	cmd := &cobra.Command{
		Use:   "wcpsc",
		Short: "Parse and format WCPS queries",
		Long: `wcpsc reads WCPS coverage processing queries and checks them against the
query grammar. Queries come from files, directories of query files, or the
command line.

Flags may also be set in a wcpsc.yaml file or with WCPS_ environment
variables such as WCPS_MAX_DEPTH.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(cmd.Flags(), config.WithPaths(opts.ConfigPaths...)); err != nil {
				return errors.Wrap(err, "load config")
			}
			if err := logger.Init(logger.Logging{Env: opts.LogEnv, Level: opts.LogLevel}); err != nil {
				return errors.Wrap(err, "init logger")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringSliceVar(&opts.Roots, "root", []string{"."}, "Directories query paths are resolved against")
	cmd.PersistentFlags().IntVar(&opts.MaxDepth, "max-depth", parser.DefaultMaxDepth, "Deepest rule nesting allowed before a query is rejected")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "Log level: debug, info, warn, or error")
	cmd.PersistentFlags().StringVar(&opts.LogEnv, "log-env", "prod", "Log encoding: dev for console output, prod for JSON")
	cmd.PersistentFlags().StringSliceVar(&opts.ConfigPaths, "config-path", []string{"."}, "Directories searched for wcpsc.yaml")

	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewFmtCommand(opts))

	return cmd
}

// localRoots opens every --root directory.
func (opts *RootOptions) localRoots() ([]idl.FileSystem, error) {
	roots := make([]idl.FileSystem, 0, len(opts.Roots))
	for _, root := range opts.Roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, errors.Wrapf(err, "root %s", root)
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			return nil, errors.Wrapf(err, "root %s", root)
		}
		roots = append(roots, rf)
	}
	return roots, nil
}

// newFrontend searches the --root directories first and then the shared
// query directories of the host.
func (opts *RootOptions) newFrontend() (*frontend.Frontend, error) {
	roots, err := opts.localRoots()
	if err != nil {
		return nil, err
	}
	dfs, err := fs.NewDefaultFS(opts.LookupEnv)
	if err != nil {
		return nil, errors.Wrap(err, "default query directories")
	}
	mf := make(fs.FileSystemMulti, 0, len(roots)+1)
	mf = append(mf, roots...)
	mf = append(mf, dfs)
	f, err := frontend.New(
		frontend.WithLookupEnv(opts.LookupEnv),
		frontend.WithFS(mf),
		frontend.WithMaxDepth(opts.MaxDepth),
		frontend.WithLogger(logger.GetLogger("frontend")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create frontend")
	}
	return f, nil
}
