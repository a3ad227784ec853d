// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// treeWriter writes dumped trees as a YAML document stream or as a sequence
// of indented JSON values.
type treeWriter struct {
	out     io.Writer
	format  string
	written int
}

func newTreeWriter(out io.Writer, format string) *treeWriter {
	return &treeWriter{out: out, format: format}
}

func (w *treeWriter) write(tree any) error {
	defer func() { w.written = w.written + 1 }()
	if w.format == formatJSON {
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(tree), "encode json")
	}
	if w.written > 0 {
		if _, err := io.WriteString(w.out, "---\n"); err != nil {
			return errors.WithStack(err)
		}
	}
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return errors.Wrap(enc.Close(), "encode yaml")
}
