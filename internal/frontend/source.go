// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package frontend

import (
	"context"
	"io"
	"sort"

	"gopkg.microglot.org/wcps.go/internal/exc"
	"gopkg.microglot.org/wcps.go/internal/fs"
)

// Source is the text of one query file.
type Source struct {
	Path string
	Text string
}

// Sources reads every query file named by targets without parsing it.
// Unreadable targets are handled as in ParseFiles.
func (self *Frontend) Sources(ctx context.Context, targets []string) ([]Source, error) {
	reporter := self.newReporter()
	defer self.forward(reporter)
	files, err := self.open(ctx, reporter, targets)
	if err != nil {
		return nil, err
	}
	out := make([]Source, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, file := range files {
		path := file.Path(ctx)
		if seen[path] {
			continue
		}
		seen[path] = true
		body, err := file.Body(ctx)
		if err != nil {
			_ = reporter.Report(asException(path, err))
			continue
		}
		r := fs.NewBodyReader(ctx, body)
		b, err := io.ReadAll(r)
		_ = r.Close()
		if err != nil {
			_ = reporter.Report(exc.WrapUnknown(exc.Location{URI: path}, err))
			continue
		}
		out = append(out, Source{Path: path, Text: string(b)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	if caught := reporter.Reported(); len(caught) > 0 {
		return out, MultiException(caught)
	}
	return out, nil
}
