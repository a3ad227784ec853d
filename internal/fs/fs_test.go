// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/wcps.go/internal/exc"
	"gopkg.microglot.org/wcps.go/internal/idl"
)

func newMapFS(t *testing.T, files map[string]string) idl.FileSystem {
	t.Helper()
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	local, err := NewFileSystemLocal("/", WithOptionFSFactory(func(string) fs.FS { return m }))
	require.NoError(t, err)
	return local
}

func readFile(t *testing.T, ctx context.Context, f idl.File) string {
	t.Helper()
	body, err := f.Body(ctx)
	require.NoError(t, err)
	r := NewBodyReader(ctx, body)
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestFileSystemLocalOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	local := newMapFS(t, map[string]string{
		"queries/b.wcps":   "for c in (B) return c",
		"queries/a.wcps":   "for c in (A) return c",
		"queries/notes.md": "not a query",
		"single.txt":       "for c in (S) return c",
	})

	files, err := local.Open(ctx, "queries")
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "queries/a.wcps", files[0].Path(ctx))
	require.Equal(t, "queries/b.wcps", files[1].Path(ctx))
	require.Equal(t, "for c in (A) return c", readFile(t, ctx, files[0]))

	files, err = local.Open(ctx, "file:///single.txt")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, idl.FileKindQuery, files[0].Kind(ctx))
	require.Equal(t, "for c in (S) return c", readFile(t, ctx, files[0]))

	_, err = local.Open(ctx, "missing.wcps")
	require.Error(t, err)
	require.Equal(t, exc.CodeFileNotFound, exc.CodeOf(err))
}

func TestFileSystemLocalEmptyDirectory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	local := newMapFS(t, map[string]string{
		"docs/readme.md": "nothing here",
	})
	_, err := local.Open(ctx, "docs")
	require.Error(t, err)
	require.Equal(t, exc.CodeFileNotFound, exc.CodeOf(err))
}

func TestFileSystemMulti(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	first := newMapFS(t, map[string]string{"x.wcps": "for c in (X) return c"})
	second := newMapFS(t, map[string]string{"y.wcps": "for c in (Y) return c"})
	multi := FileSystemMulti{first, second}

	files, err := multi.Open(ctx, "y.wcps")
	require.NoError(t, err)
	require.Equal(t, "for c in (Y) return c", readFile(t, ctx, files[0]))

	_, err = multi.Open(ctx, "z.wcps")
	require.Equal(t, exc.CodeFileNotFound, exc.CodeOf(err))

	err = multi.Write(ctx, "y.wcps", "")
	require.Equal(t, exc.CodeUnsuportedFileSystemOperation, exc.CodeOf(err))
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, idl.FileKindQuery, KindOf("a.wcps"))
	require.Equal(t, idl.FileKindQuery, KindOf("a.wcpsq"))
	require.Equal(t, idl.FileKindQuery, KindOf("dir/a.wcps.txt"))
	require.Equal(t, idl.FileKindNone, KindOf("a.txt"))
}

func TestNewFileString(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := NewFileString("inline", "for c in (A) return c")
	require.Equal(t, "inline", f.Path(ctx))
	require.Equal(t, idl.FileKindQuery, f.Kind(ctx))
	require.Equal(t, "for c in (A) return c", readFile(t, ctx, f))
	require.Equal(t, "for c in (A) return c", readFile(t, ctx, f))
}

func TestFileSystemLocalWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	local, err := NewFileSystemLocal(root)
	require.NoError(t, err)
	require.NoError(t, local.Write(ctx, "nested/q.wcps", "for c in (A) return c"))

	files, err := local.Open(ctx, "nested")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "for c in (A) return c", readFile(t, ctx, files[0]))
}
