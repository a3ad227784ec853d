package target

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"gopkg.microglot.org/wcps.go/internal/exc"
)

// Normalize converts a query target into the absolute path handed to the
// query file systems.
//
// Targets are file paths or file URIs. Relative paths are rooted at the file
// system root. A file URI must name the local host. Single letter schemes are
// drive letters and are read as paths.
func Normalize(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", exc.New(exc.Location{}, exc.CodeFileNotFound, "empty query target")
	}
	u, err := url.Parse(target)
	if err == nil && len(u.Scheme) > 1 {
		if u.Scheme != "file" {
			return "", exc.New(exc.Location{URI: target}, exc.CodeUnsuportedFileSystemOperation, fmt.Sprintf("query targets must be files, not %s URIs", u.Scheme))
		}
		if u.Host != "" && u.Host != "localhost" {
			return "", exc.New(exc.Location{URI: target}, exc.CodeUnsuportedFileSystemOperation, fmt.Sprintf("cannot read queries from host %s", u.Host))
		}
		target = u.Path
	}
	target = filepath.ToSlash(target)
	if !filepath.IsAbs(target) {
		return filepath.Join("/", target), nil
	}
	return filepath.Clean(target), nil
}
