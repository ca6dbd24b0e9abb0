package pdf

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

// Extract walks the tree under root, and for every file whose base name
// matches pattern appends the filename followed by its extracted page-range
// text to w. Per-file extraction failures are reported to diag and skipped;
// only a malformed pattern aborts the walk.
func Extract(root, pattern string, first, last int, w io.Writer, diag io.Writer) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d == nil || d.IsDir() {
			return nil
		}
		ok, matchErr := filepath.Match(pattern, d.Name())
		if matchErr != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, matchErr)
		}
		if !ok {
			return nil
		}
		text, xerr := ExtractText(path, first, last)
		if xerr != nil {
			fmt.Fprintf(diag, "skipping %s: %v\n", path, xerr)
			return nil
		}
		fmt.Fprintf(w, "%s\n%s\n", path, strings.TrimRight(text, "\n"))
		return nil
	})
}
