package change

import (
	"path/filepath"
	"strings"

	"github.com/openspec-dev/openspec/internal/fsio"
)

// The existence check supports exactly the pattern shapes schemas use: a
// directory prefix, one wildcard segment, and an optional trailing
// extension, with ** opting into recursion. It is deliberately not a
// general glob matcher so behavior stays exactly reproducible.

// hasWildcard reports whether a generates pattern needs the glob check.
func hasWildcard(pattern string) bool {
	return strings.Contains(pattern, "*")
}

// globTargetExists checks whether a wildcard generates pattern is satisfied
// under root. The segments before the first wildcard must exist as a
// directory; a match then requires at least one file whose name ends with
// the pattern's trailing extension, or any file at all when the pattern has
// none. Patterns containing ** scan subdirectories too.
func globTargetExists(fsys fsio.FS, root, pattern string) bool {
	segments := strings.Split(pattern, "/")

	firstWild := -1
	for i, seg := range segments {
		if strings.Contains(seg, "*") {
			firstWild = i
			break
		}
	}
	if firstWild == -1 {
		return fsys.Exists(filepath.Join(root, filepath.FromSlash(pattern)))
	}

	dir := root
	if firstWild > 0 {
		dir = filepath.Join(root, filepath.Join(segments[:firstWild]...))
	}
	if !fsys.DirExists(dir) {
		return false
	}

	recursive := strings.Contains(pattern, "**")
	ext := trailingExt(segments[len(segments)-1])

	return dirHasMatch(fsys, dir, ext, recursive)
}

// trailingExt extracts the extension a matching file must carry, e.g.
// ".md" from "*.md". A bare "*" or "**" segment matches any file.
func trailingExt(lastSegment string) string {
	idx := strings.LastIndex(lastSegment, ".")
	if idx == -1 {
		return ""
	}
	return lastSegment[idx:]
}

// dirHasMatch scans dir for a file matching ext, descending into
// subdirectories when recursive is set.
func dirHasMatch(fsys fsio.FS, dir, ext string, recursive bool) bool {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return false
	}

	for _, e := range entries {
		if e.Dir {
			if recursive && dirHasMatch(fsys, filepath.Join(dir, e.Name), ext, recursive) {
				return true
			}
			continue
		}
		if ext == "" || strings.HasSuffix(e.Name, ext) {
			return true
		}
	}
	return false
}
