// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

// path.go is the small set of path helpers the external-reference
// resolver needs. Built on path/filepath + strings the way
// render/gl/gen/gen.go reaches for filepath.Base elsewhere in the
// pack — there is no third-party path library in the retrieved corpus,
// so stdlib is the idiomatic choice here, not a fallback.

import (
	"os"
	"path/filepath"
	"strings"
)

// baseName returns the file name component of p, same contract as
// path/filepath.Base.
func baseName(p string) string { return filepath.Base(p) }

// basePath returns the directory component of p, same contract as
// path/filepath.Dir.
func basePath(p string) string { return filepath.Dir(p) }

// hasTrailingSeparator reports whether p ends with an OS path separator.
func hasTrailingSeparator(p string) bool {
	return strings.HasSuffix(p, string(filepath.Separator)) || strings.HasSuffix(p, "/")
}

// joinPath concatenates a base directory and a relative path, inserting
// a separator only if base doesn't already end with one: builds a
// concrete filesystem path by concatenating the current file's base
// path with the xref-relative path.
func joinPath(base, rel string) string {
	if base == "" {
		return rel
	}
	if hasTrailingSeparator(base) {
		return base + rel
	}
	return base + string(filepath.Separator) + rel
}

// resolveSearchPaths tries rel directly, then joined with base, then
// rel's base name joined with each of searchPaths in order, returning
// the first path that exists on disk. Returns rel joined with base if
// none exist, leaving the final open() call to report ErrFileOpen.
func resolveSearchPaths(base, rel string, searchPaths []string) string {
	candidates := []string{rel, joinPath(base, rel)}
	for _, sp := range searchPaths {
		candidates = append(candidates, joinPath(sp, baseName(rel)))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return candidates[1]
}
