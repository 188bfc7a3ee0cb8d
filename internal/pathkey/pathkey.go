// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package pathkey normalizes a filesystem path into a dictionary key so
// external references that differ only by case or path separator style
// dedupe onto the same shared File entry.
package pathkey

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// caser folds case the way case-insensitive filesystems (Windows,
// default macOS) treat a path: "Model.flt" and "model.flt" name the
// same file, and their dictionary entries must collide, not double up.
var caser = cases.Fold()

// Normalize returns p with separators made uniform and case folded,
// suitable as a map key in the shared filename-to-File dictionary.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = filepath.Clean(p)
	return caser.String(p)
}

// Base returns the normalized key for just the file-name component of
// p, used when a search path is joined against a candidate directory.
func Base(p string) string {
	return Normalize(filepath.Base(filepath.ToSlash(p)))
}
