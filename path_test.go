// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJoinPathInsertsSeparator(t *testing.T) {
	got := joinPath("models", "textures/brick.rgb")
	want := "models" + string(filepath.Separator) + "textures/brick.rgb"
	if got != want {
		t.Errorf("joinPath = %q, want %q", got, want)
	}
}

func TestJoinPathEmptyBase(t *testing.T) {
	if got := joinPath("", "a.flt"); got != "a.flt" {
		t.Errorf("joinPath(\"\", ...) = %q, want %q", got, "a.flt")
	}
}

func TestResolveSearchPathsFindsExisting(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "model.flt")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got := resolveSearchPaths("/does/not/exist", "model.flt", []string{dir})
	if got != target {
		t.Errorf("resolveSearchPaths = %q, want %q", got, target)
	}
}

func TestResolveSearchPathsFallsBackWhenNothingExists(t *testing.T) {
	got := resolveSearchPaths("base", "missing.flt", nil)
	want := joinPath("base", "missing.flt")
	if got != want {
		t.Errorf("resolveSearchPaths fallback = %q, want %q", got, want)
	}
}
