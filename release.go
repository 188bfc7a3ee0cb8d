// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

// release.go tears a File down: release every resolved external
// reference first (post-order, so a shared child is only actually
// freed once nothing else still points at it), then drop this File's
// own tables.

// Release decrements f's refcount and, once it reaches zero, walks
// f's resolved external references releasing each of them in turn,
// drops f from the shared registry, and clears f's own tables so the
// garbage collector can reclaim them independent of anything still
// holding the *File value itself.
func Release(f *File) {
	if f == nil || loadState(f.state.Load()) == stateReleased {
		return
	}
	if !f.release() {
		return
	}
	for n := f.extrefHead; n != nil; n = n.extref.nextExtref {
		if n.extref.resolved != nil {
			Release(n.extref.resolved)
		}
	}
	sharedFiles.Decref(f.registryKey())
	f.root = nil
	f.faces = nil
	f.indices = nil
	f.Palettes = Palettes{}
	f.state.Store(int32(stateReleased))
	logger.Debug("released", "path", f.Path)
}
