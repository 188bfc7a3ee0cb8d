// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import (
	"golang.org/x/sync/singleflight"

	"github.com/galvanlake/flt/internal/pathkey"
)

// xref.go resolves External-Reference nodes discovered while parsing:
// construct a concrete path from the referencing File's own directory
// and the xref's relative path (falling back to the configured search
// paths), then load it — sharing one in-flight parse across every
// goroutine that discovers the same target concurrently.

// resolveGroup collapses concurrent first-discoveries of the same
// normalized path onto one parse, the way a worker pool walking
// several files' xref lists at once would otherwise race to load the
// same shared model many times over.
var resolveGroup singleflight.Group

// ResolveExternal resolves one ExternalRefNode discovered while parsing
// parent, honoring parent's SearchPaths. The child File is loaded with
// opts, not with parent's options; Load passes its own Option set here
// when ResolveExternalRefs is on. Safe to call
// concurrently for different nodes from the same or different parents:
// two discoveries of the same on-disk file collapse onto a single Load.
func ResolveExternal(parent *File, n *ExternalRefNode, opts ...Option) (*File, error) {
	if n.resolved != nil || n.resolveErr != nil {
		return n.resolved, n.resolveErr
	}

	candidate := resolveSearchPaths(basePath(parent.Path), n.Path, parent.opts.searchPaths)
	key := pathkey.Normalize(candidate)

	v, err, _ := resolveGroup.Do(key, func() (interface{}, error) {
		if existing, ok := sharedFiles.Get(key); ok {
			existing.acquire()
			return existing, nil
		}
		child, loadErr := Load(candidate, opts...)
		if loadErr != nil {
			return child, loadErr
		}
		child.acquire()
		stored, existed := sharedFiles.GetOrInsert(key, func() *File { return child })
		if existed && stored != child {
			stored.acquire()
			return stored, nil
		}
		return child, nil
	})

	if err != nil {
		n.resolveErr = err
		return nil, err
	}
	n.resolved = v.(*File)
	return n.resolved, nil
}

// ResolveAllExternal walks f's flat external-reference list and
// resolves every node that hasn't been resolved yet, the behavior
// ResolveExternalRefs(true) enables automatically during Load.
func ResolveAllExternal(f *File, opts ...Option) []error {
	var errs []error
	for n := f.extrefHead; n != nil; n = n.extref.nextExtref {
		if _, err := ResolveExternal(f, n.extref, opts...); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
