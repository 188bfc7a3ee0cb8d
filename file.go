// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/galvanlake/flt/internal/dict"
	"github.com/galvanlake/flt/internal/ioutil"
	"github.com/galvanlake/flt/internal/pathkey"
)

// loadState tracks where a File sits in its lifecycle: a new File moves
// NEW -> LOADING -> LOADED, or NEW -> LOADING -> FAILED on error. A
// loaded File can later move to RELEASED once release.go tears it down.
type loadState int32

const (
	stateNew loadState = iota
	stateLoading
	stateLoaded
	stateFailed
	stateReleased
)

// sharedFiles is the process-wide filename-to-File registry backing
// external-reference dedupe: the first goroutine to resolve a given
// path owns the parse, every later reference just bumps the refcount.
var sharedFiles = dict.New[*File](64, true)

// File is one parsed (or in-flight) OpenFlight database: its header,
// palettes, scene-graph root, and the per-file tables (face dictionary,
// index array) the assembler filled in while parsing.
type File struct {
	Path   string
	Header *Header

	Palettes Palettes
	root     *node

	faces   *faceDict
	indices *indexArray

	extrefHead *node
	extrefTail *node

	opcodeCounts [opMax + 1]uint64

	opts  *options
	state atomic.Int32

	mu       sync.Mutex
	refCount int32
	err      error
}

// Load opens path, parses every record it understands according to
// opts, and returns the resulting File. A version mismatch
// (format_rev > MaxFormatRevision) aborts before any hierarchy is
// built; a File that fails partway still returns non-nil with Err()
// set, so a caller can inspect whatever got decoded before the error.
func Load(path string, opts ...Option) (*File, error) {
	o := newOptions(opts...)
	f := &File{Path: path, opts: o}
	f.state.Store(int32(stateLoading))
	f.faces = newFaceDict(o.facesDictCapacity)
	f.indices = newIndexArray(o.indicesInitCapacity)
	f.root = &node{kind: KindBase, name: "root"}

	fh, err := os.Open(path)
	if err != nil {
		f.fail(&LoadError{Op: "open", Filename: path, Err: fmt.Errorf("%w: %v", ErrFileOpen, err)})
		return f, f.err
	}
	defer fh.Close()
	if err := ioutil.AdviseSequential(fh); err != nil {
		logger.Debug("read-ahead hint failed", "path", path, "err", err)
	}

	if err := runLoad(f, fh); err != nil {
		f.fail(&LoadError{Op: "parse", Filename: path, Err: err})
		return f, f.err
	}

	if f.Palettes.Vertex != nil {
		f.Palettes.Vertex.raw = nil
	}
	f.state.Store(int32(stateLoaded))
	logger.Info("loaded", "path", path, "faces", f.faces.Len(), "indices", f.indices.Len())

	if o.resolveExtrefs {
		for _, err := range ResolveAllExternal(f, opts...) {
			logger.Warn("external reference resolution failed", "path", path, "err", err)
		}
	}
	return f, nil
}

func (f *File) fail(err *LoadError) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
	f.state.Store(int32(stateFailed))
	logger.Warn("load failed", "path", f.Path, "op", err.Op, "err", err.Err)
}

// Err returns the error that moved this File to FAILED, or nil.
func (f *File) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// State reports the current lifecycle state as a string, for logging
// and tests.
func (f *File) State() string {
	switch loadState(f.state.Load()) {
	case stateNew:
		return "new"
	case stateLoading:
		return "loading"
	case stateLoaded:
		return "loaded"
	case stateFailed:
		return "failed"
	case stateReleased:
		return "released"
	default:
		return "unknown"
	}
}

// OpcodeCount returns how many records of the given opcode were seen,
// whether or not this core has a handler for it.
func (f *File) OpcodeCount(opcode uint16) uint64 {
	if int(opcode) > opMax {
		return 0
	}
	return f.opcodeCounts[opcode]
}

// Face looks up an interned face by handle, returning nil if the
// handle is unknown to this File.
func (f *File) Face(h faceHandle) *Face { return f.faces.get(h) }

// IndexAt returns the (face handle, vertex index) pair stored at
// position i of this File's index array.
func (f *File) IndexAt(i uint32) (faceHandle, uint32) {
	e := f.indices.At(i)
	return e.face(), e.vertexIndex()
}

// registryKey normalizes Path the way the shared dictionary keys every
// entry, so two File loads of differently-cased paths to the same
// filesystem entry share one registry slot.
func (f *File) registryKey() string { return pathkey.Normalize(f.Path) }

// acquire increments the refcount a caller (or the xref resolver) holds
// on this File.
func (f *File) acquire() { atomic.AddInt32(&f.refCount, 1) }

// release decrements the refcount and reports whether it reached zero.
func (f *File) release() bool { return atomic.AddInt32(&f.refCount, -1) <= 0 }
