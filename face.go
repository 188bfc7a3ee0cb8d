// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

// face.go interns Face (opcode 5) records into a per-file dictionary and
// packs a (bucket, chain-offset) handle for each distinct attribute set.
// The packed-word handle shape divides a 32-bit word into two bit ranges
// (bucket | chain<<bucketBits) so the handle can ride alongside a node
// pointer in a single stackEntry slot instead of holding a live *Face.

import (
	"bytes"
	"encoding/binary"
)

// Face is the interned per-file face-attribute record. Two Faces are
// equal iff their attribute bytes are equal; Name is excluded from
// identity (kept only when KeepNames is set).
type Face struct {
	PackedColor    uint32
	BaseTexture    int32
	DetailTexture  int32
	MaterialIndex  int32
	ShaderIndex    int32
	Flags          uint32
	BillboardMode  uint8

	Name string // only populated when options.keepNames is set
}

// faceAttrSize is the wire size of the Face body actually hashed for
// identity: the attribute prefix, excluding the optional trailing name.
const faceAttrSize = 25

// faceBodyWireSize is the full decoded size of faceBody, including the
// trailing alignment padding decodeFaceBody expects in its input slice.
const faceBodyWireSize = 28

// faceBody is the on-wire layout decoded from a Face (5) record, before
// any name suffix.
type faceBody struct {
	PackedColor   uint32
	BaseTexture   int32
	DetailTexture int32
	MaterialIndex int32
	ShaderIndex   int32
	Flags         uint32
	BillboardMode uint8
	_             [3]byte // wire alignment padding, not swapped
}

var faceSwapDescriptor = []swapField{
	{0, w32, 1}, // PackedColor
	{4, w32, 4}, // BaseTexture, DetailTexture, MaterialIndex, ShaderIndex
	{20, w32, 1}, // Flags
	// BillboardMode + padding: single byte, no swap.
}

func decodeFaceBody(raw []byte, fb *faceBody) error {
	buf := append([]byte(nil), raw...)
	applySwaps(buf, faceSwapDescriptor)
	return binary.Read(bytes.NewReader(buf), binary.NativeEndian, fb)
}

// faceHandle identifies an interned Face without holding a pointer
// directly on the parsing stack: bucket in the low bits, chain-offset
// in the high bits.
type faceHandle struct {
	bucket uint32
	chain  uint32
}

const faceHandleBucketBits = 20
const faceHandleBucketMask = (1 << faceHandleBucketBits) - 1

func (h faceHandle) pack() uint32 {
	return (h.chain << faceHandleBucketBits) | (h.bucket & faceHandleBucketMask)
}

func unpackFaceHandle(v uint32) faceHandle {
	return faceHandle{bucket: v & faceHandleBucketMask, chain: v >> faceHandleBucketBits}
}

// faceDict is the per-file face-attribute interning table. Buckets are
// chained slices;
// the handle's chain field is the slice index within the bucket so a
// handle stays valid even as more faces land in the same bucket.
type faceDict struct {
	buckets [][]*Face
}

func newFaceDict(bucketCount int) *faceDict {
	if bucketCount <= 0 {
		bucketCount = 1543
	}
	return &faceDict{buckets: make([][]*Face, bucketCount)}
}

// djb2 is the classic Bernstein hash used to bucket face attribute keys.
func djb2(b []byte) uint32 {
	h := uint32(5381)
	for _, c := range b {
		h = h*33 + uint32(c)
	}
	return h
}

// intern looks up or inserts f by its attribute bytes, returning the
// handle to use everywhere else the face is referenced.
func (d *faceDict) intern(f *Face) faceHandle {
	key := faceAttrKey(f)
	bucket := djb2(key) % uint32(len(d.buckets))
	chain := d.buckets[bucket]
	for i, existing := range chain {
		if bytes.Equal(faceAttrKey(existing), key) {
			return faceHandle{bucket: bucket, chain: uint32(i)}
		}
	}
	d.buckets[bucket] = append(chain, f)
	return faceHandle{bucket: bucket, chain: uint32(len(d.buckets[bucket]) - 1)}
}

func (d *faceDict) get(h faceHandle) *Face {
	if int(h.bucket) >= len(d.buckets) {
		return nil
	}
	chain := d.buckets[h.bucket]
	if int(h.chain) >= len(chain) {
		return nil
	}
	return chain[h.chain]
}

// Len returns the number of distinct interned faces.
func (d *faceDict) Len() int {
	n := 0
	for _, chain := range d.buckets {
		n += len(chain)
	}
	return n
}

// faceAttrKey returns the identity bytes of f: attribute fields only,
// name excluded: two faces with identical attributes intern to the same
// handle regardless of name.
func faceAttrKey(f *Face) []byte {
	buf := make([]byte, faceAttrSize)
	binary.NativeEndian.PutUint32(buf[0:4], f.PackedColor)
	binary.NativeEndian.PutUint32(buf[4:8], uint32(f.BaseTexture))
	binary.NativeEndian.PutUint32(buf[8:12], uint32(f.DetailTexture))
	binary.NativeEndian.PutUint32(buf[12:16], uint32(f.MaterialIndex))
	binary.NativeEndian.PutUint32(buf[16:20], uint32(f.ShaderIndex))
	binary.NativeEndian.PutUint32(buf[20:24], f.Flags)
	buf[24] = f.BillboardMode
	return buf
}
