// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

// swap.go holds the endian primitives for reading OpenFlight's big-endian
// wire format on whatever host byte order Go is running on. Mirrors the
// way the IQM loader reaches for encoding/binary's byte-order types
// rather than a third-party serialization library for fixed-layout
// struct decode.

import (
	"encoding/binary"
	"unsafe"
)

// hostLittleEndian reports whether the running host is little-endian.
// The swap helpers below are no-ops when this is false.
var hostLittleEndian = isHostLittleEndian()

func isHostLittleEndian() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}

// swap16 reverses the two bytes of b in place. No-op on big-endian hosts.
func swap16(b []byte) {
	if !hostLittleEndian || len(b) < 2 {
		return
	}
	b[0], b[1] = b[1], b[0]
}

// swap32 reverses the four bytes of b in place. No-op on big-endian hosts.
func swap32(b []byte) {
	if !hostLittleEndian || len(b) < 4 {
		return
	}
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
}

// swap64 reverses the eight bytes of b in place. No-op on big-endian hosts.
func swap64(b []byte) {
	if !hostLittleEndian || len(b) < 8 {
		return
	}
	b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7] =
		b[7], b[6], b[5], b[4], b[3], b[2], b[1], b[0]
}

// be16 reads a big-endian uint16 and swaps it into host order.
func be16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// be32 reads a big-endian uint32 and swaps it into host order.
func be32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// be64 reads a big-endian uint64 and swaps it into host order.
func be64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// width is the bit-width a swapField descriptor entry applies to.
type width int

const (
	w16 width = 16
	w32 width = 32
	w64 width = 64
)

// swapField is one entry of a descriptor-driven struct swap: starting at
// byteOffset within the struct's wire image, swap count consecutive
// fields of the given bit width. This lets handlers.go describe a fixed
// record layout once and apply the right-sized swap to every field
// without hand writing a swap call per field.
type swapField struct {
	byteOffset int
	width      width
	count      int
}

// applySwaps walks a swap descriptor over a wire-format byte buffer,
// reversing each described field in place. Used after a raw record body
// has been read so the big-endian wire values become host-ordered before
// being copied into a Go struct's numeric fields via binary.Read.
func applySwaps(buf []byte, fields []swapField) {
	for _, f := range fields {
		off := f.byteOffset
		switch f.width {
		case w16:
			for i := 0; i < f.count; i++ {
				swap16(buf[off : off+2])
				off += 2
			}
		case w32:
			for i := 0; i < f.count; i++ {
				swap32(buf[off : off+4])
				off += 4
			}
		case w64:
			for i := 0; i < f.count; i++ {
				swap64(buf[off : off+8])
				off += 8
			}
		}
	}
}
