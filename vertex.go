// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

// vertex.go is the vertex re-encoder: on first reference, decode one of
// the four source vertex-palette record layouts and write the
// caller-selected subset of components into the next slot of the
// interleaved output array.
//
// The byte offsets below are this implementation's concrete choice for
// where each component sits within a raw vertex-palette sub-record;
// original_source didn't retain the exact struct (flt_vtx_color and
// friends weren't kept in the filtered source), so the layout is derived
// from the known record sizes (36/52/60/48 bytes) working back from a
// shared 8-byte prefix (opcode + reserved) before the position doubles.
// Recorded as an explicit decision in DESIGN.md.

import (
	"encoding/binary"
	"math"
)

// source vertex opcodes, relative offsets into a raw sub-record.
const (
	opVertexColor           = 68
	opVertexColorNormal     = 69
	opVertexColorNormalUV   = 70
	opVertexColorUV         = 71

	vtxPositionOffset = 8 // 3x float64
)

// streamWord packs one output-vertex component the way
// original_source's flt_vtx_stream_enc/_dec pack a semantic, size, and
// byte offset into a uint16 — used here to describe the caller's chosen
// output layout as an ordered list of components with their byte sizes,
// which the encoder below walks to write each component in the caller's
// order.
type streamWord struct {
	layout VertexLayout
	size   int // bytes this component contributes to the output stride
}

// buildVertexLayout resolves the caller's []VertexLayout into the
// ordered streamWords and the resulting output vertex stride, computed
// once and cached on the VertexPalette.
func buildVertexLayout(layout []VertexLayout) (words []streamWord, stride int) {
	for _, l := range layout {
		switch l {
		case LayoutPositionF64:
			words = append(words, streamWord{l, 24})
			stride += 24
		case LayoutPositionF32:
			words = append(words, streamWord{l, 12})
			stride += 12
		case LayoutNormal:
			words = append(words, streamWord{l, 12})
			stride += 12
		case LayoutUV:
			words = append(words, streamWord{l, 8})
			stride += 8
		case LayoutColor:
			words = append(words, streamWord{l, 4})
			stride += 4
		}
	}
	return words, stride
}

// sourceLayout describes where each optional component sits within one
// raw sub-record, and the record's total size, for a given source
// vertex opcode.
type sourceLayout struct {
	size         int
	hasNormal    bool
	hasUV        bool
	normalOffset int
	uvOffset     int
	colorOffset  int
}

func sourceLayoutFor(opcode uint16) (sourceLayout, bool) {
	switch opcode {
	case opVertexColor:
		return sourceLayout{size: 36, colorOffset: 32}, true
	case opVertexColorNormal:
		return sourceLayout{size: 52, hasNormal: true, normalOffset: 32, colorOffset: 44}, true
	case opVertexColorUV:
		return sourceLayout{size: 48, hasUV: true, uvOffset: 36, colorOffset: 32}, true
	case opVertexColorNormalUV:
		return sourceLayout{size: 60, hasNormal: true, hasUV: true, normalOffset: 32, uvOffset: 44, colorOffset: 52}, true
	}
	return sourceLayout{}, false
}

// encodeVertex decodes and re-encodes one raw-palette offset, returning
// the interleaved-array index the vertex was written to (or was already
// cached at).
func encodeVertex(vp *VertexPalette, words []streamWord, stride int, offset uint32) (uint32, error) {
	if idx, ok := vp.visited[offset]; ok {
		return idx, nil
	}
	if int(offset)+2 > len(vp.raw) {
		return 0, ErrReadBeyondRecord
	}
	opcode := be16(vp.raw[offset : offset+2])
	layout, ok := sourceLayoutFor(opcode)
	if !ok {
		return 0, ErrReadBeyondRecord
	}
	if int(offset)+layout.size > len(vp.raw) {
		return 0, ErrReadBeyondRecord
	}
	rec := vp.raw[offset : offset+uint32(layout.size)]

	var px, py, pz float64
	{
		buf := append([]byte(nil), rec[vtxPositionOffset:vtxPositionOffset+24]...)
		swap64(buf[0:8])
		swap64(buf[8:16])
		swap64(buf[16:24])
		px = math.Float64frombits(binary.NativeEndian.Uint64(buf[0:8]))
		py = math.Float64frombits(binary.NativeEndian.Uint64(buf[8:16]))
		pz = math.Float64frombits(binary.NativeEndian.Uint64(buf[16:24]))
	}
	var nx, ny, nz float32
	if layout.hasNormal {
		buf := append([]byte(nil), rec[layout.normalOffset:layout.normalOffset+12]...)
		swap32(buf[0:4])
		swap32(buf[4:8])
		swap32(buf[8:12])
		nx = math.Float32frombits(binary.NativeEndian.Uint32(buf[0:4]))
		ny = math.Float32frombits(binary.NativeEndian.Uint32(buf[4:8]))
		nz = math.Float32frombits(binary.NativeEndian.Uint32(buf[8:12]))
	}
	var u, v float32
	if layout.hasUV {
		buf := append([]byte(nil), rec[layout.uvOffset:layout.uvOffset+8]...)
		swap32(buf[0:4])
		swap32(buf[4:8])
		u = math.Float32frombits(binary.NativeEndian.Uint32(buf[0:4]))
		v = math.Float32frombits(binary.NativeEndian.Uint32(buf[4:8]))
	}
	colorBuf := append([]byte(nil), rec[layout.colorOffset:layout.colorOffset+4]...)
	swap32(colorBuf)
	color := binary.NativeEndian.Uint32(colorBuf)

	out := make([]byte, stride)
	pos := 0
	for _, w := range words {
		switch w.layout {
		case LayoutPositionF64:
			binary.NativeEndian.PutUint64(out[pos:], math.Float64bits(px))
			binary.NativeEndian.PutUint64(out[pos+8:], math.Float64bits(py))
			binary.NativeEndian.PutUint64(out[pos+16:], math.Float64bits(pz))
		case LayoutPositionF32:
			binary.NativeEndian.PutUint32(out[pos:], math.Float32bits(float32(px)))
			binary.NativeEndian.PutUint32(out[pos+4:], math.Float32bits(float32(py)))
			binary.NativeEndian.PutUint32(out[pos+8:], math.Float32bits(float32(pz)))
		case LayoutNormal:
			binary.NativeEndian.PutUint32(out[pos:], math.Float32bits(nx))
			binary.NativeEndian.PutUint32(out[pos+4:], math.Float32bits(ny))
			binary.NativeEndian.PutUint32(out[pos+8:], math.Float32bits(nz))
		case LayoutUV:
			binary.NativeEndian.PutUint32(out[pos:], math.Float32bits(u))
			binary.NativeEndian.PutUint32(out[pos+4:], math.Float32bits(v))
		case LayoutColor:
			binary.NativeEndian.PutUint32(out[pos:], color)
		}
		pos += w.size
	}

	vp.interleaved = append(vp.interleaved, out...)
	idx := vp.VertexCount
	vp.VertexCount++
	if vp.visited == nil {
		vp.visited = make(map[uint32]uint32)
	}
	vp.visited[offset] = idx
	return idx, nil
}

// Buffer exposes one component stream of the interleaved array as a
// GPU-ready byte buffer. Mirrors the load package's own Buffer, which bundles
// raw bytes with a count and a stride for upload.
type Buffer struct {
	Data   []byte
	Count  uint32
	Stride uint32
}

// InterleavedBuffer returns the full interleaved vertex array as a
// single Buffer using the stride computed from the options layout.
func (vp *VertexPalette) InterleavedBuffer() Buffer {
	return Buffer{Data: vp.interleaved, Count: vp.VertexCount, Stride: uint32(vp.vertexStride)}
}
