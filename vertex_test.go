// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import (
	"encoding/binary"
	"math"
	"testing"
)

// buildVertexColorRecord writes a 36-byte vertex-color sub-record (opcode
// 68) with the given position and packed color, matching the byte layout
// sourceLayoutFor describes for that opcode.
func buildVertexColorRecord(x, y, z float64, color uint32) []byte {
	rec := make([]byte, 36)
	binary.BigEndian.PutUint16(rec[0:2], opVertexColor)
	binary.BigEndian.PutUint64(rec[8:16], math.Float64bits(x))
	binary.BigEndian.PutUint64(rec[16:24], math.Float64bits(y))
	binary.BigEndian.PutUint64(rec[24:32], math.Float64bits(z))
	binary.BigEndian.PutUint32(rec[32:36], color)
	return rec
}

func TestBuildVertexLayoutStride(t *testing.T) {
	words, stride := buildVertexLayout([]VertexLayout{LayoutPositionF32, LayoutNormal, LayoutUV, LayoutColor})
	if stride != 12+12+8+4 {
		t.Errorf("stride = %d, want %d", stride, 12+12+8+4)
	}
	if len(words) != 4 {
		t.Errorf("len(words) = %d, want 4", len(words))
	}
}

func TestEncodeVertexPositionAndColor(t *testing.T) {
	rec := buildVertexColorRecord(1.5, -2.5, 3.0, 0xaabbccdd)
	vp := &VertexPalette{raw: rec}
	words, stride := buildVertexLayout([]VertexLayout{LayoutPositionF32, LayoutColor})

	idx, err := encodeVertex(vp, words, stride, 0)
	if err != nil {
		t.Fatalf("encodeVertex: %v", err)
	}
	if idx != 0 {
		t.Errorf("first vertex index = %d, want 0", idx)
	}
	if vp.VertexCount != 1 {
		t.Errorf("VertexCount = %d, want 1", vp.VertexCount)
	}

	out := vp.interleaved
	px := math.Float32frombits(binary.NativeEndian.Uint32(out[0:4]))
	if float64(px) != 1.5 {
		t.Errorf("decoded x = %v, want 1.5", px)
	}
	color := binary.NativeEndian.Uint32(out[12:16])
	if color != 0xaabbccdd {
		t.Errorf("decoded color = %#x, want 0xaabbccdd", color)
	}
}

func TestEncodeVertexCachesRepeatedOffset(t *testing.T) {
	rec := buildVertexColorRecord(1, 2, 3, 0)
	vp := &VertexPalette{raw: rec, visited: map[uint32]uint32{}}
	words, stride := buildVertexLayout([]VertexLayout{LayoutPositionF64})

	first, err := encodeVertex(vp, words, stride, 0)
	if err != nil {
		t.Fatalf("encodeVertex: %v", err)
	}
	second, err := encodeVertex(vp, words, stride, 0)
	if err != nil {
		t.Fatalf("encodeVertex (cached): %v", err)
	}
	if first != second {
		t.Errorf("second encode of same offset returned %d, want cached %d", second, first)
	}
	if vp.VertexCount != 1 {
		t.Errorf("VertexCount = %d after repeated offset, want 1", vp.VertexCount)
	}
}

func TestEncodeVertexRejectsTruncatedRecord(t *testing.T) {
	vp := &VertexPalette{raw: []byte{0, byte(opVertexColor)}}
	words, stride := buildVertexLayout([]VertexLayout{LayoutPositionF64})
	if _, err := encodeVertex(vp, words, stride, 0); err == nil {
		t.Errorf("expected an error decoding a truncated vertex record")
	}
}
