// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import (
	"encoding/binary"
	"testing"
)

func buildFaceBody(name string, packedColor uint32) []byte {
	body := make([]byte, nameFieldSize+faceBodyWireSize)
	copy(body[0:nameFieldSize], []byte(name))
	binary.BigEndian.PutUint32(body[nameFieldSize:nameFieldSize+4], packedColor)
	return body
}

func TestHandleFaceInternsAndTagsStack(t *testing.T) {
	f := newTestFile()
	a := newAssembler(f)
	if err := handleFace(a, buildFaceBody("panel", 0x112233)); err != nil {
		t.Fatalf("handleFace: %v", err)
	}
	if f.root.childCount != 1 {
		t.Fatalf("expected the face to attach under root, got childCount=%d", f.root.childCount)
	}
	handle, ok := a.stack.nearestTag()
	if !ok {
		t.Fatalf("expected handleFace to push a face-handle tag")
	}
	face := f.Face(handle)
	if face == nil || face.PackedColor != 0x112233 {
		t.Fatalf("Face(handle) = %+v, want PackedColor 0x112233", face)
	}
}

func TestHandleVertexListAppendsIndices(t *testing.T) {
	f := newTestFile()
	rec := buildVertexColorRecord(1, 2, 3, 0)
	words, stride := buildVertexLayout(f.opts.vertexLayout)
	f.Palettes.Vertex = &VertexPalette{raw: rec, vertexStride: stride, layoutWords: words, visited: map[uint32]uint32{}}

	a := newAssembler(f)
	if err := handleFace(a, buildFaceBody("tri", 0)); err != nil {
		t.Fatalf("handleFace: %v", err)
	}

	body := make([]byte, 8)
	binary.BigEndian.PutUint32(body[0:4], 0) // offset 0 into the raw vertex palette
	binary.BigEndian.PutUint32(body[4:8], 0) // same vertex twice
	if err := handleVertexList(a, body); err != nil {
		t.Fatalf("handleVertexList: %v", err)
	}

	faceNode := f.root.firstChild
	if faceNode.vlist == nil || faceNode.vlist.Count != 2 {
		t.Fatalf("vlist.Count = %v, want 2", faceNode.vlist)
	}
	if len(faceNode.pairs) != 1 {
		t.Fatalf("expected the two references (same vertex, adjacent elements) to coalesce into one pair, got %d", len(faceNode.pairs))
	}
}

func TestHandleExternalRefLinksFlatList(t *testing.T) {
	f := newTestFile()
	a := newAssembler(f)
	body := make([]byte, 212)
	copy(body[0:200], []byte("other.flt"))
	if err := handleExternalRef(a, body); err != nil {
		t.Fatalf("handleExternalRef: %v", err)
	}
	if f.extrefHead == nil {
		t.Fatalf("extrefHead is nil after handleExternalRef")
	}
	if f.extrefHead.extref.Path != "other.flt" {
		t.Errorf("Path = %q, want %q", f.extrefHead.extref.Path, "other.flt")
	}
}

func TestHandlePaletteTextureAppendsEntry(t *testing.T) {
	f := newTestFile()
	a := newAssembler(f)
	body := make([]byte, 212)
	copy(body[0:200], []byte("brick.rgb"))
	binary.BigEndian.PutUint32(body[200:204], 5)
	if err := handlePaletteTexture(a, body); err != nil {
		t.Fatalf("handlePaletteTexture: %v", err)
	}
	if f.Palettes.Texture == nil || f.Palettes.Texture.Count != 1 {
		t.Fatalf("Texture palette = %+v, want one entry", f.Palettes.Texture)
	}
	entries := f.Palettes.Texture.Entries()
	if entries[0].Name != "brick.rgb" || entries[0].PatternIndex != 5 {
		t.Errorf("entry = %+v, want Name=brick.rgb PatternIndex=5", entries[0])
	}
}

func TestReadNameTrimsTrailingZeros(t *testing.T) {
	b := []byte{'h', 'i', 0, 0, 0, 0}
	if got := readName(b); got != "hi" {
		t.Errorf("readName = %q, want %q", got, "hi")
	}
}

func TestHieEnableBitsSuppressMatchingNodeKinds(t *testing.T) {
	f := newTestFile(HieEnable(false, false, false, false, false, false, false))
	a := newAssembler(f)

	if err := handleGroup(a, buildGroupBody("g")); err != nil {
		t.Fatalf("handleGroup: %v", err)
	}
	if err := handleObject(a, make([]byte, 16)); err != nil {
		t.Fatalf("handleObject: %v", err)
	}
	if err := handleMesh(a, make([]byte, 16)); err != nil {
		t.Fatalf("handleMesh: %v", err)
	}
	if err := handleLOD(a, make([]byte, 76)); err != nil {
		t.Fatalf("handleLOD: %v", err)
	}
	if err := handleSwitch(a, make([]byte, 20)); err != nil {
		t.Fatalf("handleSwitch: %v", err)
	}
	if err := handleExternalRef(a, make([]byte, 212)); err != nil {
		t.Fatalf("handleExternalRef: %v", err)
	}
	if err := handleFace(a, buildFaceBody("f", 0)); err != nil {
		t.Fatalf("handleFace: %v", err)
	}

	if f.root.childCount != 0 {
		t.Errorf("root.childCount = %d, want 0 with every hierarchy kind disabled", f.root.childCount)
	}
	if f.extrefHead != nil {
		t.Errorf("extrefHead = %v, want nil when hieExtrefs is disabled", f.extrefHead)
	}
}

func TestPaletteTextureDisabledSkipsCollection(t *testing.T) {
	f := newTestFile(PaletteTexture(false))
	a := newAssembler(f)
	body := make([]byte, 212)
	copy(body[0:200], []byte("brick.rgb"))
	if err := handlePaletteTexture(a, body); err != nil {
		t.Fatalf("handlePaletteTexture: %v", err)
	}
	if f.Palettes.Texture != nil {
		t.Errorf("Texture palette = %+v, want nil when PaletteTexture(false)", f.Palettes.Texture)
	}
}

func TestHandleLongIDRewritesCurrentNodeName(t *testing.T) {
	f := newTestFile()
	a := newAssembler(f)
	if err := handleGroup(a, buildGroupBody("short")); err != nil {
		t.Fatalf("handleGroup: %v", err)
	}
	body := append([]byte("a very long replacement name"), 0, 0, 0)
	if err := handleLongID(a, body); err != nil {
		t.Fatalf("handleLongID: %v", err)
	}
	if got := f.root.firstChild.name; got != "a very long replacement name" {
		t.Errorf("name after Long-ID = %q, want %q", got, "a very long replacement name")
	}
}

func TestHandleLongIDIgnoredWhenNamesOptedOut(t *testing.T) {
	f := newTestFile(KeepNames(false))
	a := newAssembler(f)
	if err := handleGroup(a, buildGroupBody("short")); err != nil {
		t.Fatalf("handleGroup: %v", err)
	}
	before := f.root.firstChild.name
	if err := handleLongID(a, []byte("replacement\x00")); err != nil {
		t.Fatalf("handleLongID: %v", err)
	}
	if got := f.root.firstChild.name; got != before {
		t.Errorf("name changed to %q despite KeepNames(false)", got)
	}
}
