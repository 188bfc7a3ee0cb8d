// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import (
	"bytes"
	"encoding/binary"
	"math"
)

// handlers.go decodes one record body per supported opcode and links
// the resulting node into the scene graph through the assembler.
// Unsupported opcodes never reach here: dispatch.go's table lookup
// falls through to a length-based skip before a handler is ever
// called.

const nameFieldSize = 8

// readName trims the trailing NUL padding from a fixed-size ascii name
// field, matching the on-disk convention of a zero-padded name rather
// than an explicit length.
func readName(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}

func handleGroup(a *assembler, body []byte) error {
	if !a.file.opts.hieGroups {
		return nil
	}
	n := &node{kind: KindGroup, group: &GroupData{}}
	if len(body) >= 28 {
		n.name = readName(body[0:8])
		n.group.Priority = int16(be16(body[10:12]))
		n.group.Flags = be32(body[12:16])
		n.group.LoopCount = int32(be32(body[16:20]))
		n.group.LoopDuration = float32FromBE(body[20:24])
		n.group.LastFrameDur = float32FromBE(body[24:28])
	}
	a.addNode(n)
	return nil
}

func handleObject(a *assembler, body []byte) error {
	if !a.file.opts.hieObjects {
		return nil
	}
	n := &node{kind: KindObject, object: &ObjectData{}}
	if len(body) >= 16 {
		n.name = readName(body[0:8])
		n.object.Flags = be32(body[8:12])
		n.object.RelativePrio = int16(be16(body[12:14]))
		n.object.Transparency = be16(body[14:16])
	}
	a.addNode(n)
	return nil
}

func handleMesh(a *assembler, body []byte) error {
	if !a.file.opts.hieMeshes {
		return nil
	}
	n := &node{kind: KindMesh, mesh: &MeshData{}}
	if len(body) >= 16 {
		n.name = readName(body[0:8])
		n.mesh.Flags = be32(body[8:12])
		n.mesh.Transparency = be16(body[12:14])
	}
	a.addNode(n)
	return nil
}

func handleLocalVertexPoolOrPrimitive(a *assembler) error {
	if a.cur != nil && a.cur.kind == KindMesh {
		a.cur.mesh.PrimCount++
	}
	return nil
}

func handleLOD(a *assembler, body []byte) error {
	if !a.file.opts.hieLODs {
		return nil
	}
	n := &node{kind: KindLOD, lod: &LODData{}}
	if len(body) >= 76 {
		n.name = readName(body[0:8])
		n.lod.SwitchInDistance = float64FromBE(body[12:20])
		n.lod.SwitchOutDistance = float64FromBE(body[20:28])
		n.lod.CenterX = float64FromBE(body[36:44])
		n.lod.CenterY = float64FromBE(body[44:52])
		n.lod.CenterZ = float64FromBE(body[52:60])
		n.lod.TransitionRange = float64FromBE(body[60:68])
		n.lod.SignificantSize = float64FromBE(body[68:76])
	}
	a.addNode(n)
	return nil
}

func handleSwitch(a *assembler, body []byte) error {
	if !a.file.opts.hieSwitches {
		return nil
	}
	n := &node{kind: KindSwitch, swtch: &SwitchData{}}
	if len(body) >= 20 {
		n.name = readName(body[0:8])
		n.swtch.CurrentMask = int32(be32(body[12:16]))
		numMasks := int(be32(body[16:20]))
		wordsPerMask := 0
		if len(body) >= 24 {
			wordsPerMask = int(be32(body[20:24]))
		}
		off := 24
		for i := 0; i < numMasks && wordsPerMask > 0; i++ {
			if off+wordsPerMask*4 > len(body) {
				break
			}
			words := make([]uint32, wordsPerMask)
			for w := 0; w < wordsPerMask; w++ {
				words[w] = be32(body[off : off+4])
				off += 4
			}
			n.swtch.MaskWords = append(n.swtch.MaskWords, words)
		}
	}
	a.addNode(n)
	return nil
}

func handleFace(a *assembler, body []byte) error {
	if !a.file.opts.hieFaces {
		return nil
	}
	n := &node{kind: KindFace, face: &FaceNodeData{}}
	f := &Face{}
	if len(body) >= nameFieldSize+faceBodyWireSize {
		name := readName(body[0:nameFieldSize])
		var fb faceBody
		if err := decodeFaceBody(body[nameFieldSize:nameFieldSize+faceBodyWireSize], &fb); err != nil {
			return err
		}
		f.PackedColor = fb.PackedColor
		f.BaseTexture = fb.BaseTexture
		f.DetailTexture = fb.DetailTexture
		f.MaterialIndex = fb.MaterialIndex
		f.ShaderIndex = fb.ShaderIndex
		f.Flags = fb.Flags
		f.BillboardMode = fb.BillboardMode
		if a.file.opts.keepNames {
			f.Name = name
			n.name = name
		}
	}
	n.face.Handle = a.file.faces.intern(f)
	a.addNode(n)
	a.stack.pushTag(n.face.Handle)
	return nil
}

func handleVertexList(a *assembler, body []byte) error {
	vp := a.file.Palettes.Vertex
	if vp == nil || a.cur == nil {
		return nil
	}
	words, stride := vp.layoutWords, vp.vertexStride
	handle, _ := a.stack.nearestTag()
	count := len(body) / 4
	a.cur.vlist = &VertexListData{Count: count}
	for i := 0; i < count; i++ {
		offset := be32(body[i*4 : i*4+4])
		idx, err := encodeVertex(vp, words, stride, offset)
		if err != nil {
			return err
		}
		elemIdx := a.file.indices.Append(packIndexElement(handle, idx))
		a.cur.appendPair(elemIdx, elemIdx)
	}
	return nil
}

func handleExternalRef(a *assembler, body []byte) error {
	if !a.file.opts.hieExtrefs {
		return nil
	}
	const pathFieldSize = 200
	n := &node{kind: KindExternalReference, extref: &ExternalRefNode{}}
	if len(body) >= pathFieldSize+12 {
		n.extref.Path = readName(body[0:pathFieldSize])
		n.extref.Flags = be32(body[pathFieldSize+4 : pathFieldSize+8])
		n.extref.ViewAsBoundingBox = int16(be16(body[pathFieldSize+8 : pathFieldSize+10]))
	}
	a.addNode(n)
	a.linkExtref(n)
	if a.file.opts.callbackExtref != nil {
		a.file.opts.callbackExtref(n.extref)
	}
	return nil
}

func handlePaletteTexture(a *assembler, body []byte) error {
	if !a.file.opts.paletteTexture {
		return nil
	}
	const nameSize = 200
	if len(body) < nameSize+12 {
		return nil
	}
	e := &TextureEntry{
		Name:         readName(body[0:nameSize]),
		PatternIndex: int32(be32(body[nameSize : nameSize+4])),
		LocationX:    int32(be32(body[nameSize+4 : nameSize+8])),
		LocationY:    int32(be32(body[nameSize+8 : nameSize+12])),
	}
	if a.file.Palettes.Texture == nil {
		a.file.Palettes.Texture = &TexturePalette{}
	}
	a.file.Palettes.Texture.append(e)
	if a.file.opts.callbackTexture != nil {
		a.file.opts.callbackTexture(*e)
	}
	return nil
}

// handleLongID rewrites the name of the most recently created node with
// the record's null-terminated string, up to 512 bytes. Skipped entirely
// when KeepNames is off, matching readName's treatment of the fixed-size
// name fields elsewhere.
func handleLongID(a *assembler, body []byte) error {
	if !a.file.opts.keepNames || a.cur == nil {
		return nil
	}
	a.cur.name = longIDString(body)
	return nil
}

const longIDMaxLen = 512

func longIDString(b []byte) string {
	if end := bytes.IndexByte(b, 0); end >= 0 {
		b = b[:end]
	}
	if len(b) > longIDMaxLen {
		b = b[:longIDMaxLen]
	}
	return string(b)
}

func float32FromBE(b []byte) float32 {
	buf := append([]byte(nil), b...)
	swap32(buf)
	return math.Float32frombits(binary.NativeEndian.Uint32(buf))
}

func float64FromBE(b []byte) float64 {
	buf := append([]byte(nil), b...)
	swap64(buf)
	return math.Float64frombits(binary.NativeEndian.Uint64(buf))
}
