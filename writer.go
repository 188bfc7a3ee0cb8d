// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// writer.go encodes a File's header and scene-graph skeleton back to
// OpenFlight's binary record stream: enough to round-trip the
// hierarchy shape (groups, objects, LODs, external references, and
// the push/pop nesting between them) that Load built. Face,
// vertex-list, mesh and switch nodes are not written, and neither are
// their children; no palette records (texture or vertex) are written.

// Write serializes f's header and scene graph to w as an OpenFlight
// record stream.
func Write(w io.Writer, f *File) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	if err := writeHeader(bw, f); err != nil {
		return err
	}
	if f.root != nil {
		for c := f.root.firstChild; c != nil; c = c.nextSibling {
			if err := writeNode(bw, c); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeRecordHeader(w *bufio.Writer, opcode uint16, bodyLen int) error {
	var hdr [4]byte
	binary.BigEndian.PutUint16(hdr[0:2], opcode)
	binary.BigEndian.PutUint16(hdr[2:4], uint16(bodyLen+recordHeaderSize))
	_, err := w.Write(hdr[:])
	return err
}

func writeHeader(w *bufio.Writer, f *File) error {
	body := make([]byte, headerBodySize)
	if f.Header != nil {
		copy(body[0:8], f.Header.Ascii[:])
		binary.BigEndian.PutUint32(body[8:12], uint32(f.Header.FormatRevision))
		binary.BigEndian.PutUint32(body[12:16], uint32(f.Header.EditRevision))
		copy(body[16:48], f.Header.DateTime[:])
	} else {
		copy(body[0:8], []byte("flight\x00\x00"))
		binary.BigEndian.PutUint32(body[8:12], uint32(MaxFormatRevision))
	}
	if err := writeRecordHeader(w, opHeader, len(body)); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

func writeNode(w *bufio.Writer, n *node) error {
	switch n.kind {
	case KindGroup:
		if err := writeGroupRecord(w, n); err != nil {
			return err
		}
	case KindObject:
		if err := writeObjectRecord(w, n); err != nil {
			return err
		}
	case KindLOD:
		if err := writeLODRecord(w, n); err != nil {
			return err
		}
	case KindExternalReference:
		if err := writeExtrefRecord(w, n); err != nil {
			return err
		}
	default:
		// Face, VertexList, Mesh, Switch bodies are reconstructible from
		// their node payloads but are not round-tripped by this writer
		// revision; they are skipped rather than emitted malformed.
		return nil
	}

	if n.firstChild == nil {
		return nil
	}
	if err := writeRecordHeader(w, opPushLevel, 0); err != nil {
		return err
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if err := writeNode(w, c); err != nil {
			return err
		}
	}
	return writeRecordHeader(w, opPopLevel, 0)
}

func writeGroupRecord(w *bufio.Writer, n *node) error {
	body := make([]byte, 28)
	copy(body[0:8], []byte(n.name))
	if n.group != nil {
		binary.BigEndian.PutUint16(body[10:12], uint16(n.group.Priority))
		binary.BigEndian.PutUint32(body[12:16], n.group.Flags)
		binary.BigEndian.PutUint32(body[16:20], uint32(n.group.LoopCount))
		binary.BigEndian.PutUint32(body[20:24], math.Float32bits(n.group.LoopDuration))
		binary.BigEndian.PutUint32(body[24:28], math.Float32bits(n.group.LastFrameDur))
	}
	if err := writeRecordHeader(w, opGroup, len(body)); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

func writeObjectRecord(w *bufio.Writer, n *node) error {
	body := make([]byte, 16)
	copy(body[0:8], []byte(n.name))
	if n.object != nil {
		binary.BigEndian.PutUint32(body[8:12], n.object.Flags)
		binary.BigEndian.PutUint16(body[12:14], uint16(n.object.RelativePrio))
		binary.BigEndian.PutUint16(body[14:16], n.object.Transparency)
	}
	if err := writeRecordHeader(w, opObject, len(body)); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

func writeLODRecord(w *bufio.Writer, n *node) error {
	body := make([]byte, 76)
	copy(body[0:8], []byte(n.name))
	if n.lod != nil {
		binary.BigEndian.PutUint64(body[12:20], math.Float64bits(n.lod.SwitchInDistance))
		binary.BigEndian.PutUint64(body[20:28], math.Float64bits(n.lod.SwitchOutDistance))
		binary.BigEndian.PutUint64(body[36:44], math.Float64bits(n.lod.CenterX))
		binary.BigEndian.PutUint64(body[44:52], math.Float64bits(n.lod.CenterY))
		binary.BigEndian.PutUint64(body[52:60], math.Float64bits(n.lod.CenterZ))
		binary.BigEndian.PutUint64(body[60:68], math.Float64bits(n.lod.TransitionRange))
		binary.BigEndian.PutUint64(body[68:76], math.Float64bits(n.lod.SignificantSize))
	}
	if err := writeRecordHeader(w, opLOD, len(body)); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

func writeExtrefRecord(w *bufio.Writer, n *node) error {
	const pathFieldSize = 200
	body := make([]byte, pathFieldSize+12)
	if n.extref != nil {
		copy(body[0:pathFieldSize], []byte(n.extref.Path))
		binary.BigEndian.PutUint32(body[pathFieldSize+4:pathFieldSize+8], n.extref.Flags)
		binary.BigEndian.PutUint16(body[pathFieldSize+8:pathFieldSize+10], uint16(n.extref.ViewAsBoundingBox))
	}
	if err := writeRecordHeader(w, opExternalRef, len(body)); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}
