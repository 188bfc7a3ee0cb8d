// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import (
	"bufio"
	"fmt"
	"io"
)

// recordHandler decodes one record body and links whatever node it
// produces into the scene graph via a. Handlers never see the 4-byte
// (opcode, length) prefix — dispatch.go strips that before calling in.
type recordHandler func(a *assembler, body []byte) error

// handlerTable maps opcode to the function that understands it.
// Opcodes absent from this table are still counted, just not
// interpreted — dispatch falls through to a plain skip for them.
var handlerTable = map[uint16]recordHandler{
	opGroup:       handleGroup,
	opObject:      handleObject,
	opFace:        handleFace,
	opMesh:        handleMesh,
	opLOD:         handleLOD,
	opSwitch:      handleSwitch,
	opVertexList:  handleVertexList,
	opExternalRef: handleExternalRef,
	opPaletteTexture: handlePaletteTexture,
	opLongID:      handleLongID,
}

const recordHeaderSize = 4

// runLoad drives the whole record-stream scan for one File: read a
// 4-byte (opcode, length) header, read exactly length-4 more bytes as
// the body, dispatch, repeat until EOF.
func runLoad(f *File, r io.Reader) error {
	br := bufio.NewReaderSize(r, 64*1024)
	a := newAssembler(f)

	for {
		var hdr [recordHeaderSize]byte
		if _, err := io.ReadFull(br, hdr[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			if err == io.ErrUnexpectedEOF {
				return nil
			}
			return err
		}
		opcode := be16(hdr[0:2])
		length := be16(hdr[2:4])
		if length < recordHeaderSize {
			return fmt.Errorf("flt: record declares length %d shorter than its own header", length)
		}
		bodyLen := int(length) - recordHeaderSize

		if int(opcode) <= opMax {
			f.opcodeCounts[opcode]++
		}

		switch opcode {
		case opHeader:
			if err := handleHeaderRecord(f, br, bodyLen); err != nil {
				return err
			}
			continue
		case opPaletteVertex:
			if err := handlePaletteVertexRecord(f, br, bodyLen); err != nil {
				return err
			}
			continue
		case opPushLevel:
			if err := skipBody(br, bodyLen); err != nil {
				return err
			}
			a.pushBracket(bracketLevel)
			continue
		case opPopLevel:
			if err := skipBody(br, bodyLen); err != nil {
				return err
			}
			if err := a.popBracket(bracketLevel); err != nil {
				return err
			}
			continue
		case opPushSubface:
			if err := skipBody(br, bodyLen); err != nil {
				return err
			}
			a.pushBracket(bracketSubface)
			continue
		case opPopSubface:
			if err := skipBody(br, bodyLen); err != nil {
				return err
			}
			if err := a.popBracket(bracketSubface); err != nil {
				return err
			}
			continue
		case opPushExtension:
			if err := skipBody(br, bodyLen); err != nil {
				return err
			}
			a.pushBracket(bracketExtension)
			continue
		case opPopExtension:
			if err := skipBody(br, bodyLen); err != nil {
				return err
			}
			if err := a.popBracket(bracketExtension); err != nil {
				return err
			}
			continue
		case opLocalVertexPool, opMeshPrimitive:
			if err := skipBody(br, bodyLen); err != nil {
				return err
			}
			handleLocalVertexPoolOrPrimitive(a)
			continue
		}

		h, ok := handlerTable[opcode]
		if !ok {
			if err := skipBody(br, bodyLen); err != nil {
				return err
			}
			continue
		}
		body := make([]byte, bodyLen)
		if bodyLen > 0 {
			if _, err := io.ReadFull(br, body); err != nil {
				return err
			}
		}
		if err := h(a, body); err != nil {
			return fmt.Errorf("flt: %s record: %w", opcodeName(opcode), err)
		}
	}
}

func skipBody(br *bufio.Reader, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := br.Discard(n)
	return err
}

// handleHeaderRecord applies the version gate before anything else is
// decoded, and — if KeepHeader is set — decodes the full fixed-layout
// Header struct.
func handleHeaderRecord(f *File, br *bufio.Reader, bodyLen int) error {
	body := make([]byte, bodyLen)
	if bodyLen > 0 {
		if _, err := io.ReadFull(br, body); err != nil {
			return err
		}
	}
	if len(body) < 12 {
		return fmt.Errorf("flt: header record too short to contain format_rev")
	}
	formatRev := be32(body[8:12])
	if formatRev > MaxFormatRevision {
		return ErrVersionUnsupported
	}
	if !f.opts.keepHeader {
		return nil
	}
	padded := body
	if len(padded) < headerBodySize {
		padded = append(append([]byte(nil), body...), make([]byte, headerBodySize-len(body))...)
	} else if len(padded) > headerBodySize {
		padded = padded[:headerBodySize]
	}
	var h Header
	if err := decodeHeader(padded, &h); err != nil {
		return err
	}
	f.Header = &h
	return nil
}

// handlePaletteVertexRecord reads the palette's declared byte span
// straight into VertexPalette.raw: the sub-records that follow keep
// their own (opcode, component) framing, decoded lazily by vertex.go
// as each is first referenced from a Vertex-List, so they are captured
// here verbatim rather than dispatched one at a time.
func handlePaletteVertexRecord(f *File, br *bufio.Reader, bodyLen int) error {
	body := make([]byte, bodyLen)
	if bodyLen > 0 {
		if _, err := io.ReadFull(br, body); err != nil {
			return err
		}
	}
	if !f.opts.paletteVertex || len(body) < 4 {
		return nil
	}
	totalSize := int(be32(body[0:4]))
	raw := make([]byte, totalSize)
	if totalSize > 0 {
		if _, err := io.ReadFull(br, raw); err != nil {
			return err
		}
	}
	words, stride := buildVertexLayout(f.opts.vertexLayout)
	f.Palettes.Vertex = &VertexPalette{
		raw:          raw,
		vertexStride: stride,
		layoutWords:  words,
		visited:      make(map[uint32]uint32),
	}
	return nil
}
