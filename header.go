// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

// header.go decodes opcode 1, the OpenFlight database header. Field
// layout is taken from original_source/flt/flt.h's flt_header struct.

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// MaxFormatRevision is the highest format_rev this core understands.
// Files declaring a newer revision fail with ErrVersionUnsupported.
const MaxFormatRevision = 1640

// headerBodySize is the wire size, in bytes, of the header record body
// that follows the 4-byte (opcode,length) record header.
const headerBodySize = 324

// Header is the large fixed-layout database descriptor.
// Multi-byte fields are big-endian on disk; decodeHeader leaves them in
// host order.
type Header struct {
	Ascii    [8]byte
	FormatRevision int32
	EditRevision   int32
	DateTime       [32]byte // newlines normalized to spaces on decode

	NextGroupNodeID  int16
	NextLODNodeID    int16
	NextObjectNodeID int16
	NextFaceNodeID   int16

	UnitMultiplier   int16
	VertexCoordUnits int8
	TexWhiteNewFaces int8

	Flags int32

	_ [6]int32 // reserved0

	ProjectionType int32

	_ [7]int32 // reserved1

	NextDOFNodeID int16
	StorageType   int16
	DatabaseOrigin int32

	SWDatabaseX float64
	SWDatabaseY float64
	DDatabaseX  float64
	DDatabaseY  float64

	NextSoundNodeID int16
	NextPathNodeID  int16

	_ [2]int32 // reserved2

	NextClipNodeID   int16
	NextTextNodeID   int16
	NextBSPNodeID    int16
	NextSwitchNodeID int16

	_ int32 // reserved3

	SWCornerLat float64
	SWCornerLon float64
	NECornerLat float64
	NECornerLon float64
	OriginLat   float64
	OriginLon   float64
	LBTUpperLat float64
	LBTLowerLat float64

	NextLightSourceNodeID int16
	NextLightPointNodeID  int16
	NextRoadNodeID        int16
	NextCATNodeID         int16

	_ [4]int16 // reserved4

	EarthEllipsoidModel int32
	NextAdaptiveNodeID  int16
	NextCurveNodeID     int16
	UTMZone             int16

	// Ellipsoid radii, additional flags, and comment/light-source counts
	// that follow in later format revisions; kept as an opaque byte range
	// rather than decoded field by field.
	_ [50]byte // reserved5
}

// headerSwapDescriptor applies the right-sized byte reversal to each
// multi-byte numeric field of Header's wire image, skipping the fixed
// byte-array fields (Ascii, DateTime) which need no swapping.
var headerSwapDescriptor = []swapField{
	{8, w32, 2},       // FormatRevision, EditRevision
	{48, w16, 4},      // Next{Group,LOD,Object,Face}NodeID
	{56, w16, 1},      // UnitMultiplier
	// VertexCoordUnits, TexWhiteNewFaces are single bytes: no swap.
	{60, w32, 1 + 6},  // Flags + reserved0[6]
	{88, w32, 1 + 7},  // ProjectionType + reserved1[7]
	{120, w16, 2},     // NextDOFNodeID, StorageType
	{124, w32, 1},     // DatabaseOrigin
	{128, w64, 4},     // SWDatabaseX/Y, DDatabaseX/Y
	{160, w16, 2},     // NextSoundNodeID, NextPathNodeID
	{164, w32, 2},     // reserved2[2]
	{172, w16, 4},     // NextClip/Text/BSP/SwitchNodeID
	{180, w32, 1},     // reserved3
	{184, w64, 8},     // SWCornerLat..LBTLowerLat
	{248, w16, 4},     // NextLightSource/LightPoint/Road/CATNodeID
	{256, w16, 4},     // reserved4[4]
	{264, w32, 1},     // EarthEllipsoidModel
	{268, w16, 3},     // NextAdaptiveNodeID, NextCurveNodeID, UTMZone
}

// decodeHeader reads and byte-swaps a header record body into h. body
// must be exactly headerBodySize bytes; the caller clamps/pads to that
// length from the record's declared length so a handler never reads
// past its own record.
func decodeHeader(body []byte, h *Header) error {
	buf := append([]byte(nil), body...)
	applySwaps(buf, headerSwapDescriptor)
	if err := binary.Read(bytes.NewReader(buf), binary.NativeEndian, h); err != nil {
		return err
	}
	for i, c := range h.DateTime {
		if c == '\n' {
			h.DateTime[i] = ' '
		}
	}
	return nil
}

// DateTimeString returns the decoded, NUL-trimmed date-time field.
func (h *Header) DateTimeString() string {
	return strings.TrimRight(string(h.DateTime[:]), "\x00")
}

// AsciiString returns the decoded, NUL-trimmed 8-byte ascii identifier
// ("flight" zero padded) at the start of the header.
func (h *Header) AsciiString() string {
	return strings.TrimRight(string(h.Ascii[:]), "\x00")
}
