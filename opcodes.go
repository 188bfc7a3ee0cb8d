// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import "strconv"

// opcodes.go is the opcode name table: data, not code. Record dispatch
// (dispatch.go) looks up a handler by integer opcode; this table only
// exists to give diagnostics and counters a human name instead of a
// bare number, the same separation handlers.go keeps between "what a
// record means" and "how many of them we saw."

// opMax is the highest opcode this core recognizes by name.
const opMax = 154

const (
	opHeader          = 1
	opGroup           = 2
	opObject          = 4
	opFace             = 5
	opPushLevel       = 10
	opPopLevel        = 11
	opPushSubface     = 19
	opPopSubface      = 20
	opPushExtension   = 21
	opPopExtension    = 22
	opComment         = 31
	opLongID          = 33
	opLOD             = 73
	opVertexList      = 72
	opExternalRef     = 63
	opPaletteTexture  = 64
	opPaletteVertex   = 67
	opMesh            = 84
	opLocalVertexPool = 85
	opMeshPrimitive   = 86
	opSwitch          = 96
)

// opcodeNames gives the small subset of opcodes this core acts on a
// readable name for logging; unlisted opcodes log as "opcode N".
var opcodeNames = map[uint16]string{
	opHeader:          "header",
	opGroup:           "group",
	opObject:          "object",
	opFace:            "face",
	opPushLevel:       "push-level",
	opPopLevel:        "pop-level",
	opPushSubface:     "push-subface",
	opPopSubface:      "pop-subface",
	opPushExtension:   "push-extension",
	opPopExtension:    "pop-extension",
	opComment:         "comment",
	opLongID:          "long-id",
	opVertexList:      "vertex-list",
	opLOD:             "level-of-detail",
	opExternalRef:     "external-reference",
	opPaletteTexture:  "texture-palette",
	opPaletteVertex:   "vertex-palette",
	opMesh:            "mesh",
	opLocalVertexPool: "local-vertex-pool",
	opMeshPrimitive:   "mesh-primitive",
	opSwitch:          "switch",
}

// opcodeName returns a human-readable name for op, falling back to a
// numbered placeholder for anything not in opcodeNames.
func opcodeName(op uint16) string {
	if n, ok := opcodeNames[op]; ok {
		return n
	}
	return "opcode " + strconv.Itoa(int(op))
}
