// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

// hierarchy.go is the public read-only view over the internal scene
// graph: node.go's node type stays unexported so the assembler and
// release code can hold bare pointers into the tree, while callers get
// a thin wrapper exposing only what's safe to read after Load returns.

// Node is a read-only handle onto one scene-graph node.
type Node struct{ n *node }

// Root returns f's synthetic top-level KindBase node, the parent of every
// node Load created at the outermost nesting level.
func (f *File) Root() Node { return Node{f.root} }

// Kind reports which of the node variants this Node holds.
func (n Node) Kind() NodeKind { return n.n.kind }

// Name returns the node's name, or "" if it has none or KeepNames was
// disabled.
func (n Node) Name() string { return n.n.name }

// Children returns n's children in document order.
func (n Node) Children() []Node {
	out := make([]Node, 0, n.n.childCount)
	for c := n.n.firstChild; c != nil; c = c.nextSibling {
		out = append(out, Node{c})
	}
	return out
}

// Face returns the decoded face payload, valid when Kind() == KindFace.
func (n Node) Face() *FaceNodeData { return n.n.face }

// Group returns the decoded group payload, valid when Kind() == KindGroup.
func (n Node) Group() *GroupData { return n.n.group }

// Object returns the decoded object payload, valid when Kind() == KindObject.
func (n Node) Object() *ObjectData { return n.n.object }

// Mesh returns the decoded mesh payload, valid when Kind() == KindMesh.
func (n Node) Mesh() *MeshData { return n.n.mesh }

// LOD returns the decoded level-of-detail payload, valid when
// Kind() == KindLOD.
func (n Node) LOD() *LODData { return n.n.lod }

// Switch returns the decoded switch payload, valid when
// Kind() == KindSwitch.
func (n Node) Switch() *SwitchData { return n.n.swtch }

// VertexList returns the decoded vertex-list payload, valid when
// Kind() == KindVertexList.
func (n Node) VertexList() *VertexListData { return n.n.vlist }

// ExternalRef returns the external-reference payload, valid when
// Kind() == KindExternalReference.
func (n Node) ExternalRef() *ExternalRefNode { return n.n.extref }

// Walk visits n and every descendant, depth-first, calling visit once
// per node in document order.
func Walk(n Node, visit func(Node)) {
	visit(n)
	for _, c := range n.Children() {
		Walk(c, visit)
	}
}
