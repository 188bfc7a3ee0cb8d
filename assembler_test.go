// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import "testing"

func TestAssemblerParentDefaultsToRoot(t *testing.T) {
	f := newTestFile()
	a := newAssembler(f)
	if got := a.parent(); got != f.root {
		t.Errorf("parent() before any push = %v, want root %v", got, f.root)
	}
}

func TestAssemblerPushBracketChangesParent(t *testing.T) {
	f := newTestFile()
	a := newAssembler(f)
	group := a.addNode(&node{kind: KindGroup, name: "g"})
	a.pushBracket(bracketLevel)
	if got := a.parent(); got != group {
		t.Errorf("parent() after push = %v, want %v", got, group)
	}
	child := a.addNode(&node{kind: KindObject, name: "o"})
	if child.nextSibling != nil || group.firstChild != child {
		t.Errorf("child was not linked under the pushed group")
	}
	if err := a.popBracket(bracketLevel); err != nil {
		t.Fatalf("popBracket: %v", err)
	}
	if got := a.parent(); got != f.root {
		t.Errorf("parent() after pop = %v, want root %v", got, f.root)
	}
}

func TestAssemblerLinkExtrefThreadsMultipleNodes(t *testing.T) {
	f := newTestFile()
	a := newAssembler(f)
	n1 := &node{kind: KindExternalReference, extref: &ExternalRefNode{Path: "a.flt"}}
	n2 := &node{kind: KindExternalReference, extref: &ExternalRefNode{Path: "b.flt"}}
	a.linkExtref(n1)
	a.linkExtref(n2)

	if f.extrefHead != n1 {
		t.Fatalf("extrefHead = %v, want %v", f.extrefHead, n1)
	}
	if n1.extref.nextExtref != n2 {
		t.Errorf("n1.nextExtref = %v, want %v", n1.extref.nextExtref, n2)
	}
}
