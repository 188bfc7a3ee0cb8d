// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoadConfigAppliesScalarFields(t *testing.T) {
	doc := []byte(`
keepHeader: false
resolveExternalRefs: true
stackCapacity: 64
`)
	opt, err := LoadConfig(doc)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	o := newOptions(opt)
	if o.keepHeader {
		t.Errorf("keepHeader = true, want false")
	}
	if !o.resolveExtrefs {
		t.Errorf("resolveExtrefs = false, want true")
	}
	if o.stackCapacity != 64 {
		t.Errorf("stackCapacity = %d, want 64", o.stackCapacity)
	}
	// Fields absent from the document keep their compiled-in default.
	if !o.keepNames {
		t.Errorf("keepNames = false, want default true when unset in the document")
	}
}

func TestLoadConfigAppliesVertexLayout(t *testing.T) {
	doc := []byte(`
vertexLayout:
  - position64
  - color
`)
	opt, err := LoadConfig(doc)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	o := newOptions(opt)
	if len(o.vertexLayout) != 2 || o.vertexLayout[0] != LayoutPositionF64 || o.vertexLayout[1] != LayoutColor {
		t.Errorf("vertexLayout = %v, want [%v %v]", o.vertexLayout, LayoutPositionF64, LayoutColor)
	}
}

func TestLoadConfigRejectsUnknownVertexLayoutName(t *testing.T) {
	doc := []byte(`
vertexLayout:
  - bogus
`)
	_, err := LoadConfig(doc)
	if err == nil {
		t.Fatalf("expected an error for an unsupported vertex layout name")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q does not mention the offending name", err.Error())
	}
}

func TestLoadConfigHierarchyFlags(t *testing.T) {
	doc := []byte(`
hierarchy:
  faces: false
  switches: false
`)
	opt, err := LoadConfig(doc)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	o := newOptions(opt)
	if o.hieFaces {
		t.Errorf("hieFaces = true, want false")
	}
	if o.hieSwitches {
		t.Errorf("hieSwitches = true, want false")
	}
	if !o.hieGroups {
		t.Errorf("hieGroups = false, want default true when unset")
	}
}

func TestLoadConfigFileReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/opts.yaml"
	if err := os.WriteFile(path, []byte("keepNames: false\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	opt, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	o := newOptions(opt)
	if o.keepNames {
		t.Errorf("keepNames = true, want false")
	}
}

func TestLoadConfigFileMissingPathErrors(t *testing.T) {
	if _, err := LoadConfigFile("/does/not/exist.yaml"); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestLoadConfigHierarchyFlagsChangeParsedTree(t *testing.T) {
	doc := []byte("hierarchy:\n  faces: false\n")
	opt, err := LoadConfig(doc)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	f := newTestFile(opt)
	var buf bytes.Buffer
	appendRecord(&buf, opHeader, buildHeaderBody(1640, 0))
	appendRecord(&buf, opFace, buildFaceBody("panel", 0x112233))
	if err := runLoad(f, &buf); err != nil {
		t.Fatalf("runLoad: %v", err)
	}
	if f.root.childCount != 0 {
		t.Errorf("root.childCount = %d, want 0 with hierarchy.faces: false", f.root.childCount)
	}
}
