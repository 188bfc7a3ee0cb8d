// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

// config.go reads a textual configuration describing which options a
// Load call should use, the same string-keyed yaml-to-struct approach
// the asset loaders use for their own descriptor files: a small
// yaml-tagged struct, a handful of name-to-value maps for the fields
// that are really enums spelled as strings, and a function that turns
// the parsed struct into the package's real API.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// vertexLayoutNames maps a config file's layout component names to the
// VertexLayout values VertexOutputLayout accepts.
var vertexLayoutNames = map[string]VertexLayout{
	"position64": LayoutPositionF64,
	"position32": LayoutPositionF32,
	"normal":     LayoutNormal,
	"uv":         LayoutUV,
	"color":      LayoutColor,
}

// loadConfig is the yaml shape of a configuration document: every field
// is optional, and an absent field leaves the corresponding default
// option untouched.
type loadConfig struct {
	KeepHeader *bool `yaml:"keepHeader"`
	KeepNames  *bool `yaml:"keepNames"`

	PaletteVertex  *bool    `yaml:"paletteVertex"`
	VertexLayout   []string `yaml:"vertexLayout"`
	PaletteTexture *bool    `yaml:"paletteTexture"`

	Hierarchy struct {
		Groups   *bool `yaml:"groups"`
		Objects  *bool `yaml:"objects"`
		Meshes   *bool `yaml:"meshes"`
		LODs     *bool `yaml:"lods"`
		Extrefs  *bool `yaml:"extrefs"`
		Switches *bool `yaml:"switches"`
		Faces    *bool `yaml:"faces"`
	} `yaml:"hierarchy"`

	ResolveExternalRefs *bool `yaml:"resolveExternalRefs"`

	StackCapacity       int      `yaml:"stackCapacity"`
	FacesDictCapacity   int      `yaml:"facesDictCapacity"`
	IndicesInitCapacity int      `yaml:"indicesInitialCapacity"`
	SearchPaths         []string `yaml:"searchPaths"`
}

// LoadConfig parses a yaml configuration document and returns the Option
// that applies every field it sets, ready to pass to Load alongside, or
// instead of, hand-written Option values.
func LoadConfig(data []byte) (Option, error) {
	var cfg loadConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("flt: config: yaml %w", err)
	}

	var layout []VertexLayout
	for _, name := range cfg.VertexLayout {
		l, ok := vertexLayoutNames[name]
		if !ok {
			return nil, fmt.Errorf("flt: config: unsupported vertex layout component %q", name)
		}
		layout = append(layout, l)
	}

	return func(o *options) {
		if cfg.KeepHeader != nil {
			o.keepHeader = *cfg.KeepHeader
		}
		if cfg.KeepNames != nil {
			o.keepNames = *cfg.KeepNames
		}
		if cfg.PaletteVertex != nil {
			o.paletteVertex = *cfg.PaletteVertex
		}
		if len(layout) > 0 {
			o.vertexLayout = layout
		}
		if cfg.PaletteTexture != nil {
			o.paletteTexture = *cfg.PaletteTexture
		}

		h := cfg.Hierarchy
		if h.Groups != nil {
			o.hieGroups = *h.Groups
		}
		if h.Objects != nil {
			o.hieObjects = *h.Objects
		}
		if h.Meshes != nil {
			o.hieMeshes = *h.Meshes
		}
		if h.LODs != nil {
			o.hieLODs = *h.LODs
		}
		if h.Extrefs != nil {
			o.hieExtrefs = *h.Extrefs
		}
		if h.Switches != nil {
			o.hieSwitches = *h.Switches
		}
		if h.Faces != nil {
			o.hieFaces = *h.Faces
		}

		if cfg.ResolveExternalRefs != nil {
			o.resolveExtrefs = *cfg.ResolveExternalRefs
		}
		if cfg.StackCapacity > 0 {
			o.stackCapacity = cfg.StackCapacity
		}
		if cfg.FacesDictCapacity > 0 {
			o.facesDictCapacity = cfg.FacesDictCapacity
		}
		if cfg.IndicesInitCapacity > 0 {
			o.indicesInitCapacity = cfg.IndicesInitCapacity
		}
		if len(cfg.SearchPaths) > 0 {
			o.searchPaths = append([]string{}, cfg.SearchPaths...)
		}
	}, nil
}

// LoadConfigFile reads path and parses it the same way LoadConfig does,
// for the common case of a configuration document living on disk
// alongside the databases it governs.
func LoadConfigFile(path string) (Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flt: config: %w", err)
	}
	return LoadConfig(data)
}
