// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Command fltinfo loads an OpenFlight database and prints a summary of
// its header, palettes, and scene-graph shape — a thin example
// consumer of the flt package, not a general-purpose viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/galvanlake/flt"
)

func main() {
	resolve := flag.Bool("resolve", false, "resolve external references")
	config := flag.String("config", "", "path to a yaml options document")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: fltinfo [-resolve] [-config options.yaml] file.flt")
		os.Exit(2)
	}

	opts := []flt.Option{flt.ResolveExternalRefs(*resolve)}
	if *config != "" {
		cfgOpt, err := flt.LoadConfigFile(*config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fltinfo: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, cfgOpt)
	}

	f, err := flt.Load(flag.Arg(0), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fltinfo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("path:    %s\n", f.Path)
	fmt.Printf("state:   %s\n", f.State())
	if f.Header != nil {
		fmt.Printf("ascii:   %s\n", f.Header.AsciiString())
		fmt.Printf("rev:     %d (edit %d)\n", f.Header.FormatRevision, f.Header.EditRevision)
		fmt.Printf("date:    %s\n", f.Header.DateTimeString())
	}
	if f.Palettes.Texture != nil {
		fmt.Printf("textures: %d\n", f.Palettes.Texture.Count)
	}
	if f.Palettes.Vertex != nil {
		fmt.Printf("vertices: %d\n", f.Palettes.Vertex.VertexCount)
	}

	counts := map[flt.NodeKind]int{}
	flt.Walk(f.Root(), func(n flt.Node) { counts[n.Kind()]++ })
	groups := counts[flt.KindGroup]
	objects := counts[flt.KindObject]
	meshes := counts[flt.KindMesh]
	lods := counts[flt.KindLOD]
	faces := counts[flt.KindFace]
	extrefs := counts[flt.KindExternalReference]
	switches := counts[flt.KindSwitch]
	fmt.Printf("groups:  %d\n", groups)
	fmt.Printf("objects: %d\n", objects)
	fmt.Printf("meshes:  %d\n", meshes)
	fmt.Printf("lods:    %d\n", lods)
	fmt.Printf("faces:   %d\n", faces)
	fmt.Printf("extrefs: %d\n", extrefs)
	fmt.Printf("switches:%d\n", switches)

	flt.Release(f)
}
