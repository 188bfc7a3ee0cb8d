// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

// options.go reduces the Load API footprint using functional options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis
//      https://commandcenter.blogspot.ca/2014/01/self-referential-functions-and-design.html

// VertexLayout selects which components are present, and in what order,
// in the re-encoded interleaved vertex array.
type VertexLayout int

const (
	LayoutPositionF64 VertexLayout = iota // 3x float64, no downcast
	LayoutPositionF32                     // 3x float32, lossy downcast from source f64
	LayoutNormal                          // 3x float32
	LayoutUV                              // 2x float32
	LayoutColor                           // packed uint32
)

// options holds every knob a Load call accepts. Unexported: callers
// build one with functional Option values passed to Load.
type options struct {
	keepHeader bool
	keepNames  bool

	paletteVertex  bool
	vertexLayout   []VertexLayout
	paletteTexture bool

	hieGroups, hieObjects, hieMeshes bool
	hieLODs, hieExtrefs, hieSwitches bool
	hieFaces                         bool

	resolveExtrefs bool

	stackCapacity        int
	facesDictCapacity    int
	indicesInitCapacity  int
	searchPaths          []string

	callbackTexture func(TextureEntry)
	callbackExtref  func(*ExternalRefNode)
}

// optionDefaults gives every hierarchy/palette enable bit on, so a naive
// Load("x.flt") reads everything this core understands, with round
// capacities for the stack, face dictionary and index array.
var optionDefaults = options{
	keepHeader:          true,
	keepNames:           true,
	paletteVertex:        true,
	vertexLayout:         []VertexLayout{LayoutPositionF32, LayoutNormal, LayoutUV, LayoutColor},
	paletteTexture:       true,
	hieGroups:            true,
	hieObjects:           true,
	hieMeshes:            true,
	hieLODs:              true,
	hieExtrefs:           true,
	hieSwitches:          true,
	hieFaces:             true,
	resolveExtrefs:       false,
	stackCapacity:        32,
	facesDictCapacity:    1543,
	indicesInitCapacity:  4096,
}

// Option overrides one or more option defaults. Used with Load.
//
//	f, err := flt.Load("airport.flt",
//	    flt.KeepNames(false),
//	    flt.ResolveExternalRefs(true),
//	    flt.SearchPaths("./textures", "./models"),
//	)
type Option func(*options)

// KeepHeader controls whether the full Header is decoded and retained.
// When false only format_rev is read (enough to apply the version gate)
// and the remainder of the header record is skipped.
func KeepHeader(keep bool) Option { return func(o *options) { o.keepHeader = keep } }

// KeepNames retains name strings on nodes and faces. Long-ID records are
// ignored entirely when false.
func KeepNames(keep bool) Option { return func(o *options) { o.keepNames = keep } }

// PaletteVertex enables reading and re-encoding the vertex palette.
func PaletteVertex(keep bool) Option { return func(o *options) { o.paletteVertex = keep } }

// VertexOutputLayout sets the per-component presence and order of the
// output interleaved vertex array. Defaults to position(f32), normal,
// uv, color.
func VertexOutputLayout(layout ...VertexLayout) Option {
	return func(o *options) {
		if len(layout) > 0 {
			o.vertexLayout = append([]VertexLayout{}, layout...)
		}
	}
}

// PaletteTexture enables reading and collecting the texture palette.
func PaletteTexture(keep bool) Option { return func(o *options) { o.paletteTexture = keep } }

// HieEnable turns hierarchy node kinds on or off individually. It sets
// all seven enable bits at once: each argument replaces the current
// setting for its kind.
func HieEnable(groups, objects, meshes, lods, extrefs, switches, faces bool) Option {
	return func(o *options) {
		o.hieGroups, o.hieObjects, o.hieMeshes = groups, objects, meshes
		o.hieLODs, o.hieExtrefs, o.hieSwitches = lods, extrefs, switches
		o.hieFaces = faces
	}
}

// ResolveExternalRefs automatically follows and loads xref children once
// the referencing file has been parsed, instead of leaving them for the
// caller to resolve.
func ResolveExternalRefs(resolve bool) Option {
	return func(o *options) { o.resolveExtrefs = resolve }
}

// StackCapacity sets the initial capacity of the parsing stack; deeper
// nesting grows the stack. Default 32.
func StackCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.stackCapacity = n
		}
	}
}

// FacesDictCapacity sets the bucket count for the per-file face
// dictionary. Default 1543.
func FacesDictCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.facesDictCapacity = n
		}
	}
}

// IndicesInitialCapacity sets the initial capacity of the per-file index
// array. Default 4096.
func IndicesInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.indicesInitCapacity = n
		}
	}
}

// SearchPaths sets the ordered list of fallback directories used to
// resolve external references that aren't found relative to the
// referencing file.
func SearchPaths(dirs ...string) Option {
	return func(o *options) { o.searchPaths = append([]string{}, dirs...) }
}

// CallbackTexture, when set, is invoked once per texture palette entry
// as it is parsed.
func CallbackTexture(cb func(TextureEntry)) Option {
	return func(o *options) { o.callbackTexture = cb }
}

// CallbackExtref, when set, is invoked once per external-reference node
// as it is discovered, before automatic resolution (if any) runs.
func CallbackExtref(cb func(*ExternalRefNode)) Option {
	return func(o *options) { o.callbackExtref = cb }
}

func newOptions(opts ...Option) *options {
	o := optionDefaults
	o.vertexLayout = append([]VertexLayout{}, optionDefaults.vertexLayout...)
	for _, apply := range opts {
		apply(&o)
	}
	return &o
}
