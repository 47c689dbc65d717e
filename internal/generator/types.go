package generator

import "go/token"

// UnionDecl represents one //sumgen:union declaration extracted from source.
type UnionDecl struct {
	Name    string
	Package string
	Doc     string      // type doc comment, directive line stripped
	Options DeclOptions // options parsed from the directive line
	Fields  []FieldDecl // raw struct fields as written
	Pos     token.Pos
	File    string // source file the declaration lives in

	// Variants is the canonical descriptor list, filled in by Normalize.
	Variants []Variant
}

// FieldDecl is a struct field as declared, before normalization. A field with
// several names declares one variant per name; an embedded field declares a
// lazy variant named after its type.
type FieldDecl struct {
	Names    []string
	Type     string
	Embedded bool
	Doc      string
	Pos      token.Pos
}

// Variant is a canonical (variant name, payload type) descriptor.
type Variant struct {
	Name string
	Type string
	Doc  string
}

// DeclOptions holds per-declaration options from the directive line.
type DeclOptions struct {
	Stringer bool // emit a debug String() method
}

// Diagnostic is an expansion-time error attributed to a source position. The
// CLI renders it as "file:line:col: message"; the analyzer reports it in
// place.
type Diagnostic struct {
	Pos     token.Pos
	Message string
}

// Config controls a generation run.
type Config struct {
	// Dirs are the directories scanned for declaration files.
	Dirs []string
	// TryFrom enables projection methods and the conversion error type.
	TryFrom bool
	// ExampleDir, when set, receives the fixed demonstration union.
	ExampleDir string
	// OutputDir overrides colocated output; generated files keep their
	// basename but are written there instead of next to the source.
	OutputDir string
}
