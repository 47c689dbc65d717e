package generator

import (
	"fmt"
	"path/filepath"
)

// exampleSkeleton is the fixed demonstration declaration expanded when example
// generation is enabled. It shows users both what they write and what they
// get back.
const exampleSkeleton = `//go:build sumtype

package example

// MySumType demonstrates the code sumgen emits for a three-variant union.
//
//sumgen:union
type MySumType struct {
	// The first variant.
	First uint32
	// The second variant.
	Second string
	// A list of bytes.
	Third []byte
}
`

func exampleDecl() *UnionDecl {
	return &UnionDecl{
		Name:    "MySumType",
		Package: "example",
		Doc:     "MySumType demonstrates the code sumgen emits for a three-variant union.\n",
		Variants: []Variant{
			{Name: "First", Type: "uint32", Doc: "The first variant."},
			{Name: "Second", Type: "string", Doc: "The second variant."},
			{Name: "Third", Type: "[]byte", Doc: "A list of bytes."},
		},
	}
}

// WriteExample expands the demonstration union into dir: the declaration
// skeleton and its generated counterpart.
func (g *Generator) WriteExample(dir string) error {
	skeletonPath := filepath.Join(dir, "mysumtype.go")
	if err := writeFile(skeletonPath, []byte(exampleSkeleton)); err != nil {
		return fmt.Errorf("failed to write example skeleton: %w", err)
	}

	decl := exampleDecl()
	content, err := g.emitter.RenderFile(decl.Package, []*UnionDecl{decl})
	if err != nil {
		return err
	}

	generatedPath := filepath.Join(dir, "mysumtype"+generatedSuffix)
	if err := writeFile(generatedPath, content); err != nil {
		return fmt.Errorf("failed to write example output: %w", err)
	}

	return nil
}
