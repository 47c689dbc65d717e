// Package generator expands sumgen union declarations into Go source. The
// pipeline is extract (go/ast), normalize (lazy variants get their payload
// type's name), validate (arity and name uniqueness) and emit (text/template
// plus go/format), with every generated file colocated next to its
// declaration file.
package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Generator runs the whole expansion pipeline over a set of directories.
type Generator struct {
	extractor *Extractor
	emitter   *Emitter
	config    Config
}

// New creates a generator for the given configuration.
func New(config Config) *Generator {
	return &Generator{
		extractor: NewExtractor(),
		emitter:   &Emitter{TryFrom: config.TryFrom},
		config:    config,
	}
}

// Run parses the configured directories, expands every declaration and writes
// the generated files. Expansion-time diagnostics abort the run before
// anything is written.
func (g *Generator) Run() error {
	files, err := g.Files()
	if err != nil {
		return err
	}

	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	if g.config.ExampleDir != "" {
		if err := g.WriteExample(g.config.ExampleDir); err != nil {
			return err
		}
	}

	return nil
}

// Files expands all declarations and returns the generated files keyed by
// output path, without writing anything.
func (g *Generator) Files() (map[string][]byte, error) {
	for _, dir := range g.config.Dirs {
		if err := g.extractor.ParseDirectory(dir); err != nil {
			return nil, err
		}
	}

	decls, diags := g.extractor.ExtractUnions()
	for _, decl := range decls {
		if ds := Normalize(decl); len(ds) > 0 {
			diags = append(diags, ds...)
			continue
		}
		diags = append(diags, Validate(decl)...)
	}
	if len(diags) > 0 {
		return nil, g.joinDiagnostics(diags)
	}

	byFile := make(map[string][]*UnionDecl)
	for _, decl := range decls {
		byFile[decl.File] = append(byFile[decl.File], decl)
	}

	out := make(map[string][]byte, len(byFile))
	for file, fileDecls := range byFile {
		content, err := g.emitter.RenderFile(fileDecls[0].Package, fileDecls)
		if err != nil {
			return nil, err
		}
		out[g.outputPath(file)] = content
	}

	return out, nil
}

// outputPath maps a declaration file to its generated counterpart.
func (g *Generator) outputPath(sourceFile string) string {
	name := strings.TrimSuffix(filepath.Base(sourceFile), ".go") + generatedSuffix
	dir := filepath.Dir(sourceFile)
	if g.config.OutputDir != "" {
		dir = g.config.OutputDir
	}
	return filepath.Join(dir, name)
}

// joinDiagnostics renders diagnostics as file:line:col errors in source order.
func (g *Generator) joinDiagnostics(diags []Diagnostic) error {
	sort.Slice(diags, func(i, j int) bool { return diags[i].Pos < diags[j].Pos })

	errs := make([]error, 0, len(diags))
	for _, d := range diags {
		errs = append(errs, fmt.Errorf("%s: %s", g.extractor.FileSet().Position(d.Pos), d.Message))
	}
	return errors.Join(errs...)
}

// writeFile writes content to a file, creating directories if necessary.
func writeFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return os.WriteFile(path, content, 0o644)
}
