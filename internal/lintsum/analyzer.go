// Package lintsum provides a sumgen declaration linter. It reports the same
// diagnostics the generator would, so broken declarations surface in editors
// and CI before anyone runs code generation.
package lintsum

import (
	"golang.org/x/tools/go/analysis"

	"github.com/example/sumgen/internal/generator"
)

// Analyzer is the sumgen declaration linter.
var Analyzer = &analysis.Analyzer{
	Name: "lintsum",
	Doc:  "checks sumgen:union declarations for expansion errors",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		filename := pass.Fset.File(file.Pos()).Name()
		decls, diags := generator.ExtractFile(pass.Fset, file, filename)

		for _, decl := range decls {
			if ds := generator.Normalize(decl); len(ds) > 0 {
				diags = append(diags, ds...)
				continue
			}
			diags = append(diags, generator.Validate(decl)...)
		}

		for _, d := range diags {
			pass.Reportf(d.Pos, "%s", d.Message)
		}
	}
	return nil, nil
}
