package generator

import "fmt"

// Validate checks a normalized declaration. A sum type with a single variant
// is pointless (the payload type itself would do) and is rejected at
// generation time; so is a declaration with no variants at all. Variant names
// must be unique: the Go rendering keeps them out of the generated identifier
// space, so the compiler would never catch a duplicate on its own.
func Validate(decl *UnionDecl) []Diagnostic {
	var diags []Diagnostic

	if len(decl.Variants) < 2 {
		diags = append(diags, Diagnostic{
			Pos:     decl.Pos,
			Message: fmt.Sprintf("type %q must have more than one variant", decl.Name),
		})
	}

	seen := make(map[string]bool, len(decl.Variants))
	for _, v := range decl.Variants {
		if seen[v.Name] {
			diags = append(diags, Diagnostic{
				Pos:     decl.Pos,
				Message: fmt.Sprintf("type %q declares variant %q more than once", decl.Name, v.Name),
			})
			continue
		}
		seen[v.Name] = true
	}

	return diags
}
