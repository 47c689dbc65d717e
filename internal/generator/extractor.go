package generator

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/token"
	"io/fs"
	"strings"
)

// directivePrefix marks a struct type declaration as a union skeleton.
const directivePrefix = "//sumgen:union"

// buildTag is the constraint that keeps declaration files out of normal
// builds; the generated files take their place.
const buildTag = "sumtype"

// Extractor parses Go source and collects union declarations.
type Extractor struct {
	fset  *token.FileSet
	files map[string]*ast.File // filepath -> AST
}

// NewExtractor creates a new extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		fset:  token.NewFileSet(),
		files: make(map[string]*ast.File),
	}
}

// FileSet returns the position information for everything parsed so far.
func (e *Extractor) FileSet() *token.FileSet { return e.fset }

// ParseDirectory parses all Go files in a directory, skipping tests and
// previously generated output.
func (e *Extractor) ParseDirectory(dir string) error {
	pkgs, err := parser.ParseDir(e.fset, dir, func(fi fs.FileInfo) bool {
		name := fi.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasSuffix(name, generatedSuffix)
	}, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse directory %s: %w", dir, err)
	}

	for _, pkg := range pkgs {
		for filePath, file := range pkg.Files {
			e.files[filePath] = file
		}
	}

	return nil
}

// ParseFile parses a single Go file.
func (e *Extractor) ParseFile(path string) error {
	file, err := parser.ParseFile(e.fset, path, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	e.files[path] = file
	return nil
}

// ExtractUnions collects every union declaration from the parsed files. All
// problems found along the way are returned as diagnostics rather than
// stopping at the first one.
func (e *Extractor) ExtractUnions() ([]*UnionDecl, []Diagnostic) {
	var decls []*UnionDecl
	var diags []Diagnostic

	for filePath, file := range e.files {
		d, ds := ExtractFile(e.fset, file, filePath)
		decls = append(decls, d...)
		diags = append(diags, ds...)
	}

	return decls, diags
}

// ExtractFile collects the union declarations of a single file. It is used by
// both the generator and the lint analyzer.
func ExtractFile(fset *token.FileSet, file *ast.File, filePath string) ([]*UnionDecl, []Diagnostic) {
	var decls []*UnionDecl
	var diags []Diagnostic

	constrained := hasBuildTag(file, buildTag)

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			opts, found, diag := parseDirective(doc, typeSpec.Name.Pos())
			if !found {
				continue
			}
			if diag != nil {
				diags = append(diags, *diag)
				continue
			}

			pos := typeSpec.Name.Pos()

			if !constrained {
				diags = append(diags, Diagnostic{
					Pos:     pos,
					Message: fmt.Sprintf("declaration %q requires the %q build constraint", typeSpec.Name.Name, buildTag),
				})
			}

			if typeSpec.TypeParams != nil {
				diags = append(diags, Diagnostic{
					Pos:     pos,
					Message: fmt.Sprintf("sum type %q cannot have type parameters", typeSpec.Name.Name),
				})
				continue
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				diags = append(diags, Diagnostic{
					Pos:     pos,
					Message: fmt.Sprintf("%s requires a struct type, %q is not one", directivePrefix, typeSpec.Name.Name),
				})
				continue
			}

			decls = append(decls, &UnionDecl{
				Name:    typeSpec.Name.Name,
				Package: file.Name.Name,
				Doc:     doc.Text(),
				Options: opts,
				Fields:  extractFields(structType),
				Pos:     pos,
				File:    filePath,
			})
		}
	}

	return decls, diags
}

// extractFields converts struct fields to raw field declarations.
func extractFields(structType *ast.StructType) []FieldDecl {
	var fields []FieldDecl

	for _, field := range structType.Fields.List {
		fd := FieldDecl{
			Type: typeString(field.Type),
			Doc:  fieldComment(field),
			Pos:  field.Pos(),
		}
		if len(field.Names) == 0 {
			fd.Embedded = true
		} else {
			for _, name := range field.Names {
				fd.Names = append(fd.Names, name.Name)
			}
		}
		fields = append(fields, fd)
	}

	return fields
}

// parseDirective looks for the //sumgen:union marker in a doc comment and
// parses its options. found is false when the comment carries no directive.
func parseDirective(doc *ast.CommentGroup, pos token.Pos) (opts DeclOptions, found bool, diag *Diagnostic) {
	if doc == nil {
		return opts, false, nil
	}

	for _, comment := range doc.List {
		if comment.Text != directivePrefix && !strings.HasPrefix(comment.Text, directivePrefix+" ") {
			continue
		}
		found = true

		rest := strings.TrimPrefix(comment.Text, directivePrefix)
		for _, opt := range strings.FieldsFunc(rest, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
			switch opt {
			case "stringer":
				opts.Stringer = true
			default:
				return opts, true, &Diagnostic{
					Pos:     pos,
					Message: fmt.Sprintf("unknown %s option %q", directivePrefix, opt),
				}
			}
		}
	}

	return opts, found, nil
}

// hasBuildTag reports whether the file carries a //go:build constraint that is
// satisfied by the given tag alone.
func hasBuildTag(file *ast.File, tag string) bool {
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}
			if expr.Eval(func(t string) bool { return t == tag }) {
				return true
			}
		}
	}
	return false
}

// fieldComment extracts the documentation attached to a struct field.
func fieldComment(field *ast.Field) string {
	if field.Doc != nil {
		return strings.TrimSpace(field.Doc.Text())
	}
	if field.Comment != nil {
		return strings.TrimSpace(field.Comment.Text())
	}
	return ""
}

// typeString renders a field type expression back to source form.
func typeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeString(t.X)
	case *ast.ArrayType:
		if t.Len != nil {
			return "[" + typeString(t.Len) + "]" + typeString(t.Elt)
		}
		return "[]" + typeString(t.Elt)
	case *ast.SelectorExpr:
		return typeString(t.X) + "." + t.Sel.Name
	case *ast.MapType:
		return "map[" + typeString(t.Key) + "]" + typeString(t.Value)
	case *ast.BasicLit:
		return t.Value
	case *ast.InterfaceType:
		return "interface{}"
	case *ast.StructType:
		return "struct{}"
	case *ast.FuncType:
		return "func"
	case *ast.ChanType:
		return "chan " + typeString(t.Value)
	case *ast.IndexExpr:
		return typeString(t.X) + "[" + typeString(t.Index) + "]"
	case *ast.IndexListExpr:
		var params []string
		for _, idx := range t.Indices {
			params = append(params, typeString(idx))
		}
		return typeString(t.X) + "[" + strings.Join(params, ", ") + "]"
	default:
		return "unknown"
	}
}
