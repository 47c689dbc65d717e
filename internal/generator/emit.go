package generator

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"sort"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// generatedSuffix replaces ".go" in the declaration file's name to form the
// colocated output file.
const generatedSuffix = "_sumgen.go"

// sumtypeImport is the runtime support package generated code depends on.
const sumtypeImport = "github.com/example/sumgen/pkg/sumtype"

// Emitter renders canonical union declarations into Go source.
type Emitter struct {
	// TryFrom controls whether projection methods are emitted.
	TryFrom bool
}

// unionTemplate expands one union declaration into its type definition, name
// table, reflection methods, injection constructors and, when enabled,
// projection methods.
const unionTemplate = `
{{- range .Doc}}// {{.}}
{{end -}}
type {{.Name}} struct {
	tag int
{{- range .Variants}}
{{- range .Doc}}
	// {{.}}
{{- end}}
	{{.Field}} {{.Type}}
{{- end}}
}

// {{.Table}} lists the variants of {{.Name}} in declaration order.
var {{.Table}} = [...]string{ {{- range $i, $v := .Variants}}{{if $i}}, {{end}}"{{$v.Name}}"{{end}}}

// Variant returns the name of the active variant.
func (u {{.Name}}) Variant() string { return {{.Table}}[u.tag] }

// Variants lists all variant names in declaration order.
func ({{.Name}}) Variants() []string { return {{.Table}}[:] }

// Ref returns a pointer to the payload of the active variant.
func (u *{{.Name}}) Ref() any {
	switch u.tag {
{{- range .Variants}}
	case {{.Index}}:
		return &u.{{.Field}}
{{- end}}
	}
	return nil
}
{{range .Variants}}
// {{$.New}}From{{.Conv}} wraps v in the {{.Name}} variant of {{$.Name}}.
func {{$.New}}From{{.Conv}}(v {{.Type}}) {{$.Name}} {
	return {{$.Name}}{tag: {{.Index}}, {{.Field}}: v}
}
{{end -}}
{{if .TryFrom}}
{{- range .Variants}}
// As{{.Conv}} unwraps the {{.Name}} payload of {{$.Name}}. It fails when
// another variant is active.
func (u {{$.Name}}) As{{.Conv}}() ({{.Type}}, error) {
	if u.tag != {{.Index}} {
		var zero {{.Type}}
		return zero, &sumtype.InvalidTypeError{
			ExpectedVariant: "{{.Name}}",
			ActualVariant:   u.Variant(),
			AllVariants:     u.Variants(),
		}
	}
	return u.{{.Field}}, nil
}
{{end -}}
{{end -}}
{{if .Stringer}}
// String renders the active variant and its payload for debugging.
func (u {{.Name}}) String() string {
	switch u.tag {
{{- range .Variants}}
	case {{.Index}}:
		return fmt.Sprintf("{{.Name}}(%v)", u.{{.Field}})
{{- end}}
	}
	return ""
}
{{end -}}
`

type unionData struct {
	Name     string
	Doc      []string
	Table    string
	New      string
	TryFrom  bool
	Stringer bool
	Variants []variantData
}

type variantData struct {
	Index int
	Name  string
	Doc   []string
	Field string
	Conv  string
	Type  string
}

// Render expands a single union declaration. The result is a code fragment;
// RenderFile wraps fragments into a complete, formatted file.
func (e *Emitter) Render(decl *UnionDecl) (string, error) {
	tmpl, err := template.New("union").Parse(unionTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, e.unionData(decl)); err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", decl.Name, err)
	}

	return buf.String(), nil
}

// RenderFile expands all declarations of one source file into a complete
// generated file, formatted with go/format.
func (e *Emitter) RenderFile(pkgName string, decls []*UnionDecl) ([]byte, error) {
	sorted := make([]*UnionDecl, len(decls))
	copy(sorted, decls)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by sumgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)

	needFmt := false
	for _, decl := range sorted {
		if decl.Options.Stringer {
			needFmt = true
		}
	}
	switch {
	case needFmt && e.TryFrom:
		fmt.Fprintf(&buf, "import (\n\t\"fmt\"\n\n\t%q\n)\n\n", sumtypeImport)
	case needFmt:
		fmt.Fprintf(&buf, "import \"fmt\"\n\n")
	case e.TryFrom:
		fmt.Fprintf(&buf, "import %q\n\n", sumtypeImport)
	}

	for _, decl := range sorted {
		code, err := e.Render(decl)
		if err != nil {
			return nil, err
		}
		buf.WriteString(code)
		buf.WriteString("\n")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}

	return formatted, nil
}

func (e *Emitter) unionData(decl *UnionDecl) unionData {
	data := unionData{
		Name:     decl.Name,
		Doc:      docLines(decl.Doc),
		Table:    lowerFirst(decl.Name) + "Variants",
		TryFrom:  e.TryFrom,
		Stringer: decl.Options.Stringer,
	}

	if len(data.Doc) == 0 {
		data.Doc = []string{fmt.Sprintf("%s is a sum type generated by sumgen.", decl.Name)}
	}

	if ast.IsExported(decl.Name) {
		data.New = "New" + decl.Name
	} else {
		data.New = "new" + upperFirst(decl.Name)
	}

	for i, v := range decl.Variants {
		data.Variants = append(data.Variants, variantData{
			Index: i,
			Name:  v.Name,
			Doc:   docLines(v.Doc),
			Field: fmt.Sprintf("f%d", i),
			Conv:  conversionName(v.Type),
			Type:  v.Type,
		})
	}

	return data
}

// docLines splits a doc comment into trimmed lines, dropping trailing blanks.
func docLines(doc string) []string {
	doc = strings.TrimRight(doc, "\n")
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
