package generator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize canonicalizes a declaration's raw fields into (variant name,
// payload type) descriptors. Embedded fields are the lazy form: the variant
// takes the payload type's own unqualified name, which is exactly the name Go
// itself gives an embedded field. The derivation is purely syntactic.
func Normalize(decl *UnionDecl) []Diagnostic {
	var diags []Diagnostic

	for _, field := range decl.Fields {
		if diag := checkPayload(decl, field); diag != nil {
			diags = append(diags, *diag)
			continue
		}

		if field.Embedded {
			decl.Variants = append(decl.Variants, Variant{
				Name: lazyName(field.Type),
				Type: field.Type,
				Doc:  field.Doc,
			})
			continue
		}

		for _, name := range field.Names {
			decl.Variants = append(decl.Variants, Variant{
				Name: name,
				Type: field.Type,
				Doc:  field.Doc,
			})
		}
	}

	return diags
}

// checkPayload rejects payload forms that cannot name a conversion: anonymous
// types and types without value semantics for field storage.
func checkPayload(decl *UnionDecl, field FieldDecl) *Diagnostic {
	var reason string
	switch {
	case field.Type == "interface{}" || field.Type == "struct{}":
		reason = "anonymous types are not supported"
	case field.Type == "func" || strings.HasPrefix(field.Type, "chan "):
		reason = "func and chan payloads are not supported"
	case field.Type == "unknown":
		reason = "unrecognized payload type"
	default:
		return nil
	}

	return &Diagnostic{
		Pos:     field.Pos,
		Message: fmt.Sprintf("sum type %q: %s", decl.Name, reason),
	}
}

// lazyName derives a variant name from a payload type reference the same way
// Go names an embedded field: drop the pointer star and package qualifier.
func lazyName(typ string) string {
	typ = strings.TrimPrefix(typ, "*")
	if idx := strings.LastIndex(typ, "."); idx >= 0 {
		typ = typ[idx+1:]
	}
	return typ
}

// conversionName mangles a payload type reference into the identifier used in
// generated conversion names, e.g. uint32 -> Uint32, []byte -> ByteSlice,
// *models.User -> User, map[string]int -> StringToIntMap.
func conversionName(typ string) string {
	typ = strings.TrimSpace(typ)

	switch {
	case strings.HasPrefix(typ, "*"):
		return conversionName(typ[1:])
	case strings.HasPrefix(typ, "[]"):
		return conversionName(typ[2:]) + "Slice"
	case strings.HasPrefix(typ, "map["):
		key, value, ok := splitMapType(typ)
		if ok {
			return conversionName(key) + "To" + conversionName(value) + "Map"
		}
	case strings.HasPrefix(typ, "["):
		if idx := strings.Index(typ, "]"); idx >= 0 {
			return conversionName(typ[idx+1:]) + "Array"
		}
	}

	if idx := strings.LastIndex(typ, "."); idx >= 0 {
		typ = typ[idx+1:]
	}

	r, size := utf8.DecodeRuneInString(typ)
	if size == 0 {
		return typ
	}
	return string(unicode.ToUpper(r)) + typ[size:]
}

// splitMapType splits "map[K]V" into K and V, honoring nested brackets in K.
func splitMapType(typ string) (key, value string, ok bool) {
	inner := strings.TrimPrefix(typ, "map[")
	depth := 0
	for i, r := range inner {
		switch r {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return inner[:i], inner[i+1:], true
			}
			depth--
		}
	}
	return "", "", false
}
