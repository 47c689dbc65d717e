// Package sumtype is the runtime contract shared by every union that sumgen
// generates. Generated types satisfy the Sum interface; the generic helpers in
// this package provide type-keyed access to the active payload on top of it.
package sumtype

import "reflect"

// Sum is implemented by every generated union. Variant and Variants expose the
// name table; Ref exposes a pointer to the payload of the active variant and
// is the hook the typed helpers below build on.
type Sum interface {
	// Variant returns the name of the active variant.
	Variant() string
	// Variants lists all variant names in declaration order.
	Variants() []string
	// Ref returns a pointer to the payload of the active variant.
	Ref() any
}

// DowncastRef returns a pointer to the active payload if its type is exactly
// T, and nil otherwise. The check is by dynamic type identity, not
// convertibility: a union holding an int32 does not downcast to int.
//
// When two variants wrap the same payload type the result only confirms that
// some variant with that payload type is active.
func DowncastRef[T any](s Sum) *T {
	p, _ := s.Ref().(*T)
	return p
}

// DowncastMut is the mutable counterpart of DowncastRef. The returned pointer
// aliases the payload inside the union; the usual single-writer discipline
// applies, nothing beyond Go's ordinary aliasing rules is enforced.
func DowncastMut[T any](s Sum) *T {
	return DowncastRef[T](s)
}

// Is reports whether the active payload has type T. It agrees with DowncastRef
// in every case.
func Is[T any](s Sum) bool {
	return DowncastRef[T](s) != nil
}

// unionName names the concrete union type behind s for panic messages.
func unionName(s Sum) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
