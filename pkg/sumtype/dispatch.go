package sumtype

import "fmt"

// Dispatch applies fn to the active payload when the active variant is one of
// variants, and returns fn's result. fn receives the same pointer Ref returns,
// so a type switch over *T pointers recovers the typed payload.
//
// An active variant outside the covered set is a programming error (the case
// analysis is incomplete) and panics with the variant and union names. The
// panic is deliberate; there is nothing sensible to return.
func Dispatch[R any](s Sum, fn func(payload any) R, variants ...string) R {
	active := s.Variant()
	for _, name := range variants {
		if name == active {
			return fn(s.Ref())
		}
	}
	panic(fmt.Sprintf("sumtype: unexpected variant %q for %s", active, unionName(s)))
}

// DispatchMut is the mutate form of Dispatch: fn updates the payload in place
// through the pointer instead of producing a value. The unmatched-variant
// behavior is identical.
func DispatchMut(s Sum, fn func(payload any), variants ...string) {
	Dispatch(s, func(payload any) struct{} {
		fn(payload)
		return struct{}{}
	}, variants...)
}
