package sumtype

import (
	"fmt"
	"strings"
)

// InvalidTypeError is returned by a failed projection: the caller asked for
// one variant's payload while another variant was active.
type InvalidTypeError struct {
	// ExpectedVariant is the variant the projection is valid for.
	ExpectedVariant string
	// ActualVariant is the variant that was actually active.
	ActualVariant string
	// AllVariants holds every variant name of the union, in declaration order.
	AllVariants []string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("sumtype: expected variant %q but %q is active (variants: %s)",
		e.ExpectedVariant, e.ActualVariant, strings.Join(e.AllVariants, ", "))
}
