//go:build sumtype

package shapes

// Shape holds one geometric description at a time.
//
//sumgen:union stringer
type Shape struct {
	// Circle is a radius.
	Circle float64
	// Points is a polygon outline.
	Points []int
	// Label is a free-form name.
	Label string
}

// Payload carries either raw bytes or text.
//
//sumgen:union
type Payload struct {
	Raw  []byte
	Text string
}
