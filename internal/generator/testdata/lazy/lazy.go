//go:build sumtype

package lazy

// Widget is a payload type declared alongside the union.
type Widget struct{ ID int }

//sumgen:union
type Scalar struct {
	float32
	uint32
	Widget
}
