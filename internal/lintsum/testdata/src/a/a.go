package a

// Good is well formed but the file lacks the declaration build constraint.
//
//sumgen:union
type Good struct { // want `declaration "Good" requires the "sumtype" build constraint`
	Left  int
	Right string
}

//sumgen:union
type Lonely struct { // want `requires the "sumtype" build constraint` `type "Lonely" must have more than one variant`
	Only string
}

//sumgen:union
type Box[T any] struct { // want `requires the "sumtype" build constraint` `sum type "Box" cannot have type parameters`
	Value T
	Count int
}

//sumgen:union
type Code int // want `requires the "sumtype" build constraint` `requires a struct type`

//sumgen:union frobnicate
type Opts struct { // want `unknown //sumgen:union option "frobnicate"`
	A int
	B string
}

//sumgen:union
type Evil struct { // want `requires the "sumtype" build constraint`
	Fn   func() // want `func and chan payloads are not supported`
	Text string
}
