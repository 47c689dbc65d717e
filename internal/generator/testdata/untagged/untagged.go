package untagged

//sumgen:union
type Either struct {
	Left  int
	Right string
}
