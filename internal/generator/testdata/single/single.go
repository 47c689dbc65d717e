//go:build sumtype

package single

//sumgen:union
type OneVariant struct {
	First string
}
