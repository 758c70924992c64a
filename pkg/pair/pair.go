// Package pair provides the product type carrier used by the composite
// equality instances.
package pair

type Pair[A, B any] struct {
	A A
	B B
}

func Of[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{A: a, B: b}
}
