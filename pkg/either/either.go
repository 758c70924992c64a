// Package either provides a binary sum type carrier.
//
// An Either[L, R] holds exactly one of its two sides. Which side a value was
// injected on is part of its identity: the composite equality instance built
// on Either treats left and right injections of coinciding payloads as
// distinct values.
package either

type side uint8

const (
	sideLeft side = iota
	sideRight
)

// Either holds either an L on its left side or an R on its right side.
// The zero Either is the left injection of L's zero value.
type Either[L, R any] struct {
	left  L
	right R
	side  side
}

// Left injects v on the left side.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, side: sideLeft}
}

// Right injects v on the right side.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, side: sideRight}
}

// IsLeft reports whether the value was injected on the left side.
func (e Either[L, R]) IsLeft() bool {
	return e.side == sideLeft
}

// IsRight reports whether the value was injected on the right side.
func (e Either[L, R]) IsRight() bool {
	return e.side == sideRight
}

// LookupLeft returns the left payload when the value is a left injection.
func (e Either[L, R]) LookupLeft() (L, bool) {
	return e.left, e.side == sideLeft
}

// LookupRight returns the right payload when the value is a right injection.
func (e Either[L, R]) LookupRight() (R, bool) {
	return e.right, e.side == sideRight
}

// Fold eliminates the sum by applying the function matching the held side.
func Fold[O, L, R any](e Either[L, R], onLeft func(L) O, onRight func(R) O) O {
	if v, ok := e.LookupLeft(); ok {
		return onLeft(v)
	}
	v, _ := e.LookupRight()
	return onRight(v)
}
