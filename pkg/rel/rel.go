// Package rel packages functions as binary relations, for reasoning about
// endofunctions in relational style.
package rel

import (
	"go.llib.dev/eqkit"
	"go.llib.dev/eqkit/pkg/pred"
)

// Rel is a binary boolean relation on T.
type Rel[T any] func(x, y T) bool

// Graph is the functional relation of f: it relates x to y exactly when y is
// the image of x.
func Graph[T any](e eqkit.Eq[T], f func(T) T) Rel[T] {
	return func(x, y T) bool { return e.Op(f(x), y) }
}

// Invariant is the set of points whose k-projection is unaffected by
// applying f:
//
//	x ∈ Invariant(e, f, k)  ⇔  k(f(x)) == k(x)
//
// Post-composing k with any function h can only broaden this set, and leaves
// it exactly unchanged when h is injective; both properties are part of the
// package test suite.
func Invariant[T, K any](e eqkit.Eq[K], f func(T) T, k func(T) K) pred.Pred[T] {
	return func(x T) bool { return e.Op(k(f(x)), k(x)) }
}
