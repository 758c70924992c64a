// Package pred provides boolean predicate combinators over types carrying an
// equality capability.
//
// A Pred[T] reads as a membership test in a set of T values. The combinators
// here build finite sets, complements, unions and differences out of an
// eqkit.Eq[T], without ever touching the concrete representation of T.
// Each combinator's defining equivalence ("the boolean result is true exactly
// when the corresponding disjunction/conjunction holds") is checked by the
// package test suite.
package pred

import "go.llib.dev/eqkit"

// Pred is a total boolean predicate on T, read as set membership.
type Pred[T any] func(T) bool

// Top is the predicate holding everything.
func Top[T any]() Pred[T] {
	return func(T) bool { return true }
}

// Bottom is the predicate holding nothing.
func Bottom[T any]() Pred[T] {
	return func(T) bool { return false }
}

// Is is the singleton set {a}: membership means equality with a.
func Is[T any](e eqkit.Eq[T], a T) Pred[T] {
	return func(x T) bool { return e.Op(x, a) }
}

// AnyOf is the finite set of the listed values:
// membership is the disjunction of the pointwise equalities.
// With no values it degenerates to Bottom.
func AnyOf[T any](e eqkit.Eq[T], vs ...T) Pred[T] {
	return func(x T) bool {
		for _, v := range vs {
			if e.Op(x, v) {
				return true
			}
		}
		return false
	}
}

// Union adjoins a to the set described by p.
func Union[T any](e eqkit.Eq[T], a T, p Pred[T]) Pred[T] {
	return func(x T) bool { return e.Op(x, a) || p(x) }
}

// IsNot is the complement of the singleton {a}.
func IsNot[T any](e eqkit.Eq[T], a T) Pred[T] {
	return func(x T) bool { return e.Neq(x, a) }
}

// Without removes a from the set described by p.
func Without[T any](p Pred[T], e eqkit.Eq[T], a T) Pred[T] {
	return func(x T) bool { return e.Neq(x, a) && p(x) }
}

// And is the intersection of the listed predicates.
// With no predicates it degenerates to Top.
func And[T any](ps ...Pred[T]) Pred[T] {
	return func(x T) bool {
		for _, p := range ps {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

// Or is the union of the listed predicates.
func Or[T any](ps ...Pred[T]) Pred[T] {
	return func(x T) bool {
		for _, p := range ps {
			if p(x) {
				return true
			}
		}
		return false
	}
}

// Not is the complement of p.
func Not[T any](p Pred[T]) Pred[T] {
	return func(x T) bool { return !p(x) }
}
