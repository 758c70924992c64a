// Package eqkit provides decidable equality as a first-class capability value.
//
// An Eq[T] wraps a binary comparison operator that decides semantic equality
// for T. Everything else in this module — predicate combinators, function
// relations, refinement subtypes, composite instances — is built purely on top
// of Eq[T], never on a concrete type's internals.
//
// The comparison operator of an Eq[T] must decide equality:
// for every x and y, Op(x, y) reports true if and only if x and y are the same
// value in the semantic sense of T. This obligation cannot be expressed in
// Go's type system; it is the contract every constructor documents and the
// property every instance's test suite verifies (reflexivity, symmetry,
// transitivity).
//
// Each concrete type is expected to have at most one canonical Eq instance,
// published through Register. Derived capabilities (ByInjection,
// ByPartialInverse, ByInverse) are deliberately not auto-registered:
// when multiple derivation paths could apply to the same type, the caller
// must opt in explicitly to keep instance resolution unambiguous.
package eqkit

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/eqkit/pkg/opt"
	"go.llib.dev/eqkit/port/equal"
)

const ErrNilFunc errorkit.Error = "[eqkit] nil function supplied to a capability constructor"

// Eq is the equality capability of type T.
//
// The zero Eq is unusable; construct one with New or one of the derived
// constructors. Eq values are immutable and safe for concurrent use.
type Eq[T any] struct {
	op func(x, y T) bool
}

// New builds an equality capability directly from a decision procedure.
//
// This is the "from generic decidability" entry point: the supplied function
// is taken as the decision procedure for equality on T, and the caller vouches
// that it reflects semantic equality. In a proof-carrying setting the result
// of op would come with a proof of x = y or x ≠ y; in Go the boolean outcome
// is all that survives, and callers branch on it directly.
func New[T any](op func(x, y T) bool) Eq[T] {
	if op == nil {
		panic(ErrNilFunc)
	}
	return Eq[T]{op: op}
}

// OfComparable is the canonical capability for types where Go's == operator
// already is the semantic equality.
func OfComparable[T comparable]() Eq[T] {
	return New[T](func(x, y T) bool { return x == y })
}

// Op reports whether x and y are equal according to the capability's
// decision procedure.
//
// Op on the zero Eq panics, since an absent decision procedure cannot be
// meaningfully defaulted.
func (e Eq[T]) Op(x, y T) bool {
	if e.op == nil {
		panic(ErrNilFunc.F("Op called on zero value Eq[%T]", *new(T)))
	}
	return e.op(x, y)
}

// Neq is the logical negation of Op.
func (e Eq[T]) Neq(x, y T) bool {
	return !e.Op(x, y)
}

// IsZero reports whether the capability was left unconstructed.
func (e Eq[T]) IsZero() bool {
	return e.op == nil
}

// ByInjection derives an equality capability for T through an injective
// function into a type that already has one.
//
// Precondition: f is injective — distinct T values map to distinct U values.
// Given that, comparing images decides equality on T:
//
//	op(x, y) := u.Op(f(x), f(y))
//
// The precondition is not checkable here; it is the caller's obligation and
// a property-test concern.
func ByInjection[T, U any](f func(T) U, u Eq[U]) Eq[T] {
	if f == nil {
		panic(ErrNilFunc)
	}
	return New[T](func(x, y T) bool { return u.Op(f(x), f(y)) })
}

// ByPartialInverse derives an equality capability for T from a function f
// with a partial left inverse g.
//
// Precondition: g(f(x)) == opt.Some(x) for every x. This is strictly weaker
// to state than full injectivity of f, but implies it, so the derived
// operator is the same image comparison as ByInjection. The witness g is not
// invoked during comparison; it is part of the signature because it is what
// makes the derivation sound, and test suites are expected to check the
// cancellation law against it.
func ByPartialInverse[T, U any](f func(T) U, g func(U) opt.Opt[T], u Eq[U]) Eq[T] {
	if f == nil || g == nil {
		panic(ErrNilFunc)
	}
	return ByInjection(f, u)
}

// ByInverse derives an equality capability for T from a function f with a
// total left inverse g, so g(f(x)) == x for every x.
func ByInverse[T, U any](f func(T) U, g func(U) T, u Eq[U]) Eq[T] {
	if f == nil || g == nil {
		panic(ErrNilFunc)
	}
	return ByInjection(f, u)
}

// ByEqualMethod bridges types that carry their own semantic equality as a
// method into the capability framework.
func ByEqualMethod[T equal.Equalable[T]]() Eq[T] {
	return New[T](func(x, y T) bool { return x.Equal(y) })
}

// ByComparison derives equality from a three-way comparison function,
// where a zero comparison result means equal.
func ByComparison[T any](cmp func(T, T) int) Eq[T] {
	if cmp == nil {
		panic(ErrNilFunc)
	}
	return New[T](func(x, y T) bool { return cmp(x, y) == 0 })
}

// ByCompareMethod is ByComparison for types that carry their ordering as a
// method.
func ByCompareMethod[T equal.Comparable[T]]() Eq[T] {
	return New[T](func(x, y T) bool { return x.Compare(y) == 0 })
}
