package eqkit

import (
	"reflect"

	"go.llib.dev/frameless/pkg/reflectkit"

	"go.llib.dev/eqkit/internal/constraints"
	"go.llib.dev/eqkit/pkg/either"
	"go.llib.dev/eqkit/pkg/opt"
	"go.llib.dev/eqkit/pkg/pair"
	"go.llib.dev/eqkit/pkg/tagged"
)

// Unit is the equality capability of the one-inhabitant type:
// any two unit values are equal.
func Unit() Eq[struct{}] {
	return New[struct{}](func(struct{}, struct{}) bool { return true })
}

// Bool is the canonical equality capability of bool,
// two booleans are equal when their exclusive-or is false.
func Bool() Eq[bool] {
	return New[bool](func(x, y bool) bool { return !(x != y) })
}

// Strings is the canonical equality capability for string kinded types.
func Strings[S ~string]() Eq[S] {
	return OfComparable[S]()
}

// Numbers is the canonical equality capability for numeric types.
//
// Note that instantiating it at a floating point type yields an operator that
// is not reflexive at NaN, which is why no float instance is registered as
// canonical by this package.
func Numbers[N constraints.Number]() Eq[N] {
	return OfComparable[N]()
}

// PairOf derives equality on a product type from its component capabilities:
// two pairs are equal when both components are.
func PairOf[A, B any](a Eq[A], b Eq[B]) Eq[pair.Pair[A, B]] {
	return New[pair.Pair[A, B]](func(x, y pair.Pair[A, B]) bool {
		return a.Op(x.A, y.A) && b.Op(x.B, y.B)
	})
}

// EitherOf derives equality on a sum type from its component capabilities.
// Values injected on different sides are always unequal,
// even when the payload values would coincide.
func EitherOf[L, R any](l Eq[L], r Eq[R]) Eq[either.Either[L, R]] {
	return New[either.Either[L, R]](func(x, y either.Either[L, R]) bool {
		if lx, ok := x.LookupLeft(); ok {
			ly, ok := y.LookupLeft()
			return ok && l.Op(lx, ly)
		}
		rx, _ := x.LookupRight()
		ry, ok := y.LookupRight()
		return ok && r.Op(rx, ry)
	})
}

// OptOf derives equality on the optional wrapper:
// two empty options are equal, two filled options compare their content,
// and an empty never equals a filled one.
func OptOf[T any](e Eq[T]) Eq[opt.Opt[T]] {
	return New[opt.Opt[T]](func(x, y opt.Opt[T]) bool {
		xv, xok := x.Lookup()
		yv, yok := y.Lookup()
		if xok != yok {
			return false
		}
		if !xok {
			return true
		}
		return e.Op(xv, yv)
	})
}

// TaggedOf derives equality on tagged unions from the discriminant's
// capability. Two tagged values are equal when their discriminants are equal
// and their payloads, once both are known to live at the same index, are
// equal as well. Discriminant comparison short-circuits: payloads are never
// inspected across differing indices.
//
// The payload comparison is resolved dynamically: payloads of differing
// dynamic types are unequal, otherwise the canonical registered capability of
// the payload type is used, falling back to reflectkit.Equal for types that
// never joined the framework.
func TaggedOf[I any](i Eq[I]) Eq[tagged.Union[I]] {
	return New[tagged.Union[I]](func(x, y tagged.Union[I]) bool {
		if !i.Op(x.Index(), y.Index()) {
			return false
		}
		return payloadEqual(x.Payload(), y.Payload())
	})
}

func payloadEqual(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	xt, yt := reflect.TypeOf(x), reflect.TypeOf(y)
	if xt != yt {
		return false
	}
	if op, ok := reg.lookupDynamic(xt); ok {
		return op(x, y)
	}
	return reflectkit.Equal(x, y)
}

func init() { // canonical instances of the built-in base types
	Register[bool](Bool())
	Register[string](Strings[string]())
	Register[struct{}](Unit())
	Register[int](Numbers[int]())
	Register[int8](Numbers[int8]())
	Register[int16](Numbers[int16]())
	Register[int32](Numbers[int32]())
	Register[int64](Numbers[int64]())
	Register[uint](Numbers[uint]())
	Register[uint8](Numbers[uint8]())
	Register[uint16](Numbers[uint16]())
	Register[uint32](Numbers[uint32]())
	Register[uint64](Numbers[uint64]())
	Register[uintptr](Numbers[uintptr]())
}
