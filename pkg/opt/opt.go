// Package opt provides an immutable optional value wrapper.
//
// Opt is how this module expresses intentional partiality: an operation that
// may not produce a result returns an Opt instead of raising an error, and
// the caller is expected to branch on it at the use site.
package opt

// Opt either holds a value of T or is empty.
// The zero Opt is the empty one.
type Opt[T any] struct {
	value T
	ok    bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, ok: true}
}

// None returns the empty Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Of lifts Go's comma-ok convention into an Opt.
func Of[T any](v T, ok bool) Opt[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Lookup returns the held value and whether one is present.
func (o Opt[T]) Lookup() (T, bool) {
	return o.value, o.ok
}

// OK reports whether a value is present.
func (o Opt[T]) OK() bool {
	return o.ok
}

// Value returns the held value, or the zero value of T when empty.
func (o Opt[T]) Value() T {
	return o.value
}

// OrElse returns the held value, or def when empty.
func (o Opt[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}
