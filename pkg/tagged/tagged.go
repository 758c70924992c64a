// Package tagged provides a tagged union carrier: a discriminant index paired
// with a payload whose type may depend on the index.
//
// Go cannot express an index-dependent payload type statically, so the
// payload travels as a heterogeneous box, and moving a payload back to its
// static type is a checked dynamic operation (As). Code comparing two unions
// must compare discriminants first and never inspect payloads across
// differing indices; the composite equality instance in the root package
// enforces this ordering.
package tagged

// Union pairs a discriminant of type I with a payload belonging to that index.
type Union[I any] struct {
	index   I
	payload any
}

// Of tags payload v with the discriminant i.
func Of[T, I any](i I, v T) Union[I] {
	return Union[I]{index: i, payload: v}
}

// Index returns the discriminant.
func (u Union[I]) Index() I {
	return u.index
}

// Payload returns the boxed payload.
func (u Union[I]) Payload() any {
	return u.payload
}

// As transports the payload of u to the static type T.
// It reports false when the payload does not live at a T-typed index,
// which is the runtime remnant of comparing values at different indices.
func As[T, I any](u Union[I]) (T, bool) {
	v, ok := u.payload.(T)
	return v, ok
}
