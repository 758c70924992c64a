// Package equal defines the capability interfaces through which
// method-carrying types join the equality framework.
//
// A type that already expresses its own semantic equality or ordering as a
// method does not need to restate a comparison function: the constructors in
// the root package (ByEqualMethod, ByComparison) lift these interfaces into
// capability values.
package equal

// Equalable defines custom equality semantics for a type.
//
// Go's == operator performs syntactic equality: for structs it compares all
// fields directly. Equalable lets a type define semantic equality based on
// domain logic instead, which is what the equality capabilities of this
// module decide.
type Equalable[T any] interface {
	// Equal will perform semantic equality checking.
	Equal(oth T) bool
}

// Comparable defines how three-way comparison can be implemented.
//
// Types implementing this interface must provide a Compare method that
// defines the ordering or equivalence of values; a zero result means the
// values are equal.
type Comparable[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	Compare(T) int
}
