package eqkit_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/eqkit"
)

type accountID string

func TestRegister(t *testing.T) {
	t.Run("a registered capability becomes the canonical instance of the type", func(t *testing.T) {
		defer eqkit.Register[accountID](eqkit.Strings[accountID]())()

		eq, ok := eqkit.Lookup[accountID]()
		assert.True(t, ok)
		assert.True(t, eq.Op("a", "a"))
		assert.False(t, eq.Op("a", "b"))
	})
	t.Run("registering a second canonical instance for the same type panics", func(t *testing.T) {
		defer eqkit.Register[accountID](eqkit.Strings[accountID]())()

		got := assert.Panic(t, func() {
			defer eqkit.Register[accountID](eqkit.Strings[accountID]())()
		})
		err, ok := got.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, eqkit.ErrAlreadyRegistered)
	})
	t.Run("the Replace option opts in to overwriting the canonical instance", func(t *testing.T) {
		defer eqkit.Register[accountID](eqkit.Strings[accountID]())()

		caseless := eqkit.New[accountID](func(x, y accountID) bool { return true })
		defer eqkit.Register[accountID](caseless, eqkit.Replace())()

		eq, ok := eqkit.Lookup[accountID]()
		assert.True(t, ok)
		assert.True(t, eq.Op("a", "b"), "the replacement instance is the one being served")
	})
	t.Run("a stale unregister does not remove the replacement instance", func(t *testing.T) {
		unregisterOriginal := eqkit.Register[accountID](eqkit.Strings[accountID]())
		defer unregisterOriginal()

		alwaysEqual := eqkit.New[accountID](func(x, y accountID) bool { return true })
		defer eqkit.Register[accountID](alwaysEqual, eqkit.Replace())()

		unregisterOriginal()

		eq, ok := eqkit.Lookup[accountID]()
		assert.True(t, ok)
		assert.True(t, eq.Op("a", "b"))
	})
	t.Run("registering the zero capability panics", func(t *testing.T) {
		var zero eqkit.Eq[accountID]
		assert.Panic(t, func() { defer eqkit.Register[accountID](zero)() })
	})
}

func TestLookup(t *testing.T) {
	t.Run("reports false for a type that never joined the framework", func(t *testing.T) {
		type unknown struct{ V complex128 }
		_, ok := eqkit.Lookup[unknown]()
		assert.False(t, ok)
	})
	t.Run("built-in base types have canonical instances out of the box", func(t *testing.T) {
		intEq, ok := eqkit.Lookup[int]()
		assert.True(t, ok)
		assert.True(t, intEq.Op(42, 42))

		strEq, ok := eqkit.Lookup[string]()
		assert.True(t, ok)
		assert.False(t, strEq.Op("x", "y"))

		boolEq, ok := eqkit.Lookup[bool]()
		assert.True(t, ok)
		assert.True(t, boolEq.Op(true, true))

		unitEq, ok := eqkit.Lookup[struct{}]()
		assert.True(t, ok)
		assert.True(t, unitEq.Op(struct{}{}, struct{}{}))
	})
}

func TestFor(t *testing.T) {
	t.Run("returns the canonical instance", func(t *testing.T) {
		eq := eqkit.For[int]()
		assert.True(t, eq.Op(1, 1))
		assert.False(t, eq.Op(1, 2))
	})
	t.Run("panics for a type without a canonical instance", func(t *testing.T) {
		type unknown struct{ V complex128 }
		got := assert.Panic(t, func() { eqkit.For[unknown]() })
		err, ok := got.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, eqkit.ErrNotRegistered)
	})
}
