package opt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/eqkit/pkg/opt"
)

func TestSome(t *testing.T) {
	o := opt.Some(42)
	require.True(t, o.OK())
	v, ok := o.Lookup()
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.Equal(t, 42, o.Value())
}

func TestNone(t *testing.T) {
	o := opt.None[int]()
	require.False(t, o.OK())
	v, ok := o.Lookup()
	require.False(t, ok)
	require.Equal(t, 0, v)
	require.Equal(t, 0, o.Value())
}

func TestZeroValueIsEmpty(t *testing.T) {
	var o opt.Opt[string]
	require.False(t, o.OK())
}

func TestOf(t *testing.T) {
	require.True(t, opt.Of(1, true).OK())
	require.False(t, opt.Of(1, false).OK())
	require.Equal(t, 0, opt.Of(1, false).Value(), "the held value of a rejected lift is the zero value")
}

func TestOrElse(t *testing.T) {
	require.Equal(t, 42, opt.Some(42).OrElse(7))
	require.Equal(t, 7, opt.None[int]().OrElse(7))
}
