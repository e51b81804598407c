package weld

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Param builders
// -----------------------------------------------------------------------------

// TestParamBuilders verifies P / Of / Opt produce value copies.
func TestParamBuilders(t *testing.T) {
	t.Parallel()

	p := P("dsn")
	assert.Equal(t, Param{Name: "dsn"}, p)

	annotated := p.Of(Type[string]())
	assert.Equal(t, Type[string](), annotated.Annotation)
	assert.Nil(t, p.Annotation)

	optional := annotated.Opt()
	assert.True(t, optional.Optional)
	assert.False(t, annotated.Optional)
}

//
// -----------------------------------------------------------------------------
// Func validation
// -----------------------------------------------------------------------------

// TestFunc_NilFunction verifies Func rejects nil.
func TestFunc_NilFunction(t *testing.T) {
	t.Parallel()

	f, err := Func(nil)
	require.ErrorIs(t, err, ErrNilFunc)
	assert.Nil(t, f)
}

// TestFunc_InvalidShapes verifies non-factory functions are rejected.
func TestFunc_InvalidShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   any
	}{
		{"not a function", 42},
		{"variadic", func(xs ...int) int { return 0 }},
		{"no returns", func() {}},
		{"three returns", func() (int, int, error) { return 0, 0, nil }},
		{"second return not error", func() (int, string) { return 0, "" }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Func(tc.fn)
			require.Error(t, err)

			var ife InvalidFactoryError
			require.True(t, errors.As(err, &ife))
		})
	}
}

// TestFunc_ArityMismatch verifies declared params must match the function.
func TestFunc_ArityMismatch(t *testing.T) {
	t.Parallel()

	_, err := Func(func(a int) int { return a }, P("a"), P("b"))
	require.Error(t, err)

	var ife InvalidFactoryError
	require.True(t, errors.As(err, &ife))
}

// TestFunc_AnnotationDefaultsToParamType verifies a Param with no annotation
// gets the function parameter's own type.
func TestFunc_AnnotationDefaultsToParamType(t *testing.T) {
	t.Parallel()

	f, err := Func(func(a int, b string) int { return a }, P("a"), P("b"))
	require.NoError(t, err)
	require.Len(t, f.params, 2)
	assert.Equal(t, Type[int](), f.params[0].Annotation)
	assert.Equal(t, Type[string](), f.params[1].Annotation)

	// An explicit annotation is kept.
	f, err = Func(func(a int) int { return a }, P("a").Of("alias"))
	require.NoError(t, err)
	assert.Equal(t, "alias", f.params[0].Annotation)
}

// TestFunc_ImplicitParams verifies omitting params entirely resolves every
// argument by type.
func TestFunc_ImplicitParams(t *testing.T) {
	t.Parallel()

	f, err := Func(func(a int, b string) int { return a })
	require.NoError(t, err)
	require.Len(t, f.params, 2)
	assert.Equal(t, "", f.params[0].Name)
	assert.Equal(t, Type[int](), f.params[0].Annotation)
}

// TestFunc_ContextParameter verifies a leading context.Context is not a
// dependency.
func TestFunc_ContextParameter(t *testing.T) {
	t.Parallel()

	f, err := Func(func(ctx context.Context, a int) int { return a }, P("a"))
	require.NoError(t, err)
	assert.True(t, f.takesCtx)
	require.Len(t, f.params, 1)
	assert.Equal(t, Type[int](), f.paramType(0))
}

// TestFunc_ErrorReturn verifies the (value, error) shape is recognized.
func TestFunc_ErrorReturn(t *testing.T) {
	t.Parallel()

	f, err := Func(func() (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.True(t, f.hasErr)

	f, err = Func(func() int { return 1 })
	require.NoError(t, err)
	assert.False(t, f.hasErr)
}

// TestFunc_Name verifies factories carry a non-empty diagnostic name.
func TestFunc_Name(t *testing.T) {
	t.Parallel()

	f := MustFunc(func() int { return 1 })
	assert.NotEmpty(t, f.Name())
}

// TestMustFunc_Panics verifies MustFunc panics on invalid input.
func TestMustFunc_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustFunc(nil) })
	assert.NotPanics(t, func() { MustFunc(func() int { return 0 }) })
}
