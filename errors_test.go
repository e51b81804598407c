package weld

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorMessages pins the wording of the typed errors.
func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			"invalid target",
			InvalidTargetError{Reason: "target cannot be empty"},
			"weld: invalid target: target cannot be empty",
		},
		{
			"string target",
			StringTargetError{Name: "db"},
			`weld: string target "db" must be explicitly mapped`,
		},
		{
			"invalid scope",
			InvalidScopeError{Scope: Scope("singelton")},
			`weld: unknown binding scope "singelton"`,
		},
		{
			"collision",
			CollisionError{Targets: []any{"db"}},
			`weld: ambient and override contexts share 1 binding(s), first "db"`,
		},
		{
			"unresolved target",
			UnresolvedTargetError{Target: "db"},
			`weld: no binding for target "db"`,
		},
		{
			"missing argument",
			MissingArgumentError{Factory: "main.NewDB", Param: `"dsn"`},
			`weld: factory main.NewDB missing required argument "dsn"`,
		},
		{
			"argument type",
			ArgumentTypeError{Factory: "main.NewDB", Param: "#0", Got: Type[int](), Want: Type[string]()},
			"weld: factory main.NewDB argument #0 has wrong type (got int, want string)",
		},
		{
			"not constructible",
			NotConstructibleError{Type: Type[io.Reader]()},
			"weld: type io.Reader is not constructible and has no binding",
		},
		{
			"depth exceeded",
			DepthExceededError{Limit: 100},
			"weld: resolution depth 100 exceeded (cyclic binding graph?)",
		},
		{
			"wrong type",
			WrongTypeError{Got: Type[int](), Want: Type[string]()},
			"weld: resolved value has wrong type (got int, want string)",
		},
		{
			"invalid factory",
			InvalidFactoryError{Reason: "variadic functions are not supported"},
			"weld: invalid factory: variadic functions are not supported",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

// TestScopeString pins the scope names.
func TestScopeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "transient", ScopeTransient.String())
	assert.Equal(t, "local", ScopeLocal.String())
	assert.Equal(t, "singleton", ScopeSingleton.String())

	assert.True(t, ScopeLocal.valid())
	assert.False(t, Scope("other").valid())
}
