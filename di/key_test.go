package di_test

import (
	"io"
	"testing"

	"github.com/sghaida/codi/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyedConfig struct {
	DSN string
}

// TypeOf
func TestTypeOf_PreservesInterfaceTypes(t *testing.T) {
	t.Parallel()

	concrete := di.TypeOf[*keyedConfig]()
	require.NotNil(t, concrete)
	assert.Equal(t, "*di_test.keyedConfig", concrete.String())

	iface := di.TypeOf[io.Reader]()
	require.NotNil(t, iface)
	assert.Equal(t, "io.Reader", iface.String())
}

// KeyOf / Qualified
func TestKeyOf_QualifierHandling(t *testing.T) {
	t.Parallel()

	plain := di.KeyOf[*keyedConfig]()
	assert.False(t, plain.Qualified())
	assert.Equal(t, di.TypeOf[*keyedConfig](), plain.Type)

	qualified := di.KeyOf[*keyedConfig]("primary")
	assert.True(t, qualified.Qualified())
	assert.Equal(t, "primary", qualified.Qualifier)

	// keys are comparable by value
	assert.Equal(t, plain, di.KeyOf[*keyedConfig]())
	assert.NotEqual(t, plain, qualified)
}

// String
func TestBindingKey_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		key  di.BindingKey
		want string
	}{
		{
			name: "unqualified",
			key:  di.KeyOf[*keyedConfig](),
			want: "*di_test.keyedConfig",
		},
		{
			name: "qualified",
			key:  di.KeyOf[*keyedConfig]("primary"),
			want: `*di_test.keyedConfig("primary")`,
		},
		{
			name: "interface type",
			key:  di.KeyOf[io.Reader]("stdin"),
			want: `io.Reader("stdin")`,
		},
		{
			name: "zero key",
			key:  di.BindingKey{},
			want: "<nil>",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.key.String())
		})
	}
}
