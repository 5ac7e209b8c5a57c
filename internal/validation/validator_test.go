package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Inner inner `toml:"inner"`
	Mode  string `toml:"mode" validate:"oneof=fast slow"`
}

type inner struct {
	Count int `toml:"count" validate:"gte=2"`
}

func TestStructReportsEveryField(t *testing.T) {
	v := New("toml")

	err := v.Struct(settings{Inner: inner{Count: 1}, Mode: "medium"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inner.count must be at least 2, got 1")
	assert.Contains(t, err.Error(), "mode must be one of: fast slow")

	assert.NoError(t, v.Struct(settings{Inner: inner{Count: 2}, Mode: "fast"}))
}

func TestVarEmail(t *testing.T) {
	v := New("toml")

	assert.NoError(t, v.Var("email", "grower@example.org", "required,email"))

	err := v.Var("email", "", "required,email")
	require.Error(t, err)
	assert.Equal(t, "email is required", err.Error())

	err = v.Var("email", "not-an-address", "required,email")
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address", err.Error())
}
