package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/privilege-pass-api/pkg/password"
)

func TestHashYVerify(t *testing.T) {
	h, err := password.Hash("segredo123")
	require.NoError(t, err)
	assert.True(t, password.IsHash(h))

	ok, rehash := password.Verify(h, "segredo123")
	assert.True(t, ok)
	assert.False(t, rehash)

	ok, _ = password.Verify(h, "outra")
	assert.False(t, ok)
}

func TestVerify_TextoPlanoHeredado(t *testing.T) {
	ok, rehash := password.Verify("123456", "123456")
	assert.True(t, ok)
	assert.True(t, rehash, "una coincidencia en texto plano debe re-hashearse")

	ok, rehash = password.Verify("123456", "654321")
	assert.False(t, ok)
	assert.False(t, rehash)
}

func TestVerify_SinPassword(t *testing.T) {
	ok, _ := password.Verify("", "")
	assert.False(t, ok, "una cuenta sin contraseña no puede iniciar sesión")
}
