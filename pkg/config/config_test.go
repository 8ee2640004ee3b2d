package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_FaltaConexion(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"DATABASE_URL": "postgres://localhost/pp"}))
	assert.ErrorIs(t, err, ErrMissingConnection)

	_, err = fromViper(newViper(map[string]any{"SUPABASE_ANON_KEY": "anon"}))
	assert.ErrorIs(t, err, ErrMissingConnection)
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"DATABASE_URL":      "postgres://localhost/pp",
		"SUPABASE_ANON_KEY": "anon",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "anon", cfg.JWT.Secret, "en development se usa la clave pública como secreto")
	assert.Equal(t, []string{"admin", "@privilegepass.com.br"}, cfg.Roles.AdminMarkers)
	assert.Equal(t, "5521999999999", cfg.Support.WhatsAppNumber)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestFromViper_ProduccionExigeJWTSecret(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{
		"APP_ENV":           "production",
		"DATABASE_URL":      "postgres://localhost/pp",
		"SUPABASE_ANON_KEY": "anon",
	}))
	assert.Error(t, err)
}

func TestFromViper_ListasYEnteros(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"DATABASE_URL":         "postgres://localhost/pp",
		"SUPABASE_ANON_KEY":    "anon",
		"HTTP_PORT":            "9090",
		"ROLE_PARTNER_MARKERS": " parceiro , lounge ,",
	}))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []string{"parceiro", "lounge"}, cfg.Roles.PartnerMarkers)
}
