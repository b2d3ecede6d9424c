package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 8*time.Hour, cfg.Admin.TokenTTL)
	assert.Equal(t, 60*time.Second, cfg.Cache.StatsTTL)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.True(t, cfg.Quiz.AllowRetakes)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
}

func TestFromViper_SMTPFromFallsBackToUsername(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("smtp.username", "noreply@viaproposito.org")

	cfg := fromViper(v)
	assert.Equal(t, "noreply@viaproposito.org", cfg.SMTP.From)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("QUIZ_ALLOW_RETAKES", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Admin.Password)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.False(t, cfg.Quiz.AllowRetakes)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{
		Host: "db", Port: 5432, User: "app", Password: "p@ss word", DBName: "quiz", SSLMode: "require",
	}}
	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/quiz?sslmode=require", cfg.GetDSN())

	cfg.DB.URL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.GetDSN())
}

func TestValidate(t *testing.T) {
	cfg := &Config{Admin: AdminConfig{TokenTTL: time.Hour}}
	assert.Error(t, cfg.Validate())

	cfg.Admin.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg.Admin.JWTSecret = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, cfg.Validate())
}
