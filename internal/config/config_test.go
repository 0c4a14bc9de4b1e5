package config_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/thinknest/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Features.Challenges)
	assert.True(t, cfg.Features.FeaturedIdeas)
	assert.Equal(t, 5, cfg.Contact.RateLimit)
	assert.Equal(t, time.Minute, cfg.Contact.RateWindow)
	assert.Equal(t, int64(30<<20), cfg.Upload.MaxBytes)
	assert.False(t, cfg.RecaptchaActive())
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password= dbname=thinknest sslmode=disable search_path=public",
		cfg.DSN())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/thinknest?sslmode=require")
	t.Setenv("CHALLENGES_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://thinknest.example.com, https://admin.example.com")
	t.Setenv("CONTACT_ENABLE_RECAPTCHA", "true")
	t.Setenv("RECAPTCHA_SECRET", "shh")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres://app:secret@db:5432/thinknest?sslmode=require", cfg.DSN())
	assert.False(t, cfg.Features.Challenges)
	assert.Equal(t, []string{"https://thinknest.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.RecaptchaActive())
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
}

func TestRecaptchaNeedsSecret(t *testing.T) {
	t.Setenv("CONTACT_ENABLE_RECAPTCHA", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.RecaptchaActive())
}

func TestValidate(t *testing.T) {
	t.Run("short admin secret", func(t *testing.T) {
		t.Setenv("ADMIN_JWT_SECRET", "short")

		_, err := config.Load()
		assert.ErrorContains(t, err, "ADMIN_JWT_SECRET")
	})

	t.Run("non positive upload limit", func(t *testing.T) {
		t.Setenv("UPLOAD_MAX_BYTES", "0")

		_, err := config.Load()
		assert.ErrorContains(t, err, "UPLOAD_MAX_BYTES")
	})
}
