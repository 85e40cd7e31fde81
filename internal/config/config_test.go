package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ENV", "JWT_TTL", "PUBLIC_URL", "PAGE_SIZE", "CORS_ORIGINS", "CHECK_EMAIL_DOMAIN", "SERVER_PORT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Nil(t, cfg.CORSOrigins)
	assert.False(t, cfg.CheckEmailDomain)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("PUBLIC_URL", "https://foodgram.example/")
	t.Setenv("PAGE_SIZE", "not-a-number")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("CHECK_EMAIL_DOMAIN", "true")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "https://foodgram.example", cfg.PublicURL)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.CheckEmailDomain)
}

func TestAbsoluteURL(t *testing.T) {
	cfg := &Config{PublicURL: "https://foodgram.example"}

	assert.Equal(t, "https://foodgram.example/media/a.webp", cfg.AbsoluteURL("/media/a.webp"))
	assert.Equal(t, "https://foodgram.example/media/a.webp", cfg.AbsoluteURL("media/a.webp"))
	assert.Equal(t, "https://cdn.example/a.webp", cfg.AbsoluteURL("https://cdn.example/a.webp"))
}
