package httpclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Empty(t, cfg.Headers)
	assert.False(t, cfg.PrettyPrint)
	assert.True(t, cfg.FollowRedirects)
	assert.True(t, cfg.VerifyTLS)
}

func TestConfig_BuilderChaining(t *testing.T) {
	cfg := NewConfig().
		AddHeader("Accept", "application/json").
		WithPrettyPrint(true).
		WithRedirects(false).
		WithTLSVerification(false)

	assert.Equal(t, "application/json", cfg.Headers["Accept"])
	assert.True(t, cfg.PrettyPrint)
	assert.False(t, cfg.FollowRedirects)
	assert.False(t, cfg.VerifyTLS)
}

func TestConfig_MutatorsDoNotAlias(t *testing.T) {
	base := NewConfig().AddHeader("A", "1")
	derived := base.AddHeader("B", "2")

	assert.Equal(t, map[string]string{"A": "1"}, base.Headers)
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, derived.Headers)
}

func TestConfig_WithHeadersCopiesInput(t *testing.T) {
	input := map[string]string{"X-One": "1"}
	cfg := NewConfig().WithHeaders(input)

	input["X-Two"] = "2"
	assert.Equal(t, map[string]string{"X-One": "1"}, cfg.Headers)
}

func TestConfig_BearerToken(t *testing.T) {
	cfg := NewConfig().WithBearerToken("tok-123")
	assert.Equal(t, "Bearer tok-123", cfg.Headers["Authorization"])
}

func TestConfig_BasicAuth(t *testing.T) {
	cfg := NewConfig().WithBasicAuth("user", "password")
	assert.Equal(t, "Basic dXNlcjpwYXNzd29yZA==", cfg.Headers["Authorization"])
}
