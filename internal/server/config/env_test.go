package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesOnlySetVariables(t *testing.T) {
	var c Config
	c.LoadDefaults()

	t.Setenv("ADDRESS", ":9090")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("STORE_BACKEND", StoreMemory)
	t.Setenv("TOKEN_VALIDITY", "30m")

	parseEnv(&c)

	assert.Equal(t, ":9090", c.Address)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, StoreMemory, c.StoreBackend)
	assert.Equal(t, 30*time.Minute, c.TokenValidity)

	// untouched fields keep their defaults
	assert.Equal(t, "board-users", c.DynamoTable)
}

func TestParseEnv_IgnoresInvalidValidity(t *testing.T) {
	var c Config
	c.LoadDefaults()

	t.Setenv("TOKEN_VALIDITY", "soon")

	parseEnv(&c)

	assert.Equal(t, 1*time.Hour, c.TokenValidity)
}
