package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
}

func TestLoadConfig_EnvOverridesDefault(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli"}

	t.Setenv("SERVER_URL", "http://auth.internal:9000")

	c := LoadConfig()
	assert.Equal(t, "http://auth.internal:9000", c.ServerURL)
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-a", "http://flag.example:8081"}

	t.Setenv("SERVER_URL", "http://auth.internal:9000")

	c := LoadConfig()
	assert.Equal(t, "http://flag.example:8081", c.ServerURL)
}
