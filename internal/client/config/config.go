// Package config handles configuration for the CLI component.
package config

import (
	"flag"
	"os"

	"github.com/mp28jam28/board-auth/internal/flagx"
)

// Config holds runtime settings for the auth CLI.
type Config struct {
	// ServerURL is the base URL of the auth service, e.g. "http://127.0.0.1:8080".
	ServerURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
}

// LoadConfig applies defaults, then the SERVER_URL environment variable,
// then the -a flag. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if v, ok := os.LookupEnv("SERVER_URL"); ok {
		cfg.ServerURL = v
	}

	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "auth service base URL")
	_ = fs.Parse(args)

	return cfg
}
