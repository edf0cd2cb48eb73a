package config

import (
	"encoding/json"
	"os"

	"github.com/mp28jam28/board-auth/internal/flagx"
	"github.com/mp28jam28/board-auth/internal/timex"
)

// jsonConfig is the intermediate DTO used only for reading JSON config
// files. It uses timex.Duration for the validity field so the file can say
// "1h" instead of nanoseconds; after unmarshalling, the values are copied
// into the runtime Config.
type jsonConfig struct {
	Address            string         `json:"address"`
	StoreBackend       string         `json:"store_backend"`
	DynamoTable        string         `json:"dynamodb_table"`
	AWSRegion          string         `json:"aws_region"`
	AWSEndpoint        string         `json:"aws_endpoint"`
	AWSAccessKeyID     string         `json:"aws_access_key_id"`
	AWSSecretAccessKey string         `json:"aws_secret_access_key"`
	DatabaseDSN        string         `json:"database_dsn"`
	SecretKey          string         `json:"secret_key"`
	TokenValidity      timex.Duration `json:"token_validity"`
}

// parseJSON loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c/-config flags; when neither is
// set, no file is loaded. Only fields present in the file override the
// current values. An unreadable or invalid file panics: a config file that
// was explicitly requested but cannot be used is a startup defect.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.StoreBackend != "" {
		config.StoreBackend = c.StoreBackend
	}
	if c.DynamoTable != "" {
		config.DynamoTable = c.DynamoTable
	}
	if c.AWSRegion != "" {
		config.AWSRegion = c.AWSRegion
	}
	if c.AWSEndpoint != "" {
		config.AWSEndpoint = c.AWSEndpoint
	}
	if c.AWSAccessKeyID != "" {
		config.AWSAccessKeyID = c.AWSAccessKeyID
	}
	if c.AWSSecretAccessKey != "" {
		config.AWSSecretAccessKey = c.AWSSecretAccessKey
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidity.Duration != 0 {
		config.TokenValidity = c.TokenValidity.Duration
	}
}
