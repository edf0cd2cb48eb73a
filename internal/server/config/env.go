package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. Only variables
// that are actually set override the current values, so the JSON overlay and
// defaults survive a sparse environment.
//
// Variables:
//
//	ADDRESS               HTTP bind address
//	STORE_BACKEND         dynamodb | postgres | memory
//	DYNAMODB_TABLE        DynamoDB table name
//	AWS_REGION            AWS region
//	AWS_ENDPOINT          DynamoDB endpoint override (local containers)
//	AWS_ACCESS_KEY_ID     static AWS credentials (optional)
//	AWS_SECRET_ACCESS_KEY static AWS credentials (optional)
//	DATABASE_DSN          PostgreSQL DSN
//	JWT_SECRET            token signing secret
//	TOKEN_VALIDITY        token lifetime, Go duration syntax ("1h")
func parseEnv(config *Config) {
	setIfPresent := func(name string, target *string) {
		if v, ok := os.LookupEnv(name); ok {
			*target = v
		}
	}

	setIfPresent("ADDRESS", &config.Address)
	setIfPresent("STORE_BACKEND", &config.StoreBackend)
	setIfPresent("DYNAMODB_TABLE", &config.DynamoTable)
	setIfPresent("AWS_REGION", &config.AWSRegion)
	setIfPresent("AWS_ENDPOINT", &config.AWSEndpoint)
	setIfPresent("AWS_ACCESS_KEY_ID", &config.AWSAccessKeyID)
	setIfPresent("AWS_SECRET_ACCESS_KEY", &config.AWSSecretAccessKey)
	setIfPresent("DATABASE_DSN", &config.DatabaseDSN)
	setIfPresent("JWT_SECRET", &config.SecretKey)

	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
}
