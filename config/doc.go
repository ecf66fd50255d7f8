// Package config loads the banking client configuration.
//
// Values come, in increasing precedence, from defaults, an optional YAML file
// (fidor.yml), an optional .env file and FIDOR_-prefixed environment
// variables:
//
//	FIDOR_BASE_URL=https://aps.fidor.de
//	FIDOR_ACCESS_TOKEN=f859032a6ca0a4abb2be0583b8347937
//	FIDOR_TIMEOUT=10s
//	FIDOR_LOGGING_LEVEL=debug
//
// Usage:
//
//	cfg, err := config.Load()
//	client, err := banking.New(*cfg)
package config
