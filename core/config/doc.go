// Package config provides configuration management for the player enricher.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional config.yaml and a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Storage: S3/MinIO credentials and the bucket holding uploads and the registry
//   - Log: Logging level and format
//   - Database: sink connection (mysql or sqlite)
//   - Pipeline: join mode, batch size, registry location and ranking formats
//   - Valuation: valuation API root and league settings
//
// Every field carries a `default` tag; environment variables use the key
// with dots replaced by underscores, e.g. PIPELINE_BATCH_SIZE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Pipeline.JoinMode)
package config
