// Package config provides configuration management for the map importer.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live in `default:"..."` struct tags and are
// registered by reflection, so every key can be overridden by its upper-case,
// underscore-joined environment variable (store.redis.addr -> STORE_REDIS_ADDR).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, upload limits
//   - Storage: S3/MinIO credentials and the bucket holding map exports
//   - Log: Logging level and format
//   - Database: MySQL or SQLite connection details
//   - Store: document store backend (database, redis, memory)
//   - Kafka: reconcile event publishing
//   - Import: burg URL base, worker count, recreate policy
//
// The loaded config is checked with go-playground/validator before it is returned.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
