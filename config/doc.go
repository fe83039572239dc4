// Package config provides configuration loading and validation for
// matrixflow binaries.
//
// It uses Viper to load configuration from files and environment variables,
// and godotenv to pick up .env files. Values resolve in order: config.yml,
// then .env, then process environment (highest precedence).
//
// # Usage
//
//	cfg := DefaultAppConfig()
//	err := config.LoadConfig("matrixflow", &cfg)
//
// Environment variables map onto nested keys by underscore splitting, so
// PIPELINE_MATRIX_SIZE overrides the pipeline.matrix_size key.
package config
