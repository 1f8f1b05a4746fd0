// Package config assembles runtime configuration for the importer CLI from
// flags and optional documents.
package config

import (
	"simpro-import-service/internal/report"
	"simpro-import-service/internal/schema"
	"simpro-import-service/pkg/logger"
)

// BuildSchemaConfig loads the schema document at path, or the built-in
// simPRO catalogue template when path is empty.
func BuildSchemaConfig(path string) (*schema.Config, error) {
	if path == "" {
		return schema.DefaultConfig(), nil
	}
	return schema.Load(path)
}

// CreateReportConfig creates the serialization configuration for output files.
func CreateReportConfig(noBOM bool) *report.Config {
	cfg := report.DefaultConfig()
	cfg.IncludeBOM = !noBOM
	return cfg
}

// CreateLoggerConfig creates the logger configuration for the CLI.
func CreateLoggerConfig(verbose bool) *logger.Config {
	if verbose {
		return logger.DebugConfig()
	}
	return logger.DefaultConfig()
}
