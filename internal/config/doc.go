// Package config provides centralized configuration management for voltscan.
// It handles loading configuration from multiple sources, validation, and the
// localized message catalog shared by the scanner, exporter and dialogs.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file (voltscan.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern VOLTSCAN_* for namespacing:
//
//	VOLTSCAN_LOCALE=en
//	VOLTSCAN_SCANNER_ENCODING=utf-8
//	VOLTSCAN_EXPORT_DEFAULT_EXTENSION=.csv
//	VOLTSCAN_LOGGING_LEVEL=debug
//	VOLTSCAN_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For testing, use config.Default() to get a configuration that needs no
// environment or files.
package config
