package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"voltscan/internal/validation"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "VOLTSCAN"

// Config represents the complete application configuration
type Config struct {
	Locale    string          `yaml:"locale" envconfig:"LOCALE" validate:"oneof=ja en"`
	Scanner   ScannerConfig   `yaml:"scanner" envconfig:"SCANNER"`
	Export    ExportConfig    `yaml:"export" envconfig:"EXPORT"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// ScannerConfig controls how input CSV files are decoded
type ScannerConfig struct {
	Encoding string `yaml:"encoding" envconfig:"ENCODING" validate:"required,encoding"`
}

// ExportConfig controls the save prompt
type ExportConfig struct {
	DefaultExtension string `yaml:"default_extension" envconfig:"DEFAULT_EXTENSION" validate:"export_ext"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// TelemetryConfig contains OpenTelemetry configuration
type TelemetryConfig struct {
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout"`
	// MetricsFile, when set, receives a Prometheus text exposition of the
	// run's counters on shutdown.
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Load builds the configuration from defaults, an optional YAML file and
// VOLTSCAN_* environment variables, in increasing order of precedence.
// An empty configFile searches the usual locations.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// No default tags on the structs: envconfig only touches fields whose
	// variable is set, so file values survive.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML values onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// resolvePaths anchors a relative log file path at the logs directory
func (c *Config) resolvePaths() error {
	if c.Logging.FilePath == "" || filepath.IsAbs(c.Logging.FilePath) {
		return nil
	}

	paths, err := GetPaths()
	if err != nil {
		return fmt.Errorf("failed to get paths: %w", err)
	}
	c.Logging.FilePath = paths.GetLogPath(c.Logging.FilePath)
	return nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	return validation.NewStructValidator().Struct(c)
}

// Messages returns the message catalog for the configured locale
func (c *Config) Messages() Messages {
	return MessagesFor(c.Locale)
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		ConfigFileName,
		filepath.Join("configs", ConfigFileName),
	}

	if paths, err := GetPaths(); err == nil {
		locations = append(locations, filepath.Join(paths.ExecutableDir, ConfigFileName))
	}

	for _, location := range locations {
		if FileExists(location) {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration: Shift_JIS input, Japanese
// messages, .txt as the suggested output extension.
func Default() *Config {
	return &Config{
		Locale: DefaultLocale,
		Scanner: ScannerConfig{
			Encoding: DefaultEncoding,
		},
		Export: ExportConfig{
			DefaultExtension: DefaultExportExtension,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "file",
			FilePath: DefaultLogFileName,
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
		},
	}
}
