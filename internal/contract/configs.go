package contract

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bowen31337/prdscope/schema"
)

// Default values for configuration.
const (
	DefaultPrecision    = 1
	DefaultBranchPrefix = "ralph"
	DefaultOutputName   = "prd.json"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for an invocation.
// This struct remains the "final, validated" config.
type Config struct {
	PRDPath  string
	ArchPath string

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	FactorCap    int
	BranchPrefix string

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// Clone returns a copy of the config so callers can override fields for one
// request without mutating the shared base config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tags
	PRDPathStr  string
	ArchPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	FactorCap        int    `mapstructure:"factor-cap"`
	BranchPrefix     string `mapstructure:"branch-prefix"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := resolveDocumentPaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 2. FactorCap Validation ---
	if input.FactorCap <= 0 {
		return fmt.Errorf("factor-cap must be greater than 0 (received %d)", input.FactorCap)
	}
	cfg.FactorCap = input.FactorCap

	// --- 3. BranchPrefix Validation ---
	cfg.BranchPrefix = strings.TrimSpace(input.BranchPrefix)
	if cfg.BranchPrefix == "" {
		return fmt.Errorf("branch-prefix cannot be empty")
	}
	if strings.ContainsAny(cfg.BranchPrefix, " \t") {
		return fmt.Errorf("branch-prefix cannot contain whitespace (received %q)", input.BranchPrefix)
	}

	return nil
}

// validateBackendConfigs validates the history backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidHistoryBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// resolveDocumentPaths normalizes the PRD and architecture paths to absolute
// form. Paths are optional at this stage; commands that need a PRD pass one
// as a positional argument and the document loader reports a missing file.
func resolveDocumentPaths(cfg *Config, input *ConfigRawInput) error {
	if input.PRDPathStr != "" {
		abs, err := filepath.Abs(input.PRDPathStr)
		if err != nil {
			return err
		}
		cfg.PRDPath = filepath.Clean(abs)
	}
	if input.ArchPathStr != "" {
		abs, err := filepath.Abs(input.ArchPathStr)
		if err != nil {
			return err
		}
		cfg.ArchPath = filepath.Clean(abs)
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
