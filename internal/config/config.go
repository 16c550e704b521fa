package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the jsonkit CLI
type Config struct {
	Indent  int           `yaml:"indent"`
	Flatten FlattenConfig `yaml:"flatten"`
	Output  OutputConfig  `yaml:"output"`
	Dev     DevConfig     `yaml:"dev"`
}

// FlattenConfig controls how flattened keys are rendered
type FlattenConfig struct {
	Separator string `yaml:"separator"`
	KeyCase   string `yaml:"key_case"` // none, snake, camel, pascal, kebab
}

// OutputConfig controls how results are written
type OutputConfig struct {
	TrailingNewline bool `yaml:"trailing_newline"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Indent: 2,
		Flatten: FlattenConfig{
			Separator: ".",
			KeyCase:   "none",
		},
		Output: OutputConfig{
			TrailingNewline: true,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonkit.yml", ".jsonkit.yaml", "jsonkit.yml", "jsonkit.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

func (c *Config) validate() error {
	switch c.Flatten.KeyCase {
	case "", "none", "snake", "camel", "pascal", "kebab":
	default:
		return fmt.Errorf("invalid flatten key_case '%s': must be none, snake, camel, pascal or kebab", c.Flatten.KeyCase)
	}
	if c.Flatten.Separator == "" {
		return fmt.Errorf("flatten separator must not be empty")
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative")
	}
	return nil
}

// GetFlatKey returns the presentation form of a single flattened key
// segment, applying the configured case conversion
func (c *Config) GetFlatKey(segment string) string {
	switch c.Flatten.KeyCase {
	case "snake":
		return strcase.ToSnake(segment)
	case "camel":
		return strcase.ToLowerCamel(segment)
	case "pascal":
		return strcase.ToCamel(segment)
	case "kebab":
		return strcase.ToKebab(segment)
	default:
		return segment
	}
}
