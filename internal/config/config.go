package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultRootName is the class name used when no root name hint is given.
const DefaultRootName = "Model"

// FreezedClasses fixes the generated class-declaration style. It is part of
// the output contract rather than a user option: every class is declared as
// a freezed factory class with annotated constructor parameters.
const FreezedClasses = true

// Config holds the generation options for one run.
type Config struct {
	// RootName is the name hint for the root class.
	RootName string `yaml:"root_name"`
	// AllFieldsNullable marks every generated field nullable. When false
	// ("smart" mode) a field is nullable only if its source value was null.
	AllFieldsNullable bool `yaml:"all_fields_nullable"`
	// SerializationHooks adds fromJson/toJson bindings to every class.
	SerializationHooks bool `yaml:"serialization_hooks"`
	// Format runs the output normalizer over the generated source.
	Format bool `yaml:"format"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		RootName:           DefaultRootName,
		AllFieldsNullable:  true,
		SerializationHooks: true,
		Format:             true,
	}
}

// LoadConfig loads configuration from a YAML file, layered over defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".json2dart.yml", ".json2dart.yaml", "json2dart.yml", "json2dart.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads config with CLI argument precedence. A root name
// that differs from the default always wins over the config file; boolean
// flags override unconditionally since kong resolves their final value.
func LoadConfigWithCLI(configPath, cliRootName string, allNullable, hooks, format bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliRootName != "" && cliRootName != DefaultRootName {
		cfg.RootName = cliRootName
	}
	cfg.AllFieldsNullable = allNullable
	cfg.SerializationHooks = hooks
	cfg.Format = format

	return cfg, nil
}
