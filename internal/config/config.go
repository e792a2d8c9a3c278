// Package config loads application configuration from environment
// variables (prefix KOKO), an optional YAML file and an optional .env
// file, in that order of precedence.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	AI      AIConfig      `yaml:"ai" envconfig:"AI"`
	Locale  LocaleConfig  `yaml:"locale" envconfig:"LOCALE"`
}

// PathsConfig contains file system paths.
type PathsConfig struct {
	InputFile string `yaml:"input_file" envconfig:"INPUT_FILE" default:"data/sales_sample.csv"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"output"`
	LogsDir   string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/kokoloko.log"`
}

// AIConfig configures the optional text-generation collaborator. An
// empty APIKey disables AI generation entirely; templates are used.
type AIConfig struct {
	APIKey    string `yaml:"-" ignored:"true"`
	Model     string `yaml:"model" envconfig:"MODEL" default:"gemini-1.5-flash"`
	MaxTokens int32  `yaml:"max_tokens" envconfig:"MAX_TOKENS" default:"512"`
}

// LocaleConfig selects the output language.
type LocaleConfig struct {
	Language string `yaml:"language" envconfig:"LANGUAGE" default:"en"`
}

// geminiKeyEnv is the credential for the AI collaborator. It is read
// directly rather than through the KOKO prefix so the same variable
// works for every tool that talks to the Gemini API.
const geminiKeyEnv = "GEMINI_API_KEY"

// Load builds the configuration: .env file (if present), then defaults
// and environment variables, then an optional YAML file overlay.
func Load(configFile string) (*Config, error) {
	// A missing .env is normal; only real parse failures would surface
	// here and even those should not stop a batch run.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("KOKO", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := applyFile(&cfg, configFile); err != nil {
				return nil, err
			}
		}
	}

	cfg.AI.APIKey = os.Getenv(geminiKeyEnv)
	return &cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
