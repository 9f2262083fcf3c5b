package report

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Config gathers the CLI's runtime settings.
type Config struct {
	InputPath   string
	OutputPath  string
	ProfilePath string
	MaxIdeas    int
	Seed        int64

	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string
	CacheDir   string

	Verbose bool
}

// FileConfig is the optional YAML configuration file schema.
type FileConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Profile  string `yaml:"profile"`
	MaxIdeas int    `yaml:"maxIdeas"`
	Seed     int64  `yaml:"seed"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	Cache struct {
		Dir string `yaml:"dir"`
	} `yaml:"cache"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig overlays file values onto cfg for fields still unset, so
// explicit flags keep precedence over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.ProfilePath == "" && fc.Profile != "" {
		cfg.ProfilePath = fc.Profile
	}
	if cfg.MaxIdeas == 0 && fc.MaxIdeas > 0 {
		cfg.MaxIdeas = fc.MaxIdeas
	}
	if cfg.Seed == 0 && fc.Seed != 0 {
		cfg.Seed = fc.Seed
	}
	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.CacheDir == "" && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig checks the minimum needed to run: either a saved report to
// read or a model to fetch one from.
func ValidateConfig(cfg Config) error {
	if cfg.InputPath == "" && cfg.LLMModel == "" {
		return errors.New("config: either an input path or llm.model is required")
	}
	if cfg.MaxIdeas < 0 {
		return errors.New("config: maxIdeas must not be negative")
	}
	return nil
}
