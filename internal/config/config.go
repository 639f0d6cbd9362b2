package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		APIKey      string  `yaml:"api_key"`
		BaseURL     string  `yaml:"base_url"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float64 `yaml:"temperature"`
	} `yaml:"ai"`
	Output struct {
		Dir    string `yaml:"dir"`
		DBPath string `yaml:"db_path"`
	} `yaml:"output"`
}

// Defaults match the original generation settings.
const (
	DefaultMaxTokens   = 8024
	DefaultTemperature = 0.4
)

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	var cfg Config

	// 2. Load YAML config when present; a missing file falls back to env only.
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with environment variables if present
	if apiKey := os.Getenv("SITEGEN_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if provider := os.Getenv("SITEGEN_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if model := os.Getenv("SITEGEN_MODEL"); model != "" {
		cfg.AI.Model = model
	}

	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "gemini"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-pro"
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = DefaultMaxTokens
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = DefaultTemperature
	}
	if cfg.Output.DBPath == "" {
		cfg.Output.DBPath = "sitegen.db"
	}

	return &cfg, nil
}
