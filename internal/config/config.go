package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStopwordLimit = 100
	DefaultListSize      = 20
	DefaultDimensions    = 256
	DefaultResults       = 3
	DefaultLogLevel      = "info"

	ProviderHashing = "hashing"
	ProviderOllama  = "ollama"
)

type Config struct {
	Book       BookConfig       `yaml:"book"`
	Stopwords  StopwordsConfig  `yaml:"stopwords"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Similarity SimilarityConfig `yaml:"similarity"`
	Log        LogConfig        `yaml:"log"`
}

type BookConfig struct {
	Path  string `yaml:"path"`
	Title string `yaml:"title"`
}

// StopwordsConfig points at the reference list of common English words.
// Only the first Limit entries are used.
type StopwordsConfig struct {
	Path  string `yaml:"path"`
	Limit int    `yaml:"limit"`
}

type AnalysisConfig struct {
	ListSize int `yaml:"list_size"`
}

type SimilarityConfig struct {
	Provider   string    `yaml:"provider"`
	Dimensions int       `yaml:"dimensions"`
	Results    int       `yaml:"results"`
	EmbedLLM   LLMConfig `yaml:"embed_llm"`
}

type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	return &cfg, nil
}

// Defaults returns a config with every optional field filled in.
func Defaults() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills zero values in place.
func (c *Config) SetDefaults() {
	if c.Stopwords.Limit <= 0 {
		c.Stopwords.Limit = DefaultStopwordLimit
	}
	if c.Analysis.ListSize <= 0 {
		c.Analysis.ListSize = DefaultListSize
	}
	if c.Similarity.Provider == "" {
		c.Similarity.Provider = ProviderHashing
	}
	if c.Similarity.Dimensions <= 0 {
		c.Similarity.Dimensions = DefaultDimensions
	}
	if c.Similarity.Results <= 0 {
		c.Similarity.Results = DefaultResults
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
