// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/newswire/ai"
	"github.com/poiesic/newswire/ingestion"
	"github.com/poiesic/newswire/search"
)

const dateLayout = "2006-01-02"

// Config is the full application configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Search    SearchConfig    `yaml:"search"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// StorageConfig locates the embedded article database.
type StorageConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// DatasetConfig describes the CSV dataset and the ingestion window.
type DatasetConfig struct {
	Path        string `yaml:"path"`
	WindowStart string `yaml:"window_start"`
	WindowEnd   string `yaml:"window_end"`
	PoolSize    int    `yaml:"pool_size"`
}

// EmbeddingConfig configures the embedding provider.
type EmbeddingConfig struct {
	Host      string `yaml:"host"`
	Token     string `yaml:"token"`
	Model     string `yaml:"model"`
	BatchSize int    `yaml:"batch_size"`
}

// SearchConfig configures semantic search behavior.
type SearchConfig struct {
	MinSimilarity float32 `yaml:"min_similarity"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration populated with working defaults.
// Every value can be overridden by the YAML file or environment.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: "./data/newswire",
		},
		Dataset: DatasetConfig{
			Path:        "./data/news.csv",
			WindowStart: ingestion.DefaultWindowStart.Format(dateLayout),
			WindowEnd:   ingestion.DefaultWindowEnd.Format(dateLayout),
			PoolSize:    ingestion.DefaultPoolSize,
		},
		Embedding: EmbeddingConfig{
			Host:      "https://api.openai.com/v1",
			Token:     "none",
			Model:     "text-embedding-3-small",
			BatchSize: ai.DefaultBatchSize,
		},
		Search: SearchConfig{
			MinSimilarity: search.DefaultMinSimilarity,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. A missing file is not an error when path is
// empty; defaults plus environment are used instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets deployment-sensitive values come from the environment,
// taking precedence over the file.
func (c *Config) applyEnv() {
	if token := os.Getenv("NEWSWIRE_EMBEDDING_TOKEN"); token != "" {
		c.Embedding.Token = token
	}
	if host := os.Getenv("NEWSWIRE_EMBEDDING_HOST"); host != "" {
		c.Embedding.Host = host
	}
	if model := os.Getenv("NEWSWIRE_EMBEDDING_MODEL"); model != "" {
		c.Embedding.Model = model
	}
	if addr := os.Getenv("NEWSWIRE_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if path := os.Getenv("NEWSWIRE_STORAGE_PATH"); path != "" {
		c.Storage.Path = path
	}
	if path := os.Getenv("NEWSWIRE_DATASET_PATH"); path != "" {
		c.Dataset.Path = path
	}
}

// Validate checks value ranges and the ingestion window.
func (c *Config) Validate() error {
	if c.Embedding.BatchSize < 1 {
		return fmt.Errorf("%w: embedding batch size must be positive", ErrInvalidConfig)
	}
	if c.Dataset.PoolSize < 1 {
		return fmt.Errorf("%w: dataset pool size must be positive", ErrInvalidConfig)
	}
	if c.Search.MinSimilarity < -1 || c.Search.MinSimilarity > 1 {
		return fmt.Errorf("%w: search min similarity must be in [-1, 1]", ErrInvalidConfig)
	}
	start, end, err := c.Window()
	if err != nil {
		return err
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: dataset window start must precede end", ErrInvalidConfig)
	}
	return nil
}

// Window parses the ingestion date window. The end date is exclusive.
func (c *Config) Window() (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, c.Dataset.WindowStart, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: window_start: %w", ErrInvalidConfig, err)
	}
	end, err := time.ParseInLocation(dateLayout, c.Dataset.WindowEnd, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: window_end: %w", ErrInvalidConfig, err)
	}
	return start, end, nil
}

// LogLevel maps the configured level name onto slog's scale.
// Unknown names fall back to info.
func (c *Config) LogLevel() string {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return c.Logging.Level
	default:
		return "info"
	}
}
