// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ai

import (
	"errors"
	"strings"
)

// DefaultBatchSize is the number of texts sent to the provider per call
// when no explicit batch size is configured.
const DefaultBatchSize = 1000

// Config holds configuration for the embedding provider.
type Config struct {
	// Host is the base URL for the embedding service API.
	// Example: "https://api.openai.com/v1", or a local OpenAI-compatible
	// server such as "http://localhost:11434/v1".
	Host string

	// Token is the API token. Local OpenAI-compatible services that don't
	// require authentication accept any non-empty value.
	Token string

	// Model is the model identifier to use for text embeddings.
	// Example: "text-embedding-3-small", "embeddinggemma"
	Model string

	// BatchSize is the maximum number of texts per provider call.
	// Default: DefaultBatchSize.
	BatchSize int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the embedding service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithToken sets the API token.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithModel sets the embedding model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithBatchSize sets the maximum batch size for provider calls.
func WithBatchSize(size int) ConfigOption {
	return func(c *Config) {
		c.BatchSize = size
	}
}

// DefaultConfig returns a Config with defaults matching the reference
// deployment: the OpenAI embeddings API with text-embedding-3-small.
func DefaultConfig() *Config {
	return &Config{
		Host:      "https://api.openai.com/v1",
		Token:     "none",
		Model:     "text-embedding-3-small",
		BatchSize: DefaultBatchSize,
	}
}

// NewConfig creates a Config with default values and applies the provided
// options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to the host if missing, which is required by most
// OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/") + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.Token == "" {
		return errors.New("ai config: Token is required")
	}
	if c.BatchSize < 1 {
		return errors.New("ai config: BatchSize must be positive")
	}
	return nil
}
