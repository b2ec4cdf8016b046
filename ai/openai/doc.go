// Package openai implements the ai.Embedder interface on top of
// OpenAI-compatible embedding APIs via langchaingo. The reference deployment
// targets text-embedding-3-small, but any OpenAI-compatible endpoint
// (Ollama, LocalAI, vLLM) works through the same configuration.
package openai
