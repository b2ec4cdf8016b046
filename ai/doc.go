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


// Package ai provides the embedding abstraction used by newswire.
//
// The core pipeline and search engine depend on the Embedder interface
// rather than a concrete provider, following the dependency inversion
// principle. Two implementation sub-packages exist:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test double for unit testing without external services
//
// Public constructors (openai.NewEmbedder) return the ai.Embedder interface
// to enforce abstraction; mock constructors return concrete types so tests
// can inject behavior and assert on call accounting.
//
// EmbedBatched partitions large inputs into contiguous batches and preserves
// input order across provider calls; it is the only embedding entry point the
// ingestion pipeline uses.
package ai
