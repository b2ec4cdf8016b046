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


// Package storage provides the storage abstraction layer for newswire.
//
// It defines the ArticleRepository interface that decouples the ingestion
// pipeline and the query engines from the storage implementation, and the
// filter predicate semantics shared by all backends.
//
// # Constructor Return Type Pattern
//
// Public backend constructors return the storage.ArticleRepository interface
// to enforce abstraction and keep alternative backends swappable:
//
//	repo, backend, err := badger.NewRepository(path)
//
// # Predicate Semantics
//
// A core.QueryFilter is evaluated with Matches: every present field must
// contain its pattern as a case-insensitive substring, AND-combined. A nil
// filter matches every document.
//
// # Thread Safety
//
// Repository implementations must be thread-safe; the service issues no
// transactions of its own and relies on the backend's read isolation.
package storage
