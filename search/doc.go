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


// Package search provides semantic similarity search over stored articles.
//
// The Searcher embeds a free-text query, scores every stored article by
// cosine similarity against the query vector, keeps articles at or above
// the similarity threshold, and returns them ranked by descending score
// with ties kept in retrieval order.
//
// This is a brute-force full-collection scan per query; no index is
// maintained. That is acceptable at the collection's scale (tens of
// thousands of records) and is the first thing to replace with a real
// vector index for larger corpora.
package search
