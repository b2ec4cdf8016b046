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


package core

import "errors"

// Domain validation errors. These are client faults: they are raised before
// any storage access and must be surfaced distinctly from server faults.
var (
	// ErrInvalidQueryFilter indicates a QueryFilter failed validation.
	ErrInvalidQueryFilter = errors.New("invalid query filter")

	// ErrNoFilterFields indicates no recognized field carried a value.
	ErrNoFilterFields = errors.New("at least one of the fields [title pubDate guid link description] must be provided")

	// ErrFieldNotString indicates a provided filter value is not a string.
	ErrFieldNotString = errors.New("filter field must be a string")

	// ErrInvalidArticle indicates an Article failed validation.
	ErrInvalidArticle = errors.New("invalid article")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)
