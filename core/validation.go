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

import "fmt"

// ValidateQueryFilter validates a QueryFilter according to domain rules.
//
// Validation rules:
//   - At least one recognized field must carry a non-empty pattern
//
// String-ness of the values is guaranteed by the type; payloads of unknown
// shape go through QueryFilterFromMap instead.
func ValidateQueryFilter(filter *QueryFilter) error {
	if filter == nil {
		return fmt.Errorf("%w: filter is nil", ErrInvalidQueryFilter)
	}
	if filter.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrInvalidQueryFilter, ErrNoFilterFields)
	}
	return nil
}

// QueryFilterFromMap builds a QueryFilter from a dynamic payload, typically a
// decoded JSON request body.
//
// Validation rules, applied before any field is read:
//   - every provided value must be a string (unknown keys included)
//   - at least one recognized field must carry a non-empty string
//
// Unknown keys with string values are ignored.
func QueryFilterFromMap(payload map[string]any) (*QueryFilter, error) {
	for key, value := range payload {
		if value == nil {
			continue
		}
		if _, ok := value.(string); !ok {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidQueryFilter, ErrFieldNotString, key)
		}
	}

	filter := &QueryFilter{}
	for _, name := range FilterFields {
		value, _ := payload[name].(string)
		switch name {
		case FieldTitle:
			filter.Title = value
		case FieldPubDate:
			filter.PubDate = value
		case FieldGUID:
			filter.GUID = value
		case FieldLink:
			filter.Link = value
		case FieldDescription:
			filter.Description = value
		}
	}

	if err := ValidateQueryFilter(filter); err != nil {
		return nil, err
	}
	return filter, nil
}

// ValidateArticle validates an Article according to domain rules.
//
// Validation rules:
//   - Content must not be empty (it is the embedding input)
//
// NOT validated (populated during enrichment):
//   - Vector (can be empty until the embedding step runs)
func ValidateArticle(article *Article) error {
	if article == nil {
		return fmt.Errorf("%w: article is nil", ErrInvalidArticle)
	}
	if article.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyContent)
	}
	return nil
}
