// Package catalog defines the auction item entity and its validation rules.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an item id does not exist in the store.
var ErrNotFound = errors.New("item not found")

// ErrEmptyQuery is returned when a text search is attempted with a blank query.
var ErrEmptyQuery = errors.New("search query is required")

// Item is an auction listing record. The reserve price is informational:
// nothing in the catalog enforces it against the start price.
type Item struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	StartPrice   float64 `json:"start_price"`
	ReservePrice float64 `json:"reserve_price"`
}

// ScoredItem pairs an item with its text-search relevance score.
// Scores are comparable only within a single result set.
type ScoredItem struct {
	Item
	Score float64 `json:"score"`
}

// ValidationError reports a single invalid item field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks required fields and price positivity. Title is trimmed
// in place before checking, so a stored item never carries edge whitespace.
func (i *Item) Validate() error {
	i.Title = strings.TrimSpace(i.Title)
	if i.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(i.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if i.StartPrice <= 0 {
		return &ValidationError{Field: "start_price", Reason: "must be a positive number"}
	}
	if i.ReservePrice <= 0 {
		return &ValidationError{Field: "reserve_price", Reason: "must be a positive number"}
	}
	return nil
}
