package resource

import (
	"encoding/json"
	"fmt"
	"iter"
	"strconv"
)

// Page is the pagination block of a list response.
type Page struct {
	CurrentPage  int
	PerPage      int
	TotalEntries int
	TotalPages   int
}

// HasNext reports whether another page follows.
func (p Page) HasNext() bool {
	return p.CurrentPage > 0 && p.CurrentPage < p.TotalPages
}

// Collection is an ordered, read-only list of records.
type Collection[T any] struct {
	items []T
	page  Page
}

// NewCollection wraps items.
func NewCollection[T any](items []T, page Page) *Collection[T] {
	return &Collection[T]{items: items, page: page}
}

// First returns the first record.
func (c *Collection[T]) First() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[0], true
}

// Len returns the number of records.
func (c *Collection[T]) Len() int { return len(c.items) }

// At returns the record at i. It panics if i is out of range.
func (c *Collection[T]) At(i int) T { return c.items[i] }

// Items returns a copy of the records.
func (c *Collection[T]) Items() []T {
	return append([]T(nil), c.items...)
}

// All iterates over the records in order.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range c.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Page returns the pagination block, zero when the API sent none.
func (c *Collection[T]) Page() Page { return c.page }

type listEnvelope struct {
	Data       []json.RawMessage `json:"data"`
	Collection *struct {
		CurrentPage  Int `json:"current_page"`
		PerPage      Int `json:"per_page"`
		TotalEntries Int `json:"total_entries"`
		TotalPages   Int `json:"total_pages"`
	} `json:"collection"`
}

// splitList accepts {"data": [...], "collection": {...}} or a bare array.
func splitList(body []byte) ([]json.RawMessage, Page, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err == nil {
		return items, Page{}, nil
	}
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, Page{}, fmt.Errorf("resource: decode list: %w", err)
	}
	if env.Data == nil {
		return nil, Page{}, fmt.Errorf("resource: decode list: no data array")
	}
	var page Page
	if c := env.Collection; c != nil {
		page = Page{
			CurrentPage:  int(c.CurrentPage),
			PerPage:      int(c.PerPage),
			TotalEntries: int(c.TotalEntries),
			TotalPages:   int(c.TotalPages),
		}
	}
	return env.Data, page, nil
}

// ListOption adjusts a list request.
type ListOption func(*listOptions)

type listOptions struct {
	path  string
	query map[string]string
}

// WithPage requests one page of results.
func WithPage(page, perPage int) ListOption {
	return func(o *listOptions) {
		if page > 0 {
			o.query["page"] = strconv.Itoa(page)
		}
		if perPage > 0 {
			o.query["per_page"] = strconv.Itoa(perPage)
		}
	}
}

// WithPath lists from path instead of the record's own endpoint, e.g. a
// nested "/accounts/875/transactions".
func WithPath(path string) ListOption {
	return func(o *listOptions) { o.path = path }
}
