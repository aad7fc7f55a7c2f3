// Package lookup models the console's generic reference data: the rows
// behind category/service/status dropdowns, fetched through the shared
// Account/Common endpoint by stored-procedure name.
package lookup

import (
	"context"
	"fmt"
	"strings"
)

// Entry is one localized reference row.
type Entry struct {
	ID        uint   `json:"id"`
	SPName    string `json:"-"`
	Parameter string `json:"-"`
	Language  string `json:"-"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	SortOrder int    `json:"sortOrder"`
}

// Query identifies one lookup result set.
type Query struct {
	SPName    string
	Parameter string
	Language  string
}

func (q Query) Validate() error {
	if strings.TrimSpace(q.SPName) == "" {
		return fmt.Errorf("spName is required")
	}
	if q.Language == "" {
		return fmt.Errorf("language is required")
	}
	return nil
}

// CacheKey produces a stable cache key for the query.
func (q Query) CacheKey() string {
	return fmt.Sprintf("lookup:%s:%s:%s", q.SPName, q.Parameter, q.Language)
}

type Repository interface {
	Find(ctx context.Context, q Query) ([]Entry, error)
	Upsert(ctx context.Context, entries []Entry) error
}
