package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sanad/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// SortOrder holds a parsed sort column and direction.
type SortOrder struct {
	Column    string
	Direction string // "ASC" or "DESC"
}

// ValidatePagination validates and normalizes pagination parameters.
// Page defaults to DefaultPage if less than 1. PageSize defaults to
// DefaultPageSize if less than 1 and is capped at MaxPageSize.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}

	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParsePagination parses PageNumber/PageSize from the query string, with
// defaults applied. The console sends PascalCase parameter names.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "PageNumber", constants.DefaultPage)
	pageSize := parseQueryInt(c, "PageSize", constants.DefaultPageSize)
	return ValidatePagination(page, pageSize)
}

// ParseSortOrder parses OrderByColumn/OrderDirection from the query string.
// An empty column means no explicit ordering was requested. The direction
// is normalized to ASC/DESC, defaulting to DESC.
func ParseSortOrder(c *gin.Context) SortOrder {
	column := strings.TrimSpace(c.Query("OrderByColumn"))
	direction := strings.ToUpper(strings.TrimSpace(c.Query("OrderDirection")))
	if direction != "ASC" && direction != "DESC" {
		direction = "DESC"
	}
	return SortOrder{Column: column, Direction: direction}
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count, minimum 1.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}
