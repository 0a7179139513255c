// Package pagination parses page, size and sort parameters and shapes the
// paged list responses.
package pagination

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// PageRequest holds pagination parameters parsed from query strings. Sort
// names one key of the listing's SortSpec; a leading "-" sorts descending.
type PageRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Sort     string `form:"sort" binding:"omitempty,max=40"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a paginated list of items with metadata. Sort and
// Filters echo what was applied to produce the page.
type PageResponse[T any] struct {
	Data       []T               `json:"data"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalItems int64             `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	Sort       string            `json:"sort,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// WithQuery records the applied sort key and filters.
func (r PageResponse[T]) WithQuery(sortKey string, filters map[string]string) PageResponse[T] {
	r.Sort = sortKey
	if len(filters) > 0 {
		r.Filters = filters
	}
	return r
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}

// SortSpec lists the sort keys a listing accepts and the column behind each.
type SortSpec struct {
	Columns map[string]string
	Default string
}

// Resolve validates key, falling back to the default when it is empty, and
// returns the ORDER BY clause with the normalized key.
func (s SortSpec) Resolve(key string) (string, string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		key = s.Default
	}
	name, dir := key, "ASC"
	if strings.HasPrefix(key, "-") {
		name, dir = key[1:], "DESC"
	}
	column, ok := s.Columns[name]
	if !ok {
		return "", "", fmt.Errorf("sort must be one of %s", strings.Join(s.keys(), ", "))
	}
	return column + " " + dir, key, nil
}

func (s SortSpec) keys() []string {
	out := make([]string, 0, len(s.Columns))
	for k := range s.Columns {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
