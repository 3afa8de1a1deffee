package helpers

import (
	"net/http"
	"strconv"

	"eventplanner/internal/domain"
)

// PageLimits bounds the page size a list endpoint accepts.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// CatalogPageLimits sizes catalog pages for a card grid of 3 or 4 columns.
var CatalogPageLimits = PageLimits{DefaultSize: 12, MaxSize: 48}

// ParsePagination reads page and page_size from the query string. Missing or
// invalid values fall back to page 1 and limits.DefaultSize; page_size is
// capped at limits.MaxSize.
func ParsePagination(r *http.Request, limits PageLimits) domain.PaginationParams {
	q := r.URL.Query()
	page := positiveInt(q.Get("page"), 1)
	size := min(positiveInt(q.Get("page_size"), limits.DefaultSize), limits.MaxSize)
	return domain.PaginationParams{Page: page, PageSize: size}
}

func positiveInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// PaginationMeta is the pagination block of a paginated list response.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewPaginationMeta describes params against a result set of total items.
func NewPaginationMeta(params domain.PaginationParams, total int) PaginationMeta {
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (total + params.PageSize - 1) / params.PageSize
	}
	return PaginationMeta{
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
	}
}
