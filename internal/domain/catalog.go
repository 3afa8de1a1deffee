package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogEvent is a read-only listing shown on browse pages.
// swagger:model CatalogEvent
type CatalogEvent struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	DateLabel string          `json:"date"`
	Location  string          `json:"location"`
	ImageURL  string          `json:"image_url"`
	Attendees int             `json:"attendees"`
	IsFree    bool            `json:"is_free"`
	Price     decimal.Decimal `json:"price"`
}

// CatalogSource supplies the catalog listings.
type CatalogSource interface {
	List(ctx context.Context) ([]*CatalogEvent, error)
}

// CatalogStats are the platform figures shown on the admin dashboard.
// swagger:model CatalogStats
type CatalogStats struct {
	TotalEvents      int             `json:"total_events"`
	TotalAttendees   int             `json:"total_attendees"`
	FreeEvents       int             `json:"free_events"`
	PaidEvents       int             `json:"paid_events"`
	AveragePaidPrice decimal.Decimal `json:"average_paid_price"`
	ByCategory       map[string]int  `json:"by_category"`
}

// CatalogService browses the catalog.
type CatalogService interface {
	List(ctx context.Context, category string, params PaginationParams) ([]*CatalogEvent, int, error)
	Get(ctx context.Context, id string) (*CatalogEvent, error)
	Stats(ctx context.Context) (*CatalogStats, error)
}
