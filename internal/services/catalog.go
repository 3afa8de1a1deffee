package services

import (
	"cmp"
	"context"
	"fmt"
	"strings"
	"time"

	"eventplanner/internal/domain"

	"github.com/shopspring/decimal"
)

type catalogService struct {
	source         domain.CatalogSource
	contextTimeout time.Duration
}

func NewCatalogService(source domain.CatalogSource, timeout time.Duration) domain.CatalogService {
	return &catalogService{source: source, contextTimeout: timeout}
}

// List returns one page of catalog events, optionally restricted to a category
// (case-insensitive), together with the total number of matches.
func (s *catalogService) List(ctx context.Context, category string, params domain.PaginationParams) ([]*domain.CatalogEvent, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	all, err := s.source.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list catalog: %w", err)
	}
	matched := make([]*domain.CatalogEvent, 0, len(all))
	for _, e := range all {
		if category == "" || strings.EqualFold(e.Category, category) {
			matched = append(matched, e)
		}
	}
	start, end := params.Window(len(matched))
	return matched[start:end], len(matched), nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*domain.CatalogEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	all, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	for _, e := range all {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *catalogService) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	all, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	stats := &domain.CatalogStats{
		TotalEvents:      len(all),
		AveragePaidPrice: decimal.Zero,
		ByCategory:       make(map[string]int),
	}
	paidTotal := decimal.Zero
	for _, e := range all {
		stats.TotalAttendees += e.Attendees
		stats.ByCategory[cmp.Or(e.Category, "Uncategorized")]++
		if e.IsFree {
			stats.FreeEvents++
			continue
		}
		stats.PaidEvents++
		paidTotal = paidTotal.Add(e.Price)
	}
	if stats.PaidEvents > 0 {
		stats.AveragePaidPrice = paidTotal.Div(decimal.NewFromInt(int64(stats.PaidEvents))).Round(2)
	}
	return stats, nil
}
