package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventplanner/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *fakeCatalogSource {
	return &fakeCatalogSource{events: []*domain.CatalogEvent{
		{ID: "1", Title: "Tech Conference 2025", Category: "Technology", Attendees: 450, Price: decimal.NewFromInt(299)},
		{ID: "2", Title: "Music Festival", Category: "Music", Attendees: 2500, Price: decimal.NewFromInt(150)},
		{ID: "3", Title: "Startup Meetup", Category: "Business", Attendees: 120, IsFree: true},
		{ID: "4", Title: "AI Workshop", Category: "technology", Attendees: 80, Price: decimal.RequireFromString("99.50")},
	}}
}

func TestCatalogService_List(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(sampleCatalog(), 5*time.Second)

	tests := []struct {
		name      string
		category  string
		params    domain.PaginationParams
		wantIDs   []string
		wantTotal int
	}{
		{name: "all", wantIDs: []string{"1", "2", "3", "4"}, wantTotal: 4},
		{name: "category is case-insensitive", category: "TECHNOLOGY", wantIDs: []string{"1", "4"}, wantTotal: 2},
		{name: "first page", params: domain.PaginationParams{Page: 1, PageSize: 3}, wantIDs: []string{"1", "2", "3"}, wantTotal: 4},
		{name: "second page", params: domain.PaginationParams{Page: 2, PageSize: 3}, wantIDs: []string{"4"}, wantTotal: 4},
		{name: "past the end", params: domain.PaginationParams{Page: 5, PageSize: 3}, wantIDs: []string{}, wantTotal: 4},
		{name: "unknown category", category: "Sports", wantIDs: []string{}, wantTotal: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, total, err := svc.List(ctx, tt.category, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			ids := make([]string, 0, len(events))
			for _, e := range events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(sampleCatalog(), 5*time.Second)

	e, err := svc.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Music Festival", e.Title)

	_, err = svc.Get(ctx, "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_Stats(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(sampleCatalog(), 5*time.Second)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalEvents)
	assert.Equal(t, 3150, stats.TotalAttendees)
	assert.Equal(t, 1, stats.FreeEvents)
	assert.Equal(t, 3, stats.PaidEvents)
	assert.Equal(t, "182.83", stats.AveragePaidPrice.StringFixed(2))
	assert.Equal(t, map[string]int{"Technology": 1, "technology": 1, "Music": 1, "Business": 1}, stats.ByCategory)
}

func TestCatalogService_SourceError(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(&fakeCatalogSource{err: errors.New("unreadable")}, 5*time.Second)

	_, _, err := svc.List(ctx, "", domain.PaginationParams{})
	require.Error(t, err)
	_, err = svc.Stats(ctx)
	require.Error(t, err)
}
