package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_GetEvent(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	tests := []struct {
		name    string
		setup   func() *fakeEventRepo
		eventID string
		wantErr error
		anyErr  bool
	}{
		{
			name: "found",
			setup: func() *fakeEventRepo {
				r := newFakeEventRepo()
				_ = r.Create(ctx, &domain.Event{Title: "Tech Summit", OwnerID: "user-1"})
				return r
			},
			eventID: "ev-1",
		},
		{
			name:    "not found",
			setup:   newFakeEventRepo,
			eventID: "ev-404",
			wantErr: domain.ErrNotFound,
		},
		{
			name: "repo error",
			setup: func() *fakeEventRepo {
				r := newFakeEventRepo()
				r.getErr = errors.New("db down")
				return r
			},
			eventID: "ev-1",
			anyErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(tt.setup(), fakeCalendarEncoder{}, fakeAgendaRenderer{}, timeout)
			ev, err := svc.GetEvent(ctx, tt.eventID)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Tech Summit", ev.Title)
			}
		})
	}
}

func TestEventService_ListMyEvents(t *testing.T) {
	ctx := context.Background()
	r := newFakeEventRepo()
	now := time.Now()
	_ = r.Create(ctx, &domain.Event{Title: "E1", OwnerID: "user-1", CreatedAt: now})
	_ = r.Create(ctx, &domain.Event{Title: "E2", OwnerID: "user-1", CreatedAt: now.Add(time.Hour)})
	_ = r.Create(ctx, &domain.Event{Title: "Other", OwnerID: "user-2", CreatedAt: now})
	svc := NewEventService(r, fakeCalendarEncoder{}, fakeAgendaRenderer{}, 5*time.Second)

	events, err := svc.ListMyEvents(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "E2", events[0].Title)

	events, err = svc.ListMyEvents(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestEventService_ExportAndAgenda(t *testing.T) {
	ctx := context.Background()
	r := newFakeEventRepo()
	_ = r.Create(ctx, &domain.Event{Title: "Tech Summit", OwnerID: "user-1"})

	svc := NewEventService(r, fakeCalendarEncoder{}, fakeAgendaRenderer{}, 5*time.Second)
	body, err := svc.ExportCalendar(ctx, "ev-1")
	require.NoError(t, err)
	assert.Contains(t, string(body), "X-EVENT:ev-1")

	text, err := svc.RenderAgenda(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, "agenda for Tech Summit", text)

	_, err = svc.ExportCalendar(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	broken := NewEventService(r, fakeCalendarEncoder{err: errors.New("boom")}, fakeAgendaRenderer{}, 5*time.Second)
	_, err = broken.ExportCalendar(ctx, "ev-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode calendar")
}
