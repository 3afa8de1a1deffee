package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventplanner/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	calendar       domain.CalendarEncoder
	agenda         domain.AgendaRenderer
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	calendar domain.CalendarEncoder,
	agenda domain.AgendaRenderer,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		calendar:       calendar,
		agenda:         agenda,
		contextTimeout: timeout,
	}
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListMyEvents(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) ExportCalendar(ctx context.Context, eventID string) ([]byte, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	body, err := s.calendar.Encode(event)
	if err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return body, nil
}

func (s *eventService) RenderAgenda(ctx context.Context, eventID string) (string, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return "", err
	}
	return s.agenda.Render(event), nil
}
