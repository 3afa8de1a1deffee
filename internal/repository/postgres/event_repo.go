package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eventplanner/internal/domain"

	"github.com/lib/pq"
)

// eventPayload is the nested part of an event stored as one jsonb column.
type eventPayload struct {
	Days        []domain.EventDay        `json:"days"`
	Speakers    []domain.Speaker         `json:"speakers"`
	TicketTypes []domain.TicketType      `json:"ticket_types"`
	Sponsors    []domain.Sponsor         `json:"sponsors"`
	Booths      []domain.ExhibitionBooth `json:"booths"`
}

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, draft_id, owner_id, status, title, description, category, location,
		start_date, end_date, is_free, ticket_categories, potential_revenue, payload, created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	payload, err := json.Marshal(eventPayload{
		Days:        e.Days,
		Speakers:    e.Speakers,
		TicketTypes: e.TicketTypes,
		Sponsors:    e.Sponsors,
		Booths:      e.Booths,
	})
	if err != nil {
		return fmt.Errorf("encode event payload: %w", err)
	}
	query := `
		INSERT INTO events (draft_id, owner_id, status, title, description, category, location,
			start_date, end_date, is_free, ticket_categories, potential_revenue, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	err = r.DB.QueryRowContext(ctx, query,
		e.DraftID, e.OwnerID, string(e.Status), e.Title, e.Description, e.Category, e.Location,
		e.StartDate.Time(), e.EndDate.Time(), e.IsFree, pq.Array(e.TicketCategories), e.PotentialRevenue,
		payload, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("draft %s already submitted: %w", e.DraftID, domain.ErrDraftClosed)
		}
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var (
		status     string
		start, end time.Time
		payload    []byte
		categories pq.StringArray
	)
	err := row.Scan(
		&e.ID, &e.DraftID, &e.OwnerID, &status, &e.Title, &e.Description, &e.Category, &e.Location,
		&start, &end, &e.IsFree, &categories, &e.PotentialRevenue, &payload, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	e.StartDate = domain.DateOf(start)
	e.EndDate = domain.DateOf(end)
	e.TicketCategories = []string(categories)
	if e.TicketCategories == nil {
		e.TicketCategories = []string{}
	}

	var p eventPayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("decode event %s payload: %w", e.ID, err)
		}
	}
	e.Days = nonNil(p.Days)
	e.Speakers = nonNil(p.Speakers)
	e.TicketTypes = nonNil(p.TicketTypes)
	e.Sponsors = nonNil(p.Sponsors)
	e.Booths = nonNil(p.Booths)
	return e, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
