package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus is the state of a finalized event.
type EventStatus string

const EventPublished EventStatus = "published"

// Event is the immutable snapshot produced when a draft is finalized.
// ID is set by the repository on create.
// swagger:model Event
type Event struct {
	ID               string            `json:"id"`
	DraftID          string            `json:"draft_id"`
	OwnerID          string            `json:"owner_id"`
	Status           EventStatus       `json:"status"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Category         string            `json:"category"`
	Location         string            `json:"location"`
	StartDate        Date              `json:"start_date"`
	EndDate          Date              `json:"end_date"`
	IsFree           bool              `json:"is_free"`
	Days             []EventDay        `json:"days"`
	Speakers         []Speaker         `json:"speakers"`
	TicketTypes      []TicketType      `json:"ticket_types"`
	Sponsors         []Sponsor         `json:"sponsors"`
	Booths           []ExhibitionBooth `json:"booths"`
	TicketCategories []string          `json:"ticket_categories"`
	PotentialRevenue decimal.Decimal   `json:"potential_revenue"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Speaker looks up a speaker of the event by ID.
func (e *Event) Speaker(speakerID string) (Speaker, bool) {
	for _, s := range e.Speakers {
		if s.ID == speakerID {
			return s, true
		}
	}
	return Speaker{}, false
}

// TicketType looks up a ticket type of the event by ID.
func (e *Event) TicketType(ticketTypeID string) (TicketType, bool) {
	for _, t := range e.TicketTypes {
		if t.ID == ticketTypeID {
			return t, true
		}
	}
	return TicketType{}, false
}

// EventRepository stores finalized events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Event, error)
}

// CalendarEncoder renders an event's agenda as an iCalendar document.
type CalendarEncoder interface {
	Encode(event *Event) ([]byte, error)
}

// AgendaRenderer renders an event's agenda as fixed-width plain text.
type AgendaRenderer interface {
	Render(event *Event) string
}

// EventPublisher announces finalized events to other systems.
type EventPublisher interface {
	PublishEventPublished(ctx context.Context, event *Event) error
}

// EventService is the read side for finalized events.
type EventService interface {
	GetEvent(ctx context.Context, eventID string) (*Event, error)
	ListMyEvents(ctx context.Context, ownerID string) ([]*Event, error)
	ExportCalendar(ctx context.Context, eventID string) ([]byte, error)
	RenderAgenda(ctx context.Context, eventID string) (string, error)
}
