package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"eventplanner/internal/clock"
	"eventplanner/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const userTicketsKeyPrefix = "userTickets:"

type ticketService struct {
	eventRepo      domain.EventRepository
	store          domain.SessionStore
	clock          clock.Clock
	contextTimeout time.Duration

	mu sync.Mutex
}

func NewTicketService(eventRepo domain.EventRepository, store domain.SessionStore, clk clock.Clock, timeout time.Duration) domain.TicketService {
	return &ticketService{
		eventRepo:      eventRepo,
		store:          store,
		clock:          clk,
		contextTimeout: timeout,
	}
}

// Purchase records a simulated purchase of one ticket. A free event accepts an
// empty ticketTypeID and issues a general admission ticket.
func (s *ticketService) Purchase(ctx context.Context, eventID, userID, ticketTypeID string) (*domain.PurchasedTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := s.clock.Now()
	ticket := &domain.PurchasedTicket{
		ID:           uuid.NewString(),
		EventID:      event.ID,
		EventTitle:   event.Title,
		UserID:       userID,
		PurchaseDate: now,
	}
	if ticketTypeID == "" && event.IsFree {
		ticket.Type = "General Admission"
		ticket.Price = decimal.Zero
	} else {
		tt, ok := event.TicketType(ticketTypeID)
		if !ok {
			return nil, fmt.Errorf("ticket type %q: %w", ticketTypeID, domain.ErrNotFound)
		}
		if !tt.OnSale(domain.DateOf(now)) {
			return nil, domain.NewValidationError(domain.FieldError{
				Field:   "ticketTypeId",
				Code:    domain.CodeSaleClosed,
				Message: "ticket type is not on sale",
			})
		}
		ticket.TicketTypeID = tt.ID
		ticket.Type = tt.Name
		ticket.Price = tt.Price
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	tickets = append(tickets, ticket)
	raw, err := json.Marshal(tickets)
	if err != nil {
		return nil, fmt.Errorf("encode tickets: %w", err)
	}
	if err := s.store.Set(ctx, userTicketsKeyPrefix+userID, string(raw)); err != nil {
		return nil, fmt.Errorf("save tickets: %w", err)
	}
	return ticket, nil
}

func (s *ticketService) ListMyTickets(ctx context.Context, userID string) ([]*domain.PurchasedTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, userID)
}

func (s *ticketService) load(ctx context.Context, userID string) ([]*domain.PurchasedTicket, error) {
	raw, err := s.store.Get(ctx, userTicketsKeyPrefix+userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []*domain.PurchasedTicket{}, nil
		}
		return nil, fmt.Errorf("get tickets: %w", err)
	}
	tickets := []*domain.PurchasedTicket{}
	if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
		return nil, fmt.Errorf("decode tickets: %w", err)
	}
	return tickets, nil
}
