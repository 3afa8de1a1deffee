package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PurchasedTicket is a simulated ticket purchase kept in the attendee's session.
// swagger:model PurchasedTicket
type PurchasedTicket struct {
	ID           string          `json:"id"`
	EventID      string          `json:"event_id"`
	EventTitle   string          `json:"event_title"`
	UserID       string          `json:"user_id"`
	TicketTypeID string          `json:"ticket_type_id,omitempty"`
	Type         string          `json:"type"`
	Price        decimal.Decimal `json:"price"`
	PurchaseDate time.Time       `json:"purchase_date"`
}

// TicketService records simulated purchases. No payment is taken.
type TicketService interface {
	Purchase(ctx context.Context, eventID, userID, ticketTypeID string) (*PurchasedTicket, error)
	ListMyTickets(ctx context.Context, userID string) ([]*PurchasedTicket, error)
}
