package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TicketType is one purchasable admission category.
//
// EarlyBirdDiscount is stored metadata only: it is never applied to Price or to
// potential revenue.
// swagger:model TicketType
type TicketType struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	SaleStart         Date            `json:"sale_start,omitzero"`
	SaleEnd           Date            `json:"sale_end,omitzero"`
	VIP               bool            `json:"vip"`
	EarlyBird         bool            `json:"early_bird"`
	EarlyBirdDiscount int             `json:"early_bird_discount,omitempty"`
	Category          string          `json:"category,omitempty"`
}

// TicketTypeInput is the unvalidated form of a ticket type.
type TicketTypeInput struct {
	Name              string
	Description       string
	Price             decimal.Decimal
	Quantity          int
	SaleStart         Date
	SaleEnd           Date
	VIP               bool
	EarlyBird         bool
	EarlyBirdDiscount int
	Category          string
}

// LineRevenue is price × quantity.
func (t TicketType) LineRevenue() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// OnSale reports whether the ticket type can be sold on the given date.
// Open-ended windows are unbounded on that side.
func (t TicketType) OnSale(on Date) bool {
	if !t.SaleStart.IsZero() && on.Before(t.SaleStart) {
		return false
	}
	if !t.SaleEnd.IsZero() && on.After(t.SaleEnd) {
		return false
	}
	return true
}

// newTicketType validates in for a free or paid event. For a free event the
// price is forced to zero regardless of input.
func newTicketType(in TicketTypeInput, free bool) (TicketType, error) {
	var failures []FieldError
	name := strings.TrimSpace(in.Name)
	if name == "" {
		failures = append(failures, FieldError{Field: "name", Code: CodeRequired, Message: "ticket type name is required"})
	}

	price := in.Price.Round(2)
	switch {
	case free:
		price = decimal.Zero
	case !price.IsPositive():
		failures = append(failures, FieldError{Field: "price", Code: CodeInvalidPrice, Message: "price must be greater than zero for a paid event"})
	}

	if in.Quantity <= 0 {
		failures = append(failures, FieldError{Field: "quantity", Code: CodeInvalidQuantity, Message: "quantity must be a positive integer"})
	}

	discount := 0
	if in.EarlyBird {
		discount = in.EarlyBirdDiscount
		if discount != 0 && (discount < 1 || discount > 99) {
			failures = append(failures, FieldError{Field: "earlyBirdDiscount", Code: CodeInvalidDiscount, Message: "early-bird discount must be between 1 and 99 percent"})
		}
	}

	if !in.SaleStart.IsZero() && !in.SaleEnd.IsZero() && in.SaleStart.After(in.SaleEnd) {
		failures = append(failures, FieldError{Field: "saleEnd", Code: CodeDateRange, Message: "sale end must not be before sale start"})
	}

	if err := validationErrorOrNil(failures); err != nil {
		return TicketType{}, err
	}
	return TicketType{
		ID:                newID(),
		Name:              name,
		Description:       strings.TrimSpace(in.Description),
		Price:             price,
		Quantity:          in.Quantity,
		SaleStart:         in.SaleStart,
		SaleEnd:           in.SaleEnd,
		VIP:               in.VIP,
		EarlyBird:         in.EarlyBird,
		EarlyBirdDiscount: discount,
		Category:          strings.TrimSpace(in.Category),
	}, nil
}

// PotentialRevenue sums LineRevenue over types, assuming full sell-through.
func PotentialRevenue(types []TicketType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range types {
		total = total.Add(t.LineRevenue())
	}
	return total
}

// TicketCategories returns the distinct non-empty category labels in order of first use.
func TicketCategories(types []TicketType) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, t := range types {
		if t.Category == "" {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}
