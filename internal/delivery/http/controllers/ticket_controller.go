package controllers

import (
	"log/slog"
	"net/http"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/delivery/http/middleware"
	"eventplanner/internal/domain"
)

// PurchaseTicketRequest is the optional request body for POST /events/{eventID}/tickets.
// TicketTypeID may be omitted for a free event; General Admission is issued.
type PurchaseTicketRequest struct {
	TicketTypeID string `json:"ticket_type_id" validate:"max=64"`
}

// PurchasedTicketSuccessResponse is the success response envelope for POST /events/{eventID}/tickets (201).
type PurchasedTicketSuccessResponse struct {
	Data  *domain.PurchasedTicket `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type TicketController struct {
	Logger  *slog.Logger
	Service domain.TicketService
}

func NewTicketController(logger *slog.Logger, svc domain.TicketService) *TicketController {
	return &TicketController{
		Logger:  logger,
		Service: svc,
	}
}

// Purchase godoc
// @Summary Buy a ticket (simulated)
// @Description Records a purchase in the attendee's session. No payment is taken.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param purchase body PurchaseTicketRequest false "Ticket type"
// @Success 201 {object} controllers.PurchasedTicketSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed (ticket_type_required, sale_closed)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/tickets [post]
func (c *TicketController) Purchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseTicketRequest
	if !helpers.DecodeOptional(w, r, &req) {
		return
	}
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	ticket, err := c.Service.Purchase(r.Context(), eventID, userID, req.TicketTypeID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ticket)
}

// ListMyTickets godoc
// @Summary List my tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.PurchasedTicket
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /tickets/me [get]
func (c *TicketController) ListMyTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	tickets, err := c.Service.ListMyTickets(r.Context(), userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if tickets == nil {
		tickets = []*domain.PurchasedTicket{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tickets)
}
