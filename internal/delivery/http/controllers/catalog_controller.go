package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/domain"
)

// ListCatalogResponse is the response body for GET /catalog/events.
type ListCatalogResponse struct {
	Items      []*domain.CatalogEvent `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListCatalogSuccessResponse is the success response envelope for GET /catalog/events (200).
type ListCatalogSuccessResponse struct {
	Data  ListCatalogResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary Browse the event catalog
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter (case-insensitive)"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (default 12, max 48)"
// @Success 200 {object} controllers.ListCatalogSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /catalog/events [get]
func (c *CatalogController) List(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	params := helpers.ParsePagination(r, helpers.CatalogPageLimits)
	items, total, err := c.Service.List(r.Context(), category, params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if items == nil {
		items = []*domain.CatalogEvent{}
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListCatalogResponse{Items: items, Pagination: meta})
}

// Get godoc
// @Summary Get a catalog event
// @Tags catalog
// @Produce json
// @Param eventID path string true "Catalog event ID"
// @Success 200 {object} domain.CatalogEvent
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /catalog/events/{eventID} [get]
func (c *CatalogController) Get(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.Get(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Stats godoc
// @Summary Catalog statistics
// @Tags catalog
// @Produce json
// @Success 200 {object} domain.CatalogStats
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /catalog/stats [get]
func (c *CatalogController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Stats(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}
