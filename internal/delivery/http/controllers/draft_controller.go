package controllers

import (
	"log/slog"
	"net/http"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/delivery/http/middleware"
	"eventplanner/internal/domain"

	"github.com/shopspring/decimal"
)

// UpdateDraftDetailsRequest is the request body for PATCH /drafts/{draftID}. Omitted fields are unchanged.
type UpdateDraftDetailsRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
}

// SetDatesRequest is the request body for PUT /drafts/{draftID}/dates (YYYY-MM-DD).
// An empty or omitted date clears it, which also clears the day list.
type SetDatesRequest struct {
	StartDate domain.Date `json:"start_date" swaggertype:"string" example:"2025-06-15"`
	EndDate   domain.Date `json:"end_date" swaggertype:"string" example:"2025-06-17"`
}

// SelectDayRequest is the request body for PUT /drafts/{draftID}/selected-day.
type SelectDayRequest struct {
	DayID string `json:"day_id" validate:"required"`
}

// AddActivityRequest is the request body for POST /drafts/{draftID}/days/{dayID}/activities. Times are HH:MM.
type AddActivityRequest struct {
	Title       string   `json:"title" validate:"max=200"`
	Description string   `json:"description" validate:"max=5000"`
	StartTime   string   `json:"start_time" example:"09:00"`
	EndTime     string   `json:"end_time" example:"10:30"`
	Type        string   `json:"type" example:"workshop"`
	Location    string   `json:"location" validate:"max=200"`
	SpeakerIDs  []string `json:"speaker_ids"`
}

// AddSpeakerRequest is the request body for POST /drafts/{draftID}/speakers.
type AddSpeakerRequest struct {
	Name     string `json:"name" validate:"max=200"`
	Title    string `json:"title" validate:"max=200"`
	Bio      string `json:"bio" validate:"max=5000"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

// SetFreeEventRequest is the request body for PUT /drafts/{draftID}/free.
// Changing mode while ticket types exist requires confirmed=true.
type SetFreeEventRequest struct {
	IsFree    bool `json:"is_free"`
	Confirmed bool `json:"confirmed"`
}

// AddTicketTypeRequest is the request body for POST /drafts/{draftID}/ticket-types.
type AddTicketTypeRequest struct {
	Name              string          `json:"name" validate:"max=100"`
	Description       string          `json:"description" validate:"max=2000"`
	Price             decimal.Decimal `json:"price" swaggertype:"string" example:"199.99"`
	Quantity          int             `json:"quantity"`
	SaleStart         domain.Date     `json:"sale_start" swaggertype:"string" example:"2025-05-01"`
	SaleEnd           domain.Date     `json:"sale_end" swaggertype:"string" example:"2025-06-14"`
	VIP               bool            `json:"vip"`
	EarlyBird         bool            `json:"early_bird"`
	EarlyBirdDiscount int             `json:"early_bird_discount"`
	Category          string          `json:"category" validate:"max=100"`
}

// AddSponsorRequest is the request body for POST /drafts/{draftID}/sponsors.
type AddSponsorRequest struct {
	Name        string `json:"name" validate:"max=200"`
	Level       string `json:"level" example:"gold"`
	Description string `json:"description" validate:"max=2000"`
	Website     string `json:"website" validate:"omitempty,url"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

// AddBoothRequest is the request body for POST /drafts/{draftID}/booths.
type AddBoothRequest struct {
	Name          string `json:"name" validate:"max=200"`
	Exhibitor     string `json:"exhibitor" validate:"max=200"`
	Description   string `json:"description" validate:"max=2000"`
	Location      string `json:"location" validate:"max=200"`
	CoverImageURL string `json:"cover_image_url" validate:"omitempty,url"`
}

// SubmitDraftRequest is the optional request body for POST /drafts/{draftID}/submit.
// NotifyEmail defaults to the caller's token email.
type SubmitDraftRequest struct {
	NotifyEmail      string `json:"notify_email" validate:"omitempty,email"`
	SkipNotification bool   `json:"skip_notification"`
}

// RevenueResponse is the response body for GET /drafts/{draftID}/revenue.
type RevenueResponse struct {
	PotentialRevenue decimal.Decimal `json:"potential_revenue" swaggertype:"string"`
}

// DraftValidationResponse is the response body for GET /drafts/{draftID}/validation.
type DraftValidationResponse struct {
	Ready    bool                `json:"ready"`
	Failures []domain.FieldError `json:"failures"`
}

// DraftSuccessResponse is the success response envelope for endpoints returning a draft.
type DraftSuccessResponse struct {
	Data  *domain.EventDraft `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// EventSuccessResponse is the success response envelope for endpoints returning an event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type DraftController struct {
	Logger  *slog.Logger
	Service domain.DraftService
}

func NewDraftController(logger *slog.Logger, svc domain.DraftService) *DraftController {
	return &DraftController{
		Logger:  logger,
		Service: svc,
	}
}

// StartDraft godoc
// @Summary Start a new event draft
// @Description Creates an empty draft owned by the authenticated user.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Success 201 {object} controllers.DraftSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /drafts [post]
func (c *DraftController) StartDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	draft, err := c.Service.StartDraft(r.Context(), userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, draft)
}

// GetDraft godoc
// @Summary Get a draft
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID} [get]
func (c *DraftController) GetDraft(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	draft, err := c.Service.GetDraft(r.Context(), draftID, userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draft)
}

// UpdateDetails godoc
// @Summary Update draft details
// @Description Patches title, description, category and location. Omitted fields are unchanged.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param details body UpdateDraftDetailsRequest true "Details patch"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: draft_closed"
// @Router /drafts/{draftID} [patch]
func (c *DraftController) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req UpdateDraftDetailsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	draft, err := c.Service.UpdateDetails(r.Context(), draftID, userID, domain.DraftDetails{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draft)
}

// SetDates godoc
// @Summary Set the event date range
// @Description Regenerates one day per calendar date in the range. Activities on the previous days are dropped.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param dates body SetDatesRequest true "Start and end dates"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed (date_range)"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: draft_closed"
// @Router /drafts/{draftID}/dates [put]
func (c *DraftController) SetDates(w http.ResponseWriter, r *http.Request) {
	var req SetDatesRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	draft, err := c.Service.SetDates(r.Context(), draftID, userID, req.StartDate, req.EndDate)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draft)
}

// SelectDay godoc
// @Summary Select the current day
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param day body SelectDayRequest true "Day to select"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/selected-day [put]
func (c *DraftController) SelectDay(w http.ResponseWriter, r *http.Request) {
	var req SelectDayRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	draft, err := c.Service.SelectDay(r.Context(), draftID, userID, req.DayID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draft)
}

// AddActivity godoc
// @Summary Add an activity to a day
// @Description Speakers are referenced by ID and must already exist on the draft. Overlapping activities are allowed.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param dayID path string true "Day ID"
// @Param activity body AddActivityRequest true "Activity"
// @Success 201 {object} domain.Activity
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: draft_closed"
// @Router /drafts/{draftID}/days/{dayID}/activities [post]
func (c *DraftController) AddActivity(w http.ResponseWriter, r *http.Request) {
	var req AddActivityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	activity, err := c.Service.AddActivity(r.Context(), draftID, userID, r.PathValue("dayID"), domain.ActivityInput{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Type:        domain.ActivityType(req.Type),
		Location:    req.Location,
		SpeakerIDs:  req.SpeakerIDs,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, activity)
}

// RemoveActivity godoc
// @Summary Remove an activity
// @Tags drafts
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param dayID path string true "Day ID"
// @Param activityID path string true "Activity ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/days/{dayID}/activities/{activityID} [delete]
func (c *DraftController) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.RemoveActivity(r.Context(), draftID, userID, r.PathValue("dayID"), r.PathValue("activityID")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Agenda godoc
// @Summary Get the overall agenda
// @Description Days in date order, each with its activities sorted by start time.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 200 {array} domain.DayAgenda
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/agenda [get]
func (c *DraftController) Agenda(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	agenda, err := c.Service.Agenda(r.Context(), draftID, userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, agenda)
}

// AddSpeaker godoc
// @Summary Add a speaker
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param speaker body AddSpeakerRequest true "Speaker"
// @Success 201 {object} domain.Speaker
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 409 {object} helpers.APIResponse "error.code: draft_closed"
// @Router /drafts/{draftID}/speakers [post]
func (c *DraftController) AddSpeaker(w http.ResponseWriter, r *http.Request) {
	var req AddSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	speaker, err := c.Service.AddSpeaker(r.Context(), draftID, userID, domain.SpeakerInput{
		Name:     req.Name,
		Title:    req.Title,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, speaker)
}

// RemoveSpeaker godoc
// @Summary Remove a speaker
// @Description Also removes the speaker from every activity that referenced them.
// @Tags drafts
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param speakerID path string true "Speaker ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/speakers/{speakerID} [delete]
func (c *DraftController) RemoveSpeaker(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.RemoveSpeaker(r.Context(), draftID, userID, r.PathValue("speakerID")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetFreeEvent godoc
// @Summary Mark the event as free or paid
// @Description Changing between free and paid discards every ticket type. When ticket types exist the caller must pass confirmed=true.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param free body SetFreeEventRequest true "Free flag"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed (confirmation_required)"
// @Router /drafts/{draftID}/free [put]
func (c *DraftController) SetFreeEvent(w http.ResponseWriter, r *http.Request) {
	var req SetFreeEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	draft, err := c.Service.SetFreeEvent(r.Context(), draftID, userID, req.IsFree, req.Confirmed)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draft)
}

// AddTicketType godoc
// @Summary Add a ticket type
// @Description Price must be positive for a paid event and is forced to zero for a free event.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param ticketType body AddTicketTypeRequest true "Ticket type"
// @Success 201 {object} domain.TicketType
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 409 {object} helpers.APIResponse "error.code: draft_closed"
// @Router /drafts/{draftID}/ticket-types [post]
func (c *DraftController) AddTicketType(w http.ResponseWriter, r *http.Request) {
	var req AddTicketTypeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	ticketType, err := c.Service.AddTicketType(r.Context(), draftID, userID, domain.TicketTypeInput{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Quantity:          req.Quantity,
		SaleStart:         req.SaleStart,
		SaleEnd:           req.SaleEnd,
		VIP:               req.VIP,
		EarlyBird:         req.EarlyBird,
		EarlyBirdDiscount: req.EarlyBirdDiscount,
		Category:          req.Category,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ticketType)
}

// RemoveTicketType godoc
// @Summary Remove a ticket type
// @Tags drafts
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param ticketTypeID path string true "Ticket type ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/ticket-types/{ticketTypeID} [delete]
func (c *DraftController) RemoveTicketType(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.RemoveTicketType(r.Context(), draftID, userID, r.PathValue("ticketTypeID")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PotentialRevenue godoc
// @Summary Potential revenue of the draft
// @Description Sum of price times quantity over all ticket types.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 200 {object} controllers.RevenueResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/revenue [get]
func (c *DraftController) PotentialRevenue(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	revenue, err := c.Service.PotentialRevenue(r.Context(), draftID, userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RevenueResponse{PotentialRevenue: revenue})
}

// AddSponsor godoc
// @Summary Add a sponsor
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param sponsor body AddSponsorRequest true "Sponsor"
// @Success 201 {object} domain.Sponsor
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Router /drafts/{draftID}/sponsors [post]
func (c *DraftController) AddSponsor(w http.ResponseWriter, r *http.Request) {
	var req AddSponsorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	sponsor, err := c.Service.AddSponsor(r.Context(), draftID, userID, domain.SponsorInput{
		Name:        req.Name,
		Level:       domain.SponsorLevel(req.Level),
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sponsor)
}

// RemoveSponsor godoc
// @Summary Remove a sponsor
// @Tags drafts
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param sponsorID path string true "Sponsor ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/sponsors/{sponsorID} [delete]
func (c *DraftController) RemoveSponsor(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.RemoveSponsor(r.Context(), draftID, userID, r.PathValue("sponsorID")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddBooth godoc
// @Summary Add an exhibition booth
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param booth body AddBoothRequest true "Booth"
// @Success 201 {object} domain.ExhibitionBooth
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Router /drafts/{draftID}/booths [post]
func (c *DraftController) AddBooth(w http.ResponseWriter, r *http.Request) {
	var req AddBoothRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	booth, err := c.Service.AddBooth(r.Context(), draftID, userID, domain.BoothInput{
		Name:          req.Name,
		Exhibitor:     req.Exhibitor,
		Description:   req.Description,
		Location:      req.Location,
		CoverImageURL: req.CoverImageURL,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booth)
}

// RemoveBooth godoc
// @Summary Remove an exhibition booth
// @Tags drafts
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param boothID path string true "Booth ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/booths/{boothID} [delete]
func (c *DraftController) RemoveBooth(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.RemoveBooth(r.Context(), draftID, userID, r.PathValue("boothID")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Validate godoc
// @Summary Check whether the draft can be submitted
// @Description Lists every failure that would block submission; ready is true when there are none.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 200 {object} controllers.DraftValidationResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/validation [get]
func (c *DraftController) Validate(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	failures, err := c.Service.Validate(r.Context(), draftID, userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if failures == nil {
		failures = []domain.FieldError{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DraftValidationResponse{Ready: len(failures) == 0, Failures: failures})
}

// Submit godoc
// @Summary Submit the draft
// @Description Finalizes the draft into a published event. The draft is closed afterwards.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param submit body SubmitDraftRequest false "Optional notification address"
// @Success 201 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: draft_closed"
// @Router /drafts/{draftID}/submit [post]
func (c *DraftController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitDraftRequest
	if !helpers.DecodeOptional(w, r, &req) {
		return
	}
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	notify := req.NotifyEmail
	if identity, ok := middleware.IdentityFromContext(r.Context()); ok && notify == "" {
		notify = identity.Email
	}
	if req.SkipNotification {
		notify = ""
	}
	event, err := c.Service.Submit(r.Context(), draftID, userID, notify)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Discard godoc
// @Summary Discard the draft
// @Tags drafts
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 204
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID} [delete]
func (c *DraftController) Discard(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.Discard(r.Context(), draftID, userID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportSessionize godoc
// @Summary Import a schedule from Sessionize
// @Description Adds the Sessionize speakers and the sessions that fall on the draft's days. The draft must have dates.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param sessionizeID path string true "Sessionize ID"
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /drafts/{draftID}/import/sessionize/{sessionizeID} [post]
func (c *DraftController) ImportSessionize(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := c.draftCaller(w, r)
	if !ok {
		return
	}
	sessionizeID := r.PathValue("sessionizeID")
	if sessionizeID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionizeID")
		return
	}
	result, err := c.Service.ImportSessionize(r.Context(), draftID, userID, sessionizeID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// draftCaller reads the draft ID path value and the authenticated user, writing
// the error response itself when either is missing.
func (c *DraftController) draftCaller(w http.ResponseWriter, r *http.Request) (draftID, userID string, ok bool) {
	draftID = r.PathValue("draftID")
	if draftID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing draftID")
		return "", "", false
	}
	userID, ok = middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", "", false
	}
	return draftID, userID, true
}
