package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/delivery/http/middleware"
	"eventplanner/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// newRequest builds a request with path values set and, unless userID is empty, an identity in context.
func newRequest(method, target, body, userID string, pathValues map[string]string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	if userID != "" {
		req = req.WithContext(middleware.SetIdentity(req.Context(), &domain.Identity{UserID: userID, Email: userID + "@example.com"}))
	}
	return req
}

// decodeEnvelope decodes the API envelope and unmarshals data into dest when dest is non-nil.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) *helpers.APIError {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	if dest != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}
	return envelope.Error
}

// fakeDraftService implements domain.DraftService for handler tests.
type fakeDraftService struct {
	err        error
	draft      *domain.EventDraft
	event      *domain.Event
	failures   []domain.FieldError
	revenue    decimal.Decimal
	importRes  *domain.ImportResult
	agenda     []domain.DayAgenda
	lastDraft  string
	lastOwner  string
	lastChild  string
	lastDayID  string
	lastNotify string
	lastFree   [2]bool
	lastStart  domain.Date
	lastEnd    domain.Date
	lastDetail domain.DraftDetails
	lastAct    domain.ActivityInput
	lastSpk    domain.SpeakerInput
	lastTicket domain.TicketTypeInput
	lastSpons  domain.SponsorInput
	lastBooth  domain.BoothInput
	calls      []string
}

func (f *fakeDraftService) record(name, draftID, ownerID string) {
	f.calls = append(f.calls, name)
	f.lastDraft = draftID
	f.lastOwner = ownerID
}

func (f *fakeDraftService) StartDraft(_ context.Context, ownerID string) (*domain.EventDraft, error) {
	f.record("StartDraft", "", ownerID)
	return f.draft, f.err
}

func (f *fakeDraftService) GetDraft(_ context.Context, draftID, ownerID string) (*domain.EventDraft, error) {
	f.record("GetDraft", draftID, ownerID)
	return f.draft, f.err
}

func (f *fakeDraftService) UpdateDetails(_ context.Context, draftID, ownerID string, details domain.DraftDetails) (*domain.EventDraft, error) {
	f.record("UpdateDetails", draftID, ownerID)
	f.lastDetail = details
	return f.draft, f.err
}

func (f *fakeDraftService) SetDates(_ context.Context, draftID, ownerID string, start, end domain.Date) (*domain.EventDraft, error) {
	f.record("SetDates", draftID, ownerID)
	f.lastStart, f.lastEnd = start, end
	return f.draft, f.err
}

func (f *fakeDraftService) SelectDay(_ context.Context, draftID, ownerID, dayID string) (*domain.EventDraft, error) {
	f.record("SelectDay", draftID, ownerID)
	f.lastDayID = dayID
	return f.draft, f.err
}

func (f *fakeDraftService) AddActivity(_ context.Context, draftID, ownerID, dayID string, in domain.ActivityInput) (*domain.Activity, error) {
	f.record("AddActivity", draftID, ownerID)
	f.lastDayID = dayID
	f.lastAct = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Activity{ID: "act-1", Title: in.Title, Type: in.Type, SpeakerIDs: in.SpeakerIDs}, nil
}

func (f *fakeDraftService) RemoveActivity(_ context.Context, draftID, ownerID, dayID, activityID string) error {
	f.record("RemoveActivity", draftID, ownerID)
	f.lastDayID = dayID
	f.lastChild = activityID
	return f.err
}

func (f *fakeDraftService) Agenda(_ context.Context, draftID, ownerID string) ([]domain.DayAgenda, error) {
	f.record("Agenda", draftID, ownerID)
	return f.agenda, f.err
}

func (f *fakeDraftService) AddSpeaker(_ context.Context, draftID, ownerID string, in domain.SpeakerInput) (*domain.Speaker, error) {
	f.record("AddSpeaker", draftID, ownerID)
	f.lastSpk = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Speaker{ID: "spk-1", Name: in.Name, Title: in.Title}, nil
}

func (f *fakeDraftService) RemoveSpeaker(_ context.Context, draftID, ownerID, speakerID string) error {
	f.record("RemoveSpeaker", draftID, ownerID)
	f.lastChild = speakerID
	return f.err
}

func (f *fakeDraftService) SetFreeEvent(_ context.Context, draftID, ownerID string, isFree, confirmed bool) (*domain.EventDraft, error) {
	f.record("SetFreeEvent", draftID, ownerID)
	f.lastFree = [2]bool{isFree, confirmed}
	return f.draft, f.err
}

func (f *fakeDraftService) AddTicketType(_ context.Context, draftID, ownerID string, in domain.TicketTypeInput) (*domain.TicketType, error) {
	f.record("AddTicketType", draftID, ownerID)
	f.lastTicket = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.TicketType{ID: "tt-1", Name: in.Name, Price: in.Price, Quantity: in.Quantity}, nil
}

func (f *fakeDraftService) RemoveTicketType(_ context.Context, draftID, ownerID, ticketTypeID string) error {
	f.record("RemoveTicketType", draftID, ownerID)
	f.lastChild = ticketTypeID
	return f.err
}

func (f *fakeDraftService) PotentialRevenue(_ context.Context, draftID, ownerID string) (decimal.Decimal, error) {
	f.record("PotentialRevenue", draftID, ownerID)
	return f.revenue, f.err
}

func (f *fakeDraftService) AddSponsor(_ context.Context, draftID, ownerID string, in domain.SponsorInput) (*domain.Sponsor, error) {
	f.record("AddSponsor", draftID, ownerID)
	f.lastSpons = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Sponsor{ID: "sp-1", Name: in.Name, Level: in.Level}, nil
}

func (f *fakeDraftService) RemoveSponsor(_ context.Context, draftID, ownerID, sponsorID string) error {
	f.record("RemoveSponsor", draftID, ownerID)
	f.lastChild = sponsorID
	return f.err
}

func (f *fakeDraftService) AddBooth(_ context.Context, draftID, ownerID string, in domain.BoothInput) (*domain.ExhibitionBooth, error) {
	f.record("AddBooth", draftID, ownerID)
	f.lastBooth = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ExhibitionBooth{ID: "b-1", Name: in.Name}, nil
}

func (f *fakeDraftService) RemoveBooth(_ context.Context, draftID, ownerID, boothID string) error {
	f.record("RemoveBooth", draftID, ownerID)
	f.lastChild = boothID
	return f.err
}

func (f *fakeDraftService) Validate(_ context.Context, draftID, ownerID string) ([]domain.FieldError, error) {
	f.record("Validate", draftID, ownerID)
	return f.failures, f.err
}

func (f *fakeDraftService) Submit(_ context.Context, draftID, ownerID, notifyEmail string) (*domain.Event, error) {
	f.record("Submit", draftID, ownerID)
	f.lastNotify = notifyEmail
	return f.event, f.err
}

func (f *fakeDraftService) Discard(_ context.Context, draftID, ownerID string) error {
	f.record("Discard", draftID, ownerID)
	return f.err
}

func (f *fakeDraftService) ImportSessionize(_ context.Context, draftID, ownerID, sessionizeID string) (*domain.ImportResult, error) {
	f.record("ImportSessionize", draftID, ownerID)
	f.lastChild = sessionizeID
	return f.importRes, f.err
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err         error
	events      map[string]*domain.Event
	byOwner     map[string][]*domain.Event
	calendar    []byte
	agenda      string
	lastOwnerID string
}

func (f *fakeEventService) GetEvent(_ context.Context, eventID string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	ev, ok := f.events[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (f *fakeEventService) ListMyEvents(_ context.Context, ownerID string) ([]*domain.Event, error) {
	f.lastOwnerID = ownerID
	if f.err != nil {
		return nil, f.err
	}
	return f.byOwner[ownerID], nil
}

func (f *fakeEventService) ExportCalendar(ctx context.Context, eventID string) ([]byte, error) {
	if _, err := f.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return f.calendar, nil
}

func (f *fakeEventService) RenderAgenda(ctx context.Context, eventID string) (string, error) {
	if _, err := f.GetEvent(ctx, eventID); err != nil {
		return "", err
	}
	return f.agenda, nil
}

// fakeTicketService implements domain.TicketService for handler tests.
type fakeTicketService struct {
	err              error
	tickets          []*domain.PurchasedTicket
	lastEventID      string
	lastUserID       string
	lastTicketTypeID string
}

func (f *fakeTicketService) Purchase(_ context.Context, eventID, userID, ticketTypeID string) (*domain.PurchasedTicket, error) {
	f.lastEventID, f.lastUserID, f.lastTicketTypeID = eventID, userID, ticketTypeID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PurchasedTicket{ID: "t-1", EventID: eventID, UserID: userID, TicketTypeID: ticketTypeID, Type: "General Admission", Price: decimal.Zero}, nil
}

func (f *fakeTicketService) ListMyTickets(_ context.Context, userID string) ([]*domain.PurchasedTicket, error) {
	f.lastUserID = userID
	return f.tickets, f.err
}

// fakeCatalogService implements domain.CatalogService for handler tests.
type fakeCatalogService struct {
	err          error
	items        []*domain.CatalogEvent
	total        int
	stats        *domain.CatalogStats
	lastCategory string
	lastParams   domain.PaginationParams
}

func (f *fakeCatalogService) List(_ context.Context, category string, params domain.PaginationParams) ([]*domain.CatalogEvent, int, error) {
	f.lastCategory, f.lastParams = category, params
	return f.items, f.total, f.err
}

func (f *fakeCatalogService) Get(_ context.Context, id string) (*domain.CatalogEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogService) Stats(_ context.Context) (*domain.CatalogStats, error) {
	return f.stats, f.err
}
