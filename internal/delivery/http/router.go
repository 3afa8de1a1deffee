package http

import (
	"log/slog"
	"net/http"

	"eventplanner/internal/delivery/http/controllers"
	"eventplanner/internal/delivery/http/middleware"
	"eventplanner/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps groups what NewRouter needs to mount the API.
type RouterDeps struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	AllowedOrigins []string
	Drafts         *controllers.DraftController
	Events         *controllers.EventController
	Tickets        *controllers.TicketController
	Catalog        *controllers.CatalogController
}

// NewRouter initializes the HTTP router with all application routes and wraps
// it in the request ID, access log and CORS middleware.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(deps.Verifier, deps.Logger)

	// Draft authoring
	d := deps.Drafts
	mux.HandleFunc("POST /drafts", auth(d.StartDraft))
	mux.HandleFunc("GET /drafts/{draftID}", auth(d.GetDraft))
	mux.HandleFunc("PATCH /drafts/{draftID}", auth(d.UpdateDetails))
	mux.HandleFunc("DELETE /drafts/{draftID}", auth(d.Discard))
	mux.HandleFunc("PUT /drafts/{draftID}/dates", auth(d.SetDates))
	mux.HandleFunc("PUT /drafts/{draftID}/selected-day", auth(d.SelectDay))
	mux.HandleFunc("POST /drafts/{draftID}/days/{dayID}/activities", auth(d.AddActivity))
	mux.HandleFunc("DELETE /drafts/{draftID}/days/{dayID}/activities/{activityID}", auth(d.RemoveActivity))
	mux.HandleFunc("GET /drafts/{draftID}/agenda", auth(d.Agenda))
	mux.HandleFunc("POST /drafts/{draftID}/speakers", auth(d.AddSpeaker))
	mux.HandleFunc("DELETE /drafts/{draftID}/speakers/{speakerID}", auth(d.RemoveSpeaker))
	mux.HandleFunc("PUT /drafts/{draftID}/free", auth(d.SetFreeEvent))
	mux.HandleFunc("POST /drafts/{draftID}/ticket-types", auth(d.AddTicketType))
	mux.HandleFunc("DELETE /drafts/{draftID}/ticket-types/{ticketTypeID}", auth(d.RemoveTicketType))
	mux.HandleFunc("GET /drafts/{draftID}/revenue", auth(d.PotentialRevenue))
	mux.HandleFunc("POST /drafts/{draftID}/sponsors", auth(d.AddSponsor))
	mux.HandleFunc("DELETE /drafts/{draftID}/sponsors/{sponsorID}", auth(d.RemoveSponsor))
	mux.HandleFunc("POST /drafts/{draftID}/booths", auth(d.AddBooth))
	mux.HandleFunc("DELETE /drafts/{draftID}/booths/{boothID}", auth(d.RemoveBooth))
	mux.HandleFunc("GET /drafts/{draftID}/validation", auth(d.Validate))
	mux.HandleFunc("POST /drafts/{draftID}/submit", auth(d.Submit))
	mux.HandleFunc("POST /drafts/{draftID}/import/sessionize/{sessionizeID}", auth(d.ImportSessionize))

	// Published events
	e := deps.Events
	mux.HandleFunc("GET /events/me", auth(e.ListMyEvents))
	mux.HandleFunc("GET /events/{eventID}", auth(e.GetEvent))
	mux.HandleFunc("GET /events/{eventID}/calendar.ics", auth(e.ExportCalendar))
	mux.HandleFunc("GET /events/{eventID}/agenda.txt", auth(e.RenderAgenda))

	// Tickets
	mux.HandleFunc("POST /events/{eventID}/tickets", auth(deps.Tickets.Purchase))
	mux.HandleFunc("GET /tickets/me", auth(deps.Tickets.ListMyTickets))

	// Catalog (public)
	mux.HandleFunc("GET /catalog/events", deps.Catalog.List)
	mux.HandleFunc("GET /catalog/events/{eventID}", deps.Catalog.Get)
	mux.HandleFunc("GET /catalog/stats", deps.Catalog.Stats)

	mux.HandleFunc("GET /health", health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(deps.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(deps.Logger, handler)
	handler = middleware.RequestID(handler)
	return handler
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
