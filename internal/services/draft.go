package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"eventplanner/internal/clock"
	"eventplanner/internal/domain"

	"github.com/shopspring/decimal"
)

type draftService struct {
	drafts         domain.DraftRepository
	events         domain.EventRepository
	emailService   domain.EmailService
	publisher      domain.EventPublisher
	sf             domain.SessionFetcher
	agenda         domain.AgendaRenderer
	clock          clock.Clock
	logger         *slog.Logger
	contextTimeout time.Duration

	// mu serializes load-modify-save cycles against the draft store.
	mu sync.Mutex
}

func NewDraftService(drafts domain.DraftRepository,
	events domain.EventRepository,
	emailService domain.EmailService,
	publisher domain.EventPublisher,
	sessionFetcher domain.SessionFetcher,
	agenda domain.AgendaRenderer,
	clk clock.Clock,
	logger *slog.Logger,
	timeout time.Duration,
) domain.DraftService {
	return &draftService{
		drafts:         drafts,
		events:         events,
		emailService:   emailService,
		publisher:      publisher,
		sf:             sessionFetcher,
		agenda:         agenda,
		clock:          clk,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *draftService) StartDraft(ctx context.Context, ownerID string) (*domain.EventDraft, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if ownerID == "" {
		return nil, fmt.Errorf("draft owner is required")
	}
	draft := domain.NewEventDraft(ownerID, s.clock.Now())
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// load fetches a draft and checks that ownerID owns it.
func (s *draftService) load(ctx context.Context, draftID, ownerID string) (*domain.EventDraft, error) {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if draft.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return draft, nil
}

// mutate applies fn to the owner's draft and saves it only when fn succeeds.
func (s *draftService) mutate(ctx context.Context, draftID, ownerID string, fn func(ctx context.Context, d *domain.EventDraft) error) (*domain.EventDraft, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(ctx, draftID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := fn(ctx, draft); err != nil {
		return nil, err
	}
	draft.UpdatedAt = s.clock.Now()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// read loads the owner's draft without saving it.
func (s *draftService) read(ctx context.Context, draftID, ownerID string) (*domain.EventDraft, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.load(ctx, draftID, ownerID)
}

func (s *draftService) GetDraft(ctx context.Context, draftID, ownerID string) (*domain.EventDraft, error) {
	return s.read(ctx, draftID, ownerID)
}

func (s *draftService) UpdateDetails(ctx context.Context, draftID, ownerID string, details domain.DraftDetails) (*domain.EventDraft, error) {
	return s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		return d.SetDetails(details)
	})
}

func (s *draftService) SetDates(ctx context.Context, draftID, ownerID string, start, end domain.Date) (*domain.EventDraft, error) {
	return s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		return d.SetDates(start, end)
	})
}

func (s *draftService) SelectDay(ctx context.Context, draftID, ownerID, dayID string) (*domain.EventDraft, error) {
	return s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		return d.SelectDay(dayID)
	})
}

func (s *draftService) AddActivity(ctx context.Context, draftID, ownerID, dayID string, in domain.ActivityInput) (*domain.Activity, error) {
	var added domain.Activity
	_, err := s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		var err error
		added, err = d.AddActivity(dayID, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *draftService) RemoveActivity(ctx context.Context, draftID, ownerID, dayID, activityID string) error {
	_, err := s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		return d.RemoveActivity(dayID, activityID)
	})
	return err
}

func (s *draftService) Agenda(ctx context.Context, draftID, ownerID string) ([]domain.DayAgenda, error) {
	draft, err := s.read(ctx, draftID, ownerID)
	if err != nil {
		return nil, err
	}
	return domain.CollectAgenda(draft.Days), nil
}

func (s *draftService) AddSpeaker(ctx context.Context, draftID, ownerID string, in domain.SpeakerInput) (*domain.Speaker, error) {
	var added domain.Speaker
	_, err := s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		var err error
		added, err = d.AddSpeaker(in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *draftService) RemoveSpeaker(ctx context.Context, draftID, ownerID, speakerID string) error {
	_, err := s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		return d.RemoveSpeaker(speakerID)
	})
	return err
}

func (s *draftService) SetFreeEvent(ctx context.Context, draftID, ownerID string, isFree, confirmed bool) (*domain.EventDraft, error) {
	return s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		return d.SetFreeEvent(isFree, confirmed)
	})
}

func (s *draftService) AddTicketType(ctx context.Context, draftID, ownerID string, in domain.TicketTypeInput) (*domain.TicketType, error) {
	var added domain.TicketType
	_, err := s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		var err error
		added, err = d.AddTicketType(in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *draftService) RemoveTicketType(ctx context.Context, draftID, ownerID, ticketTypeID string) error {
	_, err := s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		return d.RemoveTicketType(ticketTypeID)
	})
	return err
}

func (s *draftService) PotentialRevenue(ctx context.Context, draftID, ownerID string) (decimal.Decimal, error) {
	draft, err := s.read(ctx, draftID, ownerID)
	if err != nil {
		return decimal.Zero, err
	}
	return draft.PotentialRevenue(), nil
}

func (s *draftService) AddSponsor(ctx context.Context, draftID, ownerID string, in domain.SponsorInput) (*domain.Sponsor, error) {
	var added domain.Sponsor
	_, err := s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		var err error
		added, err = d.AddSponsor(in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *draftService) RemoveSponsor(ctx context.Context, draftID, ownerID, sponsorID string) error {
	_, err := s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		return d.RemoveSponsor(sponsorID)
	})
	return err
}

func (s *draftService) AddBooth(ctx context.Context, draftID, ownerID string, in domain.BoothInput) (*domain.ExhibitionBooth, error) {
	var added domain.ExhibitionBooth
	_, err := s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		var err error
		added, err = d.AddBooth(in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *draftService) RemoveBooth(ctx context.Context, draftID, ownerID, boothID string) error {
	_, err := s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		return d.RemoveBooth(boothID)
	})
	return err
}

func (s *draftService) Validate(ctx context.Context, draftID, ownerID string) ([]domain.FieldError, error) {
	draft, err := s.read(ctx, draftID, ownerID)
	if err != nil {
		return nil, err
	}
	return draft.ValidateForSubmit(), nil
}

// Submit finalizes the draft, stores the event and then notifies the owner and
// other systems. Notification failures are logged; the event stays published.
func (s *draftService) Submit(ctx context.Context, draftID, ownerID, notifyEmail string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(ctx, draftID, ownerID)
	if err != nil {
		return nil, err
	}
	event, err := draft.Finalize()
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if notifyEmail != "" && s.emailService != nil {
		if err := s.emailService.SendEventPublished(ctx, s.publishedEmailData(notifyEmail, event)); err != nil {
			s.logger.Warn("event published email failed", "event_id", event.ID, "error", err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishEventPublished(ctx, event); err != nil {
			s.logger.Warn("publish event failed", "event_id", event.ID, "error", err)
		}
	}
	if err := s.drafts.Delete(ctx, draftID); err != nil {
		s.logger.Warn("remove submitted draft failed", "draft_id", draftID, "error", err)
	}
	s.logger.Info("event published", "event_id", event.ID, "draft_id", draftID, "owner_id", ownerID)
	return event, nil
}

func (s *draftService) publishedEmailData(to string, event *domain.Event) *domain.EventPublishedEmailData {
	data := &domain.EventPublishedEmailData{
		Email:            to,
		EventID:          event.ID,
		EventTitle:       event.Title,
		StartDate:        event.StartDate.String(),
		EndDate:          event.EndDate.String(),
		Location:         event.Location,
		IsFree:           event.IsFree,
		TicketTypeCount:  len(event.TicketTypes),
		PotentialRevenue: event.PotentialRevenue.StringFixed(2),
	}
	if s.agenda != nil {
		data.Agenda = s.agenda.Render(event)
	}
	return data
}

func (s *draftService) Discard(ctx context.Context, draftID, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(ctx, draftID, ownerID)
	if err != nil {
		return err
	}
	if err := draft.Discard(); err != nil {
		return err
	}
	if err := s.drafts.Delete(ctx, draftID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// ImportSessionize adds the speakers and sessions of a Sessionize event to the
// draft. Sessions that do not fall on one of the draft's days are skipped.
// The fetch runs without holding the write lock.
func (s *draftService) ImportSessionize(ctx context.Context, draftID, ownerID, sessionizeID string) (*domain.ImportResult, error) {
	draft, err := s.read(ctx, draftID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := requireDays(draft); err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	data, err := s.sf.Fetch(fetchCtx, sessionizeID)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("fetch sessionize %s: %w", sessionizeID, err)
	}

	result := &domain.ImportResult{}
	_, err = s.mutate(ctx, draftID, ownerID, func(_ context.Context, d *domain.EventDraft) error {
		if err := requireDays(d); err != nil {
			return err
		}
		importSessionize(d, data, result)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("sessionize import",
		"draft_id", draftID,
		"speakers", result.SpeakersAdded,
		"activities", result.ActivitiesAdded,
		"skipped", result.SessionsSkipped,
	)
	return result, nil
}

func requireDays(d *domain.EventDraft) error {
	if len(d.Days) > 0 {
		return nil
	}
	return domain.NewValidationError(domain.FieldError{
		Field:   "startDate",
		Code:    domain.CodeRequired,
		Message: "event dates must be set before importing a schedule",
	})
}

func importSessionize(d *domain.EventDraft, data domain.SessionFetcherResponse, result *domain.ImportResult) {
	rooms := make(map[int]string, len(data.Rooms))
	for _, r := range data.Rooms {
		rooms[r.ID] = r.Name
	}

	speakerIDs := make(map[string]string, len(data.Speakers))
	for _, sp := range data.Speakers {
		name := sp.FullName
		if strings.TrimSpace(name) == "" {
			name = strings.TrimSpace(sp.FirstName + " " + sp.LastName)
		}
		title := sp.TagLine
		if strings.TrimSpace(title) == "" {
			title = "Speaker"
		}
		added, err := d.AddSpeaker(domain.SpeakerInput{
			Name:     name,
			Title:    title,
			Bio:      sp.Bio,
			ImageURL: sp.ProfilePicture,
		})
		if err != nil {
			continue
		}
		speakerIDs[sp.ID] = added.ID
		result.SpeakersAdded++
	}

	for _, sess := range data.Sessions {
		day, ok := d.DayOn(domain.DateOf(sess.StartsAt.Time))
		if !ok || sess.StartsAt.IsZero() || sess.EndsAt.IsZero() {
			result.SessionsSkipped++
			continue
		}
		var refs []string
		for _, id := range sess.Speakers {
			if mapped, ok := speakerIDs[id]; ok {
				refs = append(refs, mapped)
			}
		}
		_, err := d.AddActivity(day.ID, domain.ActivityInput{
			Title:       sess.Title,
			Description: sess.Description,
			StartTime:   domain.TimeOfDayOf(sess.StartsAt.Time).String(),
			EndTime:     domain.TimeOfDayOf(sess.EndsAt.Time).String(),
			Type:        domain.ActivityMeeting,
			Location:    rooms[sess.RoomID],
			SpeakerIDs:  refs,
		})
		if err != nil {
			result.SessionsSkipped++
			continue
		}
		result.ActivitiesAdded++
	}
}
