package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DraftStatus is the lifecycle state of an EventDraft.
// Empty → Editing → {Submitted, Discarded}; the last two are terminal.
type DraftStatus string

const (
	DraftEmpty     DraftStatus = "empty"
	DraftEditing   DraftStatus = "editing"
	DraftSubmitted DraftStatus = "submitted"
	DraftDiscarded DraftStatus = "discarded"
)

// EventDraft is an in-progress event definition owned by one authoring session.
// Every mutating method validates first and leaves the draft untouched on error.
// swagger:model EventDraft
type EventDraft struct {
	ID            string            `json:"id"`
	OwnerID       string            `json:"owner_id"`
	Status        DraftStatus       `json:"status"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	Location      string            `json:"location"`
	StartDate     Date              `json:"start_date,omitzero"`
	EndDate       Date              `json:"end_date,omitzero"`
	IsFree        bool              `json:"is_free"`
	Days          []EventDay        `json:"days"`
	SelectedDayID string            `json:"selected_day_id,omitempty"`
	Speakers      []Speaker         `json:"speakers"`
	TicketTypes   []TicketType      `json:"ticket_types"`
	Sponsors      []Sponsor         `json:"sponsors"`
	Booths        []ExhibitionBooth `json:"booths"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// NewEventDraft returns an empty draft for ownerID.
func NewEventDraft(ownerID string, now time.Time) *EventDraft {
	return &EventDraft{
		ID:          newID(),
		OwnerID:     ownerID,
		Status:      DraftEmpty,
		Days:        []EventDay{},
		Speakers:    []Speaker{},
		TicketTypes: []TicketType{},
		Sponsors:    []Sponsor{},
		Booths:      []ExhibitionBooth{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Closed reports whether the draft reached a terminal state.
func (d *EventDraft) Closed() bool {
	return d.Status == DraftSubmitted || d.Status == DraftDiscarded
}

func (d *EventDraft) checkOpen() error {
	if d.Closed() {
		return fmt.Errorf("draft %s is %s: %w", d.ID, d.Status, ErrDraftClosed)
	}
	return nil
}

// touch records a successful mutation.
func (d *EventDraft) touch() {
	d.Status = DraftEditing
}

// DraftDetails patches the descriptive fields; nil fields are left unchanged.
type DraftDetails struct {
	Title       *string
	Description *string
	Category    *string
	Location    *string
}

// SetDetails applies a details patch.
func (d *EventDraft) SetDetails(p DraftDetails) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if p.Title != nil {
		d.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		d.Description = strings.TrimSpace(*p.Description)
	}
	if p.Category != nil {
		d.Category = strings.TrimSpace(*p.Category)
	}
	if p.Location != nil {
		d.Location = strings.TrimSpace(*p.Location)
	}
	d.touch()
	return nil
}

// SetDates stores the date range. When both dates are set the day list is
// regenerated wholesale and activities on the old days are dropped; when either
// is unset the day list is cleared. The selected day follows its calendar date
// when that date is still in range, otherwise it moves to the first day.
func (d *EventDraft) SetDates(start, end Date) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	days := []EventDay{}
	if !start.IsZero() && !end.IsZero() {
		generated, err := GenerateDays(start, end)
		if err != nil {
			return err
		}
		days = generated
	}

	var selectedDate Date
	if prev, ok := d.Day(d.SelectedDayID); ok {
		selectedDate = prev.Date
	}
	d.StartDate, d.EndDate = start, end
	d.Days = days
	d.SelectedDayID = ""
	for _, day := range days {
		if day.Date == selectedDate {
			d.SelectedDayID = day.ID
			break
		}
	}
	if d.SelectedDayID == "" && len(days) > 0 {
		d.SelectedDayID = days[0].ID
	}
	d.touch()
	return nil
}

// SelectDay moves the "current day" pointer used by the authoring UI.
func (d *EventDraft) SelectDay(dayID string) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if _, ok := d.Day(dayID); !ok {
		return fmt.Errorf("day %s: %w", dayID, ErrNotFound)
	}
	d.SelectedDayID = dayID
	d.touch()
	return nil
}

// Day returns a copy of the day with the given ID.
func (d *EventDraft) Day(dayID string) (EventDay, bool) {
	i := d.dayIndex(dayID)
	if i < 0 {
		return EventDay{}, false
	}
	return d.Days[i], true
}

func (d *EventDraft) dayIndex(dayID string) int {
	if dayID == "" {
		return -1
	}
	return slices.IndexFunc(d.Days, func(day EventDay) bool { return day.ID == dayID })
}

// DayOn returns the day whose calendar date is date.
func (d *EventDraft) DayOn(date Date) (EventDay, bool) {
	i := slices.IndexFunc(d.Days, func(day EventDay) bool { return day.Date == date })
	if i < 0 {
		return EventDay{}, false
	}
	return d.Days[i], true
}

// AddActivity validates in and appends it to the day. Referenced speakers must exist.
func (d *EventDraft) AddActivity(dayID string, in ActivityInput) (Activity, error) {
	if err := d.checkOpen(); err != nil {
		return Activity{}, err
	}
	i := d.dayIndex(dayID)
	if i < 0 {
		return Activity{}, fmt.Errorf("day %s: %w", dayID, ErrNotFound)
	}
	activity, err := newActivity(in)
	if err != nil {
		return Activity{}, err
	}
	for _, id := range activity.SpeakerIDs {
		if _, ok := d.Speaker(id); !ok {
			return Activity{}, NewValidationError(FieldError{Field: "speakerIds", Code: CodeUnknownSpeaker, Message: fmt.Sprintf("speaker %s does not exist", id)})
		}
	}
	d.Days[i].Activities = append(d.Days[i].Activities, activity)
	d.touch()
	return activity, nil
}

// RemoveActivity deletes the activity from the day. Unknown IDs are a no-op.
func (d *EventDraft) RemoveActivity(dayID, activityID string) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	i := d.dayIndex(dayID)
	if i < 0 {
		return nil
	}
	before := len(d.Days[i].Activities)
	d.Days[i].Activities = slices.DeleteFunc(d.Days[i].Activities, func(a Activity) bool { return a.ID == activityID })
	if len(d.Days[i].Activities) != before {
		d.touch()
	}
	return nil
}

// AddSpeaker validates in and appends a new speaker.
func (d *EventDraft) AddSpeaker(in SpeakerInput) (Speaker, error) {
	if err := d.checkOpen(); err != nil {
		return Speaker{}, err
	}
	sp, err := newSpeaker(in)
	if err != nil {
		return Speaker{}, err
	}
	d.Speakers = append(d.Speakers, sp)
	d.touch()
	return sp, nil
}

// Speaker looks up a speaker by ID.
func (d *EventDraft) Speaker(speakerID string) (Speaker, bool) {
	i := slices.IndexFunc(d.Speakers, func(s Speaker) bool { return s.ID == speakerID })
	if i < 0 {
		return Speaker{}, false
	}
	return d.Speakers[i], true
}

// ResolveSpeakers returns the speakers an activity references, skipping unknown IDs.
func (d *EventDraft) ResolveSpeakers(a Activity) []Speaker {
	out := make([]Speaker, 0, len(a.SpeakerIDs))
	for _, id := range a.SpeakerIDs {
		if sp, ok := d.Speaker(id); ok {
			out = append(out, sp)
		}
	}
	return out
}

// RemoveSpeaker deletes the speaker from the registry and then runs the
// dereference pass over every activity. Unknown IDs are a no-op.
func (d *EventDraft) RemoveSpeaker(speakerID string) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	before := len(d.Speakers)
	d.Speakers = slices.DeleteFunc(d.Speakers, func(s Speaker) bool { return s.ID == speakerID })
	touched := d.DereferenceSpeaker(speakerID)
	if len(d.Speakers) != before || touched > 0 {
		d.touch()
	}
	return nil
}

// DereferenceSpeaker removes speakerID from every activity across all days and
// returns how many activities changed. Activities themselves are never deleted.
func (d *EventDraft) DereferenceSpeaker(speakerID string) int {
	touched := 0
	for i := range d.Days {
		for j := range d.Days[i].Activities {
			a := &d.Days[i].Activities[j]
			before := len(a.SpeakerIDs)
			a.SpeakerIDs = slices.DeleteFunc(a.SpeakerIDs, func(id string) bool { return id == speakerID })
			if len(a.SpeakerIDs) != before {
				touched++
			}
		}
	}
	return touched
}

// SetFreeEvent switches between free and paid. Changing mode while ticket
// types exist needs confirmed=true and then discards every ticket type: paid
// prices do not survive going free, and free types are priced at zero.
func (d *EventDraft) SetFreeEvent(isFree, confirmed bool) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if isFree != d.IsFree && len(d.TicketTypes) > 0 {
		if !confirmed {
			msg := "switching to a free event discards all ticket types and must be confirmed"
			if !isFree {
				msg = "switching to a paid event discards all free ticket types and must be confirmed"
			}
			return NewValidationError(FieldError{Field: "isFree", Code: CodeConfirmationRequired, Message: msg})
		}
		d.TicketTypes = []TicketType{}
	}
	d.IsFree = isFree
	d.touch()
	return nil
}

// AddTicketType validates in and appends a new ticket type.
func (d *EventDraft) AddTicketType(in TicketTypeInput) (TicketType, error) {
	if err := d.checkOpen(); err != nil {
		return TicketType{}, err
	}
	tt, err := newTicketType(in, d.IsFree)
	if err != nil {
		return TicketType{}, err
	}
	d.TicketTypes = append(d.TicketTypes, tt)
	d.touch()
	return tt, nil
}

// RemoveTicketType deletes a ticket type. Unknown IDs are a no-op.
func (d *EventDraft) RemoveTicketType(ticketTypeID string) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	before := len(d.TicketTypes)
	d.TicketTypes = slices.DeleteFunc(d.TicketTypes, func(t TicketType) bool { return t.ID == ticketTypeID })
	if len(d.TicketTypes) != before {
		d.touch()
	}
	return nil
}

// PotentialRevenue is zero for a free event, otherwise the sum of line revenues.
func (d *EventDraft) PotentialRevenue() decimal.Decimal {
	if d.IsFree {
		return decimal.Zero
	}
	return PotentialRevenue(d.TicketTypes)
}

func (d *EventDraft) AddSponsor(in SponsorInput) (Sponsor, error) {
	if err := d.checkOpen(); err != nil {
		return Sponsor{}, err
	}
	s, err := newSponsor(in)
	if err != nil {
		return Sponsor{}, err
	}
	d.Sponsors = append(d.Sponsors, s)
	d.touch()
	return s, nil
}

func (d *EventDraft) RemoveSponsor(sponsorID string) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	before := len(d.Sponsors)
	d.Sponsors = slices.DeleteFunc(d.Sponsors, func(s Sponsor) bool { return s.ID == sponsorID })
	if len(d.Sponsors) != before {
		d.touch()
	}
	return nil
}

func (d *EventDraft) AddBooth(in BoothInput) (ExhibitionBooth, error) {
	if err := d.checkOpen(); err != nil {
		return ExhibitionBooth{}, err
	}
	b, err := newBooth(in)
	if err != nil {
		return ExhibitionBooth{}, err
	}
	d.Booths = append(d.Booths, b)
	d.touch()
	return b, nil
}

func (d *EventDraft) RemoveBooth(boothID string) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	before := len(d.Booths)
	d.Booths = slices.DeleteFunc(d.Booths, func(b ExhibitionBooth) bool { return b.ID == boothID })
	if len(d.Booths) != before {
		d.touch()
	}
	return nil
}

// ValidateForSubmit lists every reason the draft cannot be finalized yet.
// An empty result means the draft is submittable.
func (d *EventDraft) ValidateForSubmit() []FieldError {
	failures := []FieldError{}
	if strings.TrimSpace(d.Title) == "" {
		failures = append(failures, FieldError{Field: "title", Code: CodeRequired, Message: "title is required"})
	}
	if d.StartDate.IsZero() {
		failures = append(failures, FieldError{Field: "startDate", Code: CodeRequired, Message: "start date is required"})
	}
	if d.EndDate.IsZero() {
		failures = append(failures, FieldError{Field: "endDate", Code: CodeRequired, Message: "end date is required"})
	}
	if !d.StartDate.IsZero() && !d.EndDate.IsZero() && d.StartDate.After(d.EndDate) {
		failures = append(failures, FieldError{Field: "endDate", Code: CodeDateRange, Message: "end date must not be before start date"})
	}
	if !d.IsFree && len(d.TicketTypes) == 0 {
		failures = append(failures, FieldError{Field: "ticketTypes", Code: CodeTicketTypeRequired, Message: "at least one ticket type is required for a paid event"})
	}
	if !d.IsFree {
		for _, t := range d.TicketTypes {
			if !t.Price.IsPositive() {
				failures = append(failures, FieldError{Field: "ticketTypes", Code: CodeInvalidPrice, Message: fmt.Sprintf("ticket type %q must have a price greater than zero for a paid event", t.Name)})
			}
		}
	}
	return failures
}

// Finalize freezes the draft into an Event snapshot and marks it submitted.
// On failure it returns a ValidationError carrying every failure and the draft is unchanged.
func (d *EventDraft) Finalize() (*Event, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}
	if failures := d.ValidateForSubmit(); len(failures) > 0 {
		return nil, NewValidationError(failures...)
	}
	event := &Event{
		DraftID:          d.ID,
		OwnerID:          d.OwnerID,
		Status:           EventPublished,
		Title:            d.Title,
		Description:      d.Description,
		Category:         d.Category,
		Location:         d.Location,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		IsFree:           d.IsFree,
		Days:             cloneDays(d.Days),
		Speakers:         slices.Clone(d.Speakers),
		TicketTypes:      slices.Clone(d.TicketTypes),
		Sponsors:         slices.Clone(d.Sponsors),
		Booths:           slices.Clone(d.Booths),
		TicketCategories: TicketCategories(d.TicketTypes),
		PotentialRevenue: d.PotentialRevenue(),
	}
	d.Status = DraftSubmitted
	return event, nil
}

// Discard closes the draft without producing an event.
func (d *EventDraft) Discard() error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	d.Status = DraftDiscarded
	return nil
}

func cloneDays(days []EventDay) []EventDay {
	out := make([]EventDay, len(days))
	for i, day := range days {
		acts := make([]Activity, len(day.Activities))
		for j, a := range day.Activities {
			a.SpeakerIDs = slices.Clone(a.SpeakerIDs)
			acts[j] = a
		}
		day.Activities = acts
		out[i] = day
	}
	return out
}

// DraftRepository persists drafts between requests. Get returns ErrNotFound for unknown IDs.
type DraftRepository interface {
	Save(ctx context.Context, draft *EventDraft) error
	Get(ctx context.Context, id string) (*EventDraft, error)
	Delete(ctx context.Context, id string) error
}

// ImportResult summarizes a schedule import into a draft.
type ImportResult struct {
	SpeakersAdded   int `json:"speakers_added"`
	ActivitiesAdded int `json:"activities_added"`
	SessionsSkipped int `json:"sessions_skipped"`
}

// DraftService is the authoring flow: every call loads the draft, checks the
// owner, applies one domain operation and saves on success.
type DraftService interface {
	StartDraft(ctx context.Context, ownerID string) (*EventDraft, error)
	GetDraft(ctx context.Context, draftID, ownerID string) (*EventDraft, error)
	UpdateDetails(ctx context.Context, draftID, ownerID string, details DraftDetails) (*EventDraft, error)
	SetDates(ctx context.Context, draftID, ownerID string, start, end Date) (*EventDraft, error)
	SelectDay(ctx context.Context, draftID, ownerID, dayID string) (*EventDraft, error)
	AddActivity(ctx context.Context, draftID, ownerID, dayID string, in ActivityInput) (*Activity, error)
	RemoveActivity(ctx context.Context, draftID, ownerID, dayID, activityID string) error
	Agenda(ctx context.Context, draftID, ownerID string) ([]DayAgenda, error)
	AddSpeaker(ctx context.Context, draftID, ownerID string, in SpeakerInput) (*Speaker, error)
	RemoveSpeaker(ctx context.Context, draftID, ownerID, speakerID string) error
	SetFreeEvent(ctx context.Context, draftID, ownerID string, isFree, confirmed bool) (*EventDraft, error)
	AddTicketType(ctx context.Context, draftID, ownerID string, in TicketTypeInput) (*TicketType, error)
	RemoveTicketType(ctx context.Context, draftID, ownerID, ticketTypeID string) error
	PotentialRevenue(ctx context.Context, draftID, ownerID string) (decimal.Decimal, error)
	AddSponsor(ctx context.Context, draftID, ownerID string, in SponsorInput) (*Sponsor, error)
	RemoveSponsor(ctx context.Context, draftID, ownerID, sponsorID string) error
	AddBooth(ctx context.Context, draftID, ownerID string, in BoothInput) (*ExhibitionBooth, error)
	RemoveBooth(ctx context.Context, draftID, ownerID, boothID string) error
	Validate(ctx context.Context, draftID, ownerID string) ([]FieldError, error)
	Submit(ctx context.Context, draftID, ownerID, notifyEmail string) (*Event, error)
	Discard(ctx context.Context, draftID, ownerID string) error
	ImportSessionize(ctx context.Context, draftID, ownerID, sessionizeID string) (*ImportResult, error)
}
