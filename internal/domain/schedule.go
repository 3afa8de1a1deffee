package domain

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ActivityType classifies an activity on the agenda.
type ActivityType string

const (
	ActivityMeeting    ActivityType = "meeting"
	ActivityWorkshop   ActivityType = "workshop"
	ActivityExhibit    ActivityType = "exhibit"
	ActivityNetworking ActivityType = "networking"
	ActivityOther      ActivityType = "other"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityMeeting, ActivityWorkshop, ActivityExhibit, ActivityNetworking, ActivityOther:
		return true
	}
	return false
}

// Activity is a timed item within a single day. Speakers are referenced by ID only.
type Activity struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	StartTime   TimeOfDay    `json:"start_time"`
	EndTime     TimeOfDay    `json:"end_time"`
	Type        ActivityType `json:"type"`
	Location    string       `json:"location,omitempty"`
	SpeakerIDs  []string     `json:"speaker_ids"`
}

// ActivityInput is the unvalidated form of an activity. Times are HH:MM strings.
type ActivityInput struct {
	Title       string
	Description string
	StartTime   string
	EndTime     string
	Type        ActivityType
	Location    string
	SpeakerIDs  []string
}

// newActivity validates in and returns an Activity with a fresh ID.
// An empty type defaults to meeting. Speaker IDs are deduplicated.
func newActivity(in ActivityInput) (Activity, error) {
	var failures []FieldError
	title := strings.TrimSpace(in.Title)
	if title == "" {
		failures = append(failures, FieldError{Field: "title", Code: CodeRequired, Message: "title is required"})
	}

	start, startOK := parseActivityTime("startTime", in.StartTime, &failures)
	end, endOK := parseActivityTime("endTime", in.EndTime, &failures)
	if startOK && endOK && start >= end {
		failures = append(failures, FieldError{Field: "endTime", Code: CodeTimeRange, Message: "end time must be after start time"})
	}

	typ := in.Type
	if typ == "" {
		typ = ActivityMeeting
	}
	if !typ.Valid() {
		failures = append(failures, FieldError{Field: "type", Code: CodeInvalidType, Message: fmt.Sprintf("unknown activity type %q", in.Type)})
	}
	if err := validationErrorOrNil(failures); err != nil {
		return Activity{}, err
	}

	return Activity{
		ID:          newID(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		StartTime:   start,
		EndTime:     end,
		Type:        typ,
		Location:    strings.TrimSpace(in.Location),
		SpeakerIDs:  dedupe(in.SpeakerIDs),
	}, nil
}

func parseActivityTime(field, raw string, failures *[]FieldError) (TimeOfDay, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*failures = append(*failures, FieldError{Field: field, Code: CodeRequired, Message: field + " is required"})
		return 0, false
	}
	t, err := ParseTimeOfDay(raw)
	if err != nil {
		*failures = append(*failures, FieldError{Field: field, Code: CodeInvalidTime, Message: field + " must be HH:MM"})
		return 0, false
	}
	return t, true
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// SortedAgenda yields the day's activities by start time. Ties keep insertion order.
// Each range over the sequence sorts a fresh snapshot, so it can be restarted.
func SortedAgenda(day EventDay) iter.Seq[Activity] {
	return func(yield func(Activity) bool) {
		sorted := slices.Clone(day.Activities)
		slices.SortStableFunc(sorted, func(a, b Activity) int {
			return cmp.Compare(a.StartTime, b.StartTime)
		})
		for _, a := range sorted {
			if !yield(a) {
				return
			}
		}
	}
}

// OverallAgenda yields every day in ascending date order with that day's sorted agenda.
func OverallAgenda(days []EventDay) iter.Seq2[EventDay, iter.Seq[Activity]] {
	return func(yield func(EventDay, iter.Seq[Activity]) bool) {
		ordered := slices.Clone(days)
		slices.SortStableFunc(ordered, func(a, b EventDay) int {
			return a.Date.Time().Compare(b.Date.Time())
		})
		for _, day := range ordered {
			if !yield(day, SortedAgenda(day)) {
				return
			}
		}
	}
}

// DayAgenda is a materialized day of the overall agenda.
type DayAgenda struct {
	DayID      string     `json:"day_id"`
	Date       Date       `json:"date"`
	Activities []Activity `json:"activities"`
}

// CollectAgenda materializes OverallAgenda into a slice.
func CollectAgenda(days []EventDay) []DayAgenda {
	out := make([]DayAgenda, 0, len(days))
	for day, activities := range OverallAgenda(days) {
		collected := slices.Collect(activities)
		if collected == nil {
			collected = []Activity{}
		}
		out = append(out, DayAgenda{DayID: day.ID, Date: day.Date, Activities: collected})
	}
	return out
}
