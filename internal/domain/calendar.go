package domain

import (
	"fmt"

	"github.com/teambition/rrule-go"
)

// EventDay is one calendar date of an event and the activities scheduled on it.
type EventDay struct {
	ID         string     `json:"id"`
	Date       Date       `json:"date"`
	Activities []Activity `json:"activities"`
}

// MaxEventDays caps the number of days a single event may span.
const MaxEventDays = 366

// GenerateDays returns one EventDay per calendar date in [start, end], ascending,
// each with a fresh ID and no activities. A start after end is a date-range
// ValidationError and no days are produced, as is a span longer than MaxEventDays.
func GenerateDays(start, end Date) ([]EventDay, error) {
	var failures []FieldError
	if start.IsZero() {
		failures = append(failures, FieldError{Field: "startDate", Code: CodeRequired, Message: "start date is required"})
	}
	if end.IsZero() {
		failures = append(failures, FieldError{Field: "endDate", Code: CodeRequired, Message: "end date is required"})
	}
	if err := validationErrorOrNil(failures); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, NewValidationError(FieldError{Field: "endDate", Code: CodeDateRange, Message: "end date must not be before start date"})
	}
	if end.Time().After(start.Time().AddDate(0, 0, MaxEventDays-1)) {
		return nil, NewValidationError(FieldError{Field: "endDate", Code: CodeDateRange, Message: fmt.Sprintf("an event may span at most %d days", MaxEventDays)})
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start.Time(),
		Until:   end.Time(),
	})
	if err != nil {
		return nil, fmt.Errorf("build day rule: %w", err)
	}

	occurrences := rule.All()
	days := make([]EventDay, 0, len(occurrences))
	for _, t := range occurrences {
		days = append(days, EventDay{ID: newID(), Date: DateOf(t), Activities: []Activity{}})
	}
	return days, nil
}
