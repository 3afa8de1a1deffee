package calendar

import (
	"fmt"
	"strings"

	"eventplanner/internal/clock"
	"eventplanner/internal/domain"

	ical "github.com/arran4/golang-ical"
)

const productID = "-//eventplanner//agenda export//EN"

type icsEncoder struct {
	uidDomain string
	clock     clock.Clock
}

// NewICSEncoder returns a CalendarEncoder producing iCalendar (RFC 5545) documents.
// uidDomain is appended to every UID; clk stamps DTSTAMP.
func NewICSEncoder(uidDomain string, clk clock.Clock) domain.CalendarEncoder {
	return &icsEncoder{uidDomain: uidDomain, clock: clk}
}

// Encode writes one VEVENT per activity in agenda order. An event without
// activities becomes a single all-day VEVENT spanning its dates.
func (e *icsEncoder) Encode(event *domain.Event) ([]byte, error) {
	if event == nil {
		return nil, fmt.Errorf("encode calendar: event is nil")
	}
	if event.StartDate.IsZero() || event.EndDate.IsZero() {
		return nil, fmt.Errorf("encode calendar: event %s has no dates", event.ID)
	}
	stamp := e.clock.Now().UTC()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(event.Title)

	count := 0
	for day, activities := range domain.OverallAgenda(event.Days) {
		for a := range activities {
			ve := cal.AddEvent(fmt.Sprintf("%s-%s@%s", event.ID, a.ID, e.uidDomain))
			ve.SetDtStampTime(stamp)
			ve.SetStartAt(day.Date.At(a.StartTime))
			ve.SetEndAt(day.Date.At(a.EndTime))
			ve.SetSummary(a.Title)
			if desc := activityDescription(event, a); desc != "" {
				ve.SetDescription(desc)
			}
			if loc := firstNonEmpty(a.Location, event.Location); loc != "" {
				ve.SetLocation(loc)
			}
			count++
		}
	}
	if count == 0 {
		ve := cal.AddEvent(fmt.Sprintf("%s@%s", event.ID, e.uidDomain))
		ve.SetDtStampTime(stamp)
		ve.SetAllDayStartAt(event.StartDate.Time())
		// DTEND is exclusive for all-day events.
		ve.SetAllDayEndAt(event.EndDate.AddDays(1).Time())
		ve.SetSummary(event.Title)
		if event.Description != "" {
			ve.SetDescription(event.Description)
		}
		if event.Location != "" {
			ve.SetLocation(event.Location)
		}
	}
	return []byte(cal.Serialize()), nil
}

func activityDescription(event *domain.Event, a domain.Activity) string {
	var lines []string
	if a.Description != "" {
		lines = append(lines, a.Description)
	}
	var names []string
	for _, id := range a.SpeakerIDs {
		if sp, ok := event.Speaker(id); ok {
			names = append(names, sp.Name)
		}
	}
	if len(names) > 0 {
		lines = append(lines, "Speakers: "+strings.Join(names, " / "))
	}
	return strings.Join(lines, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
