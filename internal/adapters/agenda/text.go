package agenda

import (
	"fmt"
	"strings"

	"eventplanner/internal/domain"

	"github.com/mattn/go-runewidth"
)

// maxTitleWidth caps the title column in terminal cells.
const maxTitleWidth = 40

type textRenderer struct{}

// NewTextRenderer returns an AgendaRenderer that lays the agenda out in
// fixed-width columns. Widths are measured in display cells so CJK and emoji
// titles stay aligned.
func NewTextRenderer() domain.AgendaRenderer {
	return textRenderer{}
}

func (textRenderer) Render(event *domain.Event) string {
	var sb strings.Builder
	sb.WriteString(event.Title)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Dates: %s to %s\n", event.StartDate, event.EndDate)
	if event.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", event.Location)
	}

	width := titleWidth(event.Days)
	for day, activities := range domain.OverallAgenda(event.Days) {
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, "%s %s\n", day.Date.Weekday().String()[:3], day.Date)
		empty := true
		for a := range activities {
			empty = false
			sb.WriteString(row(event, a, width))
			sb.WriteByte('\n')
		}
		if empty {
			sb.WriteString("  (no activities)\n")
		}
	}
	return sb.String()
}

func titleWidth(days []domain.EventDay) int {
	width := 0
	for _, d := range days {
		for _, a := range d.Activities {
			width = max(width, runewidth.StringWidth(a.Title))
		}
	}
	return min(width, maxTitleWidth)
}

func row(event *domain.Event, a domain.Activity, width int) string {
	title := runewidth.FillRight(runewidth.Truncate(a.Title, width, "…"), width)
	cols := []string{fmt.Sprintf("  %s-%s", a.StartTime, a.EndTime), title}
	if a.Location != "" {
		cols = append(cols, a.Location)
	}
	var names []string
	for _, id := range a.SpeakerIDs {
		if sp, ok := event.Speaker(id); ok {
			names = append(names, sp.Name)
		}
	}
	if len(names) > 0 {
		cols = append(cols, "("+strings.Join(names, ", ")+")")
	}
	return strings.TrimRight(strings.Join(cols, "  "), " ")
}
