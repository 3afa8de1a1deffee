package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDays(t *testing.T) {
	tests := []struct {
		name      string
		start     Date
		end       Date
		wantDates []string
		wantCount int
		wantCode  string
	}{
		{
			name:      "four day conference",
			start:     NewDate(2025, time.June, 15),
			end:       NewDate(2025, time.June, 18),
			wantDates: []string{"2025-06-15", "2025-06-16", "2025-06-17", "2025-06-18"},
		},
		{
			name:      "single day",
			start:     NewDate(2025, time.August, 5),
			end:       NewDate(2025, time.August, 5),
			wantDates: []string{"2025-08-05"},
		},
		{
			name:      "crosses month and leap day",
			start:     NewDate(2024, time.February, 28),
			end:       NewDate(2024, time.March, 1),
			wantDates: []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name:      "crosses year",
			start:     NewDate(2025, time.December, 31),
			end:       NewDate(2026, time.January, 1),
			wantDates: []string{"2025-12-31", "2026-01-01"},
		},
		{
			name:     "start after end",
			start:    NewDate(2025, time.June, 18),
			end:      NewDate(2025, time.June, 15),
			wantCode: CodeDateRange,
		},
		{
			name:      "longest allowed span",
			start:     NewDate(2024, time.January, 1),
			end:       NewDate(2024, time.December, 31),
			wantCount: MaxEventDays,
		},
		{
			name:     "span too long",
			start:    NewDate(2024, time.January, 1),
			end:      NewDate(2025, time.January, 1),
			wantCode: CodeDateRange,
		},
		{
			name:     "whole calendar",
			start:    NewDate(1, time.January, 1),
			end:      NewDate(9999, time.December, 31),
			wantCode: CodeDateRange,
		},
		{
			name:     "missing start",
			end:      NewDate(2025, time.June, 15),
			wantCode: CodeRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := GenerateDays(tt.start, tt.end)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Nil(t, days)
				ve, ok := AsValidationError(err)
				require.True(t, ok)
				assert.True(t, ve.Has(tt.wantCode))
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			if tt.wantCount > 0 {
				require.Len(t, days, tt.wantCount)
				assert.Equal(t, tt.end, days[len(days)-1].Date)
				return
			}
			got := make([]string, 0, len(days))
			for _, d := range days {
				got = append(got, d.Date.String())
				assert.NotEmpty(t, d.ID)
				assert.Empty(t, d.Activities)
			}
			assert.Equal(t, tt.wantDates, got)
		})
	}
}

func TestGenerateDays_CoversRangeWithoutGaps(t *testing.T) {
	start := NewDate(2025, time.January, 1)
	for span := 0; span < 60; span += 7 {
		end := start.AddDays(span)
		days, err := GenerateDays(start, end)
		require.NoError(t, err)
		require.Len(t, days, DaysBetween(start, end)+1)

		ids := make(map[string]struct{}, len(days))
		for i, d := range days {
			assert.Equal(t, start.AddDays(i), d.Date)
			ids[d.ID] = struct{}{}
		}
		assert.Len(t, ids, len(days), "day IDs must be unique")
	}
}

func TestDate_TextRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.June, 15), d)
	assert.Equal(t, time.Sunday, d.Weekday())

	zero, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())

	_, err = ParseDate("15/06/2025")
	assert.Error(t, err)
}

func TestTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(570), tod)
	assert.Equal(t, "09:30", tod.String())

	at := NewDate(2025, time.June, 15).At(tod)
	assert.Equal(t, time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC), at)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}
