package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// SessionFetcher fetches schedule data from Sessionize (or a test double).
type SessionFetcher interface {
	Fetch(ctx context.Context, sessionizeID string) (SessionFetcherResponse, error)
}

// SessionFetcherResponse is the Sessionize "All" API response shape.
type SessionFetcherResponse struct {
	Sessions   []SessionFetcherSession  `json:"sessions"`
	Speakers   []SessionFetcherSpeaker  `json:"speakers"`
	Rooms      []SessionFetcherRoom     `json:"rooms"`
	Categories []SessionFetcherCategory `json:"categories"`
}

type SessionFetcherRoom struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SessionFetcherSession is a session in the Sessionize All response. Times are
// the event's local wall-clock times.
type SessionFetcherSession struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	StartsAt         LocalTime `json:"startsAt"`
	EndsAt           LocalTime `json:"endsAt"`
	Speakers         []string  `json:"speakers"`
	CategoryItems    []int     `json:"categoryItems"`
	RoomID           int       `json:"roomId"`
	IsServiceSession bool      `json:"isServiceSession"`
}

type SessionFetcherSpeaker struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	FullName       string `json:"fullName"`
	Bio            string `json:"bio"`
	TagLine        string `json:"tagLine"`
	ProfilePicture string `json:"profilePicture"`
}

type SessionFetcherCategoryItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SessionFetcherCategory struct {
	ID    int                          `json:"id"`
	Title string                       `json:"title"`
	Items []SessionFetcherCategoryItem `json:"items"`
}

// LocalTime is a Sessionize timestamp. The API usually omits the zone offset.
type LocalTime struct {
	time.Time
}

func (t *LocalTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("parse sessionize time %q", s)
}
