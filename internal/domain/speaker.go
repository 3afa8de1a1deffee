package domain

import "strings"

// Speaker is a person presenting at the event. Activities reference speakers by ID.
// swagger:model Speaker
type Speaker struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// SpeakerInput is the unvalidated form of a speaker.
type SpeakerInput struct {
	Name     string
	Title    string
	Bio      string
	ImageURL string
}

func newSpeaker(in SpeakerInput) (Speaker, error) {
	var failures []FieldError
	name := strings.TrimSpace(in.Name)
	title := strings.TrimSpace(in.Title)
	if name == "" {
		failures = append(failures, FieldError{Field: "name", Code: CodeRequired, Message: "speaker name is required"})
	}
	if title == "" {
		failures = append(failures, FieldError{Field: "title", Code: CodeRequired, Message: "speaker title is required"})
	}
	if err := validationErrorOrNil(failures); err != nil {
		return Speaker{}, err
	}
	return Speaker{
		ID:       newID(),
		Name:     name,
		Title:    title,
		Bio:      strings.TrimSpace(in.Bio),
		ImageURL: strings.TrimSpace(in.ImageURL),
	}, nil
}
