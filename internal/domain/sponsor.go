package domain

import (
	"fmt"
	"strings"
)

// SponsorLevel is the sponsorship tier.
type SponsorLevel string

const (
	SponsorPlatinum SponsorLevel = "platinum"
	SponsorGold     SponsorLevel = "gold"
	SponsorSilver   SponsorLevel = "silver"
	SponsorBronze   SponsorLevel = "bronze"
)

func (l SponsorLevel) Valid() bool {
	switch l {
	case SponsorPlatinum, SponsorGold, SponsorSilver, SponsorBronze:
		return true
	}
	return false
}

// Sponsor is an organization backing the event.
// swagger:model Sponsor
type Sponsor struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Level       SponsorLevel `json:"level"`
	Description string       `json:"description,omitempty"`
	Website     string       `json:"website,omitempty"`
	LogoURL     string       `json:"logo_url,omitempty"`
}

type SponsorInput struct {
	Name        string
	Level       SponsorLevel
	Description string
	Website     string
	LogoURL     string
}

func newSponsor(in SponsorInput) (Sponsor, error) {
	var failures []FieldError
	name := strings.TrimSpace(in.Name)
	if name == "" {
		failures = append(failures, FieldError{Field: "name", Code: CodeRequired, Message: "sponsor name is required"})
	}
	level := in.Level
	if level == "" {
		level = SponsorBronze
	}
	if !level.Valid() {
		failures = append(failures, FieldError{Field: "level", Code: CodeInvalidLevel, Message: fmt.Sprintf("unknown sponsorship level %q", in.Level)})
	}
	if err := validationErrorOrNil(failures); err != nil {
		return Sponsor{}, err
	}
	return Sponsor{
		ID:          newID(),
		Name:        name,
		Level:       level,
		Description: strings.TrimSpace(in.Description),
		Website:     strings.TrimSpace(in.Website),
		LogoURL:     strings.TrimSpace(in.LogoURL),
	}, nil
}

// ExhibitionBooth is a stand in the exhibition area.
// swagger:model ExhibitionBooth
type ExhibitionBooth struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Exhibitor     string `json:"exhibitor,omitempty"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
}

type BoothInput struct {
	Name          string
	Exhibitor     string
	Description   string
	Location      string
	CoverImageURL string
}

func newBooth(in BoothInput) (ExhibitionBooth, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ExhibitionBooth{}, NewValidationError(FieldError{Field: "name", Code: CodeRequired, Message: "booth name is required"})
	}
	return ExhibitionBooth{
		ID:            newID(),
		Name:          name,
		Exhibitor:     strings.TrimSpace(in.Exhibitor),
		Description:   strings.TrimSpace(in.Description),
		Location:      strings.TrimSpace(in.Location),
		CoverImageURL: strings.TrimSpace(in.CoverImageURL),
	}, nil
}
