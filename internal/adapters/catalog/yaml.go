package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"eventplanner/internal/domain"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Events []catalogEntry `yaml:"events"`
}

type catalogEntry struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Type      string `yaml:"type"`
	Date      string `yaml:"date"`
	Location  string `yaml:"location"`
	ImageURL  string `yaml:"image_url"`
	Attendees int    `yaml:"attendees"`
	Price     price  `yaml:"price"`
}

// price is either a number or the word "Free".
type price struct {
	free   bool
	amount decimal.Decimal
}

func (p *price) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a number or \"Free\"", node.Line)
	}
	if strings.EqualFold(strings.TrimSpace(node.Value), "free") {
		p.free = true
		p.amount = decimal.Zero
		return nil
	}
	amount, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid price %q", node.Line, node.Value)
	}
	if amount.IsNegative() {
		return fmt.Errorf("line %d: negative price %q", node.Line, node.Value)
	}
	p.amount = amount
	p.free = amount.IsZero()
	return nil
}

// Source is a read-only CatalogSource parsed once at startup.
type Source struct {
	events []*domain.CatalogEvent
}

// NewSource parses raw YAML catalog data.
func NewSource(raw []byte) (*Source, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(f.Events))
	events := make([]*domain.CatalogEvent, 0, len(f.Events))
	for i, e := range f.Events {
		if e.ID == "" || e.Title == "" {
			return nil, fmt.Errorf("parse catalog: entry %d needs an id and a title", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("parse catalog: duplicate id %q", e.ID)
		}
		seen[e.ID] = true
		events = append(events, &domain.CatalogEvent{
			ID:        e.ID,
			Title:     e.Title,
			Category:  e.Type,
			DateLabel: e.Date,
			Location:  e.Location,
			ImageURL:  e.ImageURL,
			Attendees: e.Attendees,
			IsFree:    e.Price.free,
			Price:     e.Price.amount,
		})
	}
	return &Source{events: events}, nil
}

// Load reads the catalog at path, or the built-in sample catalog when path is empty.
func Load(path string) (*Source, error) {
	if path == "" {
		return NewSource(defaultCatalog)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return NewSource(raw)
}

// List returns copies so callers cannot edit the catalog.
func (s *Source) List(_ context.Context) ([]*domain.CatalogEvent, error) {
	out := make([]*domain.CatalogEvent, len(s.events))
	for i, e := range s.events {
		c := *e
		out[i] = &c
	}
	return out, nil
}
