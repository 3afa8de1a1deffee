package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"eventplanner/internal/domain"
)

// DraftKeyPrefix namespaces drafts inside the session store.
const DraftKeyPrefix = "draft:"

type draftStore struct {
	store domain.SessionStore
}

// NewDraftStore returns a DraftRepository that encodes drafts as JSON in store.
func NewDraftStore(store domain.SessionStore) domain.DraftRepository {
	return &draftStore{store: store}
}

func draftKey(id string) string {
	return DraftKeyPrefix + id
}

func (s *draftStore) Save(ctx context.Context, draft *domain.EventDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return s.store.Set(ctx, draftKey(draft.ID), string(raw))
}

func (s *draftStore) Get(ctx context.Context, id string) (*domain.EventDraft, error) {
	raw, err := s.store.Get(ctx, draftKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var draft domain.EventDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", id, err)
	}
	return &draft, nil
}

func (s *draftStore) Delete(ctx context.Context, id string) error {
	return s.store.Remove(ctx, draftKey(id))
}
