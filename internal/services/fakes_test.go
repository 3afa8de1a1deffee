package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"eventplanner/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID   map[string]*domain.Event
	nextID int
	err    error // if set, Create returns this error
	getErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:   make(map[string]*domain.Event),
		nextID: 1,
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.byID {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// fakeDraftRepo keeps drafts JSON-encoded so callers never share memory with the store.
type fakeDraftRepo struct {
	mu      sync.Mutex
	byID    map[string][]byte
	saves   int
	saveErr error
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{byID: make(map[string][]byte)}
}

func (f *fakeDraftRepo) Save(ctx context.Context, d *domain.EventDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	f.byID[d.ID] = raw
	f.saves++
	return nil
}

func (f *fakeDraftRepo) Get(ctx context.Context, id string) (*domain.EventDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	var d domain.EventDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (f *fakeDraftRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

type fakeSessionizeFetcher struct {
	data    domain.SessionFetcherResponse
	err     error
	calls   int
	onFetch func()
}

func (f *fakeSessionizeFetcher) Fetch(ctx context.Context, sessionizeID string) (domain.SessionFetcherResponse, error) {
	f.calls++
	if f.onFetch != nil {
		f.onFetch()
	}
	if f.err != nil {
		return domain.SessionFetcherResponse{}, f.err
	}
	return f.data, nil
}

// fakeEmailService records published-event emails.
type fakeEmailService struct {
	sent []*domain.EventPublishedEmailData
	err  error
}

func (f *fakeEmailService) SendEventPublished(ctx context.Context, data *domain.EventPublishedEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

type fakePublisher struct {
	published []string
	err       error
}

func (f *fakePublisher) PublishEventPublished(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, e.ID)
	return nil
}

type fakeAgendaRenderer struct{}

func (fakeAgendaRenderer) Render(e *domain.Event) string {
	return "agenda for " + e.Title
}

type fakeCalendarEncoder struct {
	err error
}

func (f fakeCalendarEncoder) Encode(e *domain.Event) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("BEGIN:VCALENDAR\r\nX-EVENT:" + e.ID + "\r\nEND:VCALENDAR\r\n"), nil
}

// fakeSessionStore is a map-backed SessionStore.
type fakeSessionStore struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{values: make(map[string]string)}
}

func (f *fakeSessionStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (f *fakeSessionStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeSessionStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

type fakeCatalogSource struct {
	events []*domain.CatalogEvent
	err    error
}

func (f *fakeCatalogSource) List(ctx context.Context) ([]*domain.CatalogEvent, error) {
	return f.events, f.err
}
