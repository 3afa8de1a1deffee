package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventplanner/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeChannel struct {
	exchange, key string
	msg           amqp.Publishing
	err           error
	closed        bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange, f.key, f.msg = exchange, key, msg
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:               "ev-1",
		DraftID:          "draft-1",
		OwnerID:          "user-1",
		Title:            "Tech Summit",
		StartDate:        domain.NewDate(2025, time.June, 15),
		EndDate:          domain.NewDate(2025, time.June, 17),
		TicketCategories: []string{"VIP", "General"},
		PotentialRevenue: decimal.RequireFromString("7998.70"),
		CreatedAt:        time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestAMQPPublisher_PublishEventPublished(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "events", logger: testLogger}

	require.NoError(t, p.PublishEventPublished(context.Background(), sampleEvent()))
	assert.Equal(t, "events", ch.exchange)
	assert.Equal(t, RoutingKeyEventPublished, ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.NotEmpty(t, ch.msg.MessageId)

	var body map[string]any
	require.NoError(t, json.Unmarshal(ch.msg.Body, &body))
	assert.Equal(t, "ev-1", body["event_id"])
	assert.Equal(t, "2025-06-15", body["start_date"])
	assert.Equal(t, "7998.7", body["potential_revenue"])
	assert.Equal(t, []any{"VIP", "General"}, body["ticket_categories"])

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestAMQPPublisher_Error(t *testing.T) {
	p := &AMQPPublisher{ch: &fakeChannel{err: errors.New("channel closed")}, exchange: "events", logger: testLogger}
	err := p.PublishEventPublished(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher(testLogger).PublishEventPublished(context.Background(), sampleEvent()))
}
