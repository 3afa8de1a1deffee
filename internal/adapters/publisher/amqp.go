package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventplanner/internal/domain"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

// RoutingKeyEventPublished is the routing key of finalized-event messages.
const RoutingKeyEventPublished = "event.published"

// EventPublishedMessage is the JSON body of an event.published message.
type EventPublishedMessage struct {
	EventID          string          `json:"event_id"`
	DraftID          string          `json:"draft_id"`
	OwnerID          string          `json:"owner_id"`
	Title            string          `json:"title"`
	Category         string          `json:"category,omitempty"`
	Location         string          `json:"location,omitempty"`
	StartDate        domain.Date     `json:"start_date"`
	EndDate          domain.Date     `json:"end_date"`
	IsFree           bool            `json:"is_free"`
	TicketCategories []string        `json:"ticket_categories"`
	PotentialRevenue decimal.Decimal `json:"potential_revenue"`
	PublishedAt      time.Time       `json:"published_at"`
}

func newEventPublishedMessage(e *domain.Event) EventPublishedMessage {
	cats := e.TicketCategories
	if cats == nil {
		cats = []string{}
	}
	return EventPublishedMessage{
		EventID:          e.ID,
		DraftID:          e.DraftID,
		OwnerID:          e.OwnerID,
		Title:            e.Title,
		Category:         e.Category,
		Location:         e.Location,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		IsFree:           e.IsFree,
		TicketCategories: cats,
		PotentialRevenue: e.PotentialRevenue,
		PublishedAt:      e.CreatedAt,
	}
}

// amqpChannel is the subset of *amqp.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes domain events to a RabbitMQ topic exchange.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
	logger   *slog.Logger

	// publishing on one channel is not safe from multiple goroutines
	mu sync.Mutex
}

// NewAMQPPublisher dials url and declares a durable topic exchange.
func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	logger.Info("rabbitmq publisher ready", "exchange", exchange)
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func (p *AMQPPublisher) PublishEventPublished(ctx context.Context, event *domain.Event) error {
	body, err := json.Marshal(newEventPublishedMessage(event))
	if err != nil {
		return fmt.Errorf("encode event.published: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         RoutingKeyEventPublished,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, p.exchange, RoutingKeyEventPublished, false, false, msg); err != nil {
		return fmt.Errorf("publish event.published: %w", err)
	}
	p.logger.Debug("message published", "routing_key", RoutingKeyEventPublished, "event_id", event.ID)
	return nil
}

// Close shuts the channel and the connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var firstErr error
	if p.ch != nil {
		firstErr = p.ch.Close()
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns an EventPublisher that only logs.
func NewNoopPublisher(logger *slog.Logger) domain.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (n *noopPublisher) PublishEventPublished(ctx context.Context, event *domain.Event) error {
	n.logger.InfoContext(ctx, "event.published would be sent (noop)", "event_id", event.ID)
	return nil
}
