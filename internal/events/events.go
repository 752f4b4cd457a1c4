// Package events publishes booking lifecycle events to kafka, keyed by booking
// so consumers see one booking's events in order.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"rentpay/config"
	"rentpay/infras/kafka"
	"rentpay/shared/timezone"
)

const (
	BookingCreated    = "booking.created"
	BookingConfirmed  = "booking.confirmed"
	BookingCancelled  = "booking.cancelled"
	BookingCheckedIn  = "booking.checked_in"
	BookingCompleted  = "booking.completed"
	BookingRefunded   = "booking.refunded"
	EscrowReleased    = "escrow.released"
	TransferSubmitted = "transfer.submitted"
	TransferFailed    = "transfer.failed"
	TransferTimeout   = "transfer.timeout"
)

type Event struct {
	Type       string         `json:"type"`
	BookingID  string         `json:"booking_id"`
	Reference  string         `json:"transfer_reference,omitempty"`
	Status     string         `json:"status,omitempty"`
	Amount     int64          `json:"amount,omitempty"`
	Actor      string         `json:"actor,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Publisher never fails the caller: state is already committed when events go out.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type publisherImpl struct {
	cfg   *config.Config
	kafka kafka.Client
}

func New(cfg *config.Config, kafka kafka.Client) Publisher {
	return &publisherImpl{
		cfg:   cfg,
		kafka: kafka,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	topic := p.topic(event.Type)

	err := p.kafka.SendMessages(ctx, topic, kafka.Message{Key: event.BookingID, Value: event})
	if err != nil {
		log.Error().Err(err).
			Str("booking_id", event.BookingID).
			Str("event", event.Type).
			Str("topic", topic).
			Msg("failed to publish event")
	}
}

func (p *publisherImpl) topic(eventType string) string {
	switch {
	case strings.HasPrefix(eventType, "escrow."):
		return p.cfg.Kafka.Topic.Escrow
	case strings.HasPrefix(eventType, "transfer."):
		return p.cfg.Kafka.Topic.Payment
	default:
		return p.cfg.Kafka.Topic.Booking
	}
}
