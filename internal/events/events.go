package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"

	"balai/config"
	"balai/infras/kafka"
	"balai/infras/otel"
	"balai/shared/constant"
	"balai/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TypeReservationConfirmed = "reservation.confirmed"
	TypeReservationCancelled = "reservation.cancelled"
	TypeGuestCheckedIn       = "stay.checked_in"
	TypeGuestCheckedOut      = "stay.checked_out"
	TypePaymentRecorded      = "invoice.payment_recorded"
)

// Envelope is the wire format of every domain event.
type Envelope struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	OccurredAt string `json:"occurred_at"`
	Actor      string `json:"actor,omitempty"`
	Payload    any    `json:"payload"`
}

// Publisher emits domain events for downstream consumers. Publishing is
// best effort: failures are logged, never surfaced to the caller.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any)
}

type publisherImpl struct {
	config *config.Config
	kafka  kafka.Client
	otel   otel.Otel
}

// NewPublisher is the provider for Publisher.
func NewPublisher(cfg *config.Config, kafkaClient kafka.Client, otl otel.Otel) Publisher {
	return &publisherImpl{
		config: cfg,
		kafka:  kafkaClient,
		otel:   otl,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, eventType string, payload any) {
	if !p.config.Kafka.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	envelope := Envelope{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
		Actor:      actor,
		Payload:    payload,
	}

	message := kafka.Message{
		Key:   eventType,
		Value: envelope,
	}

	if err := p.kafka.SendMessages(ctx, p.config.Kafka.EventTopic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", eventType).Msg("failed to publish domain event")
	}
}
