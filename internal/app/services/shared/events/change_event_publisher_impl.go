package events

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

// BookingStatusChangedEvent is the payload pushed to the realtime
// collaborator whenever a booking transitions status.
type BookingStatusChangedEvent struct {
	Event          string    `json:"event"`
	BookingID      string    `json:"booking_id"`
	StudioID       string    `json:"studio_id"`
	ArtistID       string    `json:"artist_id"`
	PreviousStatus string    `json:"previous_status"`
	Status         string    `json:"status"`
	Actor          string    `json:"actor"`
	StartDatetime  string    `json:"start_datetime"`
	EndDatetime    string    `json:"end_datetime"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// AvailabilityChangedEvent signals that a studio's windows changed for a
// date; consumers re-fetch, the payload carries no window detail.
type AvailabilityChangedEvent struct {
	Event      string    `json:"event"`
	StudioID   string    `json:"studio_id"`
	Date       string    `json:"date"`
	OccurredAt time.Time `json:"occurred_at"`
}

type changeEventPublisher struct {
	Channel *amqp.Channel
	Queue   string
	Log     *zap.Logger
}

func NewChangeEventPublisher(conn *amqp.Connection, queue string, logger *zap.Logger) (contracts.ChangeEventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &changeEventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *changeEventPublisher) PublishBookingStatusChanged(ctx context.Context, booking *models.Booking, previousStatus, actor string) error {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("changeEventPublisher.PublishBookingStatusChanged called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.String(constvars.LoggingBookingStatusKey, string(booking.Status)),
	)

	event := BookingStatusChangedEvent{
		Event:          constvars.EventBookingStatusChanged,
		BookingID:      booking.ID,
		StudioID:       booking.StudioID,
		ArtistID:       booking.ArtistID,
		PreviousStatus: previousStatus,
		Status:         string(booking.Status),
		Actor:          actor,
		StartDatetime:  utils.FormatLocalDatetime(booking.StartDatetime),
		EndDatetime:    utils.FormatLocalDatetime(booking.EndDatetime),
		OccurredAt:     time.Now(),
	}

	return p.publish(ctx, constvars.EventBookingStatusChanged, event)
}

func (p *changeEventPublisher) PublishAvailabilityChanged(ctx context.Context, studioID, date string) error {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("changeEventPublisher.PublishAvailabilityChanged called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, studioID),
		zap.String(constvars.LoggingDateKey, date),
	)

	event := AvailabilityChangedEvent{
		Event:      constvars.EventAvailabilityChanged,
		StudioID:   studioID,
		Date:       date,
		OccurredAt: time.Now(),
	}

	return p.publish(ctx, constvars.EventAvailabilityChanged, event)
}

func (p *changeEventPublisher) publish(ctx context.Context, eventName string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Headers: amqp.Table{
			"event": eventName,
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, msg)
	if err != nil {
		p.Log.Error("changeEventPublisher.publish error publishing message",
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.String(constvars.LoggingEventKey, eventName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("changeEventPublisher.publish succeeded",
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingEventKey, eventName),
	)
	return nil
}
