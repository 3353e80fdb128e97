package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/autobid/transport-service/internal/config"
	"github.com/autobid/transport-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// TrackingEvent is a tracking fact supplied by a carrier integration.
// The service stores these facts, it does not poll carriers itself.
type TrackingEvent struct {
	BookingID         string                `json:"booking_id" validate:"required"`
	TrackingNumber    *string               `json:"tracking_number,omitempty"`
	TrackingURL       *string               `json:"tracking_url,omitempty"`
	EstimatedDelivery *time.Time            `json:"estimated_delivery,omitempty"`
	CurrentLocation   *string               `json:"current_location,omitempty"`
	StatusUpdate      *TrackingStatusUpdate `json:"status_update,omitempty"`
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	bookings BookingService
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, bookings BookingService) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		bookings: bookings,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleTrackingEvent(ctx, m); err != nil {
			trackingEventsFailed.Inc()
			h.logger.Error("failed to handle tracking event", slog.Any("error", err))

			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			trackingEventsDLQ.Inc()
		} else {
			trackingEventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleTrackingEvent(ctx context.Context, m kafka.Message) error {
	var event TrackingEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal tracking event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid tracking event: %w", err)
	}

	_, err := h.bookings.UpdateTracking(ctx, event.BookingID, TrackingPatchToInput(TrackingPatchRequest{
		TrackingNumber:    event.TrackingNumber,
		TrackingURL:       event.TrackingURL,
		EstimatedDelivery: event.EstimatedDelivery,
		CurrentLocation:   event.CurrentLocation,
		StatusUpdate:      event.StatusUpdate,
	}))
	if errors.Is(err, entities.ErrBookingNotFound) {
		return fmt.Errorf("tracking event for unknown booking %s: %w", event.BookingID, err)
	}
	return err
}

func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
