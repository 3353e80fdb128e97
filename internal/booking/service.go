package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/autobid/transport-service/internal/entities"
	"github.com/autobid/transport-service/pkg/trm"
	"github.com/autobid/transport-service/pkg/utils"

	"github.com/google/uuid"
)

type Repo interface {
	GetBookingByID(ctx context.Context, bookingID string) (entities.TransportBooking, error)

	// GetBookingForUpdate locks the booking row for the duration of the
	// surrounding transaction, serializing writers per booking.
	GetBookingForUpdate(ctx context.Context, bookingID string) (entities.TransportBooking, error)

	SaveBooking(ctx context.Context, b entities.TransportBooking) error
	UpdateBooking(ctx context.Context, b entities.TransportBooking) error
	AppendHistory(ctx context.Context, bookingID string, entries []entities.TrackingEntry) error
	AppendDocument(ctx context.Context, bookingID string, doc entities.Document) error
	AppendNote(ctx context.Context, bookingID string, note entities.Note) error

	LatestBookings(ctx context.Context, count int) ([]entities.TransportBooking, error)
}

type ProviderGetter interface {
	GetProviderByID(ctx context.Context, providerID string) (entities.TransportProvider, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type service struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      Repo
	providers ProviderGetter
	cache     Cache
}

func NewService(logger *slog.Logger, txManager trm.Manager, repo Repo, providers ProviderGetter, cache Cache) *service {
	return &service{
		logger:    logger.With(slog.String("service", "booking")),
		txManager: txManager,
		repo:      repo,
		providers: providers,
		cache:     cache,
	}
}

var retryCfg = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

func (s *service) CreateBooking(ctx context.Context, in CreateInput) (entities.TransportBooking, error) {
	if _, err := s.providers.GetProviderByID(ctx, in.ProviderID); err != nil {
		return entities.TransportBooking{}, fmt.Errorf("failed to resolve provider: %w", err)
	}

	b := New(uuid.NewString(), in, time.Now())

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveBooking(ctx, b); err != nil {
				return fmt.Errorf("failed to save booking: %w", err)
			}
			s.logger.Debug("booking created",
				"booking_id", b.ID,
				"route", b.Pickup.Country+"->"+b.Delivery.Country,
				"customs_required", b.Customs != nil,
			)
			return nil
		})
	}

	if err := utils.Retry(retryCfg, fn); err != nil {
		return entities.TransportBooking{}, err
	}
	return b, nil
}

func (s *service) GetBookingByID(ctx context.Context, bookingID string) (entities.TransportBooking, error) {
	if data, ok := s.cache.Get(bookingID); ok {
		var b entities.TransportBooking
		if err := b.Unmarshal(data); err == nil {
			return b, nil
		}
		// stale or corrupt cache entry, fall through to the repo
		s.cache.Delete(bookingID)
	}

	var b entities.TransportBooking
	fn := func() error {
		var err error
		b, err = s.repo.GetBookingByID(ctx, bookingID)
		return err
	}
	if err := utils.Retry(retryCfg, fn, entities.ErrBookingNotFound); err != nil {
		return entities.TransportBooking{}, err
	}

	s.cacheSet(b)
	return b, nil
}

func (s *service) UpdateStatus(ctx context.Context, bookingID string, ch StatusChange) (entities.TransportBooking, error) {
	return s.mutate(ctx, bookingID, func(b entities.TransportBooking, now time.Time) (entities.TransportBooking, error) {
		return ApplyStatus(b, ch, now)
	})
}

func (s *service) CompleteCustoms(ctx context.Context, bookingID string, cc CustomsCompletion) (entities.TransportBooking, error) {
	return s.mutate(ctx, bookingID, func(b entities.TransportBooking, now time.Time) (entities.TransportBooking, error) {
		return CompleteCustoms(b, cc, now)
	})
}

func (s *service) UpdateTracking(ctx context.Context, bookingID string, patch TrackingPatch) (entities.TransportBooking, error) {
	return s.mutate(ctx, bookingID, func(b entities.TransportBooking, now time.Time) (entities.TransportBooking, error) {
		return ApplyTracking(b, patch, now), nil
	})
}

func (s *service) AddDocument(ctx context.Context, bookingID string, doc entities.Document) (entities.TransportBooking, error) {
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}
	return s.mutateWith(ctx, bookingID, func(ctx context.Context, b entities.TransportBooking) (entities.TransportBooking, error) {
		if err := s.repo.AppendDocument(ctx, bookingID, doc); err != nil {
			return b, fmt.Errorf("failed to append document: %w", err)
		}
		b.Documents = append(b.Documents, doc)
		return b, nil
	})
}

func (s *service) AddNote(ctx context.Context, bookingID string, note entities.Note) (entities.TransportBooking, error) {
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	return s.mutateWith(ctx, bookingID, func(ctx context.Context, b entities.TransportBooking) (entities.TransportBooking, error) {
		if err := s.repo.AppendNote(ctx, bookingID, note); err != nil {
			return b, fmt.Errorf("failed to append note: %w", err)
		}
		b.Notes = append(b.Notes, note)
		return b, nil
	})
}

// WarmUpCache preloads the most recent bookings so reads after a restart
// do not stampede the database.
func (s *service) WarmUpCache(ctx context.Context, count int) error {
	bookings, err := s.repo.LatestBookings(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest bookings: %w", err)
	}
	for _, b := range bookings {
		s.cacheSet(b)
	}
	s.logger.Info("cache warmed up", "bookings", len(bookings))
	return nil
}

// mutate applies a pure lifecycle function to the locked booking and
// persists the outcome, including any freshly appended ledger entries.
func (s *service) mutate(
	ctx context.Context,
	bookingID string,
	apply func(b entities.TransportBooking, now time.Time) (entities.TransportBooking, error),
) (entities.TransportBooking, error) {
	return s.mutateWith(ctx, bookingID, func(ctx context.Context, b entities.TransportBooking) (entities.TransportBooking, error) {
		prev := len(b.Tracking.History)

		updated, err := apply(b, time.Now())
		if err != nil {
			return b, err
		}

		if err := s.repo.UpdateBooking(ctx, updated); err != nil {
			return b, fmt.Errorf("failed to update booking: %w", err)
		}
		if appended := updated.Tracking.History[prev:]; len(appended) > 0 {
			if err := s.repo.AppendHistory(ctx, bookingID, appended); err != nil {
				return b, fmt.Errorf("failed to append history: %w", err)
			}
		}
		return updated, nil
	})
}

func (s *service) mutateWith(
	ctx context.Context,
	bookingID string,
	fn func(ctx context.Context, b entities.TransportBooking) (entities.TransportBooking, error),
) (entities.TransportBooking, error) {
	var updated entities.TransportBooking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		b, err := s.repo.GetBookingForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		updated, err = fn(ctx, b)
		return err
	})
	if err != nil {
		return entities.TransportBooking{}, err
	}

	s.cache.Delete(bookingID)
	return updated, nil
}

func (s *service) cacheSet(b entities.TransportBooking) {
	data, err := b.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal booking", slog.String("booking_id", b.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(b.ID, data)
}
