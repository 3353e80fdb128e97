package booking_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/autobid/transport-service/internal/booking"
	mocks "github.com/autobid/transport-service/internal/booking/mocks"
	"github.com/autobid/transport-service/internal/entities"
	txMocks "github.com/autobid/transport-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newServiceMocks(t *testing.T) (*mocks.MockRepo, *mocks.MockProviderGetter, *mocks.MockCache, *txMocks.MockManager) {
	repo := mocks.NewMockRepo(t)
	providers := mocks.NewMockProviderGetter(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	return repo, providers, cache, tx
}

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})
}

func TestBookingService_CreateBooking(t *testing.T) {
	type MockBehavior func(repo *mocks.MockRepo, providers *mocks.MockProviderGetter)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(repo *mocks.MockRepo, providers *mocks.MockProviderGetter) {
				providers.EXPECT().
					GetProviderByID(mock.Anything, "prov-1").
					Return(entities.TransportProvider{ID: "prov-1"}, nil).Once()
				repo.EXPECT().SaveBooking(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "unknown provider",
			mockBehavior: func(_ *mocks.MockRepo, providers *mocks.MockProviderGetter) {
				providers.EXPECT().
					GetProviderByID(mock.Anything, "prov-1").
					Return(entities.TransportProvider{}, entities.ErrProviderNotFound).Once()
			},
			wantErr: entities.ErrProviderNotFound,
		},
		{
			name: "retry works (first attempt fails, second succeeds)",
			mockBehavior: func(repo *mocks.MockRepo, providers *mocks.MockProviderGetter) {
				providers.EXPECT().
					GetProviderByID(mock.Anything, "prov-1").
					Return(entities.TransportProvider{ID: "prov-1"}, nil).Once()
				repo.EXPECT().SaveBooking(mock.Anything, mock.Anything).
					Once().Return(dbError)
				repo.EXPECT().SaveBooking(mock.Anything, mock.Anything).
					Once().Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, providers, cache, tx := newServiceMocks(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(repo, providers)

			svc := booking.NewService(logger, tx, repo, providers, cache)

			b, err := svc.CreateBooking(context.Background(), crossBorderInput())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, b.ID)
			assert.Equal(t, entities.StatusQuoteRequested, b.Status)
		})
	}
}

func TestBookingService_GetBookingByID(t *testing.T) {
	type MockBehavior func(repo *mocks.MockRepo, cache *mocks.MockCache)

	validBooking := entities.TransportBooking{ID: "123", Status: entities.StatusBooked}
	validData, err := validBooking.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		bookingID    string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.TransportBooking
	}{
		{
			name:      "success from cache",
			bookingID: "123",
			mockBehavior: func(_ *mocks.MockRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(validData, true).Once()
			},
			want: validBooking,
		},
		{
			name:      "corrupt cache entry falls through to the repo",
			bookingID: "123",
			mockBehavior: func(repo *mocks.MockRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return([]byte("broken"), true).Once()
				cache.EXPECT().Delete("123").Return().Once()
				repo.EXPECT().
					GetBookingByID(mock.Anything, "123").
					Return(validBooking, nil).Once()
				cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validBooking,
		},
		{
			name:      "success from repo and set to cache",
			bookingID: "123",
			mockBehavior: func(repo *mocks.MockRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(nil, false).Once()
				repo.EXPECT().
					GetBookingByID(mock.Anything, "123").
					Return(validBooking, nil).Once()
				cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validBooking,
		},
		{
			name:      "not found is not retried",
			bookingID: "missing",
			mockBehavior: func(repo *mocks.MockRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("missing").
					Return(nil, false).Once()
				repo.EXPECT().
					GetBookingByID(mock.Anything, "missing").
					Return(entities.TransportBooking{}, entities.ErrBookingNotFound).Once()
			},
			wantErr: entities.ErrBookingNotFound,
		},
		{
			name:      "second attempt from repo",
			bookingID: "123",
			mockBehavior: func(repo *mocks.MockRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(nil, false).Once()
				repo.EXPECT().
					GetBookingByID(mock.Anything, "123").
					Return(entities.TransportBooking{}, errors.New("some error")).Once()
				repo.EXPECT().
					GetBookingByID(mock.Anything, "123").
					Return(validBooking, nil).Once()
				cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validBooking,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, providers, cache, tx := newServiceMocks(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, cache)

			svc := booking.NewService(logger, tx, repo, providers, cache)

			got, err := svc.GetBookingByID(context.Background(), tc.bookingID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("persists the booking and the appended ledger entry", func(t *testing.T) {
		repo, providers, cache, tx := newServiceMocks(t)
		passthroughTx(tx)

		stored := booking.New("bk-1", crossBorderInput(), time.Now())
		stored.Status = entities.StatusQuoted

		repo.EXPECT().
			GetBookingForUpdate(mock.Anything, "bk-1").
			Return(stored, nil).Once()
		repo.EXPECT().
			UpdateBooking(mock.Anything, mock.MatchedBy(func(b entities.TransportBooking) bool {
				return b.Status == entities.StatusBooked
			})).
			Return(nil).Once()
		repo.EXPECT().
			AppendHistory(mock.Anything, "bk-1", mock.MatchedBy(func(entries []entities.TrackingEntry) bool {
				return len(entries) == 1 && entries[0].Status == string(entities.StatusBooked)
			})).
			Return(nil).Once()
		cache.EXPECT().Delete("bk-1").Return().Once()

		svc := booking.NewService(logger, tx, repo, providers, cache)

		updated, err := svc.UpdateStatus(context.Background(), "bk-1", booking.StatusChange{
			Status: entities.StatusBooked,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusBooked, updated.Status)
	})

	t.Run("forbidden transition aborts before any write", func(t *testing.T) {
		repo, providers, cache, tx := newServiceMocks(t)
		passthroughTx(tx)

		stored := booking.New("bk-1", crossBorderInput(), time.Now())

		repo.EXPECT().
			GetBookingForUpdate(mock.Anything, "bk-1").
			Return(stored, nil).Once()

		svc := booking.NewService(logger, tx, repo, providers, cache)

		_, err := svc.UpdateStatus(context.Background(), "bk-1", booking.StatusChange{
			Status: entities.StatusDelivered,
		})
		assert.ErrorIs(t, err, entities.ErrBadTransition)
	})

	t.Run("missing booking propagates not found", func(t *testing.T) {
		repo, providers, cache, tx := newServiceMocks(t)
		passthroughTx(tx)

		repo.EXPECT().
			GetBookingForUpdate(mock.Anything, "missing").
			Return(entities.TransportBooking{}, entities.ErrBookingNotFound).Once()

		svc := booking.NewService(logger, tx, repo, providers, cache)

		_, err := svc.UpdateStatus(context.Background(), "missing", booking.StatusChange{
			Status: entities.StatusBooked,
		})
		assert.ErrorIs(t, err, entities.ErrBookingNotFound)
	})
}

func TestBookingService_CompleteCustoms(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("customs completion at the border appends the auto-advance entry", func(t *testing.T) {
		repo, providers, cache, tx := newServiceMocks(t)
		passthroughTx(tx)

		stored := booking.New("bk-1", crossBorderInput(), time.Now())
		stored.Status = entities.StatusCustomsClearance

		repo.EXPECT().
			GetBookingForUpdate(mock.Anything, "bk-1").
			Return(stored, nil).Once()
		repo.EXPECT().
			UpdateBooking(mock.Anything, mock.MatchedBy(func(b entities.TransportBooking) bool {
				return b.Status == entities.StatusInTransit && b.Customs.Status == entities.CustomsCompleted
			})).
			Return(nil).Once()
		repo.EXPECT().
			AppendHistory(mock.Anything, "bk-1", mock.MatchedBy(func(entries []entities.TrackingEntry) bool {
				return len(entries) == 1 && entries[0].Status == string(entities.StatusInTransit)
			})).
			Return(nil).Once()
		cache.EXPECT().Delete("bk-1").Return().Once()

		svc := booking.NewService(logger, tx, repo, providers, cache)

		updated, err := svc.CompleteCustoms(context.Background(), "bk-1", booking.CustomsCompletion{
			Office: "Vilnius customs office",
		})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusInTransit, updated.Status)
	})

	t.Run("domestic booking is rejected", func(t *testing.T) {
		repo, providers, cache, tx := newServiceMocks(t)
		passthroughTx(tx)

		in := crossBorderInput()
		in.Delivery = entities.ContactDetails{Country: "DE"}
		stored := booking.New("bk-1", in, time.Now())

		repo.EXPECT().
			GetBookingForUpdate(mock.Anything, "bk-1").
			Return(stored, nil).Once()

		svc := booking.NewService(logger, tx, repo, providers, cache)

		_, err := svc.CompleteCustoms(context.Background(), "bk-1", booking.CustomsCompletion{})
		assert.ErrorIs(t, err, entities.ErrCustomsNotNeeded)
	})
}

func TestBookingService_AddNote(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo, providers, cache, tx := newServiceMocks(t)
	passthroughTx(tx)

	stored := booking.New("bk-1", crossBorderInput(), time.Now())
	note := entities.Note{Author: "ops", Content: "seller confirmed pickup window", IsPublic: false}

	repo.EXPECT().
		GetBookingForUpdate(mock.Anything, "bk-1").
		Return(stored, nil).Once()
	repo.EXPECT().
		AppendNote(mock.Anything, "bk-1", mock.MatchedBy(func(n entities.Note) bool {
			return n.Author == "ops" && !n.CreatedAt.IsZero()
		})).
		Return(nil).Once()
	cache.EXPECT().Delete("bk-1").Return().Once()

	svc := booking.NewService(logger, tx, repo, providers, cache)

	updated, err := svc.AddNote(context.Background(), "bk-1", note)
	require.NoError(t, err)
	require.Len(t, updated.Notes, 1)
	assert.Equal(t, "ops", updated.Notes[0].Author)
}

func TestBookingService_WarmUpCache(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo, providers, cache, tx := newServiceMocks(t)

	bookings := []entities.TransportBooking{
		{ID: "bk-1", Status: entities.StatusBooked},
		{ID: "bk-2", Status: entities.StatusInTransit},
	}

	repo.EXPECT().
		LatestBookings(mock.Anything, 100).
		Return(bookings, nil).Once()
	cache.EXPECT().Set("bk-1", mock.Anything).Return().Once()
	cache.EXPECT().Set("bk-2", mock.Anything).Return().Once()

	svc := booking.NewService(logger, tx, repo, providers, cache)

	err := svc.WarmUpCache(context.Background(), 100)
	require.NoError(t, err)
}
