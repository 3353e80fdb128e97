package handler_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/autobid/transport-service/internal/entities"
	"github.com/autobid/transport-service/internal/handler"
	mocks "github.com/autobid/transport-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mocks.MockQuoteService, *mocks.MockBookingService, *chi.Mux) {
	quotes := mocks.NewMockQuoteService(t)
	bookings := mocks.NewMockBookingService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := handler.NewHTTPHandler(logger, quotes, bookings)
	r := chi.NewRouter()
	h.Init(r)
	return quotes, bookings, r
}

func doJSON(t *testing.T, r http.Handler, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr.Result()
}

func TestHTTPHandler_GetQuotes(t *testing.T) {
	validBody := `{"pickup_country":"DE","delivery_country":"LT","vehicle_type":"sedan","currency":"EUR"}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockQuoteService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockQuoteService) {
				svc.EXPECT().
					GetQuotes(mock.Anything, mock.Anything).
					Return([]entities.Quote{{ProviderID: "p1", ProviderName: "Provider p1", Price: 550, Currency: "EUR"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"provider_id":"p1"`,
		},
		{
			name: "no providers yields an empty array",
			body: validBody,
			mockBehavior: func(svc *mocks.MockQuoteService) {
				svc.EXPECT().
					GetQuotes(mock.Anything, mock.Anything).
					Return([]entities.Quote{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:         "missing countries fail validation",
			body:         `{"vehicle_type":"sedan"}`,
			mockBehavior: func(svc *mocks.MockQuoteService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"PickupCountry"`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockQuoteService) {
				svc.EXPECT().
					GetQuotes(mock.Anything, mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quotes, _, r := newTestRouter(t)
			tc.mockBehavior(quotes)

			res := doJSON(t, r, http.MethodPost, "/quotes", tc.body)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_CreateBooking(t *testing.T) {
	validBody := `{
		"vehicle_id": "veh-1",
		"buyer_id": "buyer-1",
		"seller_id": "seller-1",
		"provider_id": "prov-1",
		"pickup": {"country": "DE", "city": "Hamburg"},
		"delivery": {"country": "LT", "city": "Vilnius"},
		"vehicle": {"make": "BMW", "model": "320d", "year": 2019},
		"quote_amount": 750,
		"currency": "EUR"
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockBookingService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(svc *mocks.MockBookingService) {
				svc.EXPECT().
					CreateBooking(mock.Anything, mock.Anything).
					Return(entities.TransportBooking{ID: "bk-1", Status: entities.StatusQuoteRequested}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"booking_id":"bk-1"`,
		},
		{
			name: "unknown provider",
			body: validBody,
			mockBehavior: func(svc *mocks.MockBookingService) {
				svc.EXPECT().
					CreateBooking(mock.Anything, mock.Anything).
					Return(entities.TransportBooking{}, fmt.Errorf("failed to resolve provider: %w", entities.ErrProviderNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"provider not found"`,
		},
		{
			name:         "missing required fields",
			body:         `{"vehicle_id": "veh-1"}`,
			mockBehavior: func(svc *mocks.MockBookingService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"BuyerID"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, bookings, r := newTestRouter(t)
			tc.mockBehavior(bookings)

			res := doJSON(t, r, http.MethodPost, "/bookings/", tc.body)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetBookingByID(t *testing.T) {
	testCases := []struct {
		name         string
		bookingID    string
		mockBehavior func(svc *mocks.MockBookingService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "success",
			bookingID: "bk-1",
			mockBehavior: func(svc *mocks.MockBookingService) {
				svc.EXPECT().
					GetBookingByID(mock.Anything, "bk-1").
					Return(entities.TransportBooking{ID: "bk-1", Status: entities.StatusInTransit}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"in_transit"`,
		},
		{
			name:      "not found",
			bookingID: "missing",
			mockBehavior: func(svc *mocks.MockBookingService) {
				svc.EXPECT().
					GetBookingByID(mock.Anything, "missing").
					Return(entities.TransportBooking{}, entities.ErrBookingNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"booking not found"`,
		},
		{
			name:      "internal error",
			bookingID: "bk-1",
			mockBehavior: func(svc *mocks.MockBookingService) {
				svc.EXPECT().
					GetBookingByID(mock.Anything, "bk-1").
					Return(entities.TransportBooking{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, bookings, r := newTestRouter(t)
			tc.mockBehavior(bookings)

			res := doJSON(t, r, http.MethodGet, "/bookings/"+tc.bookingID, "")
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockBookingService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status":"in_transit","location":"Gdansk, PL"}`,
			mockBehavior: func(svc *mocks.MockBookingService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, "bk-1", mock.Anything).
					Return(entities.TransportBooking{ID: "bk-1", Status: entities.StatusInTransit}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"in_transit"`,
		},
		{
			name: "forbidden transition",
			body: `{"status":"delivered"}`,
			mockBehavior: func(svc *mocks.MockBookingService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, "bk-1", mock.Anything).
					Return(entities.TransportBooking{}, fmt.Errorf("%w: %s -> %s", entities.ErrBadTransition, entities.StatusQuoted, entities.StatusDelivered)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `quoted -> delivered`,
		},
		{
			name:         "unknown status fails validation",
			body:         `{"status":"teleported"}`,
			mockBehavior: func(svc *mocks.MockBookingService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Status"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, bookings, r := newTestRouter(t)
			tc.mockBehavior(bookings)

			res := doJSON(t, r, http.MethodPost, "/bookings/bk-1/status", tc.body)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_CompleteCustoms(t *testing.T) {
	t.Run("domestic booking conflicts", func(t *testing.T) {
		_, bookings, r := newTestRouter(t)

		bookings.EXPECT().
			CompleteCustoms(mock.Anything, "bk-1", mock.Anything).
			Return(entities.TransportBooking{}, entities.ErrCustomsNotNeeded).Once()

		res := doJSON(t, r, http.MethodPost, "/bookings/bk-1/customs/complete", `{"office":"Vilnius"}`)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, string(body), "customs clearance not required")
	})

	t.Run("success", func(t *testing.T) {
		_, bookings, r := newTestRouter(t)

		cleared := entities.TransportBooking{
			ID:     "bk-1",
			Status: entities.StatusInTransit,
			Customs: &entities.CustomsClearance{
				Required: true,
				Status:   entities.CustomsCompleted,
			},
		}
		bookings.EXPECT().
			CompleteCustoms(mock.Anything, "bk-1", mock.Anything).
			Return(cleared, nil).Once()

		res := doJSON(t, r, http.MethodPost, "/bookings/bk-1/customs/complete", `{"office":"Vilnius"}`)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, string(body), `"status":"completed"`)
	})
}

func TestHTTPHandler_UpdateTracking(t *testing.T) {
	_, bookings, r := newTestRouter(t)

	bookings.EXPECT().
		UpdateTracking(mock.Anything, "bk-1", mock.Anything).
		Return(entities.TransportBooking{
			ID:       "bk-1",
			Status:   entities.StatusInTransit,
			Tracking: entities.Tracking{Number: "TRK-1", CurrentStatus: "in_transit"},
		}, nil).Once()

	res := doJSON(t, r, http.MethodPatch, "/bookings/bk-1/tracking", `{"tracking_number":"TRK-1"}`)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"number":"TRK-1"`)
}

func TestHTTPHandler_AddNote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, bookings, r := newTestRouter(t)

		bookings.EXPECT().
			AddNote(mock.Anything, "bk-1", mock.MatchedBy(func(n entities.Note) bool {
				return n.Author == "ops" && n.IsPublic
			})).
			Return(entities.TransportBooking{ID: "bk-1"}, nil).Once()

		res := doJSON(t, r, http.MethodPost, "/bookings/bk-1/notes", `{"author":"ops","content":"window confirmed"}`)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("missing content fails validation", func(t *testing.T) {
		_, _, r := newTestRouter(t)

		res := doJSON(t, r, http.MethodPost, "/bookings/bk-1/notes", `{"author":"ops"}`)
		defer res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_AddDocument(t *testing.T) {
	_, bookings, r := newTestRouter(t)

	bookings.EXPECT().
		AddDocument(mock.Anything, "bk-1", mock.MatchedBy(func(d entities.Document) bool {
			return d.Type == "cmr" && d.Filename == "cmr.pdf"
		})).
		Return(entities.TransportBooking{ID: "bk-1"}, nil).Once()

	res := doJSON(t, r, http.MethodPost, "/bookings/bk-1/documents",
		`{"type":"cmr","filename":"cmr.pdf","url":"https://docs.example.com/cmr.pdf"}`)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
}
