package quote_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/autobid/transport-service/internal/entities"
	"github.com/autobid/transport-service/internal/quote"
	mocks "github.com/autobid/transport-service/internal/quote/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProvider(id string, rate entities.BaseRate, fees ...entities.AdditionalFee) entities.TransportProvider {
	return entities.TransportProvider{
		ID:             id,
		Name:           "Provider " + id,
		Rating:         4.5,
		IsActive:       true,
		BaseRates:      []entities.BaseRate{rate},
		AdditionalFees: fees,
	}
}

func TestQuoteService_GetQuotes_Pricing(t *testing.T) {
	type MockBehavior func(catalog *mocks.MockProviderCatalog, converter *mocks.MockCurrencyConverter, customs *mocks.MockCustomsReference)

	baseRate := entities.BaseRate{
		FromCountry: "DE",
		ToCountry:   "LT",
		VehicleType: "sedan",
		Price:       500,
		Currency:    "EUR",
	}
	percentFee := entities.AdditionalFee{Name: "handling", Amount: 10, Type: entities.FeePercentage}

	req := quote.Request{
		PickupCountry:   "DE",
		DeliveryCountry: "LT",
		VehicleType:     "sedan",
		Condition:       entities.ConditionRunning,
		Currency:        "EUR",
	}

	testCases := []struct {
		name         string
		req          quote.Request
		mockBehavior MockBehavior
		wantPrice    float64
		wantCurrency string
	}{
		{
			name: "base rate plus percentage fee",
			req:  req,
			mockBehavior: func(catalog *mocks.MockProviderCatalog, _ *mocks.MockCurrencyConverter, customs *mocks.MockCustomsReference) {
				catalog.EXPECT().
					EligibleProviders(mock.Anything, "DE", "LT", "sedan").
					Return([]entities.TransportProvider{newProvider("p1", baseRate, percentFee)}, nil).Once()
				customs.EXPECT().
					Lookup(mock.Anything, "LT").
					Return(entities.CustomsInfo{CountryCode: "LT"}, nil).Once()
			},
			wantPrice:    550.00,
			wantCurrency: "EUR",
		},
		{
			name: "non running vehicle pays the surcharge after fees",
			req: quote.Request{
				PickupCountry:   "DE",
				DeliveryCountry: "LT",
				VehicleType:     "sedan",
				Condition:       entities.ConditionNonRunning,
				Currency:        "EUR",
			},
			mockBehavior: func(catalog *mocks.MockProviderCatalog, _ *mocks.MockCurrencyConverter, customs *mocks.MockCustomsReference) {
				catalog.EXPECT().
					EligibleProviders(mock.Anything, "DE", "LT", "sedan").
					Return([]entities.TransportProvider{newProvider("p1", baseRate, percentFee)}, nil).Once()
				customs.EXPECT().
					Lookup(mock.Anything, "LT").
					Return(entities.CustomsInfo{CountryCode: "LT"}, nil).Once()
			},
			wantPrice:    687.50,
			wantCurrency: "EUR",
		},
		{
			name: "fees accumulate in list order",
			req:  req,
			mockBehavior: func(catalog *mocks.MockProviderCatalog, _ *mocks.MockCurrencyConverter, customs *mocks.MockCustomsReference) {
				fixedFirst := newProvider("p1", baseRate,
					entities.AdditionalFee{Name: "fuel", Amount: 50, Type: entities.FeeFixed},
					percentFee,
				)
				catalog.EXPECT().
					EligibleProviders(mock.Anything, "DE", "LT", "sedan").
					Return([]entities.TransportProvider{fixedFirst}, nil).Once()
				customs.EXPECT().
					Lookup(mock.Anything, "LT").
					Return(entities.CustomsInfo{CountryCode: "LT"}, nil).Once()
			},
			// (500 + 50) * 1.10, not 500*1.10 + 50
			wantPrice:    605.00,
			wantCurrency: "EUR",
		},
		{
			name: "minimum price clamps the final amount",
			req:  req,
			mockBehavior: func(catalog *mocks.MockProviderCatalog, _ *mocks.MockCurrencyConverter, customs *mocks.MockCustomsReference) {
				cheap := newProvider("p1", entities.BaseRate{
					FromCountry: "DE",
					ToCountry:   "LT",
					VehicleType: "sedan",
					Price:       100,
					Currency:    "EUR",
					MinPrice:    300,
				})
				catalog.EXPECT().
					EligibleProviders(mock.Anything, "DE", "LT", "sedan").
					Return([]entities.TransportProvider{cheap}, nil).Once()
				customs.EXPECT().
					Lookup(mock.Anything, "LT").
					Return(entities.CustomsInfo{CountryCode: "LT"}, nil).Once()
			},
			wantPrice:    300.00,
			wantCurrency: "EUR",
		},
		{
			name: "conversion into the requested currency",
			req: quote.Request{
				PickupCountry:   "DE",
				DeliveryCountry: "LT",
				VehicleType:     "sedan",
				Condition:       entities.ConditionRunning,
				Currency:        "USD",
			},
			mockBehavior: func(catalog *mocks.MockProviderCatalog, converter *mocks.MockCurrencyConverter, customs *mocks.MockCustomsReference) {
				catalog.EXPECT().
					EligibleProviders(mock.Anything, "DE", "LT", "sedan").
					Return([]entities.TransportProvider{newProvider("p1", baseRate)}, nil).Once()
				customs.EXPECT().
					Lookup(mock.Anything, "LT").
					Return(entities.CustomsInfo{CountryCode: "LT"}, nil).Once()
				converter.EXPECT().
					Convert(mock.Anything, 500.0, "EUR", "USD").
					Return(entities.Conversion{ConvertedAmount: 540.125, ExchangeRate: 1.08025}, nil).Once()
			},
			wantPrice:    540.13,
			wantCurrency: "USD",
		},
		{
			name: "failed conversion degrades to the rate currency",
			req: quote.Request{
				PickupCountry:   "DE",
				DeliveryCountry: "LT",
				VehicleType:     "sedan",
				Condition:       entities.ConditionRunning,
				Currency:        "USD",
			},
			mockBehavior: func(catalog *mocks.MockProviderCatalog, converter *mocks.MockCurrencyConverter, customs *mocks.MockCustomsReference) {
				catalog.EXPECT().
					EligibleProviders(mock.Anything, "DE", "LT", "sedan").
					Return([]entities.TransportProvider{newProvider("p1", baseRate)}, nil).Once()
				customs.EXPECT().
					Lookup(mock.Anything, "LT").
					Return(entities.CustomsInfo{CountryCode: "LT"}, nil).Once()
				converter.EXPECT().
					Convert(mock.Anything, 500.0, "EUR", "USD").
					Return(entities.Conversion{}, entities.ErrCurrencyNotFound).Once()
			},
			wantPrice:    500.00,
			wantCurrency: "EUR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockProviderCatalog(t)
			converter := mocks.NewMockCurrencyConverter(t)
			customs := mocks.NewMockCustomsReference(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(catalog, converter, customs)

			svc := quote.NewService(logger, catalog, converter, customs, "EUR")

			quotes, err := svc.GetQuotes(context.Background(), tc.req)
			require.NoError(t, err)
			require.Len(t, quotes, 1)

			assert.Equal(t, tc.wantPrice, quotes[0].Price)
			assert.Equal(t, tc.wantCurrency, quotes[0].Currency)
			assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), quotes[0].ValidUntil, time.Minute)
		})
	}
}

func TestQuoteService_GetQuotes_LeadTime(t *testing.T) {
	baseRate := func(from, to string) entities.BaseRate {
		return entities.BaseRate{FromCountry: from, ToCountry: to, VehicleType: "sedan", Price: 500, Currency: "EUR"}
	}

	testCases := []struct {
		name         string
		from, to     string
		mockBehavior func(customs *mocks.MockCustomsReference)
		wantDays     int
	}{
		{
			name: "same country",
			from: "DE", to: "DE",
			mockBehavior: func(_ *mocks.MockCustomsReference) {},
			wantDays:     3,
		},
		{
			name: "cross border",
			from: "DE", to: "LT",
			mockBehavior: func(customs *mocks.MockCustomsReference) {
				customs.EXPECT().
					Lookup(mock.Anything, "LT").
					Return(entities.CustomsInfo{CountryCode: "LT"}, nil).Once()
			},
			wantDays: 7,
		},
		{
			name: "carnet destination",
			from: "DE", to: "CH",
			mockBehavior: func(customs *mocks.MockCustomsReference) {
				customs.EXPECT().
					Lookup(mock.Anything, "CH").
					Return(entities.CustomsInfo{CountryCode: "CH", CarnetRequired: true}, nil).Once()
			},
			wantDays: 14,
		},
		{
			name: "unknown destination falls back to the default",
			from: "DE", to: "XX",
			mockBehavior: func(customs *mocks.MockCustomsReference) {
				customs.EXPECT().
					Lookup(mock.Anything, "XX").
					Return(entities.CustomsInfo{}, entities.ErrCountryNotFound).Once()
			},
			wantDays: 7,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockProviderCatalog(t)
			converter := mocks.NewMockCurrencyConverter(t)
			customs := mocks.NewMockCustomsReference(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			catalog.EXPECT().
				EligibleProviders(mock.Anything, tc.from, tc.to, "sedan").
				Return([]entities.TransportProvider{newProvider("p1", baseRate(tc.from, tc.to))}, nil).Once()
			tc.mockBehavior(customs)

			svc := quote.NewService(logger, catalog, converter, customs, "EUR")

			quotes, err := svc.GetQuotes(context.Background(), quote.Request{
				PickupCountry:   tc.from,
				DeliveryCountry: tc.to,
				VehicleType:     "sedan",
				Condition:       entities.ConditionRunning,
				Currency:        "EUR",
			})
			require.NoError(t, err)
			require.Len(t, quotes, 1)
			assert.Equal(t, tc.wantDays, quotes[0].EstimatedDays)
		})
	}
}

func TestQuoteService_GetQuotes_Providers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("no eligible providers yields an empty list", func(t *testing.T) {
		catalog := mocks.NewMockProviderCatalog(t)
		converter := mocks.NewMockCurrencyConverter(t)
		customs := mocks.NewMockCustomsReference(t)

		catalog.EXPECT().
			EligibleProviders(mock.Anything, "DE", "LT", "sedan").
			Return(nil, nil).Once()

		svc := quote.NewService(logger, catalog, converter, customs, "EUR")

		quotes, err := svc.GetQuotes(context.Background(), quote.Request{
			PickupCountry:   "DE",
			DeliveryCountry: "LT",
			VehicleType:     "sedan",
			Currency:        "EUR",
		})
		require.NoError(t, err)
		assert.NotNil(t, quotes)
		assert.Empty(t, quotes)
	})

	t.Run("catalog failure propagates", func(t *testing.T) {
		catalog := mocks.NewMockProviderCatalog(t)
		converter := mocks.NewMockCurrencyConverter(t)
		customs := mocks.NewMockCustomsReference(t)

		dbErr := errors.New("db error")
		catalog.EXPECT().
			EligibleProviders(mock.Anything, "DE", "LT", "sedan").
			Return(nil, dbErr).Once()

		svc := quote.NewService(logger, catalog, converter, customs, "EUR")

		_, err := svc.GetQuotes(context.Background(), quote.Request{
			PickupCountry:   "DE",
			DeliveryCountry: "LT",
			VehicleType:     "sedan",
			Currency:        "EUR",
		})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("quotes keep the catalog order", func(t *testing.T) {
		catalog := mocks.NewMockProviderCatalog(t)
		converter := mocks.NewMockCurrencyConverter(t)
		customs := mocks.NewMockCustomsReference(t)

		rate := entities.BaseRate{FromCountry: "DE", ToCountry: "LT", VehicleType: "sedan", Price: 500, Currency: "EUR"}
		catalog.EXPECT().
			EligibleProviders(mock.Anything, "DE", "LT", "sedan").
			Return([]entities.TransportProvider{
				newProvider("preferred", rate),
				newProvider("second", rate),
				newProvider("third", rate),
			}, nil).Once()
		customs.EXPECT().
			Lookup(mock.Anything, "LT").
			Return(entities.CustomsInfo{CountryCode: "LT"}, nil).Once()

		svc := quote.NewService(logger, catalog, converter, customs, "EUR")

		quotes, err := svc.GetQuotes(context.Background(), quote.Request{
			PickupCountry:   "DE",
			DeliveryCountry: "LT",
			VehicleType:     "sedan",
			Condition:       entities.ConditionRunning,
			Currency:        "EUR",
		})
		require.NoError(t, err)
		require.Len(t, quotes, 3)
		assert.Equal(t, "preferred", quotes[0].ProviderID)
		assert.Equal(t, "second", quotes[1].ProviderID)
		assert.Equal(t, "third", quotes[2].ProviderID)
	})

	t.Run("customs handling is free for domestic moves", func(t *testing.T) {
		catalog := mocks.NewMockProviderCatalog(t)
		converter := mocks.NewMockCurrencyConverter(t)
		customs := mocks.NewMockCustomsReference(t)

		rate := entities.BaseRate{FromCountry: "DE", ToCountry: "DE", VehicleType: "sedan", Price: 200, Currency: "EUR"}
		catalog.EXPECT().
			EligibleProviders(mock.Anything, "DE", "DE", "sedan").
			Return([]entities.TransportProvider{newProvider("p1", rate)}, nil).Once()

		svc := quote.NewService(logger, catalog, converter, customs, "EUR")

		quotes, err := svc.GetQuotes(context.Background(), quote.Request{
			PickupCountry:   "DE",
			DeliveryCountry: "DE",
			VehicleType:     "sedan",
			Condition:       entities.ConditionRunning,
			Currency:        "EUR",
		})
		require.NoError(t, err)
		require.Len(t, quotes, 1)

		services := map[string]float64{}
		for _, s := range quotes[0].AdditionalServices {
			services[s.Name] = s.Price
		}
		assert.Equal(t, 0.0, services["customs_handling"])
		assert.Equal(t, 100.0, services["door_to_door"])
		assert.Equal(t, 200.0, services["expedited"])
	})
}
