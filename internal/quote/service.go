package quote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/autobid/transport-service/internal/entities"

	"golang.org/x/sync/errgroup"
)

const (
	// quoteValidity is the fixed validity window of every quote,
	// independent of provider.
	quoteValidity = 7 * 24 * time.Hour

	sameCountryLeadDays = 3
	crossBorderLeadDays = 7
	carnetLeadDays      = 14

	nonRunningSurcharge = 1.25

	customsHandlingFee = 150
	doorToDoorFee      = 100
	expeditedFee       = 200
)

type ProviderCatalog interface {
	// EligibleProviders returns active providers operating in both
	// countries with a base rate for the exact (from, to, vehicleType)
	// tuple, ordered preferred-first then by rating descending.
	EligibleProviders(ctx context.Context, fromCountry, toCountry, vehicleType string) ([]entities.TransportProvider, error)
}

type CurrencyConverter interface {
	Convert(ctx context.Context, amount float64, fromCode, toCode string) (entities.Conversion, error)
}

type CustomsReference interface {
	Lookup(ctx context.Context, countryCode string) (entities.CustomsInfo, error)
}

type Request struct {
	PickupCountry   string
	PickupCity      string
	DeliveryCountry string
	DeliveryCity    string

	VehicleType string
	Make        string
	Model       string
	Year        int
	Condition   entities.RunningCondition

	// Currency defaults to the platform base currency when empty.
	Currency string
}

type service struct {
	logger       *slog.Logger
	catalog      ProviderCatalog
	converter    CurrencyConverter
	customs      CustomsReference
	baseCurrency string
}

func NewService(logger *slog.Logger, catalog ProviderCatalog, converter CurrencyConverter, customs CustomsReference, baseCurrency string) *service {
	return &service{
		logger:       logger.With(slog.String("service", "quote")),
		catalog:      catalog,
		converter:    converter,
		customs:      customs,
		baseCurrency: baseCurrency,
	}
}

// GetQuotes prices the route with every eligible provider. No eligible
// providers is a legitimate "no offers" state and yields an empty slice.
// A failed currency conversion degrades that one quote to the provider's
// rate currency instead of aborting the batch.
func (s *service) GetQuotes(ctx context.Context, req Request) ([]entities.Quote, error) {
	if req.Currency == "" {
		req.Currency = s.baseCurrency
	}

	providers, err := s.catalog.EligibleProviders(ctx, req.PickupCountry, req.DeliveryCountry, req.VehicleType)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve eligible providers: %w", err)
	}
	if len(providers) == 0 {
		return []entities.Quote{}, nil
	}

	estimatedDays := s.estimateLeadTime(ctx, req.PickupCountry, req.DeliveryCountry)
	validUntil := time.Now().Add(quoteValidity)
	services := s.additionalServices(req.PickupCountry, req.DeliveryCountry)

	// quotes are independent per provider; the slice keeps the catalog's
	// preferred-first, rating-descending order stable.
	quotes := make([]entities.Quote, len(providers))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range providers {
		i, p := i, p
		g.Go(func() error {
			q, ok := s.quoteProvider(gctx, p, req)
			if !ok {
				return nil
			}
			q.EstimatedDays = estimatedDays
			q.AdditionalServices = services
			q.ValidUntil = validUntil
			quotes[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.ProviderID != "" {
			result = append(result, q)
		}
	}
	return result, nil
}

func (s *service) quoteProvider(ctx context.Context, p entities.TransportProvider, req Request) (entities.Quote, bool) {
	rate, ok := p.RateFor(req.PickupCountry, req.DeliveryCountry, req.VehicleType)
	if !ok {
		// the catalog query guarantees a matching rate; a provider
		// without one is skipped rather than mispriced
		return entities.Quote{}, false
	}

	price := applyFees(rate.Price, p.AdditionalFees)
	if req.Condition == entities.ConditionNonRunning {
		price *= nonRunningSurcharge
	}
	if rate.MinPrice > 0 && price < rate.MinPrice {
		price = rate.MinPrice
	}

	currency := rate.Currency
	if rate.Currency != req.Currency {
		conv, err := s.converter.Convert(ctx, price, rate.Currency, req.Currency)
		if err != nil {
			// degraded computation: keep the source currency and price
			conversionFallbacks.Inc()
			s.logger.Warn("currency conversion failed, quoting in rate currency",
				slog.String("provider_id", p.ID),
				slog.String("from", rate.Currency),
				slog.String("to", req.Currency),
				slog.Any("error", err),
			)
		} else {
			price = conv.ConvertedAmount
			currency = req.Currency
		}
	}

	quotesComputed.Inc()
	return entities.Quote{
		ProviderID:       p.ID,
		ProviderName:     p.Name,
		Price:            round2(price),
		Currency:         currency,
		InsuranceOptions: p.InsuranceOptions,
	}, true
}

// applyFees accumulates the provider's fees in list order. Percentage
// fees are evaluated against the running total, so fee order affects the
// result; this mirrors how providers publish their surcharges.
func applyFees(base float64, fees []entities.AdditionalFee) float64 {
	price := base
	for _, fee := range fees {
		switch fee.Type {
		case entities.FeePercentage:
			price += price * fee.Amount / 100
		default:
			price += fee.Amount
		}
	}
	return price
}

// estimateLeadTime is a default, not a computed route plan: 3 days for
// domestic moves, 7 for cross-border, 14 when the destination requires a
// transit carnet.
func (s *service) estimateLeadTime(ctx context.Context, from, to string) int {
	if from == to {
		return sameCountryLeadDays
	}

	info, err := s.customs.Lookup(ctx, to)
	if err != nil {
		if !errors.Is(err, entities.ErrCountryNotFound) {
			s.logger.Warn("customs lookup failed, using default lead time",
				slog.String("country", to), slog.Any("error", err))
		}
		return crossBorderLeadDays
	}
	if info.CarnetRequired {
		return carnetLeadDays
	}
	return crossBorderLeadDays
}

func (s *service) additionalServices(from, to string) []entities.AdditionalService {
	customsPrice := float64(customsHandlingFee)
	if from == to {
		customsPrice = 0
	}
	return []entities.AdditionalService{
		{Name: "customs_handling", Price: customsPrice, Currency: s.baseCurrency},
		{Name: "door_to_door", Price: doorToDoorFee, Currency: s.baseCurrency},
		{Name: "expedited", Price: expeditedFee, Currency: s.baseCurrency},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
