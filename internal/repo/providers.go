package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/autobid/transport-service/internal/entities"
	"github.com/autobid/transport-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type providerRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewProviderRepo(db *sqlx.DB) *providerRepo {
	return &providerRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// EligibleProviders implements the catalog query contract: active
// providers operating in both countries with a base rate for the exact
// (from, to, vehicleType) tuple, preferred-first then rating descending.
func (r *providerRepo) EligibleProviders(ctx context.Context, fromCountry, toCountry, vehicleType string) ([]entities.TransportProvider, error) {
	query, args := r.qb.Select("p.provider_id", "p.name", "p.rating", "p.is_active", "p.is_preferred").
		From("transport_providers p").
		Join("provider_countries oc ON oc.provider_id = p.provider_id AND oc.country_code = ?", fromCountry).
		Join("provider_countries dc ON dc.provider_id = p.provider_id AND dc.country_code = ?", toCountry).
		Join("provider_rates br ON br.provider_id = p.provider_id AND br.from_country = ? AND br.to_country = ? AND br.vehicle_type = ?",
			fromCountry, toCountry, vehicleType).
		Where(sq.Eq{"p.is_active": true}).
		GroupBy("p.provider_id", "p.name", "p.rating", "p.is_active", "p.is_preferred").
		OrderBy("p.is_preferred DESC", "p.rating DESC").
		MustSql()

	var providers []Provider
	if err := r.selectContext(ctx, &providers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select eligible providers: %w", err)
	}
	if len(providers) == 0 {
		return []entities.TransportProvider{}, nil
	}

	ids := make([]string, len(providers))
	for i, p := range providers {
		ids[i] = p.ProviderID
	}
	return r.hydrate(ctx, providers, ids)
}

func (r *providerRepo) GetProviderByID(ctx context.Context, providerID string) (entities.TransportProvider, error) {
	query, args := r.qb.Select("provider_id", "name", "rating", "is_active", "is_preferred").
		From("transport_providers").
		Where(sq.Eq{"provider_id": providerID}).
		MustSql()

	var provider Provider
	err := r.getContext(ctx, &provider, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.TransportProvider{}, entities.ErrProviderNotFound
	}
	if err != nil {
		return entities.TransportProvider{}, fmt.Errorf("failed to get provider: %w", err)
	}

	result, err := r.hydrate(ctx, []Provider{provider}, []string{providerID})
	if err != nil {
		return entities.TransportProvider{}, err
	}
	return result[0], nil
}

// hydrate attaches the operating countries, base rates, ordered fees and
// insurance options to the already selected provider rows.
func (r *providerRepo) hydrate(ctx context.Context, providers []Provider, ids []string) ([]entities.TransportProvider, error) {
	query, args := r.qb.Select("provider_id", "country_code").
		From("provider_countries").
		Where(sq.Eq{"provider_id": ids}).
		OrderBy("provider_id", "country_code").
		MustSql()

	var countries []CountryRow
	if err := r.selectContext(ctx, &countries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select provider countries: %w", err)
	}
	countryMap := make(map[string][]CountryRow, len(ids))
	for _, c := range countries {
		countryMap[c.ProviderID] = append(countryMap[c.ProviderID], c)
	}

	query, args = r.qb.Select("provider_id", "from_country", "to_country", "vehicle_type",
		"price", "currency", "price_unit", "min_price").
		From("provider_rates").
		Where(sq.Eq{"provider_id": ids}).
		MustSql()

	var rates []RateRow
	if err := r.selectContext(ctx, &rates, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select provider rates: %w", err)
	}
	rateMap := make(map[string][]RateRow, len(ids))
	for _, rt := range rates {
		rateMap[rt.ProviderID] = append(rateMap[rt.ProviderID], rt)
	}

	query, args = r.qb.Select("provider_id", "position", "name", "amount", "fee_type").
		From("provider_fees").
		Where(sq.Eq{"provider_id": ids}).
		OrderBy("provider_id", "position").
		MustSql()

	var fees []FeeRow
	if err := r.selectContext(ctx, &fees, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select provider fees: %w", err)
	}
	feeMap := make(map[string][]FeeRow, len(ids))
	for _, f := range fees {
		feeMap[f.ProviderID] = append(feeMap[f.ProviderID], f)
	}

	query, args = r.qb.Select("provider_id", "name", "coverage_limit", "price", "currency").
		From("provider_insurance_options").
		Where(sq.Eq{"provider_id": ids}).
		OrderBy("provider_id", "name").
		MustSql()

	var options []InsuranceOptionRow
	if err := r.selectContext(ctx, &options, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select insurance options: %w", err)
	}
	optionMap := make(map[string][]InsuranceOptionRow, len(ids))
	for _, o := range options {
		optionMap[o.ProviderID] = append(optionMap[o.ProviderID], o)
	}

	result := make([]entities.TransportProvider, 0, len(providers))
	for _, p := range providers {
		result = append(result, ProviderToEntity(
			p,
			countryMap[p.ProviderID],
			rateMap[p.ProviderID],
			feeMap[p.ProviderID],
			optionMap[p.ProviderID],
		))
	}
	return result, nil
}

func (r *providerRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *providerRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
