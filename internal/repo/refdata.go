package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/autobid/transport-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// ratesRepo converts amounts through the shared exchange-rate table.
// Each active currency row stores its rate to the platform base currency;
// the table itself is seeded and refreshed by an external collaborator.
type ratesRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewRatesRepo(db *sqlx.DB) *ratesRepo {
	return &ratesRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ratesRepo) Convert(ctx context.Context, amount float64, fromCode, toCode string) (entities.Conversion, error) {
	if fromCode == toCode {
		return entities.Conversion{ConvertedAmount: amount, ExchangeRate: 1}, nil
	}

	query, args := r.qb.Select("code", "rate").
		From("exchange_rates").
		Where(sq.Eq{"code": []string{fromCode, toCode}, "is_active": true}).
		MustSql()

	var rows []struct {
		Code string  `db:"code"`
		Rate float64 `db:"rate"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return entities.Conversion{}, fmt.Errorf("failed to select exchange rates: %w", err)
	}

	rates := make(map[string]float64, len(rows))
	for _, row := range rows {
		rates[row.Code] = row.Rate
	}

	fromRate, ok := rates[fromCode]
	if !ok || fromRate == 0 {
		return entities.Conversion{}, fmt.Errorf("%w: %s", entities.ErrCurrencyNotFound, fromCode)
	}
	toRate, ok := rates[toCode]
	if !ok || toRate == 0 {
		return entities.Conversion{}, fmt.Errorf("%w: %s", entities.ErrCurrencyNotFound, toCode)
	}

	return crossConvert(amount, fromRate, toRate), nil
}

// crossConvert converts through the base currency: rates are quoted
// against the base, so the cross rate is from/base divided by to/base.
// Converting an amount and converting it back with the same two rates
// returns the original within 2-decimal rounding.
func crossConvert(amount, fromRate, toRate float64) entities.Conversion {
	exchangeRate := fromRate / toRate
	return entities.Conversion{
		ConvertedAmount: amount * exchangeRate,
		ExchangeRate:    exchangeRate,
	}
}

// customsRepo looks up per-country import requirements. A missing country
// means "no special requirement", which callers map to the default
// cross-border lead time.
type customsRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewCustomsRepo(db *sqlx.DB) *customsRepo {
	return &customsRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *customsRepo) Lookup(ctx context.Context, countryCode string) (entities.CustomsInfo, error) {
	query, args := r.qb.Select("country_code", "country_name", "carnet_required", "notes").
		From("customs_requirements").
		Where(sq.Eq{"country_code": countryCode}).
		MustSql()

	var row struct {
		CountryCode    string         `db:"country_code"`
		CountryName    string         `db:"country_name"`
		CarnetRequired bool           `db:"carnet_required"`
		Notes          sql.NullString `db:"notes"`
	}
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CustomsInfo{}, fmt.Errorf("%w: %s", entities.ErrCountryNotFound, countryCode)
	}
	if err != nil {
		return entities.CustomsInfo{}, fmt.Errorf("failed to get customs requirements: %w", err)
	}

	return entities.CustomsInfo{
		CountryCode:    row.CountryCode,
		CountryName:    row.CountryName,
		CarnetRequired: row.CarnetRequired,
		Notes:          nullStringToString(row.Notes),
	}, nil
}
