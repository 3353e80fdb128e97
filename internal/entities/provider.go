package entities

import "errors"

type FeeType string

const (
	FeeFixed      FeeType = "fixed"
	FeePercentage FeeType = "percentage"
)

type BaseRate struct {
	FromCountry string
	ToCountry   string
	VehicleType string
	Price       float64
	Currency    string
	PriceUnit   string
	MinPrice    float64
}

type AdditionalFee struct {
	Name   string
	Amount float64
	Type   FeeType
}

type InsuranceOption struct {
	Name          string
	CoverageLimit float64
	Price         float64
	Currency      string
}

type TransportProvider struct {
	ID                 string
	Name               string
	Rating             float64
	OperatingCountries []string
	BaseRates          []BaseRate
	// AdditionalFees is an ordered list: percentage fees are applied
	// against the running total, so reordering changes quoted prices.
	AdditionalFees   []AdditionalFee
	InsuranceOptions []InsuranceOption
	IsActive         bool
	IsPreferred      bool
}

var ErrProviderNotFound = errors.New("provider not found")

// RateFor returns the provider's base rate for the exact route and vehicle
// type tuple. First match wins if the catalog holds duplicates.
func (p TransportProvider) RateFor(from, to, vehicleType string) (BaseRate, bool) {
	for _, r := range p.BaseRates {
		if r.FromCountry == from && r.ToCountry == to && r.VehicleType == vehicleType {
			return r, true
		}
	}
	return BaseRate{}, false
}
