package entities

import (
	"errors"
	"time"
)

type AdditionalService struct {
	Name     string
	Price    float64
	Currency string
}

type Quote struct {
	ProviderID         string
	ProviderName       string
	Price              float64
	Currency           string
	EstimatedDays      int
	InsuranceOptions   []InsuranceOption
	AdditionalServices []AdditionalService
	ValidUntil         time.Time
}

// Conversion is the result of a currency exchange through the shared
// rate table.
type Conversion struct {
	ConvertedAmount float64
	ExchangeRate    float64
}

// CustomsInfo holds per-country import requirements, used only for
// lead-time defaults and informational notes.
type CustomsInfo struct {
	CountryCode    string
	CountryName    string
	CarnetRequired bool
	Notes          string
}

var (
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrCountryNotFound  = errors.New("country not found")
)
