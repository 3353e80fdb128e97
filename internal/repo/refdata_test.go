package repo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func TestCrossConvert(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		fromRate float64
		toRate   float64
		want     float64
	}{
		{
			name:     "same rate is identity",
			amount:   100,
			fromRate: 1,
			toRate:   1,
			want:     100,
		},
		{
			name:     "base to quoted currency",
			amount:   500,
			fromRate: 1,
			toRate:   0.925711,
			want:     540.12,
		},
		{
			name:     "between two quoted currencies",
			amount:   100000,
			fromRate: 0.00575,
			toRate:   1.177,
			want:     488.53,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := crossConvert(tc.amount, tc.fromRate, tc.toRate)
			assert.InDelta(t, tc.want, got.ConvertedAmount, 0.005)
			assert.InDelta(t, tc.fromRate/tc.toRate, got.ExchangeRate, 1e-9)
		})
	}
}

func TestCrossConvert_RoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		fromRate float64
		toRate   float64
	}{
		{name: "base and near-parity pair", amount: 540.13, fromRate: 1, toRate: 0.925711},
		{name: "small against large rate", amount: 123456.78, fromRate: 0.00575, toRate: 1.177},
		{name: "two fractional rates", amount: 19.99, fromRate: 0.2336, toRate: 0.0406},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			there := crossConvert(tc.amount, tc.fromRate, tc.toRate)
			back := crossConvert(there.ConvertedAmount, tc.toRate, tc.fromRate)

			assert.Equal(t, round2(tc.amount), round2(back.ConvertedAmount),
				"converting there and back must preserve the amount to 2 decimals")
		})
	}
}
