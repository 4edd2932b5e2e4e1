package earnings

import (
	"math"
	"testing"

	"loadhaul/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBreakdown(t *testing.T) {
	fuelCost := func(cost float64) domain.FuelEstimate {
		return domain.FuelEstimate{CostUSD: cost, Method: domain.EstimateMethodLocal}
	}

	tests := []struct {
		name    string
		gross   float64
		fuel    domain.FuelEstimate
		miles   float64
		feeRate float64
		want    domain.EarningsBreakdown
		wantErr bool
	}{
		{
			name:    "dallas houston style load",
			gross:   1800,
			fuel:    fuelCost(161.20),
			miles:   239,
			feeRate: 0.03,
			want: domain.EarningsBreakdown{
				GrossUSD:        1800,
				FuelCostUSD:     161.20,
				PlatformFeeUSD:  54,
				NetUSD:          1584.80,
				NetPerMileUSD:   6.63,
				ProfitMarginPct: 88.04,
				DistanceMiles:   239,
			},
		},
		{
			name:    "zero gross degrades without dividing",
			gross:   0,
			fuel:    fuelCost(50),
			miles:   0,
			feeRate: 0.03,
			want: domain.EarningsBreakdown{
				FuelCostUSD: 50,
				NetUSD:      -50,
			},
		},
		{
			name:    "zero fee rate is a legal choice",
			gross:   1000,
			fuel:    fuelCost(100),
			miles:   100,
			feeRate: 0,
			want: domain.EarningsBreakdown{
				GrossUSD:        1000,
				FuelCostUSD:     100,
				NetUSD:          900,
				NetPerMileUSD:   9,
				ProfitMarginPct: 90,
				DistanceMiles:   100,
			},
		},
		{
			name:    "negative gross rejected",
			gross:   -1,
			fuel:    fuelCost(0),
			feeRate: 0.03,
			wantErr: true,
		},
		{
			name:    "fee rate of 1 rejected",
			gross:   100,
			fuel:    fuelCost(0),
			feeRate: 1,
			wantErr: true,
		},
		{
			name:    "negative fee rate rejected",
			gross:   100,
			fuel:    fuelCost(0),
			feeRate: -0.01,
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Breakdown(test.gross, test.fuel, test.miles, test.feeRate)
			if test.wantErr {
				assert.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

// net must equal gross - gross*feeRate - fuelCost before reporting rounding.
func TestBreakdownRoundTrip(t *testing.T) {
	gross, fuelCost, feeRate := 1000.0, 123.45, 0.05
	got, err := Breakdown(gross, domain.FuelEstimate{CostUSD: fuelCost}, 200, feeRate)
	assert.NoError(t, err)

	want := gross - gross*feeRate - fuelCost
	assert.InDelta(t, want, got.NetUSD, 1e-6)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.38, Round2(1.375))
	assert.Equal(t, 1.37, Round2(1.374))
	assert.Equal(t, -1.38, Round2(-1.375))
	assert.Equal(t, 0.0, Round2(0))
}

func TestMonthlyRollup(t *testing.T) {
	breakdowns := []domain.EarningsBreakdown{
		{GrossUSD: 1000, FuelCostUSD: 150, PlatformFeeUSD: 50, NetUSD: 800, DistanceMiles: 100},
		{GrossUSD: 500, FuelCostUSD: 380, PlatformFeeUSD: 20, NetUSD: 100, DistanceMiles: 400},
	}

	got := MonthlyRollup(breakdowns)

	assert.Equal(t, 2, got.Loads)
	assert.Equal(t, 1500.0, got.GrossUSD)
	assert.Equal(t, 530.0, got.FuelCostUSD)
	assert.Equal(t, 70.0, got.PlatformFeeUSD)
	assert.Equal(t, 900.0, got.NetUSD)
	assert.Equal(t, 500.0, got.TotalMiles)

	// derived from sums, not the mean of per-load figures: the per-load
	// net-per-mile mean would be (8.0+0.25)/2 = 4.125
	assert.Equal(t, 1.8, got.AvgNetPerMileUSD)
	assert.Equal(t, 60.0, got.ProfitMarginPct)
}

func TestMonthlyRollupEmpty(t *testing.T) {
	got := MonthlyRollup(nil)
	assert.Equal(t, 0, got.Loads)
	assert.Equal(t, 0.0, got.AvgNetPerMileUSD)
	assert.Equal(t, 0.0, got.ProfitMarginPct)
	assert.False(t, math.IsNaN(got.ProfitMarginPct))
}
