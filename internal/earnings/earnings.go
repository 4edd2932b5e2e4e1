package earnings

import (
	"math"

	"loadhaul/internal/domain"
)

// DefaultFeeRate is the platform fee applied when the caller does not pick
// one. The original call sites disagreed (3% vs 5%), so the rate is always an
// explicit parameter here and this default is only a convenience for HTTP
// payloads that omit it.
const DefaultFeeRate = 0.03

// Round2 rounds to 2 decimal places, half away from zero. Applied at the
// reporting boundary only; intermediate math keeps full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Breakdown derives the per-load financial figures from gross revenue, a
// fuel estimate, and the platform fee rate. Negative gross and fee rates
// outside [0,1) are the only structurally invalid inputs.
func Breakdown(grossUSD float64, fuel domain.FuelEstimate, distanceMiles, feeRate float64) (domain.EarningsBreakdown, error) {
	if grossUSD < 0 {
		return domain.EarningsBreakdown{}, domain.ValidationError{Field: "rate", Msg: "must not be negative"}
	}
	if feeRate < 0 || feeRate >= 1 {
		return domain.EarningsBreakdown{}, domain.ValidationError{Field: "fee_rate", Msg: "must be in [0,1)"}
	}
	if distanceMiles < 0 {
		distanceMiles = 0
	}

	fee := grossUSD * feeRate
	net := grossUSD - fee - fuel.CostUSD

	netPerMile := 0.0
	if distanceMiles > 0 {
		netPerMile = net / distanceMiles
	}
	margin := 0.0
	if grossUSD > 0 {
		margin = 100 * net / grossUSD
	}

	return domain.EarningsBreakdown{
		GrossUSD:        Round2(grossUSD),
		FuelCostUSD:     Round2(fuel.CostUSD),
		PlatformFeeUSD:  Round2(fee),
		NetUSD:          Round2(net),
		NetPerMileUSD:   Round2(netPerMile),
		ProfitMarginPct: Round2(margin),
		DistanceMiles:   Round2(distanceMiles),
	}, nil
}

// MonthlyRollup sums breakdowns and recomputes the derived figures from the
// totals. Averaging per-load percentages would skew small samples, so margin
// and net-per-mile come from the summed gross/net/miles instead.
func MonthlyRollup(breakdowns []domain.EarningsBreakdown) domain.MonthlySummary {
	var gross, fuelCost, fee, net, miles float64
	for _, b := range breakdowns {
		gross += b.GrossUSD
		fuelCost += b.FuelCostUSD
		fee += b.PlatformFeeUSD
		net += b.NetUSD
		miles += b.DistanceMiles
	}

	avgNetPerMile := 0.0
	if miles > 0 {
		avgNetPerMile = net / miles
	}
	margin := 0.0
	if gross > 0 {
		margin = 100 * net / gross
	}

	return domain.MonthlySummary{
		Loads:            len(breakdowns),
		GrossUSD:         Round2(gross),
		FuelCostUSD:      Round2(fuelCost),
		PlatformFeeUSD:   Round2(fee),
		NetUSD:           Round2(net),
		TotalMiles:       Round2(miles),
		AvgNetPerMileUSD: Round2(avgNetPerMile),
		ProfitMarginPct:  Round2(margin),
	}
}
