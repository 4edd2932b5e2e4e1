package services

import (
	"context"
	"fmt"

	"loadhaul/internal/domain"
	"loadhaul/internal/earnings"
	"loadhaul/internal/fuel"
	"loadhaul/internal/geo"
	"loadhaul/internal/trip"
	"loadhaul/internal/utils"
)

// EstimateService is the stable call surface of the trip economics engine.
// Screens and analytics cards depend on these four operations; their shapes
// must not change silently.
type EstimateService struct {
	Geo       *geo.Resolver
	Fuel      fuel.Estimator
	Remote    *domain.RemoteEstimateConfig
	RequestID string
}

// MileageEstimate is the result of EstimateMileageFromZips.
type MileageEstimate struct {
	Miles         float64         `json:"miles"`
	DurationHours float64         `json:"duration_hours"`
	AvgSpeedMph   float64         `json:"avg_speed_mph"`
	ArrivalAtMs   int64           `json:"arrival_at_ms,omitempty"`
	Origin        domain.GeoPoint `json:"origin"`
	Dest          domain.GeoPoint `json:"dest"`
}

// EstimateMileageFromZips resolves both ZIPs and derives road miles,
// duration, and (when departAtMs is set) the ETA. This is the one surface
// that raises geocoding failures to the caller: without coordinates there is
// nothing to degrade to.
func (s EstimateService) EstimateMileageFromZips(ctx context.Context, originZip, destZip string, class domain.VehicleClass, departAtMs int64) (MileageEstimate, error) {
	origin, err := s.Geo.Resolve(ctx, originZip)
	if err != nil {
		return MileageEstimate{}, err
	}
	dest, err := s.Geo.Resolve(ctx, destZip)
	if err != nil {
		return MileageEstimate{}, err
	}

	miles := trip.EstimateMiles(origin, dest)
	mph := trip.AvgSpeed(domain.NormalizeVehicleClass(string(class)))
	hours := trip.DurationHours(miles, mph)

	out := MileageEstimate{
		Miles:         miles,
		DurationHours: hours,
		AvgSpeedMph:   mph,
		Origin:        origin,
		Dest:          dest,
	}
	if departAtMs > 0 {
		out.ArrivalAtMs = trip.Arrival(departAtMs, hours)
	}

	utils.LogEvent(s.RequestID, "estimate", "mileage",
		fmt.Sprintf("origin=%s dest=%s miles=%.1f", originZip, destZip, miles))
	return out, nil
}

// FetchFuelEstimate resolves the load's distance when possible and runs the
// remote-then-local fuel estimation. It never returns an error; unresolvable
// distance degrades to a zeroed estimate.
func (s EstimateService) FetchFuelEstimate(ctx context.Context, load domain.LoadInput, driver *domain.FuelProfile) domain.FuelEstimate {
	load.DistanceMiles = s.resolveDistance(ctx, load)
	return s.Fuel.Estimate(ctx, load, driver, s.Remote)
}

// CalculateLoadCostBreakdown produces the full financial breakdown for a
// load, including the fuel estimate it was derived from. The fee rate is
// explicit; earnings.DefaultFeeRate is the caller-side convention for
// "unspecified".
func (s EstimateService) CalculateLoadCostBreakdown(ctx context.Context, load domain.LoadInput, driver *domain.FuelProfile, feeRate float64) (domain.EarningsBreakdown, domain.FuelEstimate, error) {
	load.DistanceMiles = s.resolveDistance(ctx, load)
	est := s.Fuel.Estimate(ctx, load, driver, s.Remote)

	bd, err := earnings.Breakdown(load.Rate, est, load.DistanceMiles, feeRate)
	if err != nil {
		return domain.EarningsBreakdown{}, domain.FuelEstimate{}, err
	}
	return bd, est, nil
}

// CalculateMonthlyNetSummary aggregates a month of breakdowns.
func (s EstimateService) CalculateMonthlyNetSummary(breakdowns []domain.EarningsBreakdown) domain.MonthlySummary {
	return earnings.MonthlyRollup(breakdowns)
}

// resolveDistance prefers the precomputed figure, then a ZIP-pair lookup.
// Geocoding failures here degrade to 0 so the caller still gets a rendered
// result; only EstimateMileageFromZips surfaces them.
func (s EstimateService) resolveDistance(ctx context.Context, load domain.LoadInput) float64 {
	if load.DistanceMiles > 0 {
		return load.DistanceMiles
	}
	if load.OriginZip == "" || load.DestZip == "" || s.Geo == nil {
		return 0
	}

	origin, err := s.Geo.Resolve(ctx, load.OriginZip)
	if err != nil {
		utils.LogEvent(s.RequestID, "estimate", "distance_degraded", err.Error())
		return 0
	}
	dest, err := s.Geo.Resolve(ctx, load.DestZip)
	if err != nil {
		utils.LogEvent(s.RequestID, "estimate", "distance_degraded", err.Error())
		return 0
	}
	return trip.EstimateMiles(origin, dest)
}
