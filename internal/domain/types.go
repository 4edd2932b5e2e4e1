package domain

import "strings"

// GeoPoint is an immutable latitude/longitude pair resolved from a ZIP code.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the point lies inside the WGS84 coordinate ranges.
func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// VehicleClass keys the static MPG/price/aero tables.
type VehicleClass string

const (
	VehicleTruck           VehicleClass = "truck"
	VehicleBoxTruck        VehicleClass = "box-truck"
	VehicleCargoVan        VehicleClass = "cargo-van"
	VehicleTrailer         VehicleClass = "trailer"
	VehicleCarHauler       VehicleClass = "car-hauler"
	VehicleFlatbed         VehicleClass = "flatbed"
	VehicleEnclosedTrailer VehicleClass = "enclosed-trailer"
	VehicleReefer          VehicleClass = "reefer"
)

// NormalizeVehicleClass lower-cases and trims raw client input. Unknown values
// pass through unchanged; table lookups fall back to truck for them.
func NormalizeVehicleClass(raw string) VehicleClass {
	return VehicleClass(strings.ToLower(strings.TrimSpace(raw)))
}

type FuelType string

const (
	FuelDiesel FuelType = "diesel"
	FuelGas    FuelType = "gas"
)

// FuelProfile is the caller-owned per-driver fuel configuration. AverageMPG
// and FuelPricePerGallon, when positive, override the model entirely.
type FuelProfile struct {
	AverageMPG         float64  `json:"average_mpg,omitempty"`
	FuelPricePerGallon float64  `json:"fuel_price_per_gallon,omitempty"`
	FuelType           FuelType `json:"fuel_type,omitempty"`
	TankCapacityGal    float64  `json:"tank_capacity_gal,omitempty"`
}

// LoadInput is the engine-facing view of a marketplace load. Either
// DistanceMiles or an origin/dest ZIP pair should be resolvable; when neither
// is, downstream figures degrade to zero instead of erroring.
type LoadInput struct {
	DistanceMiles float64      `json:"distance_miles,omitempty"`
	OriginZip     string       `json:"origin_zip,omitempty"`
	OriginState   string       `json:"origin_state,omitempty"`
	DestZip       string       `json:"dest_zip,omitempty"`
	DestState     string       `json:"dest_state,omitempty"`
	VehicleClass  VehicleClass `json:"vehicle_class"`
	WeightLbs     float64      `json:"weight_lbs,omitempty"`
	Rate          float64      `json:"rate"`
}

const (
	EstimateMethodRemote = "remote"
	EstimateMethodLocal  = "local"
)

// FuelEstimate is the result of one fuel estimation. Method records which
// tier produced it and exists for diagnostics only; callers must treat local
// and remote results identically.
type FuelEstimate struct {
	Gallons           float64 `json:"gallons"`
	CostUSD           float64 `json:"cost_usd"`
	MPG               float64 `json:"mpg"`
	PricePerGallonUSD float64 `json:"price_per_gallon_usd"`
	Method            string  `json:"method"`
	RegionLabel       string  `json:"region_label,omitempty"`
}

// EarningsBreakdown is the per-load financial result. DistanceMiles is
// carried so monthly rollups can recompute averages from totals.
type EarningsBreakdown struct {
	GrossUSD        float64 `json:"gross_usd"`
	FuelCostUSD     float64 `json:"fuel_cost_usd"`
	PlatformFeeUSD  float64 `json:"platform_fee_usd"`
	NetUSD          float64 `json:"net_usd"`
	NetPerMileUSD   float64 `json:"net_per_mile_usd"`
	ProfitMarginPct float64 `json:"profit_margin_pct"`
	DistanceMiles   float64 `json:"distance_miles"`
}

// MonthlySummary aggregates breakdowns over a period. Averages and margin are
// recomputed from the summed totals, not averaged per load.
type MonthlySummary struct {
	Loads            int     `json:"loads"`
	GrossUSD         float64 `json:"gross_usd"`
	FuelCostUSD      float64 `json:"fuel_cost_usd"`
	PlatformFeeUSD   float64 `json:"platform_fee_usd"`
	NetUSD           float64 `json:"net_usd"`
	TotalMiles       float64 `json:"total_miles"`
	AvgNetPerMileUSD float64 `json:"avg_net_per_mile_usd"`
	ProfitMarginPct  float64 `json:"profit_margin_pct"`
}

// RemoteEstimateConfig points the fuel estimator at an optional remote
// pricing service. The engine never reads this from the environment itself;
// callers supply it per call.
type RemoteEstimateConfig struct {
	URL       string `json:"url"`
	APIKey    string `json:"api_key,omitempty"`
	TimeoutMs int    `json:"timeout_ms,omitempty"`
}
