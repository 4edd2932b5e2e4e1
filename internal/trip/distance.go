package trip

import (
	"math"

	"loadhaul/internal/domain"
)

const (
	earthRadiusMiles = 3958.7613

	// CircuityFactor approximates drivable road miles from straight-line
	// distance. Calibration constant, not derived per route; the estimation
	// error it introduces is expected.
	CircuityFactor = 1.15

	// DefaultAvgSpeedMph is used when a vehicle class has no entry.
	DefaultAvgSpeedMph = 55.0

	minAvgSpeedMph = 30.0
	maxAvgSpeedMph = 70.0
)

var avgSpeedMph = map[domain.VehicleClass]float64{
	domain.VehicleTruck:           55,
	domain.VehicleBoxTruck:        58,
	domain.VehicleCargoVan:        62,
	domain.VehicleTrailer:         52,
	domain.VehicleCarHauler:       53,
	domain.VehicleFlatbed:         54,
	domain.VehicleEnclosedTrailer: 55,
	domain.VehicleReefer:          52,
}

// Haversine returns the great-circle distance between two points in statute
// miles.
func Haversine(from, to domain.GeoPoint) float64 {
	deltaLat := (to.Latitude - from.Latitude) * (math.Pi / 180)
	deltaLon := (to.Longitude - from.Longitude) * (math.Pi / 180)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(from.Latitude*(math.Pi/180))*math.Cos(to.Latitude*(math.Pi/180))*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// EstimateMiles approximates drivable miles between two resolved points.
// Identical points yield exactly 0.
func EstimateMiles(origin, dest domain.GeoPoint) float64 {
	if origin == dest {
		return 0
	}
	return Haversine(origin, dest) * CircuityFactor
}

// AvgSpeed returns the assumed average speed for a vehicle class, clamped to
// [30,70] mph. Unknown classes get the default.
func AvgSpeed(class domain.VehicleClass) float64 {
	mph, ok := avgSpeedMph[class]
	if !ok {
		mph = DefaultAvgSpeedMph
	}
	return math.Min(math.Max(mph, minAvgSpeedMph), maxAvgSpeedMph)
}

// DurationHours divides miles by the given average speed. Non-positive speed
// falls back to the default.
func DurationHours(miles, mph float64) float64 {
	if miles <= 0 {
		return 0
	}
	if mph <= 0 {
		mph = DefaultAvgSpeedMph
	}
	return miles / mph
}

// Arrival adds a duration in hours to a departure epoch in milliseconds.
func Arrival(departAtMs int64, durationHours float64) int64 {
	return departAtMs + int64(durationHours*3600*1000)
}
