package fuel

import (
	"math"

	"loadhaul/internal/domain"
)

const (
	// Hard fallbacks used if even the truck row were missing from a table.
	fallbackMPG            = 8.0
	fallbackPricePerGallon = 4.10

	minMPG = 3.0
	maxMPG = 25.0
)

// Baseline efficiency and price tables keyed by vehicle class. Immutable
// after init; unknown classes read the truck row.
var baselineMPG = map[domain.VehicleClass]float64{
	domain.VehicleTruck:           7.0,
	domain.VehicleBoxTruck:        10.0,
	domain.VehicleCargoVan:        14.0,
	domain.VehicleTrailer:         6.5,
	domain.VehicleCarHauler:       8.5,
	domain.VehicleFlatbed:         6.8,
	domain.VehicleEnclosedTrailer: 9.0,
	domain.VehicleReefer:          6.0,
}

var basePricePerGallon = map[domain.VehicleClass]float64{
	domain.VehicleTruck:           4.25,
	domain.VehicleBoxTruck:        4.10,
	domain.VehicleCargoVan:        3.80,
	domain.VehicleTrailer:         4.30,
	domain.VehicleCarHauler:       4.20,
	domain.VehicleFlatbed:         4.25,
	domain.VehicleEnclosedTrailer: 4.15,
	domain.VehicleReefer:          4.35,
}

// aeroFactor scales baseline MPG per class. Reefer drags the most, cargo
// vans the least.
var aeroFactor = map[domain.VehicleClass]float64{
	domain.VehicleTruck:           1.00,
	domain.VehicleBoxTruck:        0.96,
	domain.VehicleCargoVan:        1.05,
	domain.VehicleTrailer:         0.95,
	domain.VehicleCarHauler:       0.97,
	domain.VehicleFlatbed:         0.93,
	domain.VehicleEnclosedTrailer: 0.94,
	domain.VehicleReefer:          0.90,
}

// weightFactor is a discrete step function over load weight with inclusive
// upper bounds: exactly 5000 lb still uses the 1.00 factor. Breakpoints are
// calibration constants carried over for behavioral parity.
func weightFactor(weightLbs float64) float64 {
	switch {
	case weightLbs <= 5000:
		return 1.00
	case weightLbs <= 10000:
		return 0.97
	case weightLbs <= 20000:
		return 0.94
	case weightLbs <= 30000:
		return 0.90
	case weightLbs <= 40000:
		return 0.86
	default:
		return 0.82
	}
}

// BaselineMPG returns the per-class baseline, falling back to the truck row
// for unknown classes.
func BaselineMPG(class domain.VehicleClass) float64 {
	if v, ok := baselineMPG[class]; ok {
		return v
	}
	if v, ok := baselineMPG[domain.VehicleTruck]; ok {
		return v
	}
	return fallbackMPG
}

// BasePricePerGallon returns the per-class default price, falling back to the
// truck row for unknown classes.
func BasePricePerGallon(class domain.VehicleClass) float64 {
	if v, ok := basePricePerGallon[class]; ok {
		return v
	}
	if v, ok := basePricePerGallon[domain.VehicleTruck]; ok {
		return v
	}
	return fallbackPricePerGallon
}

// AeroFactor returns the aerodynamic multiplier for a class, truck for
// unknown classes.
func AeroFactor(class domain.VehicleClass) float64 {
	if v, ok := aeroFactor[class]; ok {
		return v
	}
	return aeroFactor[domain.VehicleTruck]
}

// AdjustedMPG computes the weight- and class-adjusted efficiency figure. A
// positive overrideMPG is explicit caller intent and wins unchanged; the
// modeled value is clamped into [3,25] mpg.
func AdjustedMPG(class domain.VehicleClass, weightLbs, overrideMPG float64) float64 {
	if overrideMPG > 0 {
		return overrideMPG
	}

	mpg := BaselineMPG(class) * AeroFactor(class)
	if weightLbs > 0 {
		mpg *= weightFactor(weightLbs)
	}
	return math.Min(math.Max(mpg, minMPG), maxMPG)
}
