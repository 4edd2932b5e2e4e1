package fuel

import (
	"testing"

	"loadhaul/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAdjustedMPG(t *testing.T) {
	tests := []struct {
		name      string
		class     domain.VehicleClass
		weightLbs float64
		override  float64
		want      float64
	}{
		{name: "override wins unchanged", class: domain.VehicleTruck, weightLbs: 50000, override: 9.5, want: 9.5},
		{name: "truck unloaded", class: domain.VehicleTruck, weightLbs: 0, want: 7.0},
		{name: "exactly 5000 lb keeps 1.00 factor", class: domain.VehicleTruck, weightLbs: 5000, want: 7.0},
		{name: "5001 lb drops to 0.97", class: domain.VehicleTruck, weightLbs: 5001, want: 7.0 * 0.97},
		{name: "35000 lb uses 0.86", class: domain.VehicleTruck, weightLbs: 35000, want: 7.0 * 0.86},
		{name: "over 40000 lb uses 0.82", class: domain.VehicleTruck, weightLbs: 45000, want: 7.0 * 0.82},
		{name: "reefer carries lowest aero factor", class: domain.VehicleReefer, weightLbs: 0, want: 6.0 * 0.90},
		{name: "cargo van highest aero factor", class: domain.VehicleCargoVan, weightLbs: 0, want: 14.0 * 1.05},
		{name: "unknown class reads truck row", class: "spaceship", weightLbs: 5000, want: 7.0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := AdjustedMPG(test.class, test.weightLbs, test.override)
			assert.InDelta(t, test.want, got, 1e-9)
		})
	}
}

func TestAdjustedMPGMonotonicInWeight(t *testing.T) {
	weights := []float64{0, 1000, 5000, 5001, 10000, 15000, 20000, 25000, 30000, 35000, 40000, 60000}
	classes := []domain.VehicleClass{
		domain.VehicleTruck, domain.VehicleBoxTruck, domain.VehicleCargoVan,
		domain.VehicleTrailer, domain.VehicleCarHauler, domain.VehicleFlatbed,
		domain.VehicleEnclosedTrailer, domain.VehicleReefer,
	}

	for _, class := range classes {
		prev := AdjustedMPG(class, weights[0], 0)
		for _, w := range weights[1:] {
			got := AdjustedMPG(class, w, 0)
			assert.LessOrEqual(t, got, prev, "class %s weight %.0f", class, w)
			prev = got
		}
	}
}

func TestAdjustedMPGClamped(t *testing.T) {
	classes := []domain.VehicleClass{
		domain.VehicleTruck, domain.VehicleBoxTruck, domain.VehicleCargoVan,
		domain.VehicleTrailer, domain.VehicleCarHauler, domain.VehicleFlatbed,
		domain.VehicleEnclosedTrailer, domain.VehicleReefer, "unknown",
	}
	weights := []float64{-100, 0, 5000, 80000, 1e9}

	for _, class := range classes {
		for _, w := range weights {
			got := AdjustedMPG(class, w, 0)
			assert.GreaterOrEqual(t, got, 3.0, "class %s weight %.0f", class, w)
			assert.LessOrEqual(t, got, 25.0, "class %s weight %.0f", class, w)
		}
	}
}

func TestBasePricePerGallon(t *testing.T) {
	assert.Equal(t, 4.25, BasePricePerGallon(domain.VehicleTruck))
	assert.Equal(t, 4.25, BasePricePerGallon("unknown"))
	assert.Equal(t, 4.35, BasePricePerGallon(domain.VehicleReefer))
}
