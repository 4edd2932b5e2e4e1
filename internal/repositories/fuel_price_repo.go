package repositories

import (
	"context"
	"database/sql"
	"strings"
)

// StatePriceRepository reads current per-state diesel averages from the
// optional `state_fuel_prices` table. Rows overlay the static in-process
// table; a missing or failing database just means the overlay stays empty.
type StatePriceRepository struct {
	DB *sql.DB
}

// StateAverages returns a USPS-code keyed price map. Rows with malformed
// codes or non-positive prices are skipped rather than failing the load.
func (r StatePriceRepository) StateAverages(ctx context.Context) (map[string]float64, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT state_code, price_per_gallon
        FROM state_fuel_prices
        WHERE fuel_type = 'diesel'
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]float64{}
	for rows.Next() {
		var (
			code  string
			price float64
		)
		if err := rows.Scan(&code, &price); err != nil {
			return nil, err
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 2 || price <= 0 {
			continue
		}
		out[code] = price
	}
	return out, rows.Err()
}
