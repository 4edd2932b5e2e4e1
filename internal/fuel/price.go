package fuel

import (
	"fmt"
	"strings"

	"loadhaul/internal/domain"
)

// PriceQuote is a resolved price with the tier label that produced it.
type PriceQuote struct {
	Price float64 `json:"price"`
	Label string  `json:"label"`
}

// stateAvgDiesel holds per-state diesel averages (USD/gal), keyed by USPS
// code. Snapshot of published EIA-style state averages; the optional DB
// overlay replaces individual entries with fresher figures.
var stateAvgDiesel = map[string]float64{
	"AL": 4.05, "AK": 4.68, "AZ": 4.22, "AR": 3.98, "CA": 5.28,
	"CO": 4.12, "CT": 4.55, "DE": 4.18, "DC": 4.48, "FL": 4.15,
	"GA": 4.08, "HI": 5.10, "ID": 4.20, "IL": 4.25, "IN": 4.28,
	"IA": 4.02, "KS": 3.95, "KY": 4.18, "LA": 3.92, "ME": 4.42,
	"MD": 4.30, "MA": 4.50, "MI": 4.22, "MN": 4.08, "MS": 3.90,
	"MO": 3.92, "MT": 4.15, "NE": 4.00, "NV": 4.45, "NH": 4.35,
	"NJ": 4.32, "NM": 4.10, "NY": 4.58, "NC": 4.20, "ND": 4.05,
	"OH": 4.15, "OK": 3.88, "OR": 4.40, "PA": 4.45, "RI": 4.48,
	"SC": 4.02, "SD": 4.08, "TN": 4.05, "TX": 4.25, "UT": 4.18,
	"VT": 4.38, "VA": 4.22, "WA": 4.85, "WV": 4.28, "WI": 4.10,
	"WY": 4.12,
}

// stateNames maps upper-cased full names to USPS codes.
var stateNames = map[string]string{
	"ALABAMA": "AL", "ALASKA": "AK", "ARIZONA": "AZ", "ARKANSAS": "AR",
	"CALIFORNIA": "CA", "COLORADO": "CO", "CONNECTICUT": "CT",
	"DELAWARE": "DE", "DISTRICT OF COLUMBIA": "DC", "FLORIDA": "FL",
	"GEORGIA": "GA", "HAWAII": "HI", "IDAHO": "ID", "ILLINOIS": "IL",
	"INDIANA": "IN", "IOWA": "IA", "KANSAS": "KS", "KENTUCKY": "KY",
	"LOUISIANA": "LA", "MAINE": "ME", "MARYLAND": "MD",
	"MASSACHUSETTS": "MA", "MICHIGAN": "MI", "MINNESOTA": "MN",
	"MISSISSIPPI": "MS", "MISSOURI": "MO", "MONTANA": "MT",
	"NEBRASKA": "NE", "NEVADA": "NV", "NEW HAMPSHIRE": "NH",
	"NEW JERSEY": "NJ", "NEW MEXICO": "NM", "NEW YORK": "NY",
	"NORTH CAROLINA": "NC", "NORTH DAKOTA": "ND", "OHIO": "OH",
	"OKLAHOMA": "OK", "OREGON": "OR", "PENNSYLVANIA": "PA",
	"RHODE ISLAND": "RI", "SOUTH CAROLINA": "SC", "SOUTH DAKOTA": "SD",
	"TENNESSEE": "TN", "TEXAS": "TX", "UTAH": "UT", "VERMONT": "VT",
	"VIRGINIA": "VA", "WASHINGTON": "WA", "WEST VIRGINIA": "WV",
	"WISCONSIN": "WI", "WYOMING": "WY",
}

// NormalizeState maps raw input (code or full name, any case) to a USPS
// code. Returns "" when the input does not resolve; unknown codes never
// error, they just fall through to lower price tiers.
func NormalizeState(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if len(s) == 2 {
		if _, ok := stateAvgDiesel[s]; ok {
			return s
		}
		return ""
	}
	if code, ok := stateNames[s]; ok {
		return code
	}
	return ""
}

// PriceResolver resolves a fuel price per gallon through the tiered fallback
// chain: caller override, state blend, single state, class default. Overlay,
// when present, holds fresher per-state averages consulted before the static
// table.
type PriceResolver struct {
	Overlay map[string]float64
}

// Resolve returns the first price the tier chain produces, labeled with its
// source.
func (r PriceResolver) Resolve(class domain.VehicleClass, originState, destState string, override float64) PriceQuote {
	if override > 0 {
		return PriceQuote{Price: override, Label: "override"}
	}

	origin := NormalizeState(originState)
	dest := NormalizeState(destState)

	originPrice, originOK := r.stateAvg(origin)
	destPrice, destOK := r.stateAvg(dest)

	switch {
	case originOK && destOK:
		return PriceQuote{
			Price: (originPrice + destPrice) / 2,
			Label: fmt.Sprintf("EIA %s-%s", origin, dest),
		}
	case originOK:
		return PriceQuote{Price: originPrice, Label: "EIA " + origin}
	case destOK:
		return PriceQuote{Price: destPrice, Label: "EIA " + dest}
	}

	return PriceQuote{Price: BasePricePerGallon(class), Label: "Default"}
}

func (r PriceResolver) stateAvg(code string) (float64, bool) {
	if code == "" {
		return 0, false
	}
	if price, ok := r.Overlay[code]; ok && price > 0 {
		return price, true
	}
	price, ok := stateAvgDiesel[code]
	return price, ok
}
