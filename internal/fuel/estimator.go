package fuel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"loadhaul/internal/domain"
	"loadhaul/internal/utils"
)

// DefaultRemoteTimeout bounds the remote estimate call when the caller does
// not set one. Cancellation goes through the request context, not a
// client-side race, so a hung endpoint cannot stall the caller.
const DefaultRemoteTimeout = 5000 * time.Millisecond

// Estimator produces fuel estimates, preferring a remote pricing service and
// falling back to the local model on any failure. The fallback never
// surfaces remote errors to the caller.
type Estimator struct {
	Prices    PriceResolver
	Client    *http.Client
	RequestID string
}

type remotePayload struct {
	Load   domain.LoadInput    `json:"load"`
	Driver *domain.FuelProfile `json:"driver,omitempty"`
}

// remoteResponse uses pointers so missing fields fail schema validation
// instead of silently reading as zero.
type remoteResponse struct {
	Gallons        *float64 `json:"gallons"`
	Cost           *float64 `json:"cost"`
	MPG            *float64 `json:"mpg"`
	PricePerGallon *float64 `json:"pricePerGallon"`
	RegionLabel    string   `json:"regionLabel"`
}

// Estimate returns a FuelEstimate for the load. It never returns an error: a
// load whose distance cannot be determined yields a zeroed local estimate,
// and every remote failure mode (network error, non-2xx, timeout, schema
// mismatch) logs and falls through to the local computation.
func (e Estimator) Estimate(ctx context.Context, load domain.LoadInput, driver *domain.FuelProfile, remote *domain.RemoteEstimateConfig) domain.FuelEstimate {
	if remote != nil && remote.URL != "" {
		est, err := e.remoteEstimate(ctx, load, driver, remote)
		if err == nil {
			return est
		}
		utils.LogEvent(e.RequestID, "fuel", "remote_fallback", err.Error())
	}

	return e.localEstimate(load, driver)
}

func (e Estimator) remoteEstimate(ctx context.Context, load domain.LoadInput, driver *domain.FuelProfile, remote *domain.RemoteEstimateConfig) (domain.FuelEstimate, error) {
	timeout := DefaultRemoteTimeout
	if remote.TimeoutMs > 0 {
		timeout = time.Duration(remote.TimeoutMs) * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(remotePayload{Load: load, Driver: driver})
	if err != nil {
		return domain.FuelEstimate{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, remote.URL, bytes.NewReader(body))
	if err != nil {
		return domain.FuelEstimate{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if remote.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+remote.APIKey)
	}

	resp, err := e.client().Do(req)
	if err != nil {
		return domain.FuelEstimate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.FuelEstimate{}, fmt.Errorf("remote estimate returned status %d", resp.StatusCode)
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.FuelEstimate{}, fmt.Errorf("remote estimate payload: %w", err)
	}
	if err := out.validate(); err != nil {
		return domain.FuelEstimate{}, err
	}

	return domain.FuelEstimate{
		Gallons:           *out.Gallons,
		CostUSD:           *out.Cost,
		MPG:               *out.MPG,
		PricePerGallonUSD: *out.PricePerGallon,
		Method:            domain.EstimateMethodRemote,
		RegionLabel:       out.RegionLabel,
	}, nil
}

func (r remoteResponse) validate() error {
	fields := map[string]*float64{
		"gallons":        r.Gallons,
		"cost":           r.Cost,
		"mpg":            r.MPG,
		"pricePerGallon": r.PricePerGallon,
	}
	for name, v := range fields {
		if v == nil {
			return fmt.Errorf("remote estimate missing %s", name)
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
			return fmt.Errorf("remote estimate has invalid %s", name)
		}
	}
	return nil
}

func (e Estimator) localEstimate(load domain.LoadInput, driver *domain.FuelProfile) domain.FuelEstimate {
	var overrideMPG, overridePrice float64
	if driver != nil {
		overrideMPG = driver.AverageMPG
		overridePrice = driver.FuelPricePerGallon
	}

	class := domain.NormalizeVehicleClass(string(load.VehicleClass))
	mpg := AdjustedMPG(class, load.WeightLbs, overrideMPG)
	quote := e.Prices.Resolve(class, load.OriginState, load.DestState, overridePrice)

	distance := load.DistanceMiles
	if distance < 0 {
		distance = 0
	}

	gallons := distance / math.Max(mpg, 1)
	return domain.FuelEstimate{
		Gallons:           gallons,
		CostUSD:           gallons * quote.Price,
		MPG:               mpg,
		PricePerGallonUSD: quote.Price,
		Method:            domain.EstimateMethodLocal,
		RegionLabel:       quote.Label,
	}
}

func (e Estimator) client() *http.Client {
	if e.Client != nil {
		return e.Client
	}
	return http.DefaultClient
}
