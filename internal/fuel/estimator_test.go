package fuel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loadhaul/internal/domain"
)

func texasLoad() domain.LoadInput {
	return domain.LoadInput{
		DistanceMiles: 100,
		OriginState:   "TX",
		DestState:     "TX",
		VehicleClass:  domain.VehicleTruck,
		WeightLbs:     5000,
		Rate:          1000,
	}
}

func TestEstimateRemoteSuccess(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var payload struct {
			Load domain.LoadInput `json:"load"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decoding remote payload: %v", err)
		}
		if payload.Load.DistanceMiles != 100 {
			t.Errorf("remote payload distance = %v, want 100", payload.Load.DistanceMiles)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"gallons":        40.0,
			"cost":           170.0,
			"mpg":            6.0,
			"pricePerGallon": 4.25,
			"regionLabel":    "EIA TX",
		})
	}))
	defer srv.Close()

	est := Estimator{}.Estimate(context.Background(), texasLoad(), nil, &domain.RemoteEstimateConfig{
		URL:    srv.URL,
		APIKey: "test-key",
	})

	if est.Method != domain.EstimateMethodRemote {
		t.Fatalf("method = %s, want remote", est.Method)
	}
	if est.Gallons != 40 || est.CostUSD != 170 || est.MPG != 6 || est.PricePerGallonUSD != 4.25 {
		t.Fatalf("unexpected remote estimate: %+v", est)
	}
	if est.RegionLabel != "EIA TX" {
		t.Fatalf("region label = %q", est.RegionLabel)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
}

func TestEstimateRemoteFailuresFallBackLocal(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "schema missing mpg",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"gallons":        40.0,
					"cost":           170.0,
					"pricePerGallon": 4.25,
				})
			},
		},
		{
			name: "negative figure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"gallons":        -1.0,
					"cost":           170.0,
					"mpg":            6.0,
					"pricePerGallon": 4.25,
				})
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>oops</html>"))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(test.handler)
			defer srv.Close()

			est := Estimator{}.Estimate(context.Background(), texasLoad(), nil, &domain.RemoteEstimateConfig{URL: srv.URL})
			assertLocalTexasEstimate(t, est)
		})
	}
}

func TestEstimateRemoteUnreachable(t *testing.T) {
	est := Estimator{}.Estimate(context.Background(), texasLoad(), nil, &domain.RemoteEstimateConfig{
		URL: "http://127.0.0.1:1/estimate",
	})
	assertLocalTexasEstimate(t, est)
}

func TestEstimateRemoteTimeoutBounded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	start := time.Now()
	est := Estimator{}.Estimate(context.Background(), texasLoad(), nil, &domain.RemoteEstimateConfig{
		URL:       srv.URL,
		TimeoutMs: 50,
	})
	elapsed := time.Since(start)

	assertLocalTexasEstimate(t, est)
	if elapsed > 2*time.Second {
		t.Fatalf("fallback took %v, timeout not enforced", elapsed)
	}
}

func TestEstimateLocal(t *testing.T) {
	est := Estimator{}.Estimate(context.Background(), texasLoad(), nil, nil)
	assertLocalTexasEstimate(t, est)
}

func TestEstimateLocalDriverOverrides(t *testing.T) {
	driver := &domain.FuelProfile{AverageMPG: 10, FuelPricePerGallon: 5}
	est := Estimator{}.Estimate(context.Background(), texasLoad(), driver, nil)

	if est.MPG != 10 {
		t.Fatalf("mpg = %v, want driver override 10", est.MPG)
	}
	if est.PricePerGallonUSD != 5 {
		t.Fatalf("price = %v, want driver override 5", est.PricePerGallonUSD)
	}
	if est.RegionLabel != "override" {
		t.Fatalf("label = %q, want override", est.RegionLabel)
	}
	if got, want := est.Gallons, 100.0/10.0; got != want {
		t.Fatalf("gallons = %v, want %v", got, want)
	}
}

func TestEstimateNoDistanceDegradesToZero(t *testing.T) {
	load := texasLoad()
	load.DistanceMiles = 0

	est := Estimator{}.Estimate(context.Background(), load, nil, nil)
	if est.Method != domain.EstimateMethodLocal {
		t.Fatalf("method = %s", est.Method)
	}
	if est.Gallons != 0 || est.CostUSD != 0 {
		t.Fatalf("expected zeroed figures, got %+v", est)
	}
	if est.MPG <= 0 || est.PricePerGallonUSD <= 0 {
		t.Fatalf("mpg/price should still be modeled, got %+v", est)
	}
}

func TestEstimateUnknownVehicleClass(t *testing.T) {
	load := texasLoad()
	load.VehicleClass = "hoverboard"

	est := Estimator{}.Estimate(context.Background(), load, nil, nil)
	assertLocalTexasEstimate(t, est)
}

func assertLocalTexasEstimate(t *testing.T, est domain.FuelEstimate) {
	t.Helper()
	if est.Method != domain.EstimateMethodLocal {
		t.Fatalf("method = %s, want local", est.Method)
	}
	// truck at 5000 lb: baseline 7.0, aero 1.00, weight factor 1.00
	if est.MPG != 7.0 {
		t.Fatalf("mpg = %v, want 7.0", est.MPG)
	}
	if est.PricePerGallonUSD != 4.25 {
		t.Fatalf("price = %v, want TX average 4.25", est.PricePerGallonUSD)
	}
	if est.RegionLabel != "EIA TX-TX" {
		t.Fatalf("label = %q, want EIA TX-TX", est.RegionLabel)
	}
	wantGallons := 100.0 / 7.0
	if diff := est.Gallons - wantGallons; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("gallons = %v, want %v", est.Gallons, wantGallons)
	}
	wantCost := wantGallons * 4.25
	if diff := est.CostUSD - wantCost; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("cost = %v, want %v", est.CostUSD, wantCost)
	}
}
