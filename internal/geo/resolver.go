package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"loadhaul/internal/domain"
	"loadhaul/internal/utils"
)

// DefaultBaseURL is the zippopotam-style geocoding endpoint used when the
// resolver is constructed without one.
const DefaultBaseURL = "https://api.zippopotam.us"

var zipPattern = regexp.MustCompile(`^[0-9]{5}$`)

// Resolver turns US ZIP codes into coordinates. Successful lookups are cached
// for the process lifetime; entries are immutable facts, so no eviction.
type Resolver struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	cache map[string]domain.GeoPoint
}

// NewResolver builds a Resolver. Empty baseURL falls back to DefaultBaseURL,
// nil client gets a 10s-timeout default.
func NewResolver(baseURL string, client *http.Client) *Resolver {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Resolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		cache:   map[string]domain.GeoPoint{},
	}
}

type geocodePayload struct {
	Places []struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"places"`
}

// Resolve maps a 5-digit ZIP to a GeoPoint. One outbound call per cache miss.
func (r *Resolver) Resolve(ctx context.Context, zip string) (domain.GeoPoint, error) {
	zip = strings.TrimSpace(zip)
	if !zipPattern.MatchString(zip) {
		return domain.GeoPoint{}, domain.InvalidZipError{Zip: zip}
	}

	r.mu.RLock()
	cached, ok := r.cache[zip]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	point, err := r.lookup(ctx, zip)
	if err != nil {
		return domain.GeoPoint{}, err
	}

	r.mu.Lock()
	r.cache[zip] = point
	r.mu.Unlock()

	return point, nil
}

func (r *Resolver) lookup(ctx context.Context, zip string) (domain.GeoPoint, error) {
	url := r.baseURL + "/us/" + zip
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.GeoPoint{}, domain.GeocodeUnavailableError{Zip: zip, Err: err}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return domain.GeoPoint{}, domain.GeocodeUnavailableError{Zip: zip, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		utils.LogEvent("", "geo", "lookup", fmt.Sprintf("zip=%s status=%d", zip, resp.StatusCode))
		return domain.GeoPoint{}, domain.GeocodeUnavailableError{
			Zip: zip,
			Err: fmt.Errorf("geocoder returned status %d", resp.StatusCode),
		}
	}

	var payload geocodePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.GeoPoint{}, domain.GeocodeUnavailableError{Zip: zip, Err: err}
	}
	if len(payload.Places) == 0 {
		return domain.GeoPoint{}, domain.GeocodeUnavailableError{
			Zip: zip,
			Err: fmt.Errorf("geocoder payload has no places"),
		}
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(payload.Places[0].Latitude), 64)
	if err != nil {
		return domain.GeoPoint{}, domain.GeocodeUnavailableError{Zip: zip, Err: err}
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(payload.Places[0].Longitude), 64)
	if err != nil {
		return domain.GeoPoint{}, domain.GeocodeUnavailableError{Zip: zip, Err: err}
	}

	point := domain.GeoPoint{Latitude: lat, Longitude: lng}
	if !point.Valid() {
		return domain.GeoPoint{}, domain.GeocodeUnavailableError{
			Zip: zip,
			Err: fmt.Errorf("geocoder coordinates out of range: %f,%f", lat, lng),
		}
	}

	return point, nil
}

// CacheSize reports the number of resolved entries, for health reporting.
func (r *Resolver) CacheSize() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}
