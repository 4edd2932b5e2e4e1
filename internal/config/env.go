package config

import (
	"os"
	"strconv"
	"strings"
)

// Env holds process configuration. The engine packages never read the
// environment themselves; everything flows from here through main.
type Env struct {
	AppAddr string
	GinMode string

	// Optional MySQL DSN. When empty the service runs without a database and
	// the static state fuel-price table is used as-is.
	DBDSN string

	GeocoderBaseURL string

	// Optional remote fuel-estimate service, passed per call into the
	// estimator.
	FuelAPIURL       string
	FuelAPIKey       string
	FuelAPITimeoutMs int

	// Auth: either a JWT verified against JWTSecret or an X-API-Key checked
	// against APIKeyHash (bcrypt). Both empty means the API is open.
	JWTSecret  string
	APIKeyHash string

	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	timeoutMs := 0
	if raw := strings.TrimSpace(os.Getenv("FUEL_API_TIMEOUT_MS")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			timeoutMs = v
		}
	}

	var origins []string
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:          appAddr,
		GinMode:          strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:            strings.TrimSpace(os.Getenv("DB_DSN")),
		GeocoderBaseURL:  strings.TrimSpace(os.Getenv("GEOCODER_BASE_URL")),
		FuelAPIURL:       strings.TrimSpace(os.Getenv("FUEL_API_URL")),
		FuelAPIKey:       strings.TrimSpace(os.Getenv("FUEL_API_KEY")),
		FuelAPITimeoutMs: timeoutMs,
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
		APIKeyHash:       strings.TrimSpace(os.Getenv("API_KEY_HASH")),
		CORSOrigins:      origins,
	}
}
