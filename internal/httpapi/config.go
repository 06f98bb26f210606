package httpapi

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the server configuration, read from environment variables
// with defaults for unset values.
type Config struct {
	// Addr is the listen address.
	Addr string

	// BankPath locates the question bank document.
	BankPath string

	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string

	// RateLimit is the per-IP request budget per minute. Zero disables
	// rate limiting.
	RateLimit int

	// LocateEndpoint is an optional coarse-geolocation endpoint queried
	// when a certificate is issued without client-supplied environment
	// details. Empty disables the lookup.
	LocateEndpoint string

	// CertTitle overrides the certificate title. Empty uses the default.
	CertTitle string
}

// DefaultConfig returns the development defaults.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		BankPath:       "bank.json",
		AllowedOrigins: []string{"http://localhost:5173"},
		RateLimit:      60,
	}
}

// ConfigFromEnv builds a Config from QUIZCERT_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("QUIZCERT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("QUIZCERT_BANK"); v != "" {
		cfg.BankPath = v
	}
	if v := os.Getenv("QUIZCERT_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	if v := os.Getenv("QUIZCERT_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RateLimit = n
		}
	}
	if v := os.Getenv("QUIZCERT_LOCATE_ENDPOINT"); v != "" {
		cfg.LocateEndpoint = v
	}
	if v := os.Getenv("QUIZCERT_CERT_TITLE"); v != "" {
		cfg.CertTitle = v
	}

	return cfg
}
