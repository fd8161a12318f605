package app

import (
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"turak/internal/domain"
)

// defaultBaseURL is the public backend origin; override with TURAK_API_URL
// for staging or local development.
const defaultBaseURL = "https://api.turak.kg"

// Config holds runtime wiring options for building the client.
type Config struct {
	BaseURL        string       // backend origin, e.g. https://api.turak.kg
	Home           string       // config directory, e.g. $HOME/.turak
	Passphrase     string       // optional; encrypts the token file at rest
	RequestsPerSec float64      // optional client-side throttle; 0 disables
	HTTP           *http.Client // optional; defaults to http.DefaultClient

	// Notifier for action outcomes; defaults to an in-memory feed.
	Notifier domain.Notifier
}

// FromEnv loads Config from a .env file (when present) and the process
// environment.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:    getEnv("TURAK_API_URL", defaultBaseURL),
		Home:       os.Getenv("TURAK_HOME"),
		Passphrase: os.Getenv("TURAK_PASSPHRASE"),
	}
	if rps, err := strconv.ParseFloat(os.Getenv("TURAK_RPS"), 64); err == nil {
		cfg.RequestsPerSec = rps
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
