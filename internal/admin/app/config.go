package app

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	APIURL     string        `env:"TEAMDESK_API_URL"`                      // Required: base URL of the commerce admin API
	APIToken   string        `env:"TEAMDESK_API_TOKEN"`                    // Optional: bearer token for the admin API
	APITimeout time.Duration `env:"TEAMDESK_API_TIMEOUT" envDefault:"10s"` // Per-request timeout for admin API calls

	DatabaseFile string `env:"TEAMDESK_DATABASE_FILE" envDefault:"teamdesk.db"` // SQLite file holding the activity log

	// SessionSecret is the HS256 secret operator tokens are signed with.
	// Empty disables operator authentication; only do that behind a trusted proxy.
	SessionSecret string `env:"TEAMDESK_SESSION_SECRET"`
	SessionIssuer string `env:"TEAMDESK_SESSION_ISSUER"`

	RenderTimeout     time.Duration `env:"TEAMDESK_RENDER_TIMEOUT" envDefault:"3s"`       // How long a render waits for in-flight calls
	ViewIdleTTL       time.Duration `env:"TEAMDESK_VIEW_IDLE_TTL" envDefault:"30m"`       // Idle views are evicted after this
	ActivityRetention time.Duration `env:"TEAMDESK_ACTIVITY_RETENTION" envDefault:"720h"` // Activity older than this is purged
	PageSize          int           `env:"TEAMDESK_PAGE_SIZE" envDefault:"10"`

	OTelEndpoint string `env:"TEAMDESK_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"TEAMDESK_OTEL_ENABLED" envDefault:"false"`

	Env                  string        `env:"ENV" envDefault:"dev"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat            string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                 int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads the process environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("TEAMDESK_API_URL is required")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("TEAMDESK_API_URL must be an absolute URL, got %q", c.APIURL)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("TEAMDESK_PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	return nil
}

// AuthEnabled reports whether operator tokens are required.
func (c Config) AuthEnabled() bool { return c.SessionSecret != "" }
