package cookie

import "net/http"

// Config is the environment form of the manager defaults. SameSite takes
// the numeric http.SameSite value (2 is Lax). The zero value yields Secure
// cookies; Insecure exists for plain-HTTP development only.
type Config struct {
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN"`
	Insecure bool          `env:"COOKIE_INSECURE" envDefault:"false"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"`
}

func DefaultConfig() Config {
	return Config{
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}

// NewFromConfig builds a Manager from cfg. Empty Path, Domain and SameSite
// keep the New defaults.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	base := make([]Option, 0, 4+len(opts))
	if cfg.Path != "" {
		base = append(base, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		base = append(base, WithDomain(cfg.Domain))
	}
	if cfg.SameSite != 0 {
		base = append(base, WithSameSite(cfg.SameSite))
	}
	if cfg.Insecure {
		base = append(base, WithSecure(false))
	}

	return New(append(base, opts...)...)
}
