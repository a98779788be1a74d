package account

import (
	"time"

	"github.com/dmitrymomot/wordchain/pkg/ratelimiter"
)

type Config struct {
	// ResetOnShutdown drops the schema from the account node's Down hook.
	// Meant for throwaway environments.
	ResetOnShutdown bool `env:"ACCOUNT_RESET_ON_SHUTDOWN" envDefault:"false"`

	CacheTTL  time.Duration `env:"ACCOUNT_CACHE_TTL" envDefault:"5m"`
	CacheSize int           `env:"ACCOUNT_CACHE_SIZE" envDefault:"1024"`

	MaxIDLength int `env:"ACCOUNT_MAX_ID_LENGTH" envDefault:"64"`

	// Login attempts per client IP: a burst of LoginBurst, then one more
	// every LoginRefillInterval. Zero LoginBurst disables the limit.
	LoginBurst          int           `env:"ACCOUNT_LOGIN_BURST" envDefault:"10"`
	LoginRefillInterval time.Duration `env:"ACCOUNT_LOGIN_REFILL_INTERVAL" envDefault:"6s"`
}

// LoginLimit returns the login bucket settings and false when limiting is
// off.
func (c Config) LoginLimit() (ratelimiter.Config, bool) {
	if c.LoginBurst <= 0 || c.LoginRefillInterval <= 0 {
		return ratelimiter.Config{}, false
	}
	return ratelimiter.Config{
		Capacity:       c.LoginBurst,
		RefillRate:     1,
		RefillInterval: c.LoginRefillInterval,
	}, true
}

func DefaultConfig() Config {
	return Config{
		CacheTTL:    5 * time.Minute,
		CacheSize:   1024,
		MaxIDLength: 64,

		LoginBurst:          10,
		LoginRefillInterval: 6 * time.Second,
	}
}
