package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/wordchain/pkg/cookie"
	"github.com/dmitrymomot/wordchain/pkg/logger"
	"github.com/dmitrymomot/wordchain/pkg/secrets"
	"github.com/dmitrymomot/wordchain/pkg/token"
)

// Identity is the outcome of a successful validation.
type Identity struct {
	Subject string
	// Rotated reports that a new token pair was written to the response.
	Rotated bool
}

// Pair is a freshly issued access/refresh token pair.
type Pair struct {
	Access   string
	Refresh  string
	IssuedAt time.Time
}

// Authenticator issues and validates session token pairs.
type Authenticator struct {
	secret   secrets.Secret
	accounts AccountLookup
	cookies  *cookie.Manager
	config   Config
	now      func() time.Time
	logger   *slog.Logger
}

// New creates an Authenticator. The secret and account lookup are required.
func New(secret secrets.Secret, accounts AccountLookup, opts ...Option) (*Authenticator, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if accounts == nil {
		return nil, ErrNoAccountLookup
	}

	a := &Authenticator{
		secret:   secret,
		accounts: accounts,
		config:   DefaultConfig(),
		now:      time.Now,
		logger:   logger.Discard(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.cookies == nil {
		a.cookies = cookie.New()
	}

	return a, nil
}

// NewFromConfig creates an Authenticator from the provided Config.
func NewFromConfig(cfg Config, secret secrets.Secret, accounts AccountLookup, opts ...Option) (*Authenticator, error) {
	return New(secret, accounts, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Config returns the effective configuration.
func (a *Authenticator) Config() Config {
	return a.config
}

// Issue mints a new pair for subject and sets both cookies on w.
func (a *Authenticator) Issue(w http.ResponseWriter, subject string) (Pair, error) {
	pair, err := a.mint(subject)
	if err != nil {
		return Pair{}, err
	}

	maxAge := cookie.WithMaxAge(int(a.config.RefreshTTL.Seconds()))
	if err := a.cookies.Set(w, a.config.AccessCookie, pair.Access, maxAge); err != nil {
		return Pair{}, err
	}
	if err := a.cookies.Set(w, a.config.RefreshCookie, pair.Refresh, maxAge); err != nil {
		return Pair{}, err
	}

	return pair, nil
}

// Clear expires both token cookies. Tokens already handed out stay valid
// until they expire.
func (a *Authenticator) Clear(w http.ResponseWriter) {
	a.cookies.Delete(w, a.config.AccessCookie)
	a.cookies.Delete(w, a.config.RefreshCookie)
}

// Validate resolves the identity carried by the request cookies, rotating the
// pair when the access token is stale and the refresh token still holds.
func (a *Authenticator) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) (Identity, error) {
	rawAccess, err := a.cookies.Get(r, a.config.AccessCookie)
	if err != nil {
		return Identity{}, unauthorized(ErrMissingCredential, "missing "+a.config.AccessCookie)
	}

	access, err := token.Decode(a.secret, rawAccess)
	if err != nil {
		return Identity{}, unauthorized(ErrMalformedCredential, a.config.AccessCookie)
	}

	now := a.now()
	rawRefresh, refreshErr := a.cookies.Get(r, a.config.RefreshCookie)

	if access.Age(now) <= a.config.AccessTTL {
		// a stray refresh cookie for someone else is still a mismatch
		if refreshErr == nil {
			if refresh, err := token.Decode(a.secret, rawRefresh); err == nil && refresh.Subject != access.Subject {
				return Identity{}, unauthorized(ErrSubjectMismatch, "")
			}
		}
		return Identity{Subject: access.Subject}, nil
	}

	if refreshErr != nil {
		return Identity{}, unauthorized(ErrMissingCredential, "missing "+a.config.RefreshCookie)
	}
	refresh, err := token.Decode(a.secret, rawRefresh)
	if err != nil {
		return Identity{}, unauthorized(ErrMalformedCredential, a.config.RefreshCookie)
	}
	if refresh.Subject != access.Subject {
		return Identity{}, unauthorized(ErrSubjectMismatch, "")
	}
	if refresh.Age(now) > a.config.RefreshTTL {
		return Identity{}, unauthorized(ErrExpired, a.config.RefreshCookie)
	}

	account, err := a.accounts.Lookup(ctx, access.Subject)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return Identity{}, unauthorized(ErrUnknownAccount, "")
		}
		return Identity{}, fmt.Errorf("session: account lookup: %w", err)
	}
	if account.ID != access.Subject {
		return Identity{}, unauthorized(ErrUnknownAccount, "")
	}

	// TODO: single-use refresh tokens need a revocation record keyed by the
	// refresh nonce; until then the consumed token stays valid.
	if _, err := a.Issue(w, account.ID); err != nil {
		return Identity{}, fmt.Errorf("session: rotate: %w", err)
	}

	a.logger.DebugContext(ctx, "session rotated",
		logger.Subject(account.ID),
		logger.Duration(access.Age(now)),
	)

	return Identity{Subject: account.ID, Rotated: true}, nil
}

func (a *Authenticator) mint(subject string) (Pair, error) {
	now := a.now()

	accessPayload, err := token.New(subject, now)
	if err != nil {
		return Pair{}, err
	}
	refreshPayload, err := token.New(subject, now)
	if err != nil {
		return Pair{}, err
	}

	access, err := token.Encode(a.secret, accessPayload)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := token.Encode(a.secret, refreshPayload)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Access: access, Refresh: refresh, IssuedAt: time.Unix(now.Unix(), 0)}, nil
}
