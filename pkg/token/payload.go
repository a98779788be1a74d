package token

import (
	"time"

	"github.com/dmitrymomot/wordchain/pkg/secrets"
)

// NonceLength is the number of alphanumeric characters in a payload nonce.
const NonceLength = 32

// Payload is the identity sealed inside every token.
type Payload struct {
	Subject  string `json:"account_id"`
	IssuedAt int64  `json:"timestamp"`
	Nonce    string `json:"nonce,omitempty"`
}

// New builds a payload for subject issued at now with a random nonce.
func New(subject string, now time.Time) (Payload, error) {
	if subject == "" {
		return Payload{}, ErrEmptySubject
	}

	nonce, err := secrets.RandomAlphanumeric(NonceLength)
	if err != nil {
		return Payload{}, err
	}

	return Payload{
		Subject:  subject,
		IssuedAt: now.Unix(),
		Nonce:    nonce,
	}, nil
}

// Age returns how long ago the payload was issued relative to now.
func (p Payload) Age(now time.Time) time.Duration {
	return now.Sub(time.Unix(p.IssuedAt, 0))
}
