package session

import "context"

// Account is the part of a stored account the session core reads.
type Account struct {
	ID           string
	PasswordSalt string
	PasswordHash string
}

// AccountLookup resolves an account by id. A miss returns ErrAccountNotFound.
type AccountLookup interface {
	Lookup(ctx context.Context, id string) (Account, error)
}

// AccountLookupFunc adapts a function to AccountLookup.
type AccountLookupFunc func(ctx context.Context, id string) (Account, error)

func (f AccountLookupFunc) Lookup(ctx context.Context, id string) (Account, error) {
	return f(ctx, id)
}
