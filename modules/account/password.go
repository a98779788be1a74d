package account

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrymomot/wordchain/pkg/secrets"
	"github.com/dmitrymomot/wordchain/pkg/session"
)

// SaltLength is the number of alphanumeric characters in a password salt.
const SaltLength = 32

const algorithmID = "argon2id"

// PasswordParams are the argon2id cost settings. They are stored with every
// digest, so raising them only affects new accounts.
type PasswordParams struct {
	Memory    uint32 // KiB
	Time      uint32
	Threads   uint8
	KeyLength uint32
}

// DefaultPasswordParams follow the OWASP argon2id baseline.
var DefaultPasswordParams = PasswordParams{
	Memory:    19 * 1024,
	Time:      2,
	Threads:   1,
	KeyLength: 32,
}

// HashPassword derives the stored digest from the salt column and the
// password with DefaultPasswordParams. The result has the form
// "$argon2id$v=19$m=<kib>,t=<time>,p=<threads>$<base64 key>".
func HashPassword(salt, password string) string {
	return hashPassword(salt, password, DefaultPasswordParams)
}

func hashPassword(salt, password string, p PasswordParams) string {
	key := argon2.IDKey([]byte(password), []byte(salt), p.Time, p.Memory, p.Threads, p.KeyLength)
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s",
		algorithmID, argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(key),
	)
}

// NewAccount validates the credentials and builds an account with a fresh
// salt.
func NewAccount(id, password string, maxIDLength int) (session.Account, error) {
	if !validID(id, maxIDLength) {
		return session.Account{}, ErrInvalidID
	}
	if password == "" {
		return session.Account{}, ErrEmptyPassword
	}

	salt, err := secrets.RandomAlphanumeric(SaltLength)
	if err != nil {
		return session.Account{}, err
	}

	return session.Account{
		ID:           id,
		PasswordSalt: salt,
		PasswordHash: HashPassword(salt, password),
	}, nil
}

// VerifyPassword recomputes the digest with the parameters stored in it and
// compares in constant time. An unparsable digest never matches.
func VerifyPassword(acc session.Account, password string) bool {
	p, key, ok := parseDigest(acc.PasswordHash)
	if !ok {
		return false
	}
	got := argon2.IDKey([]byte(password), []byte(acc.PasswordSalt), p.Time, p.Memory, p.Threads, p.KeyLength)
	return subtle.ConstantTimeCompare(got, key) == 1
}

func parseDigest(digest string) (PasswordParams, []byte, bool) {
	parts := strings.Split(digest, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != algorithmID {
		return PasswordParams{}, nil, false
	}
	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return PasswordParams{}, nil, false
	}

	var p PasswordParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return PasswordParams{}, nil, false
	}
	if p.Memory == 0 || p.Time == 0 || p.Threads == 0 {
		return PasswordParams{}, nil, false
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(key) == 0 {
		return PasswordParams{}, nil, false
	}
	p.KeyLength = uint32(len(key))

	return p, key, true
}

// validID accepts printable ASCII without '/' or ':' so an id fits in one
// path segment and in a Basic credential.
func validID(id string, maxLen int) bool {
	if id == "" || (maxLen > 0 && len(id) > maxLen) {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c <= ' ' || c > '~' || c == '/' || c == ':' {
			return false
		}
	}
	return true
}
