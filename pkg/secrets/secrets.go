package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"
)

const (
	// NonceSize is the GCM nonce length prepended to every blob.
	NonceSize = 12

	// KeySize is the AES-256 key length produced by DeriveKey.
	KeySize = 32
)

// Secret is the raw process-wide key material. It is loaded once at startup
// and passed explicitly to every component that encrypts or decrypts.
type Secret string

// DeriveKey hashes the secret with SHA3-256 so any secret length yields a
// valid AES-256 key.
func DeriveKey(secret Secret) []byte {
	sum := sha3.Sum256([]byte(secret))
	return sum[:]
}

// Encrypt seals plaintext under the secret and returns hex(nonce || ciphertext || tag).
func Encrypt(secret Secret, plaintext string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	aead, err := newAEAD(secret)
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt.
func Decrypt(secret Secret, blob string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if !isLowerHex(blob) {
		return "", ErrMalformedEncoding
	}

	raw, err := hex.DecodeString(blob)
	if err != nil || len(raw) < NonceSize {
		return "", ErrMalformedEncoding
	}

	aead, err := newAEAD(secret)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	nonce, ciphertext := raw[:NonceSize], raw[NonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// the cipher error is dropped on purpose
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

// GenerateSecret returns a random 32-byte secret in hex form.
func GenerateSecret() (Secret, error) {
	buf := make([]byte, KeySize)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return Secret(hex.EncodeToString(buf)), nil
}

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomAlphanumeric returns n characters drawn uniformly from [A-Za-z0-9]
// using crypto/rand.
func RandomAlphanumeric(n int) (string, error) {
	limit := big.NewInt(int64(len(alphanumeric)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = alphanumeric[idx.Int64()]
	}
	return string(buf), nil
}

func newAEAD(secret Secret) (cipher.AEAD, error) {
	block, err := aes.NewCipher(DeriveKey(secret))
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, NonceSize)
}

// isLowerHex accepts only the canonical encoding produced by Encrypt, so a
// case flip in transit cannot decode to the same bytes.
func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
