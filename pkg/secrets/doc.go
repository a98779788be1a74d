// Package secrets provides the symmetric authenticated encryption used to
// protect session tokens.
//
// A single process-wide Secret of arbitrary length is turned into an AES-256
// key by taking its SHA3-256 digest. Every call to Encrypt draws a fresh
// 96-bit nonce from crypto/rand, seals the plaintext with AES-256-GCM without
// additional authenticated data and returns the lower-case hex encoding of
// nonce || ciphertext || tag.
//
// # Usage
//
//	import "github.com/dmitrymomot/wordchain/pkg/secrets"
//
//	secret := secrets.Secret(os.Getenv("APP_SECRET"))
//
//	blob, err := secrets.Encrypt(secret, `{"account_id":"alice"}`)
//	if err != nil {
//	    // handle error
//	}
//
//	plain, err := secrets.Decrypt(secret, blob)
//	if err != nil {
//	    // ErrMalformedEncoding or ErrAuthenticationFailed
//	}
//
// # Error Handling
//
// Decrypt fails with ErrMalformedEncoding when the blob is not canonical hex
// or is shorter than a nonce, and with ErrAuthenticationFailed when the GCM
// tag does not verify. The second case covers tampering and a wrong key alike
// and carries no detail from the cipher, so callers cannot be used as a
// decryption oracle.
package secrets
