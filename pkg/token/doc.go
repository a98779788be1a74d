// Package token encodes the identity payload carried by session tokens.
//
// A token is the canonical JSON form of a Payload sealed by the secrets
// package, so the result is a single opaque lower-case hex string that can be
// used directly as a cookie value or as a bearer credential.
//
// Wire payload:
//
//	{"account_id":"alice","timestamp":1700000000,"nonce":"Zq3..."}
//
// The nonce only decorrelates tokens minted for the same subject in the same
// second. Legacy single tokens omit it and still decode.
//
// # Usage
//
//	p, err := token.New("alice", time.Now())
//	tok, err := token.Encode(secret, p)
//
//	p, err = token.Decode(secret, tok)
//	if errors.Is(err, token.ErrDecryptFailed) {
//	    // tampered, wrong key or garbage
//	}
//
// Decode returns ErrDecryptFailed when the blob does not authenticate and
// ErrMalformedPayload when it decrypts to something other than a Payload.
package token
