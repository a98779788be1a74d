package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/dmitrymomot/wordchain/pkg/secrets"
)

// Encode serializes the payload and seals it under secret.
func Encode(secret secrets.Secret, p Payload) (string, error) {
	if p.Subject == "" {
		return "", ErrEmptySubject
	}
	if err := p.validate(); err != nil {
		return "", err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	return secrets.Encrypt(secret, string(data))
}

// Decode opens tok and parses the payload. Crypto failures are wrapped in
// ErrDecryptFailed; HTTP callers must not surface which one occurred.
func Decode(secret secrets.Secret, tok string) (Payload, error) {
	plain, err := secrets.Decrypt(secret, tok)
	if err != nil {
		if errors.Is(err, secrets.ErrEmptySecret) {
			return Payload{}, err
		}
		return Payload{}, errors.Join(ErrDecryptFailed, err)
	}

	return parse([]byte(plain))
}

func parse(data []byte) (Payload, error) {
	var p Payload

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Payload{}, errors.Join(ErrMalformedPayload, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Payload{}, ErrMalformedPayload
	}

	if err := p.validate(); err != nil {
		return Payload{}, err
	}

	return p, nil
}

// validate holds the rules shared by Encode and Decode, so every payload
// that encodes also decodes unchanged. JSON replaces invalid UTF-8 with
// U+FFFD, hence the encoding check.
func (p Payload) validate() error {
	if p.Subject == "" || p.IssuedAt <= 0 {
		return ErrMalformedPayload
	}
	if !utf8.ValidString(p.Subject) || !utf8.ValidString(p.Nonce) {
		return ErrMalformedPayload
	}
	return nil
}
