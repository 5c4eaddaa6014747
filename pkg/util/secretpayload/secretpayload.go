package secretpayload

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/base64"
)

// Payload is a secret value that may or may not have been base64 encoded a
// second time by its writer. Whatever was found on Decode is reproduced by
// Encode.
type Payload struct {
	WasEncoded bool
	Plaintext  []byte
}

// Decode interprets raw as standard base64 if it decodes cleanly, and as
// plaintext otherwise.
func Decode(raw []byte) Payload {
	b := make([]byte, base64.StdEncoding.DecodedLen(len(raw)))
	n, err := base64.StdEncoding.Decode(b, raw)
	if err != nil || len(raw) == 0 {
		return Payload{Plaintext: raw}
	}

	return Payload{WasEncoded: true, Plaintext: b[:n]}
}

// With returns a payload carrying plaintext with the same encoding as p.
func (p Payload) With(plaintext []byte) Payload {
	return Payload{WasEncoded: p.WasEncoded, Plaintext: plaintext}
}

// Encode returns the bytes to store back into the secret.
func (p Payload) Encode() []byte {
	if !p.WasEncoded {
		return p.Plaintext
	}

	b := make([]byte, base64.StdEncoding.EncodedLen(len(p.Plaintext)))
	base64.StdEncoding.Encode(b, p.Plaintext)
	return b
}
