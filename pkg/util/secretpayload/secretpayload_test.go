package secretpayload

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	for _, tt := range []struct {
		name string
		raw  string
		want Payload
	}{
		{
			name: "base64",
			raw:  "eyJnZW5lcmF0aW9uIjoxfQ==",
			want: Payload{WasEncoded: true, Plaintext: []byte(`{"generation":1}`)},
		},
		{
			name: "plain json",
			raw:  `{"generation":1}`,
			want: Payload{Plaintext: []byte(`{"generation":1}`)},
		},
		{
			name: "truncated base64",
			raw:  "eyJnZW5lcmF0aW9uIjoxfQ=",
			want: Payload{Plaintext: []byte("eyJnZW5lcmF0aW9uIjoxfQ=")},
		},
		{
			name: "empty",
			raw:  "",
			want: Payload{Plaintext: []byte("")},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode([]byte(tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeMirrorsDecode(t *testing.T) {
	for _, raw := range []string{
		"eyJnZW5lcmF0aW9uIjoxfQ==",
		`{"generation":1}`,
	} {
		t.Run(raw, func(t *testing.T) {
			p := Decode([]byte(raw))
			assert.Equal(t, raw, string(p.Encode()))

			updated := p.With([]byte(`{"generation":2}`))
			assert.Equal(t, p.WasEncoded, updated.WasEncoded)
			assert.Equal(t, updated.Plaintext, Decode(updated.Encode()).Plaintext)
		})
	}
}
