package zarf

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/secretpayload"
)

var ErrMalformedPackage = errors.New("malformed deployed package")

const componentWebhooksField = "componentWebhooks"

// Document is a deployed package decoded from a package secret. Marshal only
// rewrites the webhook records changed since parsing; every other field zarf
// stored, other webhook records included, is written back as it was read, in
// the encoding it was read in.
type Document struct {
	DeployedPackage

	payload secretpayload.Payload
	fields  map[string]json.RawMessage

	// webhooks holds componentWebhooks as read, one raw record per webhook.
	webhooks map[string]map[string]json.RawMessage
	// parsed holds the typed value of each record in webhooks.
	parsed map[string]map[string]Webhook
}

// ParseDocument decodes the value of a package secret's data key.
func ParseDocument(raw []byte) (*Document, error) {
	d := &Document{
		payload: secretpayload.Decode(raw),
	}

	err := json.Unmarshal(d.payload.Plaintext, &d.fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPackage, err)
	}

	err = json.Unmarshal(d.payload.Plaintext, &d.DeployedPackage)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPackage, err)
	}

	if raw, ok := d.fields[componentWebhooksField]; ok {
		err = json.Unmarshal(raw, &d.webhooks)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPackage, err)
		}
	}

	d.parsed = map[string]map[string]Webhook{}
	for component, records := range d.ComponentWebhooks {
		d.parsed[component] = map[string]Webhook{}
		for name, wh := range records {
			if wh != nil {
				d.parsed[component][name] = *wh
			}
		}
	}

	return d, nil
}

// WasEncoded reports whether the payload was base64 encoded inside the secret.
func (d *Document) WasEncoded() bool {
	return d.payload.WasEncoded
}

// Marshal returns the bytes to store back under the package secret's data key.
func (d *Document) Marshal() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(d.fields)+1)
	for k, v := range d.fields {
		fields[k] = v
	}

	webhooks, changed, err := d.spliceWebhooks()
	if err != nil {
		return nil, err
	}

	if changed {
		b, err := json.Marshal(webhooks)
		if err != nil {
			return nil, err
		}
		fields[componentWebhooksField] = b
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	return d.payload.With(b).Encode(), nil
}

// spliceWebhooks overlays the records that differ from what was parsed onto
// the raw componentWebhooks. Untouched records keep their raw bytes.
func (d *Document) spliceWebhooks() (map[string]map[string]json.RawMessage, bool, error) {
	webhooks := make(map[string]map[string]json.RawMessage, len(d.webhooks))
	for component, records := range d.webhooks {
		webhooks[component] = make(map[string]json.RawMessage, len(records))
		for name, raw := range records {
			webhooks[component][name] = raw
		}
	}

	var changed bool
	for component, records := range d.ComponentWebhooks {
		for name, wh := range records {
			if wh == nil {
				continue
			}

			if old, ok := d.parsed[component][name]; ok && old == *wh {
				continue
			}

			b, err := json.Marshal(wh)
			if err != nil {
				return nil, false, err
			}

			if webhooks[component] == nil {
				webhooks[component] = map[string]json.RawMessage{}
			}
			webhooks[component][name] = b
			changed = true
		}
	}

	return webhooks, changed, nil
}
