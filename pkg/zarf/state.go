package zarf

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/secretpayload"
)

// GetRegistryInfo reads the registry zarf is configured to push to from the
// zarf-state secret.
func GetRegistryInfo(ctx context.Context, c client.Reader) (*RegistryInfo, error) {
	secret := &corev1.Secret{}
	err := c.Get(ctx, StateSecret, secret)
	if err != nil {
		return nil, fmt.Errorf("unable to get registry URL from the %s secret: %w", StateSecretName, err)
	}

	data, found := secret.Data[StateSecretKey]
	if !found {
		return nil, fmt.Errorf("the %s secret has no %q key", StateSecretName, StateSecretKey)
	}

	var state State
	err = json.Unmarshal(secretpayload.Decode(data).Plaintext, &state)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %q from the %s secret: %w", StateSecretKey, StateSecretName, err)
	}

	return &state.RegistryInfo, nil
}
