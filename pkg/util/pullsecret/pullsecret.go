package pullsecret

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	corev1 "k8s.io/api/core/v1"
)

type pullSecret struct {
	Auths map[string]map[string]interface{} `json:"auths,omitempty"`
}

// UnmarshalSecretData extracts the auth of every registry in a
// kubernetes.io/dockerconfigjson secret, which has the form
//
//	{"auths": {"registry": {"auth": "token"}, ...}}
//
// and returns
//
//	{"registry": "token"}
func UnmarshalSecretData(ps *corev1.Secret) (map[string]string, error) {
	var pullSecretData pullSecret
	if ps != nil {
		if data := ps.Data[corev1.DockerConfigJsonKey]; len(data) > 0 {
			if err := json.Unmarshal(data, &pullSecretData); err != nil {
				return nil, err
			}
		}
	}

	secretData := map[string]string{}
	for k, v := range pullSecretData.Auths {
		if auth, ok := v["auth"].(string); ok {
			secretData[k] = auth
		}
	}

	return secretData, nil
}

// Build returns docker config JSON holding a single registry credential.
// auth is expected to already be base64("user:password").
func Build(registry, auth string) ([]byte, error) {
	return json.Marshal(&pullSecret{
		Auths: map[string]map[string]interface{}{
			registry: {
				"auth": auth,
			},
		},
	})
}
