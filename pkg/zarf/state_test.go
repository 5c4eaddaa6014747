package zarf

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	ctrlfake "sigs.k8s.io/controller-runtime/pkg/client/fake"

	utilerror "github.com/defenseunicorns/zarf-ecr-operator/test/util/error"
)

func TestGetRegistryInfo(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name    string
		secret  *corev1.Secret
		want    *RegistryInfo
		wantErr string
	}{
		{
			name: "private ECR",
			secret: &corev1.Secret{
				ObjectMeta: metav1.ObjectMeta{Name: StateSecretName, Namespace: Namespace},
				Data: map[string][]byte{
					StateSecretKey: []byte(`{"distro":"eks","registryInfo":{"address":"123456789012.dkr.ecr.us-east-1.amazonaws.com","internalRegistry":false}}`),
				},
			},
			want: &RegistryInfo{Address: "123456789012.dkr.ecr.us-east-1.amazonaws.com"},
		},
		{
			name: "internal registry stored base64 encoded",
			secret: &corev1.Secret{
				ObjectMeta: metav1.ObjectMeta{Name: StateSecretName, Namespace: Namespace},
				Data: map[string][]byte{
					StateSecretKey: []byte("eyJyZWdpc3RyeUluZm8iOnsiYWRkcmVzcyI6IjEyNy4wLjAuMTozMTk5OSIsImludGVybmFsUmVnaXN0cnkiOnRydWV9fQ=="),
				},
			},
			want: &RegistryInfo{Address: "127.0.0.1:31999", InternalRegistry: true},
		},
		{
			name:    "missing secret",
			wantErr: `unable to get registry URL from the zarf-state secret: secrets "zarf-state" not found`,
		},
		{
			name: "missing key",
			secret: &corev1.Secret{
				ObjectMeta: metav1.ObjectMeta{Name: StateSecretName, Namespace: Namespace},
			},
			wantErr: `the zarf-state secret has no "state" key`,
		},
		{
			name: "malformed state",
			secret: &corev1.Secret{
				ObjectMeta: metav1.ObjectMeta{Name: StateSecretName, Namespace: Namespace},
				Data: map[string][]byte{
					StateSecretKey: []byte(`{"registryInfo":`),
				},
			},
			wantErr: `failed to unmarshal "state" from the zarf-state secret: unexpected end of JSON input`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			builder := ctrlfake.NewClientBuilder()
			if tt.secret != nil {
				builder = builder.WithObjects(tt.secret)
			}

			got, err := GetRegistryInfo(ctx, builder.Build())
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			if tt.want != nil && (got == nil || *got != *tt.want) {
				t.Errorf("got %v, wanted %v", got, tt.want)
			}
		})
	}
}
