package clienthelper

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	ctrlfake "sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"

	testclienthelper "github.com/defenseunicorns/zarf-ecr-operator/test/util/clienthelper"
	"github.com/defenseunicorns/zarf-ecr-operator/test/util/cmp"
)

func TestEnsureSecretData(t *testing.T) {
	ctx := context.Background()
	key := types.NamespacedName{Namespace: "podinfo", Name: "private-registry"}

	existing := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      key.Name,
			Namespace: key.Namespace,
			Labels:    map[string]string{"app.kubernetes.io/managed-by": "zarf"},
		},
		Type: corev1.SecretTypeDockerConfigJson,
		Data: map[string][]byte{
			corev1.DockerConfigJsonKey: []byte(`{"auths":{}}`),
			"other":                    []byte("kept"),
		},
	}

	recorder := &testclienthelper.ApplyRecorder{}
	c := ctrlfake.NewClientBuilder().
		WithObjects(existing).
		WithInterceptorFuncs(recorder.Funcs()).
		Build()

	ch := NewWithClient(logrus.NewEntry(logrus.StandardLogger()), c, "zarf-ecr-operator")

	err := ch.EnsureSecretData(ctx, key, map[string][]byte{
		corev1.DockerConfigJsonKey: []byte(`{"auths":{"x":{"auth":"y"}}}`),
	})
	require.NoError(t, err)

	applied := recorder.Applied()
	require.Len(t, applied, 1)
	assert.Equal(t, key, applied[0].Key)
	assert.True(t, applied[0].Force)
	assert.Equal(t, "zarf-ecr-operator", applied[0].FieldManager)
	assert.Equal(t, "Secret", applied[0].Object.GetObjectKind().GroupVersionKind().Kind)

	want := existing.DeepCopy()
	want.Data[corev1.DockerConfigJsonKey] = []byte(`{"auths":{"x":{"auth":"y"}}}`)

	got := &corev1.Secret{}
	require.NoError(t, c.Get(ctx, key, got))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestEnsureSecretDataError(t *testing.T) {
	ctx := context.Background()
	key := types.NamespacedName{Namespace: "podinfo", Name: "private-registry"}

	recorder := &testclienthelper.ApplyRecorder{
		FailOn: map[types.NamespacedName]error{key: errors.New("conflict")},
	}
	c := ctrlfake.NewClientBuilder().WithInterceptorFuncs(recorder.Funcs()).Build()

	ch := NewWithClient(logrus.NewEntry(logrus.StandardLogger()), c, "zarf-ecr-operator")

	err := ch.EnsureSecretData(ctx, key, nil)
	assert.EqualError(t, err, "conflict")
	assert.Empty(t, recorder.Applied())
}

func TestUpdateSecret(t *testing.T) {
	ctx := context.Background()
	key := types.NamespacedName{Namespace: "zarf", Name: "zarf-package-podinfo"}

	existing := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      key.Name,
			Namespace: key.Namespace,
		},
		Data: map[string][]byte{"data": []byte("old"), "other": []byte("kept")},
	}

	// zarf writes the secret between our read and our first update
	var updates int
	c := ctrlfake.NewClientBuilder().
		WithObjects(existing).
		WithInterceptorFuncs(interceptor.Funcs{
			Update: func(ctx context.Context, c client.WithWatch, obj client.Object, opts ...client.UpdateOption) error {
				updates++
				if updates == 1 {
					return kerrors.NewConflict(schema.GroupResource{Resource: "secrets"}, key.Name, errors.New("object has been modified"))
				}
				return c.Update(ctx, obj, opts...)
			},
		}).
		Build()

	ch := NewWithClient(logrus.NewEntry(logrus.StandardLogger()), c, "zarf-ecr-operator")

	var reads int
	err := ch.UpdateSecret(ctx, key, func(s *corev1.Secret) (bool, error) {
		reads++
		s.Data["data"] = []byte("new")
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, reads)
	assert.Equal(t, 2, updates)

	got := &corev1.Secret{}
	require.NoError(t, c.Get(ctx, key, got))
	assert.Equal(t, map[string][]byte{"data": []byte("new"), "other": []byte("kept")}, got.Data)
}

func TestUpdateSecretUnchanged(t *testing.T) {
	ctx := context.Background()
	key := types.NamespacedName{Namespace: "zarf", Name: "zarf-package-podinfo"}

	var updates int
	c := ctrlfake.NewClientBuilder().
		WithObjects(&corev1.Secret{ObjectMeta: metav1.ObjectMeta{Name: key.Name, Namespace: key.Namespace}}).
		WithInterceptorFuncs(interceptor.Funcs{
			Update: func(ctx context.Context, c client.WithWatch, obj client.Object, opts ...client.UpdateOption) error {
				updates++
				return c.Update(ctx, obj, opts...)
			},
		}).
		Build()

	ch := NewWithClient(logrus.NewEntry(logrus.StandardLogger()), c, "zarf-ecr-operator")

	err := ch.UpdateSecret(ctx, key, func(s *corev1.Secret) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Zero(t, updates)

	err = ch.UpdateSecret(ctx, types.NamespacedName{Namespace: "zarf", Name: "missing"}, func(s *corev1.Secret) (bool, error) {
		t.Error("mutate called for a missing secret")
		return false, nil
	})
	assert.True(t, kerrors.IsNotFound(err))
}
