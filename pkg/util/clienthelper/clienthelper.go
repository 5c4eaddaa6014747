package clienthelper

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/util/retry"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

type Writer interface {
	client.Writer
	// EnsureSecretData server-side applies data into an existing secret,
	// taking ownership of the written keys from any other field manager.
	// Other keys and metadata of the secret are left alone.
	EnsureSecretData(ctx context.Context, key types.NamespacedName, data map[string][]byte) error
	// UpdateSecret reads a secret, passes it to mutate and writes it back
	// guarded by the resourceVersion it was read at, retrying the whole cycle
	// on conflict. When mutate returns false nothing is written.
	UpdateSecret(ctx context.Context, key types.NamespacedName, mutate func(*corev1.Secret) (bool, error)) error
}

type Interface interface {
	client.Reader
	Writer
}

type clientHelper struct {
	client.Client

	log        *logrus.Entry
	fieldOwner string
}

func NewWithClient(log *logrus.Entry, client client.Client, fieldOwner string) Interface {
	return &clientHelper{
		Client:     client,
		log:        log,
		fieldOwner: fieldOwner,
	}
}

func (ch *clientHelper) EnsureSecretData(ctx context.Context, key types.NamespacedName, data map[string][]byte) error {
	secret := &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      key.Name,
			Namespace: key.Namespace,
		},
		Data: data,
	}

	ch.log.Debugf("Apply secret %s as %s", key, ch.fieldOwner)
	return ch.Patch(ctx, secret, client.Apply, client.ForceOwnership, client.FieldOwner(ch.fieldOwner))
}

func (ch *clientHelper) UpdateSecret(ctx context.Context, key types.NamespacedName, mutate func(*corev1.Secret) (bool, error)) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		secret := &corev1.Secret{}
		err := ch.Get(ctx, key, secret)
		if err != nil {
			return err
		}

		changed, err := mutate(secret)
		if err != nil || !changed {
			return err
		}

		ch.log.Debugf("Update secret %s as %s", key, ch.fieldOwner)
		return ch.Update(ctx, secret, client.FieldOwner(ch.fieldOwner))
	})
}
