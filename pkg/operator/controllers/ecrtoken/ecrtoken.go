package ecrtoken

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ECR token refresher
// ECR authorization tokens expire after 12 hours. The refresher fetches a new
// token for the registry zarf pushes to and writes it into the zarf image pull
// secret of every namespace the zarf agent manages.

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/operator/metrics"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/clienthelper"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/ecr"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/ecrurl"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/pullsecret"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/zarf"
)

const (
	resultUpdated   = "updated"
	resultUnchanged = "unchanged"
	resultSkipped   = "skipped"
	resultFailed    = "failed"
)

type Refresher struct {
	log *logrus.Entry

	client    clienthelper.Interface
	providers ecr.Source
	metrics   metrics.Client

	now func() time.Time
}

func NewRefresher(log *logrus.Entry, client clienthelper.Interface, providers ecr.Source, m metrics.Client) *Refresher {
	return &Refresher{
		log:       log,
		client:    client,
		providers: providers,
		metrics:   m,
		now:       time.Now,
	}
}

// Refresh runs one refresh cycle. A failure in one namespace does not stop
// the others; all namespace failures are returned together at the end.
func (r *Refresher) Refresh(ctx context.Context) error {
	info, err := zarf.GetRegistryInfo(ctx, r.client)
	if err != nil {
		return err
	}

	kind := ecrurl.ResolveKind(info.Address, info.InternalRegistry)
	if kind == ecrurl.NotECR {
		r.log.Infof("registry %q is not an ECR registry, nothing to refresh", info.Address)
		return nil
	}

	provider, err := r.providers.For(kind)
	if err != nil {
		return err
	}

	token, err := provider.FetchToken(ctx)
	if err != nil {
		r.metrics.UpdateTokenRefresh(false, r.now())
		return fmt.Errorf("unable to update ECR token in Zarf image pull secrets: %w", err)
	}
	if token.ExpiresAt != nil {
		r.log.Infof("fetched %s ECR token expiring at %s", kind, token.ExpiresAt.Format(time.RFC3339))
	}

	dockerConfig, err := pullsecret.Build(info.Address, token.Token)
	if err != nil {
		return err
	}

	namespaces := &corev1.NamespaceList{}
	err = r.client.List(ctx, namespaces)
	if err != nil {
		r.metrics.UpdateTokenRefresh(false, r.now())
		return fmt.Errorf("error listing namespaces: %w", err)
	}

	var errs *multierror.Error
	for i := range namespaces.Items {
		ns := &namespaces.Items[i]
		log := r.log.WithField("namespace", ns.Name)

		result, err := r.updateNamespace(ctx, ns, info.Address, token.Token, dockerConfig)
		r.metrics.IncPullSecretUpdate(result)

		switch result {
		case resultFailed:
			log.Errorf("failed to update secret %s: %v", zarf.ImagePullSecretName, err)
			errs = multierror.Append(errs, fmt.Errorf("namespace %s: %w", ns.Name, err))
		case resultUpdated:
			log.Infof("successfully updated secret %s", zarf.ImagePullSecretName)
		default:
			log.Debugf("secret %s %s", zarf.ImagePullSecretName, result)
		}
	}

	r.metrics.UpdateTokenRefresh(errs.ErrorOrNil() == nil, r.now())

	return errs.ErrorOrNil()
}

func (r *Refresher) updateNamespace(ctx context.Context, ns *corev1.Namespace, address, token string, dockerConfig []byte) (string, error) {
	key := types.NamespacedName{Namespace: ns.Name, Name: zarf.ImagePullSecretName}

	secret := &corev1.Secret{}
	err := r.client.Get(ctx, key, secret)
	if kerrors.IsNotFound(err) {
		return resultSkipped, nil
	}
	if err != nil {
		return resultFailed, err
	}

	if !Eligible(ns, secret) {
		return resultSkipped, nil
	}

	auths, err := pullsecret.UnmarshalSecretData(secret)
	if err == nil && len(auths) == 1 && auths[address] == token {
		return resultUnchanged, nil
	}

	err = r.client.EnsureSecretData(ctx, key, map[string][]byte{
		corev1.DockerConfigJsonKey: dockerConfig,
	})
	if err != nil {
		return resultFailed, err
	}

	return resultUpdated, nil
}

// Eligible reports whether the pull secret in ns may be rewritten: either the
// secret is managed by zarf, or the namespace has not opted out of the zarf
// agent.
func Eligible(ns *corev1.Namespace, secret *corev1.Secret) bool {
	if secret.Labels[zarf.ManagedByLabel] == zarf.ManagedByValue {
		return true
	}

	switch ns.Labels[zarf.AgentLabel] {
	case "skip", "ignore":
		return false
	}

	return true
}
