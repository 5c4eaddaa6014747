package ecrwebhook

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/ecrurl"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/reponame"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/zarf"
)

var errGenerationChanged = errors.New("package generation changed")

// Provision waits for the Running mark of run to be stored, creates the
// repositories of its component and records Succeeded or Failed in the
// package secret. The outcome is discarded if the package has moved on from
// run's generation by the time it is written.
func (h *Handler) Provision(ctx context.Context, log *logrus.Entry, run *Run) {
	log = log.WithField("component", run.Component.Name)

	err := h.waitForRunning(ctx, run)
	if err != nil {
		log.Warnf("not creating ECR repositories for generation %d: %v", run.Generation, err)
		return
	}

	status := zarf.WebhookStatusSucceeded
	err = h.createRepositories(ctx, log, run.Kind, run.Address, run.Component)
	if err != nil {
		log.Errorf("failed to create ECR repositories: %v", err)
		status = zarf.WebhookStatusFailed
	}

	recorded, err := h.finish(ctx, run, status)
	if err != nil {
		log.Errorf("failed to record status %s: %v", status, err)
		return
	}
	if !recorded {
		log.Warnf("generation %d is no longer current, discarding status %s", run.Generation, status)
		return
	}

	h.metrics.IncWebhookRun(WebhookName, string(status))
	log.Infof("recorded status %s", status)
}

// waitForRunning polls the package secret until it holds the Running record
// of run. It gives up if the package moves to another generation.
func (h *Handler) waitForRunning(ctx context.Context, run *Run) error {
	return wait.PollUntilContextTimeout(ctx, h.pollInterval, h.persistTimeout, true, func(ctx context.Context) (bool, error) {
		secret := &corev1.Secret{}
		err := h.client.Get(ctx, run.Key, secret)
		if err != nil {
			return false, nil
		}

		doc, err := zarf.ParseDocument(secret.Data[zarf.PackageSecretKey])
		if err != nil {
			return false, err
		}

		if doc.Generation != run.Generation {
			return false, fmt.Errorf("%w: %d", errGenerationChanged, doc.Generation)
		}

		wh := doc.Webhook(run.Component.Name, WebhookName)
		return wh != nil && wh.ObservedGeneration == run.Generation && wh.Status == zarf.WebhookStatusRunning, nil
	})
}

// finish writes status into the stored package secret if it still holds the
// Running record of run. It returns whether status was written.
func (h *Handler) finish(ctx context.Context, run *Run, status zarf.WebhookStatus) (bool, error) {
	var recorded bool

	err := h.client.UpdateSecret(ctx, run.Key, func(secret *corev1.Secret) (bool, error) {
		doc, err := zarf.ParseDocument(secret.Data[zarf.PackageSecretKey])
		if err != nil {
			return false, err
		}

		recorded = doc.FinishWebhook(run.Component.Name, WebhookName, run.Generation, status)
		if !recorded {
			return false, nil
		}

		b, err := doc.Marshal()
		if err != nil {
			return false, err
		}
		secret.Data[zarf.PackageSecretKey] = b

		return true, nil
	})

	return recorded, err
}

func (h *Handler) createRepositories(ctx context.Context, log *logrus.Entry, kind ecrurl.Kind, address string, component zarf.Component) error {
	names, err := repositoryNames(component.Images)
	if err != nil {
		return err
	}

	var accountID string
	if kind == ecrurl.PrivateECR {
		accountID, err = ecrurl.AccountID(address)
		if err != nil {
			return err
		}
	}

	provider, err := h.providers.For(kind)
	if err != nil {
		return err
	}

	log.Infof("ensuring %d ECR repositories", len(names))
	created, err := provider.CreateRepositories(ctx, names, accountID)
	h.metrics.AddRepositoriesCreated(kind.String(), len(created))

	return err
}

// repositoryNames derives the repository of every image, dropping repeats,
// and checks each is a valid repository name.
func repositoryNames(images []string) ([]string, error) {
	derived, err := reponame.FromImages(images)
	if err != nil {
		return nil, err
	}

	seen := sets.New[string]()
	names := make([]string, 0, len(derived))
	for _, n := range derived {
		if seen.Has(n) {
			continue
		}
		seen.Insert(n)

		_, err := name.NewRepository(n)
		if err != nil {
			return nil, fmt.Errorf("invalid repository name %q: %w", n, err)
		}
		names = append(names, n)
	}

	return names, nil
}
