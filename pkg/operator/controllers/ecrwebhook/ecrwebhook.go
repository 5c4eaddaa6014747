package ecrwebhook

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ECR repository provisioning webhook
// ECR does not create repositories on push. While zarf deploys a package it
// records per-component progress in the package secret and waits on any
// component webhook it finds there. This webhook picks the next deploying
// component and marks it Running in the admission response. Once that write is
// stored, the ECR repositories its images will be pushed to are created in the
// background and the outcome is written back to the package secret, unless
// zarf has moved the package to another generation in the meantime.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/operator"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/operator/metrics"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/clienthelper"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/ecr"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/ecrurl"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/zarf"
)

const (
	WebhookName = operator.ECRWebhookName

	provisionTimeout = 10 * time.Minute
	persistTimeout   = 30 * time.Second
	pollInterval     = time.Second
)

var (
	// ErrNotECR is returned when zarf is not configured to push to ECR.
	ErrNotECR = errors.New("a valid ECR URL was not found in the Zarf state secret")

	errMissingData = errors.New("package secret has no data")
)

// Handler mutates zarf package secrets.
type Handler struct {
	log *logrus.Entry

	client    clienthelper.Interface
	providers ecr.Source
	metrics   metrics.Client
	decoder   admission.Decoder

	spawn          func(func())
	pollInterval   time.Duration
	persistTimeout time.Duration
}

var _ admission.Handler = &Handler{}

func NewHandler(log *logrus.Entry, client clienthelper.Interface, providers ecr.Source, m metrics.Client, decoder admission.Decoder) *Handler {
	return &Handler{
		log:       log,
		client:    client,
		providers: providers,
		metrics:   m,
		decoder:   decoder,

		spawn:          func(f func()) { go f() },
		pollInterval:   pollInterval,
		persistTimeout: persistTimeout,
	}
}

// Run is the repository provisioning for one component started by an
// admission request.
type Run struct {
	Key        types.NamespacedName
	Component  zarf.Component
	Generation int
	Kind       ecrurl.Kind
	Address    string
}

func (h *Handler) Handle(ctx context.Context, req admission.Request) admission.Response {
	secret := &corev1.Secret{}
	err := h.decoder.Decode(req, secret)
	if err != nil {
		return admission.Errored(http.StatusBadRequest, err)
	}
	if secret.Namespace == "" {
		secret.Namespace = req.Namespace
	}

	log := h.log.WithField("secret", req.Namespace+"/"+req.Name)

	run, err := h.Reconcile(ctx, log, secret)
	switch {
	case errors.Is(err, ErrNotECR):
		return admission.Denied(err.Error())
	case errors.Is(err, errMissingData), errors.Is(err, zarf.ErrMalformedPackage):
		log.Error(err)
		return admission.Errored(http.StatusBadRequest, err)
	case err != nil:
		log.Error(err)
		return admission.Errored(http.StatusInternalServerError, err)
	case run == nil:
		return admission.Allowed("")
	}

	b, err := json.Marshal(secret)
	if err != nil {
		return admission.Errored(http.StatusInternalServerError, err)
	}

	resp := admission.PatchResponseFromRaw(req.Object.Raw, b)
	if resp.Allowed {
		h.spawn(func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), provisionTimeout)
			defer cancel()

			h.Provision(ctx, log, run)
		})
	}

	return resp
}

// Reconcile marks at most one ready component of the package held in secret
// as Running for the ECR webhook, changing secret in place. It returns the
// provisioning to carry out once the change is stored, or nil if no component
// is ready.
func (h *Handler) Reconcile(ctx context.Context, log *logrus.Entry, secret *corev1.Secret) (*Run, error) {
	info, err := zarf.GetRegistryInfo(ctx, h.client)
	if err != nil {
		return nil, err
	}

	kind := ecrurl.ResolveKind(info.Address, info.InternalRegistry)
	if kind == ecrurl.NotECR {
		return nil, fmt.Errorf("%w: %q. Please provide a valid ECR registry URL, for example '123456789012.dkr.ecr.us-east-1.amazonaws.com'", ErrNotECR, info.Address)
	}

	raw, found := secret.Data[zarf.PackageSecretKey]
	if !found {
		return nil, fmt.Errorf("%w: the '.data' field for package secret %s is undefined", errMissingData, secret.Name)
	}

	doc, err := zarf.ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	ref, found := zarf.SelectReadyComponent(&doc.DeployedPackage, WebhookName)
	if !found {
		log.Debug("there are no Zarf package components ready for the ECR webhook to execute")
		return nil, nil
	}

	doc.StartWebhook(ref.Deployed.Name, WebhookName)

	b, err := doc.Marshal()
	if err != nil {
		return nil, err
	}
	secret.Data[zarf.PackageSecretKey] = b

	log.WithField("component", ref.Deployed.Name).Infof("marked component running at generation %d", doc.Generation)

	return &Run{
		Key:        types.NamespacedName{Namespace: secret.Namespace, Name: secret.Name},
		Component:  ref.Component,
		Generation: doc.Generation,
		Kind:       kind,
		Address:    info.Address,
	}, nil
}
