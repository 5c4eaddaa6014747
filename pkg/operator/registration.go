package operator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	admissionv1 "k8s.io/api/admission/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/controller-runtime/pkg/manager"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/schedule"
)

// WebhookRegistration binds an admission handler to the objects it reacts
// to. Requests for anything else are allowed unchanged.
type WebhookRegistration struct {
	Name      string
	Path      string
	Kind      metav1.GroupVersionKind
	Namespace string
	Selector  labels.Selector
	Handler   admission.Handler
}

// Registry lists everything the operator runs.
type Registry struct {
	Webhooks []WebhookRegistration
	Jobs     []schedule.Job
}

// SetupWithManager registers every webhook with the manager's webhook server
// and adds a runner for the jobs. Jobs also run once when the manager starts.
func (r *Registry) SetupWithManager(mgr manager.Manager, log *logrus.Entry) error {
	for _, wr := range r.Webhooks {
		mgr.GetWebhookServer().Register(wr.Path, &webhook.Admission{
			Handler: &dispatcher{
				log:          log.WithField("webhook", wr.Name),
				registration: wr,
			},
		})
		log.Infof("registered webhook %s at %s", wr.Name, wr.Path)
	}

	if len(r.Jobs) == 0 {
		return nil
	}

	runner, err := schedule.NewRunner(log.WithField("component", "scheduler"), true, r.Jobs...)
	if err != nil {
		return err
	}

	return mgr.Add(runner)
}

type dispatcher struct {
	log          *logrus.Entry
	registration WebhookRegistration
}

func (d *dispatcher) Handle(ctx context.Context, req admission.Request) admission.Response {
	matches, err := d.registration.Matches(req)
	if err != nil {
		return admission.Errored(http.StatusBadRequest, err)
	}
	if !matches {
		d.log.Debugf("ignoring %s of %s %s/%s", req.Operation, req.Kind.Kind, req.Namespace, req.Name)
		return admission.Allowed("")
	}

	return d.registration.Handler.Handle(ctx, req)
}

// Matches reports whether req is a create or update of an object the
// registration covers.
func (wr *WebhookRegistration) Matches(req admission.Request) (bool, error) {
	switch req.Operation {
	case admissionv1.Create, admissionv1.Update:
	default:
		return false, nil
	}

	if req.Kind != wr.Kind {
		return false, nil
	}

	if wr.Namespace != "" && req.Namespace != wr.Namespace {
		return false, nil
	}

	if wr.Selector == nil || wr.Selector.Empty() {
		return true, nil
	}

	obj := &metav1.PartialObjectMetadata{}
	err := json.Unmarshal(req.Object.Raw, obj)
	if err != nil {
		return false, fmt.Errorf("unable to read object metadata: %w", err)
	}

	return wr.Selector.Matches(labels.Set(obj.Labels)), nil
}
