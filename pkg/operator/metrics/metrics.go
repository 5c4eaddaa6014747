package metrics

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	runtimemetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	metricsTag = "zarf_ecr"

	webhookLabel  = "webhook"
	resultLabel   = "result"
	registryLabel = "registry"
)

var (
	metricWebhookRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: metricsTag,
		Name:      "webhook_runs_total",
		Help:      "Component webhook runs by final status",
	}, []string{webhookLabel, resultLabel})
	metricRepositoriesCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: metricsTag,
		Name:      "repositories_created_total",
		Help:      "ECR repositories created",
	}, []string{registryLabel})
	metricPullSecretUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: metricsTag,
		Name:      "pull_secret_updates_total",
		Help:      "Image pull secret updates by result",
	}, []string{resultLabel})
	metricTokenRefreshSucceeded = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Subsystem: metricsTag,
		Name:      "token_refresh_succeeded",
		Help:      "Whether the last ECR token refresh succeeded",
	}, []string{})
	metricTokenRefreshTimestamp = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Subsystem: metricsTag,
		Name:      "token_refresh_last_success_timestamp_seconds",
		Help:      "Unix time of the last successful ECR token refresh",
	}, []string{})
)

type Client interface {
	IncWebhookRun(webhook, result string)
	AddRepositoriesCreated(registry string, n int)
	IncPullSecretUpdate(result string)
	UpdateTokenRefresh(succeeded bool, at time.Time)
}

type client struct{}

func NewClient() Client {
	return &client{}
}

func (m *client) IncWebhookRun(webhook, result string) {
	metricWebhookRuns.
		With(prometheus.Labels{
			webhookLabel: webhook,
			resultLabel:  result,
		}).
		Inc()
}

func (m *client) AddRepositoriesCreated(registry string, n int) {
	metricRepositoriesCreated.
		With(prometheus.Labels{
			registryLabel: registry,
		}).
		Add(float64(n))
}

func (m *client) IncPullSecretUpdate(result string) {
	metricPullSecretUpdates.
		With(prometheus.Labels{
			resultLabel: result,
		}).
		Inc()
}

func (m *client) UpdateTokenRefresh(succeeded bool, at time.Time) {
	metricTokenRefreshSucceeded.
		With(prometheus.Labels{}).
		Set(toFloat(succeeded))

	if succeeded {
		metricTokenRefreshTimestamp.
			With(prometheus.Labels{}).
			Set(float64(at.Unix()))
	}
}

func toFloat(b bool) float64 {
	return map[bool]float64{false: 0, true: 1}[b]
}

func RegisterMetrics() {
	runtimemetrics.Registry.MustRegister(metricWebhookRuns)
	runtimemetrics.Registry.MustRegister(metricRepositoriesCreated)
	runtimemetrics.Registry.MustRegister(metricPullSecretUpdates)
	runtimemetrics.Registry.MustRegister(metricTokenRefreshSucceeded)
	runtimemetrics.Registry.MustRegister(metricTokenRefreshTimestamp)
}
