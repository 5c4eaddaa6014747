package operator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	pkgoperator "github.com/defenseunicorns/zarf-ecr-operator/pkg/operator"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/operator/controllers/ecrtoken"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/operator/controllers/ecrwebhook"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/operator/metrics"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/clienthelper"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/ecr"
	utillog "github.com/defenseunicorns/zarf-ecr-operator/pkg/util/log"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/schedule"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/scheme"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/version"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/zarf"
)

func start(ctx context.Context, log *logrus.Entry, cfg *Config) error {
	ctrl.SetLogger(utillog.LogrWrapper(log))

	restConfig, err := ctrl.GetConfig()
	if err != nil {
		return err
	}
	restConfig.UserAgent = version.UserAgent()

	// Secrets are read across every namespace; an uncached client avoids
	// holding all of them in an informer.
	c, err := client.New(restConfig, client.Options{Scheme: scheme.Scheme})
	if err != nil {
		return err
	}

	providers, err := ecr.NewProviders(ctx, log, cfg.AWSRegion)
	if err != nil {
		return err
	}

	metrics.RegisterMetrics()
	m := metrics.NewClient()

	mgr, err := ctrl.NewManager(restConfig, ctrl.Options{
		Scheme:                 scheme.Scheme,
		HealthProbeBindAddress: cfg.HealthProbeAddress,
		Metrics: metricsserver.Options{
			BindAddress: cfg.MetricsAddress,
		},
		WebhookServer: webhook.NewServer(webhook.Options{
			Port:    cfg.WebhookPort,
			CertDir: cfg.WebhookCertDir,
		}),
	})
	if err != nil {
		return err
	}

	registry, err := newRegistry(log, c, providers, m, cfg)
	if err != nil {
		return err
	}

	err = registry.SetupWithManager(mgr, log)
	if err != nil {
		return err
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		return err
	}
	if err := mgr.AddReadyzCheck("webhook", mgr.GetWebhookServer().StartedChecker()); err != nil {
		return err
	}

	log.Printf("starting manager, git commit %s", version.GitCommit)
	return mgr.Start(ctx)
}

func newRegistry(log *logrus.Entry, c client.Client, providers ecr.Source, m metrics.Client, cfg *Config) (*pkgoperator.Registry, error) {
	packageSecrets, err := labels.NewRequirement(zarf.PackageSecretLabel, selection.Exists, nil)
	if err != nil {
		return nil, err
	}

	ch := clienthelper.NewWithClient(log, c, pkgoperator.FieldOwner)

	refresher := ecrtoken.NewRefresher(
		log.WithField("job", pkgoperator.RefreshECRTokenJobName),
		ch, providers, m)

	return &pkgoperator.Registry{
		Webhooks: []pkgoperator.WebhookRegistration{
			{
				Name:      pkgoperator.ECRWebhookName,
				Path:      pkgoperator.ECRWebhookPath,
				Kind:      secretKind,
				Namespace: zarf.Namespace,
				Selector:  labels.NewSelector().Add(*packageSecrets),
				Handler: ecrwebhook.NewHandler(
					log.WithField("webhook", pkgoperator.ECRWebhookName),
					ch, providers, m, admission.NewDecoder(scheme.Scheme)),
			},
		},
		Jobs: []schedule.Job{
			{
				Name:     pkgoperator.RefreshECRTokenJobName,
				Schedule: schedule.Every(cfg.RefreshInterval),
				Run:      refresher.Refresh,
			},
		},
	}, nil
}
