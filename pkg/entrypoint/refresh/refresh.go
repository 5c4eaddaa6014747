package refresh

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/sirupsen/logrus"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	pkgoperator "github.com/defenseunicorns/zarf-ecr-operator/pkg/operator"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/operator/controllers/ecrtoken"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/operator/metrics"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/clienthelper"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/ecr"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/scheme"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/version"
)

func start(ctx context.Context, log *logrus.Entry, cfg *Config) error {
	restConfig, err := ctrl.GetConfig()
	if err != nil {
		return err
	}
	restConfig.UserAgent = version.UserAgent()

	c, err := client.New(restConfig, client.Options{Scheme: scheme.Scheme})
	if err != nil {
		return err
	}

	providers, err := ecr.NewProviders(ctx, log, cfg.AWSRegion)
	if err != nil {
		return err
	}

	refresher := ecrtoken.NewRefresher(
		log.WithField("job", pkgoperator.RefreshECRTokenJobName),
		clienthelper.NewWithClient(log, c, pkgoperator.FieldOwner),
		providers, metrics.NewClient())

	return refresher.Refresh(ctx)
}
