package operator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/entrypoint/config"
	utillog "github.com/defenseunicorns/zarf-ecr-operator/pkg/util/log"
)

type Config struct {
	config.Common

	AWSRegion          string        `envconfig:"AWS_REGION" required:"true"`
	RefreshInterval    time.Duration `envconfig:"REFRESH_INTERVAL" default:"5h"`
	WebhookPort        int           `envconfig:"WEBHOOK_PORT" default:"9443"`
	WebhookCertDir     string        `envconfig:"WEBHOOK_CERT_DIR"`
	HealthProbeAddress string        `envconfig:"HEALTH_PROBE_ADDRESS" default:":8080"`
	MetricsAddress     string        `envconfig:"METRICS_ADDRESS" default:":8081"`
}

// NewCommand returns the cobra command for "operator".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "operator",
		Short: "Run the ECR webhook and the scheduled ECR token refresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(cmd)
			if err != nil {
				return err
			}

			ctx := ctrl.SetupSignalHandler()
			log := utillog.GetLogger(cfg.LogLevel)

			return start(ctx, log, cfg)
		},
	}

	return cc
}

func getConfig(cmd *cobra.Command) (*Config, error) {
	var c Config
	var err error
	err = envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	c.Common, err = config.CommonConfigFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
