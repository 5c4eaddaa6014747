package refresh

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/entrypoint/config"
	utillog "github.com/defenseunicorns/zarf-ecr-operator/pkg/util/log"
)

type Config struct {
	config.Common

	AWSRegion string `envconfig:"AWS_REGION" required:"true"`
}

// NewCommand returns the cobra command for "refresh".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the ECR token in Zarf image pull secrets once",
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
