package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/entrypoint/config"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/entrypoint/operator"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/entrypoint/refresh"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/version"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "zarf-ecr",
		Short:        "Provision ECR repositories and credentials for Zarf",
		Version:      version.GitCommit,
		SilenceUsage: true,
	}
	config.AddCommonFlags(root)

	root.AddCommand(operator.NewCommand())
	root.AddCommand(refresh.NewCommand())

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
