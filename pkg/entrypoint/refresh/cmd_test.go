package refresh

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/entrypoint/config"
	utilerror "github.com/defenseunicorns/zarf-ecr-operator/test/util/error"
)

func TestGetConfig(t *testing.T) {
	cmd := &cobra.Command{Use: "refresh"}
	config.AddCommonFlags(cmd)

	t.Run("region is required", func(t *testing.T) {
		t.Setenv("AWS_REGION", "")
		os.Unsetenv("AWS_REGION")

		_, err := getConfig(cmd)
		utilerror.AssertErrorMessage(t, err, "required key AWS_REGION missing value")
	})

	t.Run("region and log level", func(t *testing.T) {
		t.Setenv("AWS_REGION", "us-east-1")
		t.Setenv("LOGLEVEL", "debug")

		cfg, err := getConfig(cmd)
		require.NoError(t, err)

		assert.Equal(t, "us-east-1", cfg.AWSRegion)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}
