package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const LogLevelFlag = "loglevel"

// Common holds the settings shared by every command.
type Common struct {
	LogLevel string
}

// AddCommonFlags adds the flags read by CommonConfigFromCmd.
func AddCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(LogLevelFlag, "info", "log level (panic, fatal, error, warn, info, debug, trace)")
}

// CommonConfigFromCmd reads the common settings from the command's flags,
// falling back to the LOGLEVEL environment variable.
func CommonConfigFromCmd(cmd *cobra.Command) (Common, error) {
	v := viper.New()
	v.AutomaticEnv()

	err := v.BindPFlag(LogLevelFlag, cmd.Flag(LogLevelFlag))
	if err != nil {
		return Common{}, err
	}

	return Common{
		LogLevel: v.GetString(LogLevelFlag),
	}, nil
}
