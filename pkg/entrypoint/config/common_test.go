package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonConfigFromCmd(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
		env  string
		want string
	}{
		{
			name: "default",
			want: "info",
		},
		{
			name: "flag",
			args: []string{"--loglevel", "debug"},
			want: "debug",
		},
		{
			name: "environment",
			env:  "warn",
			want: "warn",
		},
		{
			name: "flag wins over environment",
			args: []string{"--loglevel", "debug"},
			env:  "warn",
			want: "debug",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("LOGLEVEL", tt.env)
			}

			var got Common
			root := &cobra.Command{Use: "root"}
			AddCommonFlags(root)
			root.AddCommand(&cobra.Command{
				Use: "sub",
				RunE: func(cmd *cobra.Command, args []string) error {
					var err error
					got, err = CommonConfigFromCmd(cmd)
					return err
				},
			})
			root.SetArgs(append([]string{"sub"}, tt.args...))

			require.NoError(t, root.Execute())
			assert.Equal(t, tt.want, got.LogLevel)
		})
	}
}
