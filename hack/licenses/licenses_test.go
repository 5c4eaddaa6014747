package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
)

func TestWithLicense(t *testing.T) {
	for _, tt := range []struct {
		name        string
		src         string
		want        string
		wantChanged bool
	}{
		{
			name: "adds header after the package clause",
			src:  "package zarf\n\nconst Namespace = \"zarf\"\n",
			want: "package zarf\n\n// Copyright (c) Microsoft Corporation.\n// Licensed under the Apache License 2.0.\n\nconst Namespace = \"zarf\"\n",

			wantChanged: true,
		},
		{
			name: "keeps existing header",
			src:  "package zarf\n\n// Copyright (c) Microsoft Corporation.\n// Licensed under the Apache License 2.0.\n",
			want: "package zarf\n\n// Copyright (c) Microsoft Corporation.\n// Licensed under the Apache License 2.0.\n",
		},
		{
			name: "skips generated code",
			src:  "// Code generated by MockGen. DO NOT EDIT.\npackage mock_ecr\n",
			want: "// Code generated by MockGen. DO NOT EDIT.\npackage mock_ecr\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := withLicense([]byte(tt.src))
			if string(got) != tt.want {
				t.Errorf("got %q", got)
			}
			if changed != tt.wantChanged {
				t.Error(changed)
			}
		})
	}
}
