package version

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// GitCommit is set at build time with -ldflags "-X".
var GitCommit = "unknown"

const product = "zarf-ecr-operator"

// UserAgent identifies this build to the Kubernetes API server.
func UserAgent() string {
	return product + "/" + GitCommit
}
