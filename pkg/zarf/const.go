package zarf

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"k8s.io/apimachinery/pkg/types"
)

const (
	Namespace       = "zarf"
	StateSecretName = "zarf-state"
	StateSecretKey  = "state"

	// PackageSecretLabel is carried by the per-package deployment secrets.
	PackageSecretLabel = "package-deploy-info"
	PackageSecretKey   = "data"

	ImagePullSecretName = "private-registry"

	AgentLabel     = "zarf.dev/agent"
	ManagedByLabel = "app.kubernetes.io/managed-by"
	ManagedByValue = "zarf"
)

var StateSecret = types.NamespacedName{Namespace: Namespace, Name: StateSecretName}
