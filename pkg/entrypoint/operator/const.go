package operator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

var secretKind = metav1.GroupVersionKind{Version: "v1", Kind: "Secret"}
